package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Field ranges shared by scenes and hotspots. Pitch is [-90,90], yaw is
// [-180,180], hfov is (0,180].
type sceneView struct {
	Pitch float64 `validate:"gte=-90,lte=90"`
	Yaw   float64 `validate:"gte=-180,lte=180"`
	Hfov  float64 `validate:"gt=0,lte=180"`
}

type viewAngles struct {
	Pitch float64 `validate:"gte=-90,lte=90"`
	Yaw   float64 `validate:"gte=-180,lte=180"`
}

// validateStruct runs the tag rules on v and turns the first failure into
// a validation error naming the field.
func validateStruct(op string, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return validationErr(op, "%s %s", strings.ToLower(fe.Field()), describeRule(fe))
	}
	return validationErr(op, "%v", err)
}

func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return fmt.Sprintf("must be >= %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be <= %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be > %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "email":
		return "must be a valid email address"
	case "url", "http_url":
		return "must be a valid URL"
	default:
		return fmt.Sprintf("failed %q", fe.Tag())
	}
}

func validateSceneView(op string, pitch, yaw, hfov float64) error {
	return validateStruct(op, sceneView{Pitch: pitch, Yaw: yaw, Hfov: hfov})
}

func validateAngles(op string, pitch, yaw float64) error {
	return validateStruct(op, viewAngles{Pitch: pitch, Yaw: yaw})
}

func requireText(op, field, value string) error {
	if strings.TrimSpace(value) == "" {
		return validationErr(op, "%s is required", field)
	}
	return nil
}
