package serializer

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tours360/tourgraph/internal/modules/service"
	"go.uber.org/zap"
)

var log = zap.NewNop()

// SetLogger sets the logger used for server-side failures.
func SetLogger(l *zap.Logger) {
	if l != nil {
		log = l
	}
}

// Response
type Response struct {
	Code  int         `json:"code"`
	Data  interface{} `json:"data,omitempty"`
	Msg   string      `json:"msg"`
	Kind  string      `json:"kind,omitempty"`
	IDs   []string    `json:"ids,omitempty"`
	Error string      `json:"error,omitempty"`
}

// Err
func Err(errCode int, msg string, err error) Response {
	res := Response{
		Code: errCode,
		Msg:  msg,
	}
	// development mode, show error detail
	if err != nil && gin.Mode() != gin.ReleaseMode {
		res.Error = fmt.Sprintf("%+v", err)
	}
	return res
}

// DBErr
func DBErr(msg string, err error) Response {
	if msg == "" {
		msg = "database error"
	}
	res := Err(http.StatusInternalServerError, msg, err)
	res.Kind = string(service.KindPersistence)
	return res
}

// ParamErr
func ParamErr(msg string, err error) Response {
	if msg == "" {
		msg = "parameter error"
	}
	res := Err(http.StatusBadRequest, msg, err)
	res.Kind = string(service.KindValidation)
	return res
}

// AuthErr
func AuthErr(msg string) Response {
	if msg == "" {
		msg = "authentication error"
	}
	res := Err(http.StatusUnauthorized, msg, nil)
	res.Kind = string(service.KindAuthorization)
	return res
}

var kindStatus = map[service.Kind]int{
	service.KindValidation:             http.StatusBadRequest,
	service.KindNotFound:               http.StatusNotFound,
	service.KindCrossPropertyReference: http.StatusUnprocessableEntity,
	service.KindCascadeIncomplete:      http.StatusConflict,
	service.KindIncompleteProperty:     http.StatusUnprocessableEntity,
	service.KindAuthorization:          http.StatusUnauthorized,
	service.KindPersistence:            http.StatusInternalServerError,
}

// StatusFor maps a service error kind to its HTTP status.
func StatusFor(kind service.Kind) int {
	if s, ok := kindStatus[kind]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// ServiceErr renders a service error with its stable kind tag.
func ServiceErr(err error) (int, Response) {
	kind := service.KindOf(err)
	status := StatusFor(kind)

	msg := err.Error()
	var se *service.Error
	if errors.As(err, &se) && se.Msg != "" {
		msg = se.Msg
	}
	if status >= http.StatusInternalServerError {
		log.Error("request failed", zap.String("kind", string(kind)), zap.Error(err))
		if gin.Mode() == gin.ReleaseMode && (se == nil || se.Msg == "") {
			msg = "internal error"
		}
	}

	res := Err(status, msg, err)
	res.Kind = string(kind)
	if se != nil {
		for _, id := range se.IDs {
			res.IDs = append(res.IDs, id.String())
		}
	}
	return status, res
}
