package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Kind string

const (
	KindValidation             Kind = "validation"
	KindNotFound               Kind = "not_found"
	KindCrossPropertyReference Kind = "cross_property_reference"
	KindCascadeIncomplete      Kind = "cascade_incomplete"
	KindIncompleteProperty     Kind = "incomplete_property"
	KindAuthorization          Kind = "authorization"
	KindPersistence            Kind = "persistence"
)

// Error is the single error type returned by the tour services. Callers
// branch on Kind, usually through errors.Is with one of the sentinels below.
type Error struct {
	Kind Kind
	Op   string
	Msg  string
	// IDs carries the hotspots left behind by an incomplete cascade.
	IDs []uuid.UUID
	Err error
}

// Kind sentinels for errors.Is.
var (
	ErrValidation             = &Error{Kind: KindValidation}
	ErrNotFound               = &Error{Kind: KindNotFound}
	ErrCrossPropertyReference = &Error{Kind: KindCrossPropertyReference}
	ErrCascadeIncomplete      = &Error{Kind: KindCascadeIncomplete}
	ErrIncompleteProperty     = &Error{Kind: KindIncompleteProperty}
	ErrAuthorization          = &Error{Kind: KindAuthorization}
	ErrPersistence            = &Error{Kind: KindPersistence}
)

func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(string(e.Kind))
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	if len(e.IDs) > 0 {
		fmt.Fprintf(&b, " %v", e.IDs)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the kind of a service error, or persistence for anything else.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindPersistence
}

func validationErr(op, format string, args ...any) error {
	return &Error{Kind: KindValidation, Op: op, Msg: fmt.Sprintf(format, args...)}
}

func notFoundErr(op, entity string, id uuid.UUID) error {
	return &Error{Kind: KindNotFound, Op: op, Msg: fmt.Sprintf("%s %s not found", entity, id)}
}

func crossPropertyErr(op string, hostProperty, targetProperty uuid.UUID) error {
	return &Error{
		Kind: KindCrossPropertyReference,
		Op:   op,
		Msg:  fmt.Sprintf("target scene belongs to property %s, host scene to %s", targetProperty, hostProperty),
	}
}

func cascadeIncompleteErr(op, msg string, ids []uuid.UUID, err error) error {
	return &Error{Kind: KindCascadeIncomplete, Op: op, Msg: msg, IDs: ids, Err: err}
}

func incompletePropertyErr(op, msg string) error {
	return &Error{Kind: KindIncompleteProperty, Op: op, Msg: msg}
}

func authorizationErr(op string) error {
	return &Error{Kind: KindAuthorization, Op: op, Msg: "caller is not authorized"}
}

func persistenceErr(op string, err error) error {
	return &Error{Kind: KindPersistence, Op: op, Err: err}
}

// fromRepo converts a gateway error. A missing row becomes not_found for
// the named entity; everything else is a persistence failure.
func fromRepo(op, entity string, id uuid.UUID, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFoundErr(op, entity, id)
	}
	return persistenceErr(op, err)
}
