// Package apperr define la taxonomía de errores compartida por servicios, adapters y handlers.
package apperr

import (
	"errors"
	"net/http"
)

var (
	ErrValidation  = errors.New("validation failed")
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("backend unavailable")
)

// Error lleva el kind (uno de los sentinels), un mensaje público y la causa original.
// La causa nunca se expone al cliente; solo se loguea.
type Error struct {
	Kind  error
	Msg   string
	Cause error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.Error()
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

func Validation(msg string) error {
	return &Error{Kind: ErrValidation, Msg: msg}
}

func NotFound(msg string) error {
	return &Error{Kind: ErrNotFound, Msg: msg}
}

func Conflict(msg string, cause error) error {
	return &Error{Kind: ErrConflict, Msg: msg, Cause: cause}
}

func Unavailable(cause error) error {
	return &Error{Kind: ErrUnavailable, Cause: cause}
}

// Wrap reclasifica una causa bajo un kind dado, con mensaje público opcional.
func Wrap(kind error, msg string, cause error) error {
	return &Error{Kind: kind, Msg: msg, Cause: cause}
}

// HTTPStatus mapea el kind a status code. Errores sin kind son 500.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage devuelve el texto apto para el cliente.
// Validation, not-found y conflict usan el mensaje propio (escrito por nosotros, nunca texto del driver);
// unavailable e internal usan textos fijos.
func PublicMessage(err error) string {
	if err == nil {
		return ""
	}
	var ae *Error
	hasMsg := errors.As(err, &ae) && ae.Msg != ""

	switch {
	case errors.Is(err, ErrValidation):
		if hasMsg {
			return ae.Msg
		}
		return "invalid input"
	case errors.Is(err, ErrNotFound):
		if hasMsg {
			return ae.Msg
		}
		return "not found"
	case errors.Is(err, ErrConflict):
		if hasMsg {
			return ae.Msg
		}
		return "conflicts with existing data"
	case errors.Is(err, ErrUnavailable):
		return "database unavailable"
	default:
		return "internal error"
	}
}
