package services

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindInternal
)

// AppError is a failure that maps onto a client visible status. Err, when
// set, is logged but never shown to the client.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func badRequest(msg string) *AppError {
	return &AppError{Kind: KindValidation, Message: msg}
}

func unauthorized(msg string) *AppError {
	return &AppError{Kind: KindUnauthorized, Message: msg}
}

func forbidden(msg string) *AppError {
	return &AppError{Kind: KindForbidden, Message: msg}
}

func notFound(msg string) *AppError {
	return &AppError{Kind: KindNotFound, Message: msg}
}

func conflict(msg string, err error) *AppError {
	return &AppError{Kind: KindConflict, Message: msg, Err: err}
}

// AsAppError reports whether err carries an *AppError.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsKind reports whether err is an *AppError of kind k.
func IsKind(err error, k ErrorKind) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Kind == k
}

var kindStatus = map[ErrorKind]int{
	KindValidation:   http.StatusBadRequest,
	KindUnauthorized: http.StatusUnauthorized,
	KindForbidden:    http.StatusForbidden,
	KindNotFound:     http.StatusNotFound,
	KindConflict:     http.StatusConflict,
	KindInternal:     http.StatusInternalServerError,
}

// Status returns the HTTP status for an *AppError and false for any other
// error.
func Status(err error) (int, *AppError, bool) {
	appErr, ok := AsAppError(err)
	if !ok {
		return http.StatusInternalServerError, nil, false
	}
	status, ok := kindStatus[appErr.Kind]
	if !ok {
		status = http.StatusInternalServerError
	}
	return status, appErr, true
}
