package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeBadRequest       = "bad_request"
	CodeValidation       = "validation_error"
	CodeAlreadyExists    = "already_exists"
	CodeNotFound         = "not_found"
	CodeSelfSubscription = "self_subscription"
	CodeForbidden        = "forbidden"
	CodeUnauthorized     = "unauthorized"
)

// Error is the API-visible error shape. Fields carries per-field messages for
// validation failures and is rendered as {field: [messages]} by the handlers.
type Error struct {
	Status int
	Code   string
	Err    error
	Fields map[string][]string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	for field, msgs := range e.Fields {
		if len(msgs) > 0 {
			return fmt.Sprintf("%s: %s", field, msgs[0])
		}
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

// Validation reports a single field failure.
func Validation(field, msg string) *Error {
	return &Error{
		Status: http.StatusBadRequest,
		Code:   CodeValidation,
		Fields: map[string][]string{field: {msg}},
	}
}

// BadRequest is a flat 400 with a single message, for failures that are not
// attributable to one payload field.
func BadRequest(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: CodeBadRequest, Err: errors.New(msg)}
}

func AlreadyExists(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: CodeAlreadyExists, Err: errors.New(msg)}
}

func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Code: CodeNotFound, Err: errors.New(msg)}
}

func SelfSubscription() *Error {
	return &Error{
		Status: http.StatusBadRequest,
		Code:   CodeSelfSubscription,
		Err:    errors.New("cannot subscribe to yourself"),
	}
}

func Forbidden(msg string) *Error {
	return &Error{Status: http.StatusForbidden, Code: CodeForbidden, Err: errors.New(msg)}
}

func Unauthorized(msg string) *Error {
	return &Error{Status: http.StatusUnauthorized, Code: CodeUnauthorized, Err: errors.New(msg)}
}

// As unwraps err to an *Error when one is in the chain.
func As(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
