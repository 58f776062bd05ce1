// Package errx provides registry-backed domain errors. Each bounded context
// declares a registry with a short prefix and registers its error codes once
// at init; services and repositories then mint errors from the registry and
// the HTTP layer maps them to responses without knowing the domain.
package errx

import (
	"errors"
	"fmt"
	"net/http"
)

type Type string

const (
	TypeValidation     Type = "VALIDATION"
	TypeNotFound       Type = "NOT_FOUND"
	TypeConflict       Type = "CONFLICT"
	TypeAuthentication Type = "AUTHENTICATION"
	TypeAuthorization  Type = "AUTHORIZATION"
	TypeBusiness       Type = "BUSINESS"
	TypeInternal       Type = "INTERNAL"
	TypeExternal       Type = "EXTERNAL"
)

// Code identifies a registered error, prefixed with its registry name,
// e.g. "JOB.NOT_FOUND".
type Code string

type definition struct {
	errType    Type
	httpStatus int
	message    string
}

// Registry holds the error definitions of one bounded context. Registration
// happens in package var blocks, so no locking is needed afterwards.
type Registry struct {
	prefix string
	defs   map[Code]definition
}

func NewRegistry(prefix string) *Registry {
	return &Registry{prefix: prefix, defs: make(map[Code]definition)}
}

// Register records a code and returns its fully qualified form. Registering
// the same code twice panics: that is always a programming error.
func (r *Registry) Register(code string, t Type, httpStatus int, message string) Code {
	full := Code(r.prefix + "." + code)
	if _, ok := r.defs[full]; ok {
		panic(fmt.Sprintf("errx: duplicate code %s", full))
	}
	r.defs[full] = definition{errType: t, httpStatus: httpStatus, message: message}
	return full
}

// New mints a fresh error for a registered code. Each call returns a new
// value so WithDetail never leaks details across requests.
func (r *Registry) New(code Code) *Error {
	def, ok := r.defs[code]
	if !ok {
		return &Error{
			Code:       code,
			Type:       TypeInternal,
			HTTPStatus: http.StatusInternalServerError,
			Message:    "unregistered error code",
		}
	}
	return &Error{
		Code:       code,
		Type:       def.errType,
		HTTPStatus: def.httpStatus,
		Message:    def.message,
	}
}

type Error struct {
	Code       Code           `json:"code"`
	Type       Type           `json:"type"`
	HTTPStatus int            `json:"-"`
	Message    string         `json:"message"`
	Details    map[string]any `json:"details,omitempty"`

	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// Is matches by code, so errors.Is(err, job.ErrJobNotFound()) works even
// though every minted error is a distinct value.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

func (e *Error) WithCause(err error) *Error {
	e.cause = err
	return e
}

// HTTPResponse is the wire shape every handler error resolves to.
type HTTPResponse struct {
	Type    Type           `json:"type"`
	Code    Code           `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func (e *Error) ToHTTPResponse() HTTPResponse {
	return HTTPResponse{
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	}
}

// Wrap converts an infrastructure failure into an *Error without registering
// a code for it. The cause is kept for logs but never serialized.
func Wrap(err error, message string, t Type) *Error {
	status := http.StatusInternalServerError
	switch t {
	case TypeValidation:
		status = http.StatusBadRequest
	case TypeNotFound:
		status = http.StatusNotFound
	case TypeConflict:
		status = http.StatusConflict
	case TypeAuthentication:
		status = http.StatusUnauthorized
	case TypeAuthorization:
		status = http.StatusForbidden
	case TypeBusiness:
		status = http.StatusBadRequest
	case TypeExternal:
		status = http.StatusBadGateway
	}
	return &Error{
		Code:       Code(string(t)),
		Type:       t,
		HTTPStatus: status,
		Message:    message,
		cause:      err,
	}
}

// AsError extracts an *Error from an error chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
