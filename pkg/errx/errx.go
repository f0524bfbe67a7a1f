package errx

import (
	"fmt"
)

// Type classifies errors into broad categories
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

// Code identifies a registered error within a registry
type Code string

// definition holds the registered metadata for a code
type definition struct {
	Type       Type
	HTTPStatus int
	Message    string
}

// Registry holds error definitions for a domain, prefixing codes
// with the domain name (e.g. "SCREENING_NOT_FOUND")
type Registry struct {
	prefix      string
	definitions map[Code]definition
}

// NewRegistry creates a new error registry for a domain
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix:      prefix,
		definitions: make(map[Code]definition),
	}
}

// Register adds an error definition and returns its code
func (r *Registry) Register(code string, t Type, httpStatus int, message string) Code {
	full := Code(r.prefix + "_" + code)
	r.definitions[full] = definition{
		Type:       t,
		HTTPStatus: httpStatus,
		Message:    message,
	}
	return full
}

// New creates an error from a registered code
func (r *Registry) New(code Code) *Error {
	def, ok := r.definitions[code]
	if !ok {
		// Programmer error: unregistered code
		return &Error{
			Code:       code,
			Type:       TypeInternal,
			HTTPStatus: 500,
			Message:    "unregistered error code",
		}
	}
	return &Error{
		Code:       code,
		Type:       def.Type,
		HTTPStatus: def.HTTPStatus,
		Message:    def.Message,
	}
}

// NewWithCause creates an error from a registered code wrapping a cause
func (r *Registry) NewWithCause(code Code, cause error) *Error {
	e := r.New(code)
	e.Cause = cause
	return e
}

// Error is a structured application error with an HTTP mapping
type Error struct {
	Code       Code           `json:"code"`
	Type       Type           `json:"type"`
	HTTPStatus int            `json:"-"`
	Message    string         `json:"message"`
	Details    map[string]any `json:"details,omitempty"`
	Cause      error          `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the cause for errors.Is/As
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithDetail attaches a single detail key/value and returns the error
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithDetails attaches multiple details and returns the error
func (e *Error) WithDetails(details map[string]any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any, len(details))
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// ToHTTPResponse returns the JSON-serializable body for HTTP responses
func (e *Error) ToHTTPResponse() map[string]any {
	resp := map[string]any{
		"code":    e.Code,
		"type":    e.Type,
		"message": e.Message,
	}
	if len(e.Details) > 0 {
		resp["details"] = e.Details
	}
	return resp
}

// IsType checks whether err is an *Error of the given type
func IsType(err error, t Type) bool {
	e, ok := err.(*Error)
	return ok && e.Type == t
}
