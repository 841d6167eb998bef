package errors

import (
	"net/http"
	"slices"
	"strings"
)

// Error codes
const (
	// Authentication errors
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"

	// Validation errors
	ErrCodeInvalidInput = "INVALID_INPUT"

	// Resource errors
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"

	// Service errors
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// AppError is an error shown to the user on a rendered page.
type AppError struct {
	Code    string
	Message string
	Status  int
}

// Error implements the error interface
func (e *AppError) Error() string {
	return e.Message
}

// NewAppError creates a new AppError
func NewAppError(code, message string, status int) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
	}
}

// Predefined errors
var (
	ErrNotFound      = NewAppError(ErrCodeNotFound, "The requested list or task was not found.", http.StatusNotFound)
	ErrInternalError = NewAppError(ErrCodeInternalError, "Something went wrong. Please try again.", http.StatusInternalServerError)
)

// NonFieldKey collects form-level messages that belong to no single field.
const NonFieldKey = "__all__"

// FormErrors holds validation messages keyed by form field. A non-empty
// FormErrors is returned as an error and re-rendered with the form.
type FormErrors struct {
	Fields map[string][]string
}

// NewFormErrors creates an empty FormErrors
func NewFormErrors() *FormErrors {
	return &FormErrors{Fields: map[string][]string{}}
}

// Add records a message for field.
func (e *FormErrors) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = map[string][]string{}
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// AddNonField records a form-level message.
func (e *FormErrors) AddNonField(message string) {
	e.Add(NonFieldKey, message)
}

// Get returns the messages recorded for field.
func (e *FormErrors) Get(field string) []string {
	if e == nil {
		return nil
	}
	return e.Fields[field]
}

// Merge adds the messages of other that e does not already hold.
func (e *FormErrors) Merge(other *FormErrors) {
	if other == nil {
		return
	}
	for field, messages := range other.Fields {
		for _, message := range messages {
			if !slices.Contains(e.Get(field), message) {
				e.Add(field, message)
			}
		}
	}
}

// NonField returns the form-level messages.
func (e *FormErrors) NonField() []string {
	return e.Get(NonFieldKey)
}

// Has reports whether field has any message.
func (e *FormErrors) Has(field string) bool {
	return len(e.Get(field)) > 0
}

// Empty reports whether no message was recorded.
func (e *FormErrors) Empty() bool {
	return e == nil || len(e.Fields) == 0
}

// Err returns e as an error, or nil when it is empty.
func (e *FormErrors) Err() error {
	if e.Empty() {
		return nil
	}
	return e
}

// Error implements the error interface
func (e *FormErrors) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, messages := range e.Fields {
		parts = append(parts, field+": "+strings.Join(messages, "; "))
	}
	return "invalid form: " + strings.Join(parts, ", ")
}
