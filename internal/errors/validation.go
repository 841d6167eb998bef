package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FromBinding converts a gin binding error into FormErrors. fields maps
// struct field names to the form keys the template knows them by.
func FromBinding(err error, fields map[string]string) *FormErrors {
	formErrors := NewFormErrors()
	if err == nil {
		return formErrors
	}

	var validationErrors validator.ValidationErrors
	if !stderrors.As(err, &validationErrors) {
		formErrors.AddNonField("Invalid form submission.")
		return formErrors
	}

	for _, fe := range validationErrors {
		key, ok := fields[fe.Field()]
		if !ok {
			key = fe.Field()
		}
		formErrors.Add(key, validationMessage(fe))
	}
	return formErrors
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters.", fe.Param())
	case "min":
		return fmt.Sprintf("Ensure this value has at least %s characters.", fe.Param())
	case "email":
		return "Enter a valid email address."
	default:
		return "Enter a valid value."
	}
}
