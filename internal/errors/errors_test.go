package errors

import (
	"fmt"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func TestFormErrors(t *testing.T) {
	var nilErrors *FormErrors
	require.True(t, nilErrors.Empty())
	require.Nil(t, nilErrors.Get("username"))

	formErrors := NewFormErrors()
	require.NoError(t, formErrors.Err())

	formErrors.Add("username", "User is already in use!")
	formErrors.AddNonField("Password Fields Not Matching!")

	require.True(t, formErrors.Has("username"))
	require.False(t, formErrors.Has("email"))
	require.Equal(t, []string{"Password Fields Not Matching!"}, formErrors.NonField())
	require.Error(t, formErrors.Err())
	require.Contains(t, formErrors.Error(), "User is already in use!")
}

func TestFormErrors_Merge(t *testing.T) {
	formErrors := NewFormErrors()
	formErrors.Add("username", "This field is required.")

	other := NewFormErrors()
	other.Add("username", "This field is required.")
	other.Add("username", "User is already in use!")
	other.AddNonField("Password Fields Not Matching!")

	formErrors.Merge(other)
	formErrors.Merge(nil)

	require.Equal(t, []string{"This field is required.", "User is already in use!"}, formErrors.Get("username"))
	require.Equal(t, []string{"Password Fields Not Matching!"}, formErrors.NonField())
}

func TestFromBinding(t *testing.T) {
	type form struct {
		ListName string `validate:"required,max=5"`
		Email    string `validate:"email"`
	}

	err := validator.New().Struct(form{ListName: "too long name", Email: "nope"})
	require.Error(t, err)

	formErrors := FromBinding(err, map[string]string{"ListName": "list_name"})
	require.Equal(t, []string{"Ensure this value has at most 5 characters."}, formErrors.Get("list_name"))
	require.Equal(t, []string{"Enter a valid email address."}, formErrors.Get("Email"))
}

func TestFromBinding_NonValidationError(t *testing.T) {
	formErrors := FromBinding(fmt.Errorf("malformed body"), nil)
	require.Equal(t, []string{"Invalid form submission."}, formErrors.NonField())
}
