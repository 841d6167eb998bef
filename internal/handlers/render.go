package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todo-list/internal/dto"
	apierrors "github.com/yukikurage/todo-list/internal/errors"
)

// Page is the context every template renders from. Form and Errors are
// never nil so templates can dereference them unconditionally.
type Page struct {
	Title     string
	User      *dto.UserDTO
	Form      any
	Errors    *apierrors.FormErrors
	Dashboard *dto.DashboardDTO
	NotFound  bool
}

func render(c *gin.Context, status int, name string, page Page) {
	if page.Errors == nil {
		page.Errors = apierrors.NewFormErrors()
	}
	if page.Form == nil {
		page.Form = struct{}{}
	}
	c.HTML(status, name, page)
}
