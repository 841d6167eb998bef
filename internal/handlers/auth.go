package handlers

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todo-list/internal/constants"
	apierrors "github.com/yukikurage/todo-list/internal/errors"
	"github.com/yukikurage/todo-list/internal/metrics"
	"github.com/yukikurage/todo-list/internal/middleware"
	"github.com/yukikurage/todo-list/internal/services"
)

// AuthHandler coordinates the landing, registration and login pages.
type AuthHandler struct {
	authService *services.AuthService
	metrics     *metrics.Metrics
	logger      *log.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, m *metrics.Metrics, logger *log.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		metrics:     m,
		logger:      logger,
	}
}

// RegisterForm is the registration form.
type RegisterForm struct {
	Username        string `form:"username" binding:"required,max=64"`
	Email           string `form:"email" binding:"required,email"`
	Password        string `form:"password" binding:"required,min=8"`
	ConfirmPassword string `form:"confirm_password" binding:"required,min=8"`
}

var registerFields = map[string]string{
	"Username":        "username",
	"Email":           "email",
	"Password":        "password",
	"ConfirmPassword": "confirm_password",
}

// LoginForm is the login form.
type LoginForm struct {
	Username string `form:"username" binding:"required,max=64"`
	Password string `form:"password" binding:"required"`
}

var loginFields = map[string]string{
	"Username": "username",
	"Password": "password",
}

// Home renders the landing page.
func (h *AuthHandler) Home(c *gin.Context) {
	render(c, http.StatusOK, "home.html", Page{})
}

// RegisterPage renders an empty registration form.
func (h *AuthHandler) RegisterPage(c *gin.Context) {
	render(c, http.StatusOK, "register.html", Page{Title: "Register", Form: RegisterForm{}})
}

// Register creates the account and logs the new user in.
func (h *AuthHandler) Register(c *gin.Context) {
	var form RegisterForm
	bindErr := c.ShouldBind(&form)
	input := services.RegisterInput{
		Username:        form.Username,
		Email:           form.Email,
		Password:        form.Password,
		ConfirmPassword: form.ConfirmPassword,
	}

	if bindErr != nil {
		// Report the availability and confirmation checks alongside the
		// shape errors.
		formErrors := apierrors.FromBinding(bindErr, registerFields)
		serviceErrors, err := h.authService.ValidateRegistration(input)
		if err != nil {
			middleware.Logger(c, h.logger).Error("registration validation failed", "err", err)
		}
		formErrors.Merge(serviceErrors)

		h.metrics.ObserveAuth("register", metrics.OutcomeInvalid)
		h.renderRegister(c, form, formErrors)
		return
	}

	user, err := h.authService.Register(input)
	if err != nil {
		var formErrors *apierrors.FormErrors
		if errors.As(err, &formErrors) {
			h.metrics.ObserveAuth("register", metrics.OutcomeInvalid)
			h.renderRegister(c, form, formErrors)
			return
		}

		h.metrics.ObserveAuth("register", metrics.OutcomeError)
		middleware.Logger(c, h.logger).Error("registration failed", "err", err)
		formErrors = apierrors.NewFormErrors()
		formErrors.AddNonField(apierrors.ErrInternalError.Message)
		render(c, apierrors.ErrInternalError.Status, "register.html", Page{Title: "Register", Form: redactRegister(form), Errors: formErrors})
		return
	}

	if err := middleware.EstablishSession(c, user.ID); err != nil {
		h.metrics.ObserveAuth("register", metrics.OutcomeError)
		middleware.Logger(c, h.logger).Error("failed to save session", "user_id", user.ID, "err", err)
		c.Redirect(http.StatusFound, constants.LoginPath)
		return
	}

	h.metrics.ObserveAuth("register", metrics.OutcomeSuccess)
	middleware.Logger(c, h.logger).Info("user registered", "user_id", user.ID)
	c.Redirect(http.StatusFound, constants.DashboardPath)
}

// LoginPage renders an empty login form.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	render(c, http.StatusOK, "login.html", Page{Title: "Log in", Form: LoginForm{}})
}

// Login authenticates the user and establishes the session. An incomplete
// submission is re-rendered without attempting authentication.
func (h *AuthHandler) Login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		h.metrics.ObserveAuth("login", metrics.OutcomeInvalid)
		h.renderLogin(c, http.StatusOK, form, apierrors.FromBinding(err, loginFields))
		return
	}

	user, err := h.authService.Login(services.LoginInput{
		Username: form.Username,
		Password: form.Password,
	})
	if err != nil {
		formErrors := apierrors.NewFormErrors()
		if errors.Is(err, services.ErrInvalidCredentials) {
			h.metrics.ObserveAuth("login", metrics.OutcomeInvalid)
			formErrors.AddNonField(services.MsgInvalidCredentials)
			h.renderLogin(c, http.StatusOK, form, formErrors)
			return
		}

		h.metrics.ObserveAuth("login", metrics.OutcomeError)
		middleware.Logger(c, h.logger).Error("login failed", "err", err)
		formErrors.AddNonField(apierrors.ErrInternalError.Message)
		h.renderLogin(c, apierrors.ErrInternalError.Status, form, formErrors)
		return
	}

	if err := middleware.EstablishSession(c, user.ID); err != nil {
		h.metrics.ObserveAuth("login", metrics.OutcomeError)
		middleware.Logger(c, h.logger).Error("failed to save session", "user_id", user.ID, "err", err)
		formErrors := apierrors.NewFormErrors()
		formErrors.AddNonField(apierrors.ErrInternalError.Message)
		h.renderLogin(c, apierrors.ErrInternalError.Status, form, formErrors)
		return
	}

	h.metrics.ObserveAuth("login", metrics.OutcomeSuccess)
	c.Redirect(http.StatusFound, constants.DashboardPath)
}

// Logout removes the authentication session.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := middleware.ClearSession(c); err != nil {
		middleware.Logger(c, h.logger).Error("failed to clear session", "err", err)
	}
	c.Redirect(http.StatusFound, constants.HomePath)
}

func (h *AuthHandler) renderRegister(c *gin.Context, form RegisterForm, formErrors *apierrors.FormErrors) {
	render(c, http.StatusOK, "register.html", Page{Title: "Register", Form: redactRegister(form), Errors: formErrors})
}

func (h *AuthHandler) renderLogin(c *gin.Context, status int, form LoginForm, formErrors *apierrors.FormErrors) {
	form.Password = ""
	render(c, status, "login.html", Page{Title: "Log in", Form: form, Errors: formErrors})
}

// redactRegister drops the passwords before the form is echoed back.
func redactRegister(form RegisterForm) RegisterForm {
	form.Password = ""
	form.ConfirmPassword = ""
	return form
}
