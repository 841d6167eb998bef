package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todo-list/internal/constants"
	"github.com/yukikurage/todo-list/internal/dto"
	apierrors "github.com/yukikurage/todo-list/internal/errors"
	"github.com/yukikurage/todo-list/internal/metrics"
	"github.com/yukikurage/todo-list/internal/middleware"
	"github.com/yukikurage/todo-list/internal/models"
	"github.com/yukikurage/todo-list/internal/services"
)

// DashboardHandler serves /dashboard, /dashboard/:list_id and
// /dashboard/:list_id/:task_id for both GET and POST.
type DashboardHandler struct {
	authService      *services.AuthService
	dashboardService *services.DashboardService
	metrics          *metrics.Metrics
	logger           *log.Logger
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(authService *services.AuthService, dashboardService *services.DashboardService, m *metrics.Metrics, logger *log.Logger) *DashboardHandler {
	return &DashboardHandler{
		authService:      authService,
		dashboardService: dashboardService,
		metrics:          m,
		logger:           logger,
	}
}

// DashboardForm echoes the text inputs of the dashboard back after a
// failed submission.
type DashboardForm struct {
	ListName     string `form:"list_name"`
	ListItemText string `form:"list_item_text"`
}

// Show renders the dashboard for the path selection.
func (h *DashboardHandler) Show(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	sel, ok := parseSelection(c)
	if !ok {
		h.renderNotFound(c, user)
		return
	}

	h.renderState(c, http.StatusOK, user, sel, DashboardForm{}, nil)
}

// Submit dispatches the posted form_type. Successful mutations redirect;
// validation failures and unknown form types re-render the current page.
func (h *DashboardHandler) Submit(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	formType := c.PostForm("form_type")

	sel, ok := parseSelection(c)
	if !ok {
		h.metrics.ObserveAction(formType, metrics.OutcomeNotFound)
		h.renderNotFound(c, user)
		return
	}

	form := DashboardForm{
		ListName:     c.PostForm("list_name"),
		ListItemText: c.PostForm("list_item_text"),
	}

	action, err := services.ParseAction(formType, sel.ListID, sel.TaskID, c.Request.PostForm)
	if err != nil {
		h.metrics.ObserveAction(formType, metrics.OutcomeInvalid)
		h.renderState(c, http.StatusOK, user, sel, form, err)
		return
	}
	if action == nil {
		h.metrics.ObserveAction(formType, metrics.OutcomeIgnored)
		h.renderState(c, http.StatusOK, user, sel, DashboardForm{}, nil)
		return
	}

	outcome, err := h.dashboardService.Apply(user.ID, action)
	if err != nil {
		if services.IsNotFound(err) {
			h.metrics.ObserveAction(formType, metrics.OutcomeNotFound)
			middleware.Logger(c, h.logger).Warn("dashboard action outside ownership chain",
				"form_type", formType, "user_id", user.ID)
			h.renderNotFound(c, user)
			return
		}

		h.metrics.ObserveAction(formType, metrics.OutcomeError)
		middleware.Logger(c, h.logger).Error("dashboard action failed", "form_type", formType, "err", err)
		h.renderInternalError(c, user)
		return
	}

	h.metrics.ObserveAction(formType, metrics.OutcomeSuccess)
	middleware.Logger(c, h.logger).Debug("dashboard action applied", "form_type", formType, "user_id", user.ID)
	c.Redirect(http.StatusFound, outcome.Redirect)
}

// currentUser resolves the session user. A session pointing at a deleted
// account is cleared and redirected to the login page.
func (h *DashboardHandler) currentUser(c *gin.Context) (*models.User, bool) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		c.Redirect(http.StatusFound, constants.LoginPath)
		return nil, false
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			if err := middleware.ClearSession(c); err != nil {
				middleware.Logger(c, h.logger).Error("failed to clear session", "err", err)
			}
			c.Redirect(http.StatusFound, constants.LoginPath)
			return nil, false
		}

		middleware.Logger(c, h.logger).Error("failed to load current user", "user_id", userID, "err", err)
		render(c, apierrors.ErrInternalError.Status, "dashboard.html", Page{
			Title:     "Dashboard",
			Form:      DashboardForm{},
			Errors:    internalFormError(),
			Dashboard: &dto.DashboardDTO{},
		})
		return nil, false
	}

	return user, true
}

// renderState loads the read context for sel and renders it with status.
// formErr, when it holds form errors, is shown next to the inputs.
func (h *DashboardHandler) renderState(c *gin.Context, status int, user *models.User, sel services.Selection, form DashboardForm, formErr error) {
	state, err := h.dashboardService.Load(user.ID, sel)
	if err != nil {
		if services.IsNotFound(err) {
			h.renderNotFound(c, user)
			return
		}
		middleware.Logger(c, h.logger).Error("failed to load dashboard", "err", err)
		h.renderInternalError(c, user)
		return
	}

	formErrors := apierrors.NewFormErrors()
	if formErr != nil && !errors.As(formErr, &formErrors) {
		formErrors = internalFormError()
	}

	h.renderDashboard(c, status, user, state, form, formErrors, false)
}

// renderNotFound shows the dashboard root with a generic not-found
// message. Missing and foreign resources look the same.
func (h *DashboardHandler) renderNotFound(c *gin.Context, user *models.User) {
	state, err := h.dashboardService.Load(user.ID, services.Selection{})
	if err != nil {
		middleware.Logger(c, h.logger).Error("failed to load dashboard", "err", err)
		h.renderDashboard(c, apierrors.ErrInternalError.Status, user, nil, DashboardForm{}, internalFormError(), false)
		return
	}
	h.renderDashboard(c, apierrors.ErrNotFound.Status, user, state, DashboardForm{}, nil, true)
}

func (h *DashboardHandler) renderInternalError(c *gin.Context, user *models.User) {
	h.renderDashboard(c, apierrors.ErrInternalError.Status, user, nil, DashboardForm{}, internalFormError(), false)
}

func (h *DashboardHandler) renderDashboard(c *gin.Context, status int, user *models.User, state *services.DashboardState, form DashboardForm, formErrors *apierrors.FormErrors, notFound bool) {
	dashboard := dto.ToDashboardDTO(*user, state)
	userDTO := dashboard.User
	render(c, status, "dashboard.html", Page{
		Title:     "Dashboard",
		User:      &userDTO,
		Form:      form,
		Errors:    formErrors,
		Dashboard: &dashboard,
		NotFound:  notFound,
	})
}

// parseSelection reads the optional list_id and task_id path segments. A
// malformed id, or one past the signed 64-bit range the database stores,
// can match nothing and reports false.
func parseSelection(c *gin.Context) (services.Selection, bool) {
	var sel services.Selection

	if raw := c.Param("list_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 63)
		if err != nil {
			return sel, false
		}
		sel.ListID = &id
	}

	if raw := c.Param("task_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 63)
		if err != nil {
			return sel, false
		}
		sel.TaskID = &id
	}

	return sel, true
}

func internalFormError() *apierrors.FormErrors {
	formErrors := apierrors.NewFormErrors()
	formErrors.AddNonField(apierrors.ErrInternalError.Message)
	return formErrors
}
