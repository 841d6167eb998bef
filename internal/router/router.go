// Package router wires handlers, sessions and middleware into a gin engine.
package router

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/yukikurage/todo-list/internal/constants"
	"github.com/yukikurage/todo-list/internal/handlers"
	"github.com/yukikurage/todo-list/internal/metrics"
	"github.com/yukikurage/todo-list/internal/middleware"
	"github.com/yukikurage/todo-list/internal/repository"
	"github.com/yukikurage/todo-list/internal/services"
	"github.com/yukikurage/todo-list/internal/web"
	"gorm.io/gorm"
)

// Deps are the collaborators the engine is built from.
type Deps struct {
	DB           *gorm.DB
	SessionStore sessions.Store
	Logger       *log.Logger
	// Registry receives the application metrics and backs /metrics.
	Registry *prometheus.Registry
}

// New builds the gin engine with every route registered.
func New(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.SetHTMLTemplate(web.Templates())
	r.Use(sessions.Sessions(constants.SessionCookieName, deps.SessionStore))

	var m *metrics.Metrics
	if deps.Registry != nil {
		m = metrics.New(deps.Registry)
		r.GET("/metrics", gin.WrapH(metrics.Handler(deps.Registry)))
	}

	userRepo := repository.NewUserRepository(deps.DB)
	listRepo := repository.NewTodoListRepository(deps.DB)
	itemRepo := repository.NewListItemRepository(deps.DB)

	authService := services.NewAuthService(userRepo)
	dashboardService := services.NewDashboardService(listRepo, itemRepo)

	authHandler := handlers.NewAuthHandler(authService, m, deps.Logger)
	dashboardHandler := handlers.NewDashboardHandler(authService, dashboardService, m, deps.Logger)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "To-do list app is running",
		})
	})

	r.GET(constants.HomePath, authHandler.Home)
	r.POST("/logout", authHandler.Logout)

	// Auth pages (anonymous only)
	anonymous := r.Group("")
	anonymous.Use(middleware.RedirectIfAuthenticated())
	{
		anonymous.GET(constants.LoginPath, authHandler.LoginPage)
		anonymous.POST(constants.LoginPath, authHandler.Login)
		anonymous.GET(constants.RegisterPath, authHandler.RegisterPage)
		anonymous.POST(constants.RegisterPath, authHandler.Register)
	}

	// Dashboard routes (protected)
	dashboard := r.Group(constants.DashboardPath)
	dashboard.Use(middleware.RequireAuth())
	{
		dashboard.GET("", dashboardHandler.Show)
		dashboard.POST("", dashboardHandler.Submit)
		dashboard.GET("/:list_id", dashboardHandler.Show)
		dashboard.POST("/:list_id", dashboardHandler.Submit)
		dashboard.GET("/:list_id/:task_id", dashboardHandler.Show)
		dashboard.POST("/:list_id/:task_id", dashboardHandler.Submit)
	}

	return r
}
