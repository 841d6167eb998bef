package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/todo-list/internal/logging"
	"github.com/yukikurage/todo-list/internal/models"
	"github.com/yukikurage/todo-list/internal/repository"
	"github.com/yukikurage/todo-list/internal/router"
	"github.com/yukikurage/todo-list/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type appTestEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	registry    *prometheus.Registry
	authService *services.AuthService
}

func setupApp(t *testing.T) appTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.TodoList{}, &models.ListItem{}))

	registry := prometheus.NewRegistry()
	r := router.New(router.Deps{
		DB:           db,
		SessionStore: cookie.NewStore([]byte("secret")),
		Logger:       logging.New(io.Discard, "error"),
		Registry:     registry,
	})

	return appTestEnv{
		db:          db,
		router:      r,
		registry:    registry,
		authService: services.NewAuthService(repository.NewUserRepository(db)),
	}
}

// client replays the cookies the router sets, like a browser would.
type client struct {
	t       *testing.T
	router  *gin.Engine
	cookies map[string]*http.Cookie
}

func (env appTestEnv) newClient(t *testing.T) *client {
	return &client{t: t, router: env.router, cookies: map[string]*http.Cookie{}}
}

func (cl *client) do(req *http.Request) *httptest.ResponseRecorder {
	cl.t.Helper()
	for _, c := range cl.cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	cl.router.ServeHTTP(w, req)

	for _, c := range w.Result().Cookies() {
		if c.MaxAge < 0 {
			delete(cl.cookies, c.Name)
			continue
		}
		cl.cookies[c.Name] = c
	}
	return w
}

func (cl *client) get(path string) *httptest.ResponseRecorder {
	cl.t.Helper()
	return cl.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (cl *client) post(path string, form url.Values) *httptest.ResponseRecorder {
	cl.t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return cl.do(req)
}

// registerUser creates an account through the service layer.
func (env appTestEnv) registerUser(t *testing.T, username string) *models.User {
	t.Helper()
	user, err := env.authService.Register(services.RegisterInput{
		Username:        username,
		Email:           username + "@example.com",
		Password:        "supersecret",
		ConfirmPassword: "supersecret",
	})
	require.NoError(t, err)
	return user
}

// loggedIn returns a client holding a session for username.
func (env appTestEnv) loggedIn(t *testing.T, username string) (*client, *models.User) {
	t.Helper()
	user := env.registerUser(t, username)

	cl := env.newClient(t)
	w := cl.post("/login", url.Values{"username": {username}, "password": {"supersecret"}})
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/dashboard", w.Header().Get("Location"))
	return cl, user
}

func (env appTestEnv) createList(t *testing.T, userID uint64, name string) *models.TodoList {
	t.Helper()
	list := &models.TodoList{UserID: userID, Name: name}
	require.NoError(t, env.db.Create(list).Error)
	return list
}

func (env appTestEnv) createItem(t *testing.T, listID uint64, text string) *models.ListItem {
	t.Helper()
	item := &models.ListItem{ListID: listID, Text: text}
	require.NoError(t, env.db.Create(item).Error)
	return item
}

func (env appTestEnv) count(t *testing.T, model any, query string, args ...any) int64 {
	t.Helper()
	var n int64
	q := env.db.Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}
