package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/todo-list/internal/config"
	"github.com/yukikurage/todo-list/internal/constants"
)

func TestNewSessionStore_CookieIsSameSiteLax(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	cfg.SessionStore = "cookie"
	cfg.SessionSecret = "secret"

	store, err := newSessionStore(cfg)
	require.NoError(t, err)

	r := gin.New()
	r.Use(sessions.Sessions(constants.SessionCookieName, store))
	r.GET("/", func(c *gin.Context) {
		session := sessions.Default(c)
		session.Set(constants.ContextKeyUserID, uint64(1))
		require.NoError(t, session.Save())
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, constants.SessionCookieName, cookies[0].Name)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, "/", cookies[0].Path)
}

func TestNewSessionStore_UnknownStore(t *testing.T) {
	cfg := config.Default()
	cfg.SessionStore = "memcached"

	_, err := newSessionStore(cfg)
	require.Error(t, err)
}
