package constants

const (
	// ContextKeyUserID is the session and gin context key of the current user.
	ContextKeyUserID = "user_id"
	// ContextKeyRequestID is the gin context key of the request id.
	ContextKeyRequestID = "request_id"

	SessionCookieName = "todo_session"
	SessionMaxAge     = 86400 * 7

	MinPasswordLength = 8
	MaxUsernameLength = 64
)

// Entry points
const (
	HomePath      = "/"
	LoginPath     = "/login"
	RegisterPath  = "/register"
	DashboardPath = "/dashboard"
)
