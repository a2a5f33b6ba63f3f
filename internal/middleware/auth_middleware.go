package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"auction-admin/internal/session"
)

// ContextUserKey is where RequireLogin stores the session.CurrentUser for
// downstream handlers.
const ContextUserKey = "current_user"

// RequireLogin short-circuits to the login page when the session carries no
// authenticated-user marker. The handler body never runs.
func RequireLogin(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := sessions.User(c.Request)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// UserFromContext returns the marker stored by RequireLogin.
func UserFromContext(c *gin.Context) (session.CurrentUser, bool) {
	v, exists := c.Get(ContextUserKey)
	if !exists {
		return session.CurrentUser{}, false
	}
	user, ok := v.(session.CurrentUser)
	return user, ok
}
