package access

import (
	"net/http"

	"tb-console/internal/domain"
	"tb-console/internal/session"
	"tb-console/internal/shared/contextutil"
	"tb-console/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// SessionSource lets the middleware read the current session without
// binding to the concrete manager.
type SessionSource interface {
	Current() session.Session
}

// Require gates the routes behind it on the current session. With no
// roles it only requires authentication; with roles the session role
// must be a member of the set.
func Require(src SessionSource, allowed ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := src.Current()

		switch Decide(sess, allowed) {
		case DecisionLogin:
			response.Denied(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication is required", LoginPath)
			c.Abort()
			return
		case DecisionHome:
			response.Denied(c, http.StatusForbidden, "FORBIDDEN", "You do not have permission to access this resource", HomePath)
			c.Abort()
			return
		}

		c.Set("role", string(sess.Role))
		c.Set("user_email", sess.Email)
		c.Set("user_id", sess.UserID)

		ctx := contextutil.WithUserEmail(c.Request.Context(), sess.Email)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
