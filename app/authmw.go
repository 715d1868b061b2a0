package app

import (
	"net/http"

	"github.com/am5510/hiyeum/session"

	"github.com/gin-gonic/gin"
)

const AdminSessionCookie = "admin_session"
const AdminLoginPath = "/admin/login"

// AdminGate protects /admin pages. Anything under the prefix except the login
// page redirects there when the session cookie is absent or unknown.
func AdminGate(adminSess *session.AdminSessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == AdminLoginPath {
			c.Next()
			return
		}

		ck, err := c.Request.Cookie(AdminSessionCookie)
		if err != nil || ck.Value == "" {
			c.Redirect(http.StatusFound, AdminLoginPath)
			c.Abort()
			return
		}
		if !adminSess.Validate(c.Request.Context(), ck.Value) {
			c.Redirect(http.StatusFound, AdminLoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}
