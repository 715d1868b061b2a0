// controllers/auth_controller.go
package controllers

import (
	"crypto/subtle"
	"net/http"

	"github.com/am5510/hiyeum/app"

	"github.com/gin-gonic/gin"
)

type AuthController struct{ *Srv }

func NewAuthController(s *Srv) *AuthController { return &AuthController{Srv: s} }

// POST /api/auth/login
// One shared secret, one opaque session flag. No accounts, no lockout.
func (ac *AuthController) Login(c *gin.Context) {
	var in struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	pw := ac.Cfg.AdminPassword
	if pw == "" || subtle.ConstantTimeCompare([]byte(in.Password), []byte(pw)) != 1 {
		c.JSON(http.StatusUnauthorized, app.H{"error": "Invalid password"})
		return
	}

	id, err := ac.AdminSess.Create(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "Internal server error"})
		return
	}
	ac.setAdminCookie(c.Writer, id, ac.AdminSess.TTL())
	c.JSON(http.StatusOK, app.H{"success": true})
}

// POST /api/auth/logout
func (ac *AuthController) Logout(c *gin.Context) {
	if ck, err := c.Request.Cookie(app.AdminSessionCookie); err == nil && ck.Value != "" {
		_ = ac.AdminSess.Delete(c.Request.Context(), ck.Value)
	}
	ac.clearAdminCookie(c.Writer)
	c.Redirect(http.StatusSeeOther, "/")
}
