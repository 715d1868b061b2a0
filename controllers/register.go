// controllers/register.go
package controllers

import (
	"github.com/gin-gonic/gin"
)

// Register wires every controller onto the router. main and the handler tests
// both go through here, so there is a single route table.
func Register(r *gin.Engine, s *Srv, gateMW gin.HandlerFunc) {
	borrowCtl := NewBorrowController(s)
	serviceCtl := NewServiceController(s)
	authCtl := NewAuthController(s)
	uploadCtl := NewUploadController(s)
	configCtl := NewConfigController(s)
	adminCtl := NewAdminController(s)
	webhookCtl := NewWebhookController(s)

	// ------------------------------
	// Borrow requests (public intake + admin actions)
	// ------------------------------
	borrow := r.Group("/api/borrow")
	{
		borrow.GET("", borrowCtl.List)
		borrow.POST("", borrowCtl.Create)
		borrow.PATCH("", borrowCtl.Patch)
		borrow.DELETE("", borrowCtl.Delete)
		borrow.GET("/status-options", borrowCtl.StatusOptions)
	}

	// ------------------------------
	// Service catalog
	// ------------------------------
	services := r.Group("/api/services")
	{
		services.GET("", serviceCtl.List)
		services.POST("", serviceCtl.Create)
		services.GET("/:id", serviceCtl.Get)
		services.PUT("/:id", serviceCtl.Update)
		services.DELETE("/:id", serviceCtl.Delete)
	}

	// ------------------------------
	// Auth, uploads, settings, webhook
	// ------------------------------
	r.POST("/api/auth/login", authCtl.Login)
	r.POST("/api/auth/logout", authCtl.Logout)

	r.POST("/api/upload", uploadCtl.Upload)
	r.GET("/api/image-proxy", uploadCtl.ImageProxy)

	r.GET("/api/admin/config", configCtl.Get)
	r.POST("/api/admin/config", configCtl.Update)

	r.POST("/api/webhook/line", webhookCtl.LineEvents)

	// ------------------------------
	// Admin pages (cookie-gated, login page excepted)
	// ------------------------------
	admin := r.Group("/admin", gateMW)
	{
		admin.GET("", adminCtl.Dashboard)
		admin.GET("/login", adminCtl.LoginPage)
	}
}
