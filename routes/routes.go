package routes

import (
	"github.com/am5510/hiyeum/app"
	"github.com/am5510/hiyeum/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	s := controllers.GetSrv(a)
	controllers.Register(r, s, app.AdminGate(a.AdminSessions()))
}
