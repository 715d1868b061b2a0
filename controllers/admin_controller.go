// controllers/admin_controller.go
package controllers

import (
	"net/http"

	"github.com/am5510/hiyeum/app"

	"github.com/gin-gonic/gin"
)

type AdminController struct{ *Srv }

func NewAdminController(s *Srv) *AdminController { return &AdminController{Srv: s} }

const defaultLogoURL = "/hiyeum-logo.png"

// GET /admin
// Everything the dashboard needs in one payload: requests newest first,
// the catalog in display order, per-service request counts, and the logo.
func (adm *AdminController) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	reqs, err := adm.Repo.ListRequests(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	svcs, err := adm.Repo.ListServices(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	rows, err := adm.Repo.CountRequestsByService(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
		return
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		if row.Service != "" {
			counts[row.Service] = row.Count
		}
	}

	logoURL, err := adm.Repo.GetConfigValue(ctx, "site_logo", defaultLogoURL)
	if err != nil {
		logoURL = defaultLogoURL
	}

	c.JSON(http.StatusOK, app.H{
		"requests": reqs,
		"services": svcs,
		"counts":   counts,
		"logoUrl":  logoURL,
	})
}

// GET /admin/login — gate bypass target; the page itself is static.
func (adm *AdminController) LoginPage(c *gin.Context) {
	c.JSON(http.StatusOK, app.H{"ok": true})
}
