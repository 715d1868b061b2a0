// controllers/config_controller.go
package controllers

import (
	"log"
	"net/http"

	"github.com/am5510/hiyeum/app"

	"github.com/gin-gonic/gin"
)

type ConfigController struct{ *Srv }

func NewConfigController(s *Srv) *ConfigController { return &ConfigController{Srv: s} }

// GET /api/admin/config
func (cc *ConfigController) Get(c *gin.Context) {
	m, err := cc.Repo.GetConfigMap(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching system config: %v", err)
		c.JSON(http.StatusInternalServerError, app.H{"error": "Failed to fetch config"})
		return
	}
	c.JSON(http.StatusOK, m)
}

// POST /api/admin/config
// Upserts every string value in the body; everything else is skipped.
func (cc *ConfigController) Update(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	for key, v := range body {
		value, ok := v.(string)
		if !ok {
			continue
		}
		if err := cc.Repo.UpsertConfig(c.Request.Context(), key, value); err != nil {
			log.Printf("Error updating system config: %v", err)
			c.JSON(http.StatusInternalServerError, app.H{"error": "Failed to update config"})
			return
		}
	}
	c.JSON(http.StatusOK, app.H{"success": true})
}
