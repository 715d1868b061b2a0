// controllers/service_controller.go
package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/am5510/hiyeum/app"
	"github.com/am5510/hiyeum/db"
	"github.com/am5510/hiyeum/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ServiceController struct{ *Srv }

func NewServiceController(s *Srv) *ServiceController { return &ServiceController{Srv: s} }

// GET /api/services
func (sc *ServiceController) List(c *gin.Context) {
	svcs, err := sc.Repo.ListServices(c.Request.Context())
	if err != nil {
		log.Printf("Failed to fetch services: %v", err)
		c.JSON(http.StatusInternalServerError, app.H{"error": "Failed to fetch services"})
		return
	}
	c.JSON(http.StatusOK, svcs)
}

// POST /api/services
func (sc *ServiceController) Create(c *gin.Context) {
	var in struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Image string `json:"image"`
		Order int    `json:"order"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	if in.ID == "" || in.Name == "" {
		c.JSON(http.StatusBadRequest, app.H{"error": "Missing required fields"})
		return
	}

	svc := &models.Service{ID: in.ID, Name: in.Name, Image: optional(in.Image), Order: in.Order}
	if err := sc.Repo.CreateService(c.Request.Context(), svc); err != nil {
		if errors.Is(err, db.ErrServiceExists) {
			c.JSON(http.StatusConflict, app.H{"error": "Service id already exists"})
			return
		}
		log.Printf("Failed to create service: %v", err)
		c.JSON(http.StatusInternalServerError, app.H{"error": "Failed to create service"})
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// GET /api/services/:id
func (sc *ServiceController) Get(c *gin.Context) {
	svc, err := sc.Repo.FindServiceByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, app.H{"error": "Service not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "Failed to fetch service"})
		return
	}
	c.JSON(http.StatusOK, svc)
}

// PUT /api/services/:id
func (sc *ServiceController) Update(c *gin.Context) {
	// Pointer fields so an omitted key is distinguishable from an empty value:
	// keys left out of the body do not overwrite what is stored.
	var in struct {
		Name  *string `json:"name"`
		Image *string `json:"image"`
		Order *int    `json:"order"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	svc, err := sc.Repo.UpdateService(c.Request.Context(), c.Param("id"), in.Name, in.Image, in.Order)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, app.H{"error": "Service not found"})
		return
	}
	if err != nil {
		log.Printf("Failed to update service: %v", err)
		c.JSON(http.StatusInternalServerError, app.H{"error": "Failed to update service"})
		return
	}
	c.JSON(http.StatusOK, svc)
}

// DELETE /api/services/:id
func (sc *ServiceController) Delete(c *gin.Context) {
	err := sc.Repo.DeleteService(c.Request.Context(), c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, app.H{"error": "Service not found"})
		return
	}
	if err != nil {
		log.Printf("Failed to delete service: %v", err)
		c.JSON(http.StatusInternalServerError, app.H{"error": "Failed to delete service"})
		return
	}
	c.JSON(http.StatusOK, app.H{"message": "Service deleted successfully"})
}
