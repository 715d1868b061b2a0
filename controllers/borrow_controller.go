// controllers/borrow_controller.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/am5510/hiyeum/app"
	"github.com/am5510/hiyeum/db"
	"github.com/am5510/hiyeum/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BorrowController struct{ *Srv }

func NewBorrowController(s *Srv) *BorrowController { return &BorrowController{Srv: s} }

// dates arrive from the form as plain days, from API clients as RFC 3339
func parseDate(v string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, v)
}

// GET /api/borrow
func (bc *BorrowController) List(c *gin.Context) {
	reqs, err := bc.Repo.ListRequests(c.Request.Context())
	if err != nil {
		log.Printf("Failed to fetch requests: %v", err)
		c.JSON(http.StatusInternalServerError, app.H{"error": "Failed to fetch requests"})
		return
	}
	c.JSON(http.StatusOK, reqs)
}

// GET /api/borrow/status-options
func (bc *BorrowController) StatusOptions(c *gin.Context) {
	c.JSON(http.StatusOK, models.StatusOptions())
}

type createRequestInput struct {
	Service    string `json:"service"`
	Equipment  string `json:"equipment"`
	Project    string `json:"project"`
	Username   string `json:"username"`
	Department string `json:"department"`
	Contact    string `json:"contact"`
	LineID     string `json:"lineId"`
	UsageDate  string `json:"usageDate"`
	EndDate    string `json:"endDate"`
	UsageTime  string `json:"usageTime"`
	Location   string `json:"location"`
	Details    string `json:"details"`
}

// POST /api/borrow
func (bc *BorrowController) Create(c *gin.Context) {
	var in createRequestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	if in.Service == "" || in.Equipment == "" || in.Username == "" || in.Department == "" ||
		in.Contact == "" || in.UsageDate == "" || in.Location == "" {
		c.JSON(http.StatusBadRequest, app.H{"error": "Missing required fields"})
		return
	}

	usageDate, err := parseDate(in.UsageDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid usageDate"})
		return
	}
	var endDate *time.Time
	if in.EndDate != "" {
		t, err := parseDate(in.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, app.H{"error": "invalid endDate"})
			return
		}
		endDate = &t
	}

	req := &models.BorrowRequest{
		Service:    in.Service,
		Equipment:  in.Equipment,
		Project:    optional(in.Project),
		Username:   in.Username,
		Department: in.Department,
		Contact:    in.Contact,
		LineID:     optional(in.LineID),
		UsageDate:  usageDate,
		EndDate:    endDate,
		UsageTime:  optional(in.UsageTime),
		Location:   in.Location,
		Details:    optional(in.Details),
		Status:     models.StatusPending,
	}
	if err := bc.Repo.CreateRequest(c.Request.Context(), req); err != nil {
		log.Printf("Failed to create request: %v", err)
		c.JSON(http.StatusInternalServerError, app.H{"error": "Failed to create request: " + err.Error()})
		return
	}

	// best-effort push; the request is already persisted
	if err := bc.Notifier.NotifyNewRequest(c.Request.Context(), req); err != nil {
		log.Printf("Notification failed but request created: %v", err)
	}

	c.JSON(http.StatusCreated, req)
}

type patchRequestInput struct {
	ID         *uint  `json:"id"`
	Status     string `json:"status"`
	AttachFile string `json:"attachFile"`
}

// PATCH /api/borrow
func (bc *BorrowController) Patch(c *gin.Context) {
	var in patchRequestInput
	if err := c.ShouldBindJSON(&in); err != nil || in.ID == nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "Missing required fields"})
		return
	}

	fields := map[string]interface{}{}
	if in.Status != "" {
		st := models.Status(in.Status)
		if !st.Valid() {
			c.JSON(http.StatusBadRequest, app.H{"error": "unrecognized status"})
			return
		}
		fields["status"] = st
	}
	if in.AttachFile != "" {
		fields["attach_file"] = in.AttachFile
	}

	if len(fields) == 0 {
		req, err := bc.Repo.FindRequestByID(c.Request.Context(), *in.ID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "request not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, req)
		return
	}

	req, err := bc.Repo.UpdateRequestFields(c.Request.Context(), *in.ID, fields)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, app.H{"error": "request not found"})
		return
	}
	if err != nil {
		log.Printf("Failed to update status: %v", err)
		c.JSON(http.StatusInternalServerError, app.H{"error": "Failed to update status: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, req)
}

// DELETE /api/borrow?id=
func (bc *BorrowController) Delete(c *gin.Context) {
	raw := c.Query("id")
	if raw == "" {
		c.JSON(http.StatusBadRequest, app.H{"error": "Missing id parameter"})
		return
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid id"})
		return
	}

	if err := bc.Repo.DeleteRequest(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, db.ErrRequestNotFound) {
			c.JSON(http.StatusNotFound, app.H{"error": "request not found"})
			return
		}
		log.Printf("Failed to delete request: %v", err)
		c.JSON(http.StatusInternalServerError, app.H{"error": "Failed to delete request: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, app.H{"message": "Request deleted successfully"})
}
