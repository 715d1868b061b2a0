// controllers/upload_controller.go
package controllers

import (
	"io"
	"log"
	"net/http"
	"path/filepath"

	"github.com/am5510/hiyeum/app"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UploadController struct{ *Srv }

func NewUploadController(s *Srv) *UploadController { return &UploadController{Srv: s} }

// POST /api/upload
// Multipart "file" goes to object storage under a collision-resistant key;
// the caller patches the returned URL onto its request afterwards.
func (uc *UploadController) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "No file uploaded"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, app.H{"error": "Failed to upload file"})
		return
	}
	defer f.Close()

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	key := uuid.NewString() + "-" + filepath.Base(fh.Filename)

	publicURL, err := uc.Store.Put(c.Request.Context(), key, contentType, f)
	if err != nil {
		log.Printf("Upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, app.H{"error": "Failed to upload file"})
		return
	}
	c.JSON(http.StatusOK, app.H{"publicUrl": publicURL})
}

// GET /api/image-proxy?url=
// Same-origin passthrough so the admin pages can draw remote images onto a
// canvas without tainting it.
func (uc *UploadController) ImageProxy(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		c.JSON(http.StatusBadRequest, app.H{"error": "URL is required"})
		return
	}

	resp, err := http.Get(url)
	if err != nil {
		log.Printf("Error proxying image: %v", err)
		c.JSON(http.StatusInternalServerError, app.H{"error": "Failed to fetch image"})
		return
	}
	defer resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	c.Header("Content-Type", contentType)
	c.Header("Access-Control-Allow-Origin", "*")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, resp.Body)
}
