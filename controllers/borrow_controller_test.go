package controllers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/am5510/hiyeum/models"
)

func TestCreateRequest(t *testing.T) {
	s, fn := newTestSrv(t)
	r := newTestRouter(s)

	w := doJSON(r, http.MethodPost, "/api/borrow", validIntake())
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var got models.BorrowRequest
	decodeBody(t, w, &got)
	if got.ID == 0 {
		t.Error("response must carry the assigned id")
	}
	if got.Status != models.StatusPending {
		t.Errorf("status = %q, want pending", got.Status)
	}
	if got.Project != nil || got.Details != nil {
		t.Error("absent optionals must stay null, not empty strings")
	}

	// a dispatch attempt must be observed
	if len(fn.calls) != 1 {
		t.Fatalf("notifier calls = %d, want 1", len(fn.calls))
	}
	if fn.calls[0].ID != got.ID {
		t.Errorf("notifier saw id %d, want %d", fn.calls[0].ID, got.ID)
	}
}

func TestCreateRequestMissingRequiredField(t *testing.T) {
	s, fn := newTestSrv(t)
	r := newTestRouter(s)

	required := []string{"service", "equipment", "username", "department", "contact", "usageDate", "location"}
	for _, field := range required {
		body := validIntake()
		delete(body, field)
		w := doJSON(r, http.MethodPost, "/api/borrow", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("missing %s: status = %d, want 400", field, w.Code)
		}
	}

	// no writes, no notifications
	reqs, err := s.Repo.ListRequests(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(reqs) != 0 {
		t.Errorf("store size = %d, want 0", len(reqs))
	}
	if len(fn.calls) != 0 {
		t.Errorf("notifier calls = %d, want 0", len(fn.calls))
	}
}

func TestCreateRequestNotificationFailureIsNonFatal(t *testing.T) {
	s, fn := newTestSrv(t)
	fn.err = errors.New("line is down")
	r := newTestRouter(s)

	w := doJSON(r, http.MethodPost, "/api/borrow", validIntake())
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, dispatch failure must not surface", w.Code)
	}
	if len(fn.calls) != 1 {
		t.Errorf("notifier calls = %d, want 1", len(fn.calls))
	}
}

func TestPatchRequestStatus(t *testing.T) {
	s, _ := newTestSrv(t)
	r := newTestRouter(s)

	var created models.BorrowRequest
	decodeBody(t, doJSON(r, http.MethodPost, "/api/borrow", validIntake()), &created)

	w := doJSON(r, http.MethodPatch, "/api/borrow", map[string]interface{}{
		"id": created.ID, "status": "approved",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var patched models.BorrowRequest
	decodeBody(t, w, &patched)
	if patched.Status != models.StatusApproved {
		t.Errorf("status = %q, want approved", patched.Status)
	}
	if patched.ID != created.ID || !patched.CreatedAt.Equal(created.CreatedAt) {
		t.Error("patch must not touch id/createdAt")
	}

	// the list reflects the change
	var listed []models.BorrowRequest
	decodeBody(t, doJSON(r, http.MethodGet, "/api/borrow", nil), &listed)
	if len(listed) != 1 || listed[0].Status != models.StatusApproved {
		t.Errorf("list = %+v", listed)
	}

	// any→any is allowed, e.g. straight back past the workflow
	w = doJSON(r, http.MethodPatch, "/api/borrow", map[string]interface{}{
		"id": created.ID, "status": "returned",
	})
	if w.Code != http.StatusOK {
		t.Errorf("returned-from-approved: status = %d", w.Code)
	}
}

func TestPatchRequestErrors(t *testing.T) {
	s, _ := newTestSrv(t)
	r := newTestRouter(s)

	var created models.BorrowRequest
	decodeBody(t, doJSON(r, http.MethodPost, "/api/borrow", validIntake()), &created)

	w := doJSON(r, http.MethodPatch, "/api/borrow", map[string]interface{}{"status": "approved"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing id: status = %d, want 400", w.Code)
	}

	w = doJSON(r, http.MethodPatch, "/api/borrow", map[string]interface{}{
		"id": created.ID, "status": "sideways",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("unrecognized status: status = %d, want 400", w.Code)
	}

	w = doJSON(r, http.MethodPatch, "/api/borrow", map[string]interface{}{
		"id": 9999, "status": "approved",
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown id: status = %d, want 404", w.Code)
	}
}

func TestDeleteRequest(t *testing.T) {
	s, _ := newTestSrv(t)
	r := newTestRouter(s)

	var created models.BorrowRequest
	decodeBody(t, doJSON(r, http.MethodPost, "/api/borrow", validIntake()), &created)

	w := doJSON(r, http.MethodDelete, fmt.Sprintf("/api/borrow?id=%d", created.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: status = %d", w.Code)
	}

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/api/borrow?id=%d", created.ID), nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("delete gone id: status = %d, want 404", w.Code)
	}

	if w := doJSON(r, http.MethodDelete, "/api/borrow", nil); w.Code != http.StatusBadRequest {
		t.Errorf("delete without id: status = %d, want 400", w.Code)
	}
}

func TestStatusOptions(t *testing.T) {
	s, _ := newTestSrv(t)
	r := newTestRouter(s)

	var opts []models.StatusOption
	decodeBody(t, doJSON(r, http.MethodGet, "/api/borrow/status-options", nil), &opts)
	if len(opts) != 4 {
		t.Fatalf("options = %d, want 4", len(opts))
	}
	if opts[0].Value != models.StatusPending || opts[3].Value != models.StatusReturned {
		t.Errorf("options out of workflow order: %+v", opts)
	}
}

func TestUpload(t *testing.T) {
	s, _ := newTestSrv(t)
	r := newTestRouter(s)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "photo.jpg")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	if _, err := fw.Write([]byte("not really a jpeg")); err != nil {
		t.Fatalf("write: %v", err)
	}
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		PublicURL string `json:"publicUrl"`
	}
	decodeBody(t, w, &resp)
	if resp.PublicURL == "" {
		t.Fatal("publicUrl missing")
	}

	fu := s.Store.(*fakeUploader)
	if len(fu.keys) != 1 {
		t.Fatalf("uploads = %d, want 1", len(fu.keys))
	}
	// key must be unique-prefixed, not just the client's filename
	if fu.keys[0] == "photo.jpg" {
		t.Error("object key must carry a collision-resistant prefix")
	}

	// no file part
	if w := doJSON(r, http.MethodPost, "/api/upload", nil); w.Code != http.StatusBadRequest {
		t.Errorf("no file: status = %d, want 400", w.Code)
	}
}
