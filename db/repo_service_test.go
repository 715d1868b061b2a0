package db

import (
	"context"
	"testing"

	"github.com/am5510/hiyeum/models"

	"gorm.io/gorm"
)

func TestServiceListOrdering(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, s := range []models.Service{
		{ID: "video", Name: "Video", Order: 30},
		{ID: "audio", Name: "Audio", Order: 10},
		{ID: "rooms", Name: "Meeting Rooms", Order: 20},
	} {
		svc := s
		if err := repo.CreateService(ctx, &svc); err != nil {
			t.Fatalf("create %s: %v", s.ID, err)
		}
	}

	svcs, err := repo.ListServices(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"audio", "rooms", "video"}
	for i, id := range want {
		if svcs[i].ID != id {
			t.Fatalf("list[%d] = %s, want %s (must sort ascending by order)", i, svcs[i].ID, id)
		}
	}
}

func TestCreateServiceDuplicateID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.CreateService(ctx, &models.Service{ID: "audio", Name: "Audio", Order: 1}); err != nil {
		t.Fatalf("create: %v", err)
	}
	err := repo.CreateService(ctx, &models.Service{ID: "audio", Name: "Other", Order: 9})
	if err != ErrServiceExists {
		t.Fatalf("duplicate create: err = %v, want ErrServiceExists", err)
	}

	// the existing entry must be untouched
	svc, err := repo.FindServiceByID(ctx, "audio")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if svc.Name != "Audio" || svc.Order != 1 {
		t.Errorf("existing entry mutated: %+v", svc)
	}
}

func TestUpdateAndDeleteService(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.CreateService(ctx, &models.Service{ID: "audio", Name: "Audio", Order: 1}); err != nil {
		t.Fatalf("create: %v", err)
	}

	name := "Audio Gear"
	img := "https://cdn.example.com/audio.png"
	order := 5
	svc, err := repo.UpdateService(ctx, "audio", &name, &img, &order)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if svc.Name != "Audio Gear" || svc.Order != 5 || svc.Image == nil || *svc.Image != img {
		t.Errorf("update result = %+v", svc)
	}

	if _, err := repo.UpdateService(ctx, "nope", &name, nil, nil); err != gorm.ErrRecordNotFound {
		t.Errorf("update unknown: err = %v, want ErrRecordNotFound", err)
	}

	if err := repo.DeleteService(ctx, "audio"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.DeleteService(ctx, "audio"); err != gorm.ErrRecordNotFound {
		t.Errorf("second delete: err = %v, want ErrRecordNotFound", err)
	}
}

// An update that only provides some fields must leave the rest alone; an
// explicitly empty image clears it.
func TestUpdateServicePartial(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	img := "https://cdn.example.com/audio.png"
	if err := repo.CreateService(ctx, &models.Service{ID: "audio", Name: "Audio", Image: &img, Order: 1}); err != nil {
		t.Fatalf("create: %v", err)
	}

	name := "Audio Gear"
	svc, err := repo.UpdateService(ctx, "audio", &name, nil, nil)
	if err != nil {
		t.Fatalf("update name: %v", err)
	}
	if svc.Name != "Audio Gear" {
		t.Errorf("name = %q, want Audio Gear", svc.Name)
	}
	if svc.Image == nil || *svc.Image != img {
		t.Errorf("image should be untouched, got %v", svc.Image)
	}
	if svc.Order != 1 {
		t.Errorf("order should be untouched, got %d", svc.Order)
	}

	empty := ""
	svc, err = repo.UpdateService(ctx, "audio", nil, &empty, nil)
	if err != nil {
		t.Fatalf("clear image: %v", err)
	}
	if svc.Image != nil {
		t.Errorf("empty image should clear, got %q", *svc.Image)
	}
	if svc.Name != "Audio Gear" {
		t.Errorf("name should be untouched, got %q", svc.Name)
	}
}

// Deleting a service must not cascade to requests that reference its name.
func TestDeleteServiceOrphansRequests(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.CreateService(ctx, &models.Service{ID: "audio", Name: "Audio", Order: 1}); err != nil {
		t.Fatalf("create service: %v", err)
	}
	req := testRequest("Audio")
	if err := repo.CreateRequest(ctx, req); err != nil {
		t.Fatalf("create request: %v", err)
	}

	if err := repo.DeleteService(ctx, "audio"); err != nil {
		t.Fatalf("delete service: %v", err)
	}
	got, err := repo.FindRequestByID(ctx, req.ID)
	if err != nil {
		t.Fatalf("request should survive: %v", err)
	}
	if got.Service != "Audio" {
		t.Errorf("denormalized service name changed: %q", got.Service)
	}
}
