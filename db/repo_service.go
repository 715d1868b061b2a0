package db

import (
	"context"
	"errors"

	"github.com/am5510/hiyeum/models"

	"gorm.io/gorm"
)

var (
	ErrServiceExists = errors.New("service id already exists")
)

// CreateService inserts a new catalog entry. A duplicate id fails with
// ErrServiceExists and leaves the existing row untouched. Detection rides on
// the driver's key-violation error so concurrent creates of the same id
// cannot both slip past a pre-check.
func (r *Repo) CreateService(ctx context.Context, svc *models.Service) error {
	err := r.DB.WithContext(ctx).Create(svc).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrServiceExists
	}
	return err
}

func (r *Repo) FindServiceByID(ctx context.Context, id string) (*models.Service, error) {
	var svc models.Service
	if err := r.DB.WithContext(ctx).First(&svc, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *Repo) ListServices(ctx context.Context) ([]models.Service, error) {
	var svcs []models.Service
	err := r.DB.WithContext(ctx).Order(`"order" ASC`).Find(&svcs).Error
	return svcs, err
}

// UpdateService applies only the fields the caller provided; a nil field is
// left untouched, so a partial PUT cannot silently drop the cover image.
// A provided-but-empty image clears it to NULL.
func (r *Repo) UpdateService(ctx context.Context, id string, name, image *string, order *int) (*models.Service, error) {
	var svc models.Service
	if err := r.DB.WithContext(ctx).First(&svc, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if name != nil {
		svc.Name = *name
	}
	if image != nil {
		if *image == "" {
			svc.Image = nil
		} else {
			svc.Image = image
		}
	}
	if order != nil {
		svc.Order = *order
	}
	if err := r.DB.WithContext(ctx).Save(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// DeleteService is unconditional: historical requests keep their denormalized
// service name and are orphaned safely.
func (r *Repo) DeleteService(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Delete(&models.Service{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
