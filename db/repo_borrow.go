package db

import (
	"context"
	"errors"

	"github.com/am5510/hiyeum/models"
)

var ErrRequestNotFound = errors.New("request not found")

// Requests

func (r *Repo) CreateRequest(ctx context.Context, req *models.BorrowRequest) error {
	return r.DB.WithContext(ctx).Create(req).Error
}

func (r *Repo) FindRequestByID(ctx context.Context, id uint) (*models.BorrowRequest, error) {
	var req models.BorrowRequest
	if err := r.DB.WithContext(ctx).First(&req, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *Repo) ListRequests(ctx context.Context) ([]models.BorrowRequest, error) {
	var reqs []models.BorrowRequest
	err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&reqs).Error
	return reqs, err
}

// UpdateRequestFields patches the given columns (status and/or attach_file)
// and refreshes updated_at. Last write wins; there is no version check.
func (r *Repo) UpdateRequestFields(ctx context.Context, id uint, fields map[string]interface{}) (*models.BorrowRequest, error) {
	var req models.BorrowRequest
	if err := r.DB.WithContext(ctx).First(&req, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := r.DB.WithContext(ctx).Model(&req).Updates(fields).Error; err != nil {
		return nil, err
	}
	if err := r.DB.WithContext(ctx).First(&req, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// DeleteRequest is a hard delete. Unknown ids report ErrRecordNotFound rather
// than a silent success.
func (r *Repo) DeleteRequest(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&models.BorrowRequest{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRequestNotFound
	}
	return nil
}

// ServiceCount is one row of the dashboard's per-service summary.
type ServiceCount struct {
	Service string `json:"service"`
	Count   int64  `json:"count"`
}

func (r *Repo) CountRequestsByService(ctx context.Context) ([]ServiceCount, error) {
	var rows []ServiceCount
	err := r.DB.WithContext(ctx).
		Model(&models.BorrowRequest{}).
		Select("service, COUNT(*) AS count").
		Group("service").
		Scan(&rows).Error
	return rows, err
}
