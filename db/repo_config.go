package db

import (
	"context"
	"errors"

	"github.com/am5510/hiyeum/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetConfigMap returns every setting as a flat key→value map.
func (r *Repo) GetConfigMap(ctx context.Context) (map[string]string, error) {
	var rows []models.SystemConfig
	if err := r.DB.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	m := make(map[string]string, len(rows))
	for _, row := range rows {
		m[row.Key] = row.Value
	}
	return m, nil
}

// GetConfigValue looks up one key, falling back to def when absent.
func (r *Repo) GetConfigValue(ctx context.Context, key, def string) (string, error) {
	var row models.SystemConfig
	err := r.DB.WithContext(ctx).First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return def, nil
	}
	if err != nil {
		return "", err
	}
	return row.Value, nil
}

func (r *Repo) UpsertConfig(ctx context.Context, key, value string) error {
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&models.SystemConfig{Key: key, Value: value}).Error
}
