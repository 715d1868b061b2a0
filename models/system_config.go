package models

import "time"

const SystemConfigTable = "system_configs"

// SystemConfig is a key→string setting (currently only the site logo URL).
type SystemConfig struct {
	Key       string    `gorm:"primaryKey;size:100" json:"key"`
	Value     string    `gorm:"not null" json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (SystemConfig) TableName() string { return SystemConfigTable }
