package models

import "time"

const ServiceTable = "services"

// Service is one catalog entry. The ID is caller-chosen and appears in URLs.
type Service struct {
	ID        string    `gorm:"primaryKey;size:100" json:"id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	Image     *string   `json:"image,omitempty"`
	Order     int       `gorm:"not null;default:0" json:"order"` // display order, ascending; gaps allowed
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Service) TableName() string { return ServiceTable }
