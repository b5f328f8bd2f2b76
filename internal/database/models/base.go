package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel provides common fields for all models keyed by a string UUID
type BaseModel struct {
	ID        string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	CreatedAt time.Time `json:"createdAt" gorm:"not null"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"not null"`
}

// BeforeCreate sets the UUID if not already set
func (base *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == "" {
		base.ID = uuid.NewString()
	}
	return nil
}
