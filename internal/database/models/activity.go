package models

import (
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Activity is an append-only audit entry of a record. Ids are ULIDs so
// lexical order follows creation order.
type Activity struct {
	ID        string            `json:"id" gorm:"type:varchar(26);primaryKey"`
	RecordID  string            `json:"recordId" gorm:"size:36;not null;index"`
	Type      ActivityType      `json:"type" gorm:"size:20;not null"`
	Content   string            `json:"content" gorm:"type:text"`
	Metadata  datatypes.JSONMap `json:"metadata"`
	CreatedBy string            `json:"createdBy" gorm:"size:100"`
	CreatedAt time.Time         `json:"createdAt" gorm:"not null"`
}

// TableName returns the table name for Activity
func (Activity) TableName() string {
	return "crm_activities"
}

// BeforeCreate assigns a ULID if not already set
func (a *Activity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = ulid.Make().String()
	}
	return nil
}
