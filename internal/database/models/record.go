package models

// Record is one schema-less data row of a module. Data is keyed by field name.
type Record struct {
	BaseModel
	AppID     string       `json:"appId" gorm:"size:36;not null;index"`
	ModuleID  string       `json:"moduleId" gorm:"size:36;not null;index"`
	Data      JSONDocument `json:"data" gorm:"not null"`
	CreatedBy string       `json:"createdBy" gorm:"size:100"`
	UpdatedBy string       `json:"updatedBy" gorm:"size:100"`
}

// TableName returns the table name for Record
func (Record) TableName() string {
	return "crm_records"
}
