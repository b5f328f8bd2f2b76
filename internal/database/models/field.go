package models

import "gorm.io/datatypes"

// Choice is one option of a select field
type Choice struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
	Color string `json:"color,omitempty" yaml:"color"`
}

// FieldOptions carries select choices or numeric bounds
type FieldOptions struct {
	Choices  []Choice `json:"choices,omitempty" yaml:"choices"`
	Min      *float64 `json:"min,omitempty" yaml:"min"`
	Max      *float64 `json:"max,omitempty" yaml:"max"`
	Currency string   `json:"currency,omitempty" yaml:"currency"`
}

// Choice looks up a select choice by its stored value
func (o FieldOptions) Choice(value string) (Choice, bool) {
	for _, c := range o.Choices {
		if c.Value == value {
			return c, true
		}
	}
	return Choice{}, false
}

// Field is a typed attribute definition; Name is the key into Record.Data
type Field struct {
	BaseModel
	ModuleID     string                           `json:"moduleId" gorm:"size:36;not null;index;uniqueIndex:idx_crm_fields_module_name"`
	Name         string                           `json:"name" gorm:"size:50;not null;uniqueIndex:idx_crm_fields_module_name"`
	Label        string                           `json:"label" gorm:"size:200;not null"`
	Type         FieldType                        `json:"type" gorm:"size:20;not null"`
	Required     bool                             `json:"required" gorm:"not null"`
	Unique       bool                             `json:"unique" gorm:"column:is_unique;not null"`
	DefaultValue datatypes.JSONType[any]          `json:"defaultValue"`
	Placeholder  string                           `json:"placeholder" gorm:"size:200"`
	Options      datatypes.JSONType[FieldOptions] `json:"options"`
	Validation   datatypes.JSONMap                `json:"validation"`
	SortOrder    int                              `json:"sortOrder" gorm:"not null"`
	ShowInList   bool                             `json:"showInList" gorm:"not null"`
	ShowInForm   bool                             `json:"showInForm" gorm:"not null"`
	IsSystem     bool                             `json:"isSystem" gorm:"not null"`
}

// TableName returns the table name for Field
func (Field) TableName() string {
	return "crm_fields"
}
