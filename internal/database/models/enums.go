package models

// FieldType defines the value types a module field can declare
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeEmail    FieldType = "email"
	FieldTypePhone    FieldType = "phone"
	FieldTypeURL      FieldType = "url"
	FieldTypeNumber   FieldType = "number"
	FieldTypeCurrency FieldType = "currency"
	FieldTypeDate     FieldType = "date"
	FieldTypeSelect   FieldType = "select"
	FieldTypeCheckbox FieldType = "checkbox"
	FieldTypeFile     FieldType = "file"
	FieldTypeImage    FieldType = "image"
)

// FieldTypes lists every supported field type in declaration order
var FieldTypes = []FieldType{
	FieldTypeText, FieldTypeTextarea, FieldTypeEmail, FieldTypePhone,
	FieldTypeURL, FieldTypeNumber, FieldTypeCurrency, FieldTypeDate,
	FieldTypeSelect, FieldTypeCheckbox, FieldTypeFile, FieldTypeImage,
}

// IsValid checks if the FieldType is valid
func (t FieldType) IsValid() bool {
	for _, ft := range FieldTypes {
		if ft == t {
			return true
		}
	}
	return false
}

// IsNumeric reports whether values of this type are numbers
func (t FieldType) IsNumeric() bool {
	return t == FieldTypeNumber || t == FieldTypeCurrency
}

// ViewType defines how a view presents module records
type ViewType string

const (
	ViewTypeTable  ViewType = "table"
	ViewTypeKanban ViewType = "kanban"
)

// IsValid checks if the ViewType is valid
func (v ViewType) IsValid() bool {
	switch v {
	case ViewTypeTable, ViewTypeKanban:
		return true
	}
	return false
}

// TenantPlan defines the subscription plan of a tenant
type TenantPlan string

const (
	TenantPlanFree       TenantPlan = "free"
	TenantPlanStarter    TenantPlan = "starter"
	TenantPlanPro        TenantPlan = "pro"
	TenantPlanEnterprise TenantPlan = "enterprise"
)

// IsValid checks if the TenantPlan is valid
func (p TenantPlan) IsValid() bool {
	switch p {
	case TenantPlanFree, TenantPlanStarter, TenantPlanPro, TenantPlanEnterprise:
		return true
	}
	return false
}

// SortDirection defines the ordering of a view sort entry
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// IsValid checks if the SortDirection is valid
func (d SortDirection) IsValid() bool {
	return d == SortAsc || d == SortDesc
}

// ActivityType defines the kind of an audit trail entry
type ActivityType string

const (
	ActivityTypeCreated ActivityType = "created"
	ActivityTypeUpdated ActivityType = "updated"
	ActivityTypeNote    ActivityType = "note"
	ActivityTypeCall    ActivityType = "call"
	ActivityTypeEmail   ActivityType = "email"
	ActivityTypeMeeting ActivityType = "meeting"
)

// IsValid checks if the ActivityType is valid
func (a ActivityType) IsValid() bool {
	switch a {
	case ActivityTypeCreated, ActivityTypeUpdated, ActivityTypeNote,
		ActivityTypeCall, ActivityTypeEmail, ActivityTypeMeeting:
		return true
	}
	return false
}

// IsManual reports whether callers may append this activity type directly
func (a ActivityType) IsManual() bool {
	return a.IsValid() && a != ActivityTypeCreated && a != ActivityTypeUpdated
}
