package service

import (
	"time"

	"crm-builder-backend/internal/database/models"
)

// TenantResponse represents a tenant in API responses
type TenantResponse struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Slug      string                 `json:"slug"`
	OwnerID   string                 `json:"ownerId"`
	Plan      models.TenantPlan      `json:"plan"`
	Branding  map[string]interface{} `json:"branding"`
	Settings  map[string]interface{} `json:"settings"`
	CreatedAt time.Time              `json:"createdAt"`
	UpdatedAt time.Time              `json:"updatedAt"`
}

// CrmAppResponse represents a provisioned CRM app in API responses
type CrmAppResponse struct {
	ID             string                 `json:"id"`
	TenantID       string                 `json:"tenantId"`
	Name           string                 `json:"name"`
	Slug           string                 `json:"slug"`
	Description    string                 `json:"description"`
	Icon           string                 `json:"icon"`
	BusinessType   string                 `json:"businessType"`
	Config         models.AppConfig       `json:"config"`
	EnabledPillars []string               `json:"enabledPillars"`
	Branding       map[string]interface{} `json:"branding"`
	IsActive       bool                   `json:"isActive"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
}

// ModuleResponse represents a module in API responses
type ModuleResponse struct {
	ID          string                 `json:"id"`
	AppID       string                 `json:"appId"`
	PillarID    string                 `json:"pillarId"`
	SystemName  string                 `json:"systemName"`
	DisplayName string                 `json:"displayName"`
	Description string                 `json:"description"`
	Icon        string                 `json:"icon"`
	Color       string                 `json:"color"`
	Enabled     bool                   `json:"enabled"`
	SortOrder   int                    `json:"sortOrder"`
	Config      models.ModuleConfig    `json:"config"`
	Permissions map[string]interface{} `json:"permissions,omitempty"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

// FieldResponse represents a field definition in API responses
type FieldResponse struct {
	ID           string                 `json:"id"`
	ModuleID     string                 `json:"moduleId"`
	Name         string                 `json:"name"`
	Label        string                 `json:"label"`
	Type         models.FieldType       `json:"type"`
	Required     bool                   `json:"required"`
	Unique       bool                   `json:"unique"`
	DefaultValue interface{}            `json:"defaultValue"`
	Placeholder  string                 `json:"placeholder"`
	Options      models.FieldOptions    `json:"options"`
	Validation   map[string]interface{} `json:"validation,omitempty"`
	SortOrder    int                    `json:"sortOrder"`
	ShowInList   bool                   `json:"showInList"`
	ShowInForm   bool                   `json:"showInForm"`
	IsSystem     bool                   `json:"isSystem"`
	CreatedAt    time.Time              `json:"createdAt"`
	UpdatedAt    time.Time              `json:"updatedAt"`
}

// ViewResponse represents a saved view in API responses
type ViewResponse struct {
	ID        string                   `json:"id"`
	ModuleID  string                   `json:"moduleId"`
	Name      string                   `json:"name"`
	Type      models.ViewType          `json:"type"`
	Config    models.ViewConfig        `json:"config"`
	Filters   []map[string]interface{} `json:"filters"`
	Sort      []models.SortSpec        `json:"sort"`
	Columns   []string                 `json:"columns"`
	Grouping  string                   `json:"grouping,omitempty"`
	IsDefault bool                     `json:"isDefault"`
	IsShared  bool                     `json:"isShared"`
	CreatedBy string                   `json:"createdBy,omitempty"`
	CreatedAt time.Time                `json:"createdAt"`
	UpdatedAt time.Time                `json:"updatedAt"`
}

// RecordResponse represents a record in API responses
type RecordResponse struct {
	ID        string                 `json:"id"`
	AppID     string                 `json:"appId"`
	ModuleID  string                 `json:"moduleId"`
	Data      map[string]interface{} `json:"data"`
	CreatedBy string                 `json:"createdBy,omitempty"`
	UpdatedBy string                 `json:"updatedBy,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
	UpdatedAt time.Time              `json:"updatedAt"`
}

// ActivityResponse represents an audit trail entry in API responses
type ActivityResponse struct {
	ID        string                 `json:"id"`
	RecordID  string                 `json:"recordId"`
	Type      models.ActivityType    `json:"type"`
	Content   string                 `json:"content"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedBy string                 `json:"createdBy,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
}

func orEmptyMap(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return map[string]interface{}{}
	}
	return m
}

func toTenantResponse(t *models.Tenant) TenantResponse {
	return TenantResponse{
		ID:        t.ID,
		Name:      t.Name,
		Slug:      t.Slug,
		OwnerID:   t.OwnerID,
		Plan:      t.Plan,
		Branding:  orEmptyMap(t.Branding),
		Settings:  orEmptyMap(t.Settings),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func toCrmAppResponse(a *models.CrmApp) CrmAppResponse {
	cfg := a.Config.Data()
	if cfg.ModuleRenames == nil {
		cfg.ModuleRenames = map[string]string{}
	}
	pillars := a.EnabledPillars.Data()
	if pillars == nil {
		pillars = []string{}
	}
	return CrmAppResponse{
		ID:             a.ID,
		TenantID:       a.TenantID,
		Name:           a.Name,
		Slug:           a.Slug,
		Description:    a.Description,
		Icon:           a.Icon,
		BusinessType:   a.BusinessType,
		Config:         cfg,
		EnabledPillars: pillars,
		Branding:       orEmptyMap(a.Branding),
		IsActive:       a.IsActive,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func toModuleResponse(m *models.Module) ModuleResponse {
	return ModuleResponse{
		ID:          m.ID,
		AppID:       m.AppID,
		PillarID:    m.PillarID,
		SystemName:  m.SystemName,
		DisplayName: m.DisplayName,
		Description: m.Description,
		Icon:        m.Icon,
		Color:       m.Color,
		Enabled:     m.Enabled,
		SortOrder:   m.SortOrder,
		Config:      m.Config.Data(),
		Permissions: m.Permissions,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toModuleResponses(modules []models.Module) []ModuleResponse {
	out := make([]ModuleResponse, len(modules))
	for i := range modules {
		out[i] = toModuleResponse(&modules[i])
	}
	return out
}

func toFieldResponse(f *models.Field) FieldResponse {
	return FieldResponse{
		ID:           f.ID,
		ModuleID:     f.ModuleID,
		Name:         f.Name,
		Label:        f.Label,
		Type:         f.Type,
		Required:     f.Required,
		Unique:       f.Unique,
		DefaultValue: f.DefaultValue.Data(),
		Placeholder:  f.Placeholder,
		Options:      f.Options.Data(),
		Validation:   f.Validation,
		SortOrder:    f.SortOrder,
		ShowInList:   f.ShowInList,
		ShowInForm:   f.ShowInForm,
		IsSystem:     f.IsSystem,
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
}

func toFieldResponses(fields []models.Field) []FieldResponse {
	out := make([]FieldResponse, len(fields))
	for i := range fields {
		out[i] = toFieldResponse(&fields[i])
	}
	return out
}

func toViewResponse(v *models.View) ViewResponse {
	filters := v.Filters.Data()
	if filters == nil {
		filters = []map[string]interface{}{}
	}
	sort := v.Sort.Data()
	if sort == nil {
		sort = []models.SortSpec{}
	}
	columns := v.Columns.Data()
	if columns == nil {
		columns = []string{}
	}
	return ViewResponse{
		ID:        v.ID,
		ModuleID:  v.ModuleID,
		Name:      v.Name,
		Type:      v.Type,
		Config:    v.Config.Data(),
		Filters:   filters,
		Sort:      sort,
		Columns:   columns,
		Grouping:  v.Grouping,
		IsDefault: v.IsDefault,
		IsShared:  v.IsShared,
		CreatedBy: v.CreatedBy,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func toViewResponses(views []models.View) []ViewResponse {
	out := make([]ViewResponse, len(views))
	for i := range views {
		out[i] = toViewResponse(&views[i])
	}
	return out
}

func toRecordResponse(r *models.Record) RecordResponse {
	return RecordResponse{
		ID:        r.ID,
		AppID:     r.AppID,
		ModuleID:  r.ModuleID,
		Data:      orEmptyMap(r.Data),
		CreatedBy: r.CreatedBy,
		UpdatedBy: r.UpdatedBy,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toRecordResponses(records []models.Record) []RecordResponse {
	out := make([]RecordResponse, len(records))
	for i := range records {
		out[i] = toRecordResponse(&records[i])
	}
	return out
}

func toActivityResponse(a *models.Activity) ActivityResponse {
	return ActivityResponse{
		ID:        a.ID,
		RecordID:  a.RecordID,
		Type:      a.Type,
		Content:   a.Content,
		Metadata:  a.Metadata,
		CreatedBy: a.CreatedBy,
		CreatedAt: a.CreatedAt,
	}
}
