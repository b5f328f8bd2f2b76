package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"crm-builder-backend/internal/database/models"
	apperrors "crm-builder-backend/internal/errors"
	"crm-builder-backend/internal/logger"
	"crm-builder-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FieldService manages the field definitions of modules
type FieldService struct {
	repo       repository.FieldRepositoryInterface
	moduleRepo repository.ModuleRepositoryInterface
	validator  *validator.Validate
}

// Ensure FieldService implements FieldServiceInterface
var _ FieldServiceInterface = (*FieldService)(nil)

// NewFieldService creates a new FieldService
func NewFieldService(repo repository.FieldRepositoryInterface, moduleRepo repository.ModuleRepositoryInterface, validator *validator.Validate) *FieldService {
	return &FieldService{
		repo:       repo,
		moduleRepo: moduleRepo,
		validator:  validator,
	}
}

// CreateFieldRequest represents the request to add a field to a module
type CreateFieldRequest struct {
	Name         string                 `json:"name" validate:"required,max=50"`
	Label        string                 `json:"label" validate:"required,max=200"`
	Type         models.FieldType       `json:"type" validate:"required"`
	Required     bool                   `json:"required"`
	Unique       bool                   `json:"unique"`
	DefaultValue interface{}            `json:"defaultValue,omitempty"`
	Placeholder  string                 `json:"placeholder,omitempty" validate:"max=200"`
	Options      *models.FieldOptions   `json:"options,omitempty"`
	Validation   map[string]interface{} `json:"validation,omitempty"`
	SortOrder    *int                   `json:"sortOrder,omitempty" validate:"omitempty,min=0"`
	ShowInList   *bool                  `json:"showInList,omitempty"`
	ShowInForm   *bool                  `json:"showInForm,omitempty"`
	IsSystem     bool                   `json:"isSystem"`
}

// UpdateFieldRequest represents a sparse patch of a field
type UpdateFieldRequest struct {
	Name         *string                `json:"name,omitempty" validate:"omitempty,max=50"`
	Label        *string                `json:"label,omitempty" validate:"omitempty,min=1,max=200"`
	Type         *models.FieldType      `json:"type,omitempty"`
	Required     *bool                  `json:"required,omitempty"`
	Unique       *bool                  `json:"unique,omitempty"`
	DefaultValue json.RawMessage        `json:"defaultValue,omitempty" swaggertype:"object"`
	Placeholder  *string                `json:"placeholder,omitempty" validate:"omitempty,max=200"`
	Options      *models.FieldOptions   `json:"options,omitempty"`
	Validation   map[string]interface{} `json:"validation,omitempty"`
	SortOrder    *int                   `json:"sortOrder,omitempty" validate:"omitempty,min=0"`
	ShowInList   *bool                  `json:"showInList,omitempty"`
	ShowInForm   *bool                  `json:"showInForm,omitempty"`
}

// checkFieldDefinition enforces naming, type and option rules of a field
func checkFieldDefinition(name string, fieldType models.FieldType, opts models.FieldOptions) error {
	if !IsIdentifier(name) {
		return apperrors.NewValidationError("name", "must start with a lowercase letter and contain only lowercase letters, digits and underscores")
	}
	if !fieldType.IsValid() {
		return apperrors.NewValidationError("type", fmt.Sprintf("unknown field type %q", fieldType))
	}
	if fieldType == models.FieldTypeSelect {
		if len(opts.Choices) == 0 {
			return apperrors.NewValidationError("options.choices", "select fields need at least one choice")
		}
		seen := make(map[string]struct{}, len(opts.Choices))
		for _, c := range opts.Choices {
			if c.Value == "" {
				return apperrors.NewValidationError("options.choices", "choice value is required")
			}
			if _, dup := seen[c.Value]; dup {
				return apperrors.NewValidationError("options.choices", fmt.Sprintf("duplicate choice %q", c.Value))
			}
			seen[c.Value] = struct{}{}
		}
	}
	if opts.Min != nil && opts.Max != nil && *opts.Min > *opts.Max {
		return apperrors.NewValidationError("options", "min must not exceed max")
	}
	return nil
}

// newField builds a field row from a create request
func newField(moduleID string, req *CreateFieldRequest, sortOrder int) *models.Field {
	var opts models.FieldOptions
	if req.Options != nil {
		opts = *req.Options
	}
	field := &models.Field{
		ModuleID:     moduleID,
		Name:         req.Name,
		Label:        req.Label,
		Type:         req.Type,
		Required:     req.Required,
		Unique:       req.Unique,
		DefaultValue: datatypes.NewJSONType(req.DefaultValue),
		Placeholder:  req.Placeholder,
		Options:      datatypes.NewJSONType(opts),
		Validation:   datatypes.JSONMap(req.Validation),
		SortOrder:    sortOrder,
		ShowInList:   true,
		ShowInForm:   true,
		IsSystem:     req.IsSystem,
	}
	if req.SortOrder != nil {
		field.SortOrder = *req.SortOrder
	}
	if req.ShowInList != nil {
		field.ShowInList = *req.ShowInList
	}
	if req.ShowInForm != nil {
		field.ShowInForm = *req.ShowInForm
	}
	return field
}

// ListByModule lists the fields of a module in sort order
func (s *FieldService) ListByModule(moduleID string) ([]FieldResponse, error) {
	if _, err := s.moduleRepo.GetByID(moduleID); err != nil {
		return nil, lookupError(err, apperrors.ErrModuleNotFound, "get module")
	}
	fields, err := s.repo.GetByModuleID(moduleID)
	if err != nil {
		return nil, apperrors.NewStorageError("list fields", err)
	}
	return toFieldResponses(fields), nil
}

// CreateField appends a field to a module
func (s *FieldService) CreateField(moduleID string, req *CreateFieldRequest) (*FieldResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	var opts models.FieldOptions
	if req.Options != nil {
		opts = *req.Options
	}
	if err := checkFieldDefinition(req.Name, req.Type, opts); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.moduleRepo.GetByID(moduleID); err != nil {
		return nil, lookupError(err, apperrors.ErrModuleNotFound, "get module")
	}
	existing, err := s.repo.GetByName(moduleID, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewStorageError("check field name", err)
	}
	if existing != nil {
		return nil, apperrors.ErrFieldExists
	}

	maxOrder, err := s.repo.MaxSortOrder(moduleID)
	if err != nil {
		return nil, apperrors.NewStorageError("get field sort order", err)
	}

	field := newField(moduleID, req, maxOrder+1)
	if err := s.repo.Create(field); err != nil {
		return nil, writeError(err, apperrors.ErrFieldExists, "create field")
	}
	resp := toFieldResponse(field)
	return &resp, nil
}

// UpdateField applies a sparse patch. Renaming a field does not migrate the
// values already stored under the old key.
func (s *FieldService) UpdateField(ctx context.Context, id string, req *UpdateFieldRequest) (*FieldResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	field, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrFieldNotFound, "get field")
	}

	name, fieldType, opts := field.Name, field.Type, field.Options.Data()
	if req.Name != nil {
		name = *req.Name
	}
	if req.Type != nil {
		fieldType = *req.Type
	}
	if req.Options != nil {
		opts = *req.Options
	}
	if err := checkFieldDefinition(name, fieldType, opts); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	updates := map[string]interface{}{}
	if req.Name != nil && *req.Name != field.Name {
		existing, err := s.repo.GetByName(field.ModuleID, *req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewStorageError("check field name", err)
		}
		if existing != nil {
			return nil, apperrors.ErrFieldExists
		}
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"field_id":  field.ID,
			"module_id": field.ModuleID,
			"old_name":  field.Name,
			"new_name":  *req.Name,
		}).Warn("Field renamed; record values stored under the old name are no longer bound to it")
		updates["name"] = *req.Name
	}
	if req.Label != nil {
		updates["label"] = *req.Label
	}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Required != nil {
		updates["required"] = *req.Required
	}
	if req.Unique != nil {
		updates["is_unique"] = *req.Unique
	}
	if len(req.DefaultValue) > 0 {
		var v interface{}
		if err := json.Unmarshal(req.DefaultValue, &v); err != nil {
			return nil, fmt.Errorf("validation failed: %w", apperrors.NewValidationError("defaultValue", "must be valid JSON"))
		}
		updates["default_value"] = datatypes.NewJSONType(v)
	}
	if req.Placeholder != nil {
		updates["placeholder"] = *req.Placeholder
	}
	if req.Options != nil {
		updates["options"] = datatypes.NewJSONType(*req.Options)
	}
	if req.Validation != nil {
		updates["validation"] = datatypes.JSONMap(req.Validation)
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}
	if req.ShowInList != nil {
		updates["show_in_list"] = *req.ShowInList
	}
	if req.ShowInForm != nil {
		updates["show_in_form"] = *req.ShowInForm
	}

	ok, err := s.repo.Update(id, updates)
	if err != nil {
		return nil, writeError(err, apperrors.ErrFieldExists, "update field")
	}
	if !ok {
		return nil, apperrors.ErrFieldNotFound
	}

	updated, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrFieldNotFound, "get field")
	}
	resp := toFieldResponse(updated)
	return &resp, nil
}

// DeleteField removes a field definition; system fields are protected
func (s *FieldService) DeleteField(id string) error {
	field, err := s.repo.GetByID(id)
	if err != nil {
		return lookupError(err, apperrors.ErrFieldNotFound, "get field")
	}
	if field.IsSystem {
		return apperrors.ErrSystemFieldDelete
	}
	ok, err := s.repo.Delete(id)
	if err != nil {
		return apperrors.NewStorageError("delete field", err)
	}
	if !ok {
		return apperrors.ErrFieldNotFound
	}
	return nil
}
