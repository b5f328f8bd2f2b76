package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"crm-builder-backend/internal/database/models"
	apperrors "crm-builder-backend/internal/errors"
	"crm-builder-backend/internal/logger"
	"crm-builder-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ModuleService manages modules outside of provisioning
type ModuleService struct {
	repo       repository.ModuleRepositoryInterface
	appRepo    repository.CrmAppRepositoryInterface
	fieldRepo  repository.FieldRepositoryInterface
	viewRepo   repository.ViewRepositoryInterface
	transactor repository.TransactorInterface
	validator  *validator.Validate
}

// Ensure ModuleService implements ModuleServiceInterface
var _ ModuleServiceInterface = (*ModuleService)(nil)

// NewModuleService creates a new ModuleService
func NewModuleService(repos *repository.Repositories, transactor repository.TransactorInterface, validator *validator.Validate) *ModuleService {
	return &ModuleService{
		repo:       repos.Modules,
		appRepo:    repos.Apps,
		fieldRepo:  repos.Fields,
		viewRepo:   repos.Views,
		transactor: transactor,
		validator:  validator,
	}
}

// CreateModuleRequest represents the request to add a custom module to an app
type CreateModuleRequest struct {
	SystemName  string               `json:"systemName" validate:"required,max=50"`
	DisplayName string               `json:"displayName" validate:"required,max=200"`
	Description string               `json:"description,omitempty"`
	Icon        string               `json:"icon,omitempty" validate:"omitempty,max=50"`
	Color       string               `json:"color,omitempty" validate:"omitempty,hexcolor"`
	Fields      []CreateFieldRequest `json:"fields,omitempty" validate:"omitempty,dive"`
}

// UpdateModuleRequest represents a sparse patch of a module
type UpdateModuleRequest struct {
	DisplayName *string                `json:"displayName,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string                `json:"description,omitempty"`
	Icon        *string                `json:"icon,omitempty" validate:"omitempty,max=50"`
	Color       *string                `json:"color,omitempty" validate:"omitempty,hexcolor"`
	Enabled     *bool                  `json:"enabled,omitempty"`
	SortOrder   *int                   `json:"sortOrder,omitempty" validate:"omitempty,min=0"`
	Config      *models.ModuleConfig   `json:"config,omitempty"`
	Permissions map[string]interface{} `json:"permissions,omitempty"`
}

// ModuleDetailResponse is a module with its fields and views
type ModuleDetailResponse struct {
	Module ModuleResponse  `json:"module"`
	Fields []FieldResponse `json:"fields"`
	Views  []ViewResponse  `json:"views"`
}

// GetModule retrieves a module with its fields and views
func (s *ModuleService) GetModule(id string) (*ModuleDetailResponse, error) {
	module, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrModuleNotFound, "get module")
	}
	fields, err := s.fieldRepo.GetByModuleID(id)
	if err != nil {
		return nil, apperrors.NewStorageError("list fields", err)
	}
	views, err := s.viewRepo.GetByModuleID(id)
	if err != nil {
		return nil, apperrors.NewStorageError("list views", err)
	}
	return &ModuleDetailResponse{
		Module: toModuleResponse(module),
		Fields: toFieldResponses(fields),
		Views:  toViewResponses(views),
	}, nil
}

// ListByApp lists the modules of an app in navigation order
func (s *ModuleService) ListByApp(appID string) ([]ModuleResponse, error) {
	if _, err := s.appRepo.GetByID(appID); err != nil {
		return nil, lookupError(err, apperrors.ErrCrmAppNotFound, "get app")
	}
	modules, err := s.repo.GetByAppID(appID)
	if err != nil {
		return nil, apperrors.NewStorageError("list modules", err)
	}
	return toModuleResponses(modules), nil
}

// CreateModule appends a custom module after the current last module,
// together with its fields and a default table view
func (s *ModuleService) CreateModule(ctx context.Context, appID string, req *CreateModuleRequest) (*ModuleDetailResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if !IsIdentifier(req.SystemName) {
		return nil, fmt.Errorf("validation failed: %w", apperrors.NewValidationError("systemName", "must start with a lowercase letter and contain only lowercase letters, digits and underscores"))
	}
	names := make(map[string]struct{}, len(req.Fields))
	for i := range req.Fields {
		f := &req.Fields[i]
		var opts models.FieldOptions
		if f.Options != nil {
			opts = *f.Options
		}
		if err := checkFieldDefinition(f.Name, f.Type, opts); err != nil {
			return nil, fmt.Errorf("validation failed: fields[%d]: %w", i, err)
		}
		if _, dup := names[f.Name]; dup {
			return nil, fmt.Errorf("validation failed: %w", apperrors.NewValidationError("fields", "duplicate field name "+strconv.Quote(f.Name)))
		}
		names[f.Name] = struct{}{}
	}

	var detail *ModuleDetailResponse
	err := s.transactor.WithinTransaction(func(repos *repository.Repositories) error {
		if _, err := repos.Apps.GetByID(appID); err != nil {
			return lookupError(err, apperrors.ErrCrmAppNotFound, "get app")
		}
		existing, err := repos.Modules.GetBySystemName(appID, req.SystemName)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewStorageError("check module system name", err)
		}
		if existing != nil {
			return apperrors.ErrModuleExists
		}
		maxOrder, err := repos.Modules.MaxSortOrder(appID)
		if err != nil {
			return apperrors.NewStorageError("get module sort order", err)
		}

		module := &models.Module{
			AppID:       appID,
			PillarID:    models.PillarCustom,
			SystemName:  req.SystemName,
			DisplayName: req.DisplayName,
			Description: req.Description,
			Icon:        req.Icon,
			Color:       req.Color,
			Enabled:     true,
			SortOrder:   maxOrder + 1,
			Config:      datatypes.NewJSONType(models.FullAccess()),
		}
		if err := repos.Modules.Create(module); err != nil {
			return writeError(err, apperrors.ErrModuleExists, "create module")
		}

		fields := make([]models.Field, 0, len(req.Fields))
		for i := range req.Fields {
			field := newField(module.ID, &req.Fields[i], i)
			if err := repos.Fields.Create(field); err != nil {
				return writeError(err, apperrors.ErrFieldExists, "create field")
			}
			fields = append(fields, *field)
		}

		view := defaultTableView(module.ID, module.DisplayName, fields)
		if err := repos.Views.Create(view); err != nil {
			return apperrors.NewStorageError("create default view", err)
		}

		detail = &ModuleDetailResponse{
			Module: toModuleResponse(module),
			Fields: toFieldResponses(fields),
			Views:  []ViewResponse{toViewResponse(view)},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"app_id":      appID,
		"module_id":   detail.Module.ID,
		"system_name": req.SystemName,
	}).Info("Custom module created")
	return detail, nil
}

// UpdateModule applies a sparse patch; the system name is immutable
func (s *ModuleService) UpdateModule(id string, req *UpdateModuleRequest) (*ModuleResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.DisplayName != nil {
		updates["display_name"] = *req.DisplayName
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Icon != nil {
		updates["icon"] = *req.Icon
	}
	if req.Color != nil {
		updates["color"] = *req.Color
	}
	if req.Enabled != nil {
		updates["enabled"] = *req.Enabled
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}
	if req.Config != nil {
		updates["config"] = datatypes.NewJSONType(*req.Config)
	}
	if req.Permissions != nil {
		updates["permissions"] = datatypes.JSONMap(req.Permissions)
	}

	ok, err := s.repo.Update(id, updates)
	if err != nil {
		return nil, apperrors.NewStorageError("update module", err)
	}
	if !ok {
		return nil, apperrors.ErrModuleNotFound
	}
	module, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrModuleNotFound, "get module")
	}
	resp := toModuleResponse(module)
	return &resp, nil
}

// DeleteModule removes a module with its fields, views, records and activities
func (s *ModuleService) DeleteModule(id string) error {
	return s.transactor.WithinTransaction(func(repos *repository.Repositories) error {
		if err := deleteModuleContents(repos, []string{id}); err != nil {
			return err
		}
		ok, err := repos.Modules.Delete(id)
		if err != nil {
			return apperrors.NewStorageError("delete module", err)
		}
		if !ok {
			return apperrors.ErrModuleNotFound
		}
		return nil
	})
}

// GetRecordSchema describes the record data of a module as a JSON Schema
func (s *ModuleService) GetRecordSchema(id string) (*jsonschema.Schema, error) {
	module, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrModuleNotFound, "get module")
	}
	fields, err := s.fieldRepo.GetByModuleID(id)
	if err != nil {
		return nil, apperrors.NewStorageError("list fields", err)
	}
	return RecordSchema(module, fields), nil
}

// RecordSchema builds the JSON Schema of a module's record data. Extra keys
// stay allowed because records are schema-less.
func RecordSchema(module *models.Module, fields []models.Field) *jsonschema.Schema {
	schema := &jsonschema.Schema{
		Version:              jsonschema.Version,
		ID:                   jsonschema.ID("urn:crm:module:" + module.ID),
		Title:                module.DisplayName,
		Description:          module.Description,
		Type:                 "object",
		Properties:           jsonschema.NewProperties(),
		AdditionalProperties: jsonschema.TrueSchema,
	}
	for _, f := range fields {
		prop := fieldSchema(f)
		prop.Title = f.Label
		prop.Description = f.Placeholder
		if def := f.DefaultValue.Data(); def != nil {
			prop.Default = def
		}
		schema.Properties.Set(f.Name, prop)
		if f.Required {
			schema.Required = append(schema.Required, f.Name)
		}
	}
	return schema
}

func fieldSchema(f models.Field) *jsonschema.Schema {
	opts := f.Options.Data()
	switch f.Type {
	case models.FieldTypeNumber, models.FieldTypeCurrency:
		s := &jsonschema.Schema{Type: "number"}
		if opts.Min != nil {
			s.Minimum = json.Number(strconv.FormatFloat(*opts.Min, 'f', -1, 64))
		}
		if opts.Max != nil {
			s.Maximum = json.Number(strconv.FormatFloat(*opts.Max, 'f', -1, 64))
		}
		return s
	case models.FieldTypeCheckbox:
		return &jsonschema.Schema{Type: "boolean"}
	case models.FieldTypeSelect:
		enum := make([]any, len(opts.Choices))
		for i, c := range opts.Choices {
			enum[i] = c.Value
		}
		return &jsonschema.Schema{Type: "string", Enum: enum}
	case models.FieldTypeDate:
		return &jsonschema.Schema{AnyOf: []*jsonschema.Schema{
			{Type: "string", Format: "date"},
			{Type: "string", Format: "date-time"},
			{Type: "integer", Description: "epoch milliseconds"},
		}}
	case models.FieldTypeEmail:
		return &jsonschema.Schema{Type: "string", Format: "email"}
	case models.FieldTypeURL:
		return &jsonschema.Schema{Type: "string", Format: "uri"}
	}
	return &jsonschema.Schema{Type: "string"}
}
