package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crm-builder-backend/internal/catalog"
	"crm-builder-backend/internal/database/models"
	apperrors "crm-builder-backend/internal/errors"
	"crm-builder-backend/internal/logger"
	"crm-builder-backend/internal/metrics"
	"crm-builder-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProvisioningService turns wizard input into a fully populated CRM app
type ProvisioningService struct {
	catalog    *catalog.Catalog
	transactor repository.TransactorInterface
	validator  *validator.Validate
}

// Ensure ProvisioningService implements ProvisioningServiceInterface
var _ ProvisioningServiceInterface = (*ProvisioningService)(nil)

// NewProvisioningService creates a new ProvisioningService
func NewProvisioningService(c *catalog.Catalog, transactor repository.TransactorInterface, validator *validator.Validate) *ProvisioningService {
	return &ProvisioningService{
		catalog:    c,
		transactor: transactor,
		validator:  validator,
	}
}

// CreateCrmAppRequest is the setup wizard input
type CreateCrmAppRequest struct {
	BusinessType  string   `json:"businessType" validate:"required,max=100"`
	Name          string   `json:"name" validate:"required,min=1,max=200"`
	BusinessName  string   `json:"businessName,omitempty" validate:"omitempty,max=200"`
	PrimaryColor  string   `json:"primaryColor,omitempty" validate:"omitempty,hexcolor"`
	LogoURL       string   `json:"logoUrl,omitempty" validate:"omitempty,url"`
	CustomPillars []string `json:"customPillars,omitempty" validate:"omitempty,dive,required"`
}

// ProvisionResult is the created app with its modules in navigation order
type ProvisionResult struct {
	App     CrmAppResponse   `json:"app"`
	Modules []ModuleResponse `json:"modules"`
}

// PreviewModule is a module as it would be provisioned
type PreviewModule struct {
	SystemName  string `json:"systemName"`
	DisplayName string `json:"displayName"`
	Icon        string `json:"icon"`
}

// PreviewPillar is a pillar as it would be provisioned
type PreviewPillar struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Color   string          `json:"color"`
	Modules []PreviewModule `json:"modules"`
}

// PreviewResponse describes the structure a wizard input would produce
type PreviewResponse struct {
	BusinessType  string            `json:"businessType"`
	Preset        string            `json:"preset,omitempty"`
	ModuleRenames map[string]string `json:"moduleRenames"`
	Pillars       []PreviewPillar   `json:"pillars"`
}

// resolve maps catalog resolution failures onto validation errors
func (s *ProvisioningService) resolve(businessType string, customPillars []string) (*catalog.Resolution, error) {
	res, err := s.catalog.Resolve(businessType, customPillars)
	if err != nil {
		var unknown *catalog.UnknownPillarError
		if errors.As(err, &unknown) {
			return nil, fmt.Errorf("validation failed: %w", apperrors.NewValidationError("customPillars", unknown.Error()))
		}
		return nil, err
	}
	return res, nil
}

// PreviewCrmStructure resolves pillars and renames without writing anything
func (s *ProvisioningService) PreviewCrmStructure(businessType string, customPillars []string) (*PreviewResponse, error) {
	res, err := s.resolve(businessType, customPillars)
	if err != nil {
		return nil, err
	}

	preview := &PreviewResponse{
		BusinessType:  businessType,
		ModuleRenames: res.ModuleRenames,
		Pillars:       make([]PreviewPillar, 0, len(res.Pillars)),
	}
	if res.Preset != nil {
		preview.Preset = res.Preset.ID
	}
	for _, p := range res.Pillars {
		pp := PreviewPillar{ID: p.ID, Name: p.Name, Color: p.Color, Modules: make([]PreviewModule, 0, len(p.Modules))}
		for _, t := range p.Modules {
			pp.Modules = append(pp.Modules, PreviewModule{
				SystemName:  t.SystemName,
				DisplayName: res.DisplayName(t),
				Icon:        t.Icon,
			})
		}
		preview.Pillars = append(preview.Pillars, pp)
	}
	return preview, nil
}

// CreateCrmApp provisions an app with its modules, fields and views in a
// single transaction. Any failure leaves no rows behind.
func (s *ProvisioningService) CreateCrmApp(ctx context.Context, tenantID string, req *CreateCrmAppRequest) (*ProvisionResult, error) {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"tenant_id":     tenantID,
		"business_type": req.BusinessType,
	})

	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	slug := Slugify(req.Name)
	if slug == "" {
		return nil, apperrors.ErrEmptySlug
	}
	res, err := s.resolve(req.BusinessType, req.CustomPillars)
	if err != nil {
		return nil, err
	}

	label := models.BusinessTypeCustom
	if res.Preset != nil {
		label = res.Preset.ID
	}

	defer metrics.TrackDBOperation("provision_crm_app")(time.Now())

	var (
		app     *models.CrmApp
		modules []models.Module
	)
	err = s.transactor.WithinTransaction(func(repos *repository.Repositories) error {
		if _, err := repos.Tenants.GetByID(tenantID); err != nil {
			return lookupError(err, apperrors.ErrTenantNotFound, "get tenant")
		}

		existing, err := repos.Apps.GetBySlug(tenantID, slug)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewStorageError("check app slug", err)
		}
		if existing != nil {
			return apperrors.ErrCrmAppExists
		}

		app = &models.CrmApp{
			TenantID:       tenantID,
			Name:           req.Name,
			Slug:           slug,
			BusinessType:   req.BusinessType,
			Config:         datatypes.NewJSONType(models.AppConfig{ModuleRenames: res.ModuleRenames}),
			EnabledPillars: datatypes.NewJSONType(res.PillarIDs()),
			Branding:       branding(req),
			IsActive:       true,
		}
		if res.Preset != nil {
			app.Description = res.Preset.Description
			app.Icon = res.Preset.Icon
		}
		if err := repos.Apps.Create(app); err != nil {
			return writeError(err, apperrors.ErrCrmAppExists, "create app")
		}

		moduleOrder := 0
		for _, pillar := range res.Pillars {
			for _, tmpl := range pillar.Modules {
				module, err := provisionModule(repos, app.ID, pillar, tmpl, res.DisplayName(tmpl), moduleOrder)
				if err != nil {
					return err
				}
				modules = append(modules, *module)
				moduleOrder++
			}
		}
		return nil
	})
	if err != nil {
		metrics.RecordProvisioning(label, metrics.ResultFailure, 0)
		log.WithError(err).Warn("CRM app provisioning rolled back")
		return nil, err
	}

	metrics.RecordProvisioning(label, metrics.ResultSuccess, len(modules))
	log.WithFields(map[string]interface{}{
		"app_id":  app.ID,
		"pillars": res.PillarIDs(),
		"modules": len(modules),
	}).Info("CRM app provisioned")

	return &ProvisionResult{
		App:     toCrmAppResponse(app),
		Modules: toModuleResponses(modules),
	}, nil
}

// provisionModule creates one module from its template together with its
// fields and generated views
func provisionModule(repos *repository.Repositories, appID string, pillar catalog.Pillar, tmpl catalog.ModuleTemplate, displayName string, sortOrder int) (*models.Module, error) {
	module := &models.Module{
		AppID:       appID,
		PillarID:    pillar.ID,
		SystemName:  tmpl.SystemName,
		DisplayName: displayName,
		Description: tmpl.Description,
		Icon:        tmpl.Icon,
		Color:       pillar.Color,
		Enabled:     true,
		SortOrder:   sortOrder,
		Config:      datatypes.NewJSONType(models.FullAccess()),
	}
	if err := repos.Modules.Create(module); err != nil {
		return nil, writeError(err, apperrors.ErrModuleExists, "create module "+tmpl.SystemName)
	}

	fields := make([]models.Field, 0, len(tmpl.Fields))
	for fieldOrder, ft := range tmpl.Fields {
		field := fieldFromTemplate(module.ID, ft, fieldOrder)
		if err := repos.Fields.Create(field); err != nil {
			return nil, writeError(err, apperrors.ErrFieldExists, "create field "+tmpl.SystemName+"."+ft.Name)
		}
		fields = append(fields, *field)
	}

	if err := repos.Views.Create(defaultTableView(module.ID, displayName, fields)); err != nil {
		return nil, apperrors.NewStorageError("create default view", err)
	}
	if tmpl.HasField(catalog.StatusFieldName) {
		if err := repos.Views.Create(kanbanView(module.ID, displayName)); err != nil {
			return nil, apperrors.NewStorageError("create kanban view", err)
		}
	}
	return module, nil
}

func branding(req *CreateCrmAppRequest) datatypes.JSONMap {
	b := datatypes.JSONMap{
		"primaryColor": firstNonEmpty(req.PrimaryColor, catalog.DefaultPrimaryColor),
	}
	if req.LogoURL != "" {
		b["logoUrl"] = req.LogoURL
	}
	if req.BusinessName != "" {
		b["businessName"] = req.BusinessName
	}
	return b
}
