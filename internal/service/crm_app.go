package service

import (
	"crm-builder-backend/internal/database/models"
	apperrors "crm-builder-backend/internal/errors"
	"crm-builder-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
)

// CrmAppService provides read, patch and delete operations on provisioned apps
type CrmAppService struct {
	repo       repository.CrmAppRepositoryInterface
	tenantRepo repository.TenantRepositoryInterface
	moduleRepo repository.ModuleRepositoryInterface
	recordRepo repository.RecordRepositoryInterface
	transactor repository.TransactorInterface
	validator  *validator.Validate
}

// Ensure CrmAppService implements CrmAppServiceInterface
var _ CrmAppServiceInterface = (*CrmAppService)(nil)

// NewCrmAppService creates a new CrmAppService
func NewCrmAppService(repos *repository.Repositories, transactor repository.TransactorInterface, validator *validator.Validate) *CrmAppService {
	return &CrmAppService{
		repo:       repos.Apps,
		tenantRepo: repos.Tenants,
		moduleRepo: repos.Modules,
		recordRepo: repos.Records,
		transactor: transactor,
		validator:  validator,
	}
}

// UpdateCrmAppRequest represents a sparse patch of an app
type UpdateCrmAppRequest struct {
	Name        *string                `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string                `json:"description,omitempty"`
	Icon        *string                `json:"icon,omitempty" validate:"omitempty,max=50"`
	IsActive    *bool                  `json:"isActive,omitempty"`
	Branding    map[string]interface{} `json:"branding,omitempty"`
	Config      *models.AppConfig      `json:"config,omitempty"`
}

// AppDetailResponse is an app with its modules in navigation order
type AppDetailResponse struct {
	App     CrmAppResponse   `json:"app"`
	Modules []ModuleResponse `json:"modules"`
}

// AppStatsResponse summarizes the size of an app
type AppStatsResponse struct {
	AppID           string           `json:"appId"`
	Modules         int64            `json:"modules"`
	Records         int64            `json:"records"`
	RecordsByModule map[string]int64 `json:"recordsByModule"`
}

// GetApp retrieves an app with its modules
func (s *CrmAppService) GetApp(id string) (*AppDetailResponse, error) {
	app, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrCrmAppNotFound, "get app")
	}
	modules, err := s.moduleRepo.GetByAppID(id)
	if err != nil {
		return nil, apperrors.NewStorageError("list app modules", err)
	}
	return &AppDetailResponse{
		App:     toCrmAppResponse(app),
		Modules: toModuleResponses(modules),
	}, nil
}

// ListByTenant lists the apps of a tenant
func (s *CrmAppService) ListByTenant(tenantID string) ([]CrmAppResponse, error) {
	if _, err := s.tenantRepo.GetByID(tenantID); err != nil {
		return nil, lookupError(err, apperrors.ErrTenantNotFound, "get tenant")
	}
	apps, err := s.repo.GetByTenantID(tenantID)
	if err != nil {
		return nil, apperrors.NewStorageError("list tenant apps", err)
	}
	out := make([]CrmAppResponse, len(apps))
	for i := range apps {
		out[i] = toCrmAppResponse(&apps[i])
	}
	return out, nil
}

// UpdateApp applies a sparse patch; branding and config are replaced wholesale
func (s *CrmAppService) UpdateApp(id string, req *UpdateCrmAppRequest) (*CrmAppResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Icon != nil {
		updates["icon"] = *req.Icon
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.Branding != nil {
		updates["branding"] = datatypes.JSONMap(req.Branding)
	}
	if req.Config != nil {
		cfg := *req.Config
		if cfg.ModuleRenames == nil {
			cfg.ModuleRenames = map[string]string{}
		}
		updates["config"] = datatypes.NewJSONType(cfg)
	}

	ok, err := s.repo.Update(id, updates)
	if err != nil {
		return nil, apperrors.NewStorageError("update app", err)
	}
	if !ok {
		return nil, apperrors.ErrCrmAppNotFound
	}

	app, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrCrmAppNotFound, "get app")
	}
	resp := toCrmAppResponse(app)
	return &resp, nil
}

// DeleteApp removes an app and everything it owns in one transaction
func (s *CrmAppService) DeleteApp(id string) error {
	return s.transactor.WithinTransaction(func(repos *repository.Repositories) error {
		return deleteAppTree(repos, id)
	})
}

// GetStats counts the modules and records of an app
func (s *CrmAppService) GetStats(id string) (*AppStatsResponse, error) {
	if _, err := s.repo.GetByID(id); err != nil {
		return nil, lookupError(err, apperrors.ErrCrmAppNotFound, "get app")
	}
	modules, err := s.moduleRepo.GetByAppID(id)
	if err != nil {
		return nil, apperrors.NewStorageError("list app modules", err)
	}
	records, err := s.recordRepo.CountByAppID(id)
	if err != nil {
		return nil, apperrors.NewStorageError("count app records", err)
	}

	byModule := make(map[string]int64, len(modules))
	for _, m := range modules {
		n, err := s.recordRepo.CountByModuleID(m.ID)
		if err != nil {
			return nil, apperrors.NewStorageError("count module records", err)
		}
		byModule[m.SystemName] = n
	}

	return &AppStatsResponse{
		AppID:           id,
		Modules:         int64(len(modules)),
		Records:         records,
		RecordsByModule: byModule,
	}, nil
}

// deleteAppTree deletes views, fields, activities, records and modules of an
// app before the app row itself
func deleteAppTree(repos *repository.Repositories, appID string) error {
	modules, err := repos.Modules.GetByAppID(appID)
	if err != nil {
		return apperrors.NewStorageError("list app modules", err)
	}
	ids := make([]string, len(modules))
	for i, m := range modules {
		ids[i] = m.ID
	}
	if err := deleteModuleContents(repos, ids); err != nil {
		return err
	}
	if _, err := repos.Modules.DeleteByAppID(appID); err != nil {
		return apperrors.NewStorageError("delete app modules", err)
	}
	ok, err := repos.Apps.Delete(appID)
	if err != nil {
		return apperrors.NewStorageError("delete app", err)
	}
	if !ok {
		return apperrors.ErrCrmAppNotFound
	}
	return nil
}

// deleteModuleContents deletes everything hanging off the given modules
func deleteModuleContents(repos *repository.Repositories, moduleIDs []string) error {
	if _, err := repos.Views.DeleteByModuleIDs(moduleIDs); err != nil {
		return apperrors.NewStorageError("delete views", err)
	}
	if _, err := repos.Fields.DeleteByModuleIDs(moduleIDs); err != nil {
		return apperrors.NewStorageError("delete fields", err)
	}
	if _, err := repos.Activities.DeleteByModuleIDs(moduleIDs); err != nil {
		return apperrors.NewStorageError("delete activities", err)
	}
	if _, err := repos.Records.DeleteByModuleIDs(moduleIDs); err != nil {
		return apperrors.NewStorageError("delete records", err)
	}
	return nil
}
