package service

import (
	"errors"

	"crm-builder-backend/internal/database/models"
	apperrors "crm-builder-backend/internal/errors"
	"crm-builder-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TenantService provides tenant-related business logic
type TenantService struct {
	repo       repository.TenantRepositoryInterface
	transactor repository.TransactorInterface
	validator  *validator.Validate
}

// Ensure TenantService implements TenantServiceInterface
var _ TenantServiceInterface = (*TenantService)(nil)

// NewTenantService creates a new TenantService
func NewTenantService(repo repository.TenantRepositoryInterface, transactor repository.TransactorInterface, validator *validator.Validate) *TenantService {
	return &TenantService{
		repo:       repo,
		transactor: transactor,
		validator:  validator,
	}
}

// CreateTenantRequest represents the request to create a tenant
type CreateTenantRequest struct {
	Name     string                 `json:"name" validate:"required,min=1,max=200"`
	Slug     string                 `json:"slug,omitempty" validate:"omitempty,max=100"`
	OwnerID  string                 `json:"ownerId" validate:"required,max=100"`
	Plan     models.TenantPlan      `json:"plan,omitempty" validate:"omitempty,oneof=free starter pro enterprise"`
	Branding map[string]interface{} `json:"branding,omitempty"`
	Settings map[string]interface{} `json:"settings,omitempty"`
}

// UpdateTenantRequest represents a sparse patch of a tenant; JSON blobs are replaced wholesale
type UpdateTenantRequest struct {
	Name     *string                `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Plan     *models.TenantPlan     `json:"plan,omitempty" validate:"omitempty,oneof=free starter pro enterprise"`
	Branding map[string]interface{} `json:"branding,omitempty"`
	Settings map[string]interface{} `json:"settings,omitempty"`
}

// TenantListResponse represents a paginated list of tenants
type TenantListResponse struct {
	Tenants []TenantResponse `json:"tenants"`
	Total   int64            `json:"total"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
}

// CreateTenant creates a tenant; an owner may hold a single tenant
func (s *TenantService) CreateTenant(req *CreateTenantRequest) (*TenantResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	slug := Slugify(firstNonEmpty(req.Slug, req.Name))
	if slug == "" {
		return nil, apperrors.ErrEmptySlug
	}

	existing, err := s.repo.GetByOwnerID(req.OwnerID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewStorageError("check tenant owner", err)
	}
	if existing != nil {
		return nil, apperrors.ErrTenantOwnerExists
	}

	existing, err = s.repo.GetBySlug(slug)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewStorageError("check tenant slug", err)
	}
	if existing != nil {
		return nil, apperrors.ErrTenantExists
	}

	plan := req.Plan
	if plan == "" {
		plan = models.TenantPlanFree
	}

	tenant := &models.Tenant{
		Name:     req.Name,
		Slug:     slug,
		OwnerID:  req.OwnerID,
		Plan:     plan,
		Branding: orEmptyMap(req.Branding),
		Settings: orEmptyMap(req.Settings),
	}
	if err := s.repo.Create(tenant); err != nil {
		return nil, writeError(err, apperrors.ErrTenantExists, "create tenant")
	}

	resp := toTenantResponse(tenant)
	return &resp, nil
}

// GetByID retrieves a tenant by ID
func (s *TenantService) GetByID(id string) (*TenantResponse, error) {
	tenant, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrTenantNotFound, "get tenant")
	}
	resp := toTenantResponse(tenant)
	return &resp, nil
}

// GetBySlug retrieves a tenant by its slug
func (s *TenantService) GetBySlug(slug string) (*TenantResponse, error) {
	tenant, err := s.repo.GetBySlug(slug)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrTenantNotFound, "get tenant by slug")
	}
	resp := toTenantResponse(tenant)
	return &resp, nil
}

// GetByOwnerID retrieves the tenant of an owner
func (s *TenantService) GetByOwnerID(ownerID string) (*TenantResponse, error) {
	tenant, err := s.repo.GetByOwnerID(ownerID)
	if err != nil {
		return nil, lookupError(err, apperrors.ErrTenantNotFound, "get tenant by owner")
	}
	resp := toTenantResponse(tenant)
	return &resp, nil
}

// ListTenants lists tenants oldest first
func (s *TenantService) ListTenants(limit, offset int) (*TenantListResponse, error) {
	if limit < 0 || offset < 0 {
		return nil, apperrors.ErrInvalidPagination
	}
	if limit == 0 || limit > 1000 {
		limit = 100
	}
	tenants, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, apperrors.NewStorageError("list tenants", err)
	}
	out := make([]TenantResponse, len(tenants))
	for i := range tenants {
		out[i] = toTenantResponse(&tenants[i])
	}
	return &TenantListResponse{Tenants: out, Total: total, Limit: limit, Offset: offset}, nil
}

// UpdateTenant applies a sparse patch
func (s *TenantService) UpdateTenant(id string, req *UpdateTenantRequest) (*TenantResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Plan != nil {
		updates["plan"] = *req.Plan
	}
	if req.Branding != nil {
		updates["branding"] = datatypes.JSONMap(req.Branding)
	}
	if req.Settings != nil {
		updates["settings"] = datatypes.JSONMap(req.Settings)
	}

	ok, err := s.repo.Update(id, updates)
	if err != nil {
		return nil, apperrors.NewStorageError("update tenant", err)
	}
	if !ok {
		return nil, apperrors.ErrTenantNotFound
	}
	return s.GetByID(id)
}

// DeleteTenant removes a tenant after cascading through all of its apps
func (s *TenantService) DeleteTenant(id string) error {
	return s.transactor.WithinTransaction(func(repos *repository.Repositories) error {
		apps, err := repos.Apps.GetByTenantID(id)
		if err != nil {
			return apperrors.NewStorageError("list tenant apps", err)
		}
		for _, app := range apps {
			if err := deleteAppTree(repos, app.ID); err != nil {
				return err
			}
		}
		ok, err := repos.Tenants.Delete(id)
		if err != nil {
			return apperrors.NewStorageError("delete tenant", err)
		}
		if !ok {
			return apperrors.ErrTenantNotFound
		}
		return nil
	})
}
