package handlers

import (
	"net/http"

	"crm-builder-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TenantHandler handles HTTP requests for tenants and their apps
type TenantHandler struct {
	tenantService       service.TenantServiceInterface
	appService          service.CrmAppServiceInterface
	provisioningService service.ProvisioningServiceInterface
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(tenantService service.TenantServiceInterface, appService service.CrmAppServiceInterface, provisioningService service.ProvisioningServiceInterface) *TenantHandler {
	return &TenantHandler{
		tenantService:       tenantService,
		appService:          appService,
		provisioningService: provisioningService,
	}
}

// ListTenants handles GET /tenants
// @Summary List tenants
// @Tags tenants
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} service.TenantListResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants [get]
func (h *TenantHandler) ListTenants(c *gin.Context) {
	limit, ok := queryInt(c, "limit")
	if !ok {
		return
	}
	offset, ok := queryInt(c, "offset")
	if !ok {
		return
	}

	resp, err := h.tenantService.ListTenants(limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateTenant handles POST /tenants
// @Summary Create tenant
// @Description Create a workspace. The slug is derived from the name when omitted.
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenant body service.CreateTenantRequest true "Tenant data"
// @Success 201 {object} service.TenantResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants [post]
func (h *TenantHandler) CreateTenant(c *gin.Context) {
	var req service.CreateTenantRequest
	if !bindJSON(c, &req) {
		return
	}

	tenant, err := h.tenantService.CreateTenant(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tenant)
}

// GetTenant handles GET /tenants/:id
// @Summary Get tenant
// @Tags tenants
// @Produce json
// @Param id path string true "Tenant ID"
// @Success 200 {object} service.TenantResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{id} [get]
func (h *TenantHandler) GetTenant(c *gin.Context) {
	tenant, err := h.tenantService.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tenant)
}

// GetTenantBySlug handles GET /tenants/by-slug/:slug
// @Summary Get tenant by slug
// @Tags tenants
// @Produce json
// @Param slug path string true "Tenant slug"
// @Success 200 {object} service.TenantResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/by-slug/{slug} [get]
func (h *TenantHandler) GetTenantBySlug(c *gin.Context) {
	tenant, err := h.tenantService.GetBySlug(c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tenant)
}

// GetTenantByOwner handles GET /tenants/by-owner/:ownerId
// @Summary Get tenant by owner
// @Tags tenants
// @Produce json
// @Param ownerId path string true "Owner user ID"
// @Success 200 {object} service.TenantResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/by-owner/{ownerId} [get]
func (h *TenantHandler) GetTenantByOwner(c *gin.Context) {
	tenant, err := h.tenantService.GetByOwnerID(c.Param("ownerId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tenant)
}

// UpdateTenant handles PATCH /tenants/:id
// @Summary Update tenant
// @Tags tenants
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID"
// @Param tenant body service.UpdateTenantRequest true "Fields to change"
// @Success 200 {object} service.TenantResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{id} [patch]
func (h *TenantHandler) UpdateTenant(c *gin.Context) {
	var req service.UpdateTenantRequest
	if !bindJSON(c, &req) {
		return
	}

	tenant, err := h.tenantService.UpdateTenant(c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tenant)
}

// DeleteTenant handles DELETE /tenants/:id
// @Summary Delete tenant
// @Description Delete a tenant together with every app it owns
// @Tags tenants
// @Param id path string true "Tenant ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{id} [delete]
func (h *TenantHandler) DeleteTenant(c *gin.Context) {
	if err := h.tenantService.DeleteTenant(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListApps handles GET /tenants/:id/apps
// @Summary List tenant apps
// @Tags apps
// @Produce json
// @Param id path string true "Tenant ID"
// @Success 200 {array} service.CrmAppResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{id}/apps [get]
func (h *TenantHandler) ListApps(c *gin.Context) {
	apps, err := h.appService.ListByTenant(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// CreateApp handles POST /tenants/:id/apps
// @Summary Provision CRM app
// @Description Materialize modules, fields and views for a wizard submission in one transaction
// @Tags apps
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID"
// @Param app body service.CreateCrmAppRequest true "Wizard submission"
// @Success 201 {object} service.ProvisionResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /tenants/{id}/apps [post]
func (h *TenantHandler) CreateApp(c *gin.Context) {
	var req service.CreateCrmAppRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.provisioningService.CreateCrmApp(c, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}
