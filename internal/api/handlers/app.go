package handlers

import (
	"net/http"

	"crm-builder-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AppHandler handles HTTP requests for provisioned CRM apps
type AppHandler struct {
	appService    service.CrmAppServiceInterface
	moduleService service.ModuleServiceInterface
	recordService service.RecordServiceInterface
}

// NewAppHandler creates a new app handler
func NewAppHandler(appService service.CrmAppServiceInterface, moduleService service.ModuleServiceInterface, recordService service.RecordServiceInterface) *AppHandler {
	return &AppHandler{
		appService:    appService,
		moduleService: moduleService,
		recordService: recordService,
	}
}

// GetApp handles GET /apps/:id
// @Summary Get app
// @Description Get an app with its modules in sort order
// @Tags apps
// @Produce json
// @Param id path string true "App ID"
// @Success 200 {object} service.AppDetailResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /apps/{id} [get]
func (h *AppHandler) GetApp(c *gin.Context) {
	app, err := h.appService.GetApp(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// UpdateApp handles PATCH /apps/:id
// @Summary Update app
// @Tags apps
// @Accept json
// @Produce json
// @Param id path string true "App ID"
// @Param app body service.UpdateCrmAppRequest true "Fields to change"
// @Success 200 {object} service.CrmAppResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /apps/{id} [patch]
func (h *AppHandler) UpdateApp(c *gin.Context) {
	var req service.UpdateCrmAppRequest
	if !bindJSON(c, &req) {
		return
	}

	app, err := h.appService.UpdateApp(c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// DeleteApp handles DELETE /apps/:id
// @Summary Delete app
// @Description Delete an app with its modules, fields, views, records and activities
// @Tags apps
// @Param id path string true "App ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /apps/{id} [delete]
func (h *AppHandler) DeleteApp(c *gin.Context) {
	if err := h.appService.DeleteApp(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListModules handles GET /apps/:id/modules
// @Summary List app modules
// @Tags modules
// @Produce json
// @Param id path string true "App ID"
// @Success 200 {array} service.ModuleResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /apps/{id}/modules [get]
func (h *AppHandler) ListModules(c *gin.Context) {
	modules, err := h.moduleService.ListByApp(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, modules)
}

// CreateModule handles POST /apps/:id/modules
// @Summary Create custom module
// @Tags modules
// @Accept json
// @Produce json
// @Param id path string true "App ID"
// @Param module body service.CreateModuleRequest true "Module definition"
// @Success 201 {object} service.ModuleDetailResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /apps/{id}/modules [post]
func (h *AppHandler) CreateModule(c *gin.Context) {
	var req service.CreateModuleRequest
	if !bindJSON(c, &req) {
		return
	}

	module, err := h.moduleService.CreateModule(c, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, module)
}

// ListRecentRecords handles GET /apps/:id/records
// @Summary Recent app records
// @Description Newest records across every module of the app
// @Tags records
// @Produce json
// @Param id path string true "App ID"
// @Param limit query int false "Maximum number of records"
// @Success 200 {array} service.RecordResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /apps/{id}/records [get]
func (h *AppHandler) ListRecentRecords(c *gin.Context) {
	limit, ok := queryInt(c, "limit")
	if !ok {
		return
	}

	records, err := h.recordService.ListByApp(c.Param("id"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetStats handles GET /apps/:id/stats
// @Summary App statistics
// @Tags apps
// @Produce json
// @Param id path string true "App ID"
// @Success 200 {object} service.AppStatsResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /apps/{id}/stats [get]
func (h *AppHandler) GetStats(c *gin.Context) {
	stats, err := h.appService.GetStats(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
