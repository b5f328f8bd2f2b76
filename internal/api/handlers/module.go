package handlers

import (
	"net/http"

	"crm-builder-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ModuleHandler handles HTTP requests scoped to a module
type ModuleHandler struct {
	moduleService service.ModuleServiceInterface
	fieldService  service.FieldServiceInterface
	viewService   service.ViewServiceInterface
	recordService service.RecordServiceInterface
}

// NewModuleHandler creates a new module handler
func NewModuleHandler(moduleService service.ModuleServiceInterface, fieldService service.FieldServiceInterface, viewService service.ViewServiceInterface, recordService service.RecordServiceInterface) *ModuleHandler {
	return &ModuleHandler{
		moduleService: moduleService,
		fieldService:  fieldService,
		viewService:   viewService,
		recordService: recordService,
	}
}

// GetModule handles GET /modules/:id
// @Summary Get module
// @Description Get a module with its fields and views
// @Tags modules
// @Produce json
// @Param id path string true "Module ID"
// @Success 200 {object} service.ModuleDetailResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /modules/{id} [get]
func (h *ModuleHandler) GetModule(c *gin.Context) {
	module, err := h.moduleService.GetModule(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, module)
}

// UpdateModule handles PATCH /modules/:id
// @Summary Update module
// @Tags modules
// @Accept json
// @Produce json
// @Param id path string true "Module ID"
// @Param module body service.UpdateModuleRequest true "Fields to change"
// @Success 200 {object} service.ModuleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /modules/{id} [patch]
func (h *ModuleHandler) UpdateModule(c *gin.Context) {
	var req service.UpdateModuleRequest
	if !bindJSON(c, &req) {
		return
	}

	module, err := h.moduleService.UpdateModule(c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, module)
}

// DeleteModule handles DELETE /modules/:id
// @Summary Delete module
// @Tags modules
// @Param id path string true "Module ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /modules/{id} [delete]
func (h *ModuleHandler) DeleteModule(c *gin.Context) {
	if err := h.moduleService.DeleteModule(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetSchema handles GET /modules/:id/schema
// @Summary Record JSON schema
// @Description JSON Schema describing the record data shape implied by the module fields
// @Tags modules
// @Produce json
// @Param id path string true "Module ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /modules/{id}/schema [get]
func (h *ModuleHandler) GetSchema(c *gin.Context) {
	schema, err := h.moduleService.GetRecordSchema(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, schema)
}

// ListFields handles GET /modules/:id/fields
// @Summary List fields
// @Tags fields
// @Produce json
// @Param id path string true "Module ID"
// @Success 200 {array} service.FieldResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /modules/{id}/fields [get]
func (h *ModuleHandler) ListFields(c *gin.Context) {
	fields, err := h.fieldService.ListByModule(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fields)
}

// CreateField handles POST /modules/:id/fields
// @Summary Create field
// @Tags fields
// @Accept json
// @Produce json
// @Param id path string true "Module ID"
// @Param field body service.CreateFieldRequest true "Field definition"
// @Success 201 {object} service.FieldResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /modules/{id}/fields [post]
func (h *ModuleHandler) CreateField(c *gin.Context) {
	var req service.CreateFieldRequest
	if !bindJSON(c, &req) {
		return
	}

	field, err := h.fieldService.CreateField(c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, field)
}

// ListViews handles GET /modules/:id/views
// @Summary List views
// @Tags views
// @Produce json
// @Param id path string true "Module ID"
// @Success 200 {array} service.ViewResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /modules/{id}/views [get]
func (h *ModuleHandler) ListViews(c *gin.Context) {
	views, err := h.viewService.ListByModule(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// CreateView handles POST /modules/:id/views
// @Summary Create view
// @Description Create a view. A new default view demotes the previous default.
// @Tags views
// @Accept json
// @Produce json
// @Param id path string true "Module ID"
// @Param view body service.CreateViewRequest true "View definition"
// @Success 201 {object} service.ViewResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /modules/{id}/views [post]
func (h *ModuleHandler) CreateView(c *gin.Context) {
	var req service.CreateViewRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.viewService.CreateView(c, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// ListRecords handles GET /modules/:id/records
// @Summary List records
// @Description One page of module records, newest first
// @Tags records
// @Produce json
// @Param id path string true "Module ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} service.RecordListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /modules/{id}/records [get]
func (h *ModuleHandler) ListRecords(c *gin.Context) {
	limit, ok := queryInt(c, "limit")
	if !ok {
		return
	}
	offset, ok := queryInt(c, "offset")
	if !ok {
		return
	}

	page, err := h.recordService.ListByModule(c.Param("id"), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// CreateRecord handles POST /modules/:id/records
// @Summary Create record
// @Tags records
// @Accept json
// @Produce json
// @Param id path string true "Module ID"
// @Param record body service.CreateRecordRequest true "Record data keyed by field name"
// @Success 201 {object} service.RecordResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /modules/{id}/records [post]
func (h *ModuleHandler) CreateRecord(c *gin.Context) {
	var req service.CreateRecordRequest
	if !bindJSON(c, &req) {
		return
	}

	record, err := h.recordService.CreateRecord(c, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

// SearchRecords handles GET /modules/:id/records/search
// @Summary Search records
// @Description Case-insensitive substring match over record data
// @Tags records
// @Produce json
// @Param id path string true "Module ID"
// @Param q query string true "Search term"
// @Param limit query int false "Maximum number of records"
// @Success 200 {array} service.RecordResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /modules/{id}/records/search [get]
func (h *ModuleHandler) SearchRecords(c *gin.Context) {
	limit, ok := queryInt(c, "limit")
	if !ok {
		return
	}

	records, err := h.recordService.Search(c.Param("id"), c.Query("q"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// ValidateRecordRequest wraps the data checked by the validate endpoint
type ValidateRecordRequest struct {
	Data map[string]interface{} `json:"data"`
}

// ValidateRecord handles POST /modules/:id/records/validate
// @Summary Validate record data
// @Description Check data against the module field rules without storing it
// @Tags records
// @Accept json
// @Produce json
// @Param id path string true "Module ID"
// @Param record body ValidateRecordRequest true "Record data"
// @Success 200 {object} service.ValidationReport
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /modules/{id}/records/validate [post]
func (h *ModuleHandler) ValidateRecord(c *gin.Context) {
	var req ValidateRecordRequest
	if !bindJSON(c, &req) {
		return
	}

	report, err := h.recordService.ValidateData(c.Param("id"), req.Data)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
