package handlers

import (
	"net/http"

	"crm-builder-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ViewHandler handles HTTP requests for saved views
type ViewHandler struct {
	viewService service.ViewServiceInterface
}

// NewViewHandler creates a new view handler
func NewViewHandler(viewService service.ViewServiceInterface) *ViewHandler {
	return &ViewHandler{viewService: viewService}
}

// GetView handles GET /views/:id
// @Summary Get view
// @Tags views
// @Produce json
// @Param id path string true "View ID"
// @Success 200 {object} service.ViewResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /views/{id} [get]
func (h *ViewHandler) GetView(c *gin.Context) {
	view, err := h.viewService.GetView(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// UpdateView handles PATCH /views/:id
// @Summary Update view
// @Tags views
// @Accept json
// @Produce json
// @Param id path string true "View ID"
// @Param view body service.UpdateViewRequest true "Fields to change"
// @Success 200 {object} service.ViewResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /views/{id} [patch]
func (h *ViewHandler) UpdateView(c *gin.Context) {
	var req service.UpdateViewRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.viewService.UpdateView(c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// DeleteView handles DELETE /views/:id
// @Summary Delete view
// @Tags views
// @Param id path string true "View ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /views/{id} [delete]
func (h *ViewHandler) DeleteView(c *gin.Context) {
	if err := h.viewService.DeleteView(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetViewData handles GET /views/:id/data
// @Summary Render view
// @Description Table rows or kanban lanes with rendered cells
// @Tags views
// @Produce json
// @Param id path string true "View ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} service.ViewDataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /views/{id}/data [get]
func (h *ViewHandler) GetViewData(c *gin.Context) {
	limit, ok := queryInt(c, "limit")
	if !ok {
		return
	}
	offset, ok := queryInt(c, "offset")
	if !ok {
		return
	}

	data, err := h.viewService.GetViewData(c.Param("id"), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}
