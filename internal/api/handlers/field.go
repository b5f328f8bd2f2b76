package handlers

import (
	"net/http"

	"crm-builder-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FieldHandler handles HTTP requests for individual fields
type FieldHandler struct {
	fieldService service.FieldServiceInterface
}

// NewFieldHandler creates a new field handler
func NewFieldHandler(fieldService service.FieldServiceInterface) *FieldHandler {
	return &FieldHandler{fieldService: fieldService}
}

// UpdateField handles PATCH /fields/:id
// @Summary Update field
// @Description Sparse update. Renaming a field leaves existing record values under the old key.
// @Tags fields
// @Accept json
// @Produce json
// @Param id path string true "Field ID"
// @Param field body service.UpdateFieldRequest true "Fields to change"
// @Success 200 {object} service.FieldResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /fields/{id} [patch]
func (h *FieldHandler) UpdateField(c *gin.Context) {
	var req service.UpdateFieldRequest
	if !bindJSON(c, &req) {
		return
	}

	field, err := h.fieldService.UpdateField(c, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, field)
}

// DeleteField handles DELETE /fields/:id
// @Summary Delete field
// @Description System fields cannot be deleted
// @Tags fields
// @Param id path string true "Field ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /fields/{id} [delete]
func (h *FieldHandler) DeleteField(c *gin.Context) {
	if err := h.fieldService.DeleteField(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
