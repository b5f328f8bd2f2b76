package handlers

import (
	"net/http"

	"crm-builder-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RecordHandler handles HTTP requests for records and their activities
type RecordHandler struct {
	recordService service.RecordServiceInterface
}

// NewRecordHandler creates a new record handler
func NewRecordHandler(recordService service.RecordServiceInterface) *RecordHandler {
	return &RecordHandler{recordService: recordService}
}

// GetRecord handles GET /records/:id
// @Summary Get record
// @Tags records
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} service.RecordResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /records/{id} [get]
func (h *RecordHandler) GetRecord(c *gin.Context) {
	record, err := h.recordService.GetRecord(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// UpdateRecord handles PATCH /records/:id
// @Summary Update record
// @Description Shallow-merge data into the record. Keys not sent are preserved.
// @Tags records
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param record body service.UpdateRecordRequest true "Partial data"
// @Success 200 {object} service.RecordResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /records/{id} [patch]
func (h *RecordHandler) UpdateRecord(c *gin.Context) {
	var req service.UpdateRecordRequest
	if !bindJSON(c, &req) {
		return
	}

	record, err := h.recordService.UpdateRecord(c, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// DeleteRecord handles DELETE /records/:id
// @Summary Delete record
// @Tags records
// @Param id path string true "Record ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /records/{id} [delete]
func (h *RecordHandler) DeleteRecord(c *gin.Context) {
	if err := h.recordService.DeleteRecord(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListActivities handles GET /records/:id/activities
// @Summary List record activities
// @Tags activities
// @Produce json
// @Param id path string true "Record ID"
// @Param limit query int false "Maximum number of entries"
// @Success 200 {array} service.ActivityResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /records/{id}/activities [get]
func (h *RecordHandler) ListActivities(c *gin.Context) {
	limit, ok := queryInt(c, "limit")
	if !ok {
		return
	}

	activities, err := h.recordService.ListActivities(c.Param("id"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activities)
}

// AddActivity handles POST /records/:id/activities
// @Summary Log activity
// @Description Append a note, call, email or meeting to a record
// @Tags activities
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param activity body service.CreateActivityRequest true "Activity"
// @Success 201 {object} service.ActivityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /records/{id}/activities [post]
func (h *RecordHandler) AddActivity(c *gin.Context) {
	var req service.CreateActivityRequest
	if !bindJSON(c, &req) {
		return
	}

	activity, err := h.recordService.AddActivity(c, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, activity)
}

// DeleteActivity handles DELETE /activities/:id
// @Summary Delete activity
// @Tags activities
// @Param id path string true "Activity ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /activities/{id} [delete]
func (h *RecordHandler) DeleteActivity(c *gin.Context) {
	if err := h.recordService.DeleteActivity(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
