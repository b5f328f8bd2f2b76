package handlers

import (
	"net/http"
	"strings"

	"crm-builder-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the pillar and preset registry
type CatalogHandler struct {
	catalogService      service.CatalogServiceInterface
	provisioningService service.ProvisioningServiceInterface
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService service.CatalogServiceInterface, provisioningService service.ProvisioningServiceInterface) *CatalogHandler {
	return &CatalogHandler{
		catalogService:      catalogService,
		provisioningService: provisioningService,
	}
}

// ListPillars handles GET /catalog/pillars
// @Summary List pillars
// @Description Get every business pillar with its module templates
// @Tags catalog
// @Produce json
// @Success 200 {object} service.PillarListResponse
// @Router /catalog/pillars [get]
func (h *CatalogHandler) ListPillars(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogService.ListPillars())
}

// GetPillar handles GET /catalog/pillars/:id
// @Summary Get pillar
// @Tags catalog
// @Produce json
// @Param id path string true "Pillar ID"
// @Success 200 {object} catalog.Pillar
// @Failure 404 {object} ErrorResponse
// @Router /catalog/pillars/{id} [get]
func (h *CatalogHandler) GetPillar(c *gin.Context) {
	pillar, err := h.catalogService.GetPillar(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pillar)
}

// ListPresets handles GET /catalog/presets
// @Summary List business presets
// @Tags catalog
// @Produce json
// @Success 200 {object} service.PresetListResponse
// @Router /catalog/presets [get]
func (h *CatalogHandler) ListPresets(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogService.ListPresets())
}

// GetPreset handles GET /catalog/presets/:id
// @Summary Get business preset
// @Tags catalog
// @Produce json
// @Param id path string true "Preset ID"
// @Success 200 {object} catalog.BusinessPreset
// @Failure 404 {object} ErrorResponse
// @Router /catalog/presets/{id} [get]
func (h *CatalogHandler) GetPreset(c *gin.Context) {
	preset, err := h.catalogService.GetPreset(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, preset)
}

// Preview handles GET /catalog/preview
// @Summary Preview CRM structure
// @Description Resolve the pillars and module names a wizard submission would provision, without writing anything
// @Tags catalog
// @Produce json
// @Param businessType query string false "Business preset id"
// @Param customPillars query string false "Comma separated pillar ids overriding the preset"
// @Success 200 {object} service.PreviewResponse
// @Failure 400 {object} ErrorResponse
// @Router /catalog/preview [get]
func (h *CatalogHandler) Preview(c *gin.Context) {
	var custom []string
	if raw := strings.TrimSpace(c.Query("customPillars")); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				custom = append(custom, id)
			}
		}
	}

	preview, err := h.provisioningService.PreviewCrmStructure(c.Query("businessType"), custom)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, preview)
}
