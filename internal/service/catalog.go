package service

import (
	"crm-builder-backend/internal/catalog"
	apperrors "crm-builder-backend/internal/errors"
)

// CatalogService exposes the static pillar and preset registry
type CatalogService struct {
	catalog *catalog.Catalog
}

// Ensure CatalogService implements CatalogServiceInterface
var _ CatalogServiceInterface = (*CatalogService)(nil)

// NewCatalogService creates a new CatalogService
func NewCatalogService(c *catalog.Catalog) *CatalogService {
	return &CatalogService{catalog: c}
}

// PillarListResponse lists the pillars of a catalog revision
type PillarListResponse struct {
	Version  string           `json:"version"`
	Defaults []string         `json:"defaults"`
	Pillars  []catalog.Pillar `json:"pillars"`
}

// PresetListResponse lists the business presets of a catalog revision
type PresetListResponse struct {
	Version string                   `json:"version"`
	Presets []catalog.BusinessPreset `json:"presets"`
}

// ListPillars returns every pillar with its module templates
func (s *CatalogService) ListPillars() *PillarListResponse {
	return &PillarListResponse{
		Version:  s.catalog.Version(),
		Defaults: s.catalog.DefaultPillars(),
		Pillars:  s.catalog.Pillars(),
	}
}

// GetPillar returns one pillar
func (s *CatalogService) GetPillar(id string) (*catalog.Pillar, error) {
	pillar, ok := s.catalog.GetPillarByID(id)
	if !ok {
		return nil, apperrors.ErrPillarNotFound
	}
	return &pillar, nil
}

// ListPresets returns every business preset
func (s *CatalogService) ListPresets() *PresetListResponse {
	return &PresetListResponse{
		Version: s.catalog.Version(),
		Presets: s.catalog.Presets(),
	}
}

// GetPreset returns one business preset
func (s *CatalogService) GetPreset(id string) (*catalog.BusinessPreset, error) {
	preset, ok := s.catalog.GetPreset(id)
	if !ok {
		return nil, apperrors.ErrPresetNotFound
	}
	return &preset, nil
}
