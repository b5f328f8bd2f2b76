package catalog

import "fmt"

// UnknownPillarError reports a custom pillar selection naming no catalog pillar
type UnknownPillarError struct {
	ID string
}

func (e *UnknownPillarError) Error() string {
	return fmt.Sprintf("unknown pillar %q", e.ID)
}

// Resolution is the outcome of choosing pillars and renames for a business type.
// Provisioning and previews share it so both always agree.
type Resolution struct {
	BusinessType  string
	Preset        *BusinessPreset
	Pillars       []Pillar
	ModuleRenames map[string]string
}

// Resolve selects the enabled pillars for a business type. An explicit
// customPillars list wins over the preset, which wins over the defaults. An
// empty customPillars list is the same as none.
// Unknown business types are tolerated and fall back to the defaults.
func (c *Catalog) Resolve(businessType string, customPillars []string) (*Resolution, error) {
	res := &Resolution{
		BusinessType:  businessType,
		ModuleRenames: map[string]string{},
	}

	if preset, ok := c.GetPreset(businessType); ok {
		res.Preset = &preset
		res.ModuleRenames = preset.ModuleRenames
	}

	var ids []string
	switch {
	case len(customPillars) > 0:
		ids = customPillars
	case res.Preset != nil && len(res.Preset.Pillars) > 0:
		ids = res.Preset.Pillars
	default:
		ids = c.DefaultPillars()
	}

	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		pillar, ok := c.GetPillarByID(id)
		if !ok {
			return nil, &UnknownPillarError{ID: id}
		}
		res.Pillars = append(res.Pillars, pillar)
	}
	return res, nil
}

// PillarIDs returns the enabled pillar ids in order
func (r *Resolution) PillarIDs() []string {
	ids := make([]string, len(r.Pillars))
	for i, p := range r.Pillars {
		ids[i] = p.ID
	}
	return ids
}

// DisplayName returns the effective module name after preset renames
func (r *Resolution) DisplayName(t ModuleTemplate) string {
	if name, ok := r.ModuleRenames[t.SystemName]; ok && name != "" {
		return name
	}
	return t.DisplayName
}
