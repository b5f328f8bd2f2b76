// Package catalog holds the static registry of business pillars, their module
// templates and the business presets that select among them. The registry is
// immutable after loading and safe for concurrent use.
package catalog

import (
	"embed"
	"fmt"
	"sync"

	"crm-builder-backend/internal/database/models"

	"gopkg.in/yaml.v3"
)

//go:embed data/pillars.yaml data/presets.yaml
var content embed.FS

// DefaultPrimaryColor is the branding colour used when the wizard omits one
const DefaultPrimaryColor = "#6366f1"

// StatusFieldName is the template field that triggers a kanban view
const StatusFieldName = "status"

// FieldTemplate is the blueprint of a field created during provisioning
type FieldTemplate struct {
	Name       string               `yaml:"name" json:"name"`
	Label      string               `yaml:"label" json:"label"`
	Type       models.FieldType     `yaml:"type" json:"type"`
	Required   bool                 `yaml:"required" json:"required"`
	Options    *models.FieldOptions `yaml:"options" json:"options,omitempty"`
	ShowInList *bool                `yaml:"showInList" json:"showInList,omitempty"`
}

// ListVisible reports the effective showInList flag (true when omitted)
func (f FieldTemplate) ListVisible() bool {
	return f.ShowInList == nil || *f.ShowInList
}

// ModuleTemplate is the blueprint of a module and its default fields
type ModuleTemplate struct {
	SystemName  string          `yaml:"systemName" json:"systemName"`
	DisplayName string          `yaml:"displayName" json:"displayName"`
	Description string          `yaml:"description" json:"description"`
	Icon        string          `yaml:"icon" json:"icon"`
	Fields      []FieldTemplate `yaml:"fields" json:"fields"`
}

// HasField reports whether the template declares a field with the exact name
func (m ModuleTemplate) HasField(name string) bool {
	for _, f := range m.Fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

// Pillar is a business domain bundling related module templates
type Pillar struct {
	ID          string           `yaml:"id" json:"id"`
	Name        string           `yaml:"name" json:"name"`
	Description string           `yaml:"description" json:"description"`
	Icon        string           `yaml:"icon" json:"icon"`
	Color       string           `yaml:"color" json:"color"`
	Modules     []ModuleTemplate `yaml:"modules" json:"modules"`
}

// BusinessPreset is a named archetype selecting pillars and renaming modules
type BusinessPreset struct {
	ID            string            `yaml:"id" json:"id"`
	Name          string            `yaml:"name" json:"name"`
	Description   string            `yaml:"description" json:"description"`
	Icon          string            `yaml:"icon" json:"icon"`
	Pillars       []string          `yaml:"pillars" json:"pillars"`
	ModuleRenames map[string]string `yaml:"moduleRenames" json:"moduleRenames"`
}

type pillarDocument struct {
	Version  string   `yaml:"version"`
	Defaults []string `yaml:"defaults"`
	Pillars  []Pillar `yaml:"pillars"`
}

type presetDocument struct {
	Presets []BusinessPreset `yaml:"presets"`
}

// Catalog is a read-only registry keyed by pillar and preset id
type Catalog struct {
	version    string
	defaults   []string
	pillars    []Pillar
	presets    []BusinessPreset
	pillarByID map[string]int
	presetByID map[string]int
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog compiled into the binary
func Default() *Catalog {
	defaultOnce.Do(func() {
		pillars, err := content.ReadFile("data/pillars.yaml")
		if err != nil {
			panic(fmt.Sprintf("catalog: read pillars: %v", err))
		}
		presets, err := content.ReadFile("data/presets.yaml")
		if err != nil {
			panic(fmt.Sprintf("catalog: read presets: %v", err))
		}
		c, err := Parse(pillars, presets)
		if err != nil {
			panic(fmt.Sprintf("catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Parse builds a catalog from pillar and preset YAML documents
func Parse(pillarsYAML, presetsYAML []byte) (*Catalog, error) {
	var pd pillarDocument
	if err := yaml.Unmarshal(pillarsYAML, &pd); err != nil {
		return nil, fmt.Errorf("parse pillars: %w", err)
	}
	var sd presetDocument
	if err := yaml.Unmarshal(presetsYAML, &sd); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}

	c := &Catalog{
		version:    pd.Version,
		defaults:   pd.Defaults,
		pillars:    pd.Pillars,
		presets:    sd.Presets,
		pillarByID: make(map[string]int, len(pd.Pillars)),
		presetByID: make(map[string]int, len(sd.Presets)),
	}
	if err := c.index(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) index() error {
	systemNames := make(map[string]string)
	for i, p := range c.pillars {
		if p.ID == "" {
			return fmt.Errorf("pillar #%d has no id", i)
		}
		if _, dup := c.pillarByID[p.ID]; dup {
			return fmt.Errorf("duplicate pillar id %q", p.ID)
		}
		c.pillarByID[p.ID] = i

		for _, m := range p.Modules {
			if m.SystemName == "" {
				return fmt.Errorf("pillar %q has a module without systemName", p.ID)
			}
			if owner, dup := systemNames[m.SystemName]; dup {
				return fmt.Errorf("module %q declared by pillars %q and %q", m.SystemName, owner, p.ID)
			}
			systemNames[m.SystemName] = p.ID

			fieldNames := make(map[string]struct{}, len(m.Fields))
			for _, f := range m.Fields {
				if _, dup := fieldNames[f.Name]; dup || f.Name == "" {
					return fmt.Errorf("module %q: invalid or duplicate field name %q", m.SystemName, f.Name)
				}
				fieldNames[f.Name] = struct{}{}
				if !f.Type.IsValid() {
					return fmt.Errorf("module %q field %q: unknown type %q", m.SystemName, f.Name, f.Type)
				}
				if f.Type == models.FieldTypeSelect && (f.Options == nil || len(f.Options.Choices) == 0) {
					return fmt.Errorf("module %q field %q: select field without choices", m.SystemName, f.Name)
				}
			}
		}
	}

	if len(c.defaults) == 0 {
		return fmt.Errorf("no default pillars declared")
	}
	for _, id := range c.defaults {
		if _, ok := c.pillarByID[id]; !ok {
			return fmt.Errorf("default pillar %q is not declared", id)
		}
	}

	for i, p := range c.presets {
		if p.ID == "" {
			return fmt.Errorf("preset #%d has no id", i)
		}
		if _, dup := c.presetByID[p.ID]; dup {
			return fmt.Errorf("duplicate preset id %q", p.ID)
		}
		c.presetByID[p.ID] = i
		for _, id := range p.Pillars {
			if _, ok := c.pillarByID[id]; !ok {
				return fmt.Errorf("preset %q references unknown pillar %q", p.ID, id)
			}
		}
		for systemName := range p.ModuleRenames {
			if _, ok := systemNames[systemName]; !ok {
				return fmt.Errorf("preset %q renames unknown module %q", p.ID, systemName)
			}
		}
	}
	return nil
}

// Version identifies the catalog revision
func (c *Catalog) Version() string {
	return c.version
}

// Pillars returns every pillar in catalog order
func (c *Catalog) Pillars() []Pillar {
	out := make([]Pillar, len(c.pillars))
	for i, p := range c.pillars {
		out[i] = p.clone()
	}
	return out
}

// GetPillarByID looks up a pillar
func (c *Catalog) GetPillarByID(id string) (Pillar, bool) {
	i, ok := c.pillarByID[id]
	if !ok {
		return Pillar{}, false
	}
	return c.pillars[i].clone(), true
}

// DefaultPillars returns the fallback pillar ids used when neither a preset
// nor a custom selection applies
func (c *Catalog) DefaultPillars() []string {
	return append([]string(nil), c.defaults...)
}

// Presets returns every business preset in catalog order
func (c *Catalog) Presets() []BusinessPreset {
	out := make([]BusinessPreset, len(c.presets))
	for i, p := range c.presets {
		out[i] = p.clone()
	}
	return out
}

// GetPreset looks up a business preset
func (c *Catalog) GetPreset(id string) (BusinessPreset, bool) {
	i, ok := c.presetByID[id]
	if !ok {
		return BusinessPreset{}, false
	}
	return c.presets[i].clone(), true
}

func (p Pillar) clone() Pillar {
	out := p
	out.Modules = make([]ModuleTemplate, len(p.Modules))
	for i, m := range p.Modules {
		mc := m
		mc.Fields = make([]FieldTemplate, len(m.Fields))
		for j, f := range m.Fields {
			fc := f
			if f.Options != nil {
				opts := *f.Options
				opts.Choices = append([]models.Choice(nil), f.Options.Choices...)
				fc.Options = &opts
			}
			if f.ShowInList != nil {
				v := *f.ShowInList
				fc.ShowInList = &v
			}
			mc.Fields[j] = fc
		}
		out.Modules[i] = mc
	}
	return out
}

func (p BusinessPreset) clone() BusinessPreset {
	out := p
	out.Pillars = append([]string(nil), p.Pillars...)
	out.ModuleRenames = make(map[string]string, len(p.ModuleRenames))
	for k, v := range p.ModuleRenames {
		out.ModuleRenames[k] = v
	}
	return out
}
