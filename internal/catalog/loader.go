package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/quentinrf/plant-monitor/services/lux-service/internal/domain"
)

//go:embed lighting.yaml
var defaultData []byte

// Data is everything the estimator reads from the lighting data file
type Data struct {
	Catalog         *domain.Catalog
	Presets         []domain.SpacePreset
	Factors         domain.Factors
	DefaultPreset   string
	DefaultCategory string
}

// DefaultTarget returns the target lux of the default preset
func (d *Data) DefaultTarget() int {
	if p, ok := domain.FindPreset(d.Presets, d.DefaultPreset); ok {
		return p.TargetLux
	}
	if len(d.Presets) > 0 {
		return d.Presets[0].TargetLux
	}
	return 0
}

type fileData struct {
	Factors         factorsDoc   `yaml:"factors"`
	DefaultPreset   string       `yaml:"default_preset"`
	DefaultCategory string       `yaml:"default_category"`
	Presets         []presetDoc  `yaml:"presets"`
	Categories      []string     `yaml:"categories"`
	Fixtures        []fixtureDoc `yaml:"fixtures"`
}

type factorsDoc struct {
	MaintenanceFactor   *float64           `yaml:"maintenance_factor"`
	IndirectDerating    *float64           `yaml:"indirect_derating"`
	IndirectCategory    *string            `yaml:"indirect_category"`
	ReferenceEfficiency *float64           `yaml:"reference_efficiency"`
	FallbackEfficiency  *float64           `yaml:"fallback_efficiency"`
	MinEfficiency       *float64           `yaml:"min_efficiency"`
	MaxEfficiency       *float64           `yaml:"max_efficiency"`
	TypeEfficiency      map[string]float64 `yaml:"type_efficiency"`
}

type presetDoc struct {
	Name      string `yaml:"name"`
	TargetLux int    `yaml:"target_lux"`
}

type fixtureDoc struct {
	Name       string             `yaml:"name"`
	ColorTemps []string           `yaml:"color_temps"`
	Lumen      map[string]float64 `yaml:"lumen"`
	Watt       float64            `yaml:"watt"`
	Size       string             `yaml:"size"`
	Category   string             `yaml:"category"`
	Subtype    string             `yaml:"subtype"`
	Thumbnail  string             `yaml:"thumbnail"`
}

// Default parses the embedded lighting data
func Default() (*Data, error) {
	return Parse(defaultData)
}

// LoadFile parses a lighting data file from disk
func LoadFile(path string) (*Data, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lighting data: %w", err)
	}
	return Parse(b)
}

// Parse decodes lighting data; factors missing from the document keep
// the domain defaults and missing presets fall back to the built-in list
func Parse(b []byte) (*Data, error) {
	var doc fileData
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal lighting data: %w", err)
	}

	templates := make([]domain.FixtureTemplate, 0, len(doc.Fixtures))
	for _, fx := range doc.Fixtures {
		templates = append(templates, fx.template())
	}

	c, err := domain.NewCatalog(templates, doc.Categories...)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	presets := domain.DefaultPresets()
	if len(doc.Presets) > 0 {
		presets = make([]domain.SpacePreset, 0, len(doc.Presets))
		for _, p := range doc.Presets {
			presets = append(presets, domain.SpacePreset{Name: p.Name, TargetLux: p.TargetLux})
		}
	}

	data := &Data{
		Catalog:         c,
		Presets:         presets,
		Factors:         doc.Factors.apply(domain.DefaultFactors()),
		DefaultPreset:   doc.DefaultPreset,
		DefaultCategory: doc.DefaultCategory,
	}
	if data.DefaultCategory == "" {
		if cats := c.Categories(); len(cats) > 0 {
			data.DefaultCategory = cats[0]
		}
	}
	return data, nil
}

func (fx fixtureDoc) template() domain.FixtureTemplate {
	t := domain.FixtureTemplate{
		Name:             fx.Name,
		LumenByColorTemp: make(map[domain.ColorTemp]float64, len(fx.Lumen)),
		Watt:             fx.Watt,
		ColorTemps:       make([]domain.ColorTemp, 0, len(fx.ColorTemps)),
		Size:             fx.Size,
		Category:         fx.Category,
		Subtype:          fx.Subtype,
		Thumbnail:        fx.Thumbnail,
	}
	for ct, lm := range fx.Lumen {
		t.LumenByColorTemp[domain.ColorTemp(ct)] = lm
	}
	for _, ct := range fx.ColorTemps {
		t.ColorTemps = append(t.ColorTemps, domain.ColorTemp(ct))
	}
	return t
}

func (f factorsDoc) apply(base domain.Factors) domain.Factors {
	if f.MaintenanceFactor != nil {
		base.MaintenanceFactor = *f.MaintenanceFactor
	}
	if f.IndirectDerating != nil {
		base.IndirectDerating = *f.IndirectDerating
	}
	if f.IndirectCategory != nil {
		base.IndirectCategory = *f.IndirectCategory
	}
	if f.ReferenceEfficiency != nil {
		base.ReferenceEfficiency = *f.ReferenceEfficiency
	}
	if f.FallbackEfficiency != nil {
		base.FallbackEfficiency = *f.FallbackEfficiency
	}
	if f.MinEfficiency != nil {
		base.MinEfficiency = *f.MinEfficiency
	}
	if f.MaxEfficiency != nil {
		base.MaxEfficiency = *f.MaxEfficiency
	}
	for typ, eff := range f.TypeEfficiency {
		base.TypeEfficiency[typ] = eff
	}
	return base
}
