package domain

import "fmt"

// ColorTemp names a flux variant of a fixture, e.g. "3000K"
type ColorTemp string

// CustomColorTemp marks entries that did not come from the catalog
const CustomColorTemp ColorTemp = "custom"

// Catalog categories. Custom fixtures built in watt mode reuse these
// names as their category so the same corrections apply to them.
const (
	CategoryDownlight   = "downlight"
	CategoryLine        = "line lighting"
	CategoryTrack       = "track lighting"
	CategoryBulb        = "bulb"
	CategoryPanel       = "flat panel"
	CategoryIndirect    = "indirect lighting"
	CategoryT20Magnetic = "T20 magnetic"

	// CategoryLumenCustom tags custom fixtures entered directly by lumen
	CategoryLumenCustom = "lumen-based custom"
)

// FixtureTemplate is an immutable catalog entry
type FixtureTemplate struct {
	Name             string                `json:"name"`
	LumenByColorTemp map[ColorTemp]float64 `json:"lumen_by_color_temp"`
	Watt             float64               `json:"watt"`
	ColorTemps       []ColorTemp           `json:"color_temps"`
	Size             string                `json:"size"`
	Category         string                `json:"category"`
	Subtype          string                `json:"subtype,omitempty"`
	Thumbnail        string                `json:"thumbnail,omitempty"`
}

// Validate checks that every supported color temperature has a flux value
func (t FixtureTemplate) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidTemplate)
	}
	for _, ct := range t.ColorTemps {
		if _, ok := t.LumenByColorTemp[ct]; !ok {
			return fmt.Errorf("%w: %q has no lumen for %s", ErrInvalidTemplate, t.Name, ct)
		}
	}
	return nil
}

// Lumen returns the rated flux at ct, or false when the fixture doesn't offer it
func (t FixtureTemplate) Lumen(ct ColorTemp) (float64, bool) {
	lm, ok := t.LumenByColorTemp[ct]
	if !ok || lm <= 0 {
		return 0, false
	}
	return lm, true
}

// SelectedFixture is a fixture chosen for the room, with its quantity.
// Quantity is always at least 1; the Selection removes entries instead
// of keeping zero-quantity records.
type SelectedFixture struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Lumen     float64   `json:"lumen"`
	Watt      float64   `json:"watt"`
	ColorTemp ColorTemp `json:"color_temp"`
	Size      string    `json:"size"`
	Category  string    `json:"category"`
	Quantity  int       `json:"quantity"`
	Subtype   string    `json:"subtype,omitempty"`
	Thumbnail string    `json:"thumbnail,omitempty"`
}

// IsCustom reports whether the entry was built rather than picked from the catalog
func (f SelectedFixture) IsCustom() bool {
	return f.ColorTemp == CustomColorTemp
}

// CatalogFixtureID is the identity of a catalog pick
func CatalogFixtureID(name string, ct ColorTemp) string {
	return fmt.Sprintf("%s-%s", name, ct)
}
