package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// InputMode selects how a custom fixture's flux is entered
type InputMode string

const (
	// ModeLumen takes the lumen value as given and estimates power
	ModeLumen InputMode = "lumen"
	// ModeWatt derives lumen from power and a per-type efficiency
	ModeWatt InputMode = "watt"
)

// Custom fixture types offered in watt mode
const (
	TypeRecessed       = "recessed"
	TypeSurfaceMounted = "surface-mounted"
	TypeIndirect       = CategoryIndirect
	TypeTrack          = CategoryTrack
	TypeBulb           = CategoryBulb
	TypeOther          = "other"
)

// CustomFixture is a proposal produced by the builder. It is only added
// to a Selection by an explicit action.
type CustomFixture struct {
	Name        string  `json:"name"`
	Lumen       float64 `json:"lumen"`
	Watt        float64 `json:"watt"`
	Category    string  `json:"category"`
	FixtureType string  `json:"fixture_type"`
}

// CategoryTag is the category a custom fixture is calculated under
func CategoryTag(mode InputMode, fixtureType string) string {
	if mode == ModeWatt && fixtureType != "" {
		return fixtureType
	}
	if mode == "" && fixtureType != "" && fixtureType != TypeOther {
		return fixtureType
	}
	return CategoryLumenCustom
}

// CustomBuilder holds the custom fixture form
type CustomBuilder struct {
	Name        string    `json:"name"`
	Mode        InputMode `json:"mode"`
	Lumen       float64   `json:"lumen"`
	Watt        float64   `json:"watt"`
	FixtureType string    `json:"fixture_type"`
	Efficiency  float64   `json:"efficiency"`

	factors Factors
}

// NewCustomBuilder returns an empty form in lumen mode
func NewCustomBuilder(f Factors) *CustomBuilder {
	return &CustomBuilder{
		Mode:        ModeLumen,
		FixtureType: TypeRecessed,
		Efficiency:  f.FallbackEfficiency,
		factors:     f,
	}
}

// EstimateWatt approximates power for a lumen value at the reference
// efficiency, rounded to 0.1 W
func EstimateWatt(lumen, referenceEfficiency float64) float64 {
	if lumen <= 0 || referenceEfficiency <= 0 {
		return 0
	}
	return math.Round(lumen/referenceEfficiency*10) / 10
}

// SetMode switches between lumen and watt entry
func (b *CustomBuilder) SetMode(m InputMode) {
	if m != ModeWatt {
		m = ModeLumen
	}
	b.Mode = m
	if b.Mode == ModeWatt && b.Watt > 0 {
		b.Lumen = b.Watt * b.EffectiveEfficiency()
	}
}

// SetLumen records a lumen value; power is estimated for display only
func (b *CustomBuilder) SetLumen(lumen float64) {
	b.Lumen = lumen
	b.Watt = EstimateWatt(lumen, b.factors.ReferenceEfficiency)
}

// SetWatt records power and derives lumen from the effective efficiency
func (b *CustomBuilder) SetWatt(watt float64) {
	b.Watt = watt
	if watt > 0 {
		b.Lumen = watt * b.EffectiveEfficiency()
	} else {
		b.Lumen = 0
	}
}

// SetFixtureType changes the type and re-derives lumen from power
func (b *CustomBuilder) SetFixtureType(t string) {
	b.FixtureType = t
	if b.Mode == ModeWatt && b.Watt > 0 {
		b.Lumen = b.Watt * b.EffectiveEfficiency()
	}
}

// SetEfficiency stores a user efficiency for TypeOther. The value is kept
// even when invalid; the returned error is meant for display.
func (b *CustomBuilder) SetEfficiency(e float64) error {
	b.Efficiency = e
	if b.Mode == ModeWatt && b.Watt > 0 {
		b.Lumen = b.Watt * b.EffectiveEfficiency()
	}
	return b.ValidateEfficiency()
}

// ValidateEfficiency reports whether the user efficiency is usable.
// Zero means unset and is not an error.
func (b *CustomBuilder) ValidateEfficiency() error {
	if b.FixtureType != TypeOther || b.Efficiency == 0 {
		return nil
	}
	if b.Efficiency < b.factors.MinEfficiency || b.Efficiency > b.factors.MaxEfficiency {
		return fmt.Errorf("%w: must be between %g and %g lm/W",
			ErrEfficiencyOutOfRange, b.factors.MinEfficiency, b.factors.MaxEfficiency)
	}
	return nil
}

// EffectiveEfficiency is the lm/W used to turn power into flux
func (b *CustomBuilder) EffectiveEfficiency() float64 {
	if b.FixtureType == TypeOther {
		if b.Efficiency == 0 || b.ValidateEfficiency() != nil {
			return b.factors.FallbackEfficiency
		}
		return b.Efficiency
	}
	if e, ok := b.factors.TypeEfficiency[b.FixtureType]; ok {
		return e
	}
	return b.factors.ReferenceEfficiency
}

// Ready reports whether the form can produce a fixture
func (b *CustomBuilder) Ready() bool {
	return strings.TrimSpace(b.Name) != "" && b.Lumen > 0 && b.Watt > 0
}

// Propose builds the fixture the form currently describes
func (b *CustomBuilder) Propose() (CustomFixture, bool) {
	lumen := b.Lumen
	if b.Mode == ModeWatt {
		lumen = b.Watt * b.EffectiveEfficiency()
	}
	fx := CustomFixture{
		Name:        strings.TrimSpace(b.Name),
		Lumen:       lumen,
		Watt:        b.Watt,
		Category:    CategoryTag(b.Mode, b.FixtureType),
		FixtureType: b.FixtureType,
	}
	return fx, b.Ready() && lumen > 0
}

// Clear empties the name and values after a fixture has been added
func (b *CustomBuilder) Clear() {
	b.Name = ""
	b.Lumen = 0
	b.Watt = 0
}

// Snapshot captures the form for the saved fixtures list
func (b *CustomBuilder) Snapshot(id string, now time.Time) (SavedCustomFixture, bool) {
	if !b.Ready() {
		return SavedCustomFixture{}, false
	}
	s := SavedCustomFixture{
		ID:          id,
		Name:        strings.TrimSpace(b.Name),
		Lumen:       b.Lumen,
		Watt:        b.Watt,
		Mode:        b.Mode,
		FixtureType: b.FixtureType,
		SavedAt:     now,
	}
	if b.FixtureType == TypeOther {
		s.Efficiency = b.Efficiency
	}
	return s, true
}

// Restore fills the form from a saved fixture
func (b *CustomBuilder) Restore(s SavedCustomFixture) {
	b.Name = s.Name
	b.Lumen = s.Lumen
	b.Watt = s.Watt
	b.FixtureType = s.FixtureType
	if s.Mode != "" {
		b.Mode = s.Mode
	}
	if s.Efficiency != 0 {
		b.Efficiency = s.Efficiency
	}
}
