package domain

import (
	"math"
)

// Factors holds the empirical constants of the lumen method.
// They are domain assumptions, so they are loaded from configuration.
type Factors struct {
	// MaintenanceFactor derates for fixture aging and dirt
	MaintenanceFactor float64
	// IndirectDerating multiplies the flux of IndirectCategory fixtures
	IndirectDerating float64
	IndirectCategory string

	// ReferenceEfficiency (lm/W) estimates power for lumen-based custom
	// fixtures and covers fixture types without their own value
	ReferenceEfficiency float64
	// FallbackEfficiency replaces an invalid user efficiency
	FallbackEfficiency float64
	MinEfficiency      float64
	MaxEfficiency      float64
	// TypeEfficiency maps custom fixture types to lm/W
	TypeEfficiency map[string]float64
}

// DefaultFactors returns the values the estimator ships with
func DefaultFactors() Factors {
	return Factors{
		MaintenanceFactor:   0.8,
		IndirectDerating:    0.7,
		IndirectCategory:    CategoryIndirect,
		ReferenceEfficiency: 90,
		FallbackEfficiency:  80,
		MinEfficiency:       40,
		MaxEfficiency:       200,
		TypeEfficiency: map[string]float64{
			TypeRecessed:       90,
			TypeSurfaceMounted: 90,
			TypeIndirect:       100,
			TypeTrack:          85,
			TypeBulb:           100,
		},
	}
}

// ufBand is one step of the utilization factor table
type ufBand struct {
	maxMeters float64
	uf        float64
	label     string
}

var ufBands = []ufBand{
	{maxMeters: 2.2, uf: 0.75, label: "2.2m or lower"},
	{maxMeters: 2.6, uf: 0.70, label: "2.3-2.6m"},
	{maxMeters: 3.0, uf: 0.65, label: "2.7-3.0m"},
	{maxMeters: 3.5, uf: 0.60, label: "3.1-3.5m"},
	{maxMeters: 4.0, uf: 0.55, label: "3.6-4.0m"},
	{maxMeters: math.Inf(1), uf: 0.50, label: "4.1m or higher"},
}

func bandFor(heightMM float64) ufBand {
	m := heightMM / 1000
	for _, b := range ufBands {
		if m <= b.maxMeters {
			return b
		}
	}
	return ufBands[len(ufBands)-1]
}

// UtilizationFactor maps mounting height (mm) to the fraction of flux
// reaching the work plane. Non-increasing in height.
func UtilizationFactor(heightMM float64) float64 {
	return bandFor(heightMM).uf
}

// HeightBand returns the label of the height band that produced the UF
func HeightBand(heightMM float64) string {
	return bandFor(heightMM).label
}

// Result holds the derived totals shown next to the form
type Result struct {
	TotalLumen  float64 `json:"total_lumen"`
	TotalWatt   float64 `json:"total_watt"`
	ExpectedLux int     `json:"expected_lux"`
	UF          float64 `json:"uf"`
	MF          float64 `json:"mf"`
}

// Calculate applies the lumen method to the selected fixtures.
// It never fails: a non-positive area is treated as 1 m².
func Calculate(fixtures []SelectedFixture, area, uf float64, f Factors) Result {
	var lumen, watt float64
	for _, fx := range fixtures {
		adjusted := fx.Lumen
		if f.IndirectCategory != "" && fx.Category == f.IndirectCategory {
			adjusted = fx.Lumen * f.IndirectDerating
		}
		lumen += adjusted * float64(fx.Quantity)
		watt += fx.Watt * float64(fx.Quantity)
	}

	if area <= 0 {
		area = 1
	}

	return Result{
		TotalLumen:  math.Round(lumen),
		TotalWatt:   math.Round(watt*100) / 100,
		ExpectedLux: int(math.Round(lumen * uf * f.MaintenanceFactor / area)),
		UF:          uf,
		MF:          f.MaintenanceFactor,
	}
}

// Estimate derives the UF from the room height and runs Calculate
func Estimate(fixtures []SelectedFixture, room RoomGeometry, f Factors) Result {
	return Calculate(fixtures, room.EffectiveArea(), room.UF(), f)
}

// Achievement compares the expected illuminance to the target
type Achievement struct {
	Percent int  `json:"percent"`
	Met     bool `json:"met"`
}

// Achieve returns how much of the target the expected lux covers
func Achieve(expectedLux, targetLux int) Achievement {
	if targetLux <= 0 {
		return Achievement{Met: expectedLux >= targetLux}
	}
	ratio := float64(expectedLux) / float64(targetLux)
	return Achievement{
		Percent: int(math.Round(ratio * 100)),
		Met:     ratio >= 1,
	}
}
