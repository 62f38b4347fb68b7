package domain

import (
	"math"
	"strconv"
	"strings"
)

// RoomGeometry is the floor area in m² and the ceiling height in mm
type RoomGeometry struct {
	Area     float64 `json:"area"`
	HeightMM float64 `json:"height_mm"`
}

// EffectiveArea floors non-positive areas at 1 to keep the division safe
func (g RoomGeometry) EffectiveArea() float64 {
	if g.Area <= 0 {
		return 1
	}
	return g.Area
}

// UF returns the utilization factor for the room height
func (g RoomGeometry) UF() float64 {
	return UtilizationFactor(g.HeightMM)
}

// NormalizeNumeric strips leading zeros typed in front of a digit, so
// "0025" becomes "25" while "0" and "0.5" are kept as typed.
func NormalizeNumeric(s string) string {
	s = strings.TrimSpace(s)
	for len(s) > 1 && s[0] == '0' && s[1] >= '0' && s[1] <= '9' {
		s = s[1:]
	}
	return s
}

// ParseNumeric normalizes s and parses it; unparsable input reads as 0
func ParseNumeric(s string) float64 {
	v, err := strconv.ParseFloat(NormalizeNumeric(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
