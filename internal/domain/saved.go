package domain

import (
	"time"
)

// SavedCustomFixture is a custom fixture kept for later sessions
type SavedCustomFixture struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Lumen       float64   `json:"lumen"`
	Watt        float64   `json:"watt"`
	Mode        InputMode `json:"mode,omitempty"`
	FixtureType string    `json:"fixture_type"`
	Efficiency  float64   `json:"efficiency,omitempty"`
	SavedAt     time.Time `json:"saved_at"`
}

// SavedResult is a snapshot of a finished estimate
type SavedResult struct {
	ID          string            `json:"id"`
	Area        float64           `json:"area"`
	HeightMM    float64           `json:"height_mm"`
	TargetLux   int               `json:"target_lux"`
	ExpectedLux int               `json:"expected_lux"`
	TotalLumen  float64           `json:"total_lumen"`
	TotalWatt   float64           `json:"total_watt"`
	Fixtures    []SelectedFixture `json:"fixtures"`
	SavedAt     time.Time         `json:"saved_at"`
}

// NewSavedResult snapshots an estimate. Area, height, target and at
// least one fixture are required.
func NewSavedResult(id string, room RoomGeometry, targetLux int, res Result, fixtures []SelectedFixture, now time.Time) (SavedResult, error) {
	if room.Area <= 0 || room.HeightMM <= 0 || targetLux <= 0 || len(fixtures) == 0 {
		return SavedResult{}, ErrNothingToSave
	}

	items := make([]SelectedFixture, len(fixtures))
	copy(items, fixtures)

	return SavedResult{
		ID:          id,
		Area:        room.Area,
		HeightMM:    room.HeightMM,
		TargetLux:   targetLux,
		ExpectedLux: res.ExpectedLux,
		TotalLumen:  res.TotalLumen,
		TotalWatt:   res.TotalWatt,
		Fixtures:    items,
		SavedAt:     now,
	}, nil
}

// Room returns the geometry the result was computed for
func (r SavedResult) Room() RoomGeometry {
	return RoomGeometry{Area: r.Area, HeightMM: r.HeightMM}
}
