package grpc

import (
	"github.com/quentinrf/plant-monitor/services/lux-service/internal/domain"
	"github.com/quentinrf/plant-monitor/services/lux-service/internal/ports"
)

// FixtureInput is one line of an estimate request. A colour temperature
// other than "custom" picks the named catalog fixture; otherwise lumen,
// watt and category describe a custom fixture.
type FixtureInput struct {
	Name      string  `json:"name"`
	ColorTemp string  `json:"color_temp,omitempty"`
	Quantity  int     `json:"quantity"`
	Lumen     float64 `json:"lumen,omitempty"`
	Watt      float64 `json:"watt,omitempty"`
	Category  string  `json:"category,omitempty"`
}

type EstimateRequest struct {
	Area      float64        `json:"area"`
	HeightMM  float64        `json:"height_mm"`
	TargetLux int            `json:"target_lux"`
	Fixtures  []FixtureInput `json:"fixtures"`
}

type EstimateResponse struct {
	Result      domain.Result            `json:"result"`
	Achievement domain.Achievement       `json:"achievement"`
	HeightBand  string                   `json:"height_band"`
	Fixtures    []domain.SelectedFixture `json:"fixtures"`
}

type ListCatalogRequest struct {
	Category string `json:"category,omitempty"`
	Subtype  string `json:"subtype,omitempty"`
}

type ListCatalogResponse struct {
	Categories []string                 `json:"categories"`
	Subtypes   []string                 `json:"subtypes,omitempty"`
	Fixtures   []domain.FixtureTemplate `json:"fixtures"`
}

type ListPresetsRequest struct{}

type ListPresetsResponse struct {
	Presets       []domain.SpacePreset `json:"presets"`
	DefaultPreset string               `json:"default_preset"`
}

type PreviewCustomRequest struct {
	Input ports.CustomInput `json:"input"`
}

type PreviewCustomResponse struct {
	Proposal        domain.CustomFixture `json:"proposal"`
	Ready           bool                 `json:"ready"`
	EfficiencyError string               `json:"efficiency_error,omitempty"`
}
