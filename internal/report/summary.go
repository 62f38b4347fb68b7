// Package report formats estimates for display in the user's locale
package report

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/quentinrf/plant-monitor/services/lux-service/internal/domain"
)

// Summary is the display text for an estimate
type Summary struct {
	ExpectedLux string `json:"expected_lux"`
	TargetLux   string `json:"target_lux"`
	TotalLumen  string `json:"total_lumen"`
	TotalWatt   string `json:"total_watt"`
	UF          string `json:"uf"`
	HeightBand  string `json:"height_band"`
	Achievement string `json:"achievement"`
	Met         bool   `json:"met"`
}

// Formatter renders numbers with the grouping rules of one locale
type Formatter struct {
	p *message.Printer
}

// NewFormatter builds a formatter for a BCP 47 tag; unknown tags use English
func NewFormatter(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Formatter{p: message.NewPrinter(tag)}
}

// Summarize renders a result against its target
func (f *Formatter) Summarize(res domain.Result, targetLux int, heightMM float64) Summary {
	ach := domain.Achieve(res.ExpectedLux, targetLux)
	return Summary{
		ExpectedLux: f.p.Sprintf("%d lx", res.ExpectedLux),
		TargetLux:   f.p.Sprintf("%d lx", targetLux),
		TotalLumen:  f.p.Sprintf("%d lm", int64(res.TotalLumen)),
		TotalWatt:   f.Watt(res.TotalWatt),
		UF:          f.p.Sprintf("%.2f", res.UF),
		HeightBand:  domain.HeightBand(heightMM),
		Achievement: f.p.Sprintf("%d%%", ach.Percent),
		Met:         ach.Met,
	}
}

// Watt prints whole watts without decimals and anything else to 0.1 W
func (f *Formatter) Watt(w float64) string {
	if w == math.Trunc(w) {
		return f.p.Sprintf("%d W", int64(w))
	}
	return f.p.Sprintf("%.1f W", w)
}
