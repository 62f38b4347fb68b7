package report

import (
	"testing"

	"github.com/quentinrf/plant-monitor/services/lux-service/internal/domain"
)

func TestSummarize(t *testing.T) {
	f := NewFormatter("en")
	res := domain.Result{TotalLumen: 2040, TotalWatt: 24, ExpectedLux: 57, UF: 0.7, MF: 0.8}

	got := f.Summarize(res, 250, 2500)
	want := Summary{
		ExpectedLux: "57 lx",
		TargetLux:   "250 lx",
		TotalLumen:  "2,040 lm",
		TotalWatt:   "24 W",
		UF:          "0.70",
		HeightBand:  "2.3-2.6m",
		Achievement: "23%",
		Met:         false,
	}
	if got != want {
		t.Errorf("Summarize() = %+v, want %+v", got, want)
	}
}

func TestWatt(t *testing.T) {
	f := NewFormatter("not a locale tag!")

	tests := []struct {
		w    float64
		want string
	}{
		{w: 24, want: "24 W"},
		{w: 3.6, want: "3.6 W"},
		{w: 0, want: "0 W"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := f.Watt(tt.w); got != tt.want {
				t.Errorf("Watt(%v) = %q, want %q", tt.w, got, tt.want)
			}
		})
	}
}
