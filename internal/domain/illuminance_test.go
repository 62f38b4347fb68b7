package domain

import (
	"testing"
)

func TestUtilizationFactor_Boundaries(t *testing.T) {
	tests := []struct {
		heightMM float64
		want     float64
	}{
		{heightMM: 0, want: 0.75},
		{heightMM: 2200, want: 0.75},
		{heightMM: 2201, want: 0.70},
		{heightMM: 2500, want: 0.70},
		{heightMM: 2600, want: 0.70},
		{heightMM: 2601, want: 0.65},
		{heightMM: 3000, want: 0.65},
		{heightMM: 3500, want: 0.60},
		{heightMM: 4000, want: 0.55},
		{heightMM: 4001, want: 0.50},
		{heightMM: 12000, want: 0.50},
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			if got := UtilizationFactor(tt.heightMM); got != tt.want {
				t.Errorf("UtilizationFactor(%v) = %v, want %v", tt.heightMM, got, tt.want)
			}
		})
	}
}

func TestUtilizationFactor_NonIncreasing(t *testing.T) {
	prev := UtilizationFactor(-100)
	for h := 0.0; h <= 6000; h += 7 {
		uf := UtilizationFactor(h)
		if uf > prev {
			t.Fatalf("UF increased at %vmm: %v > %v", h, uf, prev)
		}
		prev = uf
	}
}

func TestHeightBand(t *testing.T) {
	if got := HeightBand(2500); got != "2.3-2.6m" {
		t.Errorf("HeightBand(2500) = %q", got)
	}
	if got := HeightBand(5000); got != "4.1m or higher" {
		t.Errorf("HeightBand(5000) = %q", got)
	}
}

func TestCalculate(t *testing.T) {
	f := DefaultFactors()

	tests := []struct {
		name      string
		fixtures  []SelectedFixture
		area      float64
		uf        float64
		wantLumen float64
		wantWatt  float64
		wantLux   int
	}{
		{
			name: "downlight scenario",
			fixtures: []SelectedFixture{
				{Lumen: 510, Watt: 6, Quantity: 4, Category: CategoryDownlight},
			},
			area:      20,
			uf:        0.70,
			wantLumen: 2040,
			wantWatt:  24,
			wantLux:   57,
		},
		{
			name: "indirect scenario is derated",
			fixtures: []SelectedFixture{
				{Lumen: 510, Watt: 6, Quantity: 4, Category: CategoryIndirect},
			},
			area:      20,
			uf:        0.70,
			wantLumen: 1428,
			wantWatt:  24,
			wantLux:   40,
		},
		{
			name: "indirect derating per unit",
			fixtures: []SelectedFixture{
				{Lumen: 1000, Watt: 10, Quantity: 2, Category: CategoryIndirect},
			},
			area:      1,
			uf:        1,
			wantLumen: 1400,
			wantWatt:  20,
			wantLux:   1120,
		},
		{
			name: "zero area treated as one",
			fixtures: []SelectedFixture{
				{Lumen: 100, Watt: 1, Quantity: 1, Category: CategoryBulb},
			},
			area:      0,
			uf:        0.75,
			wantLumen: 100,
			wantWatt:  1,
			wantLux:   60,
		},
		{
			name:      "no fixtures",
			area:      20,
			uf:        0.70,
			wantLumen: 0,
			wantWatt:  0,
			wantLux:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.fixtures, tt.area, tt.uf, f)
			if got.TotalLumen != tt.wantLumen {
				t.Errorf("TotalLumen = %v, want %v", got.TotalLumen, tt.wantLumen)
			}
			if got.TotalWatt != tt.wantWatt {
				t.Errorf("TotalWatt = %v, want %v", got.TotalWatt, tt.wantWatt)
			}
			if got.ExpectedLux != tt.wantLux {
				t.Errorf("ExpectedLux = %v, want %v", got.ExpectedLux, tt.wantLux)
			}
			if got.MF != 0.8 {
				t.Errorf("MF = %v, want 0.8", got.MF)
			}
		})
	}
}

func TestCalculate_DeratingIsConfigurable(t *testing.T) {
	f := DefaultFactors()
	f.IndirectDerating = 0.5

	got := Calculate([]SelectedFixture{{Lumen: 1000, Quantity: 1, Category: CategoryIndirect}}, 1, 1, f)
	if got.TotalLumen != 500 {
		t.Errorf("TotalLumen = %v, want 500", got.TotalLumen)
	}
}

func TestCalculate_DoesNotMutateInput(t *testing.T) {
	in := []SelectedFixture{{ID: "a", Lumen: 1000, Quantity: 3, Category: CategoryIndirect}}
	Calculate(in, 10, 0.7, DefaultFactors())
	if in[0].Lumen != 1000 || in[0].Quantity != 3 {
		t.Errorf("input changed: %+v", in[0])
	}
}

func TestEstimate_UsesRoomHeight(t *testing.T) {
	fx := []SelectedFixture{{Lumen: 510, Watt: 6, Quantity: 4, Category: CategoryDownlight}}
	got := Estimate(fx, RoomGeometry{Area: 20, HeightMM: 2500}, DefaultFactors())
	if got.UF != 0.70 || got.ExpectedLux != 57 {
		t.Errorf("Estimate = %+v, want UF 0.70 and 57 lx", got)
	}
}

func TestAchieve(t *testing.T) {
	tests := []struct {
		expected, target int
		want             Achievement
	}{
		{expected: 57, target: 250, want: Achievement{Percent: 23, Met: false}},
		{expected: 300, target: 300, want: Achievement{Percent: 100, Met: true}},
		{expected: 450, target: 300, want: Achievement{Percent: 150, Met: true}},
		{expected: 10, target: 0, want: Achievement{Percent: 0, Met: true}},
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			if got := Achieve(tt.expected, tt.target); got != tt.want {
				t.Errorf("Achieve(%d, %d) = %+v, want %+v", tt.expected, tt.target, got, tt.want)
			}
		})
	}
}
