package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/quentinrf/plant-monitor/services/lux-service/internal/domain"
)

func TestDefault(t *testing.T) {
	data, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}

	if got := len(data.Catalog.All()); got != 39 {
		t.Errorf("expected 39 fixtures, got %d", got)
	}
	if got := len(data.Catalog.Categories()); got != 7 {
		t.Errorf("expected 7 categories, got %d", got)
	}
	if got := data.Catalog.Subtypes(domain.CategoryT20Magnetic); len(got) != 5 {
		t.Errorf("expected 5 T20 subtypes, got %v", got)
	}
	if data.DefaultCategory != domain.CategoryDownlight {
		t.Errorf("unexpected default category %q", data.DefaultCategory)
	}
	if data.DefaultTarget() != 250 {
		t.Errorf("expected cafe target 250, got %d", data.DefaultTarget())
	}

	want := domain.DefaultFactors()
	if data.Factors.MaintenanceFactor != want.MaintenanceFactor ||
		data.Factors.IndirectDerating != want.IndirectDerating ||
		data.Factors.TypeEfficiency[domain.TypeTrack] != 85 {
		t.Errorf("unexpected factors %+v", data.Factors)
	}

	cob, ok := data.Catalog.Find("COB cylinder 3in")
	if !ok {
		t.Fatal("expected COB cylinder 3in in catalog")
	}
	if len(cob.ColorTemps) != 3 || cob.ColorTemps[0] != "3000K" || cob.LumenByColorTemp["5000K"] != 510 {
		t.Errorf("unexpected template %+v", cob)
	}
}

func TestParse_FactorOverrides(t *testing.T) {
	doc := []byte(`
factors:
  indirect_derating: 0.6
  type_efficiency:
    track lighting: 95
fixtures:
  - name: a
    color_temps: [3000K]
    lumen: { 3000K: 100 }
    watt: 1
    category: bulb
`)
	data, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if data.Factors.IndirectDerating != 0.6 {
		t.Errorf("expected derating override 0.6, got %v", data.Factors.IndirectDerating)
	}
	if data.Factors.MaintenanceFactor != 0.8 {
		t.Errorf("expected default MF 0.8, got %v", data.Factors.MaintenanceFactor)
	}
	if data.Factors.TypeEfficiency[domain.TypeTrack] != 95 || data.Factors.TypeEfficiency[domain.TypeBulb] != 100 {
		t.Errorf("unexpected type efficiencies %v", data.Factors.TypeEfficiency)
	}
	if len(data.Presets) != len(domain.DefaultPresets()) {
		t.Errorf("expected built-in presets, got %v", data.Presets)
	}
	if data.DefaultCategory != domain.CategoryBulb {
		t.Errorf("expected first category as default, got %q", data.DefaultCategory)
	}
}

func TestParse_RejectsInconsistentFixture(t *testing.T) {
	doc := []byte(`
fixtures:
  - name: broken
    color_temps: [3000K, 4000K]
    lumen: { 3000K: 100 }
    watt: 1
    category: bulb
`)
	if _, err := Parse(doc); err == nil {
		t.Error("expected error for missing 4000K flux")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lighting.yaml")
	if err := os.WriteFile(path, defaultData, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if len(data.Presets) != 7 {
		t.Errorf("expected 7 presets, got %d", len(data.Presets))
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
