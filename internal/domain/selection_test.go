package domain

import (
	"testing"
)

var cob3 = FixtureTemplate{
	Name:             "COB cylinder 3in",
	LumenByColorTemp: map[ColorTemp]float64{"3000K": 510, "4000K": 510, "5000K": 510},
	Watt:             6,
	ColorTemps:       []ColorTemp{"3000K", "4000K", "5000K"},
	Size:             "3in",
	Category:         CategoryDownlight,
}

func TestSelection_AddFromCatalog_Merges(t *testing.T) {
	s := NewSelection()

	if !s.AddFromCatalog(cob3, "3000K", 2) {
		t.Fatal("first add rejected")
	}
	if !s.AddFromCatalog(cob3, "3000K", 3) {
		t.Fatal("second add rejected")
	}

	items := s.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(items))
	}
	if items[0].Quantity != 5 {
		t.Errorf("expected quantity 5, got %d", items[0].Quantity)
	}
	if items[0].ID != "COB cylinder 3in-3000K" {
		t.Errorf("unexpected id %q", items[0].ID)
	}
	if items[0].Lumen != 510 || items[0].Watt != 6 {
		t.Errorf("unexpected item %+v", items[0])
	}
}

func TestSelection_AddFromCatalog_DistinctColorTemps(t *testing.T) {
	s := NewSelection()
	s.AddFromCatalog(cob3, "3000K", 1)
	s.AddFromCatalog(cob3, "4000K", 1)

	if s.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", s.Len())
	}
}

func TestSelection_AddFromCatalog_Rejects(t *testing.T) {
	tests := []struct {
		name string
		ct   ColorTemp
		qty  int
	}{
		{name: "zero quantity", ct: "3000K", qty: 0},
		{name: "negative quantity", ct: "3000K", qty: -2},
		{name: "empty color temp", ct: "", qty: 1},
		{name: "unsupported color temp", ct: "6500K", qty: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelection()
			if s.AddFromCatalog(cob3, tt.ct, tt.qty) {
				t.Error("expected add to be ignored")
			}
			if s.Len() != 0 {
				t.Errorf("expected empty selection, got %d entries", s.Len())
			}
		})
	}
}

func TestSelection_SetQuantity(t *testing.T) {
	tests := []struct {
		name    string
		qty     int
		wantLen int
		wantQty int
	}{
		{name: "replace", qty: 7, wantLen: 1, wantQty: 7},
		{name: "zero removes", qty: 0, wantLen: 0},
		{name: "negative removes", qty: -5, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelection()
			s.AddFromCatalog(cob3, "3000K", 2)
			id := CatalogFixtureID(cob3.Name, "3000K")

			if !s.SetQuantity(id, tt.qty) {
				t.Fatal("SetQuantity reported no change")
			}
			if s.Len() != tt.wantLen {
				t.Fatalf("expected %d entries, got %d", tt.wantLen, s.Len())
			}
			if tt.wantLen == 1 && s.Items()[0].Quantity != tt.wantQty {
				t.Errorf("expected quantity %d, got %d", tt.wantQty, s.Items()[0].Quantity)
			}
		})
	}
}

func TestSelection_RemoveMissingIsNoop(t *testing.T) {
	s := NewSelection()
	s.AddFromCatalog(cob3, "3000K", 1)

	if s.Remove("nope") {
		t.Error("expected Remove of unknown id to report false")
	}
	if s.SetQuantity("nope", 3) {
		t.Error("expected SetQuantity of unknown id to report false")
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", s.Len())
	}
}

func TestSelection_AddCustom_AlwaysNewEntry(t *testing.T) {
	s := NewSelection()
	fx := CustomFixture{Name: "cove strip", Lumen: 800, Watt: 8, Category: CategoryLumenCustom}

	s.AddCustom(fx)
	s.AddCustom(fx)

	items := s.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(items))
	}
	if items[0].ID == items[1].ID {
		t.Error("expected distinct ids for identical custom fixtures")
	}
	for _, it := range items {
		if it.ColorTemp != CustomColorTemp || it.Quantity != 1 || !it.IsCustom() {
			t.Errorf("unexpected custom entry %+v", it)
		}
	}
}

func TestSelection_AddCustom_Rejects(t *testing.T) {
	tests := []struct {
		name string
		fx   CustomFixture
	}{
		{name: "empty name", fx: CustomFixture{Name: " ", Lumen: 100, Watt: 1}},
		{name: "zero lumen", fx: CustomFixture{Name: "a", Lumen: 0, Watt: 1}},
		{name: "zero watt", fx: CustomFixture{Name: "a", Lumen: 100, Watt: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelection()
			if s.AddCustom(tt.fx) {
				t.Error("expected add to be ignored")
			}
		})
	}
}

func TestSelection_AddSaved(t *testing.T) {
	s := NewSelection()
	saved := SavedCustomFixture{ID: "x", Name: "cove", Lumen: 1000, Watt: 10, Mode: ModeWatt, FixtureType: TypeIndirect}

	s.AddSaved(saved)
	s.AddSaved(saved)

	items := s.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(items))
	}
	if items[0].Category != CategoryIndirect {
		t.Errorf("expected indirect category, got %q", items[0].Category)
	}
	if items[0].ID == "x" {
		t.Error("expected a fresh id, got the saved id")
	}
}

func TestSelection_ReplaceDropsEmptyQuantities(t *testing.T) {
	s := NewSelection()
	s.Replace([]SelectedFixture{
		{ID: "a", Quantity: 2},
		{ID: "b", Quantity: 0},
	})

	if s.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", s.Len())
	}
	if _, ok := s.Get("a"); !ok {
		t.Error("expected entry a to survive")
	}
}
