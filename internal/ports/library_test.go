package ports

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/quentinrf/plant-monitor/services/lux-service/internal/adapters/memory"
	"github.com/quentinrf/plant-monitor/services/lux-service/internal/domain"
)

// brokenStore fails every call
type brokenStore struct{}

func (brokenStore) Load(context.Context, string) (string, error) {
	return "", errors.New("disk on fire")
}

func (brokenStore) Save(context.Context, string, string) error {
	return errors.New("disk on fire")
}

func (brokenStore) Close() error { return nil }

func savedResult(id string, at time.Time) domain.SavedResult {
	return domain.SavedResult{
		ID:          id,
		Area:        20,
		HeightMM:    2500,
		TargetLux:   250,
		ExpectedLux: 57,
		TotalLumen:  2040,
		TotalWatt:   24,
		Fixtures: []domain.SelectedFixture{{
			ID:        "COB cylinder 3in-3000K",
			Name:      "COB cylinder 3in",
			Lumen:     510,
			Watt:      6,
			ColorTemp: "3000K",
			Size:      "3in",
			Category:  domain.CategoryDownlight,
			Quantity:  4,
		}},
		SavedAt: at,
	}
}

func TestLibrary_ResultsRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	lib := NewLibrary(store)

	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	first := savedResult("r1", base)
	second := savedResult("r2", base.Add(time.Hour))

	if err := lib.SaveResult(ctx, first); err != nil {
		t.Fatalf("SaveResult failed: %v", err)
	}
	if err := lib.SaveResult(ctx, second); err != nil {
		t.Fatalf("SaveResult failed: %v", err)
	}

	// a fresh library over the same store sees the persisted list
	got := NewLibrary(store).Results(ctx)
	want := []domain.SavedResult{second, first}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Results() = %+v, want %+v", got, want)
	}
}

func TestLibrary_CustomFixturesAppend(t *testing.T) {
	ctx := context.Background()
	lib := NewLibrary(memory.NewStore())

	at := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	a := domain.SavedCustomFixture{ID: "a", Name: "cove", Lumen: 800, Watt: 10, Mode: domain.ModeWatt, FixtureType: domain.TypeOther, Efficiency: 80, SavedAt: at}
	b := domain.SavedCustomFixture{ID: "b", Name: "spot", Lumen: 900, Watt: 10, Mode: domain.ModeLumen, FixtureType: domain.TypeRecessed, SavedAt: at}

	_ = lib.SaveCustomFixture(ctx, a)
	_ = lib.SaveCustomFixture(ctx, b)

	got := lib.CustomFixtures(ctx)
	if !reflect.DeepEqual(got, []domain.SavedCustomFixture{a, b}) {
		t.Errorf("CustomFixtures() = %+v", got)
	}

	found, err := lib.FindCustomFixture(ctx, "b")
	if err != nil || found.Name != "spot" {
		t.Errorf("FindCustomFixture() = %+v, %v", found, err)
	}
}

func TestLibrary_Delete(t *testing.T) {
	ctx := context.Background()
	lib := NewLibrary(memory.NewStore())
	at := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	_ = lib.SaveResult(ctx, savedResult("r1", at))
	_ = lib.SaveResult(ctx, savedResult("r2", at))
	_ = lib.SaveCustomFixture(ctx, domain.SavedCustomFixture{ID: "c1", Name: "x", Lumen: 1, Watt: 1})

	if err := lib.DeleteResult(ctx, "r1"); err != nil {
		t.Fatalf("DeleteResult failed: %v", err)
	}
	if err := lib.DeleteResult(ctx, "r1"); err != domain.ErrSavedNotFound {
		t.Errorf("expected ErrSavedNotFound on second delete, got %v", err)
	}
	if got := lib.Results(ctx); len(got) != 1 || got[0].ID != "r2" {
		t.Errorf("unexpected results after delete: %+v", got)
	}

	if err := lib.DeleteCustomFixture(ctx, "c1"); err != nil {
		t.Fatalf("DeleteCustomFixture failed: %v", err)
	}
	if _, err := lib.FindCustomFixture(ctx, "c1"); err != domain.ErrSavedNotFound {
		t.Errorf("expected ErrSavedNotFound, got %v", err)
	}
}

func TestLibrary_UnreadableListIsEmpty(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	_ = store.Save(ctx, SavedResultsKey, "{not json")
	_ = store.Save(ctx, CustomFixturesKey, "null")

	lib := NewLibrary(store)
	if got := lib.Results(ctx); got == nil || len(got) != 0 {
		t.Errorf("expected empty results, got %#v", got)
	}
	if got := lib.CustomFixtures(ctx); got == nil || len(got) != 0 {
		t.Errorf("expected empty fixtures, got %#v", got)
	}

	// saving over a corrupt list starts a fresh one
	if err := lib.SaveResult(ctx, savedResult("r1", time.Time{})); err != nil {
		t.Fatalf("SaveResult failed: %v", err)
	}
	if got := lib.Results(ctx); len(got) != 1 {
		t.Errorf("expected 1 result, got %d", len(got))
	}
}

func TestLibrary_StoreFailure(t *testing.T) {
	ctx := context.Background()
	lib := NewLibrary(brokenStore{})

	if got := lib.Results(ctx); len(got) != 0 {
		t.Errorf("expected empty results, got %d", len(got))
	}
	if err := lib.SaveResult(ctx, savedResult("r1", time.Time{})); err == nil {
		t.Error("expected save error to be returned")
	}
}
