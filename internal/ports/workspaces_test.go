package ports

import (
	"context"
	"testing"
	"time"

	"github.com/quentinrf/plant-monitor/services/lux-service/internal/adapters/memory"
	"github.com/quentinrf/plant-monitor/services/lux-service/internal/catalog"
	"github.com/quentinrf/plant-monitor/services/lux-service/internal/domain"
	"github.com/quentinrf/plant-monitor/services/lux-service/internal/longpress/longpresstest"
)

func newTestRegistry(t *testing.T, ttl time.Duration) *Workspaces {
	t.Helper()
	data, err := catalog.Default()
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	return NewWorkspaces(data, NewLibrary(memory.NewStore()), ttl)
}

func TestWorkspaces_CreateGetDelete(t *testing.T) {
	reg := newTestRegistry(t, time.Hour)

	ws := reg.Create()
	got, err := reg.Get(ws.ID())
	if err != nil || got != ws {
		t.Fatalf("Get() = %v, %v", got, err)
	}
	if reg.Len() != 1 {
		t.Errorf("expected 1 workspace, got %d", reg.Len())
	}

	if err := reg.Delete(ws.ID()); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := reg.Get(ws.ID()); err != domain.ErrWorkspaceNotFound {
		t.Errorf("expected ErrWorkspaceNotFound, got %v", err)
	}
	if err := reg.Delete(ws.ID()); err != domain.ErrWorkspaceNotFound {
		t.Errorf("expected ErrWorkspaceNotFound, got %v", err)
	}
}

func TestWorkspaces_SweepEvictsIdle(t *testing.T) {
	reg := newTestRegistry(t, 10*time.Minute)
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	reg.now = func() time.Time { return now }

	idle := reg.Create()
	active := reg.Create()

	now = now.Add(8 * time.Minute)
	if _, err := reg.Get(active.ID()); err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	now = now.Add(5 * time.Minute)
	if n := reg.Sweep(); n != 1 {
		t.Errorf("expected 1 eviction, got %d", n)
	}
	if _, err := reg.Get(idle.ID()); err != domain.ErrWorkspaceNotFound {
		t.Errorf("idle workspace still present: %v", err)
	}
	if _, err := reg.Get(active.ID()); err != nil {
		t.Errorf("active workspace evicted: %v", err)
	}
}

func TestWorkspaces_SharedLibrary(t *testing.T) {
	reg := newTestRegistry(t, time.Hour)
	ctx := context.Background()

	a := reg.Create()
	_, _ = a.AddFromCatalog("COB cylinder 3in", "3000K", 4)
	saved, err := a.SaveResult(ctx)
	if err != nil {
		t.Fatalf("SaveResult failed: %v", err)
	}

	b := reg.Create()
	st, err := b.LoadResult(ctx, saved.ID)
	if err != nil {
		t.Fatalf("LoadResult failed: %v", err)
	}
	if st.Result.ExpectedLux != 57 {
		t.Errorf("expected 57 lx, got %d", st.Result.ExpectedLux)
	}
}

func TestWorkspaces_StartStopsOnCancel(t *testing.T) {
	reg := newTestRegistry(t, time.Millisecond)
	reg.Create()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		reg.Start(ctx, 5*time.Millisecond)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for reg.Len() != 0 {
		select {
		case <-deadline:
			t.Fatal("janitor did not evict idle workspace")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("janitor did not stop")
	}
}

func TestWorkspaces_TeardownStopsHold(t *testing.T) {
	tests := []struct {
		name     string
		teardown func(t *testing.T, reg *Workspaces, id string, advance func(time.Duration))
	}{
		{"delete", func(t *testing.T, reg *Workspaces, id string, _ func(time.Duration)) {
			if err := reg.Delete(id); err != nil {
				t.Fatalf("Delete failed: %v", err)
			}
		}},
		{"sweep", func(t *testing.T, reg *Workspaces, _ string, advance func(time.Duration)) {
			advance(time.Hour)
			if n := reg.Sweep(); n != 1 {
				t.Fatalf("expected 1 eviction, got %d", n)
			}
		}},
		{"shutdown", func(_ *testing.T, reg *Workspaces, _ string, _ func(time.Duration)) {
			reg.closeAll()
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := newTestRegistry(t, 10*time.Minute)
			now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
			reg.now = func() time.Time { return now }

			ws := reg.Create()
			clk := &longpresstest.Clock{}
			ws.clock = clk

			if err := ws.Hold(Control{Field: ControlArea, Delta: 1}); err != nil {
				t.Fatalf("Hold failed: %v", err)
			}
			clk.Advance(time.Second)
			held := ws.State().Room.Area
			if held <= 21 {
				t.Fatalf("expected the hold to be stepping, area %v", held)
			}

			tt.teardown(t, reg, ws.ID(), func(d time.Duration) { now = now.Add(d) })

			clk.Advance(5 * time.Second)
			if got := ws.State().Room.Area; got != held {
				t.Errorf("area changed after teardown: %v, was %v", got, held)
			}
			if n := clk.Pending(); n != 0 {
				t.Errorf("expected no pending timers, got %d", n)
			}
			if err := ws.Hold(Control{Field: ControlArea, Delta: 1}); err != domain.ErrWorkspaceNotFound {
				t.Errorf("expected hold on a closed workspace to fail, got %v", err)
			}
			if n := clk.Pending(); n != 0 {
				t.Errorf("expected no timers from a refused hold, got %d", n)
			}
		})
	}
}

func TestWorkspaces_StartZeroInterval(t *testing.T) {
	reg := newTestRegistry(t, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		reg.Start(ctx, 0)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("janitor did not stop")
	}
}
