package ports

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/quentinrf/plant-monitor/services/lux-service/internal/catalog"
	"github.com/quentinrf/plant-monitor/services/lux-service/internal/domain"
)

type workspaceEntry struct {
	ws       *Workspace
	lastSeen time.Time
}

// Workspaces keeps the open workspaces by id and evicts idle ones
type Workspaces struct {
	data *catalog.Data
	lib  *Library
	ttl  time.Duration
	now  func() time.Time

	mu    sync.Mutex
	items map[string]*workspaceEntry
}

// NewWorkspaces creates an empty registry; workspaces unused for ttl are evicted
func NewWorkspaces(data *catalog.Data, lib *Library, ttl time.Duration) *Workspaces {
	return &Workspaces{
		data:  data,
		lib:   lib,
		ttl:   ttl,
		now:   time.Now,
		items: make(map[string]*workspaceEntry),
	}
}

// Library returns the saved lists shared by all workspaces
func (r *Workspaces) Library() *Library { return r.lib }

// Data returns the lighting data the workspaces are built on
func (r *Workspaces) Data() *catalog.Data { return r.data }

// Create opens a new workspace
func (r *Workspaces) Create() *Workspace {
	ws := NewWorkspace(uuid.NewString(), r.data, r.lib)

	r.mu.Lock()
	r.items[ws.ID()] = &workspaceEntry{ws: ws, lastSeen: r.now()}
	n := len(r.items)
	r.mu.Unlock()

	log.Info().Str("workspace", ws.ID()).Int("open", n).Msg("workspace created")
	return ws
}

// Get returns the workspace with id and marks it as used
func (r *Workspaces) Get(id string) (*Workspace, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.items[id]
	if !ok {
		return nil, domain.ErrWorkspaceNotFound
	}
	e.lastSeen = r.now()
	return e.ws, nil
}

// Delete closes and forgets the workspace with id
func (r *Workspaces) Delete(id string) error {
	r.mu.Lock()
	e, ok := r.items[id]
	delete(r.items, id)
	r.mu.Unlock()

	if !ok {
		return domain.ErrWorkspaceNotFound
	}
	e.ws.Close()
	return nil
}

// Len returns the number of open workspaces
func (r *Workspaces) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// Sweep evicts workspaces idle for longer than the TTL and returns how many went
func (r *Workspaces) Sweep() int {
	cutoff := r.now().Add(-r.ttl)

	var idle []*Workspace
	r.mu.Lock()
	for id, e := range r.items {
		if e.lastSeen.Before(cutoff) {
			idle = append(idle, e.ws)
			delete(r.items, id)
		}
	}
	r.mu.Unlock()

	for _, ws := range idle {
		ws.Close()
	}
	return len(idle)
}

// Start runs the janitor until ctx is cancelled. A non-positive interval
// sweeps once per TTL.
func (r *Workspaces) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = r.ttl
	}
	if interval <= 0 {
		interval = time.Minute
	}

	log.Info().
		Dur("interval", interval).
		Dur("ttl", r.ttl).
		Msg("starting workspace janitor")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				log.Info().Int("evicted", n).Int("open", r.Len()).Msg("evicted idle workspaces")
			}

		case <-ctx.Done():
			log.Info().Msg("stopping workspace janitor")
			r.closeAll()
			return
		}
	}
}

func (r *Workspaces) closeAll() {
	r.mu.Lock()
	items := r.items
	r.items = make(map[string]*workspaceEntry)
	r.mu.Unlock()

	for _, e := range items {
		e.ws.Close()
	}
}
