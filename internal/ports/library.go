package ports

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/quentinrf/plant-monitor/services/lux-service/internal/domain"
)

// Store keys of the persisted lists
const (
	CustomFixturesKey = "custom_fixtures"
	SavedResultsKey   = "saved_results"
)

// Library keeps the saved custom fixtures and saved results.
// Each list is stored whole as one JSON value.
type Library struct {
	mu    sync.Mutex
	store domain.Store
}

// NewLibrary creates a library on top of store
func NewLibrary(store domain.Store) *Library {
	return &Library{store: store}
}

// CustomFixtures returns the saved custom fixtures, oldest first
func (l *Library) CustomFixtures(ctx context.Context) []domain.SavedCustomFixture {
	l.mu.Lock()
	defer l.mu.Unlock()
	return loadList[domain.SavedCustomFixture](ctx, l.store, CustomFixturesKey)
}

// FindCustomFixture returns the saved custom fixture with id
func (l *Library) FindCustomFixture(ctx context.Context, id string) (domain.SavedCustomFixture, error) {
	for _, s := range l.CustomFixtures(ctx) {
		if s.ID == id {
			return s, nil
		}
	}
	return domain.SavedCustomFixture{}, domain.ErrSavedNotFound
}

// SaveCustomFixture appends s to the saved custom fixtures
func (l *Library) SaveCustomFixture(ctx context.Context, s domain.SavedCustomFixture) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	list := loadList[domain.SavedCustomFixture](ctx, l.store, CustomFixturesKey)
	list = append(list, s)
	return saveList(ctx, l.store, CustomFixturesKey, list)
}

// DeleteCustomFixture removes the saved custom fixture with id
func (l *Library) DeleteCustomFixture(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	list := loadList[domain.SavedCustomFixture](ctx, l.store, CustomFixturesKey)
	for i := range list {
		if list[i].ID == id {
			list = append(list[:i], list[i+1:]...)
			return saveList(ctx, l.store, CustomFixturesKey, list)
		}
	}
	return domain.ErrSavedNotFound
}

// Results returns the saved results, most recent first
func (l *Library) Results(ctx context.Context) []domain.SavedResult {
	l.mu.Lock()
	defer l.mu.Unlock()
	return loadList[domain.SavedResult](ctx, l.store, SavedResultsKey)
}

// FindResult returns the saved result with id
func (l *Library) FindResult(ctx context.Context, id string) (domain.SavedResult, error) {
	for _, r := range l.Results(ctx) {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.SavedResult{}, domain.ErrSavedNotFound
}

// SaveResult puts r at the front of the saved results
func (l *Library) SaveResult(ctx context.Context, r domain.SavedResult) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	list := loadList[domain.SavedResult](ctx, l.store, SavedResultsKey)
	list = append([]domain.SavedResult{r}, list...)
	return saveList(ctx, l.store, SavedResultsKey, list)
}

// DeleteResult removes the saved result with id
func (l *Library) DeleteResult(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	list := loadList[domain.SavedResult](ctx, l.store, SavedResultsKey)
	for i := range list {
		if list[i].ID == id {
			list = append(list[:i], list[i+1:]...)
			return saveList(ctx, l.store, SavedResultsKey, list)
		}
	}
	return domain.ErrSavedNotFound
}

// loadList reads a list; a missing key, a store failure or unreadable
// JSON all give an empty list
func loadList[T any](ctx context.Context, store domain.Store, key string) []T {
	raw, err := store.Load(ctx, key)
	if errors.Is(err, domain.ErrKeyNotFound) {
		return []T{}
	}
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to load saved list")
		return []T{}
	}

	var list []T
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("discarding unreadable saved list")
		return []T{}
	}
	if list == nil {
		list = []T{}
	}
	return list
}

func saveList[T any](ctx context.Context, store domain.Store, key string, list []T) error {
	b, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Save(ctx, key, string(b)); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to persist saved list")
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
