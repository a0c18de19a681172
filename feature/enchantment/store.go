package enchantment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"enchantment-tracker/core/document"
	"enchantment-tracker/feature/enchantment/models"

	"go.uber.org/zap"
)

// StateKey is the document key of the persisted user state.
const StateKey = "minecraft-enchantments.json"

// StateStore owns the sparse name->state mapping and its persistence.
//
// Every mutation reads the full current mapping, applies the change in memory
// and rewrites the entire document through the atomic document store, so the
// persisted snapshot is always complete. Writes are mutually exclusive with
// each other and with reads of the document; reads run concurrently.
type StateStore struct {
	docs   document.Store
	key    string
	logger *zap.Logger

	mu sync.RWMutex
}

// NewStateStore creates a state store over the given document store.
func NewStateStore(docs document.Store, logger *zap.Logger) *StateStore {
	return &StateStore{docs: docs, key: StateKey, logger: logger}
}

// Bootstrap creates the state document as an empty mapping if it does not
// exist yet, so a fresh install starts from a well-formed document.
func (s *StateStore) Bootstrap(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.docs.Read(ctx, s.key)
	if err == nil {
		return nil
	}
	if !errors.Is(err, document.ErrNotExist) {
		return fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}

	s.logger.Info("Creating empty enchantment state document", zap.String("key", s.key))
	return s.write(ctx, map[string]models.State{})
}

// LoadAll returns the full persisted mapping. A missing document is an empty
// mapping, not an error.
func (s *StateStore) LoadAll(ctx context.Context) (map[string]models.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.read(ctx)
}

// Upsert stores the full replacement state for the given name. The caller is
// responsible for having validated the name against the catalog.
func (s *StateStore) Upsert(ctx context.Context, name string, state models.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.read(ctx)
	if err != nil {
		return err
	}
	all[name] = state

	if err := s.write(ctx, all); err != nil {
		s.logger.Error("Failed to persist enchantment state",
			zap.String("operation", "upsert"),
			zap.String("name", name),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// Remove deletes the entry for the given name. Removing an absent entry is a
// no-op, not an error.
func (s *StateStore) Remove(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.read(ctx)
	if err != nil {
		return err
	}
	if _, ok := all[name]; !ok {
		return nil
	}
	delete(all, name)

	if err := s.write(ctx, all); err != nil {
		s.logger.Error("Failed to persist enchantment state",
			zap.String("operation", "remove"),
			zap.String("name", name),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *StateStore) read(ctx context.Context) (map[string]models.State, error) {
	data, err := s.docs.Read(ctx, s.key)
	if errors.Is(err, document.ErrNotExist) {
		return map[string]models.State{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}

	var all map[string]models.State
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("%w: malformed document %q: %v", models.ErrPersistence, s.key, err)
	}
	if all == nil {
		all = map[string]models.State{}
	}
	return all, nil
}

func (s *StateStore) write(ctx context.Context, all map[string]models.State) error {
	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}
	if err := s.docs.Write(ctx, s.key, data); err != nil {
		return fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}
	return nil
}
