package enchantment

import (
	"context"

	"enchantment-tracker/feature/enchantment/models"

	"go.uber.org/zap"
)

// Service reconciles the immutable catalog with the mutable user state.
//
// It is a pure join-and-validate pipeline: reads merge the two data sets into
// view records, writes are validated against the catalog before they reach
// the state store. The service holds no state of its own.
type Service struct {
	catalog Catalog
	store   *StateStore
	logger  *zap.Logger
}

// NewService creates a reconciliation service over the given catalog and store.
func NewService(catalog Catalog, store *StateStore, logger *zap.Logger) *Service {
	return &Service{catalog: catalog, store: store, logger: logger}
}

// ListMerged returns one view per tradeable definition, in catalog order,
// joined with the stored state (default when absent).
func (s *Service) ListMerged(ctx context.Context) ([]models.Enchantment, error) {
	defs, err := s.catalog.All(ctx)
	if err != nil {
		return nil, err
	}
	states, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]models.Enchantment, 0, len(defs))
	for _, def := range defs {
		if !def.Tradeable {
			continue
		}
		views = append(views, merge(def, states))
	}
	return views, nil
}

// GetMerged returns the view for a single enchantment. Unlike ListMerged the
// lookup is not restricted to tradeable definitions.
func (s *Service) GetMerged(ctx context.Context, name string) (*models.Enchantment, error) {
	def, err := s.catalog.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	states, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	view := merge(*def, states)
	return &view, nil
}

// States returns the raw persisted mapping.
func (s *Service) States(ctx context.Context) (map[string]models.State, error) {
	return s.store.LoadAll(ctx)
}

// UpdateState validates the name against the catalog and stores the full
// replacement state under the definition's display name. A level above the
// definition's maximum is clamped down, never rejected.
func (s *Service) UpdateState(ctx context.Context, name string, state models.State) error {
	def, err := s.catalog.FindByName(ctx, name)
	if err != nil {
		return err
	}

	if state.Level != nil && *state.Level > def.MaxLevel {
		clamped := def.MaxLevel
		s.logger.Debug("Clamping enchantment level",
			zap.String("name", def.Name),
			zap.Int("requested", *state.Level),
			zap.Int("max", clamped),
		)
		state.Level = &clamped
	}

	return s.store.Upsert(ctx, def.Name, state)
}

// RemoveState validates the name against the catalog and deletes its stored
// state, returning the enchantment to the implicit default. Removing state
// that was never stored succeeds.
func (s *Service) RemoveState(ctx context.Context, name string) error {
	def, err := s.catalog.FindByName(ctx, name)
	if err != nil {
		return err
	}
	return s.store.Remove(ctx, def.Name)
}

// merge joins a definition with its stored state. The zero State stands in
// for enchantments without a stored entry, keeping the default in one place.
func merge(def models.Definition, states map[string]models.State) models.Enchantment {
	return models.Enchantment{Definition: def, State: states[def.Name]}
}
