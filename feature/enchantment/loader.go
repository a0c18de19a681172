package enchantment

import (
	"context"

	"enchantment-tracker/core/document"
	"enchantment-tracker/feature/enchantment/mcdata"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	store   *StateStore
	handler *Handler
}

// NewFeature creates the enchantment feature. Both the curated catalog and the
// game-data catalog share a single state store, so edits made through either
// surface land in the same document.
func NewFeature(docs document.Store, gameVersion string, logger *zap.Logger) *Feature {
	catalog := NewFileCatalog(docs, logger)
	gameData := mcdata.NewCatalog(docs, gameVersion, logger)
	store := NewStateStore(docs, logger)

	svc := NewService(catalog, store, logger)
	enhanced := NewService(gameData, store, logger)
	h := NewHandler(svc, enhanced, gameData, logger)

	return &Feature{store: store, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "enchantment"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load bootstraps the state document and registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	if err := f.store.Bootstrap(context.Background()); err != nil {
		return err
	}
	f.handler.RegisterRoutes(app)
	return nil
}
