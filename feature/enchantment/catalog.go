package enchantment

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"enchantment-tracker/core/document"
	"enchantment-tracker/feature/enchantment/models"

	"go.uber.org/zap"
)

// CatalogKey is the document key of the curated enchantment catalog.
const CatalogKey = "default-enchantments.json"

// Catalog is a read-only source of enchantment definitions.
//
// All returns the definitions in catalog order. FindByName matches the
// display name case-insensitively and falls back to the internal key form
// ("Fire Protection" matches "fire_protection"); it returns
// models.ErrNotFound when neither matches.
type Catalog interface {
	All(ctx context.Context) ([]models.Definition, error)
	FindByName(ctx context.Context, name string) (*models.Definition, error)
}

// FileCatalog loads the curated catalog document once and caches it for the
// process lifetime.
type FileCatalog struct {
	docs   document.Store
	key    string
	logger *zap.Logger

	once sync.Once
	defs []models.Definition
	err  error
}

// NewFileCatalog creates a catalog backed by the default-enchantments document.
func NewFileCatalog(docs document.Store, logger *zap.Logger) *FileCatalog {
	return &FileCatalog{docs: docs, key: CatalogKey, logger: logger}
}

func (c *FileCatalog) load(ctx context.Context) ([]models.Definition, error) {
	c.once.Do(func() {
		data, err := c.docs.Read(ctx, c.key)
		if err != nil {
			c.err = fmt.Errorf("%w: %v", models.ErrCatalogUnavailable, err)
			return
		}

		var defs []models.Definition
		if err := json.Unmarshal(data, &defs); err != nil {
			c.err = fmt.Errorf("%w: malformed document %q: %v", models.ErrCatalogUnavailable, c.key, err)
			return
		}

		c.defs = defs
		c.logger.Info("Loaded enchantment catalog",
			zap.String("key", c.key),
			zap.Int("definitions", len(defs)),
		)
	})
	return c.defs, c.err
}

// All returns every definition in catalog order.
func (c *FileCatalog) All(ctx context.Context) ([]models.Definition, error) {
	return c.load(ctx)
}

// FindByName resolves a definition by display name, falling back to the
// internal key form.
func (c *FileCatalog) FindByName(ctx context.Context, name string) (*models.Definition, error) {
	defs, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range defs {
		if strings.EqualFold(defs[i].Name, name) {
			return &defs[i], nil
		}
	}
	key := InternalKey(name)
	for i := range defs {
		if InternalKey(defs[i].Name) == key {
			return &defs[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", models.ErrNotFound, name)
}

// InternalKey derives the machine form of a display name, matching the
// snake_case identifiers Minecraft uses internally ("Fire Protection" ->
// "fire_protection").
func InternalKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}
