package mcdata

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

// Enchantment mirrors one record of the minecraft-data enchantments document.
type Enchantment struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"` // internal key, e.g. "fire_protection"
	DisplayName  string   `json:"displayName"`
	MaxLevel     int      `json:"maxLevel"`
	Weight       int      `json:"weight"`
	TreasureOnly bool     `json:"treasureOnly"`
	Curse        bool     `json:"curse"`
	Exclude      []string `json:"exclude"`
	Category     string   `json:"category"`
	Tradeable    bool     `json:"tradeable"`
	Discoverable bool     `json:"discoverable"`
}

// Catalog serves the versioned game-data enchantment set. It loads the
// document for the configured game version once and caches it for the process
// lifetime.
type Catalog struct {
	docs    document.Store
	version string
	logger  *zap.Logger

	once    sync.Once
	records []Enchantment
	err     error
}

// NewCatalog creates a game-data catalog for the given game version.
func NewCatalog(docs document.Store, version string, logger *zap.Logger) *Catalog {
	return &Catalog{docs: docs, version: version, logger: logger}
}

// Key returns the document key of the versioned enchantment set.
func (c *Catalog) Key() string {
	return "mcdata/" + c.version + "/enchantments.json"
}

func (c *Catalog) load(ctx context.Context) ([]Enchantment, error) {
	c.once.Do(func() {
		data, err := c.docs.Read(ctx, c.Key())
		if err != nil {
			c.err = fmt.Errorf("%w: %v", models.ErrCatalogUnavailable, err)
			return
		}

		var records []Enchantment
		if err := json.Unmarshal(data, &records); err != nil {
			c.err = fmt.Errorf("%w: malformed document %q: %v", models.ErrCatalogUnavailable, c.Key(), err)
			return
		}

		c.records = records
		c.logger.Info("Loaded game-data enchantments",
			zap.String("version", c.version),
			zap.Int("records", len(records)),
		)
	})
	return c.records, c.err
}

// Records returns every game-data record in document order.
func (c *Catalog) Records(ctx context.Context) ([]Enchantment, error) {
	return c.load(ctx)
}

// Tradeable returns only the records a librarian can offer.
func (c *Catalog) Tradeable(ctx context.Context) ([]Enchantment, error) {
	records, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	tradeable := make([]Enchantment, 0, len(records))
	for _, r := range records {
		if r.Tradeable {
			tradeable = append(tradeable, r)
		}
	}
	return tradeable, nil
}

// ByID returns the record with the given numeric id.
func (c *Catalog) ByID(ctx context.Context, id int) (*Enchantment, error) {
	records, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, fmt.Errorf("%w: id %d", models.ErrNotFound, id)
}

// ByName returns the record matching the display name, falling back to the
// internal name.
func (c *Catalog) ByName(ctx context.Context, name string) (*Enchantment, error) {
	records, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		if strings.EqualFold(records[i].DisplayName, name) {
			return &records[i], nil
		}
	}
	for i := range records {
		if strings.EqualFold(records[i].Name, name) {
			return &records[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", models.ErrNotFound, name)
}

// All converts every game-data record to a catalog definition, implementing
// the enchantment.Catalog interface.
func (c *Catalog) All(ctx context.Context) ([]models.Definition, error) {
	records, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	defs := make([]models.Definition, 0, len(records))
	for _, r := range records {
		defs = append(defs, convert(r))
	}
	return defs, nil
}

// FindByName resolves a definition by display name or internal name.
func (c *Catalog) FindByName(ctx context.Context, name string) (*models.Definition, error) {
	record, err := c.ByName(ctx, name)
	if err != nil {
		return nil, err
	}
	def := convert(*record)
	return &def, nil
}

func convert(e Enchantment) models.Definition {
	return models.Definition{
		Name:            e.DisplayName,
		MaxLevel:        e.MaxLevel,
		Description:     fmt.Sprintf("%s (Max Level: %d)", e.DisplayName, e.MaxLevel),
		ApplicableItems: ItemsForCategory(e.Category),
		Tradeable:       e.Tradeable,
	}
}
