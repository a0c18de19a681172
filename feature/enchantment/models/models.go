package models

import "errors"

var (
	// ErrNotFound indicates the referenced enchantment is not in the catalog.
	ErrNotFound = errors.New("enchantment not found")
	// ErrCatalogUnavailable indicates the catalog source is missing or corrupt.
	ErrCatalogUnavailable = errors.New("enchantment catalog unavailable")
	// ErrPersistence indicates the state document could not be read or written.
	ErrPersistence = errors.New("enchantment state persistence failed")
)

// Definition is a single immutable catalog entry.
type Definition struct {
	// Name is the unique, case-sensitive display identifier.
	Name string `json:"name"`
	// MaxLevel is the upper bound for any recorded trade level.
	MaxLevel int `json:"maxLevel"`
	// Description is informational free text.
	Description string `json:"description"`
	// ApplicableItems lists the item categories the enchantment applies to.
	ApplicableItems []string `json:"applicableItems"`
	// Tradeable reports whether a librarian can ever offer this enchantment.
	Tradeable bool `json:"tradeable"`
}

// Validate checks if the definition has the minimum required fields.
func (d Definition) Validate() string {
	if d.Name == "" {
		return "missing name"
	}
	if d.MaxLevel <= 0 {
		return "max level must be positive"
	}
	return ""
}

// State holds the user-recorded trade info for one enchantment.
//
// Level and EmeraldCost are pointers so that "not recorded" serializes as
// null rather than zero. The zero State is the implicit default for any
// enchantment without a stored entry.
type State struct {
	HasLibrarianTrade bool `json:"hasLibrarianTrade"`
	Level             *int `json:"level"`
	EmeraldCost       *int `json:"emeraldCost"`
}

// Enchantment is the merged view of a Definition and its State returned to
// clients. It is produced fresh on every read and never persisted.
type Enchantment struct {
	Definition
	State
}
