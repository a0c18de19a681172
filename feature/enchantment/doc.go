// Package enchantment implements the librarian-trade tracking feature.
//
// It reconciles two data sets keyed by enchantment name:
//  1. Catalog: immutable enchantment definitions, loaded once per process
//     from either the curated document (default-enchantments.json) or the
//     versioned game-data document (mcdata subpackage).
//  2. State: the user's sparse, durable record of found trades (flag, level,
//     emerald cost), persisted as a single JSON document that is atomically
//     replaced on every edit.
//
// Reads join the two into complete view records; writes are validated against
// the catalog first, so state can never reference an enchantment that does
// not exist.
//
// # Components
//
//   - Catalog / FileCatalog: read-only definition source with case-insensitive
//     name lookup and internal-key fallback.
//   - StateStore: serialized read-modify-rewrite persistence over
//     core/document.
//   - Service: the merge/validate pipeline (list, get, update, remove).
//   - Handler: the HTTP surface for the curated, enhanced, and raw game-data
//     routes.
//   - Feature: registers the module with the application loader.
//
// # HTTP Endpoints
//
//   - GET    /enchantments                          : merged tradeable views
//   - GET    /enchantments/state                    : raw state mapping
//   - PUT    /enchantments/state/:name              : replace state
//   - DELETE /enchantments/state/:name              : reset state
//   - GET    /enhanced/enchantments                 : merged views (game data)
//   - GET    /enhanced/enchantments/:name           : single merged view
//   - PUT    /enhanced/enchantments/state/:name     : replace state (game data)
//   - DELETE /enhanced/enchantments/state/:name     : reset state (game data)
//   - GET    /mcdata/enchantments[...]              : raw game-data records
package enchantment
