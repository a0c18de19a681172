// Package server holds the HTTP server configuration and constants.
//
// While the main application entry point handles the server startup, this
// package defines the configuration structure and the set of supported
// Minecraft game versions the catalog data can target.
//
// # Configuration
//
// The Config struct defines the HTTP port, the CORS origin for the browser
// table UI, and the target game version (1.20.2, 1.20.4, 1.21.1).
//
// # Usage
//
// This package is primarily used by core/config to embed server settings and
// by the enchantment feature to select the versioned game-data catalog.
package server
