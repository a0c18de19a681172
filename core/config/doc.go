// Package config provides configuration management for the Enchantment Tracker.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file (via godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, CORS origin, game version)
//   - Document: catalog/state document store settings (driver, data path)
//   - Storage: S3/MinIO credentials and bucket settings (s3 driver only)
//   - Log: logging level and format
//
// Defaults come from `default` struct tags and are bound reflectively, so every
// key is also overridable through the environment (SERVER_PORT, DOCUMENT_PATH,
// STORAGE_ENDPOINT, ...).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
