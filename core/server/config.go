package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// CorsOrigin is the origin allowed to call the API from a browser.
	CorsOrigin string `mapstructure:"cors_origin" default:"http://localhost:3000"`
	// GameVersion is the Minecraft version the catalog data targets.
	GameVersion string `mapstructure:"game_version" default:"1.20.2"`
}

const (
	GameVersion1202 = "1.20.2"
	GameVersion1204 = "1.20.4"
	GameVersion1211 = "1.21.1"
)

// IsValidGameVersion checks if the configured game version is supported.
func (c Config) IsValidGameVersion() bool {
	switch c.GameVersion {
	case GameVersion1202, GameVersion1204, GameVersion1211:
		return true
	default:
		return false
	}
}
