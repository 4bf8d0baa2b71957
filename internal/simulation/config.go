// Package simulation provides configuration for running a world: window,
// storage, starting region and presentation settings. It is loaded from a
// data file so each install can override the defaults.
package simulation

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds all settings for a run
type Config struct {
	// Window settings
	Window WindowConfig `json:"window"`

	// Where regions and the world save live
	Storage StorageConfig `json:"storage"`

	// World bootstrap and view
	World WorldConfig `json:"world"`

	// Sprite sheets
	Assets AssetsConfig `json:"assets"`

	// Logging
	Log LogConfig `json:"log"`
}

// WindowConfig defines the game window
type WindowConfig struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Title     string `json:"title"`
	Resizable bool   `json:"resizable"`
}

// StorageConfig selects the persistence backend
type StorageConfig struct {
	Driver string `json:"driver"`  // "file" or "bolt"
	Dir    string `json:"dir"`     // Directory for the file driver
	DBPath string `json:"db_path"` // Database file for the bolt driver
}

// WorldConfig defines how a new world starts and how much of it is drawn
type WorldConfig struct {
	StartRegion  string  `json:"start_region"`  // Region the player starts in
	WarpRegion   string  `json:"warp_region"`   // Target of the starter region's warp tile
	TilePx       float32 `json:"tile_px"`       // On-screen size of one cell
	ViewDistance int     `json:"view_distance"` // Cells drawn around the camera, 0 draws all
	Editor       bool    `json:"editor"`        // Enable editor commands
}

// AssetsConfig locates sprite sheets
type AssetsConfig struct {
	Dir      string `json:"dir"`      // Base directory for sheet images
	Manifest string `json:"manifest"` // Optional sheet manifest; built-in sheets when empty
}

// LogConfig mirrors the LOG_LEVEL and LOG_FORMAT environment variables
type LogConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

// DefaultConfig returns settings for a local single-player run
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "Tilewalk",
			Resizable: true,
		},
		Storage: StorageConfig{
			Driver: "file",
			Dir:    "data",
			DBPath: "data/tilewalk.db",
		},
		World: WorldConfig{
			StartRegion:  "start",
			WarpRegion:   "cellar",
			TilePx:       48,
			ViewDistance: 16,
			Editor:       true,
		},
		Assets: AssetsConfig{
			Dir: "assets",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig loads config from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read simulation config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse simulation config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}

	return config, nil
}

// Validate checks values the rest of the program relies on
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size: %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.World.TilePx <= 0 {
		return fmt.Errorf("tile_px must be positive, got %v", c.World.TilePx)
	}
	if c.World.ViewDistance < 0 {
		return fmt.Errorf("view_distance must not be negative, got %d", c.World.ViewDistance)
	}
	if c.World.StartRegion == "" {
		return fmt.Errorf("start_region is required")
	}
	switch c.Storage.Driver {
	case "file":
		if c.Storage.Dir == "" {
			return fmt.Errorf("storage dir is required for the file driver")
		}
	case "bolt":
		if c.Storage.DBPath == "" {
			return fmt.Errorf("storage db_path is required for the bolt driver")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	return nil
}

// StorageLocation returns the directory or database path for the driver
func (c *Config) StorageLocation() string {
	if c.Storage.Driver == "bolt" {
		return c.Storage.DBPath
	}
	return c.Storage.Dir
}
