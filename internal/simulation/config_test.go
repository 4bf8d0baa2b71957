package simulation

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Expected defaults, got error %v", err)
	}
	if cfg.World.StartRegion != "start" {
		t.Errorf("Expected start region 'start', got '%s'", cfg.World.StartRegion)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected default config valid, got %v", err)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"storage": {"driver": "bolt", "db_path": "x.db"}, "world": {"tile_px": 32}}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Storage.Driver != "bolt" || cfg.StorageLocation() != "x.db" {
		t.Errorf("Expected bolt at x.db, got %s at %s", cfg.Storage.Driver, cfg.StorageLocation())
	}
	if cfg.World.TilePx != 32 {
		t.Errorf("Expected tile_px 32, got %v", cfg.World.TilePx)
	}
	if cfg.Window.Width != 1280 {
		t.Errorf("Expected default width to survive, got %d", cfg.Window.Width)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed", `{`},
		{"unknown driver", `{"storage": {"driver": "s3"}}`},
		{"zero tile", `{"world": {"tile_px": 0}}`},
		{"negative distance", `{"world": {"view_distance": -1}}`},
		{"no start region", `{"world": {"start_region": ""}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadConfig(path); err == nil {
				t.Error("Expected error")
			}
		})
	}
}
