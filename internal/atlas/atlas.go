// Package atlas maps the sprite-sheet names used by animation tables to
// image files, and holds the loaded sheets for the renderer.
package atlas

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// SheetConfig names one sprite sheet and where its image lives.
type SheetConfig struct {
	Name      string `json:"name"`       // Sheet name as used by animations (e.g., "tiles")
	ImagePath string `json:"image_path"` // Path to the sheet image, relative to the manifest
}

// Manifest is the JSON list of sheets a game needs.
type Manifest struct {
	Sheets []SheetConfig `json:"sheets"`

	dir string
}

// DefaultManifest lists the sheets built-in content draws from.
func DefaultManifest() *Manifest {
	return &Manifest{
		Sheets: []SheetConfig{
			{Name: "tiles", ImagePath: "sprites/tiles.png"},
			{Name: "entities", ImagePath: "sprites/entities.png"},
			{Name: "player", ImagePath: "sprites/player.png"},
			{Name: "smile", ImagePath: "sprites/smile.png"},
		},
	}
}

// LoadManifest loads a sheet manifest from a JSON configuration file
func LoadManifest(configPath string) (*Manifest, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read atlas manifest %s: %w", configPath, err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse atlas manifest %s: %w", configPath, err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid atlas manifest %s: %w", configPath, err)
	}

	m.dir = filepath.Dir(configPath)
	return &m, nil
}

// Validate checks every sheet has a unique name and an image path.
func (m *Manifest) Validate() error {
	seen := make(map[string]bool, len(m.Sheets))
	for i, s := range m.Sheets {
		if s.Name == "" {
			return fmt.Errorf("sheet %d: name is required", i)
		}
		if s.ImagePath == "" {
			return fmt.Errorf("sheet %s: image_path is required", s.Name)
		}
		if seen[s.Name] {
			return fmt.Errorf("sheet %s: duplicate name", s.Name)
		}
		seen[s.Name] = true
	}
	return nil
}

// Resolve returns the image path of sheet s relative to base, unless the
// manifest was loaded from a file, in which case paths are relative to it.
func (m *Manifest) Resolve(s SheetConfig, base string) string {
	if filepath.IsAbs(s.ImagePath) {
		return s.ImagePath
	}
	if m.dir != "" {
		return filepath.Join(m.dir, s.ImagePath)
	}
	return filepath.Join(base, s.ImagePath)
}
