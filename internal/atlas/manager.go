package atlas

import (
	"fmt"
	"image"

	"chosenoffset.com/tilewalk/internal/render"
)

// Manager holds loaded sheet images by name.
type Manager struct {
	sheets map[string]render.Image
	frames map[frameKey]render.Image
}

type frameKey struct {
	sheet string
	rect  image.Rectangle
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{
		sheets: make(map[string]render.Image),
		frames: make(map[frameKey]render.Image),
	}
}

// LoadManifest loads every sheet in m through loader. Relative image paths
// resolve against base.
func (mgr *Manager) LoadManifest(m *Manifest, loader render.ResourceLoader, base string) error {
	if err := m.Validate(); err != nil {
		return err
	}
	for _, s := range m.Sheets {
		img, err := loader.LoadImage(m.Resolve(s, base))
		if err != nil {
			return fmt.Errorf("failed to load sheet %s: %w", s.Name, err)
		}
		if err := mgr.RegisterSheet(s.Name, img); err != nil {
			return err
		}
	}
	return nil
}

// RegisterSheet adds a loaded sheet.
func (mgr *Manager) RegisterSheet(name string, img render.Image) error {
	if name == "" {
		return fmt.Errorf("sheet name cannot be empty")
	}
	if _, exists := mgr.sheets[name]; exists {
		return fmt.Errorf("sheet %s already registered", name)
	}
	mgr.sheets[name] = img
	return nil
}

// Sheet returns the image registered under name.
func (mgr *Manager) Sheet(name string) (render.Image, bool) {
	img, ok := mgr.sheets[name]
	return img, ok
}

// Frame returns the sub-image of a sheet, caching it.
func (mgr *Manager) Frame(name string, src image.Rectangle) (render.Image, error) {
	key := frameKey{sheet: name, rect: src}
	if img, ok := mgr.frames[key]; ok {
		return img, nil
	}
	sheet, ok := mgr.sheets[name]
	if !ok {
		return nil, fmt.Errorf("sheet not found: %s", name)
	}
	if !src.In(sheet.Bounds()) {
		return nil, fmt.Errorf("frame %v outside sheet %s %v", src, name, sheet.Bounds())
	}
	img := sheet.SubImage(src)
	mgr.frames[key] = img
	return img, nil
}

// Names returns all registered sheet names.
func (mgr *Manager) Names() []string {
	names := make([]string, 0, len(mgr.sheets))
	for name := range mgr.sheets {
		names = append(names, name)
	}
	return names
}
