package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/tilewalk/internal/logger"
	"chosenoffset.com/tilewalk/internal/world"
	"chosenoffset.com/tilewalk/internal/world/region"
)

const worldFile = "world.json"

// FileStore keeps each region in <dir>/regions/<name>.json and the world
// save in <dir>/world.json.
type FileStore struct {
	Dir string
	log *logrus.Entry
}

// NewFileStore creates dir if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, errors.New("storage directory is empty")
	}
	if err := os.MkdirAll(filepath.Join(dir, "regions"), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &FileStore{Dir: dir, log: logger.For("store")}, nil
}

func (s *FileStore) regionPath(name string) string {
	return filepath.Join(s.Dir, "regions", name+".json")
}

// LoadRegion reads the named region.
func (s *FileStore) LoadRegion(name string, now time.Time) (*region.Region, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.regionPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", region.ErrNotFound, name)
		}
		return nil, fmt.Errorf("failed to read region %s: %w", name, err)
	}
	r, err := decodeRegion(name, data, now)
	if err != nil {
		return nil, err
	}
	s.log.WithField("region", name).Debug("region read")
	return r, nil
}

// SaveRegion writes r, replacing any previous copy.
func (s *FileStore) SaveRegion(r *region.Region, now time.Time) error {
	if err := checkName(r.Name); err != nil {
		return err
	}
	data, err := encodeRegion(r, now)
	if err != nil {
		return err
	}
	if err := writeAtomic(s.regionPath(r.Name), data); err != nil {
		return fmt.Errorf("failed to write region %s: %w", r.Name, err)
	}
	s.log.WithField("region", r.Name).Debug("region written")
	return nil
}

// SaveWorld writes the world save.
func (s *FileStore) SaveWorld(doc world.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode world save: %w", err)
	}
	if err := writeAtomic(filepath.Join(s.Dir, worldFile), append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write world save: %w", err)
	}
	return nil
}

// LoadWorld reads the world save, or returns ErrNoWorld.
func (s *FileStore) LoadWorld() (world.Document, error) {
	data, err := os.ReadFile(filepath.Join(s.Dir, worldFile))
	if err != nil {
		if os.IsNotExist(err) {
			return world.Document{}, ErrNoWorld
		}
		return world.Document{}, fmt.Errorf("failed to read world save: %w", err)
	}
	return decodeWorld(data)
}

// Close is a no-op.
func (s *FileStore) Close() error { return nil }

func writeAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
