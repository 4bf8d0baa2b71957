// Package store persists regions and world saves, either as JSON files in a
// directory or as JSON values in a bbolt database.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"chosenoffset.com/tilewalk/internal/world"
	"chosenoffset.com/tilewalk/internal/world/region"
)

// ErrNoWorld is returned by LoadWorld when nothing has been saved yet.
var ErrNoWorld = errors.New("no saved world")

// Store is a world.RegionStore that can also hold the world save.
type Store interface {
	world.RegionStore
	SaveWorld(doc world.Document) error
	LoadWorld() (world.Document, error)
	Close() error
}

// Drivers understood by Open.
const (
	DriverFile = "file"
	DriverBolt = "bolt"
)

// Open returns the store for driver. location is a directory for the file
// driver and a database path for the bolt driver.
func Open(driver, location string) (Store, error) {
	switch driver {
	case DriverFile, "":
		return NewFileStore(location)
	case DriverBolt:
		return OpenBolt(location)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}

func checkName(name string) error {
	if name == "" {
		return errors.New("region name is empty")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("invalid region name %q", name)
	}
	return nil
}

func encodeRegion(r *region.Region, now time.Time) ([]byte, error) {
	data, err := json.MarshalIndent(r.Snapshot(now), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode region %s: %w", r.Name, err)
	}
	return append(data, '\n'), nil
}

func decodeRegion(name string, data []byte, now time.Time) (*region.Region, error) {
	var doc region.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse region %s: %w", name, err)
	}
	if doc.Name == "" {
		doc.Name = name
	}
	r, err := region.FromDocument(doc, now)
	if err != nil {
		return nil, fmt.Errorf("invalid region %s: %w", name, err)
	}
	return r, nil
}

func decodeWorld(data []byte) (world.Document, error) {
	var doc world.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return world.Document{}, fmt.Errorf("failed to parse world save: %w", err)
	}
	return doc, nil
}
