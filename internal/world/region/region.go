// Package region holds the occupants of one named area of the world: a
// static tile layer and a dynamic entity layer.
package region

import (
	"errors"
	"fmt"
	"time"

	"github.com/zyedidia/generic/mapset"

	"chosenoffset.com/tilewalk/internal/core/clock"
	"chosenoffset.com/tilewalk/internal/core/space"
	"chosenoffset.com/tilewalk/internal/world/entity"
	"chosenoffset.com/tilewalk/internal/world/tile"
)

// Region is one loadable area.
type Region struct {
	Name     string
	Tiles    *Registry[*tile.Tile]
	Entities *Registry[*entity.Entity]
}

// New creates an empty region.
func New(name string) *Region {
	return &Region{
		Name:     name,
		Tiles:    NewRegistry[*tile.Tile](),
		Entities: NewRegistry[*entity.Entity](),
	}
}

// Document is the serialized form of a region.
type Document struct {
	Name     string           `json:"name" jsonschema:"required"`
	Tiles    []*tile.Tile     `json:"tiles"`
	Entities []*entity.Entity `json:"entities"`
}

// Update refreshes derived tile state from the clock, then every
// occupant's animation.
func (r *Region) Update(c clock.Clock, now time.Time) {
	r.Tiles.Each(func(t *tile.Tile) {
		t.UpdateState(c)
		t.UpdateAnim(now)
	})
	r.Entities.Each(func(e *entity.Entity) {
		e.UpdateAnim(now)
	})
}

// BlockingCells returns the cells whose tile currently rejects movement.
func (r *Region) BlockingCells() mapset.Set[space.GamePos] {
	cells := mapset.New[space.GamePos]()
	r.Tiles.Each(func(t *tile.Tile) {
		if t.BlockMovement() {
			cells.Put(t.Pos.Round())
		}
	})
	return cells
}

// Validate reports content errors: cells holding more than one tile and
// occupants whose animation tables lack sequences their behaviour selects.
func (r *Region) Validate() error {
	var errs []error
	seen := mapset.New[space.GamePos]()
	r.Tiles.Each(func(t *tile.Tile) {
		cell := t.Pos.Round()
		if seen.Has(cell) {
			errs = append(errs, fmt.Errorf("region %s: more than one tile at %v", r.Name, cell))
		}
		seen.Put(cell)
		if err := t.Validate(); err != nil {
			errs = append(errs, err)
		}
	})
	r.Entities.Each(func(e *entity.Entity) {
		if e.Kind == entity.Player {
			errs = append(errs, fmt.Errorf("region %s: player stored as a region entity at %v", r.Name, e.Pos))
		}
		if err := e.Validate(); err != nil {
			errs = append(errs, err)
		}
	})
	return errors.Join(errs...)
}

// Snapshot freezes animation timing and returns the serializable form.
func (r *Region) Snapshot(now time.Time) Document {
	doc := Document{
		Name:     r.Name,
		Tiles:    make([]*tile.Tile, 0, r.Tiles.Len()),
		Entities: make([]*entity.Entity, 0, r.Entities.Len()),
	}
	r.Tiles.Each(func(t *tile.Tile) {
		t.Anim.Freeze(now)
		doc.Tiles = append(doc.Tiles, t)
	})
	r.Entities.Each(func(e *entity.Entity) {
		e.Anim.Freeze(now)
		doc.Entities = append(doc.Entities, e)
	})
	return doc
}

// FromDocument rebuilds a region, validating its content and resuming
// animation timing at now.
func FromDocument(doc Document, now time.Time) (*Region, error) {
	if doc.Name == "" {
		return nil, errors.New("region document has no name")
	}

	r := New(doc.Name)
	for _, t := range doc.Tiles {
		if t == nil {
			continue
		}
		t.Anim.Thaw(now)
		r.Tiles.restore(t)
	}
	for _, e := range doc.Entities {
		if e == nil {
			continue
		}
		e.Anim.Thaw(now)
		r.Entities.restore(e)
	}

	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate region %s: %w", doc.Name, err)
	}
	return r, nil
}

// ErrNotFound is returned by stores when no region has the requested name.
var ErrNotFound = errors.New("region not found")
