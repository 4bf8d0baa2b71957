// Package editor implements in-game level editing on the active region.
package editor

import (
	"time"

	"chosenoffset.com/tilewalk/internal/core/input"
	"chosenoffset.com/tilewalk/internal/core/space"
	"chosenoffset.com/tilewalk/internal/logger"
	"chosenoffset.com/tilewalk/internal/world/entity"
	"chosenoffset.com/tilewalk/internal/world/region"
	"chosenoffset.com/tilewalk/internal/world/tile"
)

// Layer selects which registry the editor works on.
type Layer int

const (
	LayerTiles Layer = iota
	LayerEntities
)

func (l Layer) String() string {
	if l == LayerEntities {
		return "entities"
	}
	return "tiles"
}

// Editor holds the brushes and orientation used to stamp occupants.
type Editor struct {
	Layer       Layer
	Variant     space.Variant
	TileBrush   *tile.Tile
	EntityBrush *entity.Entity
	// Mark is the cell newly stamped buttons will toggle.
	Mark space.GamePos
}

// New returns an editor with ground and walker brushes.
func New() *Editor {
	return &Editor{
		Variant:     space.Center,
		TileBrush:   tile.New(tile.Catalog[0], space.Origin, space.Center),
		EntityBrush: entity.New(entity.Catalog[0], space.Origin, space.Center),
	}
}

// Apply executes an editor command at the cursor.
func (e *Editor) Apply(cmd input.Command, r *region.Region, cursor space.GamePos, now time.Time) {
	switch cmd {
	case input.CmdStamp:
		e.Stamp(r, cursor, now)
	case input.CmdRemove:
		e.Remove(r, cursor)
	case input.CmdSample:
		e.Sample(r, cursor)
	case input.CmdCycleKind:
		e.Cycle()
	case input.CmdRotateCW:
		e.Rotate(true)
	case input.CmdRotateCCW:
		e.Rotate(false)
	case input.CmdMark:
		e.MarkAt(cursor)
	case input.CmdToggleLayer:
		e.ToggleLayer()
	}
}

// Stamp places a fresh copy of the brush on the cursor's cell, replacing
// whatever was there on the current layer.
func (e *Editor) Stamp(r *region.Region, cursor space.GamePos, now time.Time) {
	cell := cursor.Round()
	if e.Layer == LayerEntities {
		n := e.EntityBrush.Create(cell, e.Variant)
		if n.Kind == entity.Button {
			n.EffectPos = e.Mark
		}
		r.Entities.PushOverride(n, now)
		return
	}
	r.Tiles.PushOverride(e.TileBrush.Create(cell, e.Variant), now)
}

// Remove clears the cursor's cell on the current layer.
func (e *Editor) Remove(r *region.Region, cursor space.GamePos) {
	if e.Layer == LayerEntities {
		r.Entities.RemoveAt(cursor)
		return
	}
	r.Tiles.RemoveAt(cursor)
}

// Sample copies the occupant under the cursor into the brush.
func (e *Editor) Sample(r *region.Region, cursor space.GamePos) {
	if e.Layer == LayerEntities {
		if found, ok := r.Entities.AtPos(cursor); ok {
			e.EntityBrush = found.Pick()
			e.Variant = found.Variant
		}
		return
	}
	if found, ok := r.Tiles.AtPos(cursor); ok {
		e.TileBrush = found.Pick()
		e.Variant = found.Variant
	}
}

// Cycle advances the brush to the next catalog kind.
func (e *Editor) Cycle() {
	if e.Layer == LayerEntities {
		e.EntityBrush = e.EntityBrush.Next()
		logger.For("editor").WithField("kind", e.EntityBrush.Kind).Debug("brush changed")
		return
	}
	e.TileBrush = e.TileBrush.Next()
	logger.For("editor").WithField("kind", e.TileBrush.Kind).Debug("brush changed")
}

// Rotate turns the stamping orientation.
func (e *Editor) Rotate(clockwise bool) {
	if clockwise {
		e.Variant = e.Variant.RotateCW()
	} else {
		e.Variant = e.Variant.RotateCCW()
	}
}

// MarkAt sets the cell buttons will affect.
func (e *Editor) MarkAt(cursor space.GamePos) {
	e.Mark = cursor.Round()
}

// SetWarpTarget turns the tile brush into a warp to name.
func (e *Editor) SetWarpTarget(name string) {
	e.TileBrush = tile.NewWarp(space.Origin, name)
}

// ToggleLayer switches between tiles and entities.
func (e *Editor) ToggleLayer() {
	if e.Layer == LayerTiles {
		e.Layer = LayerEntities
	} else {
		e.Layer = LayerTiles
	}
}
