package editor

import (
	"testing"
	"time"

	"chosenoffset.com/tilewalk/internal/core/input"
	"chosenoffset.com/tilewalk/internal/core/space"
	"chosenoffset.com/tilewalk/internal/world/entity"
	"chosenoffset.com/tilewalk/internal/world/region"
	"chosenoffset.com/tilewalk/internal/world/tile"
)

var now = time.Unix(100, 0)

func TestStampRoundsCursorAndOverrides(t *testing.T) {
	r := region.New("edit")
	ed := New()

	ed.Apply(input.CmdStamp, r, space.GamePos{X: 2.4, Y: 2.6}, now)
	ed.Apply(input.CmdCycleKind, r, space.Origin, now)
	ed.Apply(input.CmdStamp, r, space.Pos(2, 3), now)

	if r.Tiles.Len() != 1 {
		t.Fatalf("Expected 1 tile, got %d", r.Tiles.Len())
	}
	got, ok := r.Tiles.AtPos(space.Pos(2, 3))
	if !ok || got.Kind != tile.Catalog[1] {
		t.Errorf("Expected %v at (2, 3), got %+v", tile.Catalog[1], got)
	}
}

func TestRotateAffectsStampedVariant(t *testing.T) {
	r := region.New("edit")
	ed := New()
	ed.TileBrush = tile.New(tile.Grass, space.Origin, space.Center)

	ed.Apply(input.CmdRotateCW, r, space.Origin, now)
	ed.Apply(input.CmdRotateCW, r, space.Origin, now)
	ed.Apply(input.CmdStamp, r, space.Pos(1, 1), now)

	got, _ := r.Tiles.AtPos(space.Pos(1, 1))
	if got.Variant != space.Top {
		t.Errorf("Expected top after two clockwise turns, got %v", got.Variant)
	}

	ed.Apply(input.CmdRotateCCW, r, space.Origin, now)
	if ed.Variant != space.CornerTL {
		t.Errorf("Expected corner_tl after ccw, got %v", ed.Variant)
	}
}

func TestSampleAndRemove(t *testing.T) {
	r := region.New("edit")
	r.Tiles.Push(tile.NewWarp(space.Pos(5, 5), "attic"), now)
	ed := New()

	ed.Apply(input.CmdSample, r, space.Pos(5, 5), now)
	if ed.TileBrush.Kind != tile.Warp || ed.TileBrush.Target != "attic" {
		t.Errorf("Expected warp brush to attic, got %+v", ed.TileBrush)
	}

	ed.Apply(input.CmdStamp, r, space.Pos(6, 5), now)
	if got, ok := r.Tiles.AtPos(space.Pos(6, 5)); !ok || got.Target != "attic" {
		t.Error("Expected stamped warp to keep its target")
	}

	ed.Apply(input.CmdRemove, r, space.Pos(5, 5), now)
	if _, ok := r.Tiles.AtPos(space.Pos(5, 5)); ok {
		t.Error("Expected tile removed")
	}
}

func TestEntityLayerButtonUsesMark(t *testing.T) {
	r := region.New("edit")
	ed := New()

	ed.Apply(input.CmdToggleLayer, r, space.Origin, now)
	ed.Apply(input.CmdCycleKind, r, space.Origin, now)
	if ed.EntityBrush.Kind != entity.Button {
		t.Fatalf("Expected button brush, got %v", ed.EntityBrush.Kind)
	}

	ed.Apply(input.CmdMark, r, space.GamePos{X: 7.2, Y: 1.9}, now)
	ed.Apply(input.CmdStamp, r, space.Pos(3, 3), now)

	b, ok := r.Entities.AtPos(space.Pos(3, 3))
	if !ok || b.EffectPos != space.Pos(7, 2) {
		t.Errorf("Expected button targeting (7, 2), got %+v", b)
	}
	if r.Tiles.Len() != 0 {
		t.Error("Expected tile layer untouched")
	}
}

func TestSetWarpTarget(t *testing.T) {
	ed := New()
	ed.SetWarpTarget("cellar")
	if ed.TileBrush.Kind != tile.Warp || ed.TileBrush.Target != "cellar" {
		t.Errorf("Unexpected brush %+v", ed.TileBrush)
	}
}
