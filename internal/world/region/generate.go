package region

import (
	"time"

	"chosenoffset.com/tilewalk/internal/core/space"
	"chosenoffset.com/tilewalk/internal/world/entity"
	"chosenoffset.com/tilewalk/internal/world/occupant"
	"chosenoffset.com/tilewalk/internal/world/tile"
)

// EdgeVariant returns the orientation of cell (x, y) relative to the
// rectangle (x0, y0)-(x1, y1): corners, sides, or Center inside.
func EdgeVariant(x, y, x0, y0, x1, y1 int) space.Variant {
	left, right := x == x0, x == x1
	top, bottom := y == y0, y == y1

	switch {
	case top && left:
		return space.CornerTL
	case top && right:
		return space.CornerTR
	case bottom && left:
		return space.CornerBL
	case bottom && right:
		return space.CornerBR
	case top:
		return space.Top
	case bottom:
		return space.Bottom
	case left:
		return space.Left
	case right:
		return space.Right
	default:
		return space.Center
	}
}

// GenerateSquare calls fn for every cell of the rectangle with the cell's
// edge orientation.
func GenerateSquare(x0, y0, x1, y1 int, fn func(v space.Variant, pos space.GamePos)) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			fn(EdgeVariant(x, y, x0, y0, x1, y1), space.Pos(x, y))
		}
	}
}

// GenerateBox calls fn for the border cells of the rectangle only.
func GenerateBox(x0, y0, x1, y1 int, fn func(v space.Variant, pos space.GamePos)) {
	GenerateSquare(x0, y0, x1, y1, func(v space.Variant, pos space.GamePos) {
		if v != space.Center {
			fn(v, pos)
		}
	})
}

// StarterSpawn is where the player appears in the starter region.
var StarterSpawn = space.Pos(2, 5)

// Starter builds the default region for a new game: a walled meadow with a
// door and the button that opens it, a sun and moon gate, a smiley, a warp
// to the named neighbour and a walker.
func Starter(name, warpTarget string, now time.Time) *Region {
	r := New(name)

	GenerateSquare(1, 1, 14, 9, func(v space.Variant, pos space.GamePos) {
		r.Tiles.Push(tile.New(tile.Grass, pos, v), now)
	})
	GenerateBox(0, 0, 15, 10, func(_ space.Variant, pos space.GamePos) {
		r.Tiles.Push(tile.New(tile.BasePillar, pos, space.Center), now)
	})

	features := []*tile.Tile{
		tile.NewDoor(space.Pos(10, 5), occupant.Blocking),
		tile.New(tile.Sun, space.Pos(6, 2), space.Center),
		tile.New(tile.Moon, space.Pos(7, 2), space.Center),
		tile.New(tile.SmileyMan, space.Pos(12, 8), space.Center),
		tile.New(tile.Stair, space.Pos(2, 2), space.CornerTL),
		tile.New(tile.Arrow, space.Pos(3, 3), space.Right),
		tile.New(tile.Rock, space.Pos(5, 8), space.Center),
	}
	if warpTarget != "" {
		features = append(features, tile.NewWarp(space.Pos(13, 2), warpTarget))
	}
	for _, t := range features {
		r.Tiles.PushOverride(t, now)
	}

	r.Entities.Push(entity.NewButton(space.Pos(4, 7), space.Pos(10, 5)), now)
	r.Entities.Push(entity.New(entity.Walker, space.Pos(12, 4), space.Left), now)
	r.Entities.Push(entity.New(entity.OneWay, space.Pos(8, 6), space.Right), now)

	return r
}
