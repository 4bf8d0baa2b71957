package world

import (
	"image"
	"image/color"
	"sort"
	"time"

	"chosenoffset.com/tilewalk/internal/core/space"
	"chosenoffset.com/tilewalk/internal/world/animation"
	"chosenoffset.com/tilewalk/internal/world/entity"
	"chosenoffset.com/tilewalk/internal/world/tile"
)

// View describes the screen area the world is drawn into.
type View struct {
	Screen image.Rectangle
	// TilePx is the on-screen size of one grid cell.
	TilePx float32
	// Distance culls occupants further than this many cells from the camera.
	Distance int
}

const (
	layerTile = iota
	layerEntity
	layerPlayer
	layerCount
)

var white = color.RGBA{255, 255, 255, 255}

// DrawList returns the blits for the current frame in draw order: rows top
// to bottom, and within a row tiles, then entities, then the player. A
// running minigame replaces the overworld entirely.
func (w *World) DrawList(now time.Time, v View) []animation.Blit {
	if w.minigame != nil {
		return w.minigame.Draw(now, v.Screen)
	}

	night := w.Clock.IsNight()
	var blits []animation.Blit

	add := func(pos space.GamePos, a *animation.Animation, layer int) {
		if v.Distance > 0 && pos.LargestComponentDifference(w.Camera) > float32(v.Distance) {
			return
		}
		b := a.Blit(now, w.cellRect(pos, v), night, white)
		b.Depth = pos.Y*layerCount + float32(layer)
		blits = append(blits, b)
	}

	w.Region.Tiles.Each(func(t *tile.Tile) {
		add(t.Pos, &t.Anim, layerTile)
	})
	w.Region.Entities.Each(func(e *entity.Entity) {
		add(e.Pos, &e.Anim, layerEntity)
	})
	add(w.Player.Pos, &w.Player.Anim, layerPlayer)

	sort.SliceStable(blits, func(i, j int) bool {
		return blits[i].Depth < blits[j].Depth
	})
	return blits
}

// cellRect maps a grid cell to screen pixels with the camera at the centre
// of the view.
func (w *World) cellRect(pos space.GamePos, v View) animation.Rect {
	cx := float32(v.Screen.Min.X) + float32(v.Screen.Dx())/2
	cy := float32(v.Screen.Min.Y) + float32(v.Screen.Dy())/2
	off := pos.Sub(w.Camera).Mul(v.TilePx)
	return animation.Rect{
		X: cx + off.X - v.TilePx/2,
		Y: cy + off.Y - v.TilePx/2,
		W: v.TilePx,
		H: v.TilePx,
	}
}

// ScreenToWorld converts a screen pixel to a world position using the same
// mapping as DrawList.
func (w *World) ScreenToWorld(x, y int, v View) space.GamePos {
	cx := float32(v.Screen.Min.X) + float32(v.Screen.Dx())/2
	cy := float32(v.Screen.Min.Y) + float32(v.Screen.Dy())/2
	if v.TilePx <= 0 {
		return w.Camera
	}
	return space.GamePos{
		X: (float32(x) - cx) / v.TilePx,
		Y: (float32(y) - cy) / v.TilePx,
	}.Add(w.Camera)
}
