package game

import (
	"fmt"
	"image"
	"image/color"

	"chosenoffset.com/tilewalk/internal/render"
	"chosenoffset.com/tilewalk/internal/world"
	"chosenoffset.com/tilewalk/internal/world/animation"
	"chosenoffset.com/tilewalk/internal/world/editor"
)

var (
	backgroundColor = color.RGBA{20, 20, 30, 255}
	cursorColor     = color.RGBA{255, 255, 100, 200}
	markColor       = color.RGBA{100, 200, 255, 200}
	textColor       = color.RGBA{255, 255, 255, 255}
)

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(backgroundColor)

	v := g.View()
	now := g.Now()
	for _, b := range g.World.DrawList(now, v) {
		g.drawBlit(screen, b)
	}

	if g.World.State() == world.StateOverworld && g.World.Editor != nil {
		g.drawEditor(screen, v)
	}
	g.drawUI(screen)
}

func (g *Game) drawBlit(screen render.Image, b animation.Blit) {
	if g.Sheets == nil || b.Src.Empty() {
		return
	}
	img, err := g.Sheets.Frame(b.Sheet, b.Src)
	if err != nil {
		// Missing art shows as a flat cell instead.
		g.Renderer.FillRect(screen, b.Dst.X, b.Dst.Y, b.Dst.W, b.Dst.H, color.RGBA{255, 0, 255, 255})
		return
	}

	opts := &render.DrawImageOptions{Tint: b.Tint}
	opts.GeoM = render.NewGeoM()
	opts.GeoM.Scale(float64(b.Dst.W)/float64(b.Src.Dx()), float64(b.Dst.H)/float64(b.Src.Dy()))
	opts.GeoM.Translate(float64(b.Dst.X), float64(b.Dst.Y))
	screen.DrawImage(img, opts)
}

func (g *Game) drawEditor(screen render.Image, v world.View) {
	x, y := g.InputMgr.GetCursorPosition()
	cell := g.World.ScreenToWorld(x, y, v).Round()
	g.strokeCell(screen, v, cell.X, cell.Y, cursorColor)

	ed := g.World.Editor
	g.strokeCell(screen, v, ed.Mark.X, ed.Mark.Y, markColor)

	brush := ed.TileBrush.Name()
	if ed.Layer == editor.LayerEntities {
		brush = ed.EntityBrush.Name()
	}
	status := fmt.Sprintf("EDIT %s: %s (%s)", ed.Layer, brush, ed.Variant)
	_, h := g.Renderer.MeasureText(status, 1.0)
	g.Renderer.DrawText(screen, status, 20, g.ScreenHeight-h-10, textColor, 1.0)
}

func (g *Game) strokeCell(screen render.Image, v world.View, cx, cy float32, clr color.Color) {
	origin := g.World.ScreenToWorld(v.Screen.Min.X, v.Screen.Min.Y, v)
	x := float32(v.Screen.Min.X) + (cx-origin.X-0.5)*v.TilePx
	y := float32(v.Screen.Min.Y) + (cy-origin.Y-0.5)*v.TilePx
	g.Renderer.StrokeRect(screen, x, y, v.TilePx, v.TilePx, 2, clr)
}

func (g *Game) drawUI(screen render.Image) {
	w := g.World
	status := fmt.Sprintf("%s  %s  %s  %s", w.Region.Name, w.Clock, w.Clock.Season(), dayLabel(w))
	g.Renderer.DrawText(screen, status, 20, 20, textColor, 1.0)

	// Draw on-screen messages
	y := 50.0
	for _, msg := range g.Messages {
		alpha := uint8(255 * (msg.TimeLeft / msg.MaxTime))
		g.Renderer.DrawText(screen, msg.Text, 20, int(y), color.RGBA{255, 255, 255, alpha}, 1.0)
		y += 20
	}
}

func dayLabel(w *world.World) string {
	if w.Clock.IsDay() {
		return "day"
	}
	return "night"
}

func screenRect(width, height int) image.Rectangle {
	return image.Rect(0, 0, width, height)
}
