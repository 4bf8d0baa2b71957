// Package game connects the world simulation to a render backend: it turns
// key presses into world input, draws the world's draw list and saves on
// request.
package game

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/tilewalk/internal/atlas"
	"chosenoffset.com/tilewalk/internal/core/input"
	"chosenoffset.com/tilewalk/internal/logger"
	"chosenoffset.com/tilewalk/internal/render"
	"chosenoffset.com/tilewalk/internal/world"
	"chosenoffset.com/tilewalk/internal/world/store"
)

// Game holds the running world and the backend handles it draws with.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	World        *world.World
	Store        store.Store
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Sheets       *atlas.Manager
	Bindings     []Binding

	// TilePx and ViewDistance feed the world view each frame
	TilePx       float32
	ViewDistance int

	// Now is the wall clock; tests replace it
	Now func() time.Time

	// UI state
	Messages   []Message
	lastUpdate time.Time

	log *logrus.Entry
}

// New creates a game around an existing world.
func New(w *world.World, s store.Store, r render.Renderer, in render.InputManager, sheets *atlas.Manager) *Game {
	return &Game{
		World:        w,
		Store:        s,
		Renderer:     r,
		InputMgr:     in,
		Sheets:       sheets,
		Bindings:     DefaultBindings,
		TilePx:       48,
		ViewDistance: 16,
		Now:          time.Now,
		log:          logger.For("game"),
	}
}

// Update handles one tick: gather input, step the world, age messages.
// Escape saves and ends the game loop.
func (g *Game) Update() error {
	now := g.Now()
	if !g.lastUpdate.IsZero() {
		g.updateMessages(now.Sub(g.lastUpdate).Seconds())
	}
	g.lastUpdate = now

	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		if err := g.Save(); err != nil {
			g.log.WithError(err).Error("save on exit failed")
		}
		return render.ErrQuit
	}

	in := g.CollectInput(now)
	if in.Has(input.CmdSave) {
		if err := g.Save(); err != nil {
			g.log.WithError(err).Warn("save failed")
			g.ShowMessage("Save failed")
		} else {
			g.ShowMessage("Saved")
		}
	}

	region := g.World.Region.Name
	state := g.World.State()
	g.World.Step(in)

	if g.World.Region.Name != region {
		g.ShowMessage(fmt.Sprintf("Entered %s", g.World.Region.Name))
	}
	if state != g.World.State() {
		g.log.WithField("state", g.World.State()).Debug("world state changed")
	}
	return nil
}

// CollectInput reads the bound keys and mouse buttons into a world input.
func (g *Game) CollectInput(now time.Time) input.Input {
	in := input.Input{Now: now}
	seen := make(map[input.Command]bool)
	for _, b := range g.Bindings {
		if g.InputMgr.IsKeyJustPressed(b.Key) && !seen[b.Command] {
			seen[b.Command] = true
			in.Pressed = append(in.Pressed, b.Command)
		}
		if g.InputMgr.IsKeyJustReleased(b.Key) {
			in.Released = append(in.Released, b.Command)
		}
	}
	for _, b := range mouseBindings {
		if g.InputMgr.IsMouseButtonJustPressed(b.Button) && !seen[b.Command] {
			seen[b.Command] = true
			in.Pressed = append(in.Pressed, b.Command)
		}
	}

	x, y := g.InputMgr.GetCursorPosition()
	in.Cursor = g.World.ScreenToWorld(x, y, g.View())
	return in
}

// View is the world view for the current screen size.
func (g *Game) View() world.View {
	return world.View{
		Screen:   screenRect(g.ScreenWidth, g.ScreenHeight),
		TilePx:   g.TilePx,
		Distance: g.ViewDistance,
	}
}

// Save writes the active region and the world save.
func (g *Game) Save() error {
	if g.Store == nil {
		return fmt.Errorf("no store configured")
	}
	now := g.Now()
	if err := g.World.SaveRegion(now); err != nil {
		return fmt.Errorf("failed to save region: %w", err)
	}
	if err := g.Store.SaveWorld(g.World.Snapshot(now)); err != nil {
		return fmt.Errorf("failed to save world: %w", err)
	}
	g.log.WithField("region", g.World.Region.Name).Info("world saved")
	return nil
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.ScreenWidth = outsideWidth
	g.ScreenHeight = outsideHeight
	return outsideWidth, outsideHeight
}

func (g *Game) updateMessages(dt float64) {
	kept := g.Messages[:0]
	for _, msg := range g.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			kept = append(kept, msg)
		}
	}
	g.Messages = kept
}

// ShowMessage displays a message on screen for a few seconds.
func (g *Game) ShowMessage(text string) {
	g.Messages = append(g.Messages, Message{
		Text:     text,
		TimeLeft: 3.0,
		MaxTime:  3.0,
	})
	if len(g.Messages) > 5 {
		g.Messages = g.Messages[1:]
	}
}
