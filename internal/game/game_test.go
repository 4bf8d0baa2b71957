package game

import (
	"errors"
	"image"
	"image/color"
	"testing"
	"time"

	"chosenoffset.com/tilewalk/internal/atlas"
	"chosenoffset.com/tilewalk/internal/core/input"
	"chosenoffset.com/tilewalk/internal/core/space"
	"chosenoffset.com/tilewalk/internal/render"
	"chosenoffset.com/tilewalk/internal/simulation"
	"chosenoffset.com/tilewalk/internal/world/region"
	"chosenoffset.com/tilewalk/internal/world/store"
)

var epoch = time.Unix(1000, 0)

type fakeGeoM struct{}

func (fakeGeoM) Translate(float64, float64) {}
func (fakeGeoM) Scale(float64, float64)     {}
func (fakeGeoM) Reset()                     {}

type fakeImage struct {
	bounds image.Rectangle
	draws  int
}

func (f *fakeImage) Bounds() image.Rectangle { return f.bounds }
func (f *fakeImage) Size() (int, int)        { return f.bounds.Dx(), f.bounds.Dy() }
func (f *fakeImage) SubImage(r image.Rectangle) render.Image {
	return &fakeImage{bounds: r}
}
func (f *fakeImage) Fill(color.Color) {}
func (f *fakeImage) Clear()           {}
func (f *fakeImage) DrawImage(render.Image, *render.DrawImageOptions) {
	f.draws++
}
func (f *fakeImage) Dispose() {}

type fakeRenderer struct {
	fills int
	texts []string
}

func (r *fakeRenderer) NewImage(w, h int) render.Image {
	return &fakeImage{bounds: image.Rect(0, 0, w, h)}
}
func (r *fakeRenderer) FillRect(render.Image, float32, float32, float32, float32, color.Color) {
	r.fills++
}
func (r *fakeRenderer) StrokeRect(render.Image, float32, float32, float32, float32, float32, color.Color) {
}
func (r *fakeRenderer) DrawText(_ render.Image, text string, _, _ int, _ color.Color, _ float64) {
	r.texts = append(r.texts, text)
}
func (r *fakeRenderer) MeasureText(text string, _ float64) (int, int) {
	return len(text) * 6, 13
}

type fakeInput struct {
	pressed  map[render.Key]bool
	released map[render.Key]bool
	mouse    map[render.MouseButton]bool
	x, y     int
}

func newFakeInput() *fakeInput {
	return &fakeInput{
		pressed:  map[render.Key]bool{},
		released: map[render.Key]bool{},
		mouse:    map[render.MouseButton]bool{},
	}
}

func (f *fakeInput) IsKeyPressed(k render.Key) bool      { return f.pressed[k] }
func (f *fakeInput) IsKeyJustPressed(k render.Key) bool  { return f.pressed[k] }
func (f *fakeInput) IsKeyJustReleased(k render.Key) bool { return f.released[k] }
func (f *fakeInput) GetCursorPosition() (int, int)       { return f.x, f.y }
func (f *fakeInput) IsMouseButtonJustPressed(b render.MouseButton) bool {
	return f.mouse[b]
}

func init() {
	render.NewGeoM = func() render.GeoM { return fakeGeoM{} }
}

func newTestGame(t *testing.T) (*Game, *fakeInput, *fakeRenderer, store.Store) {
	t.Helper()
	s, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	w, err := NewWorld(simulation.DefaultConfig(), s, epoch)
	if err != nil {
		t.Fatalf("NewWorld failed: %v", err)
	}

	in := newFakeInput()
	r := &fakeRenderer{}
	g := New(w, s, r, in, atlas.NewManager())
	g.Now = func() time.Time { return epoch }
	g.Layout(480, 480)
	return g, in, r, s
}

func TestCollectInputMapsBindings(t *testing.T) {
	g, in, _, _ := newTestGame(t)
	in.pressed[render.KeyW] = true
	in.pressed[render.KeyUp] = true
	in.pressed[render.KeyTab] = true
	in.released[render.KeyH] = true
	in.mouse[render.MouseButtonLeft] = true
	in.x, in.y = 240+48, 240

	got := g.CollectInput(epoch)

	want := []input.Command{input.CmdUp, input.CmdToggleLayer, input.CmdStamp}
	if len(got.Pressed) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got.Pressed)
	}
	for i := range want {
		if got.Pressed[i] != want[i] {
			t.Errorf("Expected %v at %d, got %v", want[i], i, got.Pressed[i])
		}
	}
	if len(got.Released) != 1 || got.Released[0] != input.CmdCycleHat {
		t.Errorf("Expected hat release, got %v", got.Released)
	}
	if got.Cursor.Round() != region.StarterSpawn.Add(space.Pos(1, 0)) {
		t.Errorf("Expected cursor one cell right of the player, got %v", got.Cursor)
	}
}

func TestUpdateStepsWorld(t *testing.T) {
	g, in, _, _ := newTestGame(t)
	in.pressed[render.KeyD] = true

	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if g.World.Player.Pos != region.StarterSpawn.Add(space.Pos(1, 0)) {
		t.Errorf("Expected player moved right, got %v", g.World.Player.Pos)
	}
}

func TestSaveKeyWritesWorld(t *testing.T) {
	g, in, _, s := newTestGame(t)
	in.pressed[render.KeyF5] = true

	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	doc, err := s.LoadWorld()
	if err != nil {
		t.Fatalf("Expected saved world, got %v", err)
	}
	if doc.ID != g.World.ID {
		t.Errorf("Expected id %s, got %s", g.World.ID, doc.ID)
	}
	if len(g.Messages) != 1 || g.Messages[0].Text != "Saved" {
		t.Errorf("Expected 'Saved' message, got %v", g.Messages)
	}
}

func TestMessagesExpireOnGameClock(t *testing.T) {
	g, _, _, _ := newTestGame(t)
	now := epoch
	g.Now = func() time.Time { return now }

	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	g.ShowMessage("hello")

	now = now.Add(2 * time.Second)
	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if len(g.Messages) != 1 {
		t.Fatalf("Expected message still shown after 2s, got %v", g.Messages)
	}
	if left := g.Messages[0].TimeLeft; left < 0.99 || left > 1.01 {
		t.Errorf("Expected about 1s left, got %v", left)
	}

	now = now.Add(1500 * time.Millisecond)
	if err := g.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if len(g.Messages) != 0 {
		t.Errorf("Expected message expired, got %v", g.Messages)
	}
}

func TestEscapeSavesAndQuits(t *testing.T) {
	g, in, _, s := newTestGame(t)
	in.pressed[render.KeyEscape] = true

	if err := g.Update(); !errors.Is(err, render.ErrQuit) {
		t.Fatalf("Expected ErrQuit, got %v", err)
	}
	if _, err := s.LoadWorld(); err != nil {
		t.Errorf("Expected world saved on exit, got %v", err)
	}
}

func TestNewWorldRestoresSave(t *testing.T) {
	g, _, _, s := newTestGame(t)
	if err := g.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	cfg := simulation.DefaultConfig()
	cfg.World.Editor = false
	w, err := NewWorld(cfg, s, epoch)
	if err != nil {
		t.Fatalf("NewWorld failed: %v", err)
	}
	if w.ID != g.World.ID {
		t.Errorf("Expected restored id %s, got %s", g.World.ID, w.ID)
	}
	if w.Editor != nil {
		t.Error("Expected editor disabled by config")
	}
}

func TestDrawUsesSheets(t *testing.T) {
	g, _, r, _ := newTestGame(t)
	screen := &fakeImage{bounds: image.Rect(0, 0, 480, 480)}

	// Without sheets every blit falls back to a flat cell.
	g.Draw(screen)
	if screen.draws != 0 || r.fills == 0 {
		t.Fatalf("Expected fallback fills only, got %d draws and %d fills", screen.draws, r.fills)
	}

	for _, name := range []string{"tiles", "entities", "player", "smile"} {
		if err := g.Sheets.RegisterSheet(name, &fakeImage{bounds: image.Rect(0, 0, 1000, 1000)}); err != nil {
			t.Fatal(err)
		}
	}
	r.fills = 0
	g.Draw(screen)

	blits := g.World.DrawList(epoch, g.View())
	if screen.draws != len(blits) {
		t.Errorf("Expected %d draws, got %d", len(blits), screen.draws)
	}
	if r.fills != 0 {
		t.Errorf("Expected no fallback fills, got %d", r.fills)
	}
	if len(r.texts) == 0 {
		t.Error("Expected status text")
	}
}
