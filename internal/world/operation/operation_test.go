package operation

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"chosenoffset.com/tilewalk/internal/core/space"
	"chosenoffset.com/tilewalk/internal/world/minigame"
	"chosenoffset.com/tilewalk/internal/world/occupant"
)

type fakeTarget struct {
	player   space.GamePos
	moves    []space.GamePos
	toggled  []space.GamePos
	tiles    map[space.GamePos]bool
	entities map[occupant.SlotID]space.GamePos
	mg       minigame.Minigame
	loaded   []string
	loadErr  error
}

func newFakeTarget() *fakeTarget {
	return &fakeTarget{
		tiles:    map[space.GamePos]bool{},
		entities: map[occupant.SlotID]space.GamePos{},
	}
}

func (f *fakeTarget) MovePlayer(delta space.GamePos) {
	f.player = f.player.Add(delta)
	f.moves = append(f.moves, delta)
}

func (f *fakeTarget) ToggleTileAt(pos space.GamePos) bool {
	if _, ok := f.tiles[pos]; !ok {
		return false
	}
	f.tiles[pos] = !f.tiles[pos]
	f.toggled = append(f.toggled, pos)
	return true
}

func (f *fakeTarget) MoveEntity(slot occupant.SlotID, delta space.GamePos) bool {
	pos, ok := f.entities[slot]
	if !ok {
		return false
	}
	f.entities[slot] = pos.Add(delta)
	return true
}

func (f *fakeTarget) InstallMinigame(m minigame.Minigame) { f.mg = m }

func (f *fakeTarget) LoadRegion(name string) error {
	if f.loadErr != nil {
		return f.loadErr
	}
	f.loaded = append(f.loaded, name)
	return nil
}

func TestBlockPlayerUndoesMove(t *testing.T) {
	target := newFakeTarget()
	target.player = space.Pos(1, 0)

	if err := New().WithBlockPlayer(space.Pos(1, 0)).Execute(target, time.Now()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if target.player != space.Origin {
		t.Errorf("Expected player back at origin, got %v", target.player)
	}
}

func TestBlockWhenObstructingUsesSnapshot(t *testing.T) {
	tests := []struct {
		name  string
		state occupant.Obstruction
		want  space.GamePos
	}{
		{"blocking pushes back", occupant.Blocking, space.Pos(4, 4)},
		{"free lets through", occupant.Free, space.Pos(5, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := newFakeTarget()
			target.player = space.Pos(5, 4)
			op := New().WithBlockWhenObstructing(space.Pos(1, 0), tt.state)
			_ = op.Execute(target, time.Now())
			if target.player != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, target.player)
			}
		})
	}
}

func TestAgainstVariantCondition(t *testing.T) {
	tests := []struct {
		name    string
		variant space.Variant
		delta   space.GamePos
		blocked bool
	}{
		{"along right facing", space.Right, space.Pos(1, 0), false},
		{"against right facing", space.Right, space.Pos(-1, 0), true},
		{"perpendicular", space.Right, space.Pos(0, 1), false},
		{"against top facing", space.Top, space.Pos(0, 1), true},
		{"center never blocks", space.Center, space.Pos(-1, 0), false},
		{"corner blocks either axis", space.CornerTL, space.Pos(1, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.variant
			if got := CondAgainstVariant.Holds(Params{Variant: &v}, tt.delta); got != tt.blocked {
				t.Errorf("Expected %v, got %v", tt.blocked, got)
			}
		})
	}
}

func TestToggleStaleTargetIsNoop(t *testing.T) {
	target := newFakeTarget()
	target.tiles[space.Pos(3, 3)] = false

	op := New().WithToggleTileAt(space.Pos(9, 9)).WithToggleTileAt(space.Pos(3, 3))
	if err := op.Execute(target, time.Now()); err != nil {
		t.Fatalf("Expected stale toggle to be silent, got %v", err)
	}
	if len(target.toggled) != 1 || !target.tiles[space.Pos(3, 3)] {
		t.Errorf("Expected only the live tile toggled, got %v", target.toggled)
	}
}

func TestMinigameInstallsFreshInstance(t *testing.T) {
	proto, _ := minigame.Create(minigame.SmileyWinKind, time.Unix(0, 0))
	target := newFakeTarget()
	now := time.Unix(500, 0)

	if err := New().WithMinigame(proto).Execute(target, now); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if target.mg == nil || target.mg == proto {
		t.Fatal("Expected a new minigame instance")
	}
	if r := target.mg.Update(now.Add(time.Second)); r != minigame.Processing {
		t.Errorf("Expected fresh timing, got %v", r)
	}
}

func TestEffectsRunInAppendOrder(t *testing.T) {
	target := newFakeTarget()
	op := New().
		WithMovePlayer(space.Pos(1, 0)).
		WithMovePlayer(space.Pos(0, 1)).
		WithMovePlayer(space.Pos(2, 0))
	_ = op.Execute(target, time.Now())

	want := []space.GamePos{space.Pos(1, 0), space.Pos(0, 1), space.Pos(2, 0)}
	for i, m := range want {
		if target.moves[i] != m {
			t.Errorf("Move %d: expected %v, got %v", i, m, target.moves[i])
		}
	}
}

func TestQueueDrainsLastPushedFirst(t *testing.T) {
	target := newFakeTarget()
	var q Queue
	q.Push(New().WithMovePlayer(space.Pos(1, 0)))
	q.Push(nil)
	q.Push(New())
	q.Push(New().WithMovePlayer(space.Pos(0, 1)))

	if q.Len() != 2 {
		t.Fatalf("Expected 2 queued operations, got %d", q.Len())
	}
	if err := q.Drain(target, time.Now()); err != nil {
		t.Fatalf("Drain failed: %v", err)
	}
	if q.Len() != 0 {
		t.Errorf("Expected empty queue after drain, got %d", q.Len())
	}
	if target.moves[0] != space.Pos(0, 1) || target.moves[1] != space.Pos(1, 0) {
		t.Errorf("Expected LIFO order, got %v", target.moves)
	}
}

func TestDrainContinuesPastFailures(t *testing.T) {
	target := newFakeTarget()
	target.loadErr = errors.New("disk on fire")

	var q Queue
	q.Push(New().WithMovePlayer(space.Pos(1, 1)))
	q.Push(New().WithLoadRegion("cellar"))

	err := q.Drain(target, time.Now())
	if !errors.Is(err, target.loadErr) {
		t.Errorf("Expected load error, got %v", err)
	}
	if target.player != space.Pos(1, 1) {
		t.Errorf("Expected remaining operation to run, player at %v", target.player)
	}
}

func TestCustomEffects(t *testing.T) {
	RegisterEffect("nudge", func(t Target, p Params) error {
		t.MovePlayer(p.Positions[0])
		return nil
	})

	target := newFakeTarget()
	op := New().WithParams(Params{Positions: []space.GamePos{space.Pos(2, 2)}}).WithCustom("nudge")
	if err := op.Execute(target, time.Now()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if target.player != space.Pos(2, 2) {
		t.Errorf("Expected nudge to move player, got %v", target.player)
	}

	if err := New().WithCustom("unregistered").Execute(target, time.Now()); err == nil {
		t.Error("Expected error for unregistered custom effect")
	}

	called := false
	_ = New().WithFunc(func(Target, Params) error { called = true; return nil }).Execute(target, time.Now())
	if !called {
		t.Error("Expected function effect to run")
	}
}

func TestMarshalDropsFunctionEffects(t *testing.T) {
	op := New().
		WithToggleTileAt(space.Pos(1, 2)).
		WithFunc(func(Target, Params) error { return nil }).
		WithLoadRegion("cellar")

	data, err := json.Marshal(op)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var back Operation
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(back.Effects) != 2 {
		t.Fatalf("Expected 2 effects, got %d", len(back.Effects))
	}
	if back.Effects[0].Kind != EffectToggleTile || back.Effects[1].Name != "cellar" {
		t.Errorf("Unexpected effects %+v", back.Effects)
	}
	if back.Params.Text != "cellar" {
		t.Errorf("Expected params text cellar, got %q", back.Params.Text)
	}
}
