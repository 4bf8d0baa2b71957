// Package world runs the simulation: the player, the active region, the
// clock and the state machine that hands control to minigames.
package world

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"chosenoffset.com/tilewalk/internal/core/clock"
	"chosenoffset.com/tilewalk/internal/core/input"
	"chosenoffset.com/tilewalk/internal/core/space"
	"chosenoffset.com/tilewalk/internal/logger"
	"chosenoffset.com/tilewalk/internal/world/editor"
	"chosenoffset.com/tilewalk/internal/world/entity"
	"chosenoffset.com/tilewalk/internal/world/minigame"
	"chosenoffset.com/tilewalk/internal/world/occupant"
	"chosenoffset.com/tilewalk/internal/world/operation"
	"chosenoffset.com/tilewalk/internal/world/region"
)

// State is the top-level mode of the world.
type State int

const (
	StateOverworld State = iota
	StateMinigame
)

func (s State) String() string {
	if s == StateMinigame {
		return "minigame"
	}
	return "overworld"
}

// RegionStore loads and saves regions by name. A missing region is reported
// with an error wrapping region.ErrNotFound.
type RegionStore interface {
	LoadRegion(name string, now time.Time) (*region.Region, error)
	SaveRegion(r *region.Region, now time.Time) error
}

// World is the whole simulation state.
type World struct {
	ID     uuid.UUID
	Region *region.Region
	Player *entity.Entity
	Clock  clock.Clock
	Camera space.GamePos
	Editor *editor.Editor

	minigame minigame.Minigame
	store    RegionStore
	queue    operation.Queue
	now      time.Time
	log      *logrus.Entry
}

// New creates a world with a fresh id. store may be nil, in which case
// region loads fail and the world stays in its current region.
func New(r *region.Region, player *entity.Entity, store RegionStore) *World {
	w := &World{
		ID:     uuid.New(),
		Region: r,
		Player: player,
		Camera: player.Pos,
		Editor: editor.New(),
		store:  store,
		log:    logger.For("world"),
	}
	return w
}

// State reports whether the overworld or a minigame has control.
func (w *World) State() State {
	if w.minigame != nil {
		return StateMinigame
	}
	return StateOverworld
}

// Minigame returns the running minigame, if any.
func (w *World) Minigame() minigame.Minigame {
	return w.minigame
}

// Step feeds one frame of input into the simulation. While a minigame runs
// it receives all input and the overworld is frozen.
func (w *World) Step(in input.Input) {
	if w.minigame != nil {
		w.stepMinigame(in)
		return
	}

	for _, cmd := range in.Pressed {
		switch {
		case cmd.Direction() != space.DirNone:
			w.Turn(cmd.Direction(), in.Now)
		case cmd == input.CmdCycleHat:
			w.Player.CycleHat()
			w.Player.UpdateAnim(in.Now)
		case cmd.IsEditor() && w.Editor != nil:
			w.Editor.Apply(cmd, w.Region, in.Cursor, in.Now)
		}
		if w.minigame != nil {
			return
		}
	}
}

func (w *World) stepMinigame(in input.Input) {
	for _, cmd := range in.Pressed {
		w.minigame.KeyDown(cmd)
	}
	for _, cmd := range in.Released {
		w.minigame.KeyUp(cmd)
	}

	result := w.minigame.Update(in.Now)
	if result == minigame.Processing {
		return
	}
	w.log.WithFields(logrus.Fields{
		"minigame": w.minigame.Kind(),
		"result":   result,
	}).Info("minigame finished")
	w.minigame = nil
}

// MovePlayer displaces the player.
func (w *World) MovePlayer(delta space.GamePos) {
	w.Player.Move(delta)
}

// ToggleTileAt asks the tile at pos to toggle itself.
func (w *World) ToggleTileAt(pos space.GamePos) bool {
	t, ok := w.Region.Tiles.AtPos(pos)
	if !ok {
		return false
	}
	t.UpdateSelf()
	return true
}

// MoveEntity displaces the entity in slot.
func (w *World) MoveEntity(slot occupant.SlotID, delta space.GamePos) bool {
	e, ok := w.Region.Entities.Get(slot)
	if !ok {
		return false
	}
	e.Move(delta)
	return true
}

// InstallMinigame hands control to m until it finishes.
func (w *World) InstallMinigame(m minigame.Minigame) {
	w.log.WithField("minigame", m.Kind()).Info("minigame started")
	w.minigame = m
}

// LoadRegion saves the active region and switches to the named one. A
// region that does not exist yet starts out empty.
func (w *World) LoadRegion(name string) error {
	if w.store == nil {
		return errors.New("no region store configured")
	}
	now := w.now
	if now.IsZero() {
		now = time.Now()
	}

	if err := w.store.SaveRegion(w.Region, now); err != nil {
		return fmt.Errorf("failed to save region %s: %w", w.Region.Name, err)
	}

	next, err := w.store.LoadRegion(name, now)
	if errors.Is(err, region.ErrNotFound) {
		w.log.WithField("region", name).Warn("region not found, starting empty")
		next = region.New(name)
	} else if err != nil {
		return fmt.Errorf("failed to load region %s: %w", name, err)
	}

	w.log.WithFields(logrus.Fields{
		"from": w.Region.Name,
		"to":   name,
	}).Info("region loaded")
	w.Region = next
	return nil
}

// SaveRegion writes the active region to the store.
func (w *World) SaveRegion(now time.Time) error {
	if w.store == nil {
		return errors.New("no region store configured")
	}
	return w.store.SaveRegion(w.Region, now)
}
