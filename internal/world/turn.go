package world

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"chosenoffset.com/tilewalk/internal/core/space"
	"chosenoffset.com/tilewalk/internal/world/entity"
)

// Turn resolves one player move in direction dir. It returns false when the
// move was rejected before anything happened; a rejected move does not
// advance the clock.
func (w *World) Turn(dir space.Direction, now time.Time) bool {
	if w.minigame != nil {
		return false
	}
	delta := dir.Delta()
	if delta.IsZero() {
		return false
	}
	w.now = now

	target := w.Player.Pos.Add(delta)
	if t, ok := w.Region.Tiles.AtPos(target); ok && t.BlockMovement() {
		w.log.WithFields(logrus.Fields{
			"tile": t.Name(),
			"pos":  target,
		}).Debug("move rejected")
		return false
	}

	w.Player.Move(delta)

	if t, ok := w.Region.Tiles.AtPos(w.Player.Pos); ok {
		w.queue.Push(t.OnPlayerEnter(delta))
	}
	if e, ok := w.Region.Entities.AtPos(w.Player.Pos); ok {
		w.queue.Push(e.OnPlayerEnter(delta))
	}

	w.runEntityTurns()
	w.fireEntityEnters()

	if err := w.queue.Drain(w, now); err != nil {
		w.log.WithError(err).Warn("operation failed")
	}

	w.Camera = w.Player.Pos
	w.Region.Update(w.Clock, now)
	w.Player.UpdateAnim(now)
	w.Clock.Tick()
	return true
}

// runEntityTurns lets every entity act, reverting any move that lands on a
// blocking tile, another entity or the player.
func (w *World) runEntityTurns() {
	blocked := w.Region.BlockingCells()

	for _, e := range w.Region.Entities.Items() {
		before := e.Pos
		e.LastMove = space.Origin
		w.queue.Push(e.DoTurn())

		if e.Pos == before {
			continue
		}
		if w.collides(e, blocked) {
			e.Pos = before
			e.LastMove = space.Origin
		}
	}
}

func (w *World) collides(e *entity.Entity, blocked mapset.Set[space.GamePos]) bool {
	cell := e.Pos.Round()
	if blocked.Has(cell) || cell == w.Player.Pos.Round() {
		return true
	}
	for _, other := range w.Region.Entities.AllAtPos(cell) {
		if other != e {
			return true
		}
	}
	return false
}

// fireEntityEnters notifies, for each entity sharing a cell with another,
// the first other occupant of that cell.
func (w *World) fireEntityEnters() {
	for _, mover := range w.Region.Entities.Items() {
		for _, other := range w.Region.Entities.AllAtPos(mover.Pos) {
			if other == mover {
				continue
			}
			w.queue.Push(other.OnEntityEnter(mover.LastMove, mover.SlotID()))
			break
		}
	}
}
