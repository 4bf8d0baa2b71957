package world

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"chosenoffset.com/tilewalk/internal/core/clock"
	"chosenoffset.com/tilewalk/internal/core/space"
	"chosenoffset.com/tilewalk/internal/world/entity"
	"chosenoffset.com/tilewalk/internal/world/minigame"
	"chosenoffset.com/tilewalk/internal/world/region"
)

// MinigameState is a running minigame as saved: its kind and how long it
// had been running.
type MinigameState struct {
	Kind      string `json:"kind" jsonschema:"required"`
	ElapsedMS int64  `json:"elapsed_ms"`
}

// Document is the serialized world, minus the regions themselves, which
// are saved separately by name.
type Document struct {
	ID       uuid.UUID      `json:"id" jsonschema:"required"`
	Region   string         `json:"region" jsonschema:"required"`
	Player   *entity.Entity `json:"player" jsonschema:"required"`
	Clock    clock.Clock    `json:"clock"`
	Camera   space.GamePos  `json:"camera"`
	Minigame *MinigameState `json:"minigame,omitempty"`
}

// Snapshot freezes timing and returns the serializable world.
func (w *World) Snapshot(now time.Time) Document {
	w.Player.Anim.Freeze(now)
	doc := Document{
		ID:     w.ID,
		Region: w.Region.Name,
		Player: w.Player,
		Clock:  w.Clock,
		Camera: w.Camera,
	}
	if w.minigame != nil {
		doc.Minigame = &MinigameState{
			Kind:      w.minigame.Kind(),
			ElapsedMS: w.minigame.Elapsed(now).Milliseconds(),
		}
	}
	return doc
}

// Restore rebuilds a world from doc. The region named by the document is
// loaded from store; a running minigame is recreated and resumed with its
// saved elapsed time.
func Restore(doc Document, store RegionStore, now time.Time) (*World, error) {
	if doc.Player == nil {
		return nil, errors.New("world document has no player")
	}
	if doc.Player.Kind == entity.Player && doc.Player.Hat == "" {
		doc.Player.Hat = entity.HatNone
	}
	if err := doc.Player.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate player: %w", err)
	}
	if store == nil {
		return nil, errors.New("no region store configured")
	}

	r, err := store.LoadRegion(doc.Region, now)
	if errors.Is(err, region.ErrNotFound) {
		r = region.New(doc.Region)
	} else if err != nil {
		return nil, fmt.Errorf("failed to load region %s: %w", doc.Region, err)
	}

	doc.Player.Anim.Thaw(now)
	w := New(r, doc.Player, store)
	if doc.ID != uuid.Nil {
		w.ID = doc.ID
	}
	w.Clock = doc.Clock
	w.Camera = doc.Camera

	if doc.Minigame != nil {
		m, err := minigame.Create(doc.Minigame.Kind, now)
		if err != nil {
			return nil, fmt.Errorf("failed to restore minigame: %w", err)
		}
		m.Resume(now, time.Duration(doc.Minigame.ElapsedMS)*time.Millisecond)
		w.minigame = m
	}
	return w, nil
}
