// Package tile implements the static layer of a region: one tile per cell,
// each a variant of a closed set of kinds.
package tile

import (
	"time"

	"chosenoffset.com/tilewalk/internal/core/clock"
	"chosenoffset.com/tilewalk/internal/core/space"
	"chosenoffset.com/tilewalk/internal/world/animation"
	"chosenoffset.com/tilewalk/internal/world/minigame"
	"chosenoffset.com/tilewalk/internal/world/occupant"
	"chosenoffset.com/tilewalk/internal/world/operation"
)

// Tile is one cell of the static layer. Only the fields relevant to Kind
// carry meaning: State for doors, sun and moon tiles, Target for warps.
type Tile struct {
	Kind    Kind                 `json:"kind"`
	Pos     space.GamePos        `json:"pos"`
	Variant space.Variant        `json:"variant"`
	State   occupant.Obstruction `json:"state"`
	Target  string               `json:"target,omitempty"`
	Anim    animation.Animation  `json:"anim"`

	slot occupant.SlotID
}

// New creates a tile of kind k with its stock animation table.
func New(k Kind, pos space.GamePos, v space.Variant) *Tile {
	t := &Tile{
		Kind:    k,
		Pos:     pos,
		Variant: v,
		State:   occupant.Blocking,
		Anim:    DefaultAnimation(k, v),
	}
	if k == Sun || k == Moon {
		t.State = occupant.Free
	}
	return t
}

// NewWarp creates a warp tile leading to the named region.
func NewWarp(pos space.GamePos, target string) *Tile {
	t := New(Warp, pos, space.Center)
	t.Target = target
	return t
}

// NewDoor creates a door in the given state.
func NewDoor(pos space.GamePos, state occupant.Obstruction) *Tile {
	t := New(Door, pos, space.Center)
	t.State = state
	return t
}

// Position returns the tile's cell.
func (t *Tile) Position() space.GamePos { return t.Pos }

func (t *Tile) SlotID() occupant.SlotID       { return t.slot }
func (t *Tile) SetSlotID(id occupant.SlotID) { t.slot = id }

// Animation returns the tile's animation selector.
func (t *Tile) Animation() *animation.Animation { return &t.Anim }

// Name identifies the tile kind in logs and content errors.
func (t *Tile) Name() string { return t.Kind.String() }

// BlockMovement reports whether the engine must reject a move onto this
// tile before it happens.
func (t *Tile) BlockMovement() bool {
	switch t.Kind {
	case BasePillar:
		return true
	case Door, Sun, Moon:
		return t.State.Blocks()
	default:
		return false
	}
}

// OnPlayerEnter is called after the player has moved onto the tile by
// delta. The returned operation may be nil.
func (t *Tile) OnPlayerEnter(delta space.GamePos) *operation.Operation {
	switch t.Kind {
	case Door:
		return operation.New().WithBlockWhenObstructing(delta, t.State)
	case InvisWall, Boulder, Rock, CliffFace:
		return operation.New().WithBlockPlayer(delta)
	case CliffEdge:
		return operation.New().WithBlockAgainst(delta, t.Variant)
	case SmileyMan:
		return operation.New().
			WithMinigameKind(minigame.SmileyWinKind).
			WithBlockPlayer(delta)
	case Warp:
		if t.Target == "" {
			return nil
		}
		return operation.New().WithLoadRegion(t.Target)
	default:
		return nil
	}
}

// UpdateState derives time-dependent state from the clock.
func (t *Tile) UpdateState(c clock.Clock) {
	switch t.Kind {
	case Sun:
		if c.IsDay() {
			t.State = occupant.Blocking
		} else {
			t.State = occupant.Free
		}
	case Moon:
		if c.IsNight() {
			t.State = occupant.Blocking
		} else {
			t.State = occupant.Free
		}
	}
}

// UpdateSelf is the reaction to being targeted by a toggle effect.
func (t *Tile) UpdateSelf() {
	switch t.Kind {
	case Door, Sun, Moon:
		t.State = t.State.Toggle()
	}
}

// UpdateAnim makes the active sequence reflect current state. Selecting a
// sequence missing from the table is a content bug and panics.
func (t *Tile) UpdateAnim(now time.Time) {
	want := seqBase
	if t.Kind == Door && !t.State.Blocks() {
		want = seqOpen
	}
	if t.Anim.Active == want {
		return
	}
	occupant.MustNot(t.Anim.Select(want, now), t.Name(), t.Pos, want)
}

// ResetAnim forces the base sequence; registries call it on insertion.
func (t *Tile) ResetAnim(now time.Time) {
	occupant.MustNot(t.Anim.Select(seqBase, now), t.Name(), t.Pos, seqBase)
}

// Validate checks the animation table against what the kind selects.
func (t *Tile) Validate() error {
	for _, name := range t.Kind.RequiredSequences() {
		if err := t.Anim.Validate(name); err != nil {
			return &occupant.ContentError{Kind: t.Name(), Pos: t.Pos, Sequence: name, Err: err}
		}
	}
	return nil
}

// Create builds a fresh tile of the same kind at pos, used by the editor to
// stamp the brush.
func (t *Tile) Create(pos space.GamePos, v space.Variant) *Tile {
	n := New(t.Kind, pos, v)
	n.Target = t.Target
	if t.Kind == Door {
		n.State = t.State
	}
	return n
}

// Pick returns a copy suitable as an editor brush.
func (t *Tile) Pick() *Tile {
	return t.Create(t.Pos, t.Variant)
}

// Next returns a brush of the next kind in the catalog.
func (t *Tile) Next() *Tile {
	return New(t.Kind.Next(), t.Pos, t.Variant)
}
