// Package entity implements the dynamic layer of a region: occupants that
// move, take turns and react to each other and to the player.
package entity

import (
	"time"

	"chosenoffset.com/tilewalk/internal/core/space"
	"chosenoffset.com/tilewalk/internal/world/animation"
	"chosenoffset.com/tilewalk/internal/world/occupant"
	"chosenoffset.com/tilewalk/internal/world/operation"
)

// Entity is a dynamic occupant. Fields not used by Kind stay zero:
// EffectPos belongs to buttons, Hat to the player.
type Entity struct {
	Kind      Kind                `json:"kind"`
	Pos       space.GamePos       `json:"pos"`
	Variant   space.Variant       `json:"variant"`
	LastMove  space.GamePos       `json:"last_move"`
	EffectPos space.GamePos       `json:"effect_pos"`
	Hat       string              `json:"hat,omitempty"`
	Anim      animation.Animation `json:"anim"`

	slot occupant.SlotID
}

// New creates an entity of kind k with its stock animation table.
func New(k Kind, pos space.GamePos, v space.Variant) *Entity {
	e := &Entity{
		Kind:    k,
		Pos:     pos,
		Variant: v,
		Anim:    DefaultAnimation(k, v),
	}
	if k == Player {
		e.Hat = HatNone
	}
	return e
}

// NewPlayer creates the player at pos.
func NewPlayer(pos space.GamePos) *Entity {
	return New(Player, pos, space.Center)
}

// NewButton creates a button that toggles the tile at target.
func NewButton(pos, target space.GamePos) *Entity {
	e := New(Button, pos, space.Center)
	e.EffectPos = target
	return e
}

// Position returns the entity's cell.
func (e *Entity) Position() space.GamePos { return e.Pos }

func (e *Entity) SlotID() occupant.SlotID       { return e.slot }
func (e *Entity) SetSlotID(id occupant.SlotID) { e.slot = id }

// Animation returns the entity's animation selector.
func (e *Entity) Animation() *animation.Animation { return &e.Anim }

// Name identifies the entity kind in logs and content errors.
func (e *Entity) Name() string { return e.Kind.String() }

// Move displaces the entity and remembers the displacement.
func (e *Entity) Move(delta space.GamePos) {
	e.Pos = e.Pos.Add(delta)
	e.LastMove = delta
}

// DoTurn runs the entity's own turn. Movement happens immediately; the
// returned operation holds anything that touches the rest of the world.
func (e *Entity) DoTurn() *operation.Operation {
	switch e.Kind {
	case Walker:
		if step := e.Variant.DirectionVector(); !step.IsZero() {
			e.Move(step)
		}
	}
	return nil
}

// OnPlayerEnter is called when the player has moved onto the entity by
// delta. Unless a kind says otherwise the player is pushed back.
func (e *Entity) OnPlayerEnter(delta space.GamePos) *operation.Operation {
	switch e.Kind {
	case Button:
		return operation.New().
			WithBlockPlayer(delta).
			WithToggleTileAt(e.EffectPos)
	case OneWay:
		return operation.New().WithBlockAgainst(delta, e.Variant)
	default:
		return operation.New().WithBlockPlayer(delta)
	}
}

// OnEntityEnter is called when the entity in slot other has moved onto this
// one by delta.
func (e *Entity) OnEntityEnter(delta space.GamePos, other occupant.SlotID) *operation.Operation {
	switch e.Kind {
	case Button:
		op := operation.New().WithToggleTileAt(e.EffectPos)
		if !delta.IsZero() {
			op.WithMoveEntity(other, delta.Neg())
		}
		return op
	default:
		return nil
	}
}

// CycleHat puts on the next hat.
func (e *Entity) CycleHat() {
	for i, h := range Hats {
		if h == e.Hat {
			e.Hat = Hats[(i+1)%len(Hats)]
			return
		}
	}
	e.Hat = Hats[0]
}

// UpdateAnim makes the active sequence reflect current state. The player's
// hat is swapped in without restarting timing.
func (e *Entity) UpdateAnim(now time.Time) {
	if e.Kind == Player {
		if e.Anim.Active != e.Hat {
			occupant.MustNot(e.Anim.Intercept(e.Hat), e.Name(), e.Pos, e.Hat)
		}
		return
	}
	if e.Anim.Active == "" {
		occupant.MustNot(e.Anim.Select(seqBase, now), e.Name(), e.Pos, seqBase)
	}
}

// ResetAnim forces the base sequence; registries call it on insertion.
func (e *Entity) ResetAnim(now time.Time) {
	name := seqBase
	if e.Kind == Player {
		name = e.Hat
	}
	occupant.MustNot(e.Anim.Select(name, now), e.Name(), e.Pos, name)
}

// Validate checks the animation table against what the kind selects.
func (e *Entity) Validate() error {
	for _, name := range e.Kind.RequiredSequences() {
		if err := e.Anim.Validate(name); err != nil {
			return &occupant.ContentError{Kind: e.Name(), Pos: e.Pos, Sequence: name, Err: err}
		}
	}
	if e.Kind == Player {
		if err := e.Anim.Validate(e.Hat); err != nil {
			return &occupant.ContentError{Kind: e.Name(), Pos: e.Pos, Sequence: e.Hat, Err: err}
		}
	}
	return nil
}

// Create builds a fresh entity of the same kind at pos.
func (e *Entity) Create(pos space.GamePos, v space.Variant) *Entity {
	n := New(e.Kind, pos, v)
	n.EffectPos = e.EffectPos
	return n
}

// Pick returns a copy suitable as an editor brush.
func (e *Entity) Pick() *Entity {
	return e.Create(e.Pos, e.Variant)
}

// Next returns a brush of the next kind in the catalog.
func (e *Entity) Next() *Entity {
	n := New(e.Kind.Next(), e.Pos, e.Variant)
	n.EffectPos = e.EffectPos
	return n
}
