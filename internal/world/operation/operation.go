// Package operation describes deferred world mutations. Occupant hooks never
// touch the world directly; they return an Operation that the turn engine
// runs once every hook of the turn has been collected.
package operation

import (
	"encoding/json"
	"fmt"
	"time"

	"chosenoffset.com/tilewalk/internal/core/space"
	"chosenoffset.com/tilewalk/internal/logger"
	"chosenoffset.com/tilewalk/internal/world/minigame"
	"chosenoffset.com/tilewalk/internal/world/occupant"
)

// Target is the world surface effects act on. Methods addressing an
// occupant that no longer exists report false and change nothing.
type Target interface {
	MovePlayer(delta space.GamePos)
	ToggleTileAt(pos space.GamePos) bool
	MoveEntity(slot occupant.SlotID, delta space.GamePos) bool
	InstallMinigame(m minigame.Minigame)
	LoadRegion(name string) error
}

// Params is the data snapshot an operation was built with. Conditions are
// evaluated against it, not against live occupant state.
type Params struct {
	Positions   []space.GamePos       `json:"positions,omitempty"`
	Obstruction *occupant.Obstruction `json:"obstruction,omitempty"`
	Variant     *space.Variant        `json:"variant,omitempty"`
	Text        string                `json:"text,omitempty"`
	Minigame    string                `json:"minigame,omitempty"`
}

// Operation is an ordered list of effects plus the params they read.
type Operation struct {
	Effects []Effect `json:"effects"`
	Params  Params   `json:"params"`
}

// New returns an empty operation.
func New() *Operation {
	return &Operation{}
}

// Empty reports whether the operation has no effects.
func (o *Operation) Empty() bool {
	return o == nil || len(o.Effects) == 0
}

func (o *Operation) add(e Effect) *Operation {
	o.Effects = append(o.Effects, e)
	return o
}

// WithParams replaces the params snapshot.
func (o *Operation) WithParams(p Params) *Operation {
	o.Params = p
	return o
}

// WithMovePlayer displaces the player by delta.
func (o *Operation) WithMovePlayer(delta space.GamePos) *Operation {
	return o.add(Effect{Kind: EffectMovePlayer, Delta: delta})
}

// WithBlockPlayer undoes a player move of delta.
func (o *Operation) WithBlockPlayer(delta space.GamePos) *Operation {
	return o.WithBlockWhen(CondAlways, delta)
}

// WithBlockWhen undoes a player move of delta if cond holds at execution.
func (o *Operation) WithBlockWhen(cond Condition, delta space.GamePos) *Operation {
	return o.add(Effect{Kind: EffectBlockWhen, When: cond, Delta: delta})
}

// WithBlockWhenObstructing records obs and undoes the move if it blocks.
func (o *Operation) WithBlockWhenObstructing(delta space.GamePos, obs occupant.Obstruction) *Operation {
	o.Params.Obstruction = &obs
	return o.WithBlockWhen(CondObstructing, delta)
}

// WithBlockAgainst records the facing v and undoes the move if it goes
// against that facing.
func (o *Operation) WithBlockAgainst(delta space.GamePos, v space.Variant) *Operation {
	o.Params.Variant = &v
	return o.WithBlockWhen(CondAgainstVariant, delta)
}

// WithToggleTileAt toggles the state of the tile at pos.
func (o *Operation) WithToggleTileAt(pos space.GamePos) *Operation {
	o.Params.Positions = append(o.Params.Positions, pos)
	return o.add(Effect{Kind: EffectToggleTile, Pos: pos})
}

// WithMoveEntity displaces the entity in slot by delta.
func (o *Operation) WithMoveEntity(slot occupant.SlotID, delta space.GamePos) *Operation {
	return o.add(Effect{Kind: EffectMoveEntity, Slot: slot, Delta: delta})
}

// WithMinigame installs a fresh instance of the prototype's kind. Only the
// kind is kept; the prototype itself is never shared.
func (o *Operation) WithMinigame(proto minigame.Minigame) *Operation {
	return o.WithMinigameKind(proto.Kind())
}

// WithMinigameKind installs a fresh instance of a registered kind.
func (o *Operation) WithMinigameKind(kind string) *Operation {
	o.Params.Minigame = kind
	return o.add(Effect{Kind: EffectInstallMinigame, Name: kind})
}

// WithLoadRegion replaces the active region with the named one.
func (o *Operation) WithLoadRegion(name string) *Operation {
	o.Params.Text = name
	return o.add(Effect{Kind: EffectLoadRegion, Name: name})
}

// WithCustom runs the registered custom effect called name.
func (o *Operation) WithCustom(name string) *Operation {
	return o.add(Effect{Kind: EffectCustom, Name: name})
}

// WithFunc runs fn directly. Such effects cannot be serialized and are
// dropped when the operation is encoded.
func (o *Operation) WithFunc(fn CustomFunc) *Operation {
	return o.add(Effect{Kind: EffectCustom, fn: fn})
}

// Execute runs the effects in order. It stops at the first effect that
// fails; effects on stale targets are not failures.
func (o *Operation) Execute(t Target, now time.Time) error {
	if o == nil {
		return nil
	}
	for i := range o.Effects {
		if err := o.Effects[i].apply(t, o.Params, now); err != nil {
			return fmt.Errorf("effect %d (%s): %w", i, o.Effects[i].Kind, err)
		}
	}
	return nil
}

type operationJSON Operation

// MarshalJSON encodes the operation, leaving out function effects.
func (o *Operation) MarshalJSON() ([]byte, error) {
	out := operationJSON{Params: o.Params}
	for _, e := range o.Effects {
		if e.fn != nil {
			logger.For("operation").Warn("dropping unserializable function effect")
			continue
		}
		out.Effects = append(out.Effects, e)
	}
	if out.Effects == nil {
		out.Effects = []Effect{}
	}
	return json.Marshal(out)
}
