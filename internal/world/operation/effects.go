package operation

import (
	"fmt"
	"time"

	"chosenoffset.com/tilewalk/internal/core/space"
	"chosenoffset.com/tilewalk/internal/logger"
	"chosenoffset.com/tilewalk/internal/world/minigame"
	"chosenoffset.com/tilewalk/internal/world/occupant"
)

// EffectKind discriminates Effect.
type EffectKind string

const (
	EffectMovePlayer      EffectKind = "move_player"
	EffectBlockWhen       EffectKind = "block_when"
	EffectToggleTile      EffectKind = "toggle_tile"
	EffectMoveEntity      EffectKind = "move_entity"
	EffectInstallMinigame EffectKind = "install_minigame"
	EffectLoadRegion      EffectKind = "load_region"
	EffectCustom          EffectKind = "custom"
)

// Condition is a predicate over Params and the move being resolved.
type Condition string

const (
	CondAlways         Condition = "always"
	CondObstructing    Condition = "obstructing"
	CondAgainstVariant Condition = "against_variant"
)

// Holds evaluates the condition for a move of delta.
func (c Condition) Holds(p Params, delta space.GamePos) bool {
	switch c {
	case CondAlways, "":
		return true
	case CondObstructing:
		return p.Obstruction != nil && p.Obstruction.Blocks()
	case CondAgainstVariant:
		if p.Variant == nil {
			return false
		}
		dir := p.Variant.DirectionVector()
		return dir.X*delta.X < 0 || dir.Y*delta.Y < 0
	default:
		return false
	}
}

// Effect is one deferred mutation. Which fields are meaningful depends on
// Kind.
type Effect struct {
	Kind  EffectKind      `json:"kind"`
	Delta space.GamePos   `json:"delta"`
	Pos   space.GamePos   `json:"pos"`
	Slot  occupant.SlotID `json:"slot,omitempty"`
	When  Condition       `json:"when,omitempty"`
	// Name is the minigame kind, region name or custom effect name.
	Name string `json:"name,omitempty"`

	fn CustomFunc
}

// CustomFunc is the escape hatch for effects the closed set cannot express.
type CustomFunc func(t Target, p Params) error

var customEffects = map[string]CustomFunc{}

// RegisterEffect registers a named custom effect.
func RegisterEffect(name string, fn CustomFunc) {
	customEffects[name] = fn
}

func (e *Effect) apply(t Target, p Params, now time.Time) error {
	log := logger.For("operation")

	switch e.Kind {
	case EffectMovePlayer:
		t.MovePlayer(e.Delta)
	case EffectBlockWhen:
		if e.When.Holds(p, e.Delta) {
			t.MovePlayer(e.Delta.Neg())
		}
	case EffectToggleTile:
		if !t.ToggleTileAt(e.Pos) {
			log.WithField("pos", e.Pos).Debug("toggle target gone")
		}
	case EffectMoveEntity:
		if !t.MoveEntity(e.Slot, e.Delta) {
			log.WithField("slot", e.Slot).Debug("entity target gone")
		}
	case EffectInstallMinigame:
		m, err := minigame.Create(e.Name, now)
		if err != nil {
			return err
		}
		t.InstallMinigame(m)
	case EffectLoadRegion:
		return t.LoadRegion(e.Name)
	case EffectCustom:
		fn := e.fn
		if fn == nil {
			var ok bool
			if fn, ok = customEffects[e.Name]; !ok {
				return fmt.Errorf("unknown custom effect: %s", e.Name)
			}
		}
		return fn(t, p)
	default:
		return fmt.Errorf("unknown effect kind: %s", e.Kind)
	}
	return nil
}
