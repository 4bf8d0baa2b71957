// Package occupant holds the small types shared by every tile and entity:
// passability state, arena slot ids and the content-error panic value.
package occupant

import (
	"fmt"

	"chosenoffset.com/tilewalk/internal/core/space"
)

// Obstruction is the two-valued passability state of stateful occupants.
type Obstruction int

const (
	Blocking Obstruction = iota
	Free
)

// Toggle flips between Blocking and Free.
func (o Obstruction) Toggle() Obstruction {
	if o == Blocking {
		return Free
	}
	return Blocking
}

// Blocks reports whether the state prevents movement.
func (o Obstruction) Blocks() bool {
	return o == Blocking
}

func (o Obstruction) String() string {
	if o == Blocking {
		return "blocking"
	}
	return "free"
}

func (o Obstruction) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Obstruction) UnmarshalText(text []byte) error {
	switch string(text) {
	case "blocking":
		*o = Blocking
	case "free":
		*o = Free
	default:
		return fmt.Errorf("unknown obstruction %q", text)
	}
	return nil
}

// SlotID identifies an occupant inside a registry. Ids are never reused, so
// a stale id simply fails to resolve.
type SlotID uint32

// NoSlot is the zero id; registries start numbering at 1.
const NoSlot SlotID = 0

// ContentError describes an authoring bug in occupant content, such as an
// occupant whose behaviour selects an animation its table does not contain.
// It is returned from load-time validation and used as the panic value when
// the bug is hit at runtime.
type ContentError struct {
	Kind     string
	Pos      space.GamePos
	Sequence string
	Err      error
}

func (e *ContentError) Error() string {
	return fmt.Sprintf("content error: %s at %v: sequence %q: %v", e.Kind, e.Pos, e.Sequence, e.Err)
}

func (e *ContentError) Unwrap() error {
	return e.Err
}

// MustNot panics with a ContentError when err is non-nil.
func MustNot(err error, kind string, pos space.GamePos, sequence string) {
	if err == nil {
		return
	}
	panic(&ContentError{Kind: kind, Pos: pos, Sequence: sequence, Err: err})
}
