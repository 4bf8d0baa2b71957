// Package minigame defines the self-contained sub-games that can preempt the
// overworld turn loop, and the registry used to create them from prototypes.
package minigame

import (
	"errors"
	"fmt"
	"image"
	"sort"
	"time"

	"chosenoffset.com/tilewalk/internal/core/input"
	"chosenoffset.com/tilewalk/internal/world/animation"
)

// ErrUnknownKind is returned by Create for an unregistered kind.
var ErrUnknownKind = errors.New("unknown minigame kind")

// Result is the outcome of one minigame update.
type Result int

const (
	Processing Result = iota
	Success
	Failure
)

func (r Result) String() string {
	switch r {
	case Processing:
		return "processing"
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return fmt.Sprintf("result(%d)", int(r))
	}
}

// Minigame is a sub-game that owns input and drawing while it runs.
type Minigame interface {
	// Kind is the registry key the minigame was created from.
	Kind() string
	// Reset restarts the minigame's timing from now.
	Reset(now time.Time)
	Update(now time.Time) Result
	KeyDown(cmd input.Command)
	KeyUp(cmd input.Command)
	// Draw returns the blits for the minigame filling screen.
	Draw(now time.Time, screen image.Rectangle) []animation.Blit
	// Elapsed and Resume carry progress across save and load as a
	// duration rather than a wall-clock instant.
	Elapsed(now time.Time) time.Duration
	Resume(now time.Time, elapsed time.Duration)
}

// Factory builds a fresh, unstarted minigame.
type Factory func() Minigame

var registry = map[string]Factory{}

// Register adds a minigame kind. Registering the same kind twice replaces
// the earlier factory.
func Register(kind string, factory Factory) {
	registry[kind] = factory
}

// Create instantiates a registered kind and starts it at now.
func Create(kind string, now time.Time) (Minigame, error) {
	factory, ok := registry[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	m := factory()
	m.Reset(now)
	return m, nil
}

// Kinds lists registered kinds in sorted order.
func Kinds() []string {
	kinds := make([]string, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
