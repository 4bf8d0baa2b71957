// Package animation selects sprite-sheet frames for occupants over wall-clock
// time. It only resolves which cell of a sheet to show; drawing is left to
// the render backend.
package animation

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a sequence name is not in the animation table.
var ErrNotFound = errors.New("animation sequence not found")

// Frame addresses one cell of a sprite sheet.
type Frame struct {
	Col uint16 `json:"col"`
	Row uint16 `json:"row"`
}

// Size is a frame's pixel size, excluding padding.
type Size struct {
	W int `json:"w"`
	H int `json:"h"`
}

// Sequence is a named run of frames.
type Sequence struct {
	Loop   bool    `json:"loop"`
	Frames []Frame `json:"frames"`
}

// Animation is a table of named sequences over one sprite sheet plus the
// currently selected sequence. The active sequence is held by name so a
// selection can never point outside the table.
type Animation struct {
	Sheet      string              `json:"sheet"`
	FrameSize  Size                `json:"frame_size"`
	Sequences  map[string]Sequence `json:"sequences"`
	Default    Frame               `json:"default"`
	IntervalMS uint16              `json:"interval_ms"`

	Active string `json:"active,omitempty"`
	// ElapsedMS is the time spent in the active sequence when the animation
	// was last frozen for saving.
	ElapsedMS int64 `json:"elapsed_ms,omitempty"`

	started time.Time
}

// New creates an empty animation table for a sheet.
func New(sheet string, size Size, def Frame, intervalMS uint16) *Animation {
	return &Animation{
		Sheet:      sheet,
		FrameSize:  size,
		Sequences:  make(map[string]Sequence),
		Default:    def,
		IntervalMS: intervalMS,
	}
}

// With adds or replaces a sequence and returns the animation for chaining.
func (a *Animation) With(name string, loop bool, frames ...Frame) *Animation {
	if a.Sequences == nil {
		a.Sequences = make(map[string]Sequence)
	}
	a.Sequences[name] = Sequence{Loop: loop, Frames: frames}
	return a
}

// Has reports whether the table contains name.
func (a *Animation) Has(name string) bool {
	_, ok := a.Sequences[name]
	return ok
}

// Select makes name the active sequence and restarts its timing.
func (a *Animation) Select(name string, now time.Time) error {
	if !a.Has(name) {
		return fmt.Errorf("%w: %q on sheet %s", ErrNotFound, name, a.Sheet)
	}
	a.Active = name
	a.started = now
	a.ElapsedMS = 0
	return nil
}

// Intercept swaps the active sequence but keeps the current timing, so the
// new sequence continues at the same phase.
func (a *Animation) Intercept(name string) error {
	if !a.Has(name) {
		return fmt.Errorf("%w: %q on sheet %s", ErrNotFound, name, a.Sheet)
	}
	a.Active = name
	return nil
}

// Deselect clears the active sequence; the default frame is shown.
func (a *Animation) Deselect() {
	a.Active = ""
	a.started = time.Time{}
	a.ElapsedMS = 0
}

// Validate checks that every name is present in the table.
func (a *Animation) Validate(names ...string) error {
	var missing []error
	for _, name := range names {
		if !a.Has(name) {
			missing = append(missing, fmt.Errorf("%w: %q on sheet %s", ErrNotFound, name, a.Sheet))
		}
	}
	return errors.Join(missing...)
}

// FrameAt resolves the frame to show at now. A non-looping sequence that has
// run past its end is deselected and the default frame returned.
func (a *Animation) FrameAt(now time.Time) Frame {
	seq, ok := a.Sequences[a.Active]
	if a.Active == "" || !ok || len(seq.Frames) == 0 {
		return a.Default
	}
	if a.started.IsZero() {
		a.started = now
	}

	interval := time.Duration(a.IntervalMS) * time.Millisecond
	if interval <= 0 {
		interval = time.Millisecond
	}
	elapsed := now.Sub(a.started)
	if elapsed < 0 {
		elapsed = 0
	}
	count := int(elapsed / interval)

	if !seq.Loop && count > len(seq.Frames) {
		a.Deselect()
		return a.Default
	}
	return seq.Frames[count%len(seq.Frames)]
}

// Freeze records the elapsed time of the active sequence so it survives
// serialization.
func (a *Animation) Freeze(now time.Time) {
	if a.Active == "" || a.started.IsZero() {
		return
	}
	a.ElapsedMS = now.Sub(a.started).Milliseconds()
}

// Thaw restores timing after deserialization by backdating the start to
// now minus the frozen elapsed time.
func (a *Animation) Thaw(now time.Time) {
	if a.Active == "" {
		return
	}
	a.started = now.Add(-time.Duration(a.ElapsedMS) * time.Millisecond)
}
