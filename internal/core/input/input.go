// Package input defines the logical commands the simulation understands and
// the per-step snapshot the host passes in. Nothing here reads devices.
package input

import (
	"time"

	"chosenoffset.com/tilewalk/internal/core/space"
)

// Command is a logical input, independent of the physical key bound to it.
type Command int

const (
	CmdNone Command = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdInteract
	CmdCycleHat
	CmdSave

	// Editor commands
	CmdStamp
	CmdRemove
	CmdSample
	CmdCycleKind
	CmdRotateCW
	CmdRotateCCW
	CmdMark
	CmdToggleLayer
)

// Direction maps a movement command to its direction. Non-movement commands
// map to DirNone.
func (c Command) Direction() space.Direction {
	switch c {
	case CmdUp:
		return space.DirUp
	case CmdDown:
		return space.DirDown
	case CmdLeft:
		return space.DirLeft
	case CmdRight:
		return space.DirRight
	default:
		return space.DirNone
	}
}

// IsEditor reports whether the command belongs to the level editor.
func (c Command) IsEditor() bool {
	return c >= CmdStamp && c <= CmdToggleLayer
}

// Input is everything the simulation needs from the host for one step.
type Input struct {
	Pressed  []Command
	Released []Command
	// Cursor is the world-space position under the pointer.
	Cursor space.GamePos
	Now    time.Time
}

// Has reports whether cmd was pressed this step.
func (in Input) Has(cmd Command) bool {
	for _, c := range in.Pressed {
		if c == cmd {
			return true
		}
	}
	return false
}
