package game

import (
	"chosenoffset.com/tilewalk/internal/core/input"
	"chosenoffset.com/tilewalk/internal/render"
)

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}

// Binding ties a physical key to a logical command.
type Binding struct {
	Key     render.Key
	Command input.Command
}

// DefaultBindings is the keyboard layout. Several keys may map to the same
// command.
var DefaultBindings = []Binding{
	{render.KeyW, input.CmdUp},
	{render.KeyUp, input.CmdUp},
	{render.KeyS, input.CmdDown},
	{render.KeyDown, input.CmdDown},
	{render.KeyA, input.CmdLeft},
	{render.KeyLeft, input.CmdLeft},
	{render.KeyD, input.CmdRight},
	{render.KeyRight, input.CmdRight},
	{render.KeyE, input.CmdInteract},
	{render.KeySpace, input.CmdInteract},
	{render.KeyH, input.CmdCycleHat},
	{render.KeyF5, input.CmdSave},

	// Editor
	{render.KeyDelete, input.CmdRemove},
	{render.KeyP, input.CmdSample},
	{render.KeyC, input.CmdCycleKind},
	{render.KeyR, input.CmdRotateCW},
	{render.KeyQ, input.CmdRotateCCW},
	{render.KeyM, input.CmdMark},
	{render.KeyTab, input.CmdToggleLayer},
}

// Mouse buttons used by the editor.
var mouseBindings = []struct {
	Button  render.MouseButton
	Command input.Command
}{
	{render.MouseButtonLeft, input.CmdStamp},
	{render.MouseButtonRight, input.CmdRemove},
	{render.MouseButtonMiddle, input.CmdSample},
}
