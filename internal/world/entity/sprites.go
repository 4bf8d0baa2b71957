package entity

import (
	"chosenoffset.com/tilewalk/internal/core/space"
	"chosenoffset.com/tilewalk/internal/world/animation"
)

const (
	Sheet       = "entities"
	PlayerSheet = "player"
	IntervalMS  = 100
)

var (
	FrameSize          = animation.Size{W: 7, H: 10}
	PlayerFrameSize    = animation.Size{W: 7, H: 7}
	DefaultFrame       = animation.Frame{Col: 5, Row: 0}
	PlayerDefaultFrame = animation.Frame{Col: 9, Row: 0}
)

const seqBase = "base"

// Hats the player can wear. Each is also the name of its animation
// sequence.
const (
	HatNone     = "none"
	HatHelmet   = "helmet"
	HatAcid     = "acid"
	HatTeardrop = "teardrop"
)

// Hats is the cycling order used by CycleHat.
var Hats = []string{HatNone, HatHelmet, HatAcid, HatTeardrop}

// DefaultAnimation builds the stock animation table for a kind and
// orientation.
func DefaultAnimation(k Kind, v space.Variant) animation.Animation {
	if k == Player {
		a := animation.New(PlayerSheet, PlayerFrameSize, PlayerDefaultFrame, IntervalMS).
			With(HatNone, true, animation.Frame{Col: 2, Row: 3}).
			With(HatHelmet, true, animation.Frame{Col: 0, Row: 0}).
			With(HatAcid, true, animation.Frame{Col: 2, Row: 4}).
			With(HatTeardrop, true, animation.Frame{Col: 2, Row: 2})
		return *a
	}

	a := animation.New(Sheet, FrameSize, DefaultFrame, IntervalMS)
	switch k {
	case Walker:
		a.With(seqBase, true, animation.Frame{Col: 0, Row: 1})
	case Button:
		a.With(seqBase, true, animation.Frame{Col: 2, Row: 4})
	case OneWay:
		c, r := space.MatchVariant(v, 2, 1)
		a.With(seqBase, true, animation.Frame{Col: c, Row: r})
	}
	return *a
}

// RequiredSequences lists the animation names the kind's behaviour selects.
func (k Kind) RequiredSequences() []string {
	if k == Player {
		return Hats
	}
	return []string{seqBase}
}
