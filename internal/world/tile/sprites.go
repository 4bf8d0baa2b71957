package tile

import (
	"chosenoffset.com/tilewalk/internal/core/space"
	"chosenoffset.com/tilewalk/internal/world/animation"
)

// Sheet layout shared by every tile.
const (
	Sheet      = "tiles"
	IntervalMS = 100
)

var (
	FrameSize    = animation.Size{W: 7, H: 10}
	DefaultFrame = animation.Frame{Col: 5, Row: 0}
)

const (
	seqBase = "base"
	seqOpen = "open"
)

func still(col, row uint16) animation.Frame {
	return animation.Frame{Col: col, Row: row}
}

func matched(v space.Variant, col, row uint16) animation.Frame {
	c, r := space.MatchVariant(v, col, row)
	return animation.Frame{Col: c, Row: r}
}

func stairFrame(v space.Variant) animation.Frame {
	switch v {
	case space.Left, space.Right:
		return still(0, 1)
	case space.Top, space.Bottom:
		return still(2, 1)
	case space.CornerBL:
		return still(0, 3)
	case space.CornerBR:
		return still(2, 3)
	case space.CornerTR:
		return still(2, 2)
	case space.CornerTL:
		return still(0, 2)
	default:
		return still(0, 0)
	}
}

// DefaultAnimation builds the stock animation table for a kind and
// orientation.
func DefaultAnimation(k Kind, v space.Variant) animation.Animation {
	a := animation.New(Sheet, FrameSize, DefaultFrame, IntervalMS)

	switch k {
	case BaseGround:
		a.With(seqBase, true, still(0, 0))
	case BasePillar:
		a.With(seqBase, true, still(2, 0))
	case Door:
		a.With(seqBase, true, still(2, 5))
		a.With(seqOpen, true, still(2, 6))
	case Edge:
		a.With(seqBase, true, matched(v, 4, 1))
	case Grass:
		a.With(seqBase, true, matched(v, 10, 1))
	case InvisWall:
		a.With(seqBase, true, still(17, 0))
	case Moon:
		a.With(seqBase, true, still(6, 0))
	case Sun:
		a.With(seqBase, true, still(8, 0))
	case SmileyMan:
		a.With(seqBase, true, still(0, 7))
	case Stair:
		a.With(seqBase, true, stairFrame(v))
	case Warp:
		a.With(seqBase, true, still(2, 4))
	case Boulder:
		a.With(seqBase, true, matched(v, 4, 10))
	case CliffEdge:
		a.With(seqBase, true, matched(v, 10, 4))
	case CliffFace:
		a.With(seqBase, true, still(0, 6))
	case Rock:
		a.With(seqBase, true, still(0, 4))
	case HoneyComb:
		a.With(seqBase, true, matched(v, 4, 4))
	case Arrow:
		a.With(seqBase, true, matched(v, 4, 7))
	}
	return *a
}

// RequiredSequences lists the animation names the kind's behaviour selects.
func (k Kind) RequiredSequences() []string {
	if k == Door {
		return []string{seqBase, seqOpen}
	}
	return []string{seqBase}
}
