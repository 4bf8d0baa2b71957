package space

import "fmt"

// Variant is the orientation of an occupant. Edge-like tiles use it to pick
// the sprite matching their side of a shape; one-way occupants use its
// direction vector.
type Variant int

const (
	Left Variant = iota
	Right
	Top
	Bottom
	CornerBL
	CornerBR
	CornerTR
	CornerTL
	Center
)

var variantNames = [...]string{
	Left:     "left",
	Right:    "right",
	Top:      "top",
	Bottom:   "bottom",
	CornerBL: "corner_bl",
	CornerBR: "corner_br",
	CornerTR: "corner_tr",
	CornerTL: "corner_tl",
	Center:   "center",
}

// Variants lists every orientation in declaration order.
var Variants = []Variant{Left, Right, Top, Bottom, CornerBL, CornerBR, CornerTR, CornerTL, Center}

// Clockwise rotation order. Center is part of the cycle so the editor can
// reach every orientation from any other.
var cwOrder = []Variant{Center, CornerTL, Top, CornerTR, Right, CornerBR, Bottom, CornerBL, Left}

func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return fmt.Sprintf("variant(%d)", int(v))
	}
	return variantNames[v]
}

// ParseVariant converts a name produced by String back into a Variant.
func ParseVariant(name string) (Variant, error) {
	for v, n := range variantNames {
		if n == name {
			return Variant(v), nil
		}
	}
	return Center, fmt.Errorf("unknown variant %q", name)
}

func (v Variant) MarshalText() ([]byte, error) {
	if v < 0 || int(v) >= len(variantNames) {
		return nil, fmt.Errorf("invalid variant %d", int(v))
	}
	return []byte(variantNames[v]), nil
}

func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// RotateCW returns the next orientation clockwise.
func (v Variant) RotateCW() Variant {
	return cwOrder[(indexOf(v)+1)%len(cwOrder)]
}

// RotateCCW returns the next orientation counter-clockwise.
func (v Variant) RotateCCW() Variant {
	return cwOrder[(indexOf(v)+len(cwOrder)-1)%len(cwOrder)]
}

func indexOf(v Variant) int {
	for i, o := range cwOrder {
		if o == v {
			return i
		}
	}
	return 0
}

// DirectionVector is the unit offset the orientation faces. Screen
// coordinates are used, so Top is -Y. Center faces nowhere.
func (v Variant) DirectionVector() GamePos {
	switch v {
	case Left:
		return GamePos{-1, 0}
	case Right:
		return GamePos{1, 0}
	case Top:
		return GamePos{0, -1}
	case Bottom:
		return GamePos{0, 1}
	case CornerBL:
		return GamePos{-1, 1}
	case CornerBR:
		return GamePos{1, 1}
	case CornerTR:
		return GamePos{1, -1}
	case CornerTL:
		return GamePos{-1, -1}
	default:
		return GamePos{}
	}
}

// MatchVariant returns the sprite-sheet cell for an orientation within a
// 5x3 block whose top-left cell is (col, row):
//
//	TL  .  T  .  TR
//	L   .  C  .  R
//	BL  .  B  .  BR
func MatchVariant(v Variant, col, row uint16) (uint16, uint16) {
	switch v {
	case Top:
		return col + 2, row
	case Bottom:
		return col + 2, row + 2
	case Left:
		return col, row + 1
	case Right:
		return col + 4, row + 1
	case CornerBL:
		return col, row + 2
	case CornerBR:
		return col + 4, row + 2
	case CornerTR:
		return col + 4, row
	case CornerTL:
		return col, row
	default:
		return col + 2, row + 1
	}
}
