package tile

import "fmt"

// Kind enumerates every tile variant. The set is closed; behaviour switches
// on it exhaustively.
type Kind int

const (
	BaseGround Kind = iota
	BasePillar
	Door
	Edge
	Grass
	InvisWall
	Moon
	Sun
	SmileyMan
	Stair
	Warp
	Boulder
	CliffEdge
	CliffFace
	Rock
	HoneyComb
	Arrow
)

var kindNames = [...]string{
	BaseGround: "base_ground",
	BasePillar: "base_pillar",
	Door:       "door",
	Edge:       "edge",
	Grass:      "grass",
	InvisWall:  "invis_wall",
	Moon:       "moon",
	Sun:        "sun",
	SmileyMan:  "smiley_man",
	Stair:      "stair",
	Warp:       "warp",
	Boulder:    "boulder",
	CliffEdge:  "cliff_edge",
	CliffFace:  "cliff_face",
	Rock:       "rock",
	HoneyComb:  "honeycomb",
	Arrow:      "arrow",
}

// Catalog is the editor cycling order. Next wraps from the last entry to
// the first.
var Catalog = []Kind{
	BaseGround, BasePillar, Door, Edge, Grass, InvisWall, Moon, Sun,
	SmileyMan, Stair, Warp, Boulder, CliffEdge, CliffFace, Rock, HoneyComb, Arrow,
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("tile(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind converts a name produced by String back into a Kind.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return BaseGround, fmt.Errorf("unknown tile kind %q", name)
}

func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("invalid tile kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Next returns the kind after k in Catalog.
func (k Kind) Next() Kind {
	for i, c := range Catalog {
		if c == k {
			return Catalog[(i+1)%len(Catalog)]
		}
	}
	return Catalog[0]
}
