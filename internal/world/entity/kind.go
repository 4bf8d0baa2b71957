package entity

import "fmt"

// Kind enumerates every entity variant.
type Kind int

const (
	Player Kind = iota
	Walker
	Button
	OneWay
)

var kindNames = [...]string{
	Player: "player",
	Walker: "walker",
	Button: "button",
	OneWay: "one_way",
}

// Catalog is the editor cycling order. The player is not placeable.
var Catalog = []Kind{Walker, Button, OneWay}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("entity(%d)", int(k))
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
	return Walker, fmt.Errorf("unknown entity kind %q", name)
}

func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("invalid entity kind %d", int(k))
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

// Next returns the kind after k in Catalog. The player maps to the first
// catalog entry.
func (k Kind) Next() Kind {
	for i, c := range Catalog {
		if c == k {
			return Catalog[(i+1)%len(Catalog)]
		}
	}
	return Catalog[0]
}
