package space

// Direction is a cardinal movement direction.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Delta returns the one-cell movement for the direction.
func (d Direction) Delta() GamePos {
	switch d {
	case DirUp:
		return GamePos{0, -1}
	case DirDown:
		return GamePos{0, 1}
	case DirLeft:
		return GamePos{-1, 0}
	case DirRight:
		return GamePos{1, 0}
	default:
		return GamePos{}
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}
