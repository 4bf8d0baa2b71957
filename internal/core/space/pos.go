// Package space provides grid positions, orientations and directions.
package space

import (
	"fmt"
	"math"
)

// GamePos is a position or displacement on the world grid. Occupants always
// sit on integer-valued positions; fractional values only appear transiently
// (cursor picking, camera interpolation).
type GamePos struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Origin is the zero position.
var Origin = GamePos{}

// Pos builds a GamePos from integer grid coordinates.
func Pos(x, y int) GamePos {
	return GamePos{X: float32(x), Y: float32(y)}
}

func (p GamePos) Add(o GamePos) GamePos { return GamePos{p.X + o.X, p.Y + o.Y} }
func (p GamePos) Sub(o GamePos) GamePos { return GamePos{p.X - o.X, p.Y - o.Y} }
func (p GamePos) Mul(f float32) GamePos { return GamePos{p.X * f, p.Y * f} }
func (p GamePos) Div(f float32) GamePos { return GamePos{p.X / f, p.Y / f} }
func (p GamePos) Neg() GamePos          { return GamePos{-p.X, -p.Y} }

// Floor truncates both components toward negative infinity.
func (p GamePos) Floor() GamePos {
	return GamePos{floor(p.X), floor(p.Y)}
}

// Round rounds each component with floor(v + 0.5). Negative halves round up:
// -0.5 becomes 0.
func (p GamePos) Round() GamePos {
	return GamePos{floor(p.X + 0.5), floor(p.Y + 0.5)}
}

func (p GamePos) Abs() GamePos {
	return GamePos{float32(math.Abs(float64(p.X))), float32(math.Abs(float64(p.Y)))}
}

// Magnitude is the euclidean length.
func (p GamePos) Magnitude() float32 {
	return float32(math.Hypot(float64(p.X), float64(p.Y)))
}

// Distance is the euclidean distance between two positions.
func (p GamePos) Distance(o GamePos) float32 {
	return p.Sub(o).Magnitude()
}

// LargestComponentDifference returns max(|dx|, |dy|), the number of king
// moves between two cells.
func (p GamePos) LargestComponentDifference(o GamePos) float32 {
	d := p.Sub(o).Abs()
	if d.X > d.Y {
		return d.X
	}
	return d.Y
}

// IsZero reports whether both components are zero.
func (p GamePos) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Cell returns the integer grid coordinates of the rounded position.
func (p GamePos) Cell() (int, int) {
	r := p.Round()
	return int(r.X), int(r.Y)
}

func (p GamePos) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func floor(v float32) float32 {
	return float32(math.Floor(float64(v)))
}
