/*
Package compass implements the direction algebra underlying grafigo's
path-discovery engine: the eight compass directions, their turns, and
the point arithmetic needed to walk a grid one neighbor at a time.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package compass

import "fmt"

// Direction is one of the eight compass points.
type Direction uint8

// The eight compass directions, ordered clockwise starting at North so that
// veering CW/CCW is simply +1/-1 modulo 8.
const (
	N Direction = iota
	NE
	E
	SE
	S
	SW
	W
	NW
	numDirections = 8
)

// Turn identifies a rotation applied to a Direction.
type Turn int

const (
	CW  Turn = 1  // one eighth-turn clockwise
	CCW Turn = -1 // one eighth-turn counter-clockwise
)

var names = [numDirections]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

func (d Direction) String() string {
	if int(d) >= numDirections {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return names[d]
}

// All returns the eight compass directions in clockwise order, starting at N.
func All() [numDirections]Direction {
	return [numDirections]Direction{N, NE, E, SE, S, SW, W, NW}
}

// Reverse returns the opposite direction (180°).
func (d Direction) Reverse() Direction {
	return Direction((uint8(d) + 4) % numDirections)
}

// Veer rotates d by one eighth-turn (45°) in the given direction.
func (d Direction) Veer(t Turn) Direction {
	return Direction((int(d) + int(t) + numDirections) % numDirections)
}

// SharpTurn rotates d by 135°: d.SharpTurn(t) == d.Reverse().Veer(t.Reverse()).
func (d Direction) SharpTurn(t Turn) Direction {
	return d.Reverse().Veer(t.Reverse())
}

// Reverse flips a Turn's handedness.
func (t Turn) Reverse() Turn {
	return -t
}

// IsDiagonal reports whether d points along one of the four diagonals.
func (d Direction) IsDiagonal() bool {
	return d == NE || d == SE || d == SW || d == NW
}

// VerNorth is the vertical projection of d onto {-1,0,1}: -1 means "moves
// north" (decreasing row), +1 "moves south", 0 neither.
func (d Direction) VerNorth() int {
	switch d {
	case N, NE, NW:
		return -1
	case S, SE, SW:
		return 1
	default:
		return 0
	}
}

// HorEast is the horizontal projection of d onto {-1,0,1}: +1 means "moves
// east" (increasing column), -1 "moves west", 0 neither.
func (d Direction) HorEast() int {
	switch d {
	case E, NE, SE:
		return 1
	case W, NW, SW:
		return -1
	default:
		return 0
	}
}

// Point is a (column, row) pair using 1-based indexing. Negative or
// out-of-grid values are legal so that trajectory arithmetic (e.g. during
// tie-breaking) never needs a separate "off grid" sentinel.
type Point struct {
	Col, Row int
}

// Neighbor returns the point one step away from p in direction d.
func (p Point) Neighbor(d Direction) Point {
	return Point{Col: p.Col + d.HorEast(), Row: p.Row + d.VerNorth()}
}

// Towards returns the compass direction from p to other. It fails if the two
// points are not aligned on a row, a column, or an exact diagonal, or if they
// are equal.
func (p Point) Towards(other Point) (Direction, error) {
	dc := other.Col - p.Col
	dr := other.Row - p.Row
	switch {
	case dc == 0 && dr == 0:
		return 0, fmt.Errorf("compass: %v and %v are the same point", p, other)
	case dc == 0:
		if dr < 0 {
			return N, nil
		}
		return S, nil
	case dr == 0:
		if dc > 0 {
			return E, nil
		}
		return W, nil
	case dc == dr:
		if dc > 0 {
			return SE, nil
		}
		return NW, nil
	case dc == -dr:
		if dc > 0 {
			return NE, nil
		}
		return SW, nil
	default:
		return 0, fmt.Errorf("compass: %v and %v are not compass-aligned", p, other)
	}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

// Vector is a (point, direction) pair: a position together with a heading.
type Vector struct {
	At  Point
	Dir Direction
}

// Step advances the vector by one neighbor cell along its direction,
// returning the resulting point (the direction is unchanged; callers that
// need to turn construct a new Vector).
func (v Vector) Step() Point {
	return v.At.Neighbor(v.Dir)
}
