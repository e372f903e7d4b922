// Package grid provides the jagged tile map: directions, positions, rows,
// and the maze with its validity checks and edge-wrap search.
package grid

import "fmt"

// Direction is one of the four facings an agent can hold on the map.
type Direction int

// The four facings, in clockwise order starting from Up.
const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists all facings in clockwise order starting from Up.
var Directions = []Direction{Up, Right, Down, Left}

// Rotate returns the direction 90 degrees clockwise from d.
//
// Postcondition: d.Rotate().Rotate().Rotate().Rotate() == d.
func (d Direction) Rotate() Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	case Left:
		return Up
	default:
		panic(fmt.Sprintf("grid: Rotate called on invalid direction %d", int(d)))
	}
}

// TurnRight is one clockwise rotation.
func (d Direction) TurnRight() Direction {
	return d.Rotate()
}

// TurnLeft is three clockwise rotations.
func (d Direction) TurnLeft() Direction {
	return d.Rotate().Rotate().Rotate()
}

// IsVertical reports whether d moves along a column.
func (d Direction) IsVertical() bool {
	return d == Up || d == Down
}

// Delta returns the unit step for d. Rows grow downward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		panic(fmt.Sprintf("grid: Delta called on invalid direction %d", int(d)))
	}
}

// Facing returns the scoring value of d: Right=0, Down=1, Left=2, Up=3.
func (d Direction) Facing() int {
	switch d {
	case Right:
		return 0
	case Down:
		return 1
	case Left:
		return 2
	case Up:
		return 3
	default:
		panic(fmt.Sprintf("grid: Facing called on invalid direction %d", int(d)))
	}
}

// String returns the lowercase name of d.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Position is a 1-based (column, row) coordinate on the map.
type Position struct {
	X int
	Y int
}

// Step returns the naive neighbor of p in direction d, which may be off-map.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// String renders p as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
