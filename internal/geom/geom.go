// Package geom holds the board geometry shared by the engine and spawner.
package geom

import "fmt"

// Cell is an integer board coordinate. X grows to the right, Y grows down.
type Cell struct {
	X, Y int
}

// String renders the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is a unit step along one axis.
type Direction struct {
	DX, DY int
}

var (
	// Up moves towards row zero.
	Up = Direction{DX: 0, DY: -1}
	// Down moves away from row zero.
	Down = Direction{DX: 0, DY: 1}
	// Left moves towards column zero.
	Left = Direction{DX: -1, DY: 0}
	// Right moves away from column zero.
	Right = Direction{DX: 1, DY: 0}
)

// Valid reports whether d is one of the four orthogonal unit steps.
func (d Direction) Valid() bool {
	switch d {
	case Up, Down, Left, Right:
		return true
	}
	return false
}

// SameAxis reports whether d and o both move along X or both along Y. A turn
// onto the same axis is either a reversal or a repeat of the current heading.
func (d Direction) SameAxis(o Direction) bool {
	return (d.DX != 0 && o.DX != 0) || (d.DY != 0 && o.DY != 0)
}

// String names the four directions and falls back to the raw vector.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("(%d,%d)", d.DX, d.DY)
}

// Equals reports coordinate equality.
func Equals(a, b Cell) bool {
	return a.X == b.X && a.Y == b.Y
}

// InBounds reports whether c lies on a size×size board.
func InBounds(c Cell, size int) bool {
	return c.X >= 0 && c.X < size && c.Y >= 0 && c.Y < size
}

// OccupiedBy reports whether c equals any element of cells.
func OccupiedBy(cells []Cell, c Cell) bool {
	for _, cell := range cells {
		if Equals(cell, c) {
			return true
		}
	}
	return false
}

// Add returns the cell one step from c in direction d.
func Add(c Cell, d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}
