// Package input names the events a front end delivers to a game session.
package input

import "gridsnake/internal/geom"

// Event is a single user intent.
type Event int

const (
	None Event = iota
	Up
	Down
	Left
	Right
	Restart
	Quit
)

// Direction maps directional events to their unit step.
func (e Event) Direction() (geom.Direction, bool) {
	switch e {
	case Up:
		return geom.Up, true
	case Down:
		return geom.Down, true
	case Left:
		return geom.Left, true
	case Right:
		return geom.Right, true
	}
	return geom.Direction{}, false
}

func (e Event) String() string {
	switch e {
	case None:
		return "none"
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Restart:
		return "restart"
	case Quit:
		return "quit"
	}
	return "unknown"
}
