package term

import (
	"github.com/gdamore/tcell/v2"

	"gridsnake/internal/input"
)

// MapKey translates a terminal key press into a game event.
func MapKey(ev *tcell.EventKey) input.Event {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.Up
	case tcell.KeyDown:
		return input.Down
	case tcell.KeyLeft:
		return input.Left
	case tcell.KeyRight:
		return input.Right
	case tcell.KeyEnter:
		return input.Restart
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.Quit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'k':
			return input.Up
		case 's', 'j':
			return input.Down
		case 'a', 'h':
			return input.Left
		case 'd', 'l':
			return input.Right
		case 'r', 'R':
			return input.Restart
		case 'q', 'Q':
			return input.Quit
		}
	}
	return input.None
}
