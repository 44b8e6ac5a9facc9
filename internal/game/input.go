package game

import (
	"github.com/gdamore/tcell/v2"

	"wireframe-crawler/internal/dungeon"
)

// Action is a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionForward
	ActionBackward
	ActionTurnLeft
	ActionTurnRight
	ActionStrafeLeft
	ActionStrafeRight
	ActionInteract
	ActionSearch
	ActionMap
	ActionWait
	ActionQuit
)

// keyToAction maps a tcell key event to a game action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionForward
	case tcell.KeyDown:
		return ActionBackward
	case tcell.KeyLeft:
		return ActionTurnLeft
	case tcell.KeyRight:
		return ActionTurnRight
	case tcell.KeyEnter:
		return ActionInteract
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	}

	// Rune keys.
	switch ev.Rune() {
	case 'w', 'W':
		return ActionForward
	case 's', 'S':
		return ActionBackward
	case 'a', 'A':
		return ActionTurnLeft
	case 'd', 'D':
		return ActionTurnRight
	case 'q':
		return ActionStrafeLeft
	case 'e', 'E':
		return ActionStrafeRight
	case 'f', 'F':
		return ActionSearch
	case 'm', 'M':
		return ActionMap
	case '.':
		return ActionWait
	case 'Q':
		return ActionQuit
	}
	return ActionNone
}

// moveDelta converts a movement action into a grid step relative to the
// current facing.
func moveDelta(a Action, f dungeon.Facing) (int, int) {
	fx, fy := f.Forward()
	rx, ry := f.Right()
	switch a {
	case ActionForward:
		return fx, fy
	case ActionBackward:
		return -fx, -fy
	case ActionStrafeRight:
		return rx, ry
	case ActionStrafeLeft:
		return -rx, -ry
	}
	return 0, 0
}
