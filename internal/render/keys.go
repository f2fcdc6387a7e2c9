package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/DestinyFrog/Periodic-Tetris/internal/game"
)

// KeyAction maps a terminal key to a game action. Only the arrows move the
// piece.
func KeyAction(key tcell.Key) game.Action {
	switch key {
	case tcell.KeyLeft:
		return game.ActionLeft
	case tcell.KeyRight:
		return game.ActionRight
	case tcell.KeyUp:
		return game.ActionRotate
	}
	return game.ActionNone
}

// IsQuit reports whether the key ends the session.
func IsQuit(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return true
	case tcell.KeyRune:
		return r == 'q' || r == 'Q'
	}
	return false
}
