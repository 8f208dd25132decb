package game

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/wordle/internal/wordle"
)

// translateKey maps a key press to a game event. Keys with no meaning in the
// game report false.
func translateKey(key tcell.Key, r rune) (wordle.Event, bool) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return wordle.QuitEvent(), true
	case tcell.KeyEnter:
		return wordle.SubmitEvent(), true
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		return wordle.BackspaceEvent(), true
	case tcell.KeyRune:
		// Word lists are lower case; the renderer shows upper case.
		return wordle.LetterEvent(unicode.ToLower(r)), true
	default:
		return wordle.Event{}, false
	}
}
