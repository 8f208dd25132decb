// Package wordle implements the guess evaluation and turn state machine of a
// Wordle-style game. It knows nothing about terminals, colours or key codes.
package wordle

// LetterStatus classifies a guessed letter.
type LetterStatus int

const (
	// StatusDefault is the status of a letter that has not been evaluated.
	StatusDefault LetterStatus = iota
	// StatusWrongLetter means the letter does not occur in the secret word.
	StatusWrongLetter
	// StatusWrongPosition means the letter occurs elsewhere in the secret word.
	StatusWrongPosition
	// StatusCorrect means the letter is at its position in the secret word.
	StatusCorrect
)

// String returns a human-readable status name.
func (s LetterStatus) String() string {
	switch s {
	case StatusDefault:
		return "default"
	case StatusWrongLetter:
		return "wrong_letter"
	case StatusWrongPosition:
		return "wrong_position"
	case StatusCorrect:
		return "correct"
	default:
		return "unknown"
	}
}

// Letter is a single guessed character within an attempt.
type Letter struct {
	value  rune
	pos    int
	Status LetterStatus
}

// NewLetter creates an unevaluated letter at the given position.
func NewLetter(value rune, pos int) Letter {
	return Letter{value: value, pos: pos}
}

// Value returns the guessed character.
func (l Letter) Value() rune { return l.value }

// Pos returns the zero-based index of the letter within its attempt.
func (l Letter) Pos() int { return l.pos }
