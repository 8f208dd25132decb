package wordle

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"
)

const (
	// DefaultWordLength is the number of letters in a secret word.
	DefaultWordLength = 6
	// DefaultAttemptsLimit is the number of guesses a player gets.
	DefaultAttemptsLimit = 6
)

var (
	// ErrInvalidConfig is returned when the board dimensions are not positive
	// or no word picker is supplied.
	ErrInvalidConfig = errors.New("invalid game config")
	// ErrEmptyWordList is returned when there is no word to pick from.
	ErrEmptyWordList = errors.New("empty word list")
	// ErrWordLength is returned when a candidate word has the wrong length.
	ErrWordLength = errors.New("word has wrong length")
)

// Config holds the board dimensions.
type Config struct {
	WordLength    int
	AttemptsLimit int
}

// DefaultConfig returns the standard six by six board.
func DefaultConfig() Config {
	return Config{
		WordLength:    DefaultWordLength,
		AttemptsLimit: DefaultAttemptsLimit,
	}
}

// Status is the phase of a game, derived from the attempt counter and the
// win flag.
type Status int

const (
	// StatusInProgress means guesses are still accepted.
	StatusInProgress Status = iota
	// StatusWon means the secret word was guessed.
	StatusWon
	// StatusLost means every attempt was used without a win.
	StatusLost
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in_progress"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// GameState owns the secret word and the board. All mutation goes through
// LetterInput, Backspace, Submit and Apply; every one of them silently ignores
// input that does not apply to the current state.
type GameState struct {
	cfg              Config
	secret           string
	attempts         []Attempt
	current          int
	isWin            bool
	needsMoreLetters bool
}

// NewGameState validates words against cfg and starts a game on the word
// chosen by pick.
func NewGameState(cfg Config, words []string, pick Picker) (*GameState, error) {
	if cfg.WordLength <= 0 || cfg.AttemptsLimit <= 0 {
		return nil, fmt.Errorf("%w: word length %d, attempts limit %d",
			ErrInvalidConfig, cfg.WordLength, cfg.AttemptsLimit)
	}
	if pick == nil {
		return nil, fmt.Errorf("%w: nil word picker", ErrInvalidConfig)
	}
	if len(words) == 0 {
		return nil, ErrEmptyWordList
	}
	for _, w := range words {
		if n := utf8.RuneCountInString(w); n != cfg.WordLength {
			return nil, fmt.Errorf("%w: %q has %d letters, want %d", ErrWordLength, w, n, cfg.WordLength)
		}
	}

	secret := pick(words)
	if n := utf8.RuneCountInString(secret); n != cfg.WordLength {
		return nil, fmt.Errorf("%w: picked %q has %d letters, want %d", ErrWordLength, secret, n, cfg.WordLength)
	}

	attempts := make([]Attempt, cfg.AttemptsLimit)
	for i := range attempts {
		attempts[i] = NewAttempt(i, cfg.WordLength)
	}

	return &GameState{
		cfg:      cfg,
		secret:   secret,
		attempts: attempts,
	}, nil
}

// MustNewGameState is NewGameState that panics on a configuration defect.
func MustNewGameState(cfg Config, words []string, pick Picker) *GameState {
	g, err := NewGameState(cfg, words, pick)
	if err != nil {
		panic(err)
	}
	return g
}

// LetterInput types ch into the current row. Non-letters, full rows and
// finished games are ignored.
func (g *GameState) LetterInput(ch rune) {
	if !unicode.IsLetter(ch) || g.Status() != StatusInProgress {
		return
	}
	g.needsMoreLetters = false
	g.attempts[g.current].AppendLetter(ch)
}

// Backspace erases the last letter of the current row.
func (g *GameState) Backspace() {
	if g.Status() != StatusInProgress {
		return
	}
	g.attempts[g.current].RemoveLastLetter()
}

// Submit evaluates the current row and moves on to the next one. An
// incomplete row only raises the NeedsMoreLetters hint.
func (g *GameState) Submit() {
	if g.Status() != StatusInProgress {
		return
	}
	row := &g.attempts[g.current]
	if !row.IsComplete() {
		g.needsMoreLetters = true
		return
	}
	g.isWin = row.evaluate(g.secret)
	g.current++
}

// Apply dispatches an input event and reports whether it asked to quit.
// Quitting itself is left to the caller.
func (g *GameState) Apply(ev Event) (quit bool) {
	switch ev.Kind {
	case EventLetter:
		g.LetterInput(ev.Char)
	case EventBackspace:
		g.Backspace()
	case EventSubmit:
		g.Submit()
	case EventQuit:
		return true
	}
	return false
}

// Status derives the game phase.
func (g *GameState) Status() Status {
	switch {
	case g.isWin:
		return StatusWon
	case g.current >= g.cfg.AttemptsLimit:
		return StatusLost
	default:
		return StatusInProgress
	}
}

// Config returns the board dimensions.
func (g *GameState) Config() Config { return g.cfg }

// SecretWord returns the word being guessed.
func (g *GameState) SecretWord() string { return g.secret }

// CurrentAttemptIndex returns the row receiving input, or AttemptsLimit once
// every row is used.
func (g *GameState) CurrentAttemptIndex() int { return g.current }

// IsWin reports whether the last submitted row was all correct.
func (g *GameState) IsWin() bool { return g.isWin }

// NeedsMoreLetters reports whether an incomplete row was just submitted.
func (g *GameState) NeedsMoreLetters() bool { return g.needsMoreLetters }

// AttemptsLeft returns how many rows have not been submitted.
func (g *GameState) AttemptsLeft() int { return g.cfg.AttemptsLimit - g.current }

// Attempt returns a copy of row i.
func (g *GameState) Attempt(i int) (Attempt, bool) {
	if i < 0 || i >= len(g.attempts) {
		return Attempt{}, false
	}
	a := g.attempts[i]
	a.letters = a.Letters()
	return a, true
}
