package wordle

import "slices"

// Evaluate classifies letter guessed at pos against secret.
//
// A letter counts as correct only when pos is the index of its first
// occurrence in secret, so with repeated letters a later copy placed at its
// true position is reported as StatusWrongPosition. Positions are rune
// indices.
func Evaluate(letter rune, pos int, secret string) LetterStatus {
	first := slices.Index([]rune(secret), letter)
	switch {
	case first < 0:
		return StatusWrongLetter
	case first == pos:
		return StatusCorrect
	default:
		return StatusWrongPosition
	}
}
