package wordle

// Attempt is one row of the board: an ordered, gap-free run of letters that
// never grows past the configured word length.
type Attempt struct {
	letters []Letter
	num     int
	size    int
}

// NewAttempt creates an empty attempt for row num holding up to size letters.
func NewAttempt(num, size int) Attempt {
	return Attempt{
		letters: make([]Letter, 0, size),
		num:     num,
		size:    size,
	}
}

// AppendLetter adds ch at the end of the row. A full row is left unchanged.
func (a *Attempt) AppendLetter(ch rune) {
	if a.IsComplete() {
		return
	}
	a.letters = append(a.letters, NewLetter(ch, len(a.letters)))
}

// RemoveLastLetter drops the final letter. An empty row is left unchanged.
func (a *Attempt) RemoveLastLetter() {
	if len(a.letters) == 0 {
		return
	}
	a.letters = a.letters[:len(a.letters)-1]
}

// IsComplete reports whether every slot of the row is filled.
func (a *Attempt) IsComplete() bool {
	return len(a.letters) == a.size
}

// Len returns the number of letters typed so far.
func (a *Attempt) Len() int { return len(a.letters) }

// Size returns the maximum number of letters in the row.
func (a *Attempt) Size() int { return a.size }

// Num returns the row index of the attempt.
func (a *Attempt) Num() int { return a.num }

// LetterAt returns the letter in slot i and whether the slot is filled.
func (a *Attempt) LetterAt(i int) (Letter, bool) {
	if i < 0 || i >= len(a.letters) {
		return Letter{}, false
	}
	return a.letters[i], true
}

// Letters returns a copy of the letters typed so far.
func (a *Attempt) Letters() []Letter {
	out := make([]Letter, len(a.letters))
	copy(out, a.letters)
	return out
}

// Word concatenates the letter values in order.
func (a *Attempt) Word() string {
	runes := make([]rune, len(a.letters))
	for i, l := range a.letters {
		runes[i] = l.value
	}
	return string(runes)
}

// String implements fmt.Stringer.
func (a *Attempt) String() string { return a.Word() }

// evaluate scores every letter against secret and reports whether all of
// them are correct.
func (a *Attempt) evaluate(secret string) bool {
	allCorrect := true
	for i := range a.letters {
		l := &a.letters[i]
		l.Status = Evaluate(l.value, l.pos, secret)
		if l.Status != StatusCorrect {
			allCorrect = false
		}
	}
	return allCorrect
}
