package wordle

// Cell is one tile of the board as seen by a renderer. Char is 0 for an
// empty slot.
type Cell struct {
	Char   rune
	Status LetterStatus
}

// Snapshot is a read-only copy of everything needed to draw the board.
type Snapshot struct {
	Rows             [][]Cell
	CurrentAttempt   int
	AttemptsLeft     int
	IsWin            bool
	NeedsMoreLetters bool
	Status           Status
	// Secret is only filled in once the game is lost.
	Secret           string
}

// Snapshot copies the current board.
func (g *GameState) Snapshot() Snapshot {
	rows := make([][]Cell, len(g.attempts))
	for i := range g.attempts {
		row := make([]Cell, g.cfg.WordLength)
		for _, l := range g.attempts[i].letters {
			row[l.pos] = Cell{Char: l.value, Status: l.Status}
		}
		rows[i] = row
	}

	snap := Snapshot{
		Rows:             rows,
		CurrentAttempt:   g.current,
		AttemptsLeft:     g.AttemptsLeft(),
		IsWin:            g.isWin,
		NeedsMoreLetters: g.needsMoreLetters,
		Status:           g.Status(),
	}
	if snap.Status == StatusLost {
		snap.Secret = g.secret
	}
	return snap
}
