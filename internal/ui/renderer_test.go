package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/wordle/internal/wordle"
)

func newTestScreen(t *testing.T) *Screen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := NewScreenFrom(sim, tcell.ColorWhite, tcell.ColorBlack)
	if err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	sim.SetSize(80, 24)
	t.Cleanup(screen.Close)
	return screen
}

// lineText reads back row y of the screen as a string.
func lineText(s *Screen, y int) string {
	width, _ := s.Size()
	var b strings.Builder
	for x := 0; x < width; x++ {
		r, _ := s.Content(x, y)
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

func newGame(t *testing.T) *wordle.GameState {
	t.Helper()
	return wordle.MustNewGameState(wordle.DefaultConfig(), []string{"python"}, wordle.FixedPicker("python"))
}

func TestPaletteTileColors(t *testing.T) {
	p := DefaultPalette()

	tests := []struct {
		status wordle.LetterStatus
		hex    int32
	}{
		{wordle.StatusDefault, 0xE5E7E9},
		{wordle.StatusWrongLetter, 0x7B7D7D},
		{wordle.StatusWrongPosition, 0xFFBD33},
		{wordle.StatusCorrect, 0x33FF57},
	}
	for _, tt := range tests {
		if got := p.Tile(tt.status); got != tcell.NewHexColor(tt.hex) {
			t.Errorf("Tile(%v) = %v, want %06X", tt.status, got, tt.hex)
		}
	}
}

func TestRenderBoard(t *testing.T) {
	screen := newTestScreen(t)
	palette := DefaultPalette()
	r := NewRenderer(screen, palette)

	g := newGame(t)
	for _, ch := range "pistol" {
		g.LetterInput(ch)
	}
	g.Submit()
	r.Render(g.Snapshot())

	if line := lineText(screen, headerY); !strings.Contains(line, "Attempts left: 5") {
		t.Errorf("Expected attempts counter in header, got %q", line)
	}

	width, _ := screen.Size()
	x, y := TileOrigin(width, 6, 0, 0)
	ch, style := screen.Content(x+1, y)
	if ch != 'P' {
		t.Errorf("Expected 'P' in first tile, got %q", ch)
	}
	want := tcell.StyleDefault.
		Background(palette.Tile(wordle.StatusCorrect)).
		Foreground(palette.Text).
		Bold(true)
	if style != want {
		t.Error("First tile should use the correct-letter colour")
	}

	x, y = TileOrigin(width, 6, 1, 0)
	if ch, _ := screen.Content(x+1, y); ch != ' ' {
		t.Errorf("Expected blank tile on second row, got %q", ch)
	}
}

func TestRenderMessages(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen, DefaultPalette())

	g := newGame(t)
	g.LetterInput('p')
	g.Submit()
	r.Render(g.Snapshot())

	found := false
	for y := 0; y < 24; y++ {
		if strings.Contains(lineText(screen, y), "Fill all letters!") {
			found = true
		}
	}
	if !found {
		t.Error("Expected fill hint after short submit")
	}

	for _, ch := range "ython" {
		g.LetterInput(ch)
	}
	g.Submit()
	r.Render(g.Snapshot())
	if line := lineText(screen, headerY); !strings.Contains(line, "YOU WIN!!!") {
		t.Errorf("Expected win banner, got %q", line)
	}
}

func TestRenderRevealsSecretOnLoss(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen, DefaultPalette())

	g := newGame(t)
	for i := 0; i < wordle.DefaultAttemptsLimit; i++ {
		for _, ch := range "gopher" {
			g.LetterInput(ch)
		}
		g.Submit()
	}
	r.Render(g.Snapshot())

	found := false
	for y := 0; y < 24; y++ {
		if strings.Contains(lineText(screen, y), "The word was: PYTHON") {
			found = true
		}
	}
	if !found {
		t.Error("Expected secret word to be revealed")
	}
}
