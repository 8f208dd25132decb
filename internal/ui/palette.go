package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/wordle/internal/gamedata"
	"github.com/samdwyer/wordle/internal/wordle"
)

// Palette maps letter statuses and messages to terminal colours.
type Palette struct {
	Background tcell.Color
	Text       tcell.Color
	Win        tcell.Color
	Info       tcell.Color
	Warning    tcell.Color
	tiles      map[wordle.LetterStatus]tcell.Color
}

// NewPalette decodes the hex colours of a palette file.
func NewPalette(f gamedata.PaletteFile) (Palette, error) {
	entries := []struct {
		name string
		hex  string
	}{
		{"background", f.Background},
		{"text", f.Text},
		{"default", f.Default},
		{"wrongLetter", f.WrongLetter},
		{"wrongPosition", f.WrongPosition},
		{"correct", f.Correct},
		{"win", f.Win},
		{"info", f.Info},
		{"warning", f.Warning},
	}
	colors := make(map[string]tcell.Color, len(entries))
	for _, e := range entries {
		c, err := gamedata.ParseHexColor(e.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("palette %s: %w", e.name, err)
		}
		colors[e.name] = c
	}

	return Palette{
		Background: colors["background"],
		Text:       colors["text"],
		Win:        colors["win"],
		Info:       colors["info"],
		Warning:    colors["warning"],
		tiles: map[wordle.LetterStatus]tcell.Color{
			wordle.StatusDefault:       colors["default"],
			wordle.StatusWrongLetter:   colors["wrongLetter"],
			wordle.StatusWrongPosition: colors["wrongPosition"],
			wordle.StatusCorrect:       colors["correct"],
		},
	}, nil
}

// DefaultPalette returns the embedded palette, panicking if it is malformed.
func DefaultPalette() Palette {
	p, err := NewPalette(gamedata.MustLoadPalette())
	if err != nil {
		panic(err)
	}
	return p
}

// Tile returns the background colour of a tile with the given status.
func (p Palette) Tile(status wordle.LetterStatus) tcell.Color {
	if c, ok := p.tiles[status]; ok {
		return c
	}
	return p.tiles[wordle.StatusDefault]
}
