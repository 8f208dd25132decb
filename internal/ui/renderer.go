package ui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/wordle/internal/wordle"
)

const (
	tileWidth = 3 // letter centred in a three-cell block
	tileGap   = 1
	rowGap    = 1

	headerY = 1
	boardY  = 3
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	palette Palette
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Render draws the board, the attempts counter and any hint to the screen.
func (r *Renderer) Render(snap wordle.Snapshot) {
	r.screen.Clear()

	width, _ := r.screen.Size()
	base := r.screen.Style()

	if snap.IsWin {
		r.centerText(width, headerY, "YOU WIN!!!", base.Foreground(r.palette.Win).Bold(true))
	} else {
		r.centerText(width, headerY, fmt.Sprintf("Attempts left: %d", snap.AttemptsLeft), base.Foreground(r.palette.Info))
	}

	y := boardY
	for _, row := range snap.Rows {
		r.drawRow(width, y, row)
		y += 1 + rowGap
	}

	if snap.Secret != "" {
		r.centerText(width, y, "The word was: "+strings.ToUpper(snap.Secret), base.Foreground(r.palette.Warning).Bold(true))
		y++
	}
	if snap.NeedsMoreLetters {
		r.centerText(width, y, "Fill all letters!", base.Foreground(r.palette.Text).Bold(true))
	}
	y += 2
	r.centerText(width, y, "Enter: submit  Backspace: erase  Esc: quit", base.Foreground(r.palette.Info))

	r.screen.Show()
}

// TileOrigin returns the screen position of the first cell of a tile.
func TileOrigin(screenWidth, wordLength, row, col int) (x, y int) {
	return boardLeft(screenWidth, wordLength) + col*(tileWidth+tileGap), boardY + row*(1+rowGap)
}

func boardLeft(screenWidth, wordLength int) int {
	boardWidth := wordLength*tileWidth + (wordLength-1)*tileGap
	return max(0, (screenWidth-boardWidth)/2)
}

// drawRow draws one attempt as a line of coloured tiles.
func (r *Renderer) drawRow(width, y int, row []wordle.Cell) {
	x := boardLeft(width, len(row))
	for _, cell := range row {
		style := tcell.StyleDefault.
			Background(r.palette.Tile(cell.Status)).
			Foreground(r.palette.Text).
			Bold(true)
		ch := ' '
		if cell.Char != 0 {
			ch = unicode.ToUpper(cell.Char)
		}
		r.screen.SetContent(x, y, ' ', style)
		r.screen.SetContent(x+1, y, ch, style)
		r.screen.SetContent(x+2, y, ' ', style)
		x += tileWidth + tileGap
	}
}

// centerText draws msg horizontally centred on line y.
func (r *Renderer) centerText(width, y int, msg string, style tcell.Style) {
	n := len([]rune(msg))
	r.screen.DrawText(max(0, (width-n)/2), y, msg, style)
}
