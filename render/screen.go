package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/torus/game"
	"github.com/lixenwraith/torus/grid"
)

// Box-drawing frame characters
const (
	horzBoundary      = '─'
	vertBoundary      = '│'
	topLeftCorner     = '┌'
	topRightCorner    = '┐'
	bottomLeftCorner  = '└'
	bottomRightCorner = '┘'
)

// Glyphs are the characters drawn for live and dead cells
type Glyphs struct {
	Alive rune
	Dead  rune
}

// DefaultGlyphs returns the full block for live cells and a light shade for dead ones
func DefaultGlyphs() Glyphs {
	return Glyphs{Alive: '█', Dead: '░'}
}

// ScreenRenderer draws a bordered grid onto a tcell screen
// Cell (x, y) lands at screen (x+1, y+1); the status line sits under the frame
type ScreenRenderer struct {
	screen tcell.Screen
	glyphs Glyphs

	width, height int
}

// NewScreenRenderer wraps an initialized screen
func NewScreenRenderer(screen tcell.Screen, glyphs Glyphs) *ScreenRenderer {
	if glyphs.Alive == 0 {
		glyphs.Alive = DefaultGlyphs().Alive
	}
	if glyphs.Dead == 0 {
		glyphs.Dead = DefaultGlyphs().Dead
	}
	return &ScreenRenderer{screen: screen, glyphs: glyphs}
}

// DrawFrame clears the screen and draws the border around a width x height interior
func (r *ScreenRenderer) DrawFrame(width, height int) error {
	r.width, r.height = width, height
	s := r.screen
	s.Clear()

	right, bottom := width+1, height+1
	s.SetContent(0, 0, topLeftCorner, nil, styleBorder)
	s.SetContent(right, 0, topRightCorner, nil, styleBorder)
	s.SetContent(0, bottom, bottomLeftCorner, nil, styleBorder)
	s.SetContent(right, bottom, bottomRightCorner, nil, styleBorder)

	for x := 1; x <= width; x++ {
		s.SetContent(x, 0, horzBoundary, nil, styleBorder)
		s.SetContent(x, bottom, horzBoundary, nil, styleBorder)
	}
	for y := 1; y <= height; y++ {
		s.SetContent(0, y, vertBoundary, nil, styleBorder)
		s.SetContent(right, y, vertBoundary, nil, styleBorder)
	}
	return nil
}

// DrawCells refreshes the interior and the status line, leaving the frame alone
func (r *ScreenRenderer) DrawCells(cells grid.CellReader, status game.Status) error {
	w, h := cells.Width(), cells.Height()
	if w != r.width || h != r.height {
		return fmt.Errorf("grid %dx%d does not match frame %dx%d", w, h, r.width, r.height)
	}

	s := r.screen
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if cells.Alive(x, y) {
				s.SetContent(x+1, y+1, r.glyphs.Alive, nil, styleAlive)
			} else {
				s.SetContent(x+1, y+1, r.glyphs.Dead, nil, styleDead)
			}
		}
	}

	r.drawStatus(h+2, status)
	return nil
}

func (r *ScreenRenderer) drawStatus(row int, status game.Status) {
	mode := "[paused]"
	style := styleStatus
	if status.Autorun {
		mode = "[autorun]"
		style = styleStatusAutorun
	}
	text := fmt.Sprintf("gen %d  pop %d  %s", status.Generation, status.Population, mode)

	// Truncated at the screen edge; the grid keeps priority over the status line
	screenW, _ := r.screen.Size()
	col := 0
	for _, ch := range text {
		if col >= screenW {
			break
		}
		r.screen.SetContent(col, row, ch, nil, style)
		col++
	}
	// Clear leftovers from a longer previous line
	for ; col < screenW; col++ {
		r.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault)
	}
}

// PlaceCaret shows the terminal cursor over grid cell (x, y)
func (r *ScreenRenderer) PlaceCaret(x, y int) error {
	r.screen.ShowCursor(x+1, y+1)
	return nil
}

// Flush pushes pending changes to the terminal
func (r *ScreenRenderer) Flush() error {
	r.screen.Show()
	return nil
}
