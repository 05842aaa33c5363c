// Package grid implements a fixed-size toroidal cell grid and its generation rule
//
// Coordinates wrap on both axes, so the grid is topologically a torus. All
// coordinate production goes through Left/Right/Up/Down, which keep results in
// range; Get and Toggle panic on out-of-range input.
package grid

import (
	"errors"
	"fmt"
)

// MaxDimension is the largest accepted width or height
const MaxDimension = 65535

// ErrDimensions is returned by New for a width or height outside [1, MaxDimension]
var ErrDimensions = errors.New("grid dimensions out of range")

// Cell is a single grid cell
type Cell struct {
	Alive bool
}

// Point is a grid coordinate
type Point struct {
	X, Y int
}

// CellReader is the read-only view consumed by renderers
type CellReader interface {
	Width() int
	Height() int
	Alive(x, y int) bool
}

// Grid is a row-major toroidal buffer of width*height cells
// Not safe for concurrent use; a single owner mutates it
type Grid struct {
	width, height int

	cells []Cell
	// next is the step target, swapped with cells after each generation
	next []Cell

	generation uint64
}

// New allocates a grid with all cells dead
func New(width, height int) (*Grid, error) {
	if width < 1 || width > MaxDimension || height < 1 || height > MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensions, width, height)
	}
	n := width * height
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, n),
		next:   make([]Cell, n),
	}, nil
}

// Width returns the number of columns
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows
func (g *Grid) Height() int { return g.height }

// Generation returns the number of steps since construction or the last Reset
func (g *Grid) Generation() uint64 { return g.generation }

func (g *Grid) index(x, y int) int {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		panic(fmt.Sprintf("grid: coordinate (%d,%d) outside %dx%d", x, y, g.width, g.height))
	}
	return y*g.width + x
}

// Get returns the cell at (x, y)
func (g *Grid) Get(x, y int) Cell {
	return g.cells[g.index(x, y)]
}

// Alive reports whether the cell at (x, y) is alive
func (g *Grid) Alive(x, y int) bool {
	return g.cells[g.index(x, y)].Alive
}

// Toggle flips the cell at (x, y) and returns its new state
func (g *Grid) Toggle(x, y int) bool {
	i := g.index(x, y)
	g.cells[i].Alive = !g.cells[i].Alive
	return g.cells[i].Alive
}

// Reset kills every cell and zeroes the generation counter
func (g *Grid) Reset() {
	clear(g.cells)
	g.generation = 0
}

// Population returns the number of live cells
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c.Alive {
			n++
		}
	}
	return n
}

// Left returns the column left of x, wrapping at 0
func (g *Grid) Left(x int) int {
	if x == 0 {
		return g.width - 1
	}
	return x - 1
}

// Right returns the column right of x, wrapping at width-1
func (g *Grid) Right(x int) int {
	if x+1 == g.width {
		return 0
	}
	return x + 1
}

// Up returns the row above y, wrapping at 0
func (g *Grid) Up(y int) int {
	if y == 0 {
		return g.height - 1
	}
	return y - 1
}

// Down returns the row below y, wrapping at height-1
func (g *Grid) Down(y int) int {
	if y+1 == g.height {
		return 0
	}
	return y + 1
}
