package grid

// mooreOffsets lists each Moore neighborhood direction exactly once
var mooreOffsets = [8]Point{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Rule thresholds: more than birthAbove neighbors births or sustains a cell,
// fewer than starveBelow kills a live one, anything in between keeps state
const (
	birthAbove  = 2
	starveBelow = 2
)

// wrapX moves x by dx in {-1, 0, 1}
func (g *Grid) wrapX(x, dx int) int {
	switch dx {
	case -1:
		return g.Left(x)
	case 1:
		return g.Right(x)
	}
	return x
}

// wrapY moves y by dy in {-1, 0, 1}
func (g *Grid) wrapY(y, dy int) int {
	switch dy {
	case -1:
		return g.Up(y)
	case 1:
		return g.Down(y)
	}
	return y
}

// Neighbors returns the wrapped Moore neighborhood of (x, y)
// On grids narrower than 3 on an axis, wrapped coordinates may coincide or
// equal (x, y) itself; each offset is still counted once
func (g *Grid) Neighbors(x, y int) [8]Point {
	var out [8]Point
	for i, o := range mooreOffsets {
		out[i] = Point{X: g.wrapX(x, o.X), Y: g.wrapY(y, o.Y)}
	}
	return out
}

// LiveNeighbors counts live cells in the Moore neighborhood of (x, y)
func (g *Grid) LiveNeighbors(x, y int) int {
	n := 0
	for _, p := range g.Neighbors(x, y) {
		if g.cells[p.Y*g.width+p.X].Alive {
			n++
		}
	}
	return n
}

// nextState applies the update rule to one cell
func nextState(alive bool, n int) bool {
	switch {
	case n > birthAbove:
		return true
	case alive && n < starveBelow:
		return false
	default:
		return alive
	}
}

// Step advances the grid by one generation
// Every neighbor read sees the pre-step buffer; results land in the spare
// buffer which is then swapped in
func (g *Grid) Step() {
	for y := 0; y < g.height; y++ {
		row := y * g.width
		for x := 0; x < g.width; x++ {
			i := row + x
			g.next[i].Alive = nextState(g.cells[i].Alive, g.LiveNeighbors(x, y))
		}
	}
	g.cells, g.next = g.next, g.cells
	g.generation++
}
