package core

// Grid stores a fixed-size 2D field of cell states in row-major order.
// A zero value means dead, anything else alive. Edges are hard
// boundaries; coordinates outside the grid are simply absent.
type Grid struct {
	W, H int
	data []uint8
}

// NewGrid allocates a grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At reports whether the cell at (x, y) is alive.
func (g *Grid) At(x, y int) bool { return g.data[y*g.W+x] != 0 }

// Set writes the cell at (x, y).
func (g *Grid) Set(x, y int, alive bool) {
	if alive {
		g.data[y*g.W+x] = 1
		return
	}
	g.data[y*g.W+x] = 0
}

// Clear fills the grid with dead cells.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Population returns the number of living cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.data {
		if c != 0 {
			n++
		}
	}
	return n
}

// CopyFrom overwrites this grid with the contents of src, which must
// share its dimensions.
func (g *Grid) CopyFrom(src *Grid) {
	copy(g.data, src.data)
}
