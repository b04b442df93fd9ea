package life

import (
	"golife/internal/core"
)

// Life implements Conway's Game of Life on a bounded grid. Edges are
// hard boundaries: an edge or corner cell has fewer than 8 neighbors
// and the missing ones contribute nothing to its count.
//
// The survival band deliberately diverges from the textbook rule: a
// living cell survives with 3 or 4 living neighbors, not 2 or 3. This
// matches the behavior of the program this one reimplements and is
// pinned by tests; do not "fix" it.
type Life struct {
	cur *core.Grid
	nxt *core.Grid
}

// New returns a Life simulation with the provided dimensions.
func New(w, h int) *Life {
	return &Life{cur: core.NewGrid(w, h), nxt: core.NewGrid(w, h)}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cur.W, H: l.cur.H} }

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Grid exposes the current grid, used by seeding before the run starts.
func (l *Life) Grid() *core.Grid { return l.cur }

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	rng := core.NewRNG(seed).Source()
	core.FillBinary(rng, l.cur.Cells())
}

// Step advances the simulation by one generation. The next generation
// is computed into the back buffer and the buffers are swapped, so the
// input generation is never mutated mid-step.
func (l *Life) Step() {
	next(l.nxt, l.cur)
	l.cur, l.nxt = l.nxt, l.cur
}

// next writes the generation following src into dst.
func next(dst, src *core.Grid) {
	w, h := src.W, src.H
	cur, nxt := src.Cells(), dst.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				ny := y + dy
				if ny < 0 || ny >= h {
					continue
				}
				for dx := -1; dx <= 1; dx++ {
					nx := x + dx
					if nx < 0 || nx >= w || (dx == 0 && dy == 0) {
						continue
					}
					if cur[ny*w+nx] != 0 {
						neighbors++
					}
				}
			}
			idx := y*w + x
			alive := cur[idx] != 0
			nxt[idx] = 0
			if alive && neighbors >= 3 && neighbors <= 4 {
				nxt[idx] = 1
			}
			if !alive && neighbors == 3 {
				nxt[idx] = 1
			}
		}
	}
}
