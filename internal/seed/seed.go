// Package seed produces the initial grid for a simulation, either by
// parsing a text pattern or by filling cells procedurally.
package seed

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/aquilax/go-perlin"

	"golife/internal/core"
)

// Pattern file alphabet: '#' is a living cell, '.' a dead cell, and a
// newline advances to the next row. Anything else is a parse error.

// FromFile parses the pattern file at path into g.
func FromFile(path string, g *core.Grid) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("seed file: %w", err)
	}
	defer f.Close()
	if err := Parse(f, g); err != nil {
		return fmt.Errorf("seed file %s: %w", path, err)
	}
	return nil
}

// Parse reads a pattern from r into g. The pattern must fit the grid:
// a row longer than the grid is wide, or more rows than the grid is
// tall, is an error rather than a silent clamp. On error g is left
// untouched; cells the pattern does not mention are dead.
func Parse(r io.Reader, g *core.Grid) error {
	scratch := core.NewGrid(g.W, g.H)
	br := bufio.NewReader(r)
	x, y := 0, 0
	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		switch c {
		case '\n':
			x = 0
			y++
		case '#', '.':
			if !scratch.InBounds(x, y) {
				return fmt.Errorf("pattern exceeds %dx%d grid at row %d, column %d", g.W, g.H, y+1, x+1)
			}
			scratch.Set(x, y, c == '#')
			x++
		default:
			return fmt.Errorf("unknown character %q at row %d, column %d", c, y+1, x+1)
		}
	}
	g.CopyFrom(scratch)
	return nil
}

// Random fills g with cells alive at probability one half, determined
// by the seed.
func Random(g *core.Grid, seed int64) {
	rng := core.NewRNG(seed).Source()
	core.FillBinary(rng, g.Cells())
}

// Noise fills g from a Perlin noise field: a cell lives where the
// noise at its position falls below density. Density 0 leaves the
// grid dead, 1 fills it. Scale stretches the field; larger values
// produce larger blobs.
func Noise(g *core.Grid, seed int64, scale, density float64) {
	if scale <= 0 {
		scale = 10
	}
	p := perlin.NewPerlin(2, 2, 3, seed)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			n := p.Noise2D(float64(x)/scale, float64(y)/scale)
			g.Set(x, y, n*0.5+0.5 < density)
		}
	}
}
