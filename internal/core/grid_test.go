package core

import "testing"

func TestGridIndexing(t *testing.T) {
	g := NewGrid(4, 3)
	if g.Index(3, 2) != 11 {
		t.Fatalf("Index(3,2) = %d, want 11", g.Index(3, 2))
	}

	g.Set(1, 2, true)
	if !g.At(1, 2) {
		t.Fatal("Set/At mismatch")
	}
	if g.Cells()[g.Index(1, 2)] != 1 {
		t.Fatal("Set must write the backing slice")
	}
	g.Set(1, 2, false)
	if g.At(1, 2) {
		t.Fatal("Set(false) must kill the cell")
	}
}

func TestGridInBounds(t *testing.T) {
	g := NewGrid(4, 3)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true}, {3, 2, true},
		{-1, 0, false}, {0, -1, false},
		{4, 0, false}, {0, 3, false},
	}
	for _, tc := range cases {
		if got := g.InBounds(tc.x, tc.y); got != tc.want {
			t.Errorf("InBounds(%d,%d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestGridPopulationAndClear(t *testing.T) {
	g := NewGrid(4, 4)
	g.Set(0, 0, true)
	g.Set(3, 3, true)
	if g.Population() != 2 {
		t.Fatalf("Population = %d, want 2", g.Population())
	}

	g.Clear()
	if g.Population() != 0 {
		t.Fatal("Clear must kill every cell")
	}
}

func TestGridCopyFrom(t *testing.T) {
	src := NewGrid(3, 3)
	src.Set(1, 1, true)
	dst := NewGrid(3, 3)
	dst.CopyFrom(src)
	if !dst.At(1, 1) || dst.Population() != 1 {
		t.Fatal("CopyFrom must duplicate src cells")
	}

	src.Set(0, 0, true)
	if dst.At(0, 0) {
		t.Fatal("grids must not share backing storage after CopyFrom")
	}
}

func TestNewGridClampsDimensions(t *testing.T) {
	g := NewGrid(0, -5)
	if g.W != 1 || g.H != 1 {
		t.Fatalf("got %dx%d, want 1x1", g.W, g.H)
	}
}
