package render

import (
	"image/color"
	"testing"
)

func TestFillBinaryRGBA(t *testing.T) {
	cells := []uint8{0, 1, 0, 1}
	buf := make([]byte, 4*len(cells))
	on := color.RGBA{R: 0x20, G: 0x40, B: 0x80, A: 0xff}
	off := color.Black

	fillBinaryRGBA(buf, cells, on, off)

	for i, c := range cells {
		base := i * 4
		got := [4]byte{buf[base], buf[base+1], buf[base+2], buf[base+3]}
		want := [4]byte{0, 0, 0, 0xff}
		if c != 0 {
			want = [4]byte{0x20, 0x40, 0x80, 0xff}
		}
		if got != want {
			t.Fatalf("pixel %d = %v, want %v", i, got, want)
		}
	}
}
