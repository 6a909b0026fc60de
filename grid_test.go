package tin

import (
	"strings"
	"testing"
)

func TestNewHeightGrid_ValidatesShape(t *testing.T) {
	if _, err := NewHeightGrid(make([]float64, 4), 2, 2); err != nil {
		t.Errorf("unexpected error for a well-formed 2x2 grid: %v", err)
	}
	if _, err := NewHeightGrid(make([]float64, 3), 2, 2); err != ErrDataLength {
		t.Errorf("err = %v, want ErrDataLength", err)
	}
	if _, err := NewHeightGrid(make([]float64, 1), 1, 1); err != ErrGridTooSmall {
		t.Errorf("err = %v, want ErrGridTooSmall", err)
	}
}

func TestHeightGrid_HeightAtIsRowMajor(t *testing.T) {
	g, err := NewHeightGrid([]float64{0, 1, 2, 3, 4, 5}, 3, 2)
	if err != nil {
		t.Fatal(err)
	}
	if got := g.HeightAt(2, 1); got != 5 {
		t.Errorf("HeightAt(2,1) = %v, want 5", got)
	}
	if got := g.HeightAt(0, 0); got != 0 {
		t.Errorf("HeightAt(0,0) = %v, want 0", got)
	}
}

func TestLoadASCGrid_ParsesHeaderAndSamples(t *testing.T) {
	src := `ncols 3
nrows 2
xllcorner 0
yllcorner 0
cellsize 1
NODATA_value -9999
1 2 3
4 5 6
`
	g, err := LoadASCGrid(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if g.Width() != 3 || g.Height() != 2 {
		t.Fatalf("dims = (%d,%d), want (3,2)", g.Width(), g.Height())
	}
	if got := g.HeightAt(0, 0); got != 1 {
		t.Errorf("HeightAt(0,0) = %v, want 1", got)
	}
	if got := g.HeightAt(2, 1); got != 6 {
		t.Errorf("HeightAt(2,1) = %v, want 6", got)
	}
}

func TestLoadASCGrid_RejectsMalformedHeader(t *testing.T) {
	src := "ncols 3 extra\nnrows 2\n"
	if _, err := LoadASCGrid(strings.NewReader(src)); err == nil {
		t.Fatal("expected an error for a malformed header line")
	}
}
