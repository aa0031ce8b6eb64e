package table

import (
	"github.com/signadot/rpgmap/rpg"
)

// Grid is a layered tile grid. Cells is indexed [z][y][x].
type Grid struct {
	Width  int
	Height int
	Layers int
	Cells  [][][]int64
}

// MaxCells bounds the size of a grid, counting an empty dimension as 1.
const MaxCells = 1 << 24

// Fits reports whether a grid of the given dimensions is within
// MaxCells.
func Fits(width, height, layers int) bool {
	n := 1
	for _, d := range [3]int{width, height, layers} {
		if d < 0 {
			return false
		}
		if d == 0 {
			continue
		}
		if d > MaxCells/n {
			return false
		}
		n *= d
	}
	return true
}

// New returns a zero filled grid. Callers check Fits first.
func New(width, height, layers int) *Grid {
	g := &Grid{Width: width, Height: height, Layers: layers}
	g.Cells = make([][][]int64, layers)
	for z := range g.Cells {
		g.Cells[z] = zeroLayer(width, height)
	}
	return g
}

// Default returns the grid used for maps which carry none.
func Default() *Grid {
	return New(rpg.DefaultGridWidth, rpg.DefaultGridHeight, rpg.DefaultGridLayers)
}

func zeroLayer(width, height int) [][]int64 {
	res := make([][]int64, height)
	for y := range res {
		res[y] = make([]int64, width)
	}
	return res
}

// At returns the cell at x, y, z, or 0 outside the stored cells.
func (g *Grid) At(x, y, z int) int64 {
	if z < 0 || z >= len(g.Cells) {
		return 0
	}
	layer := g.Cells[z]
	if y < 0 || y >= len(layer) {
		return 0
	}
	row := layer[y]
	if x < 0 || x >= len(row) {
		return 0
	}
	return row[x]
}

// WellFormed reports whether every layer has exactly Height rows of
// Width cells.
func (g *Grid) WellFormed() bool {
	if len(g.Cells) != g.Layers {
		return false
	}
	for _, layer := range g.Cells {
		if len(layer) != g.Height {
			return false
		}
		for _, row := range layer {
			if len(row) != g.Width {
				return false
			}
		}
	}
	return true
}

// Normalize returns a well formed copy of g: short rows are zero
// padded, long rows truncated, and missing rows or layers zero filled.
func (g *Grid) Normalize() *Grid {
	res := New(g.Width, g.Height, g.Layers)
	for z := range res.Cells {
		for y := range res.Cells[z] {
			row := res.Cells[z][y]
			for x := range row {
				row[x] = g.At(x, y, z)
			}
		}
	}
	return res
}
