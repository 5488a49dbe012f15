// Package render rasterizes the demo's continuous shapes into a monochrome
// pixel grid and packs the grid into printable glyph rows for the terminal.
package render

// Cell is one pixel of the grid, background or foreground.
type Cell uint8

const (
	Background Cell = iota
	Foreground
)

// Grid is a fixed-size monochrome pixel buffer. It is owned by the render
// pipeline and rebuilt every frame; dimensions never change after creation.
type Grid struct {
	cells  []Cell
	width  int
	height int
}

// NewGrid creates a cleared grid of the given dimensions.
func NewGrid(width, height int) *Grid {
	return &Grid{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Clear sets every cell to v using exponential copy.
func (g *Grid) Clear(v Cell) {
	if len(g.cells) == 0 {
		return
	}
	g.cells[0] = v
	for filled := 1; filled < len(g.cells); filled *= 2 {
		copy(g.cells[filled:], g.cells[:filled])
	}
}

// Set writes a cell if (x, y) is in bounds. Out-of-bounds writes are
// silent no-ops; the rasterizers rely on this instead of guarding every
// write themselves.
func (g *Grid) Set(x, y int, v Cell) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.cells[y*g.width+x] = v
}

// Get returns the cell at (x, y), or (Background, false) out of bounds.
func (g *Grid) Get(x, y int) (Cell, bool) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return Background, false
	}
	return g.cells[y*g.width+x], true
}
