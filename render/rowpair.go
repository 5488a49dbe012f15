package render

import "fmt"

// rowPairGlyphs maps a (top, bottom) cell pair to its display glyph,
// indexed top*2 + bottom with background=0 and foreground=1.
var rowPairGlyphs = [4]byte{' ', '_', '^', 'S'}

// RowPairScanner walks a grid two rows at a time, emitting one printable
// row per pair. It is single-pass like bufio.Scanner: create a fresh one
// from the current grid state for every frame.
type RowPairScanner struct {
	grid *Grid
	pair int
	row  []byte
	err  error
}

// NewRowPairScanner prepares a scan over the grid. The grid height must be
// even, since every output row consumes exactly two input rows.
func NewRowPairScanner(g *Grid) *RowPairScanner {
	s := &RowPairScanner{
		grid: g,
		row:  make([]byte, g.Width()),
	}
	if g.Height()%2 != 0 {
		s.err = fmt.Errorf("grid height must be even for row-pair encoding, got %d", g.Height())
	}
	return s
}

// Scan advances to the next encoded row pair. It returns false when the
// grid is exhausted or the scanner is in an error state.
func (s *RowPairScanner) Scan() bool {
	if s.err != nil || s.pair >= s.grid.Height()/2 {
		return false
	}

	w := s.grid.Width()
	topOff := (s.pair * 2) * w
	botOff := topOff + w
	for x := 0; x < w; x++ {
		top := s.grid.cells[topOff+x]
		bottom := s.grid.cells[botOff+x]
		s.row[x] = rowPairGlyphs[top*2+bottom]
	}
	s.pair++
	return true
}

// Bytes returns the current encoded row. The slice is reused by the next
// Scan call; copy it if it must outlive the iteration step.
func (s *RowPairScanner) Bytes() []byte {
	return s.row
}

// Text returns the current encoded row as a string.
func (s *RowPairScanner) Text() string {
	return string(s.row)
}

// Err reports a precondition failure detected at construction.
func (s *RowPairScanner) Err() error {
	return s.err
}
