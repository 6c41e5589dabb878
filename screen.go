package termraster

import (
	"fmt"
	"strings"
)

// Screen is a row-major grid of cells. Cell (x, y) lives at index
// width*y + x.
//
// Screen is not safe for concurrent writes. Concurrent renders of an
// unmodified Screen are safe because rendering never mutates it.
type Screen[C Code] struct {
	cells  []Cell[C]
	width  int
	height int
}

// NewScreen creates a grid of w*h zero cells. Non-positive dimensions
// produce an empty grid.
func NewScreen[C Code](w, h int) *Screen[C] {
	if w <= 0 || h <= 0 {
		return &Screen[C]{}
	}
	return &Screen[C]{
		cells:  make([]Cell[C], w*h),
		width:  w,
		height: h,
	}
}

// Width returns the grid width in cells.
func (s *Screen[C]) Width() int { return s.width }

// Height returns the grid height in cells.
func (s *Screen[C]) Height() int { return s.height }

// Len returns the number of cells.
func (s *Screen[C]) Len() int { return len(s.cells) }

// Cells returns the row-major cell slice. Writes through it are visible
// to the grid.
func (s *Screen[C]) Cells() []Cell[C] { return s.cells }

func (s *Screen[C]) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Set writes c at (x, y). Out-of-range coordinates return ErrOutOfBounds
// and leave the grid untouched.
func (s *Screen[C]) Set(x, y int, c Cell[C]) error {
	if !s.inBounds(x, y) {
		return fmt.Errorf("set (%d,%d) on %dx%d screen: %w", x, y, s.width, s.height, ErrOutOfBounds)
	}
	s.cells[s.width*y+x] = c
	return nil
}

// At returns a pointer to the stored cell at (x, y) so callers can edit
// it in place. The second result is false when (x, y) is out of range.
func (s *Screen[C]) At(x, y int) (*Cell[C], bool) {
	if !s.inBounds(x, y) {
		return nil, false
	}
	return &s.cells[s.width*y+x], true
}

// Fill sets every cell to c.
func (s *Screen[C]) Fill(c Cell[C]) {
	for i := range s.cells {
		s.cells[i] = c
	}
}

// Clear resets every cell to the zero cell.
func (s *Screen[C]) Clear() {
	clear(s.cells)
}

// Release drops the cell buffer. The Screen stays usable as an empty
// 0x0 grid; releasing twice is a no-op.
func (s *Screen[C]) Release() {
	s.cells = nil
	s.width = 0
	s.height = 0
}

// Printable returns a colourless text snapshot of the grid with one line
// per row. Codes in [32, 255) are written as the rune of the same value;
// anything else becomes a space.
func (s *Screen[C]) Printable() string {
	var b strings.Builder
	b.Grow(len(s.cells) + s.height)
	for y := 0; y < s.height; y++ {
		row := s.cells[y*s.width : (y+1)*s.width]
		for _, c := range row {
			if printable(c.Char) {
				b.WriteRune(rune(c.Char))
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func printable[C Code](c C) bool {
	v := int64(c)
	return v >= 32 && v < 255
}
