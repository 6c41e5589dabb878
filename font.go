package termraster

import "fmt"

// Font is a fixed-size table of glyph bitmaps sharing one cell size.
// Glyph i of a font sliced from an atlas is the cell at
// row i/columns, column i%columns.
//
// Codes outside [0, Count()) and slots that were never assigned have no
// glyph and render as pure background.
type Font[C Code] struct {
	glyphs []*Bitmap
	cellW  int
	cellH  int
}

// NewFont creates an empty font with count slots of cellW x cellH glyphs.
// Negative sizes produce an empty table.
func NewFont[C Code](cellW, cellH, count int) *Font[C] {
	if cellW < 0 || cellH < 0 || count < 0 {
		return &Font[C]{}
	}
	return &Font[C]{
		glyphs: make([]*Bitmap, count),
		cellW:  cellW,
		cellH:  cellH,
	}
}

// CellWidth returns the glyph width in pixels.
func (f *Font[C]) CellWidth() int { return f.cellW }

// CellHeight returns the glyph height in pixels.
func (f *Font[C]) CellHeight() int { return f.cellH }

// Count returns the number of glyph slots.
func (f *Font[C]) Count() int { return len(f.glyphs) }

// index converts a code to a slot index, or -1 when it has no slot.
func (f *Font[C]) index(code C) int {
	v := int64(code)
	if v < 0 || v >= int64(len(f.glyphs)) {
		return -1
	}
	return int(v)
}

// Assign installs bmp as the glyph for code. It fails with
// ErrInvalidArgument when the bitmap size differs from the cell size and
// with ErrOutOfBounds when code has no slot; in both cases nothing
// changes. On success the font takes the bitmap's buffer and bmp is left
// empty, unless bmp is already the glyph for code, which is a no-op.
func (f *Font[C]) Assign(code C, bmp *Bitmap) error {
	if bmp == nil || bmp.width != f.cellW || bmp.height != f.cellH {
		w, h := 0, 0
		if bmp != nil {
			w, h = bmp.width, bmp.height
		}
		return fmt.Errorf("glyph %dx%d for %dx%d cell: %w", w, h, f.cellW, f.cellH, ErrInvalidArgument)
	}
	i := f.index(code)
	if i < 0 {
		return fmt.Errorf("glyph %d outside %d-slot font: %w", int64(code), len(f.glyphs), ErrOutOfBounds)
	}
	old := f.glyphs[i]
	if old == bmp {
		return nil
	}
	if old != nil {
		old.Release()
	}
	f.glyphs[i] = bmp.Move()
	return nil
}

// Glyph returns the bitmap for code. The second result is false when the
// code is out of range or the slot is empty.
func (f *Font[C]) Glyph(code C) (*Bitmap, bool) {
	i := f.index(code)
	if i < 0 {
		return nil, false
	}
	g := f.glyphs[i]
	if g == nil || g.Empty() {
		return nil, false
	}
	return g, true
}

// Release drops every glyph and the slot table. The Font stays usable as
// an empty table; releasing twice is a no-op.
func (f *Font[C]) Release() {
	for _, g := range f.glyphs {
		if g != nil {
			g.Release()
		}
	}
	f.glyphs = nil
	f.cellW = 0
	f.cellH = 0
}
