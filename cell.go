package termraster

// Code is the set of integer types usable as character codes. The code
// type is fixed when a Screen or Font is instantiated, e.g. Screen[uint8]
// for a 256-glyph code page or Screen[rune] for a wide table.
type Code interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int
}

// Cell is one grid position: a character code plus foreground and
// background colours. Cells are plain values and are copied into the grid.
type Cell[C Code] struct {
	Char C
	Fg   RGB
	Bg   RGB
}

// NewCell returns a cell with the given code and colours.
func NewCell[C Code](char C, fg, bg RGB) Cell[C] {
	return Cell[C]{Char: char, Fg: fg, Bg: bg}
}
