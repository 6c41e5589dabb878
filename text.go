package termraster

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// replacementCode is written for runes the code page cannot represent.
const replacementCode = '?'

// EncodeRune maps r to a character code. With a nil code page the rune
// value is used directly when it fits in C. Unrepresentable runes map
// to '?' and report false.
func EncodeRune[C Code](r rune, cm *charmap.Charmap) (C, bool) {
	if cm != nil {
		b, ok := cm.EncodeRune(r)
		if !ok {
			return C(replacementCode), false
		}
		return C(b), true
	}
	c := C(r)
	if rune(c) != r {
		return C(replacementCode), false
	}
	return c, true
}

// WriteString writes s on row y starting at column x, one cell per rune,
// encoding runes through cm (see EncodeRune). Output is clipped at the
// end of the row. It returns the number of cells written; a start
// position outside the grid returns ErrOutOfBounds.
func (s *Screen[C]) WriteString(x, y int, str string, fg, bg RGB, cm *charmap.Charmap) (int, error) {
	if !s.inBounds(x, y) {
		return 0, fmt.Errorf("write at (%d,%d) on %dx%d screen: %w", x, y, s.width, s.height, ErrOutOfBounds)
	}
	n := 0
	for _, r := range str {
		if x+n >= s.width {
			break
		}
		code, _ := EncodeRune[C](r, cm)
		s.cells[s.width*y+x+n] = Cell[C]{Char: code, Fg: fg, Bg: bg}
		n++
	}
	return n, nil
}
