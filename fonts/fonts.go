package fonts

import (
	"fmt"
	"image"
	"log/slog"
	"unicode"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/encoding/charmap"

	"github.com/gogpu/termraster"
)

// Metrics of basicfont.Face7x13.
const (
	DefaultCellWidth  = 7
	DefaultCellHeight = 13
	DefaultAscent     = 11
	DefaultCount      = 256
)

// FromFace rasterises count character codes from face into a font of
// cellW x cellH glyphs. The baseline sits ascent pixels below the top of
// each cell and the glyph origin at its left edge.
//
// Code c is drawn as the rune cm.DecodeByte(byte(c)), or as rune(c) when
// cm is nil. Codes that cannot be expressed in C, codes above 255 when a
// code page is given, non-printable runes and runes missing from the
// face are left empty.
func FromFace[C termraster.Code](face font.Face, cellW, cellH, ascent, count int, cm *charmap.Charmap) *termraster.Font[C] {
	f := termraster.NewFont[C](cellW, cellH, count)
	if face == nil || f.Count() == 0 || cellW <= 0 || cellH <= 0 {
		return f
	}

	dot := fixed.P(0, ascent)
	cell := image.Rect(0, 0, cellW, cellH)
	assigned := 0
	for i := 0; i < f.Count(); i++ {
		code := C(i)
		if int(code) != i {
			break
		}
		r, ok := codeRune(i, cm)
		if !ok {
			continue
		}
		dr, mask, maskp, _, ok := face.Glyph(dot, r)
		if !ok || mask == nil {
			continue
		}

		dst := image.NewAlpha(cell)
		draw.DrawMask(dst, dr, image.Opaque, image.Point{}, mask, maskp, draw.Over)
		if err := f.Assign(code, termraster.NewBitmap(dst.Pix, cellW)); err != nil {
			termraster.Logger().Warn("fonts: assign glyph",
				slog.Int("code", i), slog.Any("error", err))
			continue
		}
		assigned++
	}

	termraster.Logger().Debug("fonts: built from face",
		slog.Int("cell_w", cellW), slog.Int("cell_h", cellH),
		slog.Int("slots", f.Count()), slog.Int("glyphs", assigned))
	return f
}

func codeRune(i int, cm *charmap.Charmap) (rune, bool) {
	r := rune(i)
	if cm != nil {
		if i > 0xff {
			return 0, false
		}
		r = cm.DecodeByte(byte(i))
	}
	if r == unicode.ReplacementChar || !unicode.IsPrint(r) {
		return 0, false
	}
	return r, true
}

// Default returns the built-in 7x13 bitmap font: basicfont.Face7x13
// mapped through ISO 8859-1. The table has 256 slots but the face only
// draws printable ASCII, so codes 0x80 and up are empty and render as
// background. Use GoMono for Latin-1 or code-page coverage.
func Default[C termraster.Code]() *termraster.Font[C] {
	return DefaultCodePage[C](charmap.ISO8859_1)
}

// DefaultCodePage is Default with character codes mapped through cm.
// Only codes whose rune is printable ASCII get a glyph.
func DefaultCodePage[C termraster.Code](cm *charmap.Charmap) *termraster.Font[C] {
	return FromFace[C](basicfont.Face7x13,
		DefaultCellWidth, DefaultCellHeight, DefaultAscent, DefaultCount, cm)
}

// GoMono rasterises the Go Mono outline font at size pixels per em into
// a 256-slot font, mapping codes through cm (code points when nil). Go
// Mono covers Latin-1 and the box-drawing and block characters of the
// DOS code pages. The cell is one advance wide and ascent+descent tall.
func GoMono[C termraster.Code](size float64, cm *charmap.Charmap) (*termraster.Font[C], error) {
	if size <= 0 {
		return nil, fmt.Errorf("fonts: go mono size %g: %w", size, termraster.ErrInvalidArgument)
	}
	otf, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("fonts: parse go mono: %w", err)
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("fonts: go mono face: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()

	m := face.Metrics()
	adv, ok := face.GlyphAdvance('0')
	if !ok {
		return nil, fmt.Errorf("fonts: go mono has no advance for '0'")
	}
	cellW, cellH := adv.Ceil(), (m.Ascent + m.Descent).Ceil()
	return FromFace[C](&coveredFace{Face: face, otf: otf},
		cellW, cellH, m.Ascent.Ceil(), DefaultCount, cm), nil
}

// coveredFace reports runes that map to .notdef as missing instead of
// drawing the notdef box.
type coveredFace struct {
	font.Face
	otf *opentype.Font
	buf sfnt.Buffer
}

func (f *coveredFace) Glyph(dot fixed.Point26_6, r rune) (image.Rectangle, image.Image, image.Point, fixed.Int26_6, bool) {
	if x, err := f.otf.GlyphIndex(&f.buf, r); err != nil || x == 0 {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}
	return f.Face.Glyph(dot, r)
}

// Atlas packs font into a 3-channel atlas of columns glyphs per row,
// glyph i at column i%columns and row i/columns, every channel holding
// the ink value. Empty slots are left zero. The result reloads with
// termraster.LoadFont(data, width, CellWidth, CellHeight, false).
func Atlas[C termraster.Code](f *termraster.Font[C], columns int) (data []byte, width int) {
	if f == nil || f.Count() == 0 || f.CellWidth() == 0 || f.CellHeight() == 0 {
		return nil, 0
	}
	columns = min(max(columns, 1), f.Count())
	rows := (f.Count() + columns - 1) / columns
	cw, ch := f.CellWidth(), f.CellHeight()
	width = columns * cw
	data = make([]byte, width*rows*ch*3)

	for i := 0; i < f.Count(); i++ {
		code := C(i)
		if int(code) != i {
			break
		}
		glyph, ok := f.Glyph(code)
		if !ok {
			continue
		}
		x0, y0 := (i%columns)*cw, (i/columns)*ch
		src := glyph.Data()
		for sy := 0; sy < ch; sy++ {
			row := ((y0+sy)*width + x0) * 3
			for sx := 0; sx < cw; sx++ {
				v := src[sy*cw+sx]
				o := row + sx*3
				data[o], data[o+1], data[o+2] = v, v, v
			}
		}
	}
	return data, width
}
