package termraster

import (
	"fmt"
	"image"
	_ "image/png" // PNG atlases
	"io"
	"log/slog"

	_ "golang.org/x/image/bmp" // BMP atlases
)

// LoadFont slices a packed atlas into a font of charW x charH glyphs.
//
// data holds width-pixel rows of 3-byte (alpha false) or 4-byte (alpha
// true) pixels. Only the first channel of each pixel is kept as the ink
// value. The atlas height is len(data)/bpp/width and the glyph grid is
// (width/charW) x (height/charH); partial cells at the right and bottom
// edges are dropped. Glyphs are numbered row by row.
//
// Malformed input is not reported: non-positive sizes give an empty font.
func LoadFont[C Code](data []byte, width, charW, charH int, alpha bool) *Font[C] {
	bpp := 3
	if alpha {
		bpp = 4
	}
	if width <= 0 || charW <= 0 || charH <= 0 {
		return NewFont[C](max(charW, 0), max(charH, 0), 0)
	}

	height := len(data) / bpp / width
	columns := width / charW
	rows := height / charH

	logAtlas(width, height, charW, charH, columns, rows)

	font := NewFont[C](charW, charH, columns*rows)
	for gy := 0; gy < rows; gy++ {
		for gx := 0; gx < columns; gx++ {
			mask := make([]byte, charW*charH)
			xOff, yOff := gx*charW, gy*charH
			for sy := 0; sy < charH; sy++ {
				row := ((yOff+sy)*width + xOff) * bpp
				for sx := 0; sx < charW; sx++ {
					mask[sy*charW+sx] = data[row+sx*bpp]
				}
			}
			font.glyphs[gy*columns+gx] = &Bitmap{width: charW, height: charH, data: mask}
		}
	}
	return font
}

// LoadFontImage slices a decoded atlas image the same way as LoadFont,
// taking the red channel of each pixel as the ink value.
func LoadFontImage[C Code](img image.Image, charW, charH int) *Font[C] {
	if charW <= 0 || charH <= 0 {
		return NewFont[C](max(charW, 0), max(charH, 0), 0)
	}
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	columns := width / charW
	rows := height / charH

	logAtlas(width, height, charW, charH, columns, rows)

	font := NewFont[C](charW, charH, columns*rows)
	for gy := 0; gy < rows; gy++ {
		for gx := 0; gx < columns; gx++ {
			bm := NewBlankBitmap(charW, charH)
			for sy := 0; sy < charH; sy++ {
				for sx := 0; sx < charW; sx++ {
					r, _, _, _ := img.At(bounds.Min.X+gx*charW+sx, bounds.Min.Y+gy*charH+sy).RGBA()
					// #nosec G115 -- r>>8 is always in range [0, 255]
					bm.data[sy*charW+sx] = uint8(r >> 8)
				}
			}
			font.glyphs[gy*columns+gx] = bm
		}
	}
	return font
}

// DecodeFont decodes a PNG or BMP atlas from r and slices it with
// LoadFontImage.
func DecodeFont[C Code](r io.Reader, charW, charH int) (*Font[C], error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("termraster: decode font atlas: %w", err)
	}
	Logger().Debug("decoded font atlas", slog.String("format", format))
	return LoadFontImage[C](img, charW, charH), nil
}

func logAtlas(width, height, charW, charH, columns, rows int) {
	log := Logger()
	if width%charW != 0 || height%charH != 0 {
		log.Warn("atlas size is not a multiple of the cell size; edge pixels dropped",
			slog.Int("width", width), slog.Int("height", height),
			slog.Int("cellWidth", charW), slog.Int("cellHeight", charH))
	}
	log.Debug("slicing font atlas",
		slog.Int("columns", columns), slog.Int("rows", rows),
		slog.Int("glyphs", columns*rows))
}
