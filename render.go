package termraster

import (
	"context"
	"fmt"
	"log/slog"
)

// BlendMode selects how a glyph's ink value colours a pixel.
type BlendMode uint8

const (
	// BlendNone treats ink as a stencil: nonzero ink paints the
	// foreground colour, zero ink paints the background.
	BlendNone BlendMode = iota

	// BlendScale paints foreground*ink/255 wherever ink is nonzero. The
	// background is not mixed in, so faint ink darkens toward black.
	BlendScale

	// BlendAlpha paints lerp(background, foreground, ink/255), true
	// coverage compositing. Opt-in only.
	BlendAlpha
)

// String returns the mode name.
func (m BlendMode) String() string {
	switch m {
	case BlendNone:
		return "none"
	case BlendScale:
		return "scale"
	case BlendAlpha:
		return "alpha"
	default:
		return fmt.Sprintf("BlendMode(%d)", uint8(m))
	}
}

// ParseBlendMode parses "none", "scale" or "alpha".
func ParseBlendMode(s string) (BlendMode, error) {
	switch s {
	case "none":
		return BlendNone, nil
	case "scale":
		return BlendScale, nil
	case "alpha":
		return BlendAlpha, nil
	default:
		return BlendNone, fmt.Errorf("termraster: unknown blend mode %q: %w", s, ErrInvalidArgument)
	}
}

func blendMode(blending bool) BlendMode {
	if blending {
		return BlendScale
	}
	return BlendNone
}

// Rasterizer draws screens with one font. It holds no per-render state,
// so one Rasterizer may render several screens concurrently as long as
// neither the screens nor the font are being modified.
type Rasterizer[C Code] struct {
	font   *Font[C]
	blend  BlendMode
	format PixelFormat
}

// NewRasterizer creates a rasterizer for font.
func NewRasterizer[C Code](font *Font[C], opts ...RasterizerOption) *Rasterizer[C] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Rasterizer[C]{
		font:   font,
		blend:  o.blend,
		format: o.format,
	}
}

// Font returns the rasterizer's font.
func (r *Rasterizer[C]) Font() *Font[C] { return r.font }

// Blend returns the blend mode.
func (r *Rasterizer[C]) Blend() BlendMode { return r.blend }

// Format returns the pixel format used by RenderBuffer.
func (r *Rasterizer[C]) Format() PixelFormat { return r.format }

// RenderImage draws scr into img, cell (x, y) landing at pixel
// (x*CellWidth, y*CellHeight). img must be at least
// scr.Width()*CellWidth by scr.Height()*CellHeight pixels; otherwise
// ErrInvalidArgument is returned and img is not touched. Pixels beyond
// the rendered area keep their previous values.
func (r *Rasterizer[C]) RenderImage(scr *Screen[C], img *Image) error {
	if scr == nil || img == nil || r.font == nil {
		return fmt.Errorf("render image: nil screen, image or font: %w", ErrInvalidArgument)
	}
	needW, needH := scr.width*r.font.cellW, scr.height*r.font.cellH
	if img.width < needW || img.height < needH {
		return fmt.Errorf("render image: %dx%d image cannot hold %dx%d: %w",
			img.width, img.height, needW, needH, ErrInvalidArgument)
	}
	r.logRender("image", needW, needH, FormatRGB8)
	composite(scr, r.font, r.blend, target{
		pix:    img.pix,
		stride: img.width * 3,
		info:   formatInfoTable[FormatRGB8],
	})
	return nil
}

// RenderBuffer draws scr into an external pixel buffer whose rows are
// pitch bytes apart, laid out in the rasterizer's pixel format. The
// buffer must hold scr.Width()*CellWidth pixels per row
// (pitch/bytesPerPixel) and scr.Height()*CellHeight rows; otherwise
// ErrInvalidArgument is returned and pix is not touched.
func (r *Rasterizer[C]) RenderBuffer(scr *Screen[C], pix []byte, pitch int) error {
	if scr == nil || r.font == nil {
		return fmt.Errorf("render buffer: nil screen or font: %w", ErrInvalidArgument)
	}
	if !r.format.IsValid() {
		return fmt.Errorf("render buffer: %s: %w", r.format, ErrInvalidArgument)
	}
	bpp := r.format.BytesPerPixel()
	needW, needH := scr.width*r.font.cellW, scr.height*r.font.cellH
	if pitch < 0 || pitch/bpp < needW {
		return fmt.Errorf("render buffer: pitch %d too small for %d %s pixels: %w",
			pitch, needW, r.format, ErrInvalidArgument)
	}
	if needW > 0 && needH > 0 {
		if need := (needH-1)*pitch + needW*bpp; len(pix) < need {
			return fmt.Errorf("render buffer: %d bytes cannot hold %d rows at pitch %d: %w",
				len(pix), needH, pitch, ErrInvalidArgument)
		}
	}
	r.logRender("buffer", needW, needH, r.format)
	composite(scr, r.font, r.blend, target{
		pix:    pix,
		stride: pitch,
		info:   formatInfoTable[r.format],
	})
	return nil
}

func (r *Rasterizer[C]) logRender(sink string, w, h int, f PixelFormat) {
	log := Logger()
	if !log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	log.Debug("render",
		slog.String("sink", sink),
		slog.Int("width", w), slog.Int("height", h),
		slog.String("format", f.String()),
		slog.String("blend", r.blend.String()))
}

// RenderImage draws scr into img with font. blending selects BlendScale
// instead of the BlendNone stencil.
func RenderImage[C Code](scr *Screen[C], img *Image, font *Font[C], blending bool) error {
	return NewRasterizer(font, WithBlend(blendMode(blending))).RenderImage(scr, img)
}

// RenderBuffer draws scr into a 24-bit external buffer with row pitch
// bytes apart and the channel order given by order. blending selects
// BlendScale instead of the BlendNone stencil.
func RenderBuffer[C Code](scr *Screen[C], pix []byte, pitch int, font *Font[C], blending bool, order ByteOrder) error {
	return NewRasterizer(font, WithBlend(blendMode(blending)), WithByteOrder(order)).RenderBuffer(scr, pix, pitch)
}

// target is a pixel sink: rows stride bytes apart, channels at the
// offsets given by info.
type target struct {
	pix    []byte
	stride int
	info   formatInfo
}

// composite is the per-pixel colour rule shared by every sink. The
// caller has already checked that the whole grid fits in t.
func composite[C Code](scr *Screen[C], font *Font[C], mode BlendMode, t target) {
	cw, ch := font.cellW, font.cellH
	bpp := t.info.bytesPerPixel
	for y := 0; y < scr.height; y++ {
		for x := 0; x < scr.width; x++ {
			c := &scr.cells[y*scr.width+x]
			glyph, ok := font.Glyph(c.Char)
			for sy := 0; sy < ch; sy++ {
				o := (y*ch+sy)*t.stride + x*cw*bpp
				for sx := 0; sx < cw; sx++ {
					col := c.Bg
					if ok {
						if ink := glyph.data[sy*cw+sx]; ink != 0 {
							col = shade(c.Fg, c.Bg, ink, mode)
						}
					}
					t.pix[o+t.info.r] = col.R
					t.pix[o+t.info.g] = col.G
					t.pix[o+t.info.b] = col.B
					if t.info.alpha >= 0 {
						t.pix[o+t.info.alpha] = 255
					}
					o += bpp
				}
			}
		}
	}
}

// shade resolves a nonzero ink value to a colour.
func shade(fg, bg RGB, ink uint8, mode BlendMode) RGB {
	switch mode {
	case BlendScale:
		return fg.Scale(ink)
	case BlendAlpha:
		return bg.Lerp(fg, ink)
	default:
		return fg
	}
}
