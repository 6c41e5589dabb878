package termraster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// Image is an owned 24-bit RGB pixel buffer, the default render target.
// Pixel (x, y) occupies Pix()[(y*width+x)*3:][:3] as R, G, B.
type Image struct {
	width  int
	height int
	pix    []uint8
}

// NewImage creates a zeroed (black) w x h image. Non-positive dimensions
// produce an empty image.
func NewImage(w, h int) *Image {
	if w <= 0 || h <= 0 {
		return &Image{}
	}
	return &Image{
		width:  w,
		height: h,
		pix:    make([]uint8, w*h*3),
	}
}

// Width returns the image width.
func (m *Image) Width() int { return m.width }

// Height returns the image height.
func (m *Image) Height() int { return m.height }

// Pix returns the raw RGB bytes.
func (m *Image) Pix() []uint8 { return m.pix }

// RGBAt returns the colour at (x, y), or black outside the image.
func (m *Image) RGBAt(x, y int) RGB {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return Black
	}
	i := (y*m.width + x) * 3
	return RGB{R: m.pix[i], G: m.pix[i+1], B: m.pix[i+2]}
}

// SetRGB sets the colour at (x, y). Coordinates outside are ignored.
func (m *Image) SetRGB(x, y int, c RGB) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	i := (y*m.width + x) * 3
	m.pix[i+0] = c.R
	m.pix[i+1] = c.G
	m.pix[i+2] = c.B
}

// Fill paints the whole image with c.
func (m *Image) Fill(c RGB) {
	for i := 0; i < len(m.pix); i += 3 {
		m.pix[i+0] = c.R
		m.pix[i+1] = c.G
		m.pix[i+2] = c.B
	}
}

// At implements the image.Image interface.
func (m *Image) At(x, y int) color.Color {
	return m.RGBAt(x, y).Color()
}

// Bounds implements the image.Image interface.
func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// ColorModel implements the image.Image interface.
func (m *Image) ColorModel() color.Model {
	return color.RGBAModel
}

// ToRGBA converts the image to an opaque *image.RGBA.
func (m *Image) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.width, m.height))
	for i, j := 0, 0; i < len(m.pix); i, j = i+3, j+4 {
		img.Pix[j+0] = m.pix[i+0]
		img.Pix[j+1] = m.pix[i+1]
		img.Pix[j+2] = m.pix[i+2]
		img.Pix[j+3] = 255
	}
	return img
}

// Scale returns the image enlarged by an integer factor with
// nearest-neighbour sampling, keeping glyph edges sharp.
func (m *Image) Scale(factor int) *image.RGBA {
	if factor < 1 {
		factor = 1
	}
	src := m.ToRGBA()
	if factor == 1 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, m.width*factor, m.height*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// ImageFormat selects the encoding used by Encode.
type ImageFormat uint8

const (
	// PNG encodes with image/png.
	PNG ImageFormat = iota

	// BMP encodes a 24-bit bitmap with golang.org/x/image/bmp.
	BMP
)

// String returns the lower-case format name.
func (f ImageFormat) String() string {
	switch f {
	case PNG:
		return "png"
	case BMP:
		return "bmp"
	default:
		return "unknown"
	}
}

// Encode writes the image to w in the given format.
func (m *Image) Encode(w io.Writer, format ImageFormat) error {
	switch format {
	case PNG:
		return png.Encode(w, m.ToRGBA())
	case BMP:
		return bmp.Encode(w, m.ToRGBA())
	default:
		return fmt.Errorf("termraster: unknown image format %d: %w", format, ErrInvalidArgument)
	}
}

// SavePNG saves the image to a PNG file.
func (m *Image) SavePNG(path string) error {
	return m.save(path, PNG)
}

// SaveBMP saves the image to a BMP file.
func (m *Image) SaveBMP(path string) error {
	return m.save(path, BMP)
}

func (m *Image) save(path string, format ImageFormat) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := m.Encode(f, format); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Release drops the pixel buffer. The Image stays usable as an empty
// 0x0 image; releasing twice is a no-op.
func (m *Image) Release() {
	m.pix = nil
	m.width = 0
	m.height = 0
}
