package termraster

import "image"

// Bitmap is a single-channel glyph mask. Each byte is an ink value:
// 0 lets the background show, anything else is foreground coverage.
type Bitmap struct {
	width  int
	height int
	data   []uint8
}

// NewBitmap wraps data as a bitmap of the given width. The height is
// len(data) / width. The bitmap takes ownership of data; the caller must
// not keep writing to it. A non-positive width gives an empty bitmap.
func NewBitmap(data []byte, width int) *Bitmap {
	if width <= 0 {
		return &Bitmap{}
	}
	height := len(data) / width
	return &Bitmap{
		width:  width,
		height: height,
		data:   data[:width*height],
	}
}

// NewBlankBitmap creates a zeroed w*h bitmap.
func NewBlankBitmap(w, h int) *Bitmap {
	if w <= 0 || h <= 0 {
		return &Bitmap{}
	}
	return &Bitmap{
		width:  w,
		height: h,
		data:   make([]uint8, w*h),
	}
}

// NewBitmapFromAlpha creates a bitmap from an image's alpha channel.
func NewBitmapFromAlpha(img image.Image) *Bitmap {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	bm := NewBlankBitmap(w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_, _, _, a := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// #nosec G115 -- a>>8 is always in range [0, 255]
			bm.data[y*w+x] = uint8(a >> 8)
		}
	}

	return bm
}

// Width returns the bitmap width.
func (b *Bitmap) Width() int { return b.width }

// Height returns the bitmap height.
func (b *Bitmap) Height() int { return b.height }

// Data returns the mask bytes, row-major.
func (b *Bitmap) Data() []uint8 { return b.data }

// Bounds returns the bitmap dimensions as an image.Rectangle.
func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// At returns the ink value at (x, y), or 0 outside the bitmap.
func (b *Bitmap) At(x, y int) uint8 {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0
	}
	return b.data[y*b.width+x]
}

// Set sets the ink value at (x, y). Coordinates outside are ignored.
func (b *Bitmap) Set(x, y int, v uint8) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.data[y*b.width+x] = v
}

// Fill sets every ink value to v.
func (b *Bitmap) Fill(v uint8) {
	for i := range b.data {
		b.data[i] = v
	}
}

// Empty reports whether the bitmap holds no pixels, either because it
// was created empty, released or moved from.
func (b *Bitmap) Empty() bool {
	return len(b.data) == 0
}

// Move transfers the mask to a new Bitmap and leaves the receiver empty.
// Use it when handing a buffer to a container so that only one handle
// can reach the bytes afterwards.
func (b *Bitmap) Move() *Bitmap {
	moved := &Bitmap{width: b.width, height: b.height, data: b.data}
	b.Release()
	return moved
}

// Clone returns a deep copy of the bitmap.
func (b *Bitmap) Clone() *Bitmap {
	c := NewBlankBitmap(b.width, b.height)
	copy(c.data, b.data)
	return c
}

// Release drops the mask. The Bitmap stays usable as an empty 0x0
// bitmap; releasing twice is a no-op.
func (b *Bitmap) Release() {
	b.data = nil
	b.width = 0
	b.height = 0
}
