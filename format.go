package termraster

import (
	"encoding/binary"
	"fmt"
)

// PixelFormat describes the byte layout of an external render buffer.
type PixelFormat uint8

const (
	// FormatRGB8 is 24-bit R, G, B.
	FormatRGB8 PixelFormat = iota

	// FormatBGR8 is 24-bit B, G, R, the layout of little-endian 24-bit
	// surfaces.
	FormatBGR8

	// FormatRGBA8 is 32-bit R, G, B, A. Alpha is written as 255.
	FormatRGBA8

	// FormatBGRA8 is 32-bit B, G, R, A. Alpha is written as 255.
	// Common on Windows and for GPU swap chains.
	FormatBGRA8

	// formatCount is the number of formats (for internal use).
	formatCount
)

// formatInfo holds the byte offsets of each channel within a pixel.
// alpha is -1 for formats without an alpha byte.
type formatInfo struct {
	bytesPerPixel int
	r, g, b       int
	alpha         int
}

var formatInfoTable = [formatCount]formatInfo{
	FormatRGB8:  {bytesPerPixel: 3, r: 0, g: 1, b: 2, alpha: -1},
	FormatBGR8:  {bytesPerPixel: 3, r: 2, g: 1, b: 0, alpha: -1},
	FormatRGBA8: {bytesPerPixel: 4, r: 0, g: 1, b: 2, alpha: 3},
	FormatBGRA8: {bytesPerPixel: 4, r: 2, g: 1, b: 0, alpha: 3},
}

// IsValid returns true if the format is a known format.
func (f PixelFormat) IsValid() bool {
	return f < formatCount
}

// BytesPerPixel returns the number of bytes per pixel, or 0 for an
// unknown format.
func (f PixelFormat) BytesPerPixel() int {
	if !f.IsValid() {
		return 0
	}
	return formatInfoTable[f].bytesPerPixel
}

// HasAlpha reports whether the format carries an alpha byte.
func (f PixelFormat) HasAlpha() bool {
	return f.IsValid() && formatInfoTable[f].alpha >= 0
}

// RowBytes returns the bytes needed for a row of width pixels.
func (f PixelFormat) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// String returns a string representation of the format.
func (f PixelFormat) String() string {
	switch f {
	case FormatRGB8:
		return "RGB8"
	case FormatBGR8:
		return "BGR8"
	case FormatRGBA8:
		return "RGBA8"
	case FormatBGRA8:
		return "BGRA8"
	default:
		return fmt.Sprintf("PixelFormat(%d)", uint8(f))
	}
}

// ByteOrder selects the channel order of 24-bit surfaces the way SDL
// does: big-endian surfaces store R, G, B and little-endian surfaces
// store B, G, R.
type ByteOrder uint8

const (
	// BigEndian stores R, G, B.
	BigEndian ByteOrder = iota

	// LittleEndian stores B, G, R.
	LittleEndian
)

// Format returns the 24-bit pixel format for the byte order.
func (o ByteOrder) Format() PixelFormat {
	if o == LittleEndian {
		return FormatBGR8
	}
	return FormatRGB8
}

// String returns "big-endian" or "little-endian".
func (o ByteOrder) String() string {
	if o == LittleEndian {
		return "little-endian"
	}
	return "big-endian"
}

// NativeByteOrder returns the byte order of the host.
func NativeByteOrder() ByteOrder {
	if binary.NativeEndian.Uint16([]byte{1, 0}) == 1 {
		return LittleEndian
	}
	return BigEndian
}
