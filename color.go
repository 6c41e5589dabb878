package termraster

import (
	"fmt"
	"image/color"
)

// RGB is a 24-bit colour triple.
type RGB struct {
	R, G, B uint8
}

// Predefined colours.
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// Color converts the triple to an opaque color.RGBA.
func (c RGB) Color() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return c.Color().RGBA()
}

// FromColor converts any color.Color to RGB, dropping alpha.
func FromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// #nosec G115 -- v>>8 is always in range [0, 255]
	return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// Hex creates a colour from a hex string, or black when the string is
// malformed. Supports "RGB" and "RRGGBB" with an optional leading '#'.
func Hex(hex string) RGB {
	c, err := ParseHex(hex)
	if err != nil {
		return Black
	}
	return c
}

// ParseHex parses "RGB" or "RRGGBB", with an optional leading '#'.
func ParseHex(hex string) (RGB, error) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var v [3]uint32
	switch len(hex) {
	case 3:
		for i := range v {
			if !parseHex(hex[i:i+1], &v[i]) {
				return RGB{}, fmt.Errorf("termraster: bad hex colour %q", hex)
			}
			v[i] *= 17
		}
	case 6:
		for i := range v {
			if !parseHex(hex[i*2:i*2+2], &v[i]) {
				return RGB{}, fmt.Errorf("termraster: bad hex colour %q", hex)
			}
		}
	default:
		return RGB{}, fmt.Errorf("termraster: bad hex colour %q", hex)
	}

	return RGB{R: uint8(v[0]), G: uint8(v[1]), B: uint8(v[2])}, nil
}

func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// String returns the colour as "#rrggbb".
func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Scale multiplies every channel by ink/255, truncating toward zero.
// Scale(255) returns c unchanged.
func (c RGB) Scale(ink uint8) RGB {
	w := float32(ink) / 255
	return RGB{
		R: uint8(float32(c.R) * w),
		G: uint8(float32(c.G) * w),
		B: uint8(float32(c.B) * w),
	}
}

// Lerp interpolates from c toward other by ink/255 with integer rounding.
func (c RGB) Lerp(other RGB, ink uint8) RGB {
	return RGB{
		R: lerp8(c.R, other.R, ink),
		G: lerp8(c.G, other.G, ink),
		B: lerp8(c.B, other.B, ink),
	}
}

func lerp8(a, b, t uint8) uint8 {
	v := int(a)*(255-int(t)) + int(b)*int(t)
	return uint8((v + 127) / 255)
}
