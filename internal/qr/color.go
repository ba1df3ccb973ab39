package qr

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// RGB is an opaque 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Color returns c as a fully opaque color.Color.
func (c RGB) Color() color.Color {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Hex formats c as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHexColor parses a six digit hex color with or without a leading '#'.
func ParseHexColor(s string) (RGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("%w %q: want 6 hex digits", ErrInvalidHexColor, s)
	}

	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w %q: %w", ErrInvalidHexColor, s, err)
		}
		ch[i] = uint8(v)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}
