package style

import (
	"image/color"
	"strconv"
)

var namedColors = map[string]color.RGBA{
	"black":  {0, 0, 0, 0xff},
	"white":  {0xff, 0xff, 0xff, 0xff},
	"red":    {0xff, 0, 0, 0xff},
	"green":  {0, 0x80, 0, 0xff},
	"lime":   {0, 0xff, 0, 0xff},
	"blue":   {0, 0, 0xff, 0xff},
	"yellow": {0xff, 0xff, 0, 0xff},
	"gray":   {0x80, 0x80, 0x80, 0xff},
	"grey":   {0x80, 0x80, 0x80, 0xff},
	"silver": {0xc0, 0xc0, 0xc0, 0xff},
	"maroon": {0x80, 0, 0, 0xff},
	"navy":   {0, 0, 0x80, 0xff},
}

// ColorOf converts a color term into a Go color. It understands hex colors
// and a small set of named colors. Any other term yields nil.
//
// Braille output ignores color; downstream renderers (e.g. print previews)
// may use it.
func ColorOf(t Term) color.Color {
	switch c := t.(type) {
	case *Ident:
		if rgba, ok := namedColors[c.value]; ok {
			return rgba
		}
	case *Color:
		hex := c.hex
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		n, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return nil
		}
		return color.RGBA{uint8(n >> 16), uint8(n >> 8), uint8(n), 0xff}
	}
	return nil
}

// ColorString returns a CSS representation of a Go color, e.g. "#ff8800".
// A nil color is rendered as "transparent".
func ColorString(c color.Color) string {
	if c == nil {
		return "transparent"
	}
	r, g, b, _ := c.RGBA()
	const hexdigits = "0123456789abcdef"
	buf := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range []uint32{r >> 8, g >> 8, b >> 8} {
		buf[1+2*i] = hexdigits[v>>4&0xf]
		buf[2+2*i] = hexdigits[v&0xf]
	}
	return string(buf)
}
