package rgb565

import "image/color"

// Alpha values.
const (
	Transparent uint8 = 0
	Opaque      uint8 = 0xFF
)

// Color is an 8-bit per channel color. Alpha is carried along but the panels
// have no notion of it; it only marks "no color" (None).
type Color struct {
	R, G, B, A uint8
}

// Named colors.
var (
	Black   = New(0x00, 0x00, 0x00)
	Red     = New(0xff, 0x00, 0x00)
	Green   = New(0x00, 0xff, 0x00)
	Blue    = New(0x00, 0x00, 0xff)
	Yellow  = New(0xff, 0xff, 0x00)
	Magenta = New(0xff, 0x00, 0xff)
	Cyan    = New(0x00, 0xff, 0xff)
	White   = New(0xff, 0xff, 0xff)
	Gray25  = New(0x40, 0x40, 0x40)
	Gray50  = New(0x80, 0x80, 0x80)
	Gray75  = New(0xc0, 0xc0, 0xc0)

	None = NewAlpha(0, 0, 0, Transparent)
)

// New returns an opaque color.
func New(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: Opaque}
}

// NewAlpha returns a color with an explicit alpha.
func NewAlpha(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Gray returns an opaque gray with all channels set to v.
func Gray(v uint8) Color {
	return New(v, v, v)
}

// RGBA implements color.Color. Channels are treated as non-premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Interpolate blends from bg (mix 0) to fg (mix 255).
//
// Each channel is bg + (fg-bg)*mix/255 computed on signed integers; the
// division truncates toward zero. The result is opaque.
func Interpolate(mix uint8, bg, fg Color) Color {
	switch mix {
	case 0:
		return bg
	case 0xFF:
		return fg
	}
	m := int(mix)
	return New(
		uint8(int(bg.R)+(int(fg.R)-int(bg.R))*m/255),
		uint8(int(bg.G)+(int(fg.G)-int(bg.G))*m/255),
		uint8(int(bg.B)+(int(fg.B)-int(bg.B))*m/255),
	)
}

func toColor(c color.Color) color.Color {
	if v, ok := c.(Color); ok {
		return v
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Model converts any color to Color.
var Model = color.ModelFunc(toColor)
