package gfx

import (
	"errors"
	"image/color"

	"tinygo.org/x/drivers"

	"github.com/flavioheleno/tft/rgb565"
)

// Displayer presents a Surface as a tinygo drivers.Displayer, so the tinygo
// drawing libraries (tinyfont, tinydraw) can target it.
type Displayer struct {
	s Surface
}

var _ drivers.Displayer = (*Displayer)(nil)

// NewDisplayer wraps s.
func NewDisplayer(s Surface) *Displayer {
	return &Displayer{s: s}
}

// Size implements drivers.Displayer.
func (d *Displayer) Size() (x, y int16) {
	return int16(d.s.Width()), int16(d.s.Height())
}

// SetPixel implements drivers.Displayer. Points off the surface are ignored.
func (d *Displayer) SetPixel(x, y int16, c color.RGBA) {
	if !in(d.s, int(x), int(y)) {
		return
	}
	d.s.SetPixel(int(x), int(y), convert(c))
}

// FillRectangle fills a rectangle, through the surface's accelerated fill
// when it has one.
func (d *Displayer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if !fits(d.s, int(x), int(y), int(width), int(height)) {
		return errors.New("gfx: rectangle outside display area")
	}
	FillRect(d.s, int(x), int(y), int(width), int(height), convert(c))
	return nil
}

// Display implements drivers.Displayer. Surfaces drawing asynchronously are
// waited for, and their first transfer error reported.
func (d *Displayer) Display() error {
	if w, ok := d.s.(interface{ WaitIdle() }); ok {
		w.WaitIdle()
	}
	if e, ok := d.s.(interface{ Err() error }); ok {
		return e.Err()
	}
	return nil
}

func convert(c color.RGBA) rgb565.Color {
	return rgb565.Model.Convert(c).(rgb565.Color)
}
