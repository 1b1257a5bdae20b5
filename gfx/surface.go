// Package gfx implements device independent drawing primitives.
//
// Every primitive works on a Surface, which only has to know its size and
// how to set one pixel. A surface that can do better for some operation (a
// panel that fills a rectangle with one bus transfer, say) implements one of
// the optional interfaces below and the primitive hands the work over after
// it has done its own bounds checks.
//
// Geometry that does not fit the surface is dropped silently: drawing calls
// never fail.
package gfx

import (
	"github.com/flavioheleno/tft/font"
	"github.com/flavioheleno/tft/rgb565"
)

// Surface is something pixels can be drawn on.
type Surface interface {
	Width() int
	Height() int
	// SetPixel sets one pixel. Callers only pass points inside the surface.
	SetPixel(x, y int, c rgb565.Color)
}

// RectFiller is implemented by surfaces with an accelerated solid fill. The
// rectangle has already been checked against the surface bounds.
type RectFiller interface {
	FillRect(x, y, w, h int, c rgb565.Color)
}

// CellPrinter is implemented by surfaces that render a whole character cell
// at once. The cell at (x, y) is known to fit the surface.
type CellPrinter interface {
	PrintCell(x, y int, c byte, f *font.Font, fg, bg rgb565.Color)
}

// Blitter is implemented by surfaces that copy an image in one transfer. The
// image at (x, y) is known to fit the surface.
type Blitter interface {
	Blit(x, y int, img *rgb565.Image)
}

// Align is the horizontal alignment of text and images relative to their
// anchor point.
type Align uint8

const (
	// AlignLeft anchors the left edge.
	AlignLeft Align = iota
	// AlignCenter anchors the middle.
	AlignCenter
	// AlignRight anchors the right edge; the box extends leftward.
	AlignRight
)

// shift moves x left so that a box w pixels wide is aligned on x.
func (a Align) shift(x, w int) int {
	switch a {
	case AlignCenter:
		return x - w/2
	case AlignRight:
		return x - w
	}
	return x
}

func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	}
	return "Align(?)"
}

// Quadrant selects parts of a circle. Quadrants are numbered the usual way
// with y growing downward, so the first one is the lower right.
type Quadrant uint8

const (
	LowerRight Quadrant = 1 << iota // +x, +y
	LowerLeft                       // -x, +y
	UpperLeft                       // -x, -y
	UpperRight                      // +x, -y

	Lower Quadrant = LowerRight | LowerLeft  // bottom half
	Upper Quadrant = UpperRight | UpperLeft  // top half
	Right Quadrant = UpperRight | LowerRight // right half
	Left  Quadrant = UpperLeft | LowerLeft   // left half
	All   Quadrant = Lower | Upper           // whole circle
)

func (q Quadrant) has(o Quadrant) bool {
	return q&o != 0
}

// in reports whether (x, y) is on s.
func in(s Surface, x, y int) bool {
	return x >= 0 && x < s.Width() && y >= 0 && y < s.Height()
}

// fits reports whether the w x h rectangle at (x, y) is entirely on s.
// x+w == s.Width() is fine, the rectangle is exclusive.
func fits(s Surface, x, y, w, h int) bool {
	x2, y2 := x+w, y+h
	return x >= 0 && x < s.Width() && x2 >= x && x2 <= s.Width() &&
		y >= 0 && y < s.Height() && y2 >= y && y2 <= s.Height()
}
