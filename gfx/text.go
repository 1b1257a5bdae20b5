package gfx

import (
	"github.com/flavioheleno/tft/font"
	"github.com/flavioheleno/tft/rgb565"
)

// Cell calls fn for every pixel of the character cell of c, left to right
// and top to bottom. Pixels covered by the glyph blend bg into fg by the
// glyph's gray level; the rest of the cell is bg. Glyph pixels outside the
// cell are cropped.
//
// Nothing is called for non-printable characters.
func Cell(f *font.Font, c byte, fg, bg rgb565.Color, fn func(col, row int, px rgb565.Color)) {
	g, ok := f.Glyph(c)
	if !ok {
		return
	}
	x0, y0 := int(g.XOff), int(g.YOff)
	x1, y1 := x0+int(g.W), y0+int(g.H)
	for row := 0; row < f.Height(); row++ {
		for col := 0; col < int(g.XAdv); col++ {
			if row >= y0 && row < y1 && col >= x0 && col < x1 {
				fn(col, row, rgb565.Interpolate(f.Gray(g, col-x0, row-y0), bg, fg))
			} else {
				fn(col, row, bg)
			}
		}
	}
}

// PrintChar prints c with its cell aligned on (x, y).
//
// Right and center alignment move x left by the full or half cell width. The
// character is skipped if it is not printable or if its cell, after that
// shift, is not entirely on the surface.
func PrintChar(s Surface, x, y int, c byte, f *font.Font, fg, bg rgb565.Color, align Align) {
	if !font.Printable(c) {
		return
	}
	w, h := f.Advance(c), f.Height()
	x = align.shift(x, w)
	if !fits(s, x, y, w, h) {
		return
	}
	if p, ok := s.(CellPrinter); ok {
		p.PrintCell(x, y, c, f, fg, bg)
		return
	}
	Cell(f, c, fg, bg, func(col, row int, px rgb565.Color) {
		s.SetPixel(x+col, y+row, px)
	})
}

// Print prints str aligned on (x, y).
//
// The alignment shift uses the width of the whole string. Characters are then
// printed one by one, each one checked on its own: a string pushed partly off
// the surface still shows the characters that fit.
func Print(s Surface, x, y int, str string, f *font.Font, fg, bg rgb565.Color, align Align) {
	x = align.shift(x, f.Width(str))
	for i := 0; i < len(str); i++ {
		c := str[i]
		PrintChar(s, x, y, c, f, fg, bg, AlignLeft)
		x += f.Advance(c)
	}
}
