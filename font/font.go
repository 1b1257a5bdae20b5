// Package font describes the read-only glyph tables used to print text on a
// display.
//
// A Font covers character codes 0-127. Each character has a cell, XAdv pixels
// wide and Font.YAdv pixels high, and a grayscale glyph bitmap placed inside
// the cell at (XOff, YOff). The glyph may be smaller than the cell, or spill
// over any side of it; renderers crop whatever falls outside the cell.
//
// Codes with the high bit set are not printable: they have zero width and are
// never drawn. Since strings are iterated byte by byte, this also covers every
// byte of a multi-byte UTF-8 sequence.
//
// Tables are normally generated ahead of time; FromFace and FromFonter build
// one at startup from an existing font instead.
package font

// Glyph is the placement of one character.
type Glyph struct {
	Off  int32 // offset of the bitmap in Font.Data
	W, H int16 // bitmap size; the bitmap is W*H gray bytes, row-major
	XOff int16 // bitmap position within the cell; may be negative
	YOff int16
	XAdv int16 // cell width
}

// Font is a glyph table.
type Font struct {
	YAdv    int16 // cell height, i.e. line spacing
	XAdvMax int16
	XOffMin int16
	XOffMax int16
	YOffMin int16
	YOffMax int16

	Info [128]Glyph
	Data []byte // grayscale glyph bitmaps, 0 is background and 255 foreground
}

// Printable reports whether c has an entry in a font table.
func Printable(c byte) bool {
	return c&0x80 == 0
}

// Height returns the cell height.
func (f *Font) Height() int {
	return int(f.YAdv)
}

// MaxWidth returns the widest cell of the font.
func (f *Font) MaxWidth() int {
	return int(f.XAdvMax)
}

// Glyph returns the placement of c. ok is false for non-printable codes.
func (f *Font) Glyph(c byte) (g Glyph, ok bool) {
	if !Printable(c) {
		return Glyph{}, false
	}
	return f.Info[c], true
}

// Advance returns the cell width of c, zero if c is not printable.
func (f *Font) Advance(c byte) int {
	if !Printable(c) {
		return 0
	}
	return int(f.Info[c].XAdv)
}

// Width returns the sum of the cell widths of the printable bytes of s.
func (f *Font) Width(s string) int {
	w := 0
	for i := 0; i < len(s); i++ {
		w += f.Advance(s[i])
	}
	return w
}

// Bitmap returns the grayscale bitmap of g.
func (f *Font) Bitmap(g Glyph) []byte {
	n := int(g.W) * int(g.H)
	if n <= 0 {
		return nil
	}
	return f.Data[g.Off : int(g.Off)+n]
}

// Gray returns the bitmap value at (col, row) of g, relative to the bitmap's
// top left corner.
func (f *Font) Gray(g Glyph, col, row int) uint8 {
	if col < 0 || col >= int(g.W) || row < 0 || row >= int(g.H) {
		panic("font: glyph index out of range")
	}
	return f.Data[int(g.Off)+row*int(g.W)+col]
}
