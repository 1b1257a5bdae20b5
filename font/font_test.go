package font

import (
	"image/color"
	"testing"

	"golang.org/x/image/font/basicfont"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

func TestPrintable(t *testing.T) {
	for _, tc := range []struct {
		c    byte
		want bool
	}{
		{0x00, true},
		{'A', true},
		{0x7f, true},
		{0x80, false},
		{0xc3, false},
		{0xff, false},
	} {
		if got := Printable(tc.c); got != tc.want {
			t.Errorf("Printable(%#x) = %t, want %t", tc.c, got, tc.want)
		}
	}
}

func TestFromFace(t *testing.T) {
	f, err := FromFace(basicfont.Face7x13)
	if err != nil {
		t.Fatal(err)
	}
	if got := f.Height(); got != 13 {
		t.Errorf("Height() = %d, want 13", got)
	}
	if got := f.MaxWidth(); got != 7 {
		t.Errorf("MaxWidth() = %d, want 7", got)
	}
	g, ok := f.Glyph('A')
	if !ok {
		t.Fatal("Glyph('A') not ok")
	}
	if g.W != 6 || g.H != 13 || g.XAdv != 7 {
		t.Errorf("Glyph('A') = %+v", g)
	}
	if len(f.Bitmap(g)) != 6*13 {
		t.Errorf("len(Bitmap('A')) = %d", len(f.Bitmap(g)))
	}
	lit := 0
	for _, v := range f.Bitmap(g) {
		if v != 0 {
			lit++
		}
	}
	if lit == 0 {
		t.Error("glyph 'A' has no foreground pixels")
	}
	if g, _ := f.Glyph('\n'); g.XAdv != 0 {
		t.Errorf("control code advance = %d, want 0", g.XAdv)
	}
}

func TestWidth(t *testing.T) {
	f, err := FromFace(basicfont.Face7x13)
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		name string
		s    string
		want int
	}{
		{"empty", "", 0},
		{"ascii", "AB", 14},
		{"digits", "12345", 35},
		{"non printable skipped", "A\xe9B", 14},
		{"utf8 bytes skipped", "Aé", 7},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := f.Width(tc.s); got != tc.want {
				t.Errorf("Width(%q) = %d, want %d", tc.s, got, tc.want)
			}
		})
	}
	if got := f.Advance(0x80); got != 0 {
		t.Errorf("Advance(0x80) = %d, want 0", got)
	}
}

func TestGrayOutOfRange(t *testing.T) {
	f, err := FromFace(basicfont.Face7x13)
	if err != nil {
		t.Fatal(err)
	}
	g, _ := f.Glyph('A')
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	f.Gray(g, int(g.W), 0)
}

// boxFont is a tinyfont.Fonter with 3x4 hollow boxes sitting on the baseline.
type boxFont struct{}

type boxGlyph struct {
	r rune
}

func (boxFont) GetGlyph(r rune) tinyfont.Glypher {
	return boxGlyph{r: r}
}

func (boxFont) GetYAdvance() uint8 {
	return 6
}

func (g boxGlyph) Info() tinyfont.GlyphInfo {
	if g.r != 'o' {
		return tinyfont.GlyphInfo{Rune: '?'}
	}
	return tinyfont.GlyphInfo{Rune: 'o', Width: 3, Height: 4, XAdvance: 4, XOffset: 0, YOffset: -4}
}

func (g boxGlyph) Draw(d drivers.Displayer, x, y int16, c color.RGBA) {
	if g.r != 'o' {
		return
	}
	for row := int16(0); row < 4; row++ {
		for col := int16(0); col < 3; col++ {
			if row == 0 || row == 3 || col != 1 {
				d.SetPixel(x+col, y-4+row, c)
			}
		}
	}
}

func TestFromFonter(t *testing.T) {
	f, err := FromFonter(boxFont{})
	if err != nil {
		t.Fatal(err)
	}
	if got := f.Height(); got != 6 {
		t.Errorf("Height() = %d, want 6", got)
	}
	g, _ := f.Glyph('o')
	want := Glyph{W: 3, H: 4, XOff: 0, YOff: 0, XAdv: 4}
	if g != want {
		t.Errorf("Glyph('o') = %+v, want %+v", g, want)
	}
	bitmap := []byte{
		0xff, 0xff, 0xff,
		0xff, 0x00, 0xff,
		0xff, 0x00, 0xff,
		0xff, 0xff, 0xff,
	}
	got := f.Bitmap(g)
	for i := range bitmap {
		if got[i] != bitmap[i] {
			t.Fatalf("Bitmap('o') = %v, want %v", got, bitmap)
		}
	}
	if f.Advance('x') != 0 {
		t.Errorf("missing glyph advance = %d, want 0", f.Advance('x'))
	}
	if f.Width("oo") != 8 {
		t.Errorf(`Width("oo") = %d, want 8`, f.Width("oo"))
	}
}

func TestFromNil(t *testing.T) {
	if _, err := FromFace(nil); err == nil {
		t.Error("FromFace(nil) succeeded")
	}
	if _, err := FromFonter(nil); err == nil {
		t.Error("FromFonter(nil) succeeded")
	}
}
