package font

import (
	"errors"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Printable ASCII range converted from other font formats. Control codes keep
// an empty zero-width entry.
const (
	firstGlyph = 0x20
	lastGlyph  = 0x7e
)

// FromFace rasterizes the printable ASCII range of face into a Font.
//
// The cell height is the face's line height and the baseline sits at the
// face's ascent. Gray levels are taken from the glyph mask alpha, so
// anti-aliased faces keep their edges.
func FromFace(face font.Face) (*Font, error) {
	if face == nil {
		return nil, errors.New("font: nil face")
	}
	m := face.Metrics()
	b, err := newBuilder(m.Height.Ceil())
	if err != nil {
		return nil, err
	}
	dot := fixed.P(0, m.Ascent.Ceil())
	for c := firstGlyph; c <= lastGlyph; c++ {
		dr, mask, maskp, adv, ok := face.Glyph(dot, rune(c))
		if !ok {
			continue
		}
		w, h := dr.Dx(), dr.Dy()
		gray := make([]byte, w*h)
		for row := 0; row < h; row++ {
			for col := 0; col < w; col++ {
				_, _, _, a := mask.At(maskp.X+col, maskp.Y+row).RGBA()
				gray[row*w+col] = uint8(a >> 8)
			}
		}
		if err := b.add(byte(c), w, h, dr.Min.X, dr.Min.Y, adv.Round(), gray); err != nil {
			return nil, err
		}
	}
	return b.font(), nil
}

// FromFonter converts a tinyfont font. tinyfont glyphs are one bit deep, so
// every set pixel becomes full foreground.
func FromFonter(f tinyfont.Fonter) (*Font, error) {
	if f == nil {
		return nil, errors.New("font: nil fonter")
	}
	b, err := newBuilder(int(f.GetYAdvance()))
	if err != nil {
		return nil, err
	}

	// tinyfont positions glyphs against the baseline; cells start at the top.
	ascent := 0
	for c := firstGlyph; c <= lastGlyph; c++ {
		info := f.GetGlyph(rune(c)).Info()
		if info.Rune == rune(c) {
			ascent = max(ascent, -int(info.YOffset))
		}
	}

	for c := firstGlyph; c <= lastGlyph; c++ {
		g := f.GetGlyph(rune(c))
		info := g.Info()
		if info.Rune != rune(c) {
			continue
		}
		r := &recorder{
			w:    int(info.Width),
			h:    int(info.Height),
			x0:   int(info.XOffset),
			y0:   ascent + int(info.YOffset),
			gray: make([]byte, int(info.Width)*int(info.Height)),
		}
		g.Draw(r, 0, int16(ascent), color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
		if err := b.add(byte(c), r.w, r.h, r.x0, r.y0, int(info.XAdvance), r.gray); err != nil {
			return nil, err
		}
	}
	return b.font(), nil
}

// recorder captures the pixels a tinyfont glyph draws into its bitmap box.
type recorder struct {
	w, h   int
	x0, y0 int
	gray   []byte
}

var _ drivers.Displayer = (*recorder)(nil)

func (r *recorder) Size() (x, y int16) {
	return 0x7fff, 0x7fff
}

func (r *recorder) SetPixel(x, y int16, c color.RGBA) {
	col, row := int(x)-r.x0, int(y)-r.y0
	if col < 0 || col >= r.w || row < 0 || row >= r.h {
		return
	}
	r.gray[row*r.w+col] = 0xff
}

func (r *recorder) Display() error {
	return nil
}
