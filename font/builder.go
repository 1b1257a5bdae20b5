package font

import (
	"errors"
	"math"
)

// builder accumulates glyphs into a Font.
type builder struct {
	f    Font
	seen bool
}

func newBuilder(yAdv int) (*builder, error) {
	if yAdv <= 0 || yAdv > math.MaxInt16 {
		return nil, errors.New("font: line height out of range")
	}
	return &builder{f: Font{YAdv: int16(yAdv)}}, nil
}

// add stores the glyph for c. gray must hold w*h bytes.
func (b *builder) add(c byte, w, h, xOff, yOff, xAdv int, gray []byte) error {
	if !Printable(c) {
		return errors.New("font: character is not printable")
	}
	for _, v := range []int{w, h, xOff, yOff, xAdv} {
		if v < math.MinInt16 || v > math.MaxInt16 {
			return errors.New("font: glyph metrics out of range")
		}
	}
	if w < 0 || h < 0 || len(gray) != w*h {
		return errors.New("font: glyph bitmap does not match its size")
	}
	if len(b.f.Data)+len(gray) > math.MaxInt32 {
		return errors.New("font: glyph data too large")
	}

	b.f.Info[c] = Glyph{
		Off:  int32(len(b.f.Data)),
		W:    int16(w),
		H:    int16(h),
		XOff: int16(xOff),
		YOff: int16(yOff),
		XAdv: int16(xAdv),
	}
	b.f.Data = append(b.f.Data, gray...)

	g := b.f.Info[c]
	if !b.seen {
		b.f.XAdvMax, b.f.XOffMin, b.f.XOffMax = g.XAdv, g.XOff, g.XOff
		b.f.YOffMin, b.f.YOffMax = g.YOff, g.YOff
		b.seen = true
		return nil
	}
	b.f.XAdvMax = max(b.f.XAdvMax, g.XAdv)
	b.f.XOffMin = min(b.f.XOffMin, g.XOff)
	b.f.XOffMax = max(b.f.XOffMax, g.XOff)
	b.f.YOffMin = min(b.f.YOffMin, g.YOff)
	b.f.YOffMax = max(b.f.YOffMax, g.YOff)
	return nil
}

func (b *builder) font() *Font {
	f := b.f
	return &f
}
