package gfx

import (
	"github.com/flavioheleno/tft/font"
	"github.com/flavioheleno/tft/rgb565"
)

// Write draws img aligned on (x, y). The image is skipped unless it is
// entirely on the surface after the alignment shift.
func Write(s Surface, x, y int, img *rgb565.Image, align Align) {
	w, h := img.Width(), img.Height()
	x = align.shift(x, w)
	if !fits(s, x, y, w, h) {
		return
	}
	if b, ok := s.(Blitter); ok {
		b.Blit(x, y, img)
		return
	}
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			s.SetPixel(x+i, y+j, rgb565.Decode(img.PixelAt(i, j)))
		}
	}
}

// Digits holds one image per decimal digit, 0 to 9.
type Digits [10]*rgb565.Image

// WriteNumber writes n in decimal as a row of digit images aligned on
// (x, y), and returns the size of the whole row. Each digit is placed with
// Write, so digits that do not fit are skipped one by one.
func WriteNumber(s Surface, x, y int, n uint, digits *Digits, align Align) (w, h int) {
	// 20 digits hold any uint64.
	var buf [20]*rgb565.Image
	k := 0
	for {
		d := digits[n%10]
		if d == nil {
			panic("gfx: missing digit image")
		}
		buf[k] = d
		k++
		w += d.Width()
		n /= 10
		if n == 0 {
			break
		}
	}

	x = align.shift(x, w)
	for i := k - 1; i >= 0; i-- {
		Write(s, x, y, buf[i], AlignLeft)
		x += buf[i].Width()
	}
	if digits[0] != nil {
		h = digits[0].Height()
	}
	return w, h
}

// Label is a boxed text label rendered into an image.
type Label struct {
	Text        string
	Font        *font.Font
	Fg          rgb565.Color // text
	Bg          rgb565.Color // background
	Border      int          // border thickness, 0 for none
	BorderColor rgb565.Color
}

// RenderLabel draws l over the whole of img: border, background, then the
// text centered in the image. Text pixels falling outside img are cropped.
//
// img is overwritten in place, so it must not be in use by a pending
// transfer.
func RenderLabel(img *rgb565.Image, l Label) {
	w, h := img.Width(), img.Height()
	b := l.Border
	border, bg := rgb565.Encode(l.BorderColor), rgb565.Encode(l.Bg)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			if row < b || row >= h-b || col < b || col >= w-b {
				img.Pix[row*w+col] = border
			} else {
				img.Pix[row*w+col] = bg
			}
		}
	}

	x := (w - l.Font.Width(l.Text)) / 2
	y := (h - l.Font.Height()) / 2
	for i := 0; i < len(l.Text); i++ {
		c := l.Text[i]
		Cell(l.Font, c, l.Fg, l.Bg, func(col, row int, px rgb565.Color) {
			img.SetPixel(x+col, y+row, px)
		})
		x += l.Font.Advance(c)
	}
}

// NewLabel returns a w x h image with l rendered into it.
func NewLabel(w, h int, l Label) *rgb565.Image {
	img := rgb565.NewImage(w, h)
	RenderLabel(img, l)
	return img
}
