package rgb565

import (
	"image"
	"image/color"
)

// Image is a row-major array of wire pixels with its origin at (0, 0).
//
// It is the image asset format consumed by the display's blit: Pix can be
// streamed to the panel as is. An Image handed to an asynchronous write must
// not be modified until the write has completed.
type Image struct {
	Pix  []Pixel         // len(Pix) == Rect.Dx()*Rect.Dy()
	Rect image.Rectangle // always anchored at (0, 0)
}

// NewImage returns a w x h image filled with black.
func NewImage(w, h int) *Image {
	if w < 0 || h < 0 {
		panic("rgb565: negative image size")
	}
	return &Image{
		Pix:  make([]Pixel, w*h),
		Rect: image.Rect(0, 0, w, h),
	}
}

// FromPixels wraps pre-rendered pixel data (for example a table generated at
// build time). len(pix) must be w*h.
func FromPixels(w, h int, pix []Pixel) *Image {
	if w < 0 || h < 0 || len(pix) != w*h {
		panic("rgb565: pixel data does not match image size")
	}
	return &Image{Pix: pix, Rect: image.Rect(0, 0, w, h)}
}

// Width returns the image width in pixels.
func (p *Image) Width() int {
	return p.Rect.Dx()
}

// Height returns the image height in pixels.
func (p *Image) Height() int {
	return p.Rect.Dy()
}

// ColorModel returns the color model of the image.
func (p *Image) ColorModel() color.Model {
	return PixelModel
}

// Bounds returns the image bounds.
func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

// At implements image.Image.
func (p *Image) At(x, y int) color.Color {
	return p.PixelAt(x, y)
}

// PixelAt returns the wire pixel at (x, y), or zero outside the image.
func (p *Image) PixelAt(x, y int) Pixel {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return 0
	}
	return p.Pix[p.offset(x, y)]
}

// Set implements draw.Image.
func (p *Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	p.Pix[p.offset(x, y)] = PixelModel.Convert(c).(Pixel)
}

// SetPixel stores c at (x, y). Points outside the image are ignored.
//
// Together with Width and Height this makes an Image a drawing surface, so
// assets can be rendered with the same primitives as a panel.
func (p *Image) SetPixel(x, y int, c Color) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	p.Pix[p.offset(x, y)] = Encode(c)
}

// Fill sets every pixel to c.
func (p *Image) Fill(c Color) {
	v := Encode(c)
	for i := range p.Pix {
		p.Pix[i] = v
	}
}

func (p *Image) offset(x, y int) int {
	return y*p.Rect.Dx() + x
}
