package rgb565

import (
	"image/color"
	"unsafe"
)

// Pixel is a 5-6-5 pixel in wire order. See the package documentation for
// the memory layout.
type Pixel uint16

// Transfer engines stream []Pixel straight out of memory; a Pixel must be
// exactly one 16-bit wire unit with no padding.
var _ = [1]struct{}{}[unsafe.Sizeof(Pixel(0))-2]

// Encode packs c into a wire pixel. Alpha is ignored.
func Encode(c Color) Pixel {
	return fromValue(uint16(c.R&0xf8)<<8 | uint16(c.G&0xfc)<<3 | uint16(c.B)>>3)
}

// Decode unpacks p. The low 3 (red, blue) or 2 (green) bits of each channel
// are zero; the result is opaque.
func Decode(p Pixel) Color {
	v := p.Value()
	return New(uint8(v>>8)&0xf8, uint8(v>>3)&0xfc, uint8(v<<3))
}

// Value returns the plain rrrrrggggggbbbbb value of p, whatever the layout.
func (p Pixel) Value() uint16 {
	return toValue(p)
}

// RGBA implements color.Color.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	return Decode(p).RGBA()
}

func toPixel(c color.Color) color.Color {
	if p, ok := c.(Pixel); ok {
		return p
	}
	return Encode(Model.Convert(c).(Color))
}

// PixelModel converts any color to Pixel.
var PixelModel = color.ModelFunc(toPixel)

// Bytes returns the in-memory bytes of px without copying. With the default
// layout on a little-endian CPU these are the wire bytes in send order.
func Bytes(px []Pixel) []byte {
	if len(px) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&px[0])), len(px)*int(unsafe.Sizeof(px[0])))
}

// WireBytes returns src as big-endian bytes for a bus sending 8-bit units.
// With the default layout it is a view of src and scratch is unused;
// otherwise the pixels are converted into scratch, which must hold 2*len(src)
// bytes.
func WireBytes(scratch []byte, src []Pixel) []byte {
	if XferBits == 8 {
		return Bytes(src)
	}
	out := scratch[:2*len(src)]
	for i, p := range src {
		v := p.Value()
		out[2*i] = byte(v >> 8)
		out[2*i+1] = byte(v)
	}
	return out
}
