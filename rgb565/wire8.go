//go:build !rgb565_xfer16

package rgb565

// XferBits is the wire unit size the in-memory layout is arranged for.
const XferBits = 8

// The value is kept byte-swapped so that the low byte, which a
// little-endian CPU stores first, carries red and the top of green.
func fromValue(v uint16) Pixel {
	return Pixel(v<<8 | v>>8)
}

func toValue(p Pixel) uint16 {
	return uint16(p<<8 | p>>8)
}
