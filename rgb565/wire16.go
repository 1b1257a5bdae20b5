//go:build rgb565_xfer16

package rgb565

// XferBits is the wire unit size the in-memory layout is arranged for.
const XferBits = 16

func fromValue(v uint16) Pixel {
	return Pixel(v)
}

func toValue(p Pixel) uint16 {
	return uint16(p)
}
