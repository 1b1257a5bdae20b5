// Package rgb565 provides the color and pixel formats used by SPI TFT panels.
//
// Colors are 8 bits per channel (Color). Panels are fed 16-bit 5-6-5 pixels
// (Pixel), stored in memory exactly as they go out on the wire so that a
// transfer engine can stream them without conversion.
//
// Memory layout of a Pixel with the default 8-bit wire units (little-endian CPU):
//
//	bit:    | 15 14 13 12 11 10  9  8 |  7  6  5  4  3  2  1  0 |
//	value:  | g4 g3 g2 b7 b6 b5 b4 b3 | r7 r6 r5 r4 r3 g7 g6 g5 |
//	                                    lower byte is sent first
//
//	on the wire: | r7 r6 r5 r4 r3 g7 g6 g5 | g4 g3 g2 b7 b6 b5 b4 b3 |
//
// Building with the rgb565_xfer16 tag stores the plain 5-6-5 value instead,
// which is what a bus configured for 16-bit words sends MSB first.
//
// Only the top 5 (red, blue) or 6 (green) bits of each channel are kept.
//
// Example usage:
//
//	img := rgb565.NewImage(100, 50)
//	img.SetPixel(10, 20, rgb565.Red)
//	p := img.PixelAt(10, 20)
//	c := rgb565.Decode(p) // {0xf8, 0x00, 0x00, 0xff}
package rgb565
