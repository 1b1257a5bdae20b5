// Package tft controls RGB565 SPI TFT panels, such as the ST7796 and ILI9341
// modules, with drawing overlapped with the bus.
//
// This driver implements the display.Drawer interface from periph.io, and
// its Dev is a gfx.Surface so every primitive of the gfx package draws on it.
//
// # Hardware Connection
//
// Connect the panel via SPI:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL/CLK     → SPI Clock (SCLK)
//	SDA/MOSI    → SPI Data (MOSI)
//	DC          → GPIO (any available pin)
//	CS          → SPI Chip Select
//	RST         → Optional: GPIO for hardware reset
//	BL          → Optional: GPIO for the backlight
//
// # Basic Usage
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/host/v3"
//
//		"github.com/flavioheleno/tft"
//		"github.com/flavioheleno/tft/gfx"
//		"github.com/flavioheleno/tft/rgb565"
//	)
//
//	func main() {
//		host.Init()
//		bus, _ := spireg.Open("")
//		dev, _ := tft.NewSPI(bus, gpioreg.ByName("GPIO24"), &tft.Opts{
//			Controller: tft.ST7796,
//			Rotation:   gfx.Landscape,
//			RST:        gpioreg.ByName("GPIO25"),
//		})
//		defer dev.Halt()
//
//		dev.Fill(rgb565.Black)
//		dev.DrawCircleAA(240, 160, 100, rgb565.White, rgb565.Black, gfx.All)
//		dev.WaitIdle()
//	}
//
// # Transfers
//
// Solid fills, straight lines, rectangle outlines and images are queued to a
// dma.Engine and sent by a goroutine while the caller goes on drawing. The
// queue is short; a caller that gets ahead of the bus waits for a free slot,
// which Stalls counts. Single pixels, text and orientation changes wait for
// the queue to drain first, then write directly.
//
// An image handed to Blit, Write or WriteNumber is read while the transfer
// runs: do not modify it before WaitIdle returns. Draw copies its source and
// has no such restriction.
//
// # Errors
//
// Drawing calls never fail. Fills are clipped to the panel, other shapes
// that do not fit are ignored, and bus errors are kept: Err returns the
// first one.
//
// # Testing Without Hardware
//
// NewSim returns a Dev on an in-memory panel, with the same addressing and
// asynchronous transfers as the real bus.
package tft
