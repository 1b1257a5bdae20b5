package tft

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/spi"
	"tinygo.org/x/drivers/pixel"

	"github.com/flavioheleno/tft/dma"
	"github.com/flavioheleno/tft/gfx"
	"github.com/flavioheleno/tft/rgb565"
)

// defaultMaxTx bounds the size of one SPI transaction; ports reporting a
// smaller limit get that instead.
const defaultMaxTx = 4096

// spiBus drives a controller over a 4-wire SPI port: MOSI, SCLK, CS and a
// D/C line selecting between command and data bytes.
//
// Pixel transfers run on a goroutine, which raises the completion interrupt
// when done; they own the connection until then.
type spiBus struct {
	c   spi.Conn
	dc  gpio.PinOut
	ctl *Controller
	irq dma.Interrupt

	maxTx   int
	burst   pixel.Image[pixel.RGB565BE] // fill pattern
	scratch []byte                      // wire bytes of copies with 16-bit layouts
	buf     [4]byte

	errMu sync.Mutex
	err   error
}

func newSPIBus(c spi.Conn, dc gpio.PinOut, ctl *Controller, irq dma.Interrupt) *spiBus {
	maxTx := defaultMaxTx
	if l, ok := c.(conn.Limits); ok && l.MaxTxSize() > 0 {
		maxTx = min(maxTx, l.MaxTxSize())
	}
	maxTx &^= 1 // whole pixels
	return &spiBus{
		c:       c,
		dc:      dc,
		ctl:     ctl,
		irq:     irq,
		maxTx:   maxTx,
		burst:   pixel.NewImage[pixel.RGB565BE](maxTx/2, 1),
		scratch: make([]byte, maxTx),
	}
}

// init resets the controller and runs its power-up script.
func (b *spiBus) init(rst gpio.PinOut, r gfx.Rotation) error {
	if rst != nil {
		if err := rst.Out(gpio.Low); err != nil {
			return fmt.Errorf("tft: failed to pull RST low: %w", err)
		}
		time.Sleep(b.ctl.ResetPulse)
		if err := rst.Out(gpio.High); err != nil {
			return fmt.Errorf("tft: failed to pull RST high: %w", err)
		}
		time.Sleep(10 * time.Millisecond)
	}
	for _, s := range b.ctl.script(r) {
		if err := b.sendCommand(s.Cmd, s.Data...); err != nil {
			return fmt.Errorf("tft: %s init command %#02x: %w", b.ctl, s.Cmd, err)
		}
		if s.Delay > 0 {
			time.Sleep(s.Delay)
		}
	}
	return nil
}

// sendCommand sends a command byte followed by its parameters.
func (b *spiBus) sendCommand(cmd byte, data ...byte) error {
	if err := b.dc.Out(gpio.Low); err != nil {
		return err
	}
	b.buf[0] = cmd
	if err := b.c.Tx(b.buf[:1], nil); err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	return b.sendData(data)
}

// sendData sends data bytes, split to the port's transaction size.
func (b *spiBus) sendData(data []byte) error {
	if err := b.dc.Out(gpio.High); err != nil {
		return err
	}
	for len(data) > 0 {
		n := min(len(data), b.maxTx)
		if err := b.c.Tx(data[:n], nil); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// SetWindow implements dma.Transport.
func (b *spiBus) SetWindow(x, y, w, h int) error {
	x2, y2 := x+w-1, y+h-1
	if err := b.sendCommand(cmdCASET, byte(x>>8), byte(x), byte(x2>>8), byte(x2)); err != nil {
		return err
	}
	if err := b.sendCommand(cmdRASET, byte(y>>8), byte(y), byte(y2>>8), byte(y2)); err != nil {
		return err
	}
	return b.sendCommand(cmdRAMWR)
}

// WritePixel implements dma.Transport.
func (b *spiBus) WritePixel(p rgb565.Pixel) error {
	v := p.Value()
	b.buf[0], b.buf[1] = byte(v>>8), byte(v)
	return b.sendData(b.buf[:2])
}

// WriteBlock implements dma.Transport.
func (b *spiBus) WriteBlock(src []rgb565.Pixel) error {
	if err := b.dc.Out(gpio.High); err != nil {
		return err
	}
	return b.copyPixels(src)
}

func (b *spiBus) copyPixels(src []rgb565.Pixel) error {
	per := b.maxTx / 2
	for len(src) > 0 {
		n := min(len(src), per)
		if err := b.c.Tx(rgb565.WireBytes(b.scratch, src[:n]), nil); err != nil {
			return err
		}
		src = src[n:]
	}
	return nil
}

func (b *spiBus) fillPixels(p rgb565.Pixel, count int) error {
	c := rgb565.Decode(p)
	b.burst.FillSolidColor(pixel.NewColor[pixel.RGB565BE](c.R, c.G, c.B))
	for count > 0 {
		if count >= b.burst.Len() {
			if err := b.c.Tx(b.burst.RawBuffer(), nil); err != nil {
				return err
			}
		} else if err := b.c.Tx(b.burst.Rescale(count, 1).RawBuffer(), nil); err != nil {
			return err
		}
		count -= b.burst.Len()
	}
	return nil
}

// StartTransfer implements dma.Transport.
func (b *spiBus) StartTransfer(src []rgb565.Pixel, count int, increment bool) error {
	if count <= 0 || len(src) == 0 || increment && len(src) < count {
		return errors.New("tft: invalid transfer")
	}
	if err := b.dc.Out(gpio.High); err != nil {
		return err
	}
	p := src[0]
	go func() {
		var err error
		if increment {
			err = b.copyPixels(src[:count])
		} else {
			err = b.fillPixels(p, count)
		}
		if err != nil {
			b.setErr(fmt.Errorf("tft: pixel transfer: %w", err))
		}
		b.irq.Trigger()
	}()
	return nil
}

// ResolveTransferAddress implements dma.Transport. Go memory has no uncached
// alias; transfers read it directly.
func (b *spiBus) ResolveTransferAddress(src []rgb565.Pixel) []rgb565.Pixel {
	return src
}

// ApplyOrientation sends the MADCTL byte for r.
func (b *spiBus) ApplyOrientation(r gfx.Rotation) error {
	return b.sendCommand(cmdMADCTL, b.ctl.madctl(r))
}

// Sleep turns the panel off.
func (b *spiBus) Sleep() error {
	return b.sendCommand(cmdDISPOF)
}

// Err returns the first error of an asynchronous transfer.
func (b *spiBus) Err() error {
	b.errMu.Lock()
	defer b.errMu.Unlock()
	return b.err
}

func (b *spiBus) setErr(err error) {
	b.errMu.Lock()
	if b.err == nil {
		b.err = err
	}
	b.errMu.Unlock()
}
