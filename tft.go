package tft

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	"github.com/flavioheleno/tft/dma"
	"github.com/flavioheleno/tft/font"
	"github.com/flavioheleno/tft/gfx"
	"github.com/flavioheleno/tft/rgb565"
)

// Transport is the panel link a Dev drives.
type Transport interface {
	dma.Transport
	// ApplyOrientation sets the panel's scan direction for r.
	ApplyOrientation(r gfx.Rotation) error
}

// Opts is the configuration of a Dev.
type Opts struct {
	// Controller is the panel controller (default: ST7796).
	Controller *Controller
	// W and H override the controller's native panel size.
	W, H int
	// Rotation is the initial orientation (default: Portrait).
	Rotation gfx.Rotation

	// Optional reset and backlight pins.
	RST gpio.PinIO
	BL  gpio.PinOut

	// Hz is the SPI clock (default: 15MHz).
	Hz physic.Frequency

	// Work is the size in pixels of the buffer text is rendered through
	// (default: 64).
	Work int
	// Capacity and Waiter configure the transfer queue. Waiter defaults to
	// blocking on a condition variable.
	Capacity int
	Waiter   dma.Waiter
}

// DefaultOpts is used when nil is passed to a constructor.
var DefaultOpts = Opts{
	Controller: ST7796,
	Hz:         15 * physic.MegaHertz,
	Work:       64,
}

// Dev is a TFT panel. It is a gfx.Surface: fills and images are queued to
// the transfer engine, everything else is written directly once the engine is
// idle.
//
// Drawing calls do not return errors. Geometry that does not fit is ignored,
// and bus errors are kept for Err.
//
// A Dev must only be drawn on from one goroutine at a time.
type Dev struct {
	t   Transport
	e   *dma.Engine
	ctl *Controller

	bus *spiBus // set when driving a real SPI port
	rst gpio.PinOut
	bl  gpio.PinOut

	physW, physH int
	w, h         int
	rot          gfx.Rotation
	brightness   int

	// work is shared by every synchronous text render; it is only touched
	// while the engine is idle.
	work []rgb565.Pixel

	halted bool

	errMu sync.Mutex
	err   error
}

var (
	_ gfx.Surface     = (*Dev)(nil)
	_ gfx.RectFiller  = (*Dev)(nil)
	_ gfx.CellPrinter = (*Dev)(nil)
	_ gfx.Blitter     = (*Dev)(nil)
	_ display.Drawer  = (*Dev)(nil)
)

// NewSPI returns a Dev on an SPI port.
//
// The port is configured for Mode0 (CPOL=0, CPHA=0), 8-bit transfers, at
// opts.Hz. dc is the Data/Command pin. The controller is reset through
// opts.RST when given, then initialized and turned on.
//
// opts can be nil to use DefaultOpts.
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if dc == nil {
		return nil, errors.New("tft: a D/C pin is required")
	}
	o, err := opts.resolve()
	if err != nil {
		return nil, err
	}
	c, err := p.Connect(o.Hz, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}

	irq := &dma.Line{}
	b := newSPIBus(c, dc, o.Controller, irq)
	if err := b.init(o.RST, o.Rotation); err != nil {
		return nil, err
	}

	d, err := newDev(b, irq, &o)
	if err != nil {
		return nil, err
	}
	d.bus = b
	d.rst = o.RST
	if d.bl != nil {
		if err := d.SetBrightness(100); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// New returns a Dev on a custom transport. irq is the interrupt t raises when
// a transfer completes. The transport is set to opts.Rotation.
func New(t Transport, irq dma.Interrupt, opts *Opts) (*Dev, error) {
	if t == nil {
		return nil, errors.New("tft: a transport is required")
	}
	o, err := opts.resolve()
	if err != nil {
		return nil, err
	}
	if err := t.ApplyOrientation(o.Rotation); err != nil {
		return nil, fmt.Errorf("tft: failed to set orientation: %w", err)
	}
	return newDev(t, irq, &o)
}

// resolve applies the defaults and validates.
func (opts *Opts) resolve() (Opts, error) {
	o := DefaultOpts
	if opts != nil {
		o = *opts
	}
	if o.Controller == nil {
		o.Controller = DefaultOpts.Controller
	}
	if o.W == 0 && o.H == 0 {
		o.W, o.H = o.Controller.W, o.Controller.H
	}
	if o.W <= 0 || o.H <= 0 || o.W > 0xffff || o.H > 0xffff {
		return o, fmt.Errorf("tft: invalid panel size %dx%d", o.W, o.H)
	}
	if !o.Rotation.Valid() {
		return o, fmt.Errorf("tft: invalid rotation %d", o.Rotation)
	}
	if o.Hz == 0 {
		o.Hz = DefaultOpts.Hz
	}
	if o.Work == 0 {
		o.Work = DefaultOpts.Work
	}
	if o.Work < 1 {
		return o, fmt.Errorf("tft: invalid work buffer size %d", o.Work)
	}
	return o, nil
}

func newDev(t Transport, irq dma.Interrupt, o *Opts) (*Dev, error) {
	w, h := gfx.Dims(o.W, o.H, o.Rotation)
	waiter := o.Waiter
	if waiter == nil {
		waiter = dma.NewCond()
	}
	e, err := dma.NewEngine(t, irq, w, h, &dma.Opts{Capacity: o.Capacity, Waiter: waiter})
	if err != nil {
		return nil, err
	}
	return &Dev{
		t:          t,
		e:          e,
		ctl:        o.Controller,
		bl:         o.BL,
		physW:      o.W,
		physH:      o.H,
		w:          w,
		h:          h,
		rot:        o.Rotation,
		brightness: 100,
		work:       make([]rgb565.Pixel, o.Work),
	}, nil
}

// Width is the logical width, for the current rotation.
func (d *Dev) Width() int {
	return d.w
}

// Height is the logical height, for the current rotation.
func (d *Dev) Height() int {
	return d.h
}

func (d *Dev) fits(x, y, w, h int) bool {
	return w > 0 && h > 0 && x >= 0 && y >= 0 && x+w <= d.w && y+h <= d.h
}

// SetPixel writes one pixel. It waits for queued transfers first.
func (d *Dev) SetPixel(x, y int, c rgb565.Color) {
	if d.halted || x < 0 || y < 0 || x >= d.w || y >= d.h {
		return
	}
	d.e.WaitIdle()
	if err := d.t.SetWindow(x, y, 1, 1); err != nil {
		d.setErr(err)
		return
	}
	if err := d.t.WritePixel(rgb565.Encode(c)); err != nil {
		d.setErr(err)
	}
}

// FillRect queues a solid fill, clipped to the panel.
func (d *Dev) FillRect(x, y, w, h int, c rgb565.Color) {
	if d.halted {
		return
	}
	d.e.EnqueueFill(x, y, w, h, rgb565.Encode(c))
}

// Fill paints the whole panel.
func (d *Dev) Fill(c rgb565.Color) {
	d.FillRect(0, 0, d.w, d.h, c)
}

// Line draws a line between two points on the panel. Horizontal and vertical
// lines are queued as fills.
func (d *Dev) Line(x1, y1, x2, y2 int, c rgb565.Color) {
	if d.halted {
		return
	}
	switch {
	case y1 == y2 && x1 != x2:
		if y1 < 0 || y1 >= d.h || x1 < 0 || x1 >= d.w || x2 < 0 || x2 >= d.w {
			return
		}
		d.FillRect(min(x1, x2), y1, max(x1, x2)-min(x1, x2)+1, 1, c)
	case x1 == x2 && y1 != y2:
		if x1 < 0 || x1 >= d.w || y1 < 0 || y1 >= d.h || y2 < 0 || y2 >= d.h {
			return
		}
		d.FillRect(x1, min(y1, y2), 1, max(y1, y2)-min(y1, y2)+1, c)
	default:
		gfx.Line(d, x1, y1, x2, y2, c)
	}
}

// DrawRect draws the outline of a rectangle as four fills, each corner
// covered once.
func (d *Dev) DrawRect(x, y, w, h int, c rgb565.Color) {
	if d.halted || !d.fits(x, y, w, h) {
		return
	}
	if w <= 2 || h <= 2 {
		d.FillRect(x, y, w, h, c)
		return
	}
	d.FillRect(x, y, w-1, 1, c)       // top
	d.FillRect(x+w-1, y, 1, h-1, c)   // right
	d.FillRect(x+1, y+h-1, w-1, 1, c) // bottom
	d.FillRect(x, y+1, 1, h-1, c)     // left
}

// DrawCircle draws the parts of a circle selected by q.
func (d *Dev) DrawCircle(cx, cy, r int, c rgb565.Color, q gfx.Quadrant) {
	if d.halted {
		return
	}
	gfx.DrawCircle(d, cx, cy, r, c, q)
}

// DrawCircleAA draws an anti-aliased circle over background bg.
func (d *Dev) DrawCircleAA(cx, cy, r int, fg, bg rgb565.Color, q gfx.Quadrant) {
	if d.halted {
		return
	}
	gfx.DrawCircleAA(d, cx, cy, r, fg, bg, q)
}

// PrintChar prints one character. See gfx.PrintChar.
func (d *Dev) PrintChar(x, y int, c byte, f *font.Font, fg, bg rgb565.Color, align gfx.Align) {
	if d.halted {
		return
	}
	gfx.PrintChar(d, x, y, c, f, fg, bg, align)
}

// Print prints a string. See gfx.Print.
func (d *Dev) Print(x, y int, s string, f *font.Font, fg, bg rgb565.Color, align gfx.Align) {
	if d.halted {
		return
	}
	gfx.Print(d, x, y, s, f, fg, bg, align)
}

// PrintCell renders a character cell through the work buffer, flushing it
// to the panel each time it fills up.
func (d *Dev) PrintCell(x, y int, c byte, f *font.Font, fg, bg rgb565.Color) {
	w, h := f.Advance(c), f.Height()
	if d.halted || !d.fits(x, y, w, h) {
		return
	}
	d.e.WaitIdle()
	if err := d.t.SetWindow(x, y, w, h); err != nil {
		d.setErr(err)
		return
	}
	n := 0
	var err error
	gfx.Cell(f, c, fg, bg, func(col, row int, px rgb565.Color) {
		if err != nil {
			return
		}
		d.work[n] = rgb565.Encode(px)
		n++
		if n == len(d.work) {
			err = d.t.WriteBlock(d.work)
			n = 0
		}
	})
	if err == nil && n > 0 {
		err = d.t.WriteBlock(d.work[:n])
	}
	if err != nil {
		d.setErr(err)
	}
}

// Write draws an image. See gfx.Write.
func (d *Dev) Write(x, y int, img *rgb565.Image, align gfx.Align) {
	if d.halted {
		return
	}
	gfx.Write(d, x, y, img, align)
}

// Blit queues a copy of img to (x, y). img must not be modified until the
// engine is idle.
func (d *Dev) Blit(x, y int, img *rgb565.Image) {
	if d.halted {
		return
	}
	d.e.EnqueueCopy(x, y, img.Width(), img.Height(), img.Pix)
}

// WriteNumber writes n with digit images. See gfx.WriteNumber.
func (d *Dev) WriteNumber(x, y int, n uint, digits *gfx.Digits, align gfx.Align) (w, h int) {
	return gfx.WriteNumber(d, x, y, n, digits, align)
}

// SetRotation changes the orientation. Queued transfers complete in the old
// orientation first.
func (d *Dev) SetRotation(r gfx.Rotation) error {
	if !r.Valid() {
		return fmt.Errorf("tft: invalid rotation %d", r)
	}
	if d.halted {
		return errors.New("tft: halted")
	}
	d.e.WaitIdle()
	d.w, d.h = gfx.Dims(d.physW, d.physH, r)
	d.e.Resize(d.w, d.h)
	d.rot = r
	if err := d.t.ApplyOrientation(r); err != nil {
		return fmt.Errorf("tft: failed to set orientation: %w", err)
	}
	return nil
}

// Controller returns the panel controller.
func (d *Dev) Controller() *Controller {
	return d.ctl
}

// Rotation returns the current orientation.
func (d *Dev) Rotation() gfx.Rotation {
	return d.rot
}

// SetBrightness sets the backlight, in percent. Without PWM on the backlight
// pin any non-zero value turns it fully on.
func (d *Dev) SetBrightness(pct int) error {
	pct = max(0, min(pct, 100))
	d.brightness = pct
	if d.bl == nil {
		return nil
	}
	l := gpio.Low
	if pct > 0 {
		l = gpio.High
	}
	if err := d.bl.Out(l); err != nil {
		return fmt.Errorf("tft: failed to set backlight: %w", err)
	}
	return nil
}

// Brightness returns the last brightness set.
func (d *Dev) Brightness() int {
	return d.brightness
}

// Reset pulses the reset line and initializes the controller again, in the
// current orientation.
func (d *Dev) Reset() error {
	if d.bus == nil {
		return errors.New("tft: reset needs an SPI transport")
	}
	d.e.WaitIdle()
	if err := d.bus.init(d.rst, d.rot); err != nil {
		return err
	}
	d.halted = false
	return nil
}

// WaitIdle waits for all queued transfers to complete.
func (d *Dev) WaitIdle() {
	d.e.WaitIdle()
}

// Idle reports whether no transfer is queued or in flight.
func (d *Dev) Idle() bool {
	return d.e.Idle()
}

// Stalls returns how many times drawing waited on a full transfer queue.
func (d *Dev) Stalls() uint64 {
	return d.e.Stalls()
}

// Err returns the first error met while drawing, if any.
func (d *Dev) Err() error {
	d.errMu.Lock()
	err := d.err
	d.errMu.Unlock()
	if err != nil {
		return err
	}
	if err := d.e.Err(); err != nil {
		return err
	}
	if e, ok := d.t.(interface{ Err() error }); ok {
		return e.Err()
	}
	return nil
}

func (d *Dev) setErr(err error) {
	d.errMu.Lock()
	if d.err == nil {
		d.err = fmt.Errorf("tft: %w", err)
	}
	d.errMu.Unlock()
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return rgb565.PixelModel
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.w, d.h)
}

// Draw implements display.Drawer. The part of src at sp is converted into a
// new image and queued for copy to r.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errors.New("tft: halted")
	}
	// Keep sp aligned with the clipped rectangle.
	c := r.Intersect(d.Bounds())
	if c.Empty() {
		return nil
	}
	sp = sp.Add(c.Min.Sub(r.Min))
	img := rgb565.NewImage(c.Dx(), c.Dy())
	draw.Draw(img, img.Bounds(), src, sp, draw.Src)
	d.e.EnqueueCopy(c.Min.X, c.Min.Y, c.Dx(), c.Dy(), img.Pix)
	return nil
}

// Halt waits for pending transfers and turns the panel off. Drawing calls
// are ignored afterwards, until Reset.
func (d *Dev) Halt() error {
	d.e.WaitIdle()
	d.halted = true
	if s, ok := d.t.(interface{ Sleep() error }); ok {
		return s.Sleep()
	}
	return nil
}

// Close waits for pending transfers and stops the transfer engine. It
// returns the first error met while drawing.
func (d *Dev) Close() error {
	err := d.e.Close()
	if first := d.Err(); first != nil {
		return first
	}
	return err
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("tft.Dev{%dx%d}", d.w, d.h)
}
