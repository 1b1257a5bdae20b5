package tft

import (
	"errors"
	"image"
	"sync"

	"github.com/flavioheleno/tft/dma"
	"github.com/flavioheleno/tft/gfx"
	"github.com/flavioheleno/tft/rgb565"
)

// Sim is an in-memory panel. It keeps the panel RAM in the native portrait
// orientation and follows the window addressing and rotation of a real
// controller. Transfers run on their own goroutine, like a real bus.
type Sim struct {
	irq dma.Interrupt

	mu     sync.Mutex
	pw, ph int // physical size, portrait
	rot    gfx.Rotation
	ram    []rgb565.Pixel
	win    image.Rectangle // logical
	cur    image.Point
	on     bool

	windows   int
	transfers int
}

var _ Transport = (*Sim)(nil)

// NewSim returns a Dev drawing on a simulated panel, and the panel.
//
// opts can be nil to use DefaultOpts; the pins and the clock are ignored.
func NewSim(opts *Opts) (*Dev, *Sim, error) {
	o, err := opts.resolve()
	if err != nil {
		return nil, nil, err
	}
	irq := &dma.Line{}
	s := newSim(o.W, o.H, irq)
	o.RST, o.BL = nil, nil
	d, err := New(s, irq, &o)
	if err != nil {
		return nil, nil, err
	}
	return d, s, nil
}

func newSim(w, h int, irq dma.Interrupt) *Sim {
	return &Sim{
		irq: irq,
		pw:  min(w, h),
		ph:  max(w, h),
		ram: make([]rgb565.Pixel, w*h),
		on:  true,
	}
}

// phys maps a logical point to its RAM offset.
func (s *Sim) phys(x, y int) int {
	switch s.rot {
	case gfx.Landscape:
		x, y = s.pw-1-y, x
	case gfx.Portrait2:
		x, y = s.pw-1-x, s.ph-1-y
	case gfx.Landscape2:
		x, y = y, s.ph-1-x
	}
	return y*s.pw + x
}

func (s *Sim) size() (w, h int) {
	return gfx.Dims(s.pw, s.ph, s.rot)
}

// SetWindow implements dma.Transport.
func (s *Sim) SetWindow(x, y, w, h int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	lw, lh := s.size()
	r := image.Rect(x, y, x+w, y+h)
	if w <= 0 || h <= 0 || !r.In(image.Rect(0, 0, lw, lh)) {
		return errors.New("tft: window outside the panel")
	}
	s.win = r
	s.cur = r.Min
	s.windows++
	return nil
}

// write stores p at the cursor and advances it, wrapping at the end of the
// window.
func (s *Sim) write(p rgb565.Pixel) {
	if s.win.Empty() {
		return
	}
	s.ram[s.phys(s.cur.X, s.cur.Y)] = p
	s.cur.X++
	if s.cur.X == s.win.Max.X {
		s.cur.X = s.win.Min.X
		s.cur.Y++
		if s.cur.Y == s.win.Max.Y {
			s.cur.Y = s.win.Min.Y
		}
	}
}

// WritePixel implements dma.Transport.
func (s *Sim) WritePixel(p rgb565.Pixel) error {
	s.mu.Lock()
	s.write(p)
	s.mu.Unlock()
	return nil
}

// WriteBlock implements dma.Transport.
func (s *Sim) WriteBlock(src []rgb565.Pixel) error {
	s.mu.Lock()
	for _, p := range src {
		s.write(p)
	}
	s.mu.Unlock()
	return nil
}

// StartTransfer implements dma.Transport.
func (s *Sim) StartTransfer(src []rgb565.Pixel, count int, increment bool) error {
	if count <= 0 || len(src) == 0 || increment && len(src) < count {
		return errors.New("tft: invalid transfer")
	}
	p := src[0]
	go func() {
		s.mu.Lock()
		for i := 0; i < count; i++ {
			if increment {
				p = src[i]
			}
			s.write(p)
		}
		s.transfers++
		s.mu.Unlock()
		s.irq.Trigger()
	}()
	return nil
}

// ResolveTransferAddress implements dma.Transport.
func (s *Sim) ResolveTransferAddress(src []rgb565.Pixel) []rgb565.Pixel {
	return src
}

// ApplyOrientation implements Transport.
func (s *Sim) ApplyOrientation(r gfx.Rotation) error {
	if !r.Valid() {
		return errors.New("tft: invalid rotation")
	}
	s.mu.Lock()
	s.rot = r
	s.win = image.Rectangle{}
	s.mu.Unlock()
	return nil
}

// Sleep turns the simulated panel off.
func (s *Sim) Sleep() error {
	s.mu.Lock()
	s.on = false
	s.mu.Unlock()
	return nil
}

// On reports whether the panel is on.
func (s *Sim) On() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.on
}

// Pixel returns the pixel at logical (x, y), in the current orientation.
func (s *Sim) Pixel(x, y int) rgb565.Pixel {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, h := s.size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return 0
	}
	return s.ram[s.phys(x, y)]
}

// At returns the color at logical (x, y), in the current orientation.
func (s *Sim) At(x, y int) rgb565.Color {
	return rgb565.Decode(s.Pixel(x, y))
}

// Image returns a copy of the panel RAM, in the native portrait orientation.
func (s *Sim) Image() *rgb565.Image {
	s.mu.Lock()
	defer s.mu.Unlock()
	return rgb565.FromPixels(s.pw, s.ph, append([]rgb565.Pixel(nil), s.ram...))
}

// Stats returns how many windows were set and how many asynchronous
// transfers ran.
func (s *Sim) Stats() (windows, transfers int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.windows, s.transfers
}
