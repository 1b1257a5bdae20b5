// Package dma queues pixel transfers to a display so drawing code does not
// wait for the bus.
//
// The producer (the drawing goroutine) enqueues fills and copies into a small
// ring. The transfer completion interrupt is the consumer: each time a
// transfer finishes it starts the next queued one, or marks the engine idle
// when there is none. Enqueueing onto an idle engine raises the interrupt by
// hand to get things going.
//
// There must be a single producer. Code that drives the transport directly
// (single pixels, text, orientation changes) calls WaitIdle first; that is
// what gives it exclusive use of the bus.
package dma

import (
	"errors"
	"fmt"
	"image"
	"sync"
	"sync/atomic"

	"github.com/flavioheleno/tft/rgb565"
)

// Transport is the panel driver the engine feeds.
type Transport interface {
	// SetWindow declares the rectangle the next pixel write fills, row by
	// row, and starts a memory write.
	SetWindow(x, y, w, h int) error
	// WritePixel writes one pixel synchronously.
	WritePixel(p rgb565.Pixel) error
	// WriteBlock writes pixels synchronously.
	WriteBlock(src []rgb565.Pixel) error
	// StartTransfer starts sending count pixels and returns without waiting.
	// With increment false src holds one pixel, sent count times. The
	// transport raises the completion interrupt when the transfer is done.
	StartTransfer(src []rgb565.Pixel, count int, increment bool) error
	// ResolveTransferAddress returns the view of src the transfer hardware
	// should read, for example an uncached alias.
	ResolveTransferAddress(src []rgb565.Pixel) []rgb565.Pixel
}

// Opts is optional configuration for NewEngine.
type Opts struct {
	// Capacity is the number of ring slots; one is always left unused.
	// Defaults to 4.
	Capacity int
	// Waiter is how the producer waits for a slot or for idle. Defaults to
	// Spin.
	Waiter Waiter
}

// DefaultOpts is used when nil is passed to NewEngine.
var DefaultOpts = Opts{
	Capacity: 4,
}

// Engine is the asynchronous transfer queue.
type Engine struct {
	t      Transport
	irq    Interrupt
	ring   *Ring
	waiter Waiter

	w, h int // surface size, owned by the producer

	busy   atomic.Bool
	closed atomic.Bool
	stalls atomic.Uint64

	// fill is the source of the fill in flight; the ring slot it came from
	// is recycled as soon as the transfer starts.
	fill [1]rgb565.Pixel

	errMu sync.Mutex
	err   error
}

// NewEngine returns an engine bound to t, with irq as its completion
// interrupt. The surface is w x h pixels.
func NewEngine(t Transport, irq Interrupt, w, h int, opts *Opts) (*Engine, error) {
	if t == nil || irq == nil {
		return nil, errors.New("dma: transport and interrupt are required")
	}
	if opts == nil {
		opts = &DefaultOpts
	}
	capacity := opts.Capacity
	if capacity == 0 {
		capacity = DefaultOpts.Capacity
	}
	if capacity < 2 || capacity > 1<<16 {
		return nil, fmt.Errorf("dma: invalid capacity %d", capacity)
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("dma: invalid surface size %dx%d", w, h)
	}
	waiter := opts.Waiter
	if waiter == nil {
		waiter = Spin{}
	}
	e := &Engine{
		t:      t,
		irq:    irq,
		ring:   NewRing(capacity),
		waiter: waiter,
		w:      w,
		h:      h,
	}
	irq.Connect(e.Complete)
	return e, nil
}

// Resize changes the surface size used for clipping. The engine must be
// idle.
func (e *Engine) Resize(w, h int) {
	if e.busy.Load() {
		panic("dma: resize while transfers are pending")
	}
	e.w, e.h = w, h
}

// EnqueueFill queues a fill of the w x h rectangle at (x, y), clipped to the
// surface. Nothing is queued when nothing is left after clipping.
func (e *Engine) EnqueueFill(x, y, w, h int, p rgb565.Pixel) {
	r := image.Rect(x, y, x+w, y+h).Intersect(image.Rect(0, 0, e.w, e.h))
	if r.Empty() || w <= 0 || h <= 0 {
		return
	}
	e.enqueue(Op{Kind: Fill, X: r.Min.X, Y: r.Min.Y, W: r.Dx(), H: r.Dy(), Pixel: p})
}

// EnqueueCopy queues a copy of the w x h pixels of src, row-major, to the
// rectangle at (x, y). src must not be modified until the engine is idle.
//
// Rows past the bottom of the surface are dropped. The rectangle must
// otherwise be on the surface: source rows cannot be cut on the sides.
func (e *Engine) EnqueueCopy(x, y, w, h int, src []rgb565.Pixel) {
	if w <= 0 || h <= 0 {
		return
	}
	if len(src) < w*h {
		panic("dma: copy source shorter than its rectangle")
	}
	if x < 0 || y < 0 || x+w > e.w || y >= e.h {
		return
	}
	h = min(h, e.h-y)
	src = e.t.ResolveTransferAddress(src[:w*h])
	e.enqueue(Op{Kind: Copy, X: x, Y: y, W: w, H: h, Src: src})
}

func (e *Engine) enqueue(op Op) {
	if e.closed.Load() {
		return
	}
	if e.ring.Full() {
		e.stalls.Add(1)
		e.waiter.Wait(func() bool { return !e.ring.Full() })
	}
	*e.ring.Slot() = op

	e.irq.Lock()
	e.ring.Publish()
	start := !e.busy.Load()
	if start {
		e.busy.Store(true)
	}
	e.irq.Unlock()

	if start {
		e.irq.Trigger()
	}
}

// Complete is the completion interrupt handler: it starts the next queued
// transfer, or marks the engine idle when the queue is empty.
//
// A transfer that fails to start is recorded (see Err) and the next one is
// tried, so a bad operation never stalls the queue.
func (e *Engine) Complete() {
	for {
		e.irq.Lock()
		if e.ring.Empty() {
			e.busy.Store(false)
			e.irq.Unlock()
			e.waiter.Notify()
			return
		}
		op := *e.ring.Head()
		e.ring.Pop()
		e.irq.Unlock()
		e.waiter.Notify()

		if err := e.start(op); err != nil {
			e.setErr(fmt.Errorf("dma: %s %dx%d at %d,%d: %w", op.Kind, op.W, op.H, op.X, op.Y, err))
			continue
		}
		return
	}
}

func (e *Engine) start(op Op) error {
	switch op.Kind {
	case Fill:
		if err := e.t.SetWindow(op.X, op.Y, op.W, op.H); err != nil {
			return err
		}
		e.fill[0] = op.Pixel
		return e.t.StartTransfer(e.fill[:], op.W*op.H, false)
	case Copy:
		if err := e.t.SetWindow(op.X, op.Y, op.W, op.H); err != nil {
			return err
		}
		return e.t.StartTransfer(op.Src, op.W*op.H, true)
	}
	panic(fmt.Sprintf("dma: unknown operation %s", op.Kind))
}

// WaitIdle returns once nothing is queued or in flight.
func (e *Engine) WaitIdle() {
	e.waiter.Wait(e.Idle)
}

// Idle reports whether nothing is queued or in flight.
func (e *Engine) Idle() bool {
	return !e.busy.Load()
}

// IsEmpty reports whether nothing is queued. A transfer may still be in
// flight.
func (e *Engine) IsEmpty() bool {
	return e.ring.Empty()
}

// IsFull reports whether the next enqueue would wait.
func (e *Engine) IsFull() bool {
	return e.ring.Full()
}

// Len returns the number of queued operations, not counting the one in
// flight.
func (e *Engine) Len() int {
	return e.ring.Len()
}

// Stalls returns how many enqueues had to wait for a free slot.
func (e *Engine) Stalls() uint64 {
	return e.stalls.Load()
}

// Err returns the first transfer error, if any.
func (e *Engine) Err() error {
	e.errMu.Lock()
	defer e.errMu.Unlock()
	return e.err
}

func (e *Engine) setErr(err error) {
	e.errMu.Lock()
	if e.err == nil {
		e.err = err
	}
	e.errMu.Unlock()
}

// Close waits for pending transfers and disables the completion interrupt.
// Later enqueues are dropped.
func (e *Engine) Close() error {
	if e.closed.Swap(true) {
		return nil
	}
	e.WaitIdle()
	e.irq.Disable()
	return e.Err()
}
