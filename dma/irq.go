package dma

import (
	"sync"
	"sync/atomic"
)

// Interrupt is the transfer completion interrupt.
type Interrupt interface {
	// Connect installs the handler and enables the interrupt.
	Connect(handler func())
	// Lock masks the interrupt: the handler does not start, nor runs
	// concurrently, until Unlock.
	Lock()
	Unlock()
	// Trigger raises the interrupt. Transports call it when a transfer
	// completes; the engine calls it to start an idle queue.
	Trigger()
	// Disable disconnects the handler. Later triggers are ignored.
	Disable()
}

// Line is an Interrupt for hosted systems.
//
// The handler runs on the goroutine that raised the interrupt. Like a
// hardware interrupt it never nests: a trigger raised while the handler is
// running, from the handler itself or from elsewhere, is left pending and the
// handler runs again once it returns.
type Line struct {
	mask    sync.Mutex
	handler atomic.Pointer[func()]
	pending atomic.Bool
	running atomic.Bool
}

var _ Interrupt = (*Line)(nil)

// Connect implements Interrupt.
func (l *Line) Connect(handler func()) {
	l.handler.Store(&handler)
}

// Lock implements Interrupt.
func (l *Line) Lock() {
	l.mask.Lock()
}

// Unlock implements Interrupt.
func (l *Line) Unlock() {
	l.mask.Unlock()
}

// Trigger implements Interrupt.
func (l *Line) Trigger() {
	l.pending.Store(true)
	for {
		if !l.running.CompareAndSwap(false, true) {
			// The running handler picks it up.
			return
		}
		if !l.pending.Swap(false) {
			l.running.Store(false)
			if l.pending.Load() {
				continue
			}
			return
		}
		if h := l.handler.Load(); h != nil {
			(*h)()
		}
		l.running.Store(false)
	}
}

// Disable implements Interrupt.
func (l *Line) Disable() {
	l.handler.Store(nil)
}
