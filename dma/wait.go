package dma

import (
	"runtime"
	"sync"
)

// Waiter blocks the producer until the engine state it waits for is reached.
type Waiter interface {
	// Wait returns once done reports true.
	Wait(done func() bool)
	// Notify is called by the engine after every state change.
	Notify()
}

// Spin busy-waits, the way a bare metal producer spins on the queue.
type Spin struct{}

// Wait implements Waiter.
func (Spin) Wait(done func() bool) {
	for !done() {
		runtime.Gosched()
	}
}

// Notify implements Waiter.
func (Spin) Notify() {}

// Cond sleeps on a condition variable until the engine signals a change.
type Cond struct {
	mu sync.Mutex
	c  *sync.Cond
}

// NewCond returns a blocking Waiter.
func NewCond() *Cond {
	w := &Cond{}
	w.c = sync.NewCond(&w.mu)
	return w
}

// Wait implements Waiter.
func (w *Cond) Wait(done func() bool) {
	w.mu.Lock()
	for !done() {
		w.c.Wait()
	}
	w.mu.Unlock()
}

// Notify implements Waiter.
func (w *Cond) Notify() {
	w.mu.Lock()
	w.c.Broadcast()
	w.mu.Unlock()
}
