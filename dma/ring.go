package dma

import (
	"fmt"
	"sync/atomic"

	"github.com/flavioheleno/tft/rgb565"
)

// Kind tells what a queued operation does.
type Kind uint8

const (
	// Fill paints a rectangle with one pixel value.
	Fill Kind = iota + 1
	// Copy streams a rectangle of pixels from a source buffer.
	Copy
)

func (k Kind) String() string {
	switch k {
	case Fill:
		return "fill"
	case Copy:
		return "copy"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Op is a pending transfer.
type Op struct {
	Kind       Kind
	X, Y, W, H int
	Pixel      rgb565.Pixel   // Fill
	Src        []rgb565.Pixel // Copy; borrowed until the transfer is done
}

// Ring is a fixed size single-producer single-consumer queue of operations.
//
// It is empty when both indices are equal and full when advancing the free
// index would make it equal to the next index, so one slot always stays
// unused and a ring of capacity n holds n-1 operations.
//
// The producer fills Slot and then calls Publish; the consumer reads Head and
// then calls Pop. The index stores are the release points and the loads the
// acquire points, so each side only ever sees completely written slots.
type Ring struct {
	ops  []Op
	next atomic.Uint32 // next to execute, advanced by the consumer
	free atomic.Uint32 // next free slot, advanced by the producer
}

// NewRing returns a ring with n slots. n must be at least 2.
func NewRing(n int) *Ring {
	if n < 2 || n > 1<<16 {
		panic("dma: ring capacity out of range")
	}
	return &Ring{ops: make([]Op, n)}
}

// Cap returns the number of slots.
func (r *Ring) Cap() int {
	return len(r.ops)
}

// Len returns the number of queued operations.
func (r *Ring) Len() int {
	n := len(r.ops)
	return (int(r.free.Load()) - int(r.next.Load()) + n) % n
}

// Empty reports whether nothing is queued.
func (r *Ring) Empty() bool {
	return r.next.Load() == r.free.Load()
}

// Full reports whether no slot is free.
func (r *Ring) Full() bool {
	return r.inc(r.free.Load()) == r.next.Load()
}

// Slot returns the free slot. Producer only, and only when the ring is not
// full.
func (r *Ring) Slot() *Op {
	return &r.ops[r.free.Load()]
}

// Publish hands the free slot over to the consumer.
func (r *Ring) Publish() {
	if r.Full() {
		panic("dma: publish on a full ring")
	}
	r.free.Store(r.inc(r.free.Load()))
}

// Head returns the next operation. Consumer only, and only when the ring is
// not empty.
func (r *Ring) Head() *Op {
	return &r.ops[r.next.Load()]
}

// Pop releases the head slot back to the producer.
func (r *Ring) Pop() {
	if r.Empty() {
		panic("dma: pop on an empty ring")
	}
	r.next.Store(r.inc(r.next.Load()))
}

func (r *Ring) inc(i uint32) uint32 {
	i++
	if int(i) == len(r.ops) {
		return 0
	}
	return i
}
