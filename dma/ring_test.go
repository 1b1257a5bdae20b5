package dma

import "testing"

func TestRingFull(t *testing.T) {
	for _, n := range []int{2, 3, 4, 8} {
		r := NewRing(n)
		if !r.Empty() || r.Full() {
			t.Fatalf("cap %d: new ring not empty", n)
		}
		for i := 0; i < n-1; i++ {
			r.Slot().X = i
			r.Publish()
		}
		if !r.Full() || r.Len() != n-1 {
			t.Fatalf("cap %d: after %d pushes Full() = %t, Len() = %d", n, n-1, r.Full(), r.Len())
		}
		if r.Head().X != 0 {
			t.Errorf("cap %d: head = %d, want 0", n, r.Head().X)
		}
		r.Pop()
		if r.Full() {
			t.Errorf("cap %d: full after pop", n)
		}
		if want := n == 2; r.Empty() != want {
			t.Errorf("cap %d: Empty() = %t after pop, want %t", n, r.Empty(), want)
		}
	}
}

func TestRingWraps(t *testing.T) {
	r := NewRing(3)
	next := 0
	for i := 0; i < 20; i++ {
		r.Slot().X = i
		r.Publish()
		if r.Full() {
			if got := r.Head().X; got != next {
				t.Fatalf("head = %d, want %d", got, next)
			}
			r.Pop()
			next++
		}
	}
	for !r.Empty() {
		if got := r.Head().X; got != next {
			t.Fatalf("head = %d, want %d", got, next)
		}
		r.Pop()
		next++
	}
	if next != 20 {
		t.Errorf("popped %d, want 20", next)
	}
}

func TestRingMisuse(t *testing.T) {
	for _, tc := range []struct {
		name string
		f    func()
	}{
		{"capacity", func() { NewRing(1) }},
		{"pop empty", func() { NewRing(4).Pop() }},
		{"publish full", func() {
			r := NewRing(2)
			r.Publish()
			r.Publish()
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tc.f()
		})
	}
}
