package tailvec

import (
	"iter"
	"runtime"
)

// Drain removes the elements in r from t and returns an iterator over them.
// t's length drops to the start of r immediately; the elements after r are
// moved back into place when the Drain is closed.
//
// Close must be called (All, Backward and Collect do so themselves). If the
// Drain is abandoned instead, t keeps the shortened length and the drained
// and trailing elements are leaked, never dropped twice.
//
// Drain panics if r does not resolve to a valid range of [0, Len()].
func (t *TailVec[T]) Drain(r Range) *Drain[T] {
	n := t.n
	start, end := r.Bounds(n)
	t.n = start

	d := &Drain[T]{
		tv:        t,
		head:      start,
		tail:      end,
		tailStart: end,
		tailLen:   n - end,
	}
	d.track()
	return d
}

// Drain is a double-ended iterator over elements removed from a TailVec,
// created by TailVec.Drain.
//
//	a a a a a y y d d d d r r r r
//	          ^   ^       ^
//	     tv.n    head    tail = tailStart
//
// Slots [head, tail) are still owned by the Drain; yielded slots are cleared
// as they are handed out.
type Drain[T any] struct {
	tv         *TailVec[T]
	head, tail int
	tailStart  int
	tailLen    int
	closed     bool
	cleanup    runtime.Cleanup
	tracked    bool
}

// Next yields the first remaining element.
func (d *Drain[T]) Next() (T, bool) {
	var zero T
	if d.closed || d.head == d.tail {
		return zero, false
	}
	slot := &d.tv.parts[d.head]
	v := *slot
	*slot = zero
	d.head++
	return v, true
}

// NextBack yields the last remaining element.
func (d *Drain[T]) NextBack() (T, bool) {
	var zero T
	if d.closed || d.head == d.tail {
		return zero, false
	}
	d.tail--
	slot := &d.tv.parts[d.tail]
	v := *slot
	*slot = zero
	return v, true
}

// Len returns the number of elements not yet yielded.
func (d *Drain[T]) Len() int {
	return d.tail - d.head
}

// Remaining returns the elements not yet yielded. The slice aliases the
// window and is only valid until the next call on d.
func (d *Drain[T]) Remaining() []T {
	if d.tv == nil {
		return nil
	}
	return d.tv.parts[d.head:d.tail:d.tail]
}

// All yields the remaining elements front to back and closes d when the
// loop ends, including on break.
func (d *Drain[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer d.Close()
		for {
			v, ok := d.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Backward yields the remaining elements back to front and closes d when the
// loop ends, including on break.
func (d *Drain[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer d.Close()
		for {
			v, ok := d.NextBack()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Collect yields every remaining element into a new slice and closes d.
func (d *Drain[T]) Collect() []T {
	out := make([]T, 0, d.Len())
	for v := range d.All() {
		out = append(out, v)
	}
	return out
}

// Close drops the elements not yet yielded, moves the untouched tail down to
// close the gap and restores the TailVec length. The tail is moved even if a
// Drop panics; the panic continues afterwards. Calling Close more than once
// is a no-op.
func (d *Drain[T]) Close() {
	if d.closed || d.tv == nil {
		return
	}
	d.closed = true
	if d.tracked {
		d.cleanup.Stop()
		d.tracked = false
	}

	tv := d.tv
	unyielded := tv.parts[d.head:d.tail]
	d.head = d.tail

	defer func() {
		start := tv.n
		if !isZST[T]() && d.tailStart != start {
			moved := copy(tv.parts[start:], tv.parts[d.tailStart:d.tailStart+d.tailLen])
			clear(tv.parts[start+moved : d.tailStart+d.tailLen])
		}
		tv.n = start + d.tailLen
	}()

	dropRange(unyielded)
}
