// Package tailvec lets code split a growable buffer at an index and treat
// everything after that index as an independent, fixed-capacity buffer.
//
// SplitTail hands out the initialized prefix as a plain slice and a TailVec
// owning the window [mid, cap) of the same backing array. The TailVec can
// push, pop, insert, remove, drain and filter inside that window without ever
// allocating. Close hands the window back: the owner's length becomes
// mid + tail length, so whatever the TailVec ended up holding is appended
// after the prefix.
//
// Key features:
//   - No copies at split or close time, only length bookkeeping
//   - Capacity exhaustion is an ordinary error carrying the rejected value
//   - Drain and Retain repair the length even when a callback panics
//   - A TailVec is itself a Buffer, so it can be split again
//   - Zero-sized element types never touch memory
//
// Ownership:
//
//	While a TailVec is open its owner must not be used: the owner's length is
//	truncated to mid and the window belongs to the TailVec. Only one open
//	TailVec may exist per split lineage. Neither rule is checked at run time.
//
//	A TailVec (or Drain) that is abandoned without Close leaks the elements in
//	its window: the owner keeps length mid. Elements are never exposed twice
//	and never dropped twice. SetLeakLogger reports such handles.
//
// Thread Safety:
//
//	TailVec, Drain, Vec and MappedBuffer are NOT safe for concurrent use.
//	A TailVec may move between goroutines as long as accesses are ordered.
package tailvec

import (
	"errors"
	"fmt"
	"iter"
	"runtime"
)

// Buffer is the capability a growable contiguous buffer must expose to be
// split by SplitTail.
//
// Implementations must keep Cap() == Len() + len(SpareCapacity()).
type Buffer[T any] interface {
	// Len returns the number of initialized elements.
	Len() int

	// Cap returns the number of slots in the backing storage.
	Cap() int

	// SpareCapacity returns the slots [Len(), Cap()) of the backing storage.
	// Their contents are unspecified.
	SpareCapacity() []T

	// SetLen changes the visible length without touching any slot.
	// n must be in [0, Cap()], and every slot newly exposed must hold an
	// initialized element. The caller is responsible for dropping elements
	// it hides.
	SetLen(n int)
}

// ErrCapacityExceeded is matched by every CapacityError.
var ErrCapacityExceeded = errors.New("tailvec: capacity exceeded")

// CapacityError is returned when an operation would need more slots than a
// buffer has. The operation performed no mutation and Value is the input it
// rejected.
type CapacityError[V any] struct {
	Value V
	Len   int // length at the time of the call
	Cap   int // capacity at the time of the call
	Want  int // length the operation needed
}

func (e *CapacityError[V]) Error() string {
	return fmt.Sprintf("tailvec: capacity exceeded (len %d, cap %d, want %d)", e.Len, e.Cap, e.Want)
}

func (e *CapacityError[V]) Unwrap() error {
	return ErrCapacityExceeded
}

// SplitTail splits b at mid. It returns the initialized elements [0, mid) and
// a TailVec owning the slots [mid, b.Cap()), holding the former elements
// [mid, b.Len()).
//
// b's length becomes mid until the TailVec is closed. The returned prefix has
// its capacity clipped to mid, so appending to it cannot write into the
// window.
//
// SplitTail panics if mid is negative or greater than b.Len().
func SplitTail[T any](b Buffer[T], mid int) ([]T, *TailVec[T]) {
	n := b.Len()
	if mid < 0 || mid > n {
		panic(fmt.Sprintf("tailvec: split index (is %d) greater than length (is %d)", mid, n))
	}

	// The whole backing storage is the spare capacity of a zero-length view.
	b.SetLen(0)
	storage := b.SpareCapacity()
	b.SetLen(mid)

	t := &TailVec[T]{
		parts: storage[mid:len(storage):len(storage)],
		n:     n - mid,
		owner: b,
	}
	t.track()
	return storage[:mid:mid], t
}

// TailVec is the tail part of a split buffer, created by SplitTail.
//
// The zero value is an empty TailVec with no owner and no capacity.
type TailVec[T any] struct {
	parts   []T // window; len(parts) is the capacity
	n       int
	owner   Buffer[T]
	cleanup runtime.Cleanup
	tracked bool
}

// Close gives the window back to the owner, whose length becomes
// SplitOffset() + Len(). The TailVec is empty with no capacity afterwards.
// Calling Close more than once is a no-op.
func (t *TailVec[T]) Close() {
	if t == nil || t.owner == nil {
		return
	}
	if t.tracked {
		t.cleanup.Stop()
		t.tracked = false
	}
	t.owner.SetLen(t.SplitOffset() + t.n)
	t.owner = nil
	t.parts = nil
	t.n = 0
}

// Slice returns the initialized elements. The slice aliases the window and
// may be modified in place; its capacity is clipped to Len().
func (t *TailVec[T]) Slice() []T {
	return t.parts[:t.n:t.n]
}

// IntoSlice closes t and returns its final contents. The slice aliases the
// owner's storage directly after the split point.
func (t *TailVec[T]) IntoSlice() []T {
	s := t.Slice()
	t.Close()
	return s
}

// Len returns the number of elements in the tail.
func (t *TailVec[T]) Len() int {
	return t.n
}

// Cap returns the number of slots in the window.
func (t *TailVec[T]) Cap() int {
	return len(t.parts)
}

// IsEmpty reports whether the tail holds no elements.
func (t *TailVec[T]) IsEmpty() bool {
	return t.n == 0
}

// OwnerCap returns the capacity of the owner, or 0 without one.
func (t *TailVec[T]) OwnerCap() int {
	if t.owner == nil {
		return 0
	}
	return t.owner.Cap()
}

// SplitOffset returns the index the owner was split at.
func (t *TailVec[T]) SplitOffset() int {
	return t.OwnerCap() - t.Cap()
}

// OwnerLen returns the length the owner will have once t is closed.
func (t *TailVec[T]) OwnerLen() int {
	return t.SplitOffset() + t.n
}

// SpareCapacity returns the unused slots of the window.
func (t *TailVec[T]) SpareCapacity() []T {
	return t.parts[t.n:]
}

// SetLen sets the tail length without touching any slot. It is the Buffer
// primitive that lets a TailVec own another TailVec; see Buffer.SetLen.
func (t *TailVec[T]) SetLen(n int) {
	if n < 0 || n > len(t.parts) {
		panic(fmt.Sprintf("tailvec: length (is %d) out of range for capacity (is %d)", n, len(t.parts)))
	}
	t.n = n
}

// Push appends v. If the window is full it returns a *CapacityError holding v.
func (t *TailVec[T]) Push(v T) error {
	if t.n == len(t.parts) {
		return &CapacityError[T]{Value: v, Len: t.n, Cap: len(t.parts), Want: t.n + 1}
	}
	t.parts[t.n] = v
	t.n++
	return nil
}

// Pop removes and returns the last element, or reports false when empty.
func (t *TailVec[T]) Pop() (T, bool) {
	var zero T
	if t.n == 0 {
		return zero, false
	}
	t.n--
	v := t.parts[t.n]
	t.parts[t.n] = zero
	return v, true
}

// Extend appends all values or none of them. If they do not fit it returns a
// *CapacityError holding values.
func (t *TailVec[T]) Extend(values ...T) error {
	if len(values) > len(t.parts)-t.n {
		return &CapacityError[[]T]{Value: values, Len: t.n, Cap: len(t.parts), Want: t.n + len(values)}
	}
	t.n += copy(t.parts[t.n:], values)
	return nil
}

// Insert places v at index i, shifting later elements right. It panics if i
// is out of [0, Len()] and returns a *CapacityError holding v if the window
// is full.
func (t *TailVec[T]) Insert(i int, v T) error {
	if i < 0 || i > t.n {
		panic(fmt.Sprintf("tailvec: insertion index (is %d) should be <= len (is %d)", i, t.n))
	}
	if t.n == len(t.parts) {
		return &CapacityError[T]{Value: v, Len: t.n, Cap: len(t.parts), Want: t.n + 1}
	}
	if !isZST[T]() {
		copy(t.parts[i+1:t.n+1], t.parts[i:t.n])
	}
	t.parts[i] = v
	t.n++
	return nil
}

// Remove removes and returns the element at i, shifting later elements left.
// It panics if i is out of [0, Len()).
func (t *TailVec[T]) Remove(i int) T {
	if i < 0 || i >= t.n {
		panic(fmt.Sprintf("tailvec: removal index (is %d) should be < len (is %d)", i, t.n))
	}
	v := t.parts[i]
	if !isZST[T]() {
		copy(t.parts[i:], t.parts[i+1:t.n])
	}
	t.n--
	var zero T
	t.parts[t.n] = zero
	return v
}

// SwapRemove removes and returns the element at i, moving the last element
// into its place. It does not preserve order but is O(1). It panics if i is
// out of [0, Len()).
func (t *TailVec[T]) SwapRemove(i int) T {
	if i < 0 || i >= t.n {
		panic(fmt.Sprintf("tailvec: swap-remove index (is %d) should be < len (is %d)", i, t.n))
	}
	t.n--
	v := t.parts[i]
	t.parts[i] = t.parts[t.n]
	var zero T
	t.parts[t.n] = zero
	return v
}

// Truncate drops elements from the end until at most n remain. It panics if
// n is negative.
func (t *TailVec[T]) Truncate(n int) {
	if n < 0 {
		panic("tailvec: truncation out of range")
	}
	for t.n > n {
		t.n--
		dropValue(&t.parts[t.n])
	}
}

// Clear drops every element. The length is zero before the first Drop runs,
// so a panicking Drop cannot expose dropped slots.
func (t *TailVec[T]) Clear() {
	elems := t.parts[:t.n]
	t.n = 0
	dropRange(elems)
}

// Resize truncates or fills with copies of v until Len() == n. If n exceeds
// the capacity nothing changes and a *CapacityError holding v is returned.
func (t *TailVec[T]) Resize(n int, v T) error {
	if n < 0 {
		panic("tailvec: resize length out of range")
	}
	if n > len(t.parts) {
		return &CapacityError[T]{Value: v, Len: t.n, Cap: len(t.parts), Want: n}
	}
	if n <= t.n {
		t.Truncate(n)
		return nil
	}
	for t.n < n {
		t.parts[t.n] = v
		t.n++
	}
	return nil
}

// ResizeWith truncates or fills with results of f until Len() == n. If n
// exceeds the capacity nothing changes and a *CapacityError holding f is
// returned.
func (t *TailVec[T]) ResizeWith(n int, f func() T) error {
	if n < 0 {
		panic("tailvec: resize length out of range")
	}
	if n > len(t.parts) {
		return &CapacityError[func() T]{Value: f, Len: t.n, Cap: len(t.parts), Want: n}
	}
	if n <= t.n {
		t.Truncate(n)
		return nil
	}
	for t.n < n {
		// Length only grows once the slot holds f's result.
		t.parts[t.n] = f()
		t.n++
	}
	return nil
}

// All iterates over the index and value of each element.
func (t *TailVec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < t.n; i++ {
			if !yield(i, t.parts[i]) {
				return
			}
		}
	}
}

// String formats the elements like a slice.
func (t *TailVec[T]) String() string {
	return fmt.Sprint(t.Slice())
}
