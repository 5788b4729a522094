package tailvec

import (
	"fmt"
	"slices"
)

// Vec is a growable slice that satisfies Buffer. It is the usual root owner
// passed to SplitTail.
type Vec[T any] struct {
	s []T
}

// NewVec returns a Vec holding a copy of elems with room for at least
// capacity elements.
func NewVec[T any](capacity int, elems ...T) *Vec[T] {
	s := make([]T, len(elems), max(capacity, len(elems)))
	copy(s, elems)
	return &Vec[T]{s: s}
}

// WrapSlice returns a Vec that uses s as its storage: the length is len(s)
// and the capacity cap(s).
func WrapSlice[T any](s []T) *Vec[T] {
	return &Vec[T]{s: s}
}

// Len returns the number of elements.
func (v *Vec[T]) Len() int {
	return len(v.s)
}

// Cap returns the capacity of the storage.
func (v *Vec[T]) Cap() int {
	return cap(v.s)
}

// SpareCapacity returns the slots between Len() and Cap().
func (v *Vec[T]) SpareCapacity() []T {
	return v.s[len(v.s):cap(v.s)]
}

// SetLen reslices the storage to n elements. See Buffer.SetLen.
func (v *Vec[T]) SetLen(n int) {
	if n < 0 || n > cap(v.s) {
		panic(fmt.Sprintf("tailvec: length (is %d) out of range for capacity (is %d)", n, cap(v.s)))
	}
	v.s = v.s[:n]
}

// Slice returns the elements. It aliases the storage.
func (v *Vec[T]) Slice() []T {
	return v.s
}

// Append adds elems, growing the storage if needed. Must not be called while
// a TailVec split from v is open.
func (v *Vec[T]) Append(elems ...T) {
	v.s = append(v.s, elems...)
}

// Reserve makes room for at least n more elements without changing Len().
// Must not be called while a TailVec split from v is open.
func (v *Vec[T]) Reserve(n int) {
	v.s = slices.Grow(v.s, n)
}

// SplitTail is shorthand for SplitTail(v, mid).
func (v *Vec[T]) SplitTail(mid int) ([]T, *TailVec[T]) {
	return SplitTail[T](v, mid)
}
