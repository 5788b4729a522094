package tailvec

import (
	"reflect"
	"unsafe"
)

// Dropper is implemented by element types that own something which must be
// released when a TailVec discards the element (Truncate, Clear, Drain
// cleanup, Retain rejections). Values handed back to the caller by Pop,
// Remove, SwapRemove, Drain yields or a CapacityError are never dropped.
type Dropper interface {
	Drop()
}

var dropperType = reflect.TypeFor[Dropper]()

// isZST reports whether T occupies no memory. Zero-sized elements only need
// counter bookkeeping; no copies are performed for them.
func isZST[T any]() bool {
	var zero T
	return unsafe.Sizeof(zero) == 0
}

// mayDrop reports whether discarding a T can call Drop. Interface element
// types are checked per element, so they always report true.
func mayDrop[T any]() bool {
	t := reflect.TypeFor[T]()
	if t.Kind() == reflect.Interface {
		return true
	}
	return t.Implements(dropperType) || reflect.PointerTo(t).Implements(dropperType)
}

// dropValue clears the slot, then runs Drop on the value it held. The slot is
// cleared first so a panicking Drop never leaves a droppable value behind.
func dropValue[T any](slot *T) {
	var zero T
	v := *slot
	*slot = zero
	if d, ok := any(v).(Dropper); ok {
		d.Drop()
		return
	}
	if d, ok := any(&v).(Dropper); ok {
		d.Drop()
	}
}

// dropRange drops every element of s exactly once. A panicking Drop does not
// stop the remaining drops; the first panic is raised again once they are done.
func dropRange[T any](s []T) {
	if !mayDrop[T]() {
		if !isZST[T]() {
			clear(s)
		}
		return
	}

	i := 0
	defer func() {
		if i < len(s) {
			r := recover()
			dropRange(s[i+1:])
			panic(r)
		}
	}()
	for ; i < len(s); i++ {
		dropValue(&s[i])
	}
}
