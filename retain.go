package tailvec

// Retain keeps only the elements for which keep returns true and drops the
// rest. Elements are visited exactly once, in order, and kept elements keep
// their relative order, so keep may rely on external state.
//
// If keep or a Drop panics, t is left holding the kept elements of the
// visited prefix followed by the unvisited elements.
func (t *TailVec[T]) Retain(keep func(T) bool) {
	t.RetainMut(func(v *T) bool {
		return keep(*v)
	})
}

// RetainMut is Retain with a pointer to each element, so keep may modify
// elements before deciding.
func (t *TailVec[T]) RetainMut(keep func(*T) bool) {
	orig := t.n
	// Nothing is visible while elements are being moved.
	t.n = 0

	g := retainGuard[T]{tv: t, orig: orig, zst: isZST[T]()}
	defer g.finish()

	g.run(keep, false)
	g.run(keep, true)
}

// retainGuard tracks how far RetainMut got:
//
//	k k k h h h u u u u
//	      ^     ^       ^
//	      hole  processed
//	                    orig
//
// hole is processed-deleted: [0, hole) are kept, [hole, processed) are free
// slots and [processed, orig) are unvisited.
type retainGuard[T any] struct {
	tv        *TailVec[T]
	orig      int
	processed int
	deleted   int
	zst       bool
}

// run visits elements until all are processed. With compact unset it stops
// right after the first rejection, since nothing needs moving until then.
func (g *retainGuard[T]) run(keep func(*T) bool, compact bool) {
	parts := g.tv.parts
	for g.processed != g.orig {
		cur := &parts[g.processed]
		if !keep(cur) {
			g.processed++
			g.deleted++
			dropValue(cur)
			if compact {
				continue
			}
			return
		}
		if compact && !g.zst {
			var zero T
			parts[g.processed-g.deleted] = *cur
			*cur = zero
		}
		g.processed++
	}
}

// finish shifts the unvisited elements over the holes and publishes the
// length. It runs on return and while a panic unwinds.
func (g *retainGuard[T]) finish() {
	if g.deleted > 0 && !g.zst {
		parts := g.tv.parts
		moved := copy(parts[g.processed-g.deleted:], parts[g.processed:g.orig])
		clear(parts[g.processed-g.deleted+moved : g.orig])
	}
	g.tv.n = g.orig - g.deleted
}
