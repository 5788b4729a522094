package tailvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// Retain Tests
// =============================================================================

func TestTailVec_Retain(t *testing.T) {
	t.Run("even", func(t *testing.T) {
		v := NewVec(0, 2, 3, 4, 5, 7, 6)
		_, tail := v.SplitTail(0)

		tail.Retain(func(n int) bool { return n%2 == 0 })
		assert.Equal(t, []int{2, 4, 6}, tail.Slice())

		tail.Close()
		assert.Equal(t, []int{2, 4, 6}, v.Slice())
	})

	t.Run("after split", func(t *testing.T) {
		v := NewVec(0, 0, 1, 2, 3, 4)
		_, tail := v.SplitTail(1)

		tail.Retain(func(n int) bool { return n%2 == 0 })
		assert.Equal(t, []int{2, 4}, tail.Slice())

		tail.Close()
		assert.Equal(t, []int{0, 2, 4}, v.Slice())
	})

	t.Run("external state", func(t *testing.T) {
		v := NewVec(0, 0, 1, 2, 3, 4, 5)
		_, tail := v.SplitTail(1)

		keep := []bool{false, true, true, false, true}
		i := 0
		tail.Retain(func(int) bool {
			i++
			return keep[i-1]
		})
		assert.Equal(t, 5, i, "each element is visited exactly once")

		tail.Close()
		assert.Equal(t, []int{0, 2, 3, 5}, v.Slice())
	})

	t.Run("keep all", func(t *testing.T) {
		v := NewVec(0, 1, 2, 3)
		_, tail := v.SplitTail(0)
		defer tail.Close()

		tail.Retain(func(int) bool { return true })
		assert.Equal(t, []int{1, 2, 3}, tail.Slice())
	})

	t.Run("reject all", func(t *testing.T) {
		v := NewVec(0, 1, 2, 3)
		_, tail := v.SplitTail(0)
		defer tail.Close()

		tail.Retain(func(int) bool { return false })
		assert.True(t, tail.IsEmpty())
	})

	t.Run("empty", func(t *testing.T) {
		var tail TailVec[int]
		tail.Retain(func(int) bool {
			t.Fatal("predicate called on empty tail")
			return false
		})
		assert.True(t, tail.IsEmpty())
	})
}

func TestTailVec_RetainMut(t *testing.T) {
	v := NewVec(0, 0, 1, 2, 3, 4)
	_, tail := v.SplitTail(1)

	tail.RetainMut(func(x *int) bool {
		if *x <= 3 {
			*x++
			return true
		}
		return false
	})
	assert.Equal(t, []int{2, 3, 4}, tail.Slice())

	tail.Close()
	assert.Equal(t, []int{0, 2, 3, 4}, v.Slice())
}

func TestTailVec_RetainDropsRejectedOnce(t *testing.T) {
	log := dropLog{}
	v := NewVec(0, elems(log, 1, 2, 3, 4, 5, 6)...)
	_, tail := v.SplitTail(0)
	defer tail.Close()

	tail.Retain(func(e elem) bool { return e.v%3 != 0 })
	assert.Equal(t, []int{1, 2, 4, 5}, values(tail.Slice()))
	assert.Equal(t, dropLog{3: 1, 6: 1}, log)
}

func TestTailVec_RetainPanickingPredicate(t *testing.T) {
	log := dropLog{}
	v := NewVec(0, elems(log, 1, 2, 3, 4, 5, 6)...)
	_, tail := v.SplitTail(0)
	defer tail.Close()

	assert.PanicsWithValue(t, "boom", func() {
		tail.Retain(func(e elem) bool {
			if e.v == 4 {
				panic("boom")
			}
			return e.v%2 == 1
		})
	})

	// Survivors of the visited prefix, then everything not yet visited.
	assert.Equal(t, []int{1, 3, 4, 5, 6}, values(tail.Slice()))
	assert.Equal(t, dropLog{2: 1}, log)
}

func TestTailVec_RetainPanicBeforeFirstRejection(t *testing.T) {
	v := NewVec(0, 1, 2, 3)
	_, tail := v.SplitTail(0)
	defer tail.Close()

	assert.Panics(t, func() {
		tail.Retain(func(n int) bool {
			if n == 2 {
				panic("boom")
			}
			return true
		})
	})
	assert.Equal(t, []int{1, 2, 3}, tail.Slice())
}

func TestTailVec_RetainPanickingDrop(t *testing.T) {
	log := dropLog{}
	es := elems(log, 1, 2, 3, 4, 5, 6)
	es[1].panicky = true
	v := NewVec(0, es...)
	_, tail := v.SplitTail(0)

	assert.PanicsWithValue(t, "drop 2", func() {
		tail.Retain(func(e elem) bool { return e.v%2 == 1 })
	})
	assert.Equal(t, []int{1, 3, 4, 5, 6}, values(tail.Slice()))
	assert.Equal(t, dropLog{2: 1}, log)

	tail.Close()
	assert.Equal(t, []int{1, 3, 4, 5, 6}, values(v.Slice()))
}

func TestTailVec_RetainZeroSized(t *testing.T) {
	v := WrapSlice(make([]struct{}, 10))
	_, tail := v.SplitTail(2)

	i := 0
	tail.Retain(func(struct{}) bool {
		i++
		return i%2 == 0
	})
	assert.Equal(t, 8, i)
	assert.Equal(t, 4, tail.Len())

	tail.Close()
	assert.Equal(t, 6, v.Len())
}

// =============================================================================
// Benchmarks
// =============================================================================

func BenchmarkTailVec_Retain(b *testing.B) {
	src := make([]int, 256)
	for i := range src {
		src[i] = i
	}
	v := NewVec[int](256)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.SetLen(0)
		v.Append(src...)
		_, tail := v.SplitTail(0)
		tail.Retain(func(n int) bool { return n%3 != 0 })
		tail.Close()
	}
}
