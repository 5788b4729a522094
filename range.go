package tailvec

import (
	"fmt"
	"math"
)

// BoundKind describes how one end of a Range is expressed.
type BoundKind uint8

const (
	// Unbounded means the range extends to the start or end of the sequence.
	Unbounded BoundKind = iota
	// Included means Index itself is part of the range.
	Included
	// Excluded means Index itself is not part of the range.
	Excluded
)

// Bound is one end of a Range.
type Bound struct {
	Kind  BoundKind
	Index int
}

// Range is an index range with independently expressed ends. Use Bounds to
// turn it into a checked half-open [start, end) pair.
type Range struct {
	Start Bound
	End   Bound
}

// Full is the range `..` covering every element.
func Full() Range {
	return Range{}
}

// Span is the half-open range `start..end`.
func Span(start, end int) Range {
	return Range{Bound{Included, start}, Bound{Excluded, end}}
}

// SpanInclusive is the closed range `start..=end`.
func SpanInclusive(start, end int) Range {
	return Range{Bound{Included, start}, Bound{Included, end}}
}

// From is the range `start..`.
func From(start int) Range {
	return Range{Start: Bound{Included, start}}
}

// To is the range `..end`.
func To(end int) Range {
	return Range{End: Bound{Excluded, end}}
}

// ToInclusive is the range `..=end`.
func ToInclusive(end int) Range {
	return Range{End: Bound{Included, end}}
}

// Bounds resolves r against a sequence of length n and returns the half-open
// index pair it denotes.
//
// Bounds panics if the start is negative, if start > end, if end > n, or if
// an included end (or excluded start) would overflow int. Out of range input
// is never clamped.
func (r Range) Bounds(n int) (start, end int) {
	switch r.Start.Kind {
	case Included:
		start = r.Start.Index
	case Excluded:
		if r.Start.Index == math.MaxInt {
			panic("tailvec: attempted to index slice from after maximum int")
		}
		start = r.Start.Index + 1
	default:
		start = 0
	}

	switch r.End.Kind {
	case Included:
		if r.End.Index == math.MaxInt {
			panic("tailvec: attempted to index slice up to maximum int")
		}
		end = r.End.Index + 1
	case Excluded:
		end = r.End.Index
	default:
		end = n
	}

	if start < 0 {
		panic(fmt.Sprintf("tailvec: range start index %d out of range", start))
	}
	if start > end {
		panic(fmt.Sprintf("tailvec: slice index starts at %d but ends at %d", start, end))
	}
	if end > n {
		panic(fmt.Sprintf("tailvec: range end index %d out of range for slice of length %d", end, n))
	}
	return start, end
}

// String renders r in range-expression form, e.g. "1..=3".
func (r Range) String() string {
	var s string
	switch r.Start.Kind {
	case Included:
		s = fmt.Sprint(r.Start.Index)
	case Excluded:
		s = fmt.Sprintf("%d<", r.Start.Index)
	}
	s += ".."
	switch r.End.Kind {
	case Included:
		s += fmt.Sprintf("=%d", r.End.Index)
	case Excluded:
		s += fmt.Sprint(r.End.Index)
	}
	return s
}
