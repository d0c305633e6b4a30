package rangeset

import (
	"cmp"
	"fmt"
)

// Range is a closed interval [from, to] over an ordered domain.
// A valid Range satisfies from < to; degenerate ranges are never
// stored in a Set.
type Range[T cmp.Ordered] struct {
	from T
	to   T
}

func RangeFrom[T cmp.Ordered](from, to T) Range[T] {
	return Range[T]{
		from: from,
		to:   to,
	}
}

// From returns the lower bound of r.
func (r Range[T]) From() T { return r.from }

// To returns the upper bound of r.
func (r Range[T]) To() T { return r.to }

func (r Range[T]) String() string {
	return fmt.Sprintf("%v-%v", r.from, r.to)
}

func (r Range[T]) IsValid() bool {
	return r.from < r.to
}

func (r Range[T]) IsZero() bool {
	return r == Range[T]{}
}

func (r Range[T]) Less(other Range[T]) bool {
	if r.from != other.from {
		return r.from < other.from
	}
	return r.to < other.to
}

// Contains reports whether v lies within r. Both bounds are
// inclusive.
func (r Range[T]) Contains(v T) bool {
	return r.from <= v && v <= r.to
}

// disjointFrom returns whether r and other share no point, not even
// a bound.
func (r Range[T]) disjointFrom(other Range[T]) bool {
	return r.from > other.to || r.to < other.from
}

// inMiddleOf returns whether r is inside other, but not touching the
// edges of other.
func (r Range[T]) inMiddleOf(other Range[T]) bool {
	return other.from < r.from && r.to < other.to
}

// coveredBy returns whether r is entirely contained within other.
func (r Range[T]) coveredBy(other Range[T]) bool {
	return other.from <= r.from && r.to <= other.to
}

// overlapsStartOf returns whether r overlaps the start of other, but
// not all of other.
func (r Range[T]) overlapsStartOf(other Range[T]) bool {
	return r.from <= other.from && r.to < other.to
}

// overlapsEndOf returns whether r overlaps the end of other, but not
// all of other.
func (r Range[T]) overlapsEndOf(other Range[T]) bool {
	return other.from < r.from && other.to <= r.to
}
