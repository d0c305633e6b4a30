package rangeset

import (
	"cmp"
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrInvalidRange = errors.New("invalid range")

// Set is a union of points over an ordered domain, held as pairwise
// disjoint, non-touching closed ranges. The internal order of the
// ranges is not meaningful; every operation that exposes them sorts
// first. The zero value is the empty set.
//
// Union and Difference never mutate their operands; they return a
// freshly built Set, so a Set can safely appear on both sides of an
// expression.
type Set[T cmp.Ordered] struct {
	rr []Range[T]
}

// New returns the empty set.
func New[T cmp.Ordered]() Set[T] {
	return Set[T]{}
}

// From returns the set covering the single closed range [from, to].
func From[T cmp.Ordered](from, to T) (Set[T], error) {
	return FromRange(RangeFrom(from, to))
}

// FromRange returns the set covering r.
func FromRange[T cmp.Ordered](r Range[T]) (Set[T], error) {
	if !r.IsValid() {
		return Set[T]{}, fmt.Errorf("%w: %s", ErrInvalidRange, r)
	}
	return Set[T]{rr: []Range[T]{r}}, nil
}

// Union returns the set of points belonging to s, to o, or to both.
func (s Set[T]) Union(o Set[T]) Set[T] {
	acc := append([]Range[T]{}, s.rr...)
	for _, r := range o.rr {
		acc = mergeOne(acc, r)
	}
	return Set[T]{rr: acc}
}

// Difference returns the set of points belonging to s but not to o.
func (s Set[T]) Difference(o Set[T]) Set[T] {
	acc := append([]Range[T]{}, s.rr...)
	for _, r := range o.rr {
		acc = removeOne(acc, r)
	}
	return Set[T]{rr: acc}
}

// Has reports whether v belongs to s. Range bounds are inclusive.
func (s Set[T]) Has(v T) bool {
	for _, r := range s.rr {
		if r.Contains(v) {
			return true
		}
	}
	return false
}

// Equal reports whether s and o denote the same set of points,
// regardless of the order their ranges are held in.
func (s Set[T]) Equal(o Set[T]) bool {
	if len(s.rr) != len(o.rr) {
		return false
	}
	srr := s.Ranges()
	orr := o.Ranges()
	for i := range srr {
		if srr[i] != orr[i] {
			return false
		}
	}
	return true
}

func (s Set[T]) IsEmpty() bool {
	return len(s.rr) == 0
}

// Len returns the number of disjoint ranges in s.
func (s Set[T]) Len() int {
	return len(s.rr)
}

// Ranges returns the sorted minimal set of ranges that covers s.
func (s Set[T]) Ranges() []Range[T] {
	out := append([]Range[T]{}, s.rr...)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

func (s Set[T]) String() string {
	if len(s.rr) == 0 {
		return "empty"
	}
	var b strings.Builder
	for i, r := range s.Ranges() {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(r.String())
	}
	return b.String()
}

// mergeOne merges r into rr, which must be pairwise disjoint, and
// returns the repaired collection. Rather than growing an
// overlapping head and tail range independently, which can leave the
// two grown ranges overlapping each other, every range interacting
// with r is replaced by the single span enclosing them all.
func mergeOne[T cmp.Ordered](rr []Range[T], r Range[T]) []Range[T] {
	c := classify(r, rr)
	if c.hasContains {
		// r is already fully covered
		return rr
	}
	span := r
	if c.hasBefore {
		span.from = min(span.from, c.before.from)
		span.to = max(span.to, c.before.to)
	}
	if c.hasAfter {
		span.from = min(span.from, c.after.from)
		span.to = max(span.to, c.after.to)
	}
	out := dropClassified(rr, c)
	return append(out, span)
}

// removeOne subtracts r from rr, which must be pairwise disjoint,
// and returns the repaired collection. Ranges partially covered by r
// are trimmed to their residual rather than dropped; a range
// covering r entirely is split around it.
func removeOne[T cmp.Ordered](rr []Range[T], r Range[T]) []Range[T] {
	c := classify(r, rr)
	out := dropClassified(rr, c)
	if c.hasContains {
		if c.contains.from != r.from {
			out = append(out, Range[T]{from: c.contains.from, to: r.from})
		}
		if r.to != c.contains.to {
			out = append(out, Range[T]{from: r.to, to: c.contains.to})
		}
		return out
	}
	if c.hasBefore && c.before.from != r.from {
		out = append(out, Range[T]{from: c.before.from, to: r.from})
	}
	if c.hasAfter && r.to != c.after.to {
		out = append(out, Range[T]{from: r.to, to: c.after.to})
	}
	return out
}

// dropClassified filters rr in place, removing every range classify
// labeled. rr must be exclusively owned by the caller.
func dropClassified[T cmp.Ordered](rr []Range[T], c classification[T]) []Range[T] {
	out := rr[:0]
	for _, e := range rr {
		switch {
		case c.hasContains && e == c.contains:
		case c.hasBefore && e == c.before:
		case c.hasAfter && e == c.after:
		case containsRange(c.inside, e):
		default:
			out = append(out, e)
		}
	}
	return out
}

func containsRange[T cmp.Ordered](rr []Range[T], r Range[T]) bool {
	for _, e := range rr {
		if e == r {
			return true
		}
	}
	return false
}
