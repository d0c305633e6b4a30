package rangeset

import "cmp"

// classification captures how a candidate range relates to the
// ranges already stored in a set: the at most one stored range
// overlapping the candidate's head (before), the at most one
// overlapping its tail (after), the stored ranges lying strictly
// inside it, and the at most one stored range covering it entirely
// (contains).
type classification[T cmp.Ordered] struct {
	before      Range[T]
	after       Range[T]
	contains    Range[T]
	inside      []Range[T]
	hasBefore   bool
	hasAfter    bool
	hasContains bool
}

// classify visits every stored range once and labels it relative to
// the candidate. Touching at a shared bound counts as overlap, since
// membership is inclusive on both ends. The input ranges must be
// pairwise disjoint, which Set maintains; under that precondition at
// most one before, one after and one contains can match, and a
// contains match ends the scan early.
func classify[T cmp.Ordered](candidate Range[T], rr []Range[T]) classification[T] {
	var c classification[T]
	for _, r := range rr {
		switch {
		case r.disjointFrom(candidate):
			// no interaction
		case r.inMiddleOf(candidate):
			c.inside = append(c.inside, r)
		case candidate.coveredBy(r):
			c.contains = r
			c.hasContains = true
			return c
		case r.overlapsEndOf(candidate):
			c.after = r
			c.hasAfter = true
		case r.overlapsStartOf(candidate):
			c.before = r
			c.hasBefore = true
		}
	}
	return c
}
