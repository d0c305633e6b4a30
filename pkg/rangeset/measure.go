package rangeset

import "cmp"

// Number constrains the domains whose range spans can be summed
// directly with the built-in operators.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Measure returns the total length of s, the sum of to-from over its
// ranges. The empty set measures zero.
func Measure[T Number](s Set[T]) T {
	var total T
	for _, r := range s.rr {
		total += r.to - r.from
	}
	return total
}

// MeasureFunc returns the total length of s for domains whose span
// is of a different type than the bounds themselves, such as
// timestamps measured in durations. span computes the length of a
// single range and add accumulates; zero is the additive identity
// returned for the empty set, which cannot be derived from the
// callbacks alone.
func MeasureFunc[T cmp.Ordered, D any](s Set[T], zero D, span func(from, to T) D, add func(a, b D) D) D {
	total := zero
	for _, r := range s.rr {
		total = add(total, span(r.from, r.to))
	}
	return total
}
