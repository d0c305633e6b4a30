package rangeset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fixtures returns a spread of well-formed sets exercising every
// classification the repair algorithms can meet.
func fixtures(t *testing.T) []Set[int] {
	t.Helper()
	return []Set[int]{
		New[int](),
		mustSet(t, [2]int{1, 5}),
		mustSet(t, [2]int{1, 3}, [2]int{6, 10}),
		mustSet(t, [2]int{0, 2}, [2]int{4, 5}, [2]int{8, 20}),
		mustSet(t, [2]int{2, 9}),
		mustSet(t, [2]int{1, 10}, [2]int{11, 20}),
		mustSet(t, [2]int{9, 12}),
		mustSet(t, [2]int{-5, 0}, [2]int{30, 40}),
	}
}

func TestUnionCommutative(t *testing.T) {
	ff := fixtures(t)
	for _, a := range ff {
		for _, b := range ff {
			ab := a.Union(b)
			ba := b.Union(a)
			if !ab.Equal(ba) {
				t.Errorf("union not commutative: %s + %s: %s != %s", a, b, ab, ba)
			}
			assertWellFormed(t, ab)
		}
	}
}

func TestIdempotence(t *testing.T) {
	for _, a := range fixtures(t) {
		assert.True(t, a.Union(a).Equal(a), "union(%s, %s)", a, a)
		assert.True(t, a.Difference(a).IsEmpty(), "difference(%s, %s)", a, a)
	}
}

func TestDisjointInverse(t *testing.T) {
	// for disjoint a and b, (a + b) - b == a
	a := mustSet(t, [2]int{1, 5}, [2]int{20, 25})
	b := mustSet(t, [2]int{7, 10}, [2]int{30, 35})
	got := a.Union(b).Difference(b)
	assert.True(t, got.Equal(a), "got %s, want %s", got, a)
}

func TestMeasureAdditive(t *testing.T) {
	a := mustSet(t, [2]int{1, 5}, [2]int{20, 25})
	b := mustSet(t, [2]int{7, 10}, [2]int{30, 35})
	assert.Equal(t, Measure(a)+Measure(b), Measure(a.Union(b)))
}

func TestMembershipConsistency(t *testing.T) {
	ff := fixtures(t)
	// interior sample points only: at a shared bound, closed-range
	// subtraction keeps the boundary point in the result.
	values := []int{-3, 7, 13, 16, 33}
	for _, a := range ff {
		for _, b := range ff {
			u := a.Union(b)
			d := a.Difference(b)
			for _, v := range values {
				if got, want := u.Has(v), a.Has(v) || b.Has(v); got != want {
					t.Errorf("%d in %s + %s: -want %t, +got: %t\n", v, a, b, want, got)
				}
				if got, want := d.Has(v), a.Has(v) && !b.Has(v); got != want {
					t.Errorf("%d in %s - %s: -want %t, +got: %t\n", v, a, b, want, got)
				}
			}
		}
	}
}

func TestDifferenceDoesNotMutateOperand(t *testing.T) {
	a := mustSet(t, [2]int{1, 10})
	b := mustSet(t, [2]int{2, 3})
	_ = a.Difference(b)
	_ = b.Difference(a)
	assert.Equal(t, "1-10", a.String())
	assert.Equal(t, "2-3", b.String())
}
