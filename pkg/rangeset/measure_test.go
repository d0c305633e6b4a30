package rangeset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeasure(t *testing.T) {
	cases := map[string]struct {
		pairs    [][2]int
		expected int
	}{
		"Empty":  {pairs: nil, expected: 0},
		"Single": {pairs: [][2]int{{1, 5}}, expected: 4},
		"Multi":  {pairs: [][2]int{{1, 5}, {6, 10}}, expected: 8},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			s := mustSet(t, tc.pairs...)
			if got := Measure(s); got != tc.expected {
				t.Errorf("%s: -want %d, +got: %d\n", name, tc.expected, got)
			}
		})
	}
}

func TestMeasureFloat(t *testing.T) {
	a, err := From(0.1, 0.2)
	assert.NoError(t, err)
	b, err := From(1.0, 5.0)
	assert.NoError(t, err)
	assert.InDelta(t, 4.1, Measure(a.Union(b)), 1e-9)
}

func TestMeasureFunc(t *testing.T) {
	s := mustSet(t, [2]int{1, 5}, [2]int{6, 10})
	got := MeasureFunc(s, int64(0),
		func(from, to int) int64 { return int64(to - from) },
		func(a, b int64) int64 { return a + b },
	)
	assert.Equal(t, int64(8), got)

	empty := MeasureFunc(New[int](), int64(42),
		func(from, to int) int64 { return int64(to - from) },
		func(a, b int64) int64 { return a + b },
	)
	// the seed is the measure of the empty set
	assert.Equal(t, int64(42), empty)
}
