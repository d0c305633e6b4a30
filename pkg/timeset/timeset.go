package timeset

import (
	"fmt"
	"time"

	"github.com/henderiw/rangeset/pkg/rangeset"
)

// Span is a closed span of time [from, to].
type Span struct {
	from time.Time
	to   time.Time
}

func (s Span) From() time.Time { return s.from }

func (s Span) To() time.Time { return s.to }

func (s Span) Duration() time.Duration { return s.to.Sub(s.from) }

func (s Span) String() string {
	return fmt.Sprintf("%s-%s",
		s.from.UTC().Format(time.RFC3339Nano),
		s.to.UTC().Format(time.RFC3339Nano))
}

// Set is a union of disjoint time spans. Time is carried internally
// as unix nanoseconds, so the usable domain is the range covered by
// time.Time.UnixNano. The zero value is the empty set.
type Set struct {
	s rangeset.Set[int64]
}

// New returns the empty set.
func New() Set {
	return Set{s: rangeset.New[int64]()}
}

// From returns the set covering the single span [from, to].
func From(from, to time.Time) (Set, error) {
	s, err := rangeset.From(from.UnixNano(), to.UnixNano())
	if err != nil {
		return Set{}, err
	}
	return Set{s: s}, nil
}

func (s Set) Union(o Set) Set {
	return Set{s: s.s.Union(o.s)}
}

func (s Set) Difference(o Set) Set {
	return Set{s: s.s.Difference(o.s)}
}

// Has reports whether t falls within the set. Span bounds are
// inclusive.
func (s Set) Has(t time.Time) bool {
	return s.s.Has(t.UnixNano())
}

// Duration returns the summed length of all spans. The empty set has
// duration zero.
func (s Set) Duration() time.Duration {
	return time.Duration(rangeset.Measure(s.s))
}

func (s Set) Equal(o Set) bool {
	return s.s.Equal(o.s)
}

func (s Set) IsEmpty() bool {
	return s.s.IsEmpty()
}

func (s Set) Len() int {
	return s.s.Len()
}

// Spans returns the sorted minimal set of spans that covers s.
func (s Set) Spans() []Span {
	rr := s.s.Ranges()
	out := make([]Span, 0, len(rr))
	for _, r := range rr {
		out = append(out, Span{
			from: time.Unix(0, r.From()).UTC(),
			to:   time.Unix(0, r.To()).UTC(),
		})
	}
	return out
}

func (s Set) String() string {
	if s.s.IsEmpty() {
		return "empty"
	}
	out := ""
	for i, sp := range s.Spans() {
		if i > 0 {
			out += ","
		}
		out += sp.String()
	}
	return out
}
