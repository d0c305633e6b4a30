package allocator

import (
	"fmt"
	"sort"

	"github.com/henderiw/rangeset/pkg/rangeset"
	"k8s.io/apimachinery/pkg/labels"
)

// Entry is a claimed block of ids, bounds inclusive, with the labels
// it was claimed with.
type Entry struct {
	from   int64
	to     int64
	labels labels.Set
}

func (e Entry) From() int64 { return e.from }

func (e Entry) To() int64 { return e.to }

func (e Entry) Labels() labels.Set { return e.labels }

func (e Entry) String() string {
	return fmt.Sprintf("range: %d-%d, labels: %s", e.from, e.to, e.labels.String())
}

// Allocator hands out ids from the inclusive space [from, to]. Free
// space is a range set; a claim subtracts from it and a release adds
// back to it, so releasing adjacent blocks coalesces the free space
// again. Ids are discrete, carried as half-open windows in the
// underlying set ([a, b] as [a, b+1)).
type Allocator struct {
	from    int64
	to      int64
	free    rangeset.Set[int64]
	entries []Entry
}

func New(from, to int64) (*Allocator, error) {
	free, err := rangeset.From(from, to+1)
	if err != nil {
		return nil, fmt.Errorf("invalid id space %d-%d: %w", from, to, err)
	}
	return &Allocator{
		from: from,
		to:   to,
		free: free,
	}, nil
}

// Claim claims a single id.
func (r *Allocator) Claim(id int64, d labels.Set) error {
	return r.ClaimRange(id, id, d)
}

// ClaimRange claims the inclusive id range [from, to].
func (r *Allocator) ClaimRange(from, to int64, d labels.Set) error {
	if from < r.from || to > r.to {
		return fmt.Errorf("range %d-%d does not fit in the id space %d-%d", from, to, r.from, r.to)
	}
	req, err := rangeset.From(from, to+1)
	if err != nil {
		return fmt.Errorf("invalid range %d-%d: %w", from, to, err)
	}
	if !req.Difference(r.free).IsEmpty() {
		return fmt.Errorf("claim failed range %d-%d already claimed", from, to)
	}
	r.free = r.free.Difference(req)
	r.entries = append(r.entries, Entry{from: from, to: to, labels: d})
	return nil
}

// ClaimSize claims the first free contiguous block of size ids and
// returns its first id.
func (r *Allocator) ClaimSize(size int64, d labels.Set) (int64, error) {
	if size <= 0 {
		return 0, fmt.Errorf("invalid size %d", size)
	}
	for _, fr := range r.free.Ranges() {
		if fr.To()-fr.From() >= size {
			from := fr.From()
			if err := r.ClaimRange(from, from+size-1, d); err != nil {
				return 0, err
			}
			return from, nil
		}
	}
	return 0, fmt.Errorf("no free range of size %d", size)
}

// ClaimFree claims the first free id.
func (r *Allocator) ClaimFree(d labels.Set) (int64, error) {
	return r.ClaimSize(1, d)
}

// Release releases the claimed range [from, to]. The range must
// match a prior claim exactly.
func (r *Allocator) Release(from, to int64) error {
	idx := -1
	for i, e := range r.entries {
		if e.from == from && e.to == to {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("release failed range %d-%d not claimed", from, to)
	}
	req, err := rangeset.From(from, to+1)
	if err != nil {
		return err
	}
	r.free = r.free.Union(req)
	r.entries = append(r.entries[:idx], r.entries[idx+1:]...)
	return nil
}

// Has reports whether id is claimed.
func (r *Allocator) Has(id int64) bool {
	if id < r.from || id > r.to {
		return false
	}
	return !r.IsFree(id)
}

// IsFree reports whether id is inside the id space and unclaimed.
func (r *Allocator) IsFree(id int64) bool {
	for _, fr := range r.free.Ranges() {
		if fr.From() <= id && id < fr.To() {
			return true
		}
	}
	return false
}

// FindFree returns the first free id without claiming it.
func (r *Allocator) FindFree() (int64, error) {
	rr := r.free.Ranges()
	if len(rr) == 0 {
		return 0, fmt.Errorf("no free id available")
	}
	return rr[0].From(), nil
}

// Count returns the number of claimed ids.
func (r *Allocator) Count() int {
	size := r.to - r.from + 1
	return int(size - rangeset.Measure(r.free))
}

// GetAll returns all claimed entries, ordered by first id.
func (r *Allocator) GetAll() []Entry {
	out := append([]Entry{}, r.entries...)
	sort.Slice(out, func(i, j int) bool { return out[i].from < out[j].from })
	return out
}

// GetByLabel returns the claimed entries whose labels match the
// selector, ordered by first id.
func (r *Allocator) GetByLabel(selector labels.Selector) []Entry {
	var out []Entry
	for _, e := range r.GetAll() {
		if selector.Matches(e.labels) {
			out = append(out, e)
		}
	}
	return out
}
