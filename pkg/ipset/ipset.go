package ipset

import (
	"encoding/binary"
	"fmt"
	"net/netip"

	"github.com/hansthienpondt/nipam/pkg/table"
	"github.com/henderiw/rangeset/pkg/rangeset"
	"go4.org/netipx"
	"k8s.io/apimachinery/pkg/labels"
)

// Set is a union of IPv4 address ranges. Addresses are discrete, so
// a claimed range [a, b] is carried as the half-open window
// [index(a), index(b)+1) in the underlying range set; that way
// adjacent address ranges merge into one, the same way touching
// ranges do in the continuous domain.
type Set struct {
	s rangeset.Set[uint64]
}

// New returns the empty set.
func New() Set {
	return Set{s: rangeset.New[uint64]()}
}

// From returns the set covering the addresses from from to to,
// both included. A single address set is From(a, a).
func From(from, to netip.Addr) (Set, error) {
	ufrom, err := index(from)
	if err != nil {
		return Set{}, err
	}
	uto, err := index(to)
	if err != nil {
		return Set{}, err
	}
	if uto < ufrom {
		return Set{}, fmt.Errorf("invalid range from %s to %s", from, to)
	}
	s, err := rangeset.From(ufrom, uto+1)
	if err != nil {
		return Set{}, err
	}
	return Set{s: s}, nil
}

// ParseRange returns the set covering a range in the form
// "10.0.0.10-10.0.0.20".
func ParseRange(s string) (Set, error) {
	ipRange, err := netipx.ParseIPRange(s)
	if err != nil {
		return Set{}, err
	}
	return From(ipRange.From(), ipRange.To())
}

func (s Set) Union(o Set) Set {
	return Set{s: s.s.Union(o.s)}
}

func (s Set) Difference(o Set) Set {
	return Set{s: s.s.Difference(o.s)}
}

// Has reports whether addr belongs to s.
func (s Set) Has(addr netip.Addr) bool {
	u, err := index(addr)
	if err != nil {
		return false
	}
	for _, r := range s.s.Ranges() {
		if r.From() <= u && u < r.To() {
			return true
		}
	}
	return false
}

func (s Set) Equal(o Set) bool {
	return s.s.Equal(o.s)
}

func (s Set) IsEmpty() bool {
	return s.s.IsEmpty()
}

// Addresses returns the number of addresses in s.
func (s Set) Addresses() uint64 {
	return rangeset.Measure(s.s)
}

// Ranges returns the sorted minimal set of address ranges that
// covers s.
func (s Set) Ranges() []netipx.IPRange {
	rr := s.s.Ranges()
	out := make([]netipx.IPRange, 0, len(rr))
	for _, r := range rr {
		out = append(out, netipx.IPRangeFrom(addr(r.From()), addr(r.To()-1)))
	}
	return out
}

// Prefixes returns the minimal set of prefixes that covers s.
func (s Set) Prefixes() []netip.Prefix {
	var out []netip.Prefix
	for _, r := range s.Ranges() {
		out = append(out, r.Prefixes()...)
	}
	return out
}

// Routes returns a route per covering prefix, each carrying l.
func (s Set) Routes(l labels.Set) table.Routes {
	var routes table.Routes
	for _, p := range s.Prefixes() {
		routes = append(routes, table.NewRoute(p, l, nil))
	}
	return routes
}

func (s Set) String() string {
	if s.s.IsEmpty() {
		return "empty"
	}
	out := ""
	for i, r := range s.Ranges() {
		if i > 0 {
			out += ","
		}
		out += r.String()
	}
	return out
}

func index(a netip.Addr) (uint64, error) {
	if !a.IsValid() {
		return 0, fmt.Errorf("ip address %s is invalid", a)
	}
	a = a.Unmap()
	if !a.Is4() {
		return 0, fmt.Errorf("ip address %s is not an ipv4 address", a)
	}
	a4 := a.As4()
	return uint64(binary.BigEndian.Uint32(a4[:])), nil
}

func addr(u uint64) netip.Addr {
	var a4 [4]byte
	binary.BigEndian.PutUint32(a4[:], uint32(u))
	return netip.AddrFrom4(a4)
}
