package vlanalloc

import (
	"fmt"

	"github.com/henderiw/rangeset/pkg/allocator"
	"k8s.io/apimachinery/pkg/labels"
)

const (
	untaggedVLAN = 0
	defaultVLAN  = 1
	reservedVLAN = 4095
)

// Table allocates VLAN ids from the 0-4095 space. VLANs 0, 1 and
// 4095 are pre-claimed as reserved and cannot be claimed or
// released.
type Table struct {
	alloc *allocator.Allocator
}

func New() (*Table, error) {
	a, err := allocator.New(0, 4095)
	if err != nil {
		return nil, err
	}
	reserved := map[int64]labels.Set{
		untaggedVLAN: {"type": "untagged", "status": "reserved"},
		defaultVLAN:  {"type": "untagged", "status": "reserved"},
		reservedVLAN: {"type": "untagged", "status": "reserved"},
	}
	for id, d := range reserved {
		if err := a.Claim(id, d); err != nil {
			return nil, err
		}
	}
	return &Table{alloc: a}, nil
}

func (r *Table) validateID(id int64) error {
	switch id {
	case untaggedVLAN:
		return fmt.Errorf("VLAN %d is the untagged VLAN, cannot be claimed", id)
	case defaultVLAN:
		return fmt.Errorf("VLAN %d is the default VLAN, cannot be claimed", id)
	case reservedVLAN:
		return fmt.Errorf("VLAN %d is reserved, cannot be claimed", id)
	}
	if id < 0 || id > 4095 {
		return fmt.Errorf("VLAN %d is outside the VLAN space", id)
	}
	return nil
}

func (r *Table) Claim(id int64, d labels.Set) error {
	if err := r.validateID(id); err != nil {
		return err
	}
	return r.alloc.Claim(id, d)
}

func (r *Table) ClaimRange(from, to int64, d labels.Set) error {
	if err := r.validateID(from); err != nil {
		return err
	}
	if err := r.validateID(to); err != nil {
		return err
	}
	return r.alloc.ClaimRange(from, to, d)
}

// ClaimDynamic claims the first free VLAN.
func (r *Table) ClaimDynamic(d labels.Set) (int64, error) {
	return r.alloc.ClaimFree(d)
}

func (r *Table) Release(id int64) error {
	if err := r.validateID(id); err != nil {
		return err
	}
	return r.alloc.Release(id, id)
}

func (r *Table) Count() int {
	return r.alloc.Count()
}

func (r *Table) Has(id int64) bool {
	return r.alloc.Has(id)
}

func (r *Table) IsFree(id int64) bool {
	return r.alloc.IsFree(id)
}

func (r *Table) FindFree() (int64, error) {
	return r.alloc.FindFree()
}

func (r *Table) GetAll() []allocator.Entry {
	return r.alloc.GetAll()
}

func (r *Table) GetByLabel(selector labels.Selector) []allocator.Entry {
	return r.alloc.GetByLabel(selector)
}
