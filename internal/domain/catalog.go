package domain

import (
	"fmt"
	"slices"
	"sync"

	"go4.org/netipx"

	"github.com/Flarenzy/simple-ipam/internal/addrmath"
)

// SubnetCatalog keeps the declared subnets and projects per-subnet summaries
// from the registry. It never owns address records.
type SubnetCatalog struct {
	registry *AddressRegistry

	mu      sync.RWMutex
	subnets map[int64]Subnet
	nextID  int64
}

func NewSubnetCatalog(registry *AddressRegistry) *SubnetCatalog {
	return &SubnetCatalog{
		registry: registry,
		subnets:  make(map[int64]Subnet),
		nextID:   1,
	}
}

// Define adds a subnet definition. A zero ID is assigned from the catalog's
// own sequence. Definitions may not overlap.
func (c *SubnetCatalog) Define(s Subnet) (Subnet, error) {
	if !s.Network.Valid() {
		return Subnet{}, fmt.Errorf("%w: %s is not canonical", ErrInvalidPrefix, s.Network)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if s.ID != 0 {
		if _, ok := c.subnets[s.ID]; ok {
			return Subnet{}, fmt.Errorf("%w: subnet id %d already defined", ErrConflict, s.ID)
		}
	}
	if other, ok := c.overlappingLocked(s.Network); ok {
		return Subnet{}, fmt.Errorf("%w: %s overlaps %s", ErrConflict, s.Network, other.Network)
	}

	if s.ID == 0 {
		s.ID = c.nextID
	}
	if s.ID >= c.nextID {
		c.nextID = s.ID + 1
	}
	c.subnets[s.ID] = s
	return s, nil
}

// CheckOverlap reports ErrConflict when n overlaps a defined subnet.
func (c *SubnetCatalog) CheckOverlap(n addrmath.Network) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if other, ok := c.overlappingLocked(n); ok {
		return fmt.Errorf("%w: %s overlaps %s", ErrConflict, n, other.Network)
	}
	return nil
}

func (c *SubnetCatalog) overlappingLocked(n addrmath.Network) (Subnet, bool) {
	var b netipx.IPSetBuilder
	for _, s := range c.subnets {
		b.AddPrefix(s.Network.Prefix())
	}
	set, err := b.IPSet()
	if err != nil || !set.OverlapsPrefix(n.Prefix()) {
		return Subnet{}, false
	}
	for _, s := range c.subnets {
		if s.Network.Overlaps(n) {
			return s, true
		}
	}
	return Subnet{}, false
}

func (c *SubnetCatalog) Undefine(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.subnets[id]; !ok {
		return false
	}
	delete(c.subnets, id)
	return true
}

func (c *SubnetCatalog) Get(id int64) (Subnet, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.subnets[id]
	if !ok {
		return Subnet{}, fmt.Errorf("%w: id %d", ErrSubnetNotFound, id)
	}
	return s, nil
}

func (c *SubnetCatalog) Lookup(n addrmath.Network) (Subnet, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, s := range c.subnets {
		if s.Network == n {
			return s, true
		}
	}
	return Subnet{}, false
}

// Containing returns the defined subnet that holds ip.
func (c *SubnetCatalog) Containing(ip uint32) (Subnet, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, s := range c.subnets {
		if s.Network.Contains(ip) {
			return s, true
		}
	}
	return Subnet{}, false
}

// List returns definitions by ascending base address.
func (c *SubnetCatalog) List() []Subnet {
	c.mu.RLock()
	out := make([]Subnet, 0, len(c.subnets))
	for _, s := range c.subnets {
		out = append(out, s)
	}
	c.mu.RUnlock()

	slices.SortFunc(out, func(a, b Subnet) int { return a.Network.Compare(b.Network) })
	return out
}

// Restore replaces all definitions, as read back from a store.
func (c *SubnetCatalog) Restore(subnets []Subnet) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subnets = make(map[int64]Subnet, len(subnets))
	c.nextID = 1
	for _, s := range subnets {
		c.subnets[s.ID] = s
		if s.ID >= c.nextID {
			c.nextID = s.ID + 1
		}
	}
}

// Summarize counts the registry records owned by n. It never fails; an
// empty subnet reports 0% utilization.
func (c *SubnetCatalog) Summarize(n addrmath.Network) SubnetSummary {
	counts := c.registry.CountByStatus(n)
	summary := summaryFromCounts(n, counts)
	if s, ok := c.Lookup(n); ok {
		summary.Defined = true
		summary.Description = s.Description
	}
	return summary
}

// SummarizeAll covers every defined subnet and every subnet referenced by an
// address, ordered by base address then prefix length.
func (c *SubnetCatalog) SummarizeAll() []SubnetSummary {
	snap := c.registry.Snapshot()

	counts := make(map[addrmath.Network]map[Status]int)
	for _, a := range snap.Addresses {
		m, ok := counts[a.Subnet]
		if !ok {
			m = make(map[Status]int, len(Statuses))
			counts[a.Subnet] = m
		}
		m[a.Status]++
	}

	defined := c.List()
	byNetwork := make(map[addrmath.Network]Subnet, len(defined))
	for _, s := range defined {
		byNetwork[s.Network] = s
		if _, ok := counts[s.Network]; !ok {
			counts[s.Network] = map[Status]int{}
		}
	}

	out := make([]SubnetSummary, 0, len(counts))
	for n, m := range counts {
		summary := summaryFromCounts(n, m)
		if s, ok := byNetwork[n]; ok {
			summary.Defined = true
			summary.Description = s.Description
		}
		out = append(out, summary)
	}
	slices.SortFunc(out, func(a, b SubnetSummary) int { return a.Network.Compare(b.Network) })
	return out
}

// Totals are the headline counts across the whole registry. Conflicts is
// left for the caller to fill.
func (c *SubnetCatalog) Totals() Totals {
	snap := c.registry.Snapshot()
	var t Totals
	for _, a := range snap.Addresses {
		t.Total++
		switch a.Status {
		case StatusAllocated:
			t.Allocated++
		case StatusAvailable:
			t.Available++
		case StatusReserved:
			t.Reserved++
		case StatusQuarantine:
			t.Quarantine++
		}
	}
	return t
}

func summaryFromCounts(n addrmath.Network, counts map[Status]int) SubnetSummary {
	s := SubnetSummary{
		Network:    n,
		Allocated:  counts[StatusAllocated],
		Available:  counts[StatusAvailable],
		Reserved:   counts[StatusReserved],
		Quarantine: counts[StatusQuarantine],
		Capacity:   n.UsableHosts(),
	}
	s.Total = s.Allocated + s.Available + s.Reserved + s.Quarantine
	s.UtilizationPercent = Percent(s.Allocated, s.Total)
	return s
}
