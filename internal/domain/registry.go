package domain

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/Flarenzy/simple-ipam/internal/addrmath"
)

// Snapshot is a point-in-time copy of the registry. Addresses are sorted by
// value; Claims holds the extra owner rows per value.
type Snapshot struct {
	Version   uint64
	Addresses []Address
	Claims    map[uint32][]Address
}

// Rows returns canonical records and claims in ascending value order, with
// the canonical record first for each value.
func (s Snapshot) Rows() []Address {
	rows := make([]Address, 0, len(s.Addresses))
	for _, a := range s.Addresses {
		rows = append(rows, a)
		rows = append(rows, s.Claims[a.Value]...)
	}
	return rows
}

// AddressRegistry is the system of record for address allocations. Exactly
// one canonical record exists per address value.
type AddressRegistry struct {
	mu      sync.RWMutex
	records map[uint32]Address
	claims  map[uint32][]Address
	version uint64
}

func NewAddressRegistry() *AddressRegistry {
	return &AddressRegistry{
		records: make(map[uint32]Address),
		claims:  make(map[uint32][]Address),
	}
}

func validateAddress(a Address) error {
	if !a.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, a.Status)
	}
	if !a.Subnet.Valid() {
		return fmt.Errorf("%w: subnet %s is not canonical", ErrInvalidPrefix, a.Subnet)
	}
	if !a.Subnet.Contains(a.Value) {
		return fmt.Errorf("%w: %s is outside %s", ErrInvalidAddress, a.IP(), a.Subnet)
	}
	return nil
}

// Upsert inserts or replaces the canonical record for a.Value. Existing
// claims for the value are kept.
func (r *AddressRegistry) Upsert(a Address) error {
	if err := validateAddress(a); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[a.Value] = a
	r.version++
	return nil
}

// Claim records an owner assertion for a.Value. The first claim for a value
// becomes the canonical record; later ones are kept alongside it.
func (r *AddressRegistry) Claim(a Address) error {
	if err := validateAddress(a); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.claimLocked(a)
	r.version++
	return nil
}

func (r *AddressRegistry) claimLocked(a Address) {
	if _, ok := r.records[a.Value]; !ok {
		r.records[a.Value] = a
		return
	}
	r.claims[a.Value] = append(r.claims[a.Value], a)
}

// Remove deletes the record and its claims. Absent values are ignored.
func (r *AddressRegistry) Remove(value uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[value]; !ok {
		return
	}
	delete(r.records, value)
	delete(r.claims, value)
	r.version++
}

func (r *AddressRegistry) RemoveStrict(value uint32) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[value]; !ok {
		return fmt.Errorf("%w: %s", ErrAddressNotFound, addrmath.ToDottedQuad(value))
	}
	delete(r.records, value)
	delete(r.claims, value)
	r.version++
	return nil
}

func (r *AddressRegistry) Find(value uint32) (Address, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.records[value]
	return a, ok
}

func (r *AddressRegistry) Get(value uint32) (Address, error) {
	a, ok := r.Find(value)
	if !ok {
		return Address{}, fmt.Errorf("%w: %s", ErrAddressNotFound, addrmath.ToDottedQuad(value))
	}
	return a, nil
}

// ClearClaims drops the extra owner rows for value and reports how many were
// removed.
func (r *AddressRegistry) ClearClaims(value uint32) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := len(r.claims[value])
	if n == 0 {
		return 0
	}
	delete(r.claims, value)
	r.version++
	return n
}

// ListBySubnet returns the canonical records owned by n in ascending
// integer order.
func (r *AddressRegistry) ListBySubnet(n addrmath.Network) []Address {
	r.mu.RLock()
	out := make([]Address, 0)
	for _, a := range r.records {
		if a.Subnet == n {
			out = append(out, a)
		}
	}
	r.mu.RUnlock()

	sortByValue(out)
	return out
}

// CountByStatus always reports all four statuses.
func (r *AddressRegistry) CountByStatus(n addrmath.Network) map[Status]int {
	counts := make(map[Status]int, len(Statuses))
	for _, s := range Statuses {
		counts[s] = 0
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.records {
		if a.Subnet == n {
			counts[a.Status]++
		}
	}
	return counts
}

// Load merges rows into the registry. All rows are validated before any is
// applied. Within the batch the first row for a value upserts and later rows
// for the same value become claims.
func (r *AddressRegistry) Load(rows []Address) (LoadReport, error) {
	for i, a := range rows {
		if err := validateAddress(a); err != nil {
			return LoadReport{}, fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var report LoadReport
	seen := make(map[uint32]struct{}, len(rows))
	for _, a := range rows {
		if _, dup := seen[a.Value]; dup {
			r.claims[a.Value] = append(r.claims[a.Value], a)
			report.Claims++
			continue
		}
		seen[a.Value] = struct{}{}
		if _, ok := r.records[a.Value]; ok {
			report.Replaced++
		} else {
			report.Inserted++
		}
		r.records[a.Value] = a
	}
	if len(rows) > 0 {
		r.version++
	}
	return report, nil
}

// Restore replaces the whole registry state with records and claims, as read
// back from a store.
func (r *AddressRegistry) Restore(records []Address, claims []Address) error {
	for _, a := range records {
		if err := validateAddress(a); err != nil {
			return err
		}
	}
	for _, a := range claims {
		if err := validateAddress(a); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = make(map[uint32]Address, len(records))
	r.claims = make(map[uint32][]Address)
	for _, a := range records {
		r.records[a.Value] = a
	}
	for _, a := range claims {
		r.claimLocked(a)
	}
	r.version++
	return nil
}

func (r *AddressRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = make(map[uint32]Address)
	r.claims = make(map[uint32][]Address)
	r.version++
}

func (r *AddressRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

func (r *AddressRegistry) Version() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}

// Snapshot copies the registry under the read lock. Readers see the state as
// of the most recent completed write.
func (r *AddressRegistry) Snapshot() Snapshot {
	r.mu.RLock()
	snap := Snapshot{
		Version:   r.version,
		Addresses: make([]Address, 0, len(r.records)),
		Claims:    make(map[uint32][]Address, len(r.claims)),
	}
	for _, a := range r.records {
		snap.Addresses = append(snap.Addresses, a)
	}
	for v, c := range r.claims {
		snap.Claims[v] = slices.Clone(c)
	}
	r.mu.RUnlock()

	sortByValue(snap.Addresses)
	return snap
}

func sortByValue(addrs []Address) {
	slices.SortFunc(addrs, func(a, b Address) int {
		return cmp.Compare(a.Value, b.Value)
	})
}
