package domain

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/Flarenzy/simple-ipam/internal/addrmath"
)

// ScopeUtilizationTracker holds lease-pool scopes whose allocated counts
// are reported by the lease server.
type ScopeUtilizationTracker struct {
	mu     sync.RWMutex
	scopes map[int64]Scope
	nextID int64
}

func NewScopeUtilizationTracker() *ScopeUtilizationTracker {
	return &ScopeUtilizationTracker{
		scopes: make(map[int64]Scope),
		nextID: 1,
	}
}

// ValidateScope checks s and fills the defaults for TotalCount and Status.
func ValidateScope(s Scope) (Scope, error) {
	if s.Name == "" {
		return Scope{}, fmt.Errorf("%w: scope name is required", ErrInvalidInput)
	}
	if !s.Subnet.Valid() {
		return Scope{}, fmt.Errorf("%w: subnet %s is not canonical", ErrInvalidPrefix, s.Subnet)
	}
	if s.RangeStart > s.RangeEnd {
		return Scope{}, fmt.Errorf("%w: range start %s is after end %s",
			ErrInvalidInput, addrmath.ToDottedQuad(s.RangeStart), addrmath.ToDottedQuad(s.RangeEnd))
	}
	if !s.Subnet.Contains(s.RangeStart) || !s.Subnet.Contains(s.RangeEnd) {
		return Scope{}, fmt.Errorf("%w: range %s-%s is outside %s", ErrInvalidAddress,
			addrmath.ToDottedQuad(s.RangeStart), addrmath.ToDottedQuad(s.RangeEnd), s.Subnet)
	}
	if s.Gateway != "" {
		if _, err := addrmath.ParseAddr(s.Gateway); err != nil {
			return Scope{}, fmt.Errorf("gateway: %w", err)
		}
	}
	for _, dns := range s.DNSServers {
		if _, err := addrmath.ParseAddr(dns); err != nil {
			return Scope{}, fmt.Errorf("dns server: %w", err)
		}
	}

	switch s.Status {
	case "":
		s.Status = ScopeActive
	case ScopeActive, ScopeInactive:
	default:
		return Scope{}, fmt.Errorf("%w: scope status %q", ErrInvalidStatus, s.Status)
	}

	if s.TotalCount == 0 {
		s.TotalCount = int(s.RangeEnd-s.RangeStart) + 1
	}
	if s.TotalCount < 0 {
		return Scope{}, fmt.Errorf("%w: total count %d", ErrInvalidInput, s.TotalCount)
	}
	if s.AllocatedCount < 0 || s.AllocatedCount > s.TotalCount {
		return Scope{}, fmt.Errorf("%w: allocated count %d not in [0,%d]", ErrInvalidInput, s.AllocatedCount, s.TotalCount)
	}
	return s, nil
}

func (t *ScopeUtilizationTracker) Add(s Scope) (Scope, error) {
	s, err := ValidateScope(s)
	if err != nil {
		return Scope{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if s.ID != 0 {
		if _, ok := t.scopes[s.ID]; ok {
			return Scope{}, fmt.Errorf("%w: scope id %d already exists", ErrConflict, s.ID)
		}
	} else {
		s.ID = t.nextID
	}
	if s.ID >= t.nextID {
		t.nextID = s.ID + 1
	}
	t.scopes[s.ID] = s
	return s, nil
}

func (t *ScopeUtilizationTracker) SetAllocated(id int64, allocated int) (ScopeUtilization, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s, ok := t.scopes[id]
	if !ok {
		return ScopeUtilization{}, fmt.Errorf("%w: id %d", ErrScopeNotFound, id)
	}
	if allocated < 0 || allocated > s.TotalCount {
		return ScopeUtilization{}, fmt.Errorf("%w: allocated count %d not in [0,%d]", ErrInvalidInput, allocated, s.TotalCount)
	}
	s.AllocatedCount = allocated
	t.scopes[id] = s
	return Utilization(s), nil
}

func (t *ScopeUtilizationTracker) Remove(id int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.scopes[id]; !ok {
		return false
	}
	delete(t.scopes, id)
	return true
}

func (t *ScopeUtilizationTracker) Get(id int64) (ScopeUtilization, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	s, ok := t.scopes[id]
	if !ok {
		return ScopeUtilization{}, fmt.Errorf("%w: id %d", ErrScopeNotFound, id)
	}
	return Utilization(s), nil
}

// List orders scopes by subnet, then range start, then ID.
func (t *ScopeUtilizationTracker) List() []ScopeUtilization {
	t.mu.RLock()
	out := make([]ScopeUtilization, 0, len(t.scopes))
	for _, s := range t.scopes {
		out = append(out, Utilization(s))
	}
	t.mu.RUnlock()

	slices.SortFunc(out, func(a, b ScopeUtilization) int {
		if c := a.Subnet.Compare(b.Subnet); c != 0 {
			return c
		}
		if c := cmp.Compare(a.RangeStart, b.RangeStart); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// Restore replaces all scopes, as read back from a store.
func (t *ScopeUtilizationTracker) Restore(scopes []Scope) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.scopes = make(map[int64]Scope, len(scopes))
	t.nextID = 1
	for _, s := range scopes {
		t.scopes[s.ID] = s
		if s.ID >= t.nextID {
			t.nextID = s.ID + 1
		}
	}
}

func Utilization(s Scope) ScopeUtilization {
	pct := Percent(s.AllocatedCount, s.TotalCount)
	return ScopeUtilization{
		Scope:              s,
		UtilizationPercent: pct,
		Level:              LevelFor(pct),
	}
}
