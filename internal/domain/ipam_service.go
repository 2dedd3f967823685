package domain

import (
	"context"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"


	"github.com/Flarenzy/simple-ipam/internal/addrmath"
)

type ipamService struct {
	store Store

	// mu serializes persist-then-apply writes so the store and the
	// in-memory state never disagree about a value.
	mu sync.Mutex

	registry *AddressRegistry
	catalog  *SubnetCatalog
	detector *ConflictDetector
	scopes   *ScopeUtilizationTracker

	now func() time.Time
}

// NewIPAMService builds the service and loads any state found in store.
func NewIPAMService(ctx context.Context, store Store) (IPAMService, error) {
	registry := NewAddressRegistry()
	s := &ipamService{
		store:    store,
		registry: registry,
		catalog:  NewSubnetCatalog(registry),
		detector: NewConflictDetector(registry),
		scopes:   NewScopeUtilizationTracker(),
		now:      func() time.Time { return time.Now().UTC() },
	}
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *ipamService) load(ctx context.Context) error {
	if s.store.Subnets != nil {
		subnets, err := s.store.Subnets.List(ctx)
		if err != nil {
			return fmt.Errorf("load subnets: %w", err)
		}
		s.catalog.Restore(subnets)
	}
	if s.store.Addresses != nil {
		records, err := s.store.Addresses.List(ctx)
		if err != nil {
			return fmt.Errorf("load addresses: %w", err)
		}
		claims, err := s.store.Addresses.ListClaims(ctx)
		if err != nil {
			return fmt.Errorf("load claims: %w", err)
		}
		if err := s.registry.Restore(records, claims); err != nil {
			return fmt.Errorf("load addresses: %w", err)
		}
	}
	if s.store.Scopes != nil {
		scopes, err := s.store.Scopes.List(ctx)
		if err != nil {
			return fmt.Errorf("load scopes: %w", err)
		}
		s.scopes.Restore(scopes)
	}
	return nil
}

func (s *ipamService) ParseCIDR(_ context.Context, text string) (addrmath.Network, error) {
	return addrmath.ParseCIDR(strings.TrimSpace(text))
}

func (s *ipamService) Calculate(_ context.Context, text string) (addrmath.Calculation, error) {
	return addrmath.Calculate(text)
}

func (s *ipamService) Upsert(ctx context.Context, input AddressInput) (Address, error) {
	a, err := s.toAddress(input)
	if err != nil {
		return Address{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.upsertLocked(ctx, a)
}

func (s *ipamService) upsertLocked(ctx context.Context, a Address) (Address, error) {
	if s.store.Addresses != nil {
		if err := s.store.Addresses.Upsert(ctx, a); err != nil {
			return Address{}, err
		}
	}
	if err := s.registry.Upsert(a); err != nil {
		return Address{}, err
	}
	return a, nil
}

func (s *ipamService) CreateAddress(ctx context.Context, subnetID int64, input AddressInput) (Address, error) {
	subnet, err := s.catalog.Get(subnetID)
	if err != nil {
		return Address{}, err
	}

	ip, err := addrmath.ParseAddr(strings.TrimSpace(input.IP))
	if err != nil {
		return Address{}, err
	}
	if err := validateIPInSubnet(subnet.Network, ip); err != nil {
		return Address{}, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}

	input.Subnet = subnet.Network.String()
	a, err := s.toAddress(input)
	if err != nil {
		return Address{}, err
	}

	// Create never replaces; PUT on the address is the upsert path.
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.registry.Find(a.Value); exists {
		return Address{}, fmt.Errorf("%w: %s already recorded", ErrConflict, a.IP())
	}
	return s.upsertLocked(ctx, a)
}

func (s *ipamService) Claim(ctx context.Context, input AddressInput) (Address, error) {
	a, err := s.toAddress(input)
	if err != nil {
		return Address{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store.Addresses != nil {
		_, exists := s.registry.Find(a.Value)
		if exists {
			err = s.store.Addresses.AddClaim(ctx, a)
		} else {
			err = s.store.Addresses.Upsert(ctx, a)
		}
		if err != nil {
			return Address{}, err
		}
	}
	if err := s.registry.Claim(a); err != nil {
		return Address{}, err
	}
	return a, nil
}

func (s *ipamService) Remove(ctx context.Context, ip string, strict bool) error {
	value, err := addrmath.ParseAddr(strings.TrimSpace(ip))
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.registry.Find(value); ok && s.store.Addresses != nil {
		if _, err := s.store.Addresses.Delete(ctx, value); err != nil {
			return err
		}
	}
	if strict {
		return s.registry.RemoveStrict(value)
	}
	s.registry.Remove(value)
	return nil
}

func (s *ipamService) Find(_ context.Context, value uint32) (Address, bool) {
	return s.registry.Find(value)
}

func (s *ipamService) Lookup(_ context.Context, ip string) (Address, error) {
	value, err := addrmath.ParseAddr(strings.TrimSpace(ip))
	if err != nil {
		return Address{}, err
	}
	return s.registry.Get(value)
}

func (s *ipamService) ListBySubnet(_ context.Context, subnetID int64) ([]Address, error) {
	subnet, err := s.catalog.Get(subnetID)
	if err != nil {
		return nil, err
	}
	return s.registry.ListBySubnet(subnet.Network), nil
}

func (s *ipamService) CountByStatus(_ context.Context, subnetID int64) (map[Status]int, error) {
	subnet, err := s.catalog.Get(subnetID)
	if err != nil {
		return nil, err
	}
	return s.registry.CountByStatus(subnet.Network), nil
}

// ListByCIDR lists the records owned by cidr whether or not it is a defined
// subnet.
func (s *ipamService) ListByCIDR(_ context.Context, cidr string) ([]Address, error) {
	n, err := parseQueryCIDR(cidr)
	if err != nil {
		return nil, err
	}
	return s.registry.ListBySubnet(n), nil
}

func parseQueryCIDR(cidr string) (addrmath.Network, error) {
	n, err := addrmath.ParseCIDR(strings.TrimSpace(cidr))
	if err != nil {
		return addrmath.Network{}, fmt.Errorf("%w: cidr %q: %w", ErrInvalidInput, cidr, err)
	}
	return n, nil
}

// Import validates every row before writing any. The first row for a value
// becomes the record and later rows for the same value become claims.
func (s *ipamService) Import(ctx context.Context, rows []Address) (LoadReport, error) {
	for i, a := range rows {
		if err := validateAddress(a); err != nil {
			return LoadReport{}, fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store.Addresses != nil {
		records, claims := splitBatch(rows)
		if err := s.store.Addresses.SaveBatch(ctx, records, claims); err != nil {
			return LoadReport{}, err
		}
	}
	return s.registry.Load(rows)
}

func splitBatch(rows []Address) (records []Address, claims []Address) {
	seen := make(map[uint32]struct{}, len(rows))
	for _, a := range rows {
		if _, dup := seen[a.Value]; dup {
			claims = append(claims, a)
			continue
		}
		seen[a.Value] = struct{}{}
		records = append(records, a)
	}
	return records, claims
}

// Export returns every canonical record ordered by integer address.
func (s *ipamService) Export(_ context.Context) ([]Address, error) {
	return s.registry.Snapshot().Addresses, nil
}

func (s *ipamService) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store.Addresses != nil {
		if err := s.store.Addresses.DeleteAll(ctx); err != nil {
			return err
		}
	}
	s.registry.Reset()
	return nil
}

func (s *ipamService) ListSubnets(_ context.Context) ([]Subnet, error) {
	return s.catalog.List(), nil
}

func (s *ipamService) CreateSubnet(ctx context.Context, input CreateSubnetInput) (Subnet, error) {
	n, err := addrmath.ParseCIDR(strings.TrimSpace(input.CIDR))
	if err != nil {
		return Subnet{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.catalog.CheckOverlap(n); err != nil {
		return Subnet{}, err
	}

	now := s.now()
	subnet := Subnet{
		Network:     n,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if s.store.Subnets != nil {
		if subnet, err = s.store.Subnets.Create(ctx, subnet); err != nil {
			return Subnet{}, err
		}
	}
	return s.catalog.Define(subnet)
}

func (s *ipamService) GetSubnet(_ context.Context, id int64) (Subnet, error) {
	return s.catalog.Get(id)
}

// DeleteSubnet drops the definition only. Addresses in the block stay in
// the registry until removed explicitly.
func (s *ipamService) DeleteSubnet(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.catalog.Get(id); err != nil {
		return err
	}
	if s.store.Subnets != nil {
		deleted, err := s.store.Subnets.Delete(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return fmt.Errorf("%w: id %d", ErrSubnetNotFound, id)
		}
	}
	s.catalog.Undefine(id)
	return nil
}

func (s *ipamService) Summarize(_ context.Context, id int64) (SubnetSummary, error) {
	subnet, err := s.catalog.Get(id)
	if err != nil {
		return SubnetSummary{}, err
	}
	return s.catalog.Summarize(subnet.Network), nil
}

func (s *ipamService) SummarizeCIDR(_ context.Context, cidr string) (SubnetSummary, error) {
	n, err := parseQueryCIDR(cidr)
	if err != nil {
		return SubnetSummary{}, err
	}
	return s.catalog.Summarize(n), nil
}

func (s *ipamService) SummarizeAll(_ context.Context) ([]SubnetSummary, error) {
	return s.catalog.SummarizeAll(), nil
}

func (s *ipamService) Stats(_ context.Context) (Totals, error) {
	t := s.catalog.Totals()
	t.Conflicts = len(s.detector.Detect())
	return t, nil
}

func (s *ipamService) DetectConflicts(_ context.Context) ([]ConflictRecord, error) {
	return s.detector.Detect(), nil
}

// ResolveConflict keeps the canonical record for ip and drops the extra
// owner claims, returning how many were dropped.
func (s *ipamService) ResolveConflict(ctx context.Context, ip string) (int, error) {
	value, err := addrmath.ParseAddr(strings.TrimSpace(ip))
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.registry.Find(value); !ok {
		return 0, fmt.Errorf("%w: %s", ErrAddressNotFound, ip)
	}
	if s.store.Addresses != nil {
		if _, err := s.store.Addresses.DeleteClaims(ctx, value); err != nil {
			return 0, err
		}
	}
	return s.registry.ClearClaims(value), nil
}

func (s *ipamService) ListScopes(_ context.Context) ([]ScopeUtilization, error) {
	return s.scopes.List(), nil
}

func (s *ipamService) CreateScope(ctx context.Context, input CreateScopeInput) (ScopeUtilization, error) {
	scope, err := s.toScope(input)
	if err != nil {
		return ScopeUtilization{}, err
	}
	if scope, err = ValidateScope(scope); err != nil {
		return ScopeUtilization{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.store.Scopes != nil {
		if scope, err = s.store.Scopes.Create(ctx, scope); err != nil {
			return ScopeUtilization{}, err
		}
	}
	if scope, err = s.scopes.Add(scope); err != nil {
		return ScopeUtilization{}, err
	}
	return Utilization(scope), nil
}

func (s *ipamService) GetScope(_ context.Context, id int64) (ScopeUtilization, error) {
	return s.scopes.Get(id)
}

func (s *ipamService) SetScopeAllocation(ctx context.Context, id int64, allocated int) (ScopeUtilization, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, err := s.scopes.Get(id)
	if err != nil {
		return ScopeUtilization{}, err
	}
	if allocated < 0 || allocated > current.TotalCount {
		return ScopeUtilization{}, fmt.Errorf("%w: allocated count %d not in [0,%d]", ErrInvalidInput, allocated, current.TotalCount)
	}
	if s.store.Scopes != nil {
		if _, err := s.store.Scopes.UpdateAllocated(ctx, id, allocated); err != nil {
			return ScopeUtilization{}, err
		}
	}
	return s.scopes.SetAllocated(id, allocated)
}

func (s *ipamService) DeleteScope(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.scopes.Get(id); err != nil {
		return err
	}
	if s.store.Scopes != nil {
		if _, err := s.store.Scopes.Delete(ctx, id); err != nil {
			return err
		}
	}
	s.scopes.Remove(id)
	return nil
}

func (s *ipamService) toAddress(input AddressInput) (Address, error) {
	value, err := addrmath.ParseAddr(strings.TrimSpace(input.IP))
	if err != nil {
		return Address{}, err
	}

	var subnet addrmath.Network
	if cidr := strings.TrimSpace(input.Subnet); cidr != "" {
		if subnet, err = addrmath.ParseCIDR(cidr); err != nil {
			return Address{}, err
		}
	} else {
		def, ok := s.catalog.Containing(value)
		if !ok {
			return Address{}, fmt.Errorf("%w: no subnet defined for %s", ErrInvalidInput, input.IP)
		}
		subnet = def.Network
	}

	if input.Status == "" {
		return Address{}, fmt.Errorf("%w: status is required", ErrInvalidStatus)
	}
	status, err := ParseStatus(input.Status)
	if err != nil {
		return Address{}, err
	}

	mac := strings.TrimSpace(input.MACAddress)
	if mac != "" {
		hw, err := net.ParseMAC(mac)
		if err != nil {
			return Address{}, fmt.Errorf("%w: mac address %q", ErrInvalidInput, input.MACAddress)
		}
		mac = hw.String()
	}

	a := Address{
		Value:       value,
		Subnet:      subnet,
		Status:      status,
		AssignedTo:  input.AssignedTo,
		MACAddress:  mac,
		Description: input.Description,
		LastSeen:    input.LastSeen,
	}
	if err := validateAddress(a); err != nil {
		return Address{}, err
	}
	return a, nil
}

func (s *ipamService) toScope(input CreateScopeInput) (Scope, error) {
	start, err := addrmath.ParseAddr(strings.TrimSpace(input.RangeStart))
	if err != nil {
		return Scope{}, fmt.Errorf("range start: %w", err)
	}
	end, err := addrmath.ParseAddr(strings.TrimSpace(input.RangeEnd))
	if err != nil {
		return Scope{}, fmt.Errorf("range end: %w", err)
	}

	var subnet addrmath.Network
	if cidr := strings.TrimSpace(input.Subnet); cidr != "" {
		if subnet, err = addrmath.ParseCIDR(cidr); err != nil {
			return Scope{}, err
		}
	} else {
		def, ok := s.catalog.Containing(start)
		if !ok {
			return Scope{}, fmt.Errorf("%w: no subnet defined for %s", ErrInvalidInput, input.RangeStart)
		}
		subnet = def.Network
	}

	now := s.now()
	return Scope{
		Name:           strings.TrimSpace(input.Name),
		Subnet:         subnet,
		RangeStart:     start,
		RangeEnd:       end,
		Gateway:        strings.TrimSpace(input.Gateway),
		DNSServers:     input.DNSServers,
		LeaseTime:      input.LeaseTime,
		Status:         ScopeStatus(input.Status),
		AllocatedCount: input.AllocatedCount,
		TotalCount:     input.TotalCount,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// validateIPInSubnet rejects the network and broadcast addresses of blocks
// that have them.
func validateIPInSubnet(n addrmath.Network, ip uint32) error {
	if !n.Contains(ip) {
		return fmt.Errorf("ip not in subnet")
	}

	// /31 point-to-point links treat both addresses as usable.
	if n.Bits < 31 {
		r := n.IPRange()
		addr := addrmath.ToAddr(ip)
		if r.From() == addr || r.To() == addr {
			return fmt.Errorf("network or broadcast ip")
		}
	}
	return nil
}
