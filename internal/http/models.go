package http

import (
	"time"

	"github.com/Flarenzy/simple-ipam/internal/addrmath"
	"github.com/Flarenzy/simple-ipam/internal/domain"
)

// SubnetResponse is a simplified view returned to clients and used in Swagger.
type SubnetResponse struct {
	ID          int64     `json:"id" example:"1"`
	CIDR        string    `json:"cidr" example:"10.0.0.0/24"`
	Description string    `json:"description" example:"Office network"`
	CreatedAt   time.Time `json:"created_at" example:"2024-05-10T15:04:05Z"`
	UpdatedAt   time.Time `json:"updated_at" example:"2024-05-10T15:04:05Z"`
}

// CreateSubnetRequest is the payload accepted when creating a subnet.
type CreateSubnetRequest struct {
	CIDR        string `json:"cidr" example:"10.0.0.0/24" validate:"required"`
	Description string `json:"description" example:"Office network"`
}

// ErrorResponse is a simple envelope for error messages.
type ErrorResponse struct {
	Error string `json:"error" example:"subnet not found"`
	Kind  string `json:"kind,omitempty" example:"NotFound"`
}

// IPResponse is one address record.
type IPResponse struct {
	IP          string     `json:"ip" example:"10.0.0.10"`
	Subnet      string     `json:"subnet" example:"10.0.0.0/24"`
	Status      string     `json:"status" example:"allocated"`
	AssignedTo  string     `json:"assigned_to" example:"printer-1"`
	MACAddress  string     `json:"mac_address" example:"00:1a:2b:3c:4d:5e"`
	Description string     `json:"description" example:"2nd floor printer"`
	LastSeen    *time.Time `json:"last_seen,omitempty" example:"2024-05-10T15:04:05Z"`
}

// CreateIPRequest is the payload accepted when creating an ip under a subnet.
type CreateIPRequest struct {
	IP          string     `json:"ip" example:"10.0.0.10" validate:"required"`
	Status      string     `json:"status" example:"allocated" validate:"required"`
	AssignedTo  string     `json:"assigned_to" example:"printer-1"`
	MACAddress  string     `json:"mac_address" example:"00:1a:2b:3c:4d:5e"`
	Description string     `json:"description" example:"2nd floor printer"`
	LastSeen    *time.Time `json:"last_seen,omitempty" example:"2024-05-10T15:04:05Z"`
}

// AddressRequest is the payload for upserting or claiming the ip in the
// path. Subnet may be omitted when a defined subnet contains the ip.
type AddressRequest struct {
	Subnet      string     `json:"subnet" example:"10.0.0.0/24"`
	Status      string     `json:"status" example:"allocated" validate:"required"`
	AssignedTo  string     `json:"assigned_to" example:"printer-1"`
	MACAddress  string     `json:"mac_address" example:"00:1a:2b:3c:4d:5e"`
	Description string     `json:"description" example:"2nd floor printer"`
	LastSeen    *time.Time `json:"last_seen,omitempty" example:"2024-05-10T15:04:05Z"`
}

type SummaryResponse struct {
	Subnet             string `json:"subnet" example:"10.0.0.0/24"`
	Description        string `json:"description" example:"Office network"`
	Defined            bool   `json:"defined" example:"true"`
	Total              int    `json:"total" example:"12"`
	Allocated          int    `json:"allocated" example:"9"`
	Available          int    `json:"available" example:"1"`
	Reserved           int    `json:"reserved" example:"2"`
	Quarantine         int    `json:"quarantine" example:"0"`
	UtilizationPercent int    `json:"utilization_percent" example:"75"`
	Capacity           uint64 `json:"capacity" example:"254"`
}

type StatsResponse struct {
	Total      int `json:"total" example:"120"`
	Allocated  int `json:"allocated" example:"80"`
	Available  int `json:"available" example:"30"`
	Reserved   int `json:"reserved" example:"8"`
	Quarantine int `json:"quarantine" example:"2"`
	Conflicts  int `json:"conflicts" example:"1"`
}

type ConflictResponse struct {
	IP              string   `json:"ip" example:"10.0.0.10"`
	Subnet          string   `json:"subnet" example:"10.0.0.0/24"`
	OccurrenceCount int      `json:"occurrence_count" example:"2"`
	Owners          []string `json:"owners" example:"host-a,host-b"`
	Severity        string   `json:"severity" example:"warning"`
}

type ResolveConflictResponse struct {
	IP            string `json:"ip" example:"10.0.0.10"`
	ClaimsDropped int    `json:"claims_dropped" example:"1"`
}

type ScopeResponse struct {
	ID                 int64     `json:"id" example:"1"`
	Name               string    `json:"name" example:"guest-wifi"`
	Subnet             string    `json:"subnet" example:"10.0.0.0/24"`
	RangeStart         string    `json:"range_start" example:"10.0.0.100"`
	RangeEnd           string    `json:"range_end" example:"10.0.0.199"`
	Gateway            string    `json:"gateway" example:"10.0.0.1"`
	DNSServers         []string  `json:"dns_servers" example:"10.0.0.2,10.0.0.3"`
	LeaseTime          string    `json:"lease_time" example:"24h"`
	Status             string    `json:"status" example:"active"`
	AllocatedCount     int       `json:"allocated_count" example:"42"`
	TotalCount         int       `json:"total_count" example:"100"`
	UtilizationPercent int       `json:"utilization_percent" example:"42"`
	Level              string    `json:"level" example:"normal"`
	CreatedAt          time.Time `json:"created_at" example:"2024-05-10T15:04:05Z"`
	UpdatedAt          time.Time `json:"updated_at" example:"2024-05-10T15:04:05Z"`
}

type CreateScopeRequest struct {
	Name           string   `json:"name" example:"guest-wifi" validate:"required"`
	Subnet         string   `json:"subnet" example:"10.0.0.0/24"`
	RangeStart     string   `json:"range_start" example:"10.0.0.100" validate:"required"`
	RangeEnd       string   `json:"range_end" example:"10.0.0.199" validate:"required"`
	Gateway        string   `json:"gateway" example:"10.0.0.1"`
	DNSServers     []string `json:"dns_servers" example:"10.0.0.2,10.0.0.3"`
	LeaseTime      string   `json:"lease_time" example:"24h"`
	Status         string   `json:"status" example:"active"`
	AllocatedCount int      `json:"allocated_count" example:"0"`
	TotalCount     int      `json:"total_count" example:"100"`
}

type ScopeAllocationRequest struct {
	AllocatedCount int `json:"allocated_count" example:"42"`
}

type CalculationResponse struct {
	Input       string `json:"input" example:"192.168.1.10/24"`
	Address     string `json:"address" example:"192.168.1.10"`
	Network     string `json:"network" example:"192.168.1.0/24"`
	Netmask     string `json:"netmask" example:"255.255.255.0"`
	Wildcard    string `json:"wildcard" example:"0.0.0.255"`
	BinaryMask  string `json:"binary_mask" example:"11111111.11111111.11111111.00000000"`
	Broadcast   string `json:"broadcast" example:"192.168.1.255"`
	FirstUsable string `json:"first_usable" example:"192.168.1.1"`
	LastUsable  string `json:"last_usable" example:"192.168.1.254"`
	TotalHosts  uint64 `json:"total_hosts" example:"256"`
	UsableHosts uint64 `json:"usable_hosts" example:"254"`
	Class       string `json:"class" example:"C"`
	Type        string `json:"type" example:"Private"`
}

type ImportResponse struct {
	Rows     int `json:"rows" example:"3"`
	Inserted int `json:"inserted" example:"2"`
	Replaced int `json:"replaced" example:"0"`
	Claims   int `json:"claims" example:"1"`
}

func subnetToResponse(s domain.Subnet) SubnetResponse {
	return SubnetResponse{
		ID:          s.ID,
		CIDR:        s.Network.String(),
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func subnetsToResponse(subnets []domain.Subnet) []SubnetResponse {
	out := make([]SubnetResponse, 0, len(subnets))
	for _, s := range subnets {
		out = append(out, subnetToResponse(s))
	}
	return out
}

func ipToResponse(a domain.Address) IPResponse {
	resp := IPResponse{
		IP:          a.IP(),
		Subnet:      a.Subnet.String(),
		Status:      string(a.Status),
		AssignedTo:  a.AssignedTo,
		MACAddress:  a.MACAddress,
		Description: a.Description,
	}
	if !a.LastSeen.IsZero() {
		seen := a.LastSeen
		resp.LastSeen = &seen
	}
	return resp
}

func ipsToResponse(addrs []domain.Address) []IPResponse {
	out := make([]IPResponse, 0, len(addrs))
	for _, a := range addrs {
		out = append(out, ipToResponse(a))
	}
	return out
}

func summaryToResponse(s domain.SubnetSummary) SummaryResponse {
	return SummaryResponse{
		Subnet:             s.Network.String(),
		Description:        s.Description,
		Defined:            s.Defined,
		Total:              s.Total,
		Allocated:          s.Allocated,
		Available:          s.Available,
		Reserved:           s.Reserved,
		Quarantine:         s.Quarantine,
		UtilizationPercent: s.UtilizationPercent,
		Capacity:           s.Capacity,
	}
}

func conflictToResponse(c domain.ConflictRecord) ConflictResponse {
	return ConflictResponse{
		IP:              addrmath.ToDottedQuad(c.Address),
		Subnet:          c.Subnet.String(),
		OccurrenceCount: c.OccurrenceCount,
		Owners:          c.Owners,
		Severity:        string(c.Severity),
	}
}

func scopeToResponse(s domain.ScopeUtilization) ScopeResponse {
	dns := s.DNSServers
	if dns == nil {
		dns = []string{}
	}
	return ScopeResponse{
		ID:                 s.ID,
		Name:               s.Name,
		Subnet:             s.Subnet.String(),
		RangeStart:         addrmath.ToDottedQuad(s.RangeStart),
		RangeEnd:           addrmath.ToDottedQuad(s.RangeEnd),
		Gateway:            s.Gateway,
		DNSServers:         dns,
		LeaseTime:          s.LeaseTime,
		Status:             string(s.Status),
		AllocatedCount:     s.AllocatedCount,
		TotalCount:         s.TotalCount,
		UtilizationPercent: s.UtilizationPercent,
		Level:              string(s.Level),
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

func calculationToResponse(c addrmath.Calculation) CalculationResponse {
	return CalculationResponse{
		Input:       c.Input,
		Address:     addrmath.ToDottedQuad(c.Address),
		Network:     c.Network.String(),
		Netmask:     addrmath.ToDottedQuad(c.Mask),
		Wildcard:    addrmath.ToDottedQuad(c.Wildcard),
		BinaryMask:  addrmath.BinaryMask(c.Mask),
		Broadcast:   addrmath.ToDottedQuad(c.Broadcast),
		FirstUsable: addrmath.ToDottedQuad(c.FirstUsable),
		LastUsable:  addrmath.ToDottedQuad(c.LastUsable),
		TotalHosts:  c.TotalHosts,
		UsableHosts: c.UsableHosts,
		Class:       c.Class.Label(),
		Type:        c.Type.Label(),
	}
}

func (r CreateSubnetRequest) toInput() domain.CreateSubnetInput {
	return domain.CreateSubnetInput{
		CIDR:        r.CIDR,
		Description: r.Description,
	}
}

func (r CreateIPRequest) toInput() domain.AddressInput {
	return domain.AddressInput{
		IP:          r.IP,
		Status:      r.Status,
		AssignedTo:  r.AssignedTo,
		MACAddress:  r.MACAddress,
		Description: r.Description,
		LastSeen:    derefTime(r.LastSeen),
	}
}

func (r AddressRequest) toInput(ip string) domain.AddressInput {
	return domain.AddressInput{
		IP:          ip,
		Subnet:      r.Subnet,
		Status:      r.Status,
		AssignedTo:  r.AssignedTo,
		MACAddress:  r.MACAddress,
		Description: r.Description,
		LastSeen:    derefTime(r.LastSeen),
	}
}

func (r CreateScopeRequest) toInput() domain.CreateScopeInput {
	return domain.CreateScopeInput{
		Name:           r.Name,
		Subnet:         r.Subnet,
		RangeStart:     r.RangeStart,
		RangeEnd:       r.RangeEnd,
		Gateway:        r.Gateway,
		DNSServers:     r.DNSServers,
		LeaseTime:      r.LeaseTime,
		Status:         r.Status,
		AllocatedCount: r.AllocatedCount,
		TotalCount:     r.TotalCount,
	}
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return t.UTC()
}
