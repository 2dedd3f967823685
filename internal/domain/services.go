package domain

import (
	"context"

	"github.com/Flarenzy/simple-ipam/internal/addrmath"
)

type IPAMService interface {
	ParseCIDR(ctx context.Context, text string) (addrmath.Network, error)
	Calculate(ctx context.Context, text string) (addrmath.Calculation, error)

	Upsert(ctx context.Context, input AddressInput) (Address, error)
	CreateAddress(ctx context.Context, subnetID int64, input AddressInput) (Address, error)
	Claim(ctx context.Context, input AddressInput) (Address, error)
	Remove(ctx context.Context, ip string, strict bool) error
	Find(ctx context.Context, value uint32) (Address, bool)
	Lookup(ctx context.Context, ip string) (Address, error)
	ListBySubnet(ctx context.Context, subnetID int64) ([]Address, error)
	CountByStatus(ctx context.Context, subnetID int64) (map[Status]int, error)
	ListByCIDR(ctx context.Context, cidr string) ([]Address, error)
	Import(ctx context.Context, rows []Address) (LoadReport, error)
	Export(ctx context.Context) ([]Address, error)
	Reset(ctx context.Context) error

	ListSubnets(ctx context.Context) ([]Subnet, error)
	CreateSubnet(ctx context.Context, input CreateSubnetInput) (Subnet, error)
	GetSubnet(ctx context.Context, id int64) (Subnet, error)
	DeleteSubnet(ctx context.Context, id int64) error
	Summarize(ctx context.Context, id int64) (SubnetSummary, error)
	SummarizeAll(ctx context.Context) ([]SubnetSummary, error)
	SummarizeCIDR(ctx context.Context, cidr string) (SubnetSummary, error)
	Stats(ctx context.Context) (Totals, error)

	DetectConflicts(ctx context.Context) ([]ConflictRecord, error)
	ResolveConflict(ctx context.Context, ip string) (int, error)

	ListScopes(ctx context.Context) ([]ScopeUtilization, error)
	CreateScope(ctx context.Context, input CreateScopeInput) (ScopeUtilization, error)
	GetScope(ctx context.Context, id int64) (ScopeUtilization, error)
	SetScopeAllocation(ctx context.Context, id int64, allocated int) (ScopeUtilization, error)
	DeleteScope(ctx context.Context, id int64) error
}
