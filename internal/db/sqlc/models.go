package sqlc

import (
	"net/netip"

	"github.com/jackc/pgx/v5/pgtype"
)

type DhcpScope struct {
	ID             int64
	Name           string
	Subnet         netip.Prefix
	RangeStart     netip.Addr
	RangeEnd       netip.Addr
	Gateway        string
	DnsServers     []string
	LeaseTime      string
	Status         string
	AllocatedCount int32
	TotalCount     int32
	CreatedAt      pgtype.Timestamptz
	UpdatedAt      pgtype.Timestamptz
}

type IpAddress struct {
	Ip          netip.Addr
	Subnet      netip.Prefix
	Status      string
	AssignedTo  string
	MacAddress  string
	Description string
	LastSeen    pgtype.Timestamptz
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

type IpAddressClaim struct {
	ID          int64
	Ip          netip.Addr
	Subnet      netip.Prefix
	Status      string
	AssignedTo  string
	MacAddress  string
	Description string
	LastSeen    pgtype.Timestamptz
	CreatedAt   pgtype.Timestamptz
}

type Subnet struct {
	ID          int64
	Cidr        netip.Prefix
	Description string
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}
