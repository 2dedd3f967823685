package domain

import "time"

type CreateSubnetInput struct {
	CIDR        string
	Description string
}

// AddressInput is an address row as received from a caller or an import.
// Subnet may be left empty when a defined subnet contains IP.
type AddressInput struct {
	IP          string
	Subnet      string
	Status      string
	AssignedTo  string
	MACAddress  string
	Description string
	LastSeen    time.Time
}

// CreateScopeInput describes a lease pool. Subnet may be left empty when a
// defined subnet contains RangeStart. A zero TotalCount means the size of
// the range.
type CreateScopeInput struct {
	Name           string
	Subnet         string
	RangeStart     string
	RangeEnd       string
	Gateway        string
	DNSServers     []string
	LeaseTime      string
	Status         string
	AllocatedCount int
	TotalCount     int
}
