package domain

import (
	"fmt"
	"math"
	"time"

	"github.com/Flarenzy/simple-ipam/internal/addrmath"
)

type Status string

const (
	StatusAvailable  Status = "available"
	StatusAllocated  Status = "allocated"
	StatusReserved   Status = "reserved"
	StatusQuarantine Status = "quarantine"
)

var Statuses = []Status{StatusAvailable, StatusAllocated, StatusReserved, StatusQuarantine}

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusAllocated, StatusReserved, StatusQuarantine:
		return true
	default:
		return false
	}
}

// ParseStatus accepts only the exact lower-case status names.
func ParseStatus(text string) (Status, error) {
	s := Status(text)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, text)
	}
	return s, nil
}

// Address is one allocation record. Value is the registry key.
type Address struct {
	Value       uint32
	Subnet      addrmath.Network
	Status      Status
	AssignedTo  string
	MACAddress  string
	Description string
	LastSeen    time.Time
}

func (a Address) IP() string {
	return addrmath.ToDottedQuad(a.Value)
}

// Subnet is a declared CIDR block.
type Subnet struct {
	ID          int64
	Network     addrmath.Network
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type SubnetSummary struct {
	Network            addrmath.Network
	Description        string
	Defined            bool
	Total              int
	Allocated          int
	Available          int
	Reserved           int
	Quarantine         int
	UtilizationPercent int
	Capacity           uint64
}

// Totals are registry-wide status counts.
type Totals struct {
	Total      int
	Allocated  int
	Available  int
	Reserved   int
	Quarantine int
	Conflicts  int
}

type Severity string

const (
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

type ConflictRecord struct {
	Address         uint32
	Subnet          addrmath.Network
	OccurrenceCount int
	Owners          []string
	Severity        Severity
}

type ScopeStatus string

const (
	ScopeActive   ScopeStatus = "active"
	ScopeInactive ScopeStatus = "inactive"
)

// Scope is a DHCP-style lease pool. AllocatedCount comes from the lease
// server, not from the address registry.
type Scope struct {
	ID             int64
	Name           string
	Subnet         addrmath.Network
	RangeStart     uint32
	RangeEnd       uint32
	Gateway        string
	DNSServers     []string
	LeaseTime      string
	Status         ScopeStatus
	AllocatedCount int
	TotalCount     int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type UtilizationLevel string

const (
	LevelNormal   UtilizationLevel = "normal"
	LevelWarning  UtilizationLevel = "warning"
	LevelCritical UtilizationLevel = "critical"
)

type ScopeUtilization struct {
	Scope
	UtilizationPercent int
	Level              UtilizationLevel
}

type LoadReport struct {
	Inserted int
	Replaced int
	Claims   int
}

// Percent is round(part/whole*100), and 0 when whole is 0.
func Percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}

// LevelFor maps a utilization percentage onto the dashboard thresholds.
func LevelFor(percent int) UtilizationLevel {
	switch {
	case percent > 90:
		return LevelCritical
	case percent > 75:
		return LevelWarning
	default:
		return LevelNormal
	}
}
