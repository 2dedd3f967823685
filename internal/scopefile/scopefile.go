// Package scopefile loads the DHCP scope seed file.
package scopefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Flarenzy/simple-ipam/internal/domain"
)

// FileYAML is the top-level seed document.
type FileYAML struct {
	Version string       `yaml:"version"`
	Subnets []SubnetYAML `yaml:"subnets,omitempty"`
	Scopes  []ScopeYAML  `yaml:"scopes"`
}

type SubnetYAML struct {
	CIDR        string `yaml:"cidr"`
	Description string `yaml:"description,omitempty"`
}

// ScopeYAML is one lease pool. Subnet may be omitted when a seeded or
// existing subnet contains range_start.
type ScopeYAML struct {
	Name       string   `yaml:"name"`
	Subnet     string   `yaml:"subnet,omitempty"`
	RangeStart string   `yaml:"range_start"`
	RangeEnd   string   `yaml:"range_end"`
	Gateway    string   `yaml:"gateway,omitempty"`
	DNSServers []string `yaml:"dns_servers,omitempty"`
	LeaseTime  string   `yaml:"lease_time,omitempty"`
	Status     string   `yaml:"status,omitempty"`
	Allocated  int      `yaml:"allocated,omitempty"`
	Total      int      `yaml:"total,omitempty"`
}

// Seed is the parsed file mapped onto service inputs.
type Seed struct {
	Subnets []domain.CreateSubnetInput
	Scopes  []domain.CreateScopeInput
}

func Load(path string) (Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read scope file: %w", err)
	}
	return Parse(bytes.NewReader(data))
}

// Parse rejects unknown keys so typos surface at startup.
func Parse(r io.Reader) (Seed, error) {
	var doc FileYAML
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Seed{}, nil
		}
		return Seed{}, fmt.Errorf("%w: parse scope file: %v", domain.ErrInvalidInput, err)
	}

	if doc.Version != "" && doc.Version != "1" {
		return Seed{}, fmt.Errorf("%w: unsupported scope file version %q", domain.ErrInvalidInput, doc.Version)
	}

	seed := Seed{
		Subnets: make([]domain.CreateSubnetInput, 0, len(doc.Subnets)),
		Scopes:  make([]domain.CreateScopeInput, 0, len(doc.Scopes)),
	}
	for i, s := range doc.Subnets {
		if s.CIDR == "" {
			return Seed{}, fmt.Errorf("%w: subnets[%d]: cidr is required", domain.ErrInvalidInput, i)
		}
		seed.Subnets = append(seed.Subnets, domain.CreateSubnetInput{CIDR: s.CIDR, Description: s.Description})
	}
	for i, s := range doc.Scopes {
		if s.Name == "" {
			return Seed{}, fmt.Errorf("%w: scopes[%d]: name is required", domain.ErrInvalidInput, i)
		}
		seed.Scopes = append(seed.Scopes, domain.CreateScopeInput{
			Name:           s.Name,
			Subnet:         s.Subnet,
			RangeStart:     s.RangeStart,
			RangeEnd:       s.RangeEnd,
			Gateway:        s.Gateway,
			DNSServers:     s.DNSServers,
			LeaseTime:      s.LeaseTime,
			Status:         s.Status,
			AllocatedCount: s.Allocated,
			TotalCount:     s.Total,
		})
	}
	return seed, nil
}
