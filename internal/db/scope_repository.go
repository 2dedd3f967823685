package db

import (
	"context"
	"fmt"

	"github.com/Flarenzy/simple-ipam/internal/addrmath"
	sqlc "github.com/Flarenzy/simple-ipam/internal/db/sqlc"
	"github.com/Flarenzy/simple-ipam/internal/domain"
)

type ScopeRepository struct {
	queries *sqlc.Queries
}

func NewScopeRepository(queries *sqlc.Queries) *ScopeRepository {
	return &ScopeRepository{queries: queries}
}

func (r *ScopeRepository) List(ctx context.Context) ([]domain.Scope, error) {
	rows, err := r.queries.ListDHCPScopes(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Scope, 0, len(rows))
	for _, row := range rows {
		s, err := toDomainScope(row)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *ScopeRepository) Create(ctx context.Context, s domain.Scope) (domain.Scope, error) {
	dns := s.DNSServers
	if dns == nil {
		dns = []string{}
	}
	row, err := r.queries.CreateDHCPScope(ctx, sqlc.CreateDHCPScopeParams{
		Name:           s.Name,
		Subnet:         s.Subnet.Prefix(),
		RangeStart:     addrmath.ToAddr(s.RangeStart),
		RangeEnd:       addrmath.ToAddr(s.RangeEnd),
		Gateway:        s.Gateway,
		DnsServers:     dns,
		LeaseTime:      s.LeaseTime,
		Status:         string(s.Status),
		AllocatedCount: int32(s.AllocatedCount),
		TotalCount:     int32(s.TotalCount),
	})
	if err != nil {
		return domain.Scope{}, mapError(err)
	}
	return toDomainScope(row)
}

func (r *ScopeRepository) UpdateAllocated(ctx context.Context, id int64, allocated int) (bool, error) {
	updated, err := r.queries.UpdateDHCPScopeAllocated(ctx, sqlc.UpdateDHCPScopeAllocatedParams{
		ID:             id,
		AllocatedCount: int32(allocated),
	})
	if err != nil {
		return false, mapError(err)
	}
	return updated > 0, nil
}

func (r *ScopeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := r.queries.DeleteDHCPScope(ctx, id)
	if err != nil {
		return false, err
	}
	return deleted > 0, nil
}

func toDomainScope(row sqlc.DhcpScope) (domain.Scope, error) {
	n, err := addrmath.FromPrefix(row.Subnet)
	if err != nil {
		return domain.Scope{}, fmt.Errorf("scope %d: %w", row.ID, err)
	}
	return domain.Scope{
		ID:             row.ID,
		Name:           row.Name,
		Subnet:         n,
		RangeStart:     addrmath.FromAddr(row.RangeStart),
		RangeEnd:       addrmath.FromAddr(row.RangeEnd),
		Gateway:        row.Gateway,
		DNSServers:     row.DnsServers,
		LeaseTime:      row.LeaseTime,
		Status:         domain.ScopeStatus(row.Status),
		AllocatedCount: int(row.AllocatedCount),
		TotalCount:     int(row.TotalCount),
		CreatedAt:      row.CreatedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
	}, nil
}
