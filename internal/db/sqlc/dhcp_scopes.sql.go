package sqlc

import (
	"context"
	"net/netip"
)

const listDHCPScopes = `-- name: ListDHCPScopes :many
SELECT id, name, subnet, range_start, range_end, gateway, dns_servers, lease_time, status,
       allocated_count, total_count, created_at, updated_at
FROM dhcp_scopes
ORDER BY id
`

func (q *Queries) ListDHCPScopes(ctx context.Context) ([]DhcpScope, error) {
	rows, err := q.db.Query(ctx, listDHCPScopes)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []DhcpScope
	for rows.Next() {
		var i DhcpScope
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Subnet,
			&i.RangeStart,
			&i.RangeEnd,
			&i.Gateway,
			&i.DnsServers,
			&i.LeaseTime,
			&i.Status,
			&i.AllocatedCount,
			&i.TotalCount,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createDHCPScope = `-- name: CreateDHCPScope :one
INSERT INTO dhcp_scopes (name, subnet, range_start, range_end, gateway, dns_servers, lease_time, status,
                         allocated_count, total_count)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id, name, subnet, range_start, range_end, gateway, dns_servers, lease_time, status,
          allocated_count, total_count, created_at, updated_at
`

type CreateDHCPScopeParams struct {
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
}

func (q *Queries) CreateDHCPScope(ctx context.Context, arg CreateDHCPScopeParams) (DhcpScope, error) {
	row := q.db.QueryRow(ctx, createDHCPScope,
		arg.Name,
		arg.Subnet,
		arg.RangeStart,
		arg.RangeEnd,
		arg.Gateway,
		arg.DnsServers,
		arg.LeaseTime,
		arg.Status,
		arg.AllocatedCount,
		arg.TotalCount,
	)
	var i DhcpScope
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Subnet,
		&i.RangeStart,
		&i.RangeEnd,
		&i.Gateway,
		&i.DnsServers,
		&i.LeaseTime,
		&i.Status,
		&i.AllocatedCount,
		&i.TotalCount,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateDHCPScopeAllocated = `-- name: UpdateDHCPScopeAllocated :execrows
UPDATE dhcp_scopes
SET allocated_count = $2,
    updated_at      = now()
WHERE id = $1
`

type UpdateDHCPScopeAllocatedParams struct {
	ID             int64
	AllocatedCount int32
}

func (q *Queries) UpdateDHCPScopeAllocated(ctx context.Context, arg UpdateDHCPScopeAllocatedParams) (int64, error) {
	result, err := q.db.Exec(ctx, updateDHCPScopeAllocated, arg.ID, arg.AllocatedCount)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteDHCPScope = `-- name: DeleteDHCPScope :execrows
DELETE FROM dhcp_scopes
WHERE id = $1
`

func (q *Queries) DeleteDHCPScope(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.Exec(ctx, deleteDHCPScope, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
