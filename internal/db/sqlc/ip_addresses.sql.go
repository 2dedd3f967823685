package sqlc

import (
	"context"
	"net/netip"

	"github.com/jackc/pgx/v5/pgtype"
)

const listIPAddresses = `-- name: ListIPAddresses :many
SELECT ip, subnet, status, assigned_to, mac_address, description, last_seen, created_at, updated_at
FROM ip_addresses
ORDER BY ip
`

func (q *Queries) ListIPAddresses(ctx context.Context) ([]IpAddress, error) {
	rows, err := q.db.Query(ctx, listIPAddresses)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []IpAddress
	for rows.Next() {
		var i IpAddress
		if err := rows.Scan(
			&i.Ip,
			&i.Subnet,
			&i.Status,
			&i.AssignedTo,
			&i.MacAddress,
			&i.Description,
			&i.LastSeen,
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

const listIPAddressClaims = `-- name: ListIPAddressClaims :many
SELECT id, ip, subnet, status, assigned_to, mac_address, description, last_seen, created_at
FROM ip_address_claims
ORDER BY ip, id
`

func (q *Queries) ListIPAddressClaims(ctx context.Context) ([]IpAddressClaim, error) {
	rows, err := q.db.Query(ctx, listIPAddressClaims)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []IpAddressClaim
	for rows.Next() {
		var i IpAddressClaim
		if err := rows.Scan(
			&i.ID,
			&i.Ip,
			&i.Subnet,
			&i.Status,
			&i.AssignedTo,
			&i.MacAddress,
			&i.Description,
			&i.LastSeen,
			&i.CreatedAt,
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

const upsertIPAddress = `-- name: UpsertIPAddress :exec
INSERT INTO ip_addresses (ip, subnet, status, assigned_to, mac_address, description, last_seen)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (ip) DO UPDATE
SET subnet      = EXCLUDED.subnet,
    status      = EXCLUDED.status,
    assigned_to = EXCLUDED.assigned_to,
    mac_address = EXCLUDED.mac_address,
    description = EXCLUDED.description,
    last_seen   = EXCLUDED.last_seen,
    updated_at  = now()
`

type UpsertIPAddressParams struct {
	Ip          netip.Addr
	Subnet      netip.Prefix
	Status      string
	AssignedTo  string
	MacAddress  string
	Description string
	LastSeen    pgtype.Timestamptz
}

func (q *Queries) UpsertIPAddress(ctx context.Context, arg UpsertIPAddressParams) error {
	_, err := q.db.Exec(ctx, upsertIPAddress,
		arg.Ip,
		arg.Subnet,
		arg.Status,
		arg.AssignedTo,
		arg.MacAddress,
		arg.Description,
		arg.LastSeen,
	)
	return err
}

const createIPAddressClaim = `-- name: CreateIPAddressClaim :exec
INSERT INTO ip_address_claims (ip, subnet, status, assigned_to, mac_address, description, last_seen)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

type CreateIPAddressClaimParams struct {
	Ip          netip.Addr
	Subnet      netip.Prefix
	Status      string
	AssignedTo  string
	MacAddress  string
	Description string
	LastSeen    pgtype.Timestamptz
}

func (q *Queries) CreateIPAddressClaim(ctx context.Context, arg CreateIPAddressClaimParams) error {
	_, err := q.db.Exec(ctx, createIPAddressClaim,
		arg.Ip,
		arg.Subnet,
		arg.Status,
		arg.AssignedTo,
		arg.MacAddress,
		arg.Description,
		arg.LastSeen,
	)
	return err
}

const deleteIPAddress = `-- name: DeleteIPAddress :execrows
DELETE FROM ip_addresses
WHERE ip = $1
`

func (q *Queries) DeleteIPAddress(ctx context.Context, ip netip.Addr) (int64, error) {
	result, err := q.db.Exec(ctx, deleteIPAddress, ip)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteIPAddressClaims = `-- name: DeleteIPAddressClaims :execrows
DELETE FROM ip_address_claims
WHERE ip = $1
`

func (q *Queries) DeleteIPAddressClaims(ctx context.Context, ip netip.Addr) (int64, error) {
	result, err := q.db.Exec(ctx, deleteIPAddressClaims, ip)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteAllIPAddresses = `-- name: DeleteAllIPAddresses :exec
DELETE FROM ip_addresses
`

func (q *Queries) DeleteAllIPAddresses(ctx context.Context) error {
	_, err := q.db.Exec(ctx, deleteAllIPAddresses)
	return err
}
