package sqlc

import (
	"context"
	"net/netip"
)

const listSubnets = `-- name: ListSubnets :many
SELECT id, cidr, description, created_at, updated_at
FROM subnets
ORDER BY cidr
`

func (q *Queries) ListSubnets(ctx context.Context) ([]Subnet, error) {
	rows, err := q.db.Query(ctx, listSubnets)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Subnet
	for rows.Next() {
		var i Subnet
		if err := rows.Scan(
			&i.ID,
			&i.Cidr,
			&i.Description,
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

const createSubnet = `-- name: CreateSubnet :one
INSERT INTO subnets (cidr, description)
VALUES ($1, $2)
RETURNING id, cidr, description, created_at, updated_at
`

type CreateSubnetParams struct {
	Cidr        netip.Prefix
	Description string
}

func (q *Queries) CreateSubnet(ctx context.Context, arg CreateSubnetParams) (Subnet, error) {
	row := q.db.QueryRow(ctx, createSubnet, arg.Cidr, arg.Description)
	var i Subnet
	err := row.Scan(
		&i.ID,
		&i.Cidr,
		&i.Description,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const deleteSubnetByID = `-- name: DeleteSubnetByID :execrows
DELETE FROM subnets
WHERE id = $1
`

func (q *Queries) DeleteSubnetByID(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.Exec(ctx, deleteSubnetByID, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
