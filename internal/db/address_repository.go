package db

import (
	"context"
	"fmt"
	"net/netip"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Flarenzy/simple-ipam/internal/addrmath"
	sqlc "github.com/Flarenzy/simple-ipam/internal/db/sqlc"
	"github.com/Flarenzy/simple-ipam/internal/domain"
)

type AddressRepository struct {
	pool    *pgxpool.Pool
	queries *sqlc.Queries
}

func NewAddressRepository(pool *pgxpool.Pool) *AddressRepository {
	return &AddressRepository{pool: pool, queries: sqlc.New(pool)}
}

func (r *AddressRepository) List(ctx context.Context) ([]domain.Address, error) {
	rows, err := r.queries.ListIPAddresses(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Address, 0, len(rows))
	for _, row := range rows {
		a, err := toDomainAddress(row.Ip, row.Subnet, row.Status, row.AssignedTo, row.MacAddress, row.Description, row.LastSeen)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *AddressRepository) ListClaims(ctx context.Context) ([]domain.Address, error) {
	rows, err := r.queries.ListIPAddressClaims(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Address, 0, len(rows))
	for _, row := range rows {
		a, err := toDomainAddress(row.Ip, row.Subnet, row.Status, row.AssignedTo, row.MacAddress, row.Description, row.LastSeen)
		if err != nil {
			return nil, fmt.Errorf("claim %d: %w", row.ID, err)
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *AddressRepository) Upsert(ctx context.Context, a domain.Address) error {
	return mapError(upsertAddress(ctx, r.queries, a))
}

func (r *AddressRepository) AddClaim(ctx context.Context, a domain.Address) error {
	return mapError(addClaim(ctx, r.queries, a))
}

func (r *AddressRepository) SaveBatch(ctx context.Context, records []domain.Address, claims []domain.Address) error {
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		q := r.queries.WithTx(tx)
		for _, a := range records {
			if err := upsertAddress(ctx, q, a); err != nil {
				return fmt.Errorf("upsert %s: %w", a.IP(), err)
			}
		}
		for _, a := range claims {
			if err := addClaim(ctx, q, a); err != nil {
				return fmt.Errorf("claim %s: %w", a.IP(), err)
			}
		}
		return nil
	})
	return mapError(err)
}

func (r *AddressRepository) Delete(ctx context.Context, value uint32) (bool, error) {
	deleted, err := r.queries.DeleteIPAddress(ctx, addrmath.ToAddr(value))
	if err != nil {
		return false, err
	}
	return deleted > 0, nil
}

func (r *AddressRepository) DeleteClaims(ctx context.Context, value uint32) (int, error) {
	deleted, err := r.queries.DeleteIPAddressClaims(ctx, addrmath.ToAddr(value))
	if err != nil {
		return 0, err
	}
	return int(deleted), nil
}

func (r *AddressRepository) DeleteAll(ctx context.Context) error {
	return r.queries.DeleteAllIPAddresses(ctx)
}

func upsertAddress(ctx context.Context, q *sqlc.Queries, a domain.Address) error {
	return q.UpsertIPAddress(ctx, sqlc.UpsertIPAddressParams{
		Ip:          addrmath.ToAddr(a.Value),
		Subnet:      a.Subnet.Prefix(),
		Status:      string(a.Status),
		AssignedTo:  a.AssignedTo,
		MacAddress:  a.MACAddress,
		Description: a.Description,
		LastSeen:    toTimestamptz(a.LastSeen),
	})
}

func addClaim(ctx context.Context, q *sqlc.Queries, a domain.Address) error {
	return q.CreateIPAddressClaim(ctx, sqlc.CreateIPAddressClaimParams{
		Ip:          addrmath.ToAddr(a.Value),
		Subnet:      a.Subnet.Prefix(),
		Status:      string(a.Status),
		AssignedTo:  a.AssignedTo,
		MacAddress:  a.MACAddress,
		Description: a.Description,
		LastSeen:    toTimestamptz(a.LastSeen),
	})
}

func toDomainAddress(ip netip.Addr, subnet netip.Prefix, status, assignedTo, mac, description string, lastSeen pgtype.Timestamptz) (domain.Address, error) {
	n, err := addrmath.FromPrefix(subnet)
	if err != nil {
		return domain.Address{}, fmt.Errorf("address %s: %w", ip, err)
	}
	a := domain.Address{
		Value:       addrmath.FromAddr(ip),
		Subnet:      n,
		Status:      domain.Status(status),
		AssignedTo:  assignedTo,
		MACAddress:  mac,
		Description: description,
	}
	if lastSeen.Valid {
		a.LastSeen = lastSeen.Time.UTC()
	}
	return a, nil
}

func toTimestamptz(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: t, Valid: true}
}
