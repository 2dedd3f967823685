package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Flarenzy/simple-ipam/internal/addrmath"
	"github.com/Flarenzy/simple-ipam/internal/domain"
)

const timeLayout = time.RFC3339Nano

const addressColumns = `value, subnet, status, assigned_to, mac_address, description, last_seen`

// Repositories opens the domain repositories over s after migrating it.
func Repositories(ctx context.Context, s *Store) (domain.Store, error) {
	if err := s.Migrate(ctx, Migrations); err != nil {
		return domain.Store{}, fmt.Errorf("sqlite migrations: %w", err)
	}
	return domain.Store{
		Addresses: &AddressRepository{store: s},
		Subnets:   &SubnetRepository{store: s},
		Scopes:    &ScopeRepository{store: s},
	}, nil
}

type AddressRepository struct {
	store *Store
}

func (r *AddressRepository) List(ctx context.Context) ([]domain.Address, error) {
	return r.query(ctx, `SELECT `+addressColumns+` FROM ip_addresses ORDER BY value`)
}

func (r *AddressRepository) ListClaims(ctx context.Context) ([]domain.Address, error) {
	return r.query(ctx, `SELECT `+addressColumns+` FROM ip_address_claims ORDER BY value, id`)
}

func (r *AddressRepository) query(ctx context.Context, q string) ([]domain.Address, error) {
	rows, err := r.store.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer rows.Close()

	var out []domain.Address
	for rows.Next() {
		var (
			value    int64
			subnet   string
			a        domain.Address
			lastSeen sql.NullString
		)
		if err := rows.Scan(&value, &subnet, &a.Status, &a.AssignedTo, &a.MACAddress, &a.Description, &lastSeen); err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		a.Value = uint32(value)
		if a.Subnet, err = addrmath.ParseCIDR(subnet); err != nil {
			return nil, fmt.Errorf("address %d: %w", value, err)
		}
		if lastSeen.Valid {
			if a.LastSeen, err = time.Parse(timeLayout, lastSeen.String); err != nil {
				return nil, fmt.Errorf("address %d last_seen: %w", value, err)
			}
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AddressRepository) Upsert(ctx context.Context, a domain.Address) error {
	return mapError(upsertAddress(ctx, r.store.db, a))
}

func (r *AddressRepository) AddClaim(ctx context.Context, a domain.Address) error {
	return mapError(addClaim(ctx, r.store.db, a))
}

func (r *AddressRepository) SaveBatch(ctx context.Context, records []domain.Address, claims []domain.Address) error {
	err := r.store.Tx(ctx, func(tx *sql.Tx) error {
		for _, a := range records {
			if err := upsertAddress(ctx, tx, a); err != nil {
				return fmt.Errorf("upsert %s: %w", a.IP(), err)
			}
		}
		for _, a := range claims {
			if err := addClaim(ctx, tx, a); err != nil {
				return fmt.Errorf("claim %s: %w", a.IP(), err)
			}
		}
		return nil
	})
	return mapError(err)
}

func (r *AddressRepository) Delete(ctx context.Context, value uint32) (bool, error) {
	res, err := r.store.db.ExecContext(ctx, `DELETE FROM ip_addresses WHERE value = ?`, int64(value))
	if err != nil {
		return false, fmt.Errorf("delete address: %w", err)
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *AddressRepository) DeleteClaims(ctx context.Context, value uint32) (int, error) {
	res, err := r.store.db.ExecContext(ctx, `DELETE FROM ip_address_claims WHERE value = ?`, int64(value))
	if err != nil {
		return 0, fmt.Errorf("delete claims: %w", err)
	}
	n, err := res.RowsAffected()
	return int(n), err
}

func (r *AddressRepository) DeleteAll(ctx context.Context) error {
	_, err := r.store.db.ExecContext(ctx, `DELETE FROM ip_addresses`)
	return err
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func upsertAddress(ctx context.Context, db execer, a domain.Address) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO ip_addresses (`+addressColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (value) DO UPDATE SET
			subnet = excluded.subnet,
			status = excluded.status,
			assigned_to = excluded.assigned_to,
			mac_address = excluded.mac_address,
			description = excluded.description,
			last_seen = excluded.last_seen`,
		int64(a.Value), a.Subnet.String(), string(a.Status), a.AssignedTo, a.MACAddress, a.Description, nullTime(a.LastSeen),
	)
	return err
}

func addClaim(ctx context.Context, db execer, a domain.Address) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO ip_address_claims (`+addressColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		int64(a.Value), a.Subnet.String(), string(a.Status), a.AssignedTo, a.MACAddress, a.Description, nullTime(a.LastSeen),
	)
	return err
}

func nullTime(t time.Time) sql.NullString {
	if t.IsZero() {
		return sql.NullString{}
	}
	return sql.NullString{String: t.UTC().Format(timeLayout), Valid: true}
}

type SubnetRepository struct {
	store *Store
}

func (r *SubnetRepository) List(ctx context.Context) ([]domain.Subnet, error) {
	rows, err := r.store.db.QueryContext(ctx,
		`SELECT id, cidr, description, created_at, updated_at FROM subnets ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list subnets: %w", err)
	}
	defer rows.Close()

	var out []domain.Subnet
	for rows.Next() {
		var s domain.Subnet
		var cidr, created, updated string
		if err := rows.Scan(&s.ID, &cidr, &s.Description, &created, &updated); err != nil {
			return nil, fmt.Errorf("scan subnet: %w", err)
		}
		if s.Network, err = addrmath.ParseCIDR(cidr); err != nil {
			return nil, fmt.Errorf("subnet %d: %w", s.ID, err)
		}
		s.CreatedAt, _ = time.Parse(timeLayout, created)
		s.UpdatedAt, _ = time.Parse(timeLayout, updated)
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SubnetRepository) Create(ctx context.Context, s domain.Subnet) (domain.Subnet, error) {
	now := time.Now().UTC()
	stamp := now.Format(timeLayout)

	res, err := r.store.db.ExecContext(ctx,
		`INSERT INTO subnets (cidr, description, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		s.Network.String(), s.Description, stamp, stamp,
	)
	if err != nil {
		return domain.Subnet{}, mapError(err)
	}
	if s.ID, err = res.LastInsertId(); err != nil {
		return domain.Subnet{}, err
	}
	s.CreatedAt, s.UpdatedAt = now, now
	return s, nil
}

func (r *SubnetRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.store.db.ExecContext(ctx, `DELETE FROM subnets WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete subnet: %w", err)
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

type ScopeRepository struct {
	store *Store
}

func (r *ScopeRepository) List(ctx context.Context) ([]domain.Scope, error) {
	rows, err := r.store.db.QueryContext(ctx, `
		SELECT id, name, subnet, range_start, range_end, gateway, dns_servers, lease_time, status,
		       allocated_count, total_count, created_at, updated_at
		FROM dhcp_scopes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list scopes: %w", err)
	}
	defer rows.Close()

	var out []domain.Scope
	for rows.Next() {
		var s domain.Scope
		var subnet, dns, created, updated string
		var start, end int64
		err := rows.Scan(&s.ID, &s.Name, &subnet, &start, &end, &s.Gateway, &dns, &s.LeaseTime, &s.Status,
			&s.AllocatedCount, &s.TotalCount, &created, &updated)
		if err != nil {
			return nil, fmt.Errorf("scan scope: %w", err)
		}
		if s.Subnet, err = addrmath.ParseCIDR(subnet); err != nil {
			return nil, fmt.Errorf("scope %d: %w", s.ID, err)
		}
		s.RangeStart, s.RangeEnd = uint32(start), uint32(end)
		if dns != "" {
			s.DNSServers = strings.Split(dns, ",")
		}
		s.CreatedAt, _ = time.Parse(timeLayout, created)
		s.UpdatedAt, _ = time.Parse(timeLayout, updated)
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *ScopeRepository) Create(ctx context.Context, s domain.Scope) (domain.Scope, error) {
	now := time.Now().UTC()
	stamp := now.Format(timeLayout)

	res, err := r.store.db.ExecContext(ctx, `
		INSERT INTO dhcp_scopes (name, subnet, range_start, range_end, gateway, dns_servers, lease_time, status,
		                         allocated_count, total_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.Name, s.Subnet.String(), int64(s.RangeStart), int64(s.RangeEnd), s.Gateway,
		strings.Join(s.DNSServers, ","), s.LeaseTime, string(s.Status),
		s.AllocatedCount, s.TotalCount, stamp, stamp,
	)
	if err != nil {
		return domain.Scope{}, mapError(err)
	}
	if s.ID, err = res.LastInsertId(); err != nil {
		return domain.Scope{}, err
	}
	s.CreatedAt, s.UpdatedAt = now, now
	return s, nil
}

func (r *ScopeRepository) UpdateAllocated(ctx context.Context, id int64, allocated int) (bool, error) {
	res, err := r.store.db.ExecContext(ctx,
		`UPDATE dhcp_scopes SET allocated_count = ?, updated_at = ? WHERE id = ?`,
		allocated, time.Now().UTC().Format(timeLayout), id,
	)
	if err != nil {
		return false, mapError(err)
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *ScopeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.store.db.ExecContext(ctx, `DELETE FROM dhcp_scopes WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete scope: %w", err)
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
