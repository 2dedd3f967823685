package sqlite

import "database/sql"

// Schema mirrors the postgres tables. Addresses are keyed by their integer
// value so ORDER BY value is numeric order. Subnets are stored as CIDR text.
var Migrations = []Migration{
	{
		Version:     1,
		Description: "create ipam tables",
		Up: func(tx *sql.Tx) error {
			stmts := []string{
				`CREATE TABLE subnets (
					id          INTEGER PRIMARY KEY AUTOINCREMENT,
					cidr        TEXT    NOT NULL UNIQUE,
					description TEXT    NOT NULL DEFAULT '',
					created_at  TEXT    NOT NULL,
					updated_at  TEXT    NOT NULL
				)`,
				`CREATE TABLE ip_addresses (
					value       INTEGER PRIMARY KEY,
					subnet      TEXT    NOT NULL,
					status      TEXT    NOT NULL CHECK (status IN ('available', 'allocated', 'reserved', 'quarantine')),
					assigned_to TEXT    NOT NULL DEFAULT '',
					mac_address TEXT    NOT NULL DEFAULT '',
					description TEXT    NOT NULL DEFAULT '',
					last_seen   TEXT    NULL
				)`,
				`CREATE INDEX idx_ip_addresses_subnet ON ip_addresses(subnet)`,
				`CREATE TABLE ip_address_claims (
					id          INTEGER PRIMARY KEY AUTOINCREMENT,
					value       INTEGER NOT NULL REFERENCES ip_addresses(value) ON DELETE CASCADE,
					subnet      TEXT    NOT NULL,
					status      TEXT    NOT NULL CHECK (status IN ('available', 'allocated', 'reserved', 'quarantine')),
					assigned_to TEXT    NOT NULL DEFAULT '',
					mac_address TEXT    NOT NULL DEFAULT '',
					description TEXT    NOT NULL DEFAULT '',
					last_seen   TEXT    NULL
				)`,
				`CREATE INDEX idx_ip_address_claims_value ON ip_address_claims(value)`,
			}
			return execAll(tx, stmts)
		},
	},
	{
		Version:     2,
		Description: "create dhcp_scopes table",
		Up: func(tx *sql.Tx) error {
			return execAll(tx, []string{
				`CREATE TABLE dhcp_scopes (
					id              INTEGER PRIMARY KEY AUTOINCREMENT,
					name            TEXT    NOT NULL,
					subnet          TEXT    NOT NULL,
					range_start     INTEGER NOT NULL,
					range_end       INTEGER NOT NULL,
					gateway         TEXT    NOT NULL DEFAULT '',
					dns_servers     TEXT    NOT NULL DEFAULT '',
					lease_time      TEXT    NOT NULL DEFAULT '',
					status          TEXT    NOT NULL DEFAULT 'active',
					allocated_count INTEGER NOT NULL DEFAULT 0,
					total_count     INTEGER NOT NULL DEFAULT 0,
					created_at      TEXT    NOT NULL,
					updated_at      TEXT    NOT NULL,
					CHECK (range_start <= range_end)
				)`,
			})
		},
	},
}

func execAll(tx *sql.Tx, stmts []string) error {
	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
