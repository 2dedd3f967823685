package domain

import "context"

// AddressRepository persists canonical records and extra owner claims.
type AddressRepository interface {
	List(ctx context.Context) ([]Address, error)
	ListClaims(ctx context.Context) ([]Address, error)
	Upsert(ctx context.Context, a Address) error
	AddClaim(ctx context.Context, a Address) error
	// SaveBatch upserts records and appends claims in one transaction.
	SaveBatch(ctx context.Context, records []Address, claims []Address) error
	// Delete removes the record for value together with its claims.
	Delete(ctx context.Context, value uint32) (bool, error)
	DeleteClaims(ctx context.Context, value uint32) (int, error)
	DeleteAll(ctx context.Context) error
}

type SubnetRepository interface {
	List(ctx context.Context) ([]Subnet, error)
	Create(ctx context.Context, s Subnet) (Subnet, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type ScopeRepository interface {
	List(ctx context.Context) ([]Scope, error)
	Create(ctx context.Context, s Scope) (Scope, error)
	UpdateAllocated(ctx context.Context, id int64, allocated int) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// Store groups the repositories behind the service. A Store with nil
// repositories keeps everything in memory.
type Store struct {
	Addresses AddressRepository
	Subnets   SubnetRepository
	Scopes    ScopeRepository
}
