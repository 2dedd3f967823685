package db

import (
	"context"
	"fmt"

	"github.com/Flarenzy/simple-ipam/internal/addrmath"
	sqlc "github.com/Flarenzy/simple-ipam/internal/db/sqlc"
	"github.com/Flarenzy/simple-ipam/internal/domain"
)

type SubnetRepository struct {
	queries *sqlc.Queries
}

func NewSubnetRepository(queries *sqlc.Queries) *SubnetRepository {
	return &SubnetRepository{queries: queries}
}

func (r *SubnetRepository) List(ctx context.Context) ([]domain.Subnet, error) {
	subnets, err := r.queries.ListSubnets(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Subnet, 0, len(subnets))
	for _, subnet := range subnets {
		s, err := toDomainSubnet(subnet)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}

func (r *SubnetRepository) Create(ctx context.Context, input domain.Subnet) (domain.Subnet, error) {
	subnet, err := r.queries.CreateSubnet(ctx, sqlc.CreateSubnetParams{
		Cidr:        input.Network.Prefix(),
		Description: input.Description,
	})
	if err != nil {
		return domain.Subnet{}, mapError(err)
	}

	return toDomainSubnet(subnet)
}

func (r *SubnetRepository) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := r.queries.DeleteSubnetByID(ctx, id)
	if err != nil {
		return false, err
	}

	return deleted > 0, nil
}

func toDomainSubnet(subnet sqlc.Subnet) (domain.Subnet, error) {
	n, err := addrmath.FromPrefix(subnet.Cidr)
	if err != nil {
		return domain.Subnet{}, fmt.Errorf("subnet %d: %w", subnet.ID, err)
	}
	return domain.Subnet{
		ID:          subnet.ID,
		Network:     n,
		Description: subnet.Description,
		CreatedAt:   subnet.CreatedAt.Time,
		UpdatedAt:   subnet.UpdatedAt.Time,
	}, nil
}
