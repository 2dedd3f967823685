package app

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Flarenzy/simple-ipam/internal/addrmath"
	"github.com/Flarenzy/simple-ipam/internal/domain"
	"github.com/Flarenzy/simple-ipam/internal/scopefile"
)

// seedFromFile applies the scope file on top of loaded state. Subnets whose
// CIDR is already defined and scopes whose name already exists are skipped,
// so restarting against a persistent store is a no-op.
func seedFromFile(ctx context.Context, svc domain.IPAMService, path string, logger *zap.Logger) error {
	seed, err := scopefile.Load(path)
	if err != nil {
		return err
	}

	subnets, err := svc.ListSubnets(ctx)
	if err != nil {
		return fmt.Errorf("seed %s: %w", path, err)
	}
	defined := make(map[addrmath.Network]bool, len(subnets))
	for _, s := range subnets {
		defined[s.Network] = true
	}

	var createdSubnets, createdScopes int
	for _, in := range seed.Subnets {
		n, err := addrmath.ParseCIDR(strings.TrimSpace(in.CIDR))
		if err != nil {
			return fmt.Errorf("seed %s: subnet %q: %w", path, in.CIDR, err)
		}
		if defined[n] {
			continue
		}
		if _, err := svc.CreateSubnet(ctx, in); err != nil {
			return fmt.Errorf("seed %s: subnet %s: %w", path, n, err)
		}
		defined[n] = true
		createdSubnets++
	}

	scopes, err := svc.ListScopes(ctx)
	if err != nil {
		return fmt.Errorf("seed %s: %w", path, err)
	}
	named := make(map[string]bool, len(scopes))
	for _, s := range scopes {
		named[s.Name] = true
	}
	for _, in := range seed.Scopes {
		name := strings.TrimSpace(in.Name)
		if named[name] {
			continue
		}
		if _, err := svc.CreateScope(ctx, in); err != nil {
			return fmt.Errorf("seed %s: scope %q: %w", path, name, err)
		}
		named[name] = true
		createdScopes++
	}

	logger.Info("scope file applied",
		zap.String("path", path),
		zap.Int("subnets_created", createdSubnets),
		zap.Int("scopes_created", createdScopes),
	)
	return nil
}
