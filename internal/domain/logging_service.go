package domain

import (
	"context"

	"go.uber.org/zap"

	"github.com/Flarenzy/simple-ipam/internal/addrmath"
)

type loggingIPAMService struct {
	logger *zap.Logger
	next   IPAMService
}

func NewLoggingIPAMService(logger *zap.Logger, next IPAMService) IPAMService {
	if logger == nil || next == nil {
		return next
	}

	return &loggingIPAMService{
		logger: logger,
		next:   next,
	}
}

func (s *loggingIPAMService) ParseCIDR(ctx context.Context, text string) (addrmath.Network, error) {
	n, err := s.next.ParseCIDR(ctx, text)
	if err != nil {
		s.logger.Debug("parse cidr failed", zap.String("cidr", text), zap.Error(err))
	}
	return n, err
}

func (s *loggingIPAMService) Calculate(ctx context.Context, text string) (addrmath.Calculation, error) {
	calc, err := s.next.Calculate(ctx, text)
	if err != nil {
		s.logger.Debug("calculate failed", zap.String("cidr", text), zap.Error(err))
	}
	return calc, err
}

func (s *loggingIPAMService) Upsert(ctx context.Context, input AddressInput) (Address, error) {
	a, err := s.next.Upsert(ctx, input)
	if err != nil {
		s.logger.Error("upsert address failed", zap.String("ip", input.IP), zap.String("subnet", input.Subnet), zap.Error(err))
		return Address{}, err
	}

	s.logger.Debug("address upserted",
		zap.String("ip", a.IP()),
		zap.Stringer("subnet", a.Subnet),
		zap.String("status", string(a.Status)),
	)
	return a, nil
}

func (s *loggingIPAMService) CreateAddress(ctx context.Context, subnetID int64, input AddressInput) (Address, error) {
	a, err := s.next.CreateAddress(ctx, subnetID, input)
	if err != nil {
		s.logger.Error("create address failed", zap.Int64("subnet_id", subnetID), zap.String("ip", input.IP), zap.Error(err))
		return Address{}, err
	}

	s.logger.Debug("address created", zap.Int64("subnet_id", subnetID), zap.String("ip", a.IP()))
	return a, nil
}

func (s *loggingIPAMService) Claim(ctx context.Context, input AddressInput) (Address, error) {
	a, err := s.next.Claim(ctx, input)
	if err != nil {
		s.logger.Error("claim address failed", zap.String("ip", input.IP), zap.String("owner", input.AssignedTo), zap.Error(err))
		return Address{}, err
	}

	s.logger.Info("address claimed", zap.String("ip", a.IP()), zap.String("owner", a.AssignedTo))
	return a, nil
}

func (s *loggingIPAMService) Remove(ctx context.Context, ip string, strict bool) error {
	err := s.next.Remove(ctx, ip, strict)
	if err != nil {
		s.logger.Error("remove address failed", zap.String("ip", ip), zap.Bool("strict", strict), zap.Error(err))
		return err
	}

	s.logger.Debug("address removed", zap.String("ip", ip))
	return nil
}

func (s *loggingIPAMService) Find(ctx context.Context, value uint32) (Address, bool) {
	return s.next.Find(ctx, value)
}

func (s *loggingIPAMService) Lookup(ctx context.Context, ip string) (Address, error) {
	return s.next.Lookup(ctx, ip)
}

func (s *loggingIPAMService) ListBySubnet(ctx context.Context, subnetID int64) ([]Address, error) {
	addrs, err := s.next.ListBySubnet(ctx, subnetID)
	if err != nil {
		s.logger.Error("list addresses failed", zap.Int64("subnet_id", subnetID), zap.Error(err))
	}
	return addrs, err
}

func (s *loggingIPAMService) CountByStatus(ctx context.Context, subnetID int64) (map[Status]int, error) {
	counts, err := s.next.CountByStatus(ctx, subnetID)
	if err != nil {
		s.logger.Error("count by status failed", zap.Int64("subnet_id", subnetID), zap.Error(err))
	}
	return counts, err
}

func (s *loggingIPAMService) ListByCIDR(ctx context.Context, cidr string) ([]Address, error) {
	addrs, err := s.next.ListByCIDR(ctx, cidr)
	if err != nil {
		s.logger.Debug("list addresses by cidr failed", zap.String("cidr", cidr), zap.Error(err))
	}
	return addrs, err
}

func (s *loggingIPAMService) Import(ctx context.Context, rows []Address) (LoadReport, error) {
	report, err := s.next.Import(ctx, rows)
	if err != nil {
		s.logger.Error("import failed", zap.Int("rows", len(rows)), zap.Error(err))
		return LoadReport{}, err
	}

	s.logger.Info("import completed",
		zap.Int("rows", len(rows)),
		zap.Int("inserted", report.Inserted),
		zap.Int("replaced", report.Replaced),
		zap.Int("claims", report.Claims),
	)
	return report, nil
}

func (s *loggingIPAMService) Export(ctx context.Context) ([]Address, error) {
	addrs, err := s.next.Export(ctx)
	if err != nil {
		s.logger.Error("export failed", zap.Error(err))
	}
	return addrs, err
}

func (s *loggingIPAMService) Reset(ctx context.Context) error {
	err := s.next.Reset(ctx)
	if err != nil {
		s.logger.Error("reset failed", zap.Error(err))
		return err
	}

	s.logger.Warn("address registry reset")
	return nil
}

func (s *loggingIPAMService) ListSubnets(ctx context.Context) ([]Subnet, error) {
	subnets, err := s.next.ListSubnets(ctx)
	if err != nil {
		s.logger.Error("list subnets failed", zap.Error(err))
	}
	return subnets, err
}

func (s *loggingIPAMService) CreateSubnet(ctx context.Context, input CreateSubnetInput) (Subnet, error) {
	subnet, err := s.next.CreateSubnet(ctx, input)
	if err != nil {
		s.logger.Error("create subnet failed", zap.String("cidr", input.CIDR), zap.Error(err))
		return Subnet{}, err
	}

	s.logger.Info("subnet created", zap.Int64("id", subnet.ID), zap.Stringer("cidr", subnet.Network))
	return subnet, nil
}

func (s *loggingIPAMService) GetSubnet(ctx context.Context, id int64) (Subnet, error) {
	subnet, err := s.next.GetSubnet(ctx, id)
	if err != nil {
		s.logger.Error("get subnet failed", zap.Int64("id", id), zap.Error(err))
	}
	return subnet, err
}

func (s *loggingIPAMService) DeleteSubnet(ctx context.Context, id int64) error {
	err := s.next.DeleteSubnet(ctx, id)
	if err != nil {
		s.logger.Error("delete subnet failed", zap.Int64("id", id), zap.Error(err))
		return err
	}

	s.logger.Info("subnet deleted", zap.Int64("id", id))
	return nil
}

func (s *loggingIPAMService) Summarize(ctx context.Context, id int64) (SubnetSummary, error) {
	summary, err := s.next.Summarize(ctx, id)
	if err != nil {
		s.logger.Error("summarize subnet failed", zap.Int64("id", id), zap.Error(err))
	}
	return summary, err
}

func (s *loggingIPAMService) SummarizeAll(ctx context.Context) ([]SubnetSummary, error) {
	return s.next.SummarizeAll(ctx)
}

func (s *loggingIPAMService) SummarizeCIDR(ctx context.Context, cidr string) (SubnetSummary, error) {
	summary, err := s.next.SummarizeCIDR(ctx, cidr)
	if err != nil {
		s.logger.Debug("summarize cidr failed", zap.String("cidr", cidr), zap.Error(err))
	}
	return summary, err
}

func (s *loggingIPAMService) Stats(ctx context.Context) (Totals, error) {
	return s.next.Stats(ctx)
}

func (s *loggingIPAMService) DetectConflicts(ctx context.Context) ([]ConflictRecord, error) {
	conflicts, err := s.next.DetectConflicts(ctx)
	if err != nil {
		s.logger.Error("detect conflicts failed", zap.Error(err))
		return nil, err
	}
	if len(conflicts) > 0 {
		s.logger.Debug("conflicts detected", zap.Int("count", len(conflicts)))
	}
	return conflicts, nil
}

func (s *loggingIPAMService) ResolveConflict(ctx context.Context, ip string) (int, error) {
	dropped, err := s.next.ResolveConflict(ctx, ip)
	if err != nil {
		s.logger.Error("resolve conflict failed", zap.String("ip", ip), zap.Error(err))
		return 0, err
	}

	s.logger.Info("conflict resolved", zap.String("ip", ip), zap.Int("claims_dropped", dropped))
	return dropped, nil
}

func (s *loggingIPAMService) ListScopes(ctx context.Context) ([]ScopeUtilization, error) {
	return s.next.ListScopes(ctx)
}

func (s *loggingIPAMService) CreateScope(ctx context.Context, input CreateScopeInput) (ScopeUtilization, error) {
	scope, err := s.next.CreateScope(ctx, input)
	if err != nil {
		s.logger.Error("create scope failed", zap.String("name", input.Name), zap.Error(err))
		return ScopeUtilization{}, err
	}

	s.logger.Info("scope created", zap.Int64("id", scope.ID), zap.String("name", scope.Name), zap.Stringer("subnet", scope.Subnet))
	return scope, nil
}

func (s *loggingIPAMService) GetScope(ctx context.Context, id int64) (ScopeUtilization, error) {
	scope, err := s.next.GetScope(ctx, id)
	if err != nil {
		s.logger.Error("get scope failed", zap.Int64("id", id), zap.Error(err))
	}
	return scope, err
}

func (s *loggingIPAMService) SetScopeAllocation(ctx context.Context, id int64, allocated int) (ScopeUtilization, error) {
	scope, err := s.next.SetScopeAllocation(ctx, id, allocated)
	if err != nil {
		s.logger.Error("set scope allocation failed", zap.Int64("id", id), zap.Int("allocated", allocated), zap.Error(err))
		return ScopeUtilization{}, err
	}

	if scope.Level != LevelNormal {
		s.logger.Warn("scope utilization high",
			zap.Int64("id", id),
			zap.String("name", scope.Name),
			zap.Int("percent", scope.UtilizationPercent),
			zap.String("level", string(scope.Level)),
		)
	}
	return scope, nil
}

func (s *loggingIPAMService) DeleteScope(ctx context.Context, id int64) error {
	err := s.next.DeleteScope(ctx, id)
	if err != nil {
		s.logger.Error("delete scope failed", zap.Int64("id", id), zap.Error(err))
		return err
	}

	s.logger.Info("scope deleted", zap.Int64("id", id))
	return nil
}
