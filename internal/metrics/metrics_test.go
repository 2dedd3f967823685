package metrics

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Flarenzy/simple-ipam/internal/addrmath"
	"github.com/Flarenzy/simple-ipam/internal/domain"
)

type stubSource struct {
	totals    domain.Totals
	summaries []domain.SubnetSummary
	scopes    []domain.ScopeUtilization
	err       error
}

func (s stubSource) Stats(context.Context) (domain.Totals, error) {
	return s.totals, s.err
}

func (s stubSource) SummarizeAll(context.Context) ([]domain.SubnetSummary, error) {
	return s.summaries, s.err
}

func (s stubSource) ListScopes(context.Context) ([]domain.ScopeUtilization, error) {
	return s.scopes, s.err
}

func TestHTTPObserveRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTP(reg)

	m.ObserveRequest("GET", "GET /api/v1/subnets", 200, 10*time.Millisecond)
	m.ObserveRequest("GET", "GET /api/v1/subnets", 200, 20*time.Millisecond)
	m.ObserveRequest("POST", "POST /api/v1/subnets", 409, time.Millisecond)
	m.IncrementRateLimited()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "GET /api/v1/subnets", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("POST", "POST /api/v1/subnets", "409")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RateLimited))
	assert.Equal(t, 2, testutil.CollectAndCount(m.RequestDuration))
}

func TestHTTPNilReceiverIsNoop(t *testing.T) {
	var m *HTTP
	m.ObserveRequest("GET", "/", 200, time.Millisecond)
	m.IncrementRateLimited()
}

func TestCollectorExposesRegistryState(t *testing.T) {
	source := stubSource{
		totals: domain.Totals{Total: 5, Allocated: 3, Available: 1, Reserved: 1, Conflicts: 1},
		summaries: []domain.SubnetSummary{
			{Network: addrmath.MustParseCIDR("10.0.0.0/24"), Total: 5, Allocated: 3, UtilizationPercent: 60},
		},
		scopes: []domain.ScopeUtilization{
			{
				Scope:              domain.Scope{ID: 1, Name: "guest", Subnet: addrmath.MustParseCIDR("10.0.0.0/24")},
				UtilizationPercent: 80,
				Level:              domain.LevelWarning,
			},
		},
	}

	expected := `
# HELP ipam_addresses Registered addresses by status.
# TYPE ipam_addresses gauge
ipam_addresses{status="allocated"} 3
ipam_addresses{status="available"} 1
ipam_addresses{status="quarantine"} 0
ipam_addresses{status="reserved"} 1
# HELP ipam_conflicts Addresses currently claimed by more than one owner.
# TYPE ipam_conflicts gauge
ipam_conflicts 1
# HELP ipam_scope_utilization_percent Lease pool utilization per scope.
# TYPE ipam_scope_utilization_percent gauge
ipam_scope_utilization_percent{id="1",scope="guest",subnet="10.0.0.0/24"} 80
# HELP ipam_subnet_utilization_percent Allocated share of registered addresses per subnet.
# TYPE ipam_subnet_utilization_percent gauge
ipam_subnet_utilization_percent{subnet="10.0.0.0/24"} 60
`
	c := NewCollector(source, nil)
	err := testutil.CollectAndCompare(c, strings.NewReader(expected),
		"ipam_addresses", "ipam_conflicts", "ipam_scope_utilization_percent", "ipam_subnet_utilization_percent")
	require.NoError(t, err)
	assert.Equal(t, 9, testutil.CollectAndCount(c))
}

func TestCollectorSkipsFailingSource(t *testing.T) {
	c := NewCollector(stubSource{err: errors.New("boom")}, nil)
	assert.Equal(t, 0, testutil.CollectAndCount(c))
}
