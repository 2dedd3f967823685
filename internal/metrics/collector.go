package metrics

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/Flarenzy/simple-ipam/internal/domain"
)

// Source is the read side of the IPAM service the collector scrapes.
type Source interface {
	Stats(ctx context.Context) (domain.Totals, error)
	SummarizeAll(ctx context.Context) ([]domain.SubnetSummary, error)
	ListScopes(ctx context.Context) ([]domain.ScopeUtilization, error)
}

// Collector exposes registry state as gauges computed at scrape time.
type Collector struct {
	source  Source
	logger  *zap.Logger
	timeout time.Duration

	addresses         *prometheus.Desc
	conflicts         *prometheus.Desc
	subnetAddresses   *prometheus.Desc
	subnetUtilization *prometheus.Desc
	scopeUtilization  *prometheus.Desc
	scopeLevel        *prometheus.Desc
}

func NewCollector(source Source, logger *zap.Logger) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collector{
		source:  source,
		logger:  logger,
		timeout: 5 * time.Second,
		addresses: prometheus.NewDesc("ipam_addresses",
			"Registered addresses by status.", []string{"status"}, nil),
		conflicts: prometheus.NewDesc("ipam_conflicts",
			"Addresses currently claimed by more than one owner.", nil, nil),
		subnetAddresses: prometheus.NewDesc("ipam_subnet_addresses",
			"Registered addresses per subnet.", []string{"subnet"}, nil),
		subnetUtilization: prometheus.NewDesc("ipam_subnet_utilization_percent",
			"Allocated share of registered addresses per subnet.", []string{"subnet"}, nil),
		scopeUtilization: prometheus.NewDesc("ipam_scope_utilization_percent",
			"Lease pool utilization per scope.", []string{"id", "scope", "subnet"}, nil),
		scopeLevel: prometheus.NewDesc("ipam_scope_utilization_level",
			"1 for the scope's current utilization level.", []string{"id", "scope", "level"}, nil),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.addresses
	ch <- c.conflicts
	ch <- c.subnetAddresses
	ch <- c.subnetUtilization
	ch <- c.scopeUtilization
	ch <- c.scopeLevel
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	if totals, err := c.source.Stats(ctx); err != nil {
		c.logger.Warn("metrics: stats failed", zap.Error(err))
	} else {
		counts := map[domain.Status]int{
			domain.StatusAvailable:  totals.Available,
			domain.StatusAllocated:  totals.Allocated,
			domain.StatusReserved:   totals.Reserved,
			domain.StatusQuarantine: totals.Quarantine,
		}
		for _, s := range domain.Statuses {
			ch <- prometheus.MustNewConstMetric(c.addresses, prometheus.GaugeValue, float64(counts[s]), string(s))
		}
		ch <- prometheus.MustNewConstMetric(c.conflicts, prometheus.GaugeValue, float64(totals.Conflicts))
	}

	if summaries, err := c.source.SummarizeAll(ctx); err != nil {
		c.logger.Warn("metrics: subnet summaries failed", zap.Error(err))
	} else {
		for _, s := range summaries {
			subnet := s.Network.String()
			ch <- prometheus.MustNewConstMetric(c.subnetAddresses, prometheus.GaugeValue, float64(s.Total), subnet)
			ch <- prometheus.MustNewConstMetric(c.subnetUtilization, prometheus.GaugeValue, float64(s.UtilizationPercent), subnet)
		}
	}

	if scopes, err := c.source.ListScopes(ctx); err != nil {
		c.logger.Warn("metrics: scopes failed", zap.Error(err))
	} else {
		for _, s := range scopes {
			id := strconv.FormatInt(s.ID, 10)
			ch <- prometheus.MustNewConstMetric(c.scopeUtilization, prometheus.GaugeValue,
				float64(s.UtilizationPercent), id, s.Name, s.Subnet.String())
			ch <- prometheus.MustNewConstMetric(c.scopeLevel, prometheus.GaugeValue, 1, id, s.Name, string(s.Level))
		}
	}
}
