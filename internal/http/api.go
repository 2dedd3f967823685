package http

import (
	"context"
	"net/http"
	"net/netip"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/Flarenzy/simple-ipam/internal/auth"
	"github.com/Flarenzy/simple-ipam/internal/domain"
	"github.com/Flarenzy/simple-ipam/internal/metrics"
)

// HealthChecker reports whether the backing store can serve requests.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
	// TrustedProxies lists the peers allowed to set X-Forwarded-For.
	// When empty the header is ignored and buckets key on the peer address.
	TrustedProxies []netip.Prefix
}

type API struct {
	logger        *zap.Logger
	health        HealthChecker
	service       domain.IPAMService
	authenticator auth.Authenticator

	metrics   *metrics.HTTP
	gatherer  prometheus.Gatherer
	rateLimit RateLimitConfig
}

type Option func(*API)

// WithMetrics records request metrics on m and serves g at /metrics.
func WithMetrics(m *metrics.HTTP, g prometheus.Gatherer) Option {
	return func(a *API) {
		a.metrics = m
		a.gatherer = g
	}
}

// WithRateLimit enables the per-client limiter. A zero rps disables it.
func WithRateLimit(cfg RateLimitConfig) Option {
	return func(a *API) {
		a.rateLimit = cfg
	}
}

// NewAPI wires the handlers. A nil authenticator leaves every route open.
func NewAPI(logger *zap.Logger, health HealthChecker, service domain.IPAMService, authenticator auth.Authenticator, opts ...Option) *API {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &API{
		logger:        logger,
		health:        health,
		service:       service,
		authenticator: authenticator,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *API) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", a.handleHealthz)
	mux.HandleFunc("GET /readyz", a.handleReadyz)
	if a.gatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(a.gatherer, promhttp.HandlerOpts{}))
	}
	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	mux.HandleFunc("GET /api/v1/calculator", a.handleCalculate)
	mux.HandleFunc("GET /api/v1/stats", a.handleGetStats)
	mux.HandleFunc("GET /api/v1/summaries", a.handleGetSummaries)

	mux.HandleFunc("GET /api/v1/subnets", a.handleGetAllSubnets)
	mux.HandleFunc("POST /api/v1/subnets", a.handleCreateSubnet)
	mux.HandleFunc("GET /api/v1/subnets/{id}", a.handleGetSubnetByID)
	mux.HandleFunc("DELETE /api/v1/subnets/{id}", a.handleDeleteSubnetByID)
	mux.HandleFunc("GET /api/v1/subnets/{id}/summary", a.handleGetSubnetSummary)
	mux.HandleFunc("GET /api/v1/subnets/{id}/ips", a.handleGetIPsBySubnetID)
	mux.HandleFunc("POST /api/v1/subnets/{id}/ips", a.handleCreateIPBySubnetID)

	mux.HandleFunc("GET /api/v1/ips", a.handleGetIPsByCIDR)
	mux.HandleFunc("DELETE /api/v1/ips", a.handleResetIPs)
	mux.HandleFunc("GET /api/v1/ips/{ip}", a.handleGetIP)
	mux.HandleFunc("PUT /api/v1/ips/{ip}", a.handlePutIP)
	mux.HandleFunc("DELETE /api/v1/ips/{ip}", a.handleDeleteIP)
	mux.HandleFunc("POST /api/v1/ips/{ip}/claims", a.handleClaimIP)

	mux.HandleFunc("GET /api/v1/conflicts", a.handleGetConflicts)
	mux.HandleFunc("POST /api/v1/conflicts/{ip}/resolve", a.handleResolveConflict)

	mux.HandleFunc("GET /api/v1/scopes", a.handleGetScopes)
	mux.HandleFunc("POST /api/v1/scopes", a.handleCreateScope)
	mux.HandleFunc("PUT /api/v1/scopes/{id}/allocation", a.handleSetScopeAllocation)
	mux.HandleFunc("DELETE /api/v1/scopes/{id}", a.handleDeleteScope)

	mux.HandleFunc("GET /api/v1/export.csv", a.handleExportCSV)
	mux.HandleFunc("POST /api/v1/import", a.handleImportCSV)
	mux.HandleFunc("GET /api/v1/import/template", a.handleImportTemplate)

	quiet := []string{"/healthz", "/readyz", "/metrics"}
	mw := []Middleware{
		RequestIDMiddleware,
		RecoveryMiddleware(a.logger),
		LoggingMiddleware(a.logger, a.metrics, mux, quiet),
	}
	if a.rateLimit.RPS > 0 {
		mw = append(mw, RateLimitMiddleware(a.rateLimit, quiet, a.metrics))
	}
	mw = append(mw, a.authMiddleware)

	return Chain(mux, mw...)
}
