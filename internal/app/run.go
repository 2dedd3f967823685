package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Flarenzy/simple-ipam/internal/auth"
	appdb "github.com/Flarenzy/simple-ipam/internal/db"
	sqlcdb "github.com/Flarenzy/simple-ipam/internal/db/sqlc"
	"github.com/Flarenzy/simple-ipam/internal/db/sqlite"
	"github.com/Flarenzy/simple-ipam/internal/domain"
	apihttp "github.com/Flarenzy/simple-ipam/internal/http"
	"github.com/Flarenzy/simple-ipam/internal/metrics"
	"github.com/Flarenzy/simple-ipam/internal/version"
)

// Run listens on cfg.Addr and serves until ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	listener, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Addr(), err)
	}
	return Serve(ctx, cfg, listener)
}

// Serve opens the store, loads state and serves on listener until ctx is
// cancelled. Startup failures are returned before the listener is used.
func Serve(ctx context.Context, cfg Config, listener net.Listener) error {
	logger, err := NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	trusted, err := cfg.trustedProxies()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	authenticator, err := newAuthenticator(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init auth: %w", err)
	}

	backend, err := openBackend(ctx, cfg)
	if err != nil {
		return err
	}
	defer backend.close()

	service, err := domain.NewIPAMService(ctx, backend.store)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}
	service = domain.NewLoggingIPAMService(logger, service)

	if cfg.ScopesFile != "" {
		if err := seedFromFile(ctx, service, cfg.ScopesFile, logger); err != nil {
			return err
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		metrics.NewCollector(service, logger),
	)

	api := apihttp.NewAPI(logger, backend.health, service, authenticator,
		apihttp.WithMetrics(metrics.NewHTTP(reg), reg),
		apihttp.WithRateLimit(apihttp.RateLimitConfig{
			RPS:            cfg.RateLimitRPS,
			Burst:          cfg.RateLimitBurst,
			TrustedProxies: trusted,
		}),
	)

	server := &http.Server{
		Handler:           api.Router(),
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}

	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 5 * time.Second
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("serving http",
			zap.String("addr", listener.Addr().String()),
			zap.String("driver", cfg.driver()),
			zap.Bool("auth", authenticator != nil),
			zap.String("version", version.Short()),
		)
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func newAuthenticator(ctx context.Context, cfg Config) (auth.Authenticator, error) {
	return auth.NewKeycloakAuthenticator(ctx, auth.Config{
		Enabled:  cfg.AuthEnabled,
		Issuer:   cfg.Issuer,
		JWKSURL:  cfg.JWKSURL,
		Audience: cfg.Audience,
	})
}

type backend struct {
	store  domain.Store
	health apihttp.HealthChecker
	close  func()
}

func openBackend(ctx context.Context, cfg Config) (backend, error) {
	switch cfg.driver() {
	case DriverMemory:
		return backend{close: func() {}}, nil

	case DriverSQLite:
		store, err := sqlite.New(cfg.DSN)
		if err != nil {
			return backend{}, fmt.Errorf("open sqlite %s: %w", cfg.DSN, err)
		}
		if err := store.CheckVersion(ctx, version.Version); err != nil {
			_ = store.Close()
			return backend{}, err
		}
		repos, err := sqlite.Repositories(ctx, store)
		if err != nil {
			_ = store.Close()
			return backend{}, err
		}
		return backend{
			store:  repos,
			health: store,
			close:  func() { _ = store.Close() },
		}, nil

	case DriverPostgres:
		pool, err := appdb.NewPool(ctx, cfg.DSN)
		if err != nil {
			return backend{}, err
		}
		if err := appdb.Migrate(ctx, pool); err != nil {
			pool.Close()
			return backend{}, err
		}
		queries := sqlcdb.New(pool)
		return backend{
			store: domain.Store{
				Addresses: appdb.NewAddressRepository(pool),
				Subnets:   appdb.NewSubnetRepository(queries),
				Scopes:    appdb.NewScopeRepository(queries),
			},
			health: pool,
			close:  pool.Close,
		}, nil

	default:
		return backend{}, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}
