package app

import (
	"errors"
	"fmt"
	"net/netip"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	LogLevel  string
	LogFormat string

	// Driver is inferred from DSN when empty: postgres with a DSN, memory
	// without one.
	Driver string
	DSN    string

	AuthEnabled bool
	Issuer      string
	Audience    string
	JWKSURL     string

	RateLimitRPS   float64
	RateLimitBurst int
	// TrustedProxies holds CIDRs or bare addresses of reverse proxies whose
	// X-Forwarded-For header is believed.
	TrustedProxies []string

	ScopesFile string
}

func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c Config) driver() string {
	if c.Driver != "" {
		return c.Driver
	}
	if c.DSN != "" {
		return DriverPostgres
	}
	return DriverMemory
}

// LoadConfig reads defaults, then the optional YAML file, then IPAM_*
// environment variables. DB_CONN and PORT are still honoured.
func LoadConfig(configPath string) (Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 4040)
	v.SetDefault("server.read_timeout", "3s")
	v.SetDefault("server.write_timeout", "10s")
	v.SetDefault("server.shutdown_timeout", "5s")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("database.driver", "")
	v.SetDefault("database.dsn", "")
	v.SetDefault("auth.enabled", false)
	v.SetDefault("auth.issuer", "")
	v.SetDefault("auth.audience", "")
	v.SetDefault("auth.jwks_url", "")
	v.SetDefault("ratelimit.rps", 0)
	v.SetDefault("ratelimit.burst", 20)
	v.SetDefault("ratelimit.trusted_proxies", []string{})
	v.SetDefault("scopes.file", "")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("ipamd")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/ipamd")
	}

	// IPAM_SERVER_PORT=9090
	v.SetEnvPrefix("IPAM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("database.dsn", "IPAM_DATABASE_DSN", "DB_CONN")
	_ = v.BindEnv("server.port", "IPAM_SERVER_PORT", "PORT")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := Config{
		Host:            v.GetString("server.host"),
		Port:            v.GetInt("server.port"),
		ReadTimeout:     v.GetDuration("server.read_timeout"),
		WriteTimeout:    v.GetDuration("server.write_timeout"),
		ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		LogLevel:        v.GetString("logging.level"),
		LogFormat:       v.GetString("logging.format"),
		Driver:          strings.ToLower(v.GetString("database.driver")),
		DSN:             v.GetString("database.dsn"),
		AuthEnabled:     v.GetBool("auth.enabled"),
		Issuer:          v.GetString("auth.issuer"),
		Audience:        v.GetString("auth.audience"),
		JWKSURL:         v.GetString("auth.jwks_url"),
		RateLimitRPS:    v.GetFloat64("ratelimit.rps"),
		RateLimitBurst:  v.GetInt("ratelimit.burst"),
		TrustedProxies:  splitList(v.GetStringSlice("ratelimit.trusted_proxies")),
		ScopesFile:      v.GetString("scopes.file"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Port < 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d out of range", c.Port))
	}
	switch c.driver() {
	case DriverMemory:
	case DriverSQLite, DriverPostgres:
		if c.DSN == "" {
			errs = append(errs, fmt.Errorf("database.dsn is required for driver %q", c.driver()))
		}
	default:
		errs = append(errs, fmt.Errorf("database.driver %q must be memory, sqlite or postgres", c.Driver))
	}
	if c.AuthEnabled && c.Issuer == "" {
		errs = append(errs, errors.New("auth.issuer is required when auth is enabled"))
	}
	if c.RateLimitRPS < 0 {
		errs = append(errs, fmt.Errorf("ratelimit.rps %v must not be negative", c.RateLimitRPS))
	}
	if _, err := c.trustedProxies(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (c Config) trustedProxies() ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(c.TrustedProxies))
	for _, entry := range c.TrustedProxies {
		if strings.Contains(entry, "/") {
			p, err := netip.ParsePrefix(entry)
			if err != nil {
				return nil, fmt.Errorf("ratelimit.trusted_proxies: %w", err)
			}
			prefixes = append(prefixes, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(entry)
		if err != nil {
			return nil, fmt.Errorf("ratelimit.trusted_proxies: %w", err)
		}
		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return prefixes, nil
}

// splitList accepts both YAML lists and comma separated env values.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
