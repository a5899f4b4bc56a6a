package config

import (
	"net"
	"strconv"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Order     OrderConfig     `yaml:"order"`
	Report    ReportConfig    `yaml:"report"`
	Log       LogConfig       `yaml:"log"`
	Tracing   TracingConfig   `yaml:"tracing"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	CORS      CORSConfig      `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	TrustProxy      bool          `yaml:"trust_proxy"      env:"SERVER_TRUST_PROXY"      env-default:"false"`
}

// Addr returns the listen address.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ApplicationName string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"bookstore-backend"`
}

// OrderConfig holds order placement settings. The attempt and delay values
// bound how long a CreateOrder call may retry on lock contention.
type OrderConfig struct {
	MaxLineItems   int           `yaml:"max_line_items"   env:"ORDER_MAX_LINE_ITEMS"   env-default:"100"`
	MaxTxAttempts  int           `yaml:"max_tx_attempts"  env:"ORDER_MAX_TX_ATTEMPTS"  env-default:"5"`
	RetryBaseDelay time.Duration `yaml:"retry_base_delay" env:"ORDER_RETRY_BASE_DELAY" env-default:"10ms"`
	RetryMaxDelay  time.Duration `yaml:"retry_max_delay"  env:"ORDER_RETRY_MAX_DELAY"  env-default:"200ms"`
	LockTimeout    time.Duration `yaml:"lock_timeout"     env:"ORDER_LOCK_TIMEOUT"     env-default:"2s"`
}

// ReportConfig holds reporting settings.
type ReportConfig struct {
	TimeZone string `yaml:"timezone"  env:"REPORT_TIMEZONE"  env-default:"UTC"`
	MaxTopN  int    `yaml:"max_top_n" env:"REPORT_MAX_TOP_N" env-default:"1000"`

	// Location is resolved from TimeZone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// TracingConfig holds OpenTelemetry settings. An empty endpoint disables tracing.
type TracingConfig struct {
	Endpoint    string `yaml:"endpoint"     env:"TRACING_ENDPOINT"`
	ServiceName string `yaml:"service_name" env:"TRACING_SERVICE_NAME" env-default:"bookstore-backend"`
}

// RateLimitConfig holds per-client request limits. Zero disables limiting.
type RateLimitConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_RPM"              env-default:"600"`
	Burst             int           `yaml:"burst"               env:"RATE_LIMIT_BURST"            env-default:"50"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// Enabled reports whether requests are rate limited.
func (c RateLimitConfig) Enabled() bool { return c.RequestsPerMinute > 0 }

// Enabled reports whether tracing export is configured.
func (c TracingConfig) Enabled() bool {
	return c.Endpoint != ""
}
