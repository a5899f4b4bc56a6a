package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required")
	}

	if err := c.Order.validate(); err != nil {
		return fmt.Errorf("order: %w", err)
	}

	if err := c.Report.validate(); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	if c.RateLimit.RequestsPerMinute < 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be >= 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}
	if c.RateLimit.Enabled() {
		if c.RateLimit.Burst <= 0 {
			return fmt.Errorf("rate_limit.burst must be > 0 when limiting is enabled (got %d)", c.RateLimit.Burst)
		}
		if c.RateLimit.CleanupInterval <= 0 {
			return fmt.Errorf("rate_limit.cleanup_interval must be > 0 when limiting is enabled (got %v)", c.RateLimit.CleanupInterval)
		}
	}

	return nil
}

func (o *OrderConfig) validate() error {
	if o.MaxLineItems <= 0 {
		return fmt.Errorf("max_line_items must be > 0 (got %d)", o.MaxLineItems)
	}
	if o.MaxTxAttempts < 1 {
		return fmt.Errorf("max_tx_attempts must be >= 1 (got %d)", o.MaxTxAttempts)
	}
	if o.RetryBaseDelay < 0 || o.RetryMaxDelay < o.RetryBaseDelay {
		return fmt.Errorf("retry delays must satisfy 0 <= base <= max (got %v, %v)", o.RetryBaseDelay, o.RetryMaxDelay)
	}
	if o.LockTimeout <= 0 {
		return fmt.Errorf("lock_timeout must be > 0 (got %v)", o.LockTimeout)
	}
	return nil
}

func (r *ReportConfig) validate() error {
	loc, err := ParseTimezone(r.TimeZone)
	if err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	r.Location = loc

	if r.MaxTopN <= 0 {
		return fmt.Errorf("max_top_n must be > 0 (got %d)", r.MaxTopN)
	}
	return nil
}

// ParseTimezone resolves an IANA zone name. An empty name means UTC.
func ParseTimezone(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid zone %q: %w", name, err)
	}
	return loc, nil
}
