package config

import (
	"strings"
	"time"
)

// RedisConfig contains Redis connection configuration for the dashboard cache.
type RedisConfig struct {
	Enabled  bool   `env:"ENABLED"  envDefault:"false"`
	Addr     string `env:"ADDR"     envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB"       envDefault:"0"`
}

// Sanitize disables the cache when no address is configured.
func (c *RedisConfig) Sanitize() {
	c.Addr = strings.TrimSpace(c.Addr)
	if c.Addr == "" {
		c.Enabled = false
	}
	if c.DB < 0 {
		c.DB = 0
	}
}

// CacheConfig contains cache TTL configuration.
type CacheConfig struct {
	// DashboardTTL is how long an aggregated dashboard snapshot is reused.
	// Zero disables snapshot caching.
	DashboardTTL time.Duration `env:"DASHBOARD_CACHE_TTL" envDefault:"30s"`
}

// Sanitize applies guardrails to cache configuration values.
func (c *CacheConfig) Sanitize() {
	if c.DashboardTTL < 0 {
		c.DashboardTTL = 0
	}
}
