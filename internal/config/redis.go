package config

import (
	"fmt"
	"time"
)

// RedisConfig holds configuration of the assignment configuration cache.
type RedisConfig struct {
	// URL is a redis:// connection URL. Empty disables caching.
	URL string
	// CacheTTL is how long a cached assignment configuration stays valid.
	CacheTTL time.Duration
}

// LoadRedisConfigFromEnv loads cache configuration from environment variables.
func LoadRedisConfigFromEnv() RedisConfig {
	return RedisConfig{
		URL:      GetEnv("REDIS_URL", ""),
		CacheTTL: GetEnvDuration("REDIS_CACHE_TTL", 5*time.Minute),
	}
}

// Enabled reports whether a Redis URL is configured.
func (c RedisConfig) Enabled() bool {
	return c.URL != ""
}

// Validate validates cache configuration.
func (c RedisConfig) Validate() error {
	if c.Enabled() && c.CacheTTL <= 0 {
		return fmt.Errorf("CacheTTL must be greater than 0 when REDIS_URL is set")
	}
	return nil
}
