// Package config defines process configuration and its loading order.
//
// Configuration layers, lowest precedence first: built-in defaults, an
// optional YAML file named by ARENA_CONFIG, then ARENA_-prefixed
// environment variables.
package config

// Config contains process configuration
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8000".
	Addr string `koanf:"addr"`

	// StorageType selects the storage backend: memory or redis.
	StorageType string `koanf:"storage_type"`

	// RedisURL is the connection URL when StorageType is redis.
	RedisURL string `koanf:"redis_url"`

	// RedisPoolSize and RedisMinIdleConns tune the redis connection pool.
	RedisPoolSize     int `koanf:"redis_pool_size"`
	RedisMinIdleConns int `koanf:"redis_min_idle_conns"`

	// JWTSecret signs session tokens. Override it in any real deployment.
	JWTSecret string `koanf:"jwt_secret"`

	// SessionDurationHours sets how long an issued session token lives.
	SessionDurationHours int `koanf:"session_duration_hours"`

	// BcryptCost sets the password hashing cost. Zero means the bcrypt
	// library default.
	BcryptCost int `koanf:"bcrypt_cost"`

	// ChallengeTTLMinutes bounds how long a generated challenge stays
	// answerable.
	ChallengeTTLMinutes int `koanf:"challenge_ttl_minutes"`
}

// New creates a Config holding the built-in defaults
func New() *Config {
	return &Config{
		LogLevel:             "info",
		Addr:                 ":8000",
		StorageType:          "memory",
		RedisURL:             "redis://localhost:6379",
		RedisPoolSize:        10,
		RedisMinIdleConns:    2,
		JWTSecret:            "your-secret-key-change-in-production",
		SessionDurationHours: 24,
		BcryptCost:           0,
		ChallengeTTLMinutes:  60,
	}
}
