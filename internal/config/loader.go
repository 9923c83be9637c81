package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, an optional file, and
// environment variables. Precedence, low to high:
//  1. defaults (New())
//  2. YAML file if ARENA_CONFIG is set
//  3. env vars (prefix ARENA_)
func Load() (*Config, error) {
	k := koanf.New(".")

	if path := os.Getenv("ARENA_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	// Env keys map flat: ARENA_STORAGE_TYPE -> storage_type
	envProvider := env.Provider("ARENA_", ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), "arena_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	cfg := *New()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	switch c.StorageType {
	case "memory", "redis":
	default:
		return fmt.Errorf("unknown storage type %q", c.StorageType)
	}
	if c.StorageType == "redis" && c.RedisURL == "" {
		return fmt.Errorf("redis_url must be set when storage_type is redis")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("jwt_secret must not be empty")
	}
	if c.SessionDurationHours <= 0 {
		return fmt.Errorf("session_duration_hours must be positive")
	}
	if c.BcryptCost < 0 || c.BcryptCost > 31 {
		return fmt.Errorf("bcrypt_cost %d out of range", c.BcryptCost)
	}
	if c.ChallengeTTLMinutes <= 0 {
		return fmt.Errorf("challenge_ttl_minutes must be positive")
	}
	return nil
}
