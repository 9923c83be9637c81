package factory

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/anvitha1105/Capstone-finalreview/internal/dependencies/clock"
	"github.com/anvitha1105/Capstone-finalreview/internal/dependencies/random"
	"github.com/anvitha1105/Capstone-finalreview/internal/metrics"
	"github.com/anvitha1105/Capstone-finalreview/internal/services/auth"
	"github.com/anvitha1105/Capstone-finalreview/internal/services/baseline"
	"github.com/anvitha1105/Capstone-finalreview/internal/services/games"
	"github.com/anvitha1105/Capstone-finalreview/internal/services/scores"
	"github.com/anvitha1105/Capstone-finalreview/internal/storage"
	"github.com/anvitha1105/Capstone-finalreview/internal/storage/memory"
	redisstorage "github.com/anvitha1105/Capstone-finalreview/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	AuthService   *auth.Service
	Baselines     *baseline.Comparator
	GamesService  *games.Service
	ScoresService *scores.Service

	// Observability
	Metrics *metrics.Metrics
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service (optional)
	// Zero-value fields fall back to the auth package defaults
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// ChallengeTTL bounds how long the memory backend keeps a generated
	// challenge (optional, defaults to one hour). The redis backend takes
	// its TTL from RedisConfig.
	ChallengeTTL time.Duration
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	clk := clock.New()
	rnd := random.New()

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		challengeTTL := cfg.ChallengeTTL
		if challengeTTL <= 0 {
			challengeTTL = time.Hour
		}
		store = memory.New(clk, challengeTTL)
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// auth.New fills in defaults for zero-value fields
	return newWithDependencies(store, clk, rnd, cfg.AuthConfig, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, authCfg auth.Config, logger *slog.Logger) *App {
	comparator := baseline.New(baseline.Defaults())
	authService := auth.New(store, clk, authCfg, logger)
	gamesService := games.New(store, rnd, clk, logger)
	scoresService := scores.New(store, comparator, clk, logger)
	m := metrics.New()

	return &App{
		Storage:       store,
		Clock:         clk,
		Random:        rnd,
		AuthService:   authService,
		Baselines:     comparator,
		GamesService:  gamesService,
		ScoresService: scoresService,
		Metrics:       m,
	}
}
