package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mwhitfield/clubstore/internal/dependencies/clock"
	"github.com/mwhitfield/clubstore/internal/dependencies/random"
	"github.com/mwhitfield/clubstore/internal/repository"
	"github.com/mwhitfield/clubstore/internal/seed"
	"github.com/mwhitfield/clubstore/internal/services/auth"
	"github.com/mwhitfield/clubstore/internal/storage"
	"github.com/mwhitfield/clubstore/internal/storage/memory"
	redisstorage "github.com/mwhitfield/clubstore/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Store storage.Store

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Repositories and services
	Teams         *repository.Teams
	Players       *repository.Players
	Events        *repository.Events
	Announcements *repository.Announcements
	Auth          *auth.Service
	Seeder        *seed.Seeder
}

// Config holds configuration for the application factory
type Config struct {
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Store
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
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

	return newWithDependencies(store, clock.New(), random.New(), logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Store, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	return &App{
		Store:         store,
		Clock:         clk,
		Random:        rnd,
		Teams:         repository.NewTeams(store, rnd, logger),
		Players:       repository.NewPlayers(store, rnd, logger),
		Events:        repository.NewEvents(store, rnd, logger),
		Announcements: repository.NewAnnouncements(store, rnd, logger),
		Auth:          auth.New(store, clk, rnd, logger),
		Seeder:        seed.New(store, clk, logger),
	}
}
