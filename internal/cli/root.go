package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mwhitfield/clubstore/internal/factory"
	redisstorage "github.com/mwhitfield/clubstore/internal/storage/redis"
)

var (
	cfg *Config
	app *factory.App
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	loaded, err := LoadConfig()
	if err != nil {
		loaded = &Config{StorageType: factory.StorageTypeMemory, Output: "text"}
	}
	cfg = loaded

	rootCmd := &cobra.Command{
		Use:   "clubstore",
		Short: "Local club data store",
		Long: `clubstore manages the club's local data store: teams, players,
events, announcements and user accounts, backed by a key-value store.

Collections are seeded with baseline sample data on first run.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelWarn,
			}))

			factoryCfg := factory.Config{
				StorageType: cfg.StorageType,
				Logger:      logger,
			}
			if cfg.StorageType == factory.StorageTypeRedis {
				redisCfg := redisstorage.DefaultConfig()
				redisCfg.URL = cfg.RedisURL
				factoryCfg.RedisConfig = &redisCfg
			}

			app, err = factory.New(factoryCfg)
			if err != nil {
				return err
			}

			// Baseline data must exist before any read
			return app.Seeder.Initialize(cmd.Context())
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.StorageType, "storage", cfg.StorageType, "Storage backend: memory, redis (env: CLUBSTORE_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL (env: CLUBSTORE_REDIS_URL)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")

	// Add subcommands
	rootCmd.AddCommand(newSeedCmd())
	rootCmd.AddCommand(newTeamCmd())
	rootCmd.AddCommand(newPlayerCmd())
	rootCmd.AddCommand(newEventCmd())
	rootCmd.AddCommand(newAnnouncementCmd())
	rootCmd.AddCommand(newUserCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
