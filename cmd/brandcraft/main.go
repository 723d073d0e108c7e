// Package main is the entry point for the BrandCraft command. It loads
// configuration, connects to services, and runs the server or one-shot
// generation and history commands.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"brandcraft/internal/ai"
	"brandcraft/internal/cache"
	"brandcraft/internal/config"
	"brandcraft/internal/database"
	"brandcraft/internal/fallback"
	"brandcraft/internal/generator"
	"brandcraft/internal/storage"
	"brandcraft/internal/store"
)

var envFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "brandcraft",
	Short: "Generate brand identities from a one-line business idea.",
	Long: `BrandCraft turns a short business description into brand names, a tagline,
a description, a color palette, a logo prompt and an Instagram bio.

A hosted language model is used when HUGGINGFACE_API_KEY is set; otherwise,
or whenever the model fails, a built-in generator produces the bundle.`,
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "file with environment variables to load if present")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newLogHandler returns a text handler for development and a JSON handler
// for every other environment, where logs are usually shipped somewhere.
func newLogHandler(w io.Writer, level slog.Level, dev bool) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if dev {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

// app holds the services shared by every command.
type app struct {
	cfg       *config.Config
	db        *sql.DB
	store     *store.GenerationStore
	valkey    *redis.Client
	history   *cache.HistoryCache
	archive   *storage.Client
	generator *generator.Service
}

// newApp loads configuration and connects to the database and, when
// configured, Valkey and object storage. Optional services that fail to
// connect are logged and skipped.
func newApp(logOut io.Writer) (*app, error) {
	cfg, err := config.LoadFrom(envFile)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	slog.SetDefault(slog.New(newLogHandler(logOut, cfg.SlogLevel(), cfg.IsDev())))

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"db_driver", cfg.DBDriver,
		"ai_configured", cfg.AIAPIKey != "",
	)

	db, err := database.Connect(cfg.DBDriver, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := database.Migrate(db, cfg.DBDriver); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	a := &app{cfg: cfg, db: db, store: store.NewGenerationStore(db)}

	if cfg.CacheEnabled() {
		client, err := cache.ConnectValkey(context.Background(), cfg.Valkey())
		if err != nil {
			slog.Warn("valkey unavailable, history cache disabled", "error", err)
		} else {
			a.valkey = client
			a.history = cache.NewHistoryCache(client, cfg.HistoryCacheTTL)
		}
	}

	a.archive, err = storage.New(cfg.Storage())
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("init s3 storage: %w", err)
	}
	if a.archive != nil {
		slog.Info("s3 archive enabled", "endpoint", cfg.S3Endpoint, "bucket", a.archive.Bucket())
	}

	var opts []generator.Option
	if a.history != nil {
		opts = append(opts, generator.WithHistoryInvalidator(a.history))
	}
	if a.archive != nil {
		opts = append(opts, generator.WithArchiver(a.archive))
	}
	a.generator = generator.New(ai.New(cfg.AI()), fallback.New(nil), a.store, opts...)

	return a, nil
}

// Close waits for background archive uploads and releases connections.
func (a *app) Close() {
	if a.generator != nil {
		a.generator.Wait()
	}
	if a.valkey != nil {
		a.valkey.Close()
	}
	a.db.Close()
}

// commandContext returns the command's context, or Background when cobra
// has none.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
