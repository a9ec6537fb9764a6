package cli

import (
	"context"
	"errors"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/rsharan/jyotish/internal/api"
	"github.com/rsharan/jyotish/internal/config"
	"github.com/rsharan/jyotish/pkg/cache"
	"github.com/rsharan/jyotish/pkg/store"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	configPath string // TOML config file; empty means defaults
	addr       string // overrides the configured listen address
}

// serveCommand creates the serve command running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the chart computation HTTP API",
		Long: `Serve the jyotish HTTP API. Charts are computed from JSON inputs,
cached by input hash (file or redis backend) and optionally persisted
to MongoDB for retrieval by ID.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "TOML configuration file")
	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (overrides config)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.addr != "" {
		cfg.Server.Addr = opts.addr
	}

	chartCache, err := buildCache(ctx, cfg.Cache)
	if err != nil {
		return err
	}
	defer chartCache.Close()

	var chartStore store.Store
	if cfg.Store.URI != "" {
		chartStore, err = store.NewMongoStore(ctx, store.MongoConfig{
			URI:        cfg.Store.URI,
			Database:   cfg.Store.Database,
			Collection: cfg.Store.Collection,
		})
		if err != nil {
			return err
		}
		defer chartStore.Close(context.Background())
	}

	// Scope API keys so the server can share a redis instance with
	// other deployments without key collisions.
	server := api.NewServer(api.Options{
		Cache:    chartCache,
		Keyer:    cache.NewScopedKeyer(cache.NewDefaultKeyer(), "api"),
		Store:    chartStore,
		CacheTTL: cfg.Cache.TTL.Duration,
		Logger:   c.Logger,
	})

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      server.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout.Duration,
		WriteTimeout: cfg.Server.WriteTimeout.Duration,
	}

	errc := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", cfg.Server.Addr)
		errc <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		c.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Duration)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return nil
	}
}

// buildCache constructs the configured cache backend.
func buildCache(ctx context.Context, cfg config.CacheConfig) (cache.Cache, error) {
	switch cfg.Backend {
	case "none":
		return cache.NewNullCache(), nil
	case "redis":
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	default: // "file"
		dir, err := cfg.CacheDir()
		if err != nil {
			return nil, err
		}
		return cache.NewFileCache(dir)
	}
}
