package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"bizfinder/internal/config"
	"bizfinder/internal/finder"
	"bizfinder/internal/geocode"
	"bizfinder/internal/handlers"
	"bizfinder/internal/metrics"
	"bizfinder/internal/overpass"
	"bizfinder/internal/server"
	"bizfinder/internal/store"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	logger := newLogger(cfg)
	defer logger.Sync() //nolint:errcheck
	zap.ReplaceGlobals(logger)

	// Load optional YAML configuration
	yamlCfg, err := config.LoadYAMLConfig(cfg.ConfigFile)
	if err != nil {
		logger.Fatal("failed to load config file", zap.String("path", cfg.ConfigFile), zap.Error(err))
	}
	if err := cfg.ApplyYAML(yamlCfg); err != nil {
		logger.Fatal("invalid config file", zap.String("path", cfg.ConfigFile), zap.Error(err))
	}

	known, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to open known-id store", zap.String("backend", cfg.StoreBackend), zap.Error(err))
	}
	defer closeStore()

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	geocoder := geocode.NewNominatimClient(
		geocode.WithBaseURL(cfg.NominatimURL),
		geocode.WithHTTPClient(httpClient),
		geocode.WithUserAgent(cfg.UserAgent),
	)
	places := overpass.NewClient(
		overpass.WithURL(cfg.OverpassURL),
		overpass.WithHTTPClient(httpClient),
		overpass.WithUserAgent(cfg.UserAgent),
		overpass.WithQueryTimeout(cfg.Search.OverpassTimeout),
	)

	metrics.Init()

	svc := finder.NewService(geocoder, places, known)
	srv := server.New(cfg, "./views", "./static")
	srv.RegisterRoutes(svc, handlers.NewState())

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			logger.Error("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	if err := srv.Shutdown(); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}
	logger.Info("server exited")
}

func newLogger(cfg *config.Config) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.IsDev() {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	return logger
}

// openStore opens the configured known-id store. The returned func releases
// its resources.
func openStore(ctx context.Context, cfg *config.Config) (store.Store, func(), error) {
	noop := func() {}

	switch cfg.StoreBackend {
	case config.StoreFile:
		zap.L().Info("using file store", zap.String("path", cfg.KnownIDsFile))
		return store.NewFileStore(cfg.KnownIDsFile), noop, nil

	case config.StoreMemory:
		zap.L().Warn("using in-memory store; known ids are lost on restart")
		return store.NewMemoryStore(), noop, nil

	case config.StoreRedis:
		kv, err := store.NewRedisStore(cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		zap.L().Info("using redis store", zap.String("key", store.DefaultKey))
		return kv, noop, nil

	case config.StorePostgres:
		pool, err := store.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := store.RunMigrations(cfg.DatabaseURL); err != nil {
			pool.Close()
			return nil, nil, err
		}
		zap.L().Info("migrations completed successfully")
		return store.NewPostgresStore(pool), pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
