package main

import (
	"context"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"tienda/internal/catalog"
	"tienda/internal/config"
	"tienda/internal/db"
	"tienda/internal/logger"
	"tienda/internal/observability"
	"tienda/internal/repository"
	"tienda/internal/server"
	"tienda/internal/sync"
	"tienda/internal/vendorapi"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	pool, err := db.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("failed to connect to Postgres", zap.Error(err))
	}
	defer pool.Close()

	repo := &repository.CatalogRepository{DB: pool}

	// With Redis the lock holds across replicas; without it the
	// in-process lock still serializes triggers hitting this instance.
	var lock sync.RunLock = &sync.LocalLock{}
	if cfg.RedisURL != "" {
		lock = &sync.RedisLock{Client: redis.NewClient(&redis.Options{Addr: cfg.RedisURL})}
	}

	pipeline := &sync.Pipeline{
		Config:  catalog.DefaultConfig(),
		Fetcher: vendorapi.NewClient(cfg.VendorAPIURL),
		Store:   repo,
		Lock:    lock,
		Runs:    repo,
		Log:     zlog,
	}

	observability.Start(cfg.MetricsPort)

	http.Handle("/internal/catalog/sync", server.SyncHandler(pipeline, cfg.SyncToken, zlog))

	zlog.Info("server listening",
		zap.String("port", cfg.HTTPPort),
		zap.String("metricsPort", cfg.MetricsPort))
	if err := http.ListenAndServe(":"+cfg.HTTPPort, nil); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
