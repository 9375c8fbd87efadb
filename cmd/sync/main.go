package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"tienda/internal/catalog"
	"tienda/internal/config"
	"tienda/internal/db"
	"tienda/internal/logger"
	"tienda/internal/repository"
	"tienda/internal/sync"
	"tienda/internal/vendorapi"
)

// go run cmd/sync/main.go
// Corre una sincronización completa y termina. Pensado para cron.
func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	ctx := context.Background()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("failed to connect to Postgres", zap.Error(err))
	}
	defer pool.Close()

	repo := &repository.CatalogRepository{DB: pool}

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

	summary, err := pipeline.Run(ctx)
	if err != nil {
		zlog.Error("catalog sync failed", zap.Error(err))
		os.Exit(1)
	}

	fmt.Printf("created=%d updated=%d uniqueSkus=%d failedSkus=%d failedSources=%d\n",
		summary.Created, summary.Updated, summary.UniqueSKUs,
		len(summary.FailedSKUs), len(summary.FailedSources))
}
