// Command seed resets the persisted catalog to the canonical sample products.
package main

import (
	"context"
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/light-bringer/catalog-admin/internal/config"
	"github.com/light-bringer/catalog-admin/internal/pkg/logger"
	"github.com/light-bringer/catalog-admin/internal/services"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	zlog, err := logger.New(cfg.Env)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer zlog.Sync()

	opts, err := services.NewServiceOptions(ctx, cfg, zlog)
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer opts.Close()

	products, err := opts.ProductStore.Reset(ctx)
	if err != nil {
		return fmt.Errorf("failed to reset catalog: %w", err)
	}

	zlog.Info("catalog reset to seed products",
		zap.String("backend", cfg.StorageBackend),
		zap.Int("count", len(products)),
	)
	return nil
}
