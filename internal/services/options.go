package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/light-bringer/catalog-admin/internal/app/catalog/repo"
	"github.com/light-bringer/catalog-admin/internal/app/catalog/selectors"
	"github.com/light-bringer/catalog-admin/internal/app/catalog/state"
	"github.com/light-bringer/catalog-admin/internal/app/catalog/storage"
	"github.com/light-bringer/catalog-admin/internal/config"
	"github.com/light-bringer/catalog-admin/internal/pkg/clock"
	transport "github.com/light-bringer/catalog-admin/internal/transport/http"
)

// ServiceOptions holds all wired application dependencies.
type ServiceOptions struct {
	ProductStore *storage.ProductStore
	Repository   *repo.Repository
	StateStore   *state.Store
	View         *selectors.View
	Handler      *transport.Handler

	redis *storage.RedisKV
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg *config.Config, log *zap.Logger) (*ServiceOptions, error) {
	opts := &ServiceOptions{}

	// 1. Pick the KV backend
	var kv storage.KV
	switch cfg.StorageBackend {
	case config.BackendRedis:
		rkv, err := storage.NewRedisKV(ctx, cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize redis backend: %w", err)
		}
		opts.redis = rkv
		kv = rkv
	default:
		fkv, err := storage.NewFileKV(cfg.StorageDir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize file backend: %w", err)
		}
		kv = fkv
	}

	// 2. Persistence store and repository
	opts.ProductStore = storage.NewProductStore(kv, cfg.StorageKey, log)
	opts.Repository = repo.New(opts.ProductStore, clock.NewRealClock(), cfg.Latency)

	// 3. State container and derived view
	opts.StateStore = state.NewStore(opts.Repository)
	opts.View = selectors.NewView()

	// 4. HTTP handler
	opts.Handler = transport.NewHandler(opts.StateStore, opts.View, log)

	return opts, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() error {
	if s.redis != nil {
		return s.redis.Close()
	}
	return nil
}
