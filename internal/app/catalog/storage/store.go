package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/light-bringer/catalog-admin/internal/app/catalog/domain"
)

// DefaultKey is the storage key holding the product collection.
const DefaultKey = "ecommerce_products"

// ProductStore persists the product collection as a single JSON array under
// one key of a KV backend. It is the sole durable owner of product data.
type ProductStore struct {
	kv  KV
	key string
	log *zap.Logger
}

// NewProductStore creates a product store over the given backend.
func NewProductStore(kv KV, key string, log *zap.Logger) *ProductStore {
	if key == "" {
		key = DefaultKey
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ProductStore{kv: kv, key: key, log: log}
}

// Load returns the stored products. An empty or absent collection is seeded
// with the canonical catalog and persisted. Unparseable data is discarded and
// reseeded; that recovery is local and never surfaced to the caller. Legacy
// numeric timestamps are normalized to RFC 3339 strings and, if any value
// changed, the collection is rewritten.
func (s *ProductStore) Load(ctx context.Context) ([]domain.Product, error) {
	raw, found, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	if !found {
		return s.seed(ctx)
	}

	var records []record
	if err := json.Unmarshal(raw, &records); err != nil {
		return s.reseedCorrupt(ctx, err)
	}

	products := make([]domain.Product, 0, len(records))
	normalized := false
	for _, rec := range records {
		p, norm, err := rec.toDomain()
		if err != nil {
			return s.reseedCorrupt(ctx, err)
		}
		normalized = normalized || norm
		products = append(products, p)
	}

	if len(products) == 0 {
		return s.seed(ctx)
	}

	if normalized {
		s.log.Info("normalized legacy timestamps, rewriting storage", zap.String("key", s.key))
		if err := s.Save(ctx, products); err != nil {
			return nil, err
		}
	}

	return products, nil
}

// Save overwrites the entire collection. The write is atomic within the
// backend's model: readers never observe a partial collection.
func (s *ProductStore) Save(ctx context.Context, products []domain.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageFailure, err)
	}
	if err := s.kv.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageFailure, err)
	}
	return nil
}

// Reset discards whatever is stored and persists the canonical seed catalog.
func (s *ProductStore) Reset(ctx context.Context) ([]domain.Product, error) {
	if err := s.kv.Delete(ctx, s.key); err != nil {
		return nil, fmt.Errorf("failed to clear products: %w", err)
	}
	return s.seed(ctx)
}

func (s *ProductStore) seed(ctx context.Context) ([]domain.Product, error) {
	products := SeedProducts()
	if err := s.Save(ctx, products); err != nil {
		return nil, err
	}
	s.log.Info("seeded initial catalog", zap.String("key", s.key), zap.Int("count", len(products)))
	return products, nil
}

// reseedCorrupt clears the corrupt entry and starts over from the seed set.
// The parse error is logged, never returned.
func (s *ProductStore) reseedCorrupt(ctx context.Context, cause error) ([]domain.Product, error) {
	s.log.Warn("discarding corrupt product data", zap.String("key", s.key), zap.Error(cause))
	if err := s.kv.Delete(ctx, s.key); err != nil {
		return nil, fmt.Errorf("failed to clear corrupt data: %w", err)
	}
	return s.seed(ctx)
}
