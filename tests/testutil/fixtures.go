package testutil

import (
	"testing"

	"go.uber.org/zap"

	"github.com/light-bringer/catalog-admin/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-admin/internal/app/catalog/repo"
	"github.com/light-bringer/catalog-admin/internal/app/catalog/storage"
	"github.com/light-bringer/catalog-admin/internal/pkg/clock"
)

// NewMemoryStore creates a product store over a fresh in-memory backend.
func NewMemoryStore(t *testing.T) *storage.ProductStore {
	t.Helper()
	return storage.NewProductStore(storage.NewMemoryKV(), storage.DefaultKey, zap.NewNop())
}

// NewFileStore creates a product store over a file backend in a temp dir.
func NewFileStore(t *testing.T) *storage.ProductStore {
	t.Helper()

	kv, err := storage.NewFileKV(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create file backend: %v", err)
	}
	return storage.NewProductStore(kv, storage.DefaultKey, zap.NewNop())
}

// NewRepository creates a repository with zero latency over the given store,
// so tests run synchronously.
func NewRepository(t *testing.T, store *storage.ProductStore, clk clock.Clock) *repo.Repository {
	t.Helper()
	return repo.New(store, clk, 0)
}

// ProductInput returns a valid input with overridable name.
func ProductInput(name string) domain.ProductInput {
	return domain.ProductInput{
		Name:        name,
		Description: "A testing widget device",
		Price:       49.99,
		Category:    "Electrónicos",
		Stock:       3,
	}
}

// BookInput returns a valid input in the Libros category.
func BookInput(name string) domain.ProductInput {
	return domain.ProductInput{
		Name:        name,
		Description: "Libro de pruebas para el catálogo",
		Price:       15.50,
		Category:    "Libros",
		Stock:       4,
	}
}
