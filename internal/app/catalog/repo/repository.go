package repo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/light-bringer/catalog-admin/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-admin/internal/app/catalog/storage"
	"github.com/light-bringer/catalog-admin/internal/pkg/clock"
)

// Repository is the async facade over the product store. Every operation
// first waits the configured simulated latency, then performs a whole
// collection read-modify-write against the store. It does not validate
// business rules; that belongs to the presentation edge.
type Repository struct {
	store   *storage.ProductStore
	clock   clock.Clock
	latency time.Duration
}

// New creates a repository. A zero latency disables the simulated delay,
// which is what tests want.
func New(store *storage.ProductStore, clk clock.Clock, latency time.Duration) *Repository {
	return &Repository{
		store:   store,
		clock:   clk,
		latency: latency,
	}
}

// List returns all stored products in insertion order.
func (r *Repository) List(ctx context.Context) ([]domain.Product, error) {
	if err := r.clock.Sleep(ctx, r.latency); err != nil {
		return nil, err
	}
	return r.store.Load(ctx)
}

// Get returns the product with the given id. Absence is reported through the
// bool, not as an error.
func (r *Repository) Get(ctx context.Context, id string) (domain.Product, bool, error) {
	if err := r.clock.Sleep(ctx, r.latency); err != nil {
		return domain.Product{}, false, err
	}

	products, err := r.store.Load(ctx)
	if err != nil {
		return domain.Product{}, false, err
	}

	for _, p := range products {
		if p.ID == id {
			return p, true, nil
		}
	}
	return domain.Product{}, false, nil
}

// Create appends a new product built from the input, assigning a fresh id and
// setting both timestamps to now.
func (r *Repository) Create(ctx context.Context, input domain.ProductInput) (domain.Product, error) {
	if err := r.clock.Sleep(ctx, r.latency); err != nil {
		return domain.Product{}, err
	}

	products, err := r.store.Load(ctx)
	if err != nil {
		return domain.Product{}, err
	}

	now := r.clock.Now()
	product := input.Apply(domain.Product{
		ID:        r.newID(now),
		CreatedAt: now,
		UpdatedAt: now,
	})

	products = append(products, product)
	if err := r.store.Save(ctx, products); err != nil {
		return domain.Product{}, err
	}

	return product, nil
}

// Update merges the input onto the stored product, preserving id and
// createdAt and stamping a new updatedAt.
func (r *Repository) Update(ctx context.Context, id string, input domain.ProductInput) (domain.Product, error) {
	if err := r.clock.Sleep(ctx, r.latency); err != nil {
		return domain.Product{}, err
	}

	products, err := r.store.Load(ctx)
	if err != nil {
		return domain.Product{}, err
	}

	for i, p := range products {
		if p.ID != id {
			continue
		}

		updated := input.Apply(p)
		updated.UpdatedAt = r.clock.Now()
		products[i] = updated

		if err := r.store.Save(ctx, products); err != nil {
			return domain.Product{}, err
		}
		return updated, nil
	}

	return domain.Product{}, domain.ErrProductNotFound
}

// Delete removes the product with the given id. The stored collection is
// untouched when the id is absent.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.clock.Sleep(ctx, r.latency); err != nil {
		return err
	}

	products, err := r.store.Load(ctx)
	if err != nil {
		return err
	}

	remaining := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			remaining = append(remaining, p)
		}
	}

	if len(remaining) == len(products) {
		return domain.ErrProductNotFound
	}

	return r.store.Save(ctx, remaining)
}

// newID composes an identifier from the current time and random entropy.
// Collisions are treated as negligible, matching the persisted id format.
func (r *Repository) newID(now time.Time) string {
	entropy := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("product_%d_%s", now.UnixMilli(), entropy)
}
