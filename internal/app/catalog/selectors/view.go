package selectors

import (
	"sync"

	"github.com/light-bringer/catalog-admin/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-admin/internal/app/catalog/state"
)

// Snapshot is the derived view model: read-only projections of the products
// and filters slices. Never a source of truth.
type Snapshot struct {
	Filtered    []domain.Product
	Stats       Stats
	Categories  []string
	PriceBounds state.PriceRange
}

// View memoizes the derived computations on the versions of the two input
// slices; a snapshot is recomputed only when either slice has changed.
type View struct {
	mu sync.Mutex

	valid           bool
	productsVersion uint64
	filtersVersion  uint64
	cached          Snapshot
}

// NewView creates an empty view.
func NewView() *View {
	return &View{}
}

// Snapshot returns the derived view for the given state, recomputing only if
// the products or filters slice changed since the last call.
func (v *View) Snapshot(root state.RootState) Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.valid &&
		v.productsVersion == root.Products.Version &&
		v.filtersVersion == root.Filters.Version {
		return v.cached
	}

	filtered := Filter(root.Products.Items, root.Filters)
	v.cached = Snapshot{
		Filtered:    filtered,
		Stats:       ComputeStats(root.Products.Items, len(filtered)),
		Categories:  CategoryList(root.Products.Items),
		PriceBounds: PriceBounds(root.Products.Items),
	}
	v.valid = true
	v.productsVersion = root.Products.Version
	v.filtersVersion = root.Filters.Version

	return v.cached
}
