package selectors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/catalog-admin/internal/app/catalog/state"
	"github.com/light-bringer/catalog-admin/internal/app/catalog/storage"
)

func defaultFilters() state.FiltersState {
	return state.FiltersState{PriceRange: state.PriceRange{Min: 0, Max: 10000}}
}

func TestFilter(t *testing.T) {
	items := storage.SeedProducts()

	t.Run("no active criteria passes everything", func(t *testing.T) {
		assert.Len(t, Filter(items, defaultFilters()), 6)
	})

	t.Run("search matches name case-insensitively", func(t *testing.T) {
		f := defaultFilters()
		f.SearchTerm = "iphone"
		got := Filter(items, f)
		require.Len(t, got, 1)
		assert.Equal(t, "iPhone 15 Pro", got[0].Name)
	})

	t.Run("search matches description too", func(t *testing.T) {
		f := defaultFilters()
		f.SearchTerm = "estrategia"
		got := Filter(items, f)
		require.Len(t, got, 1)
		assert.Equal(t, "El Arte de la Guerra", got[0].Name)
	})

	t.Run("category filter keeps exactly the one book", func(t *testing.T) {
		f := defaultFilters()
		f.Category = "Libros"
		got := Filter(items, f)
		require.Len(t, got, 1)
		assert.Equal(t, "El Arte de la Guerra", got[0].Name)
	})

	t.Run("price range is inclusive at both bounds", func(t *testing.T) {
		f := defaultFilters()
		f.PriceRange = state.PriceRange{Min: 19.99, Max: 29.99}
		got := Filter(items, f)
		require.Len(t, got, 2)
		assert.Equal(t, "Camiseta Premium", got[0].Name)
		assert.Equal(t, "El Arte de la Guerra", got[1].Name)
	})

	t.Run("inverted price range yields an empty set", func(t *testing.T) {
		f := defaultFilters()
		f.PriceRange = state.PriceRange{Min: 100, Max: 50}
		assert.Empty(t, Filter(items, f))
	})

	t.Run("stock presence filter", func(t *testing.T) {
		f := defaultFilters()
		inStock := false
		f.InStock = &inStock
		got := Filter(items, f)
		require.Len(t, got, 1)
		assert.Equal(t, "Zapatillas Running", got[0].Name)

		inStock = true
		assert.Len(t, Filter(items, f), 5)
	})

	t.Run("all predicates combine by conjunction", func(t *testing.T) {
		f := defaultFilters()
		f.SearchTerm = "con"
		f.Category = "Electrónicos"
		f.PriceRange = state.PriceRange{Min: 1000, Max: 1300}
		inStock := true
		f.InStock = &inStock

		got := Filter(items, f)
		require.Len(t, got, 1)
		assert.Equal(t, "iPhone 15 Pro", got[0].Name)
	})
}

func TestFilter_OrderIndependence(t *testing.T) {
	items := storage.SeedProducts()

	f := defaultFilters()
	f.SearchTerm = "o"
	f.PriceRange = state.PriceRange{Min: 10, Max: 1300}
	inStock := true
	f.InStock = &inStock

	preds := Predicates(f)
	want := Apply(items, preds...)

	permutations := [][]Predicate{
		{preds[3], preds[2], preds[1], preds[0]},
		{preds[1], preds[3], preds[0], preds[2]},
		{preds[2], preds[0], preds[3], preds[1]},
	}
	for _, perm := range permutations {
		assert.Equal(t, want, Apply(items, perm...))
	}
}

func TestComputeStats(t *testing.T) {
	items := storage.SeedProducts()
	stats := ComputeStats(items, 4)

	assert.Equal(t, 6, stats.Total)
	assert.Equal(t, 5, stats.InStock)
	assert.Equal(t, 1, stats.OutOfStock)
	assert.Equal(t, 4, stats.Filtered)
	assert.Equal(t, stats.Total, stats.InStock+stats.OutOfStock)

	want := 1199*15.0 + 1499*8 + 29.99*25 + 899*5 + 149.99*0 + 19.99*12
	assert.InDelta(t, want, stats.TotalValue, 0.001)
}

func TestCategoryList(t *testing.T) {
	items := storage.SeedProducts()
	assert.Equal(t, []string{"Deportes", "Electrónicos", "Hogar", "Libros", "Ropa"}, CategoryList(items))
	assert.Empty(t, CategoryList(nil))
}

func TestPriceBounds(t *testing.T) {
	t.Run("over the seed catalog", func(t *testing.T) {
		bounds := PriceBounds(storage.SeedProducts())
		assert.Equal(t, 19.99, bounds.Min)
		assert.Equal(t, 1499.0, bounds.Max)
	})

	t.Run("defaults when empty", func(t *testing.T) {
		assert.Equal(t, state.PriceRange{Min: 0, Max: 1000}, PriceBounds(nil))
	})
}

func TestView_Memoization(t *testing.T) {
	view := NewView()
	root := state.RootState{
		Products: state.ProductsState{Items: storage.SeedProducts(), Version: 1},
		Filters:  defaultFilters(),
	}

	first := view.Snapshot(root)
	assert.Len(t, first.Filtered, 6)

	t.Run("unchanged versions reuse the cached snapshot", func(t *testing.T) {
		again := view.Snapshot(root)
		assert.Same(t, &first.Filtered[0], &again.Filtered[0])
	})

	t.Run("filters change triggers recompute", func(t *testing.T) {
		root.Filters.Category = "Libros"
		root.Filters.Version++

		snap := view.Snapshot(root)
		require.Len(t, snap.Filtered, 1)
		assert.Equal(t, 6, snap.Stats.Total)
		assert.Equal(t, 1, snap.Stats.Filtered)
	})

	t.Run("products change triggers recompute", func(t *testing.T) {
		root.Products.Items = root.Products.Items[:3]
		root.Products.Version++

		snap := view.Snapshot(root)
		assert.Equal(t, 3, snap.Stats.Total)
	})
}
