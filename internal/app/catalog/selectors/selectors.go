package selectors

import (
	"sort"
	"strings"

	"github.com/light-bringer/catalog-admin/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-admin/internal/app/catalog/state"
)

// Predicate is a single filter condition over a product. Predicates compose
// by conjunction and are independent of application order.
type Predicate func(domain.Product) bool

// SearchTerm matches the term case-insensitively against name or description.
// An empty term always passes.
func SearchTerm(term string) Predicate {
	if term == "" {
		return passAll
	}
	lower := strings.ToLower(term)
	return func(p domain.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), lower) ||
			strings.Contains(strings.ToLower(p.Description), lower)
	}
}

// Category matches the category exactly. An empty category always passes.
func Category(category string) Predicate {
	if category == "" {
		return passAll
	}
	return func(p domain.Product) bool {
		return p.Category == category
	}
}

// PriceBetween matches prices inside the inclusive range. An inverted range
// (min > max) matches nothing.
func PriceBetween(min, max float64) Predicate {
	return func(p domain.Product) bool {
		return p.Price >= min && p.Price <= max
	}
}

// StockPresence matches in-stock products when inStock is true and
// out-of-stock products when false. A nil filter always passes.
func StockPresence(inStock *bool) Predicate {
	if inStock == nil {
		return passAll
	}
	want := *inStock
	return func(p domain.Product) bool {
		return p.InStock() == want
	}
}

func passAll(domain.Product) bool { return true }

// Predicates expands the filter criteria into its four conditions.
func Predicates(f state.FiltersState) []Predicate {
	return []Predicate{
		SearchTerm(f.SearchTerm),
		Category(f.Category),
		PriceBetween(f.PriceRange.Min, f.PriceRange.Max),
		StockPresence(f.InStock),
	}
}

// Filter returns the products satisfying every active condition.
func Filter(items []domain.Product, f state.FiltersState) []domain.Product {
	return Apply(items, Predicates(f)...)
}

// Apply returns the products satisfying all given predicates.
func Apply(items []domain.Product, preds ...Predicate) []domain.Product {
	out := make([]domain.Product, 0, len(items))
	for _, p := range items {
		ok := true
		for _, pred := range preds {
			if !pred(p) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, p)
		}
	}
	return out
}

// Stats are aggregate counts over the unfiltered product set, plus the size
// of the current filtered view.
type Stats struct {
	Total      int     `json:"total"`
	InStock    int     `json:"inStock"`
	OutOfStock int     `json:"outOfStock"`
	Filtered   int     `json:"filtered"`
	TotalValue float64 `json:"totalValue"`
}

// ComputeStats aggregates over the unfiltered items; filteredCount is carried
// through for the view.
func ComputeStats(items []domain.Product, filteredCount int) Stats {
	s := Stats{Total: len(items), Filtered: filteredCount}
	for _, p := range items {
		if p.InStock() {
			s.InStock++
		} else {
			s.OutOfStock++
		}
		s.TotalValue += p.Price * float64(p.Stock)
	}
	return s
}

// CategoryList returns the distinct categories present in items,
// lexicographically sorted.
func CategoryList(items []domain.Product) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, p := range items {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out
}

// PriceBounds returns the min and max product price over the unfiltered set,
// or {0, 1000} when the set is empty.
func PriceBounds(items []domain.Product) state.PriceRange {
	if len(items) == 0 {
		return state.PriceRange{Min: 0, Max: 1000}
	}

	bounds := state.PriceRange{Min: items[0].Price, Max: items[0].Price}
	for _, p := range items[1:] {
		if p.Price < bounds.Min {
			bounds.Min = p.Price
		}
		if p.Price > bounds.Max {
			bounds.Max = p.Price
		}
	}
	return bounds
}
