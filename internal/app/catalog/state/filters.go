package state

// PriceRange is an inclusive price interval. Min > Max is not rejected; an
// inverted range yields an empty filtered set.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FiltersState is the active filter criteria. Transient, never persisted.
// InStock nil means no stock filter; true matches in-stock products, false
// matches out-of-stock ones. Version increments on every transition.
type FiltersState struct {
	SearchTerm string
	Category   string
	PriceRange PriceRange
	InStock    *bool
	Version    uint64
}

func initialFiltersState() FiltersState {
	return FiltersState{
		SearchTerm: "",
		Category:   "",
		PriceRange: PriceRange{Min: 0, Max: 10000},
		InStock:    nil,
	}
}

// reduceFilters applies a filters-slice action. Actions belonging to other
// slices pass through unchanged.
func reduceFilters(s FiltersState, a Action) FiltersState {
	switch a := a.(type) {
	case SetSearchTerm:
		s.SearchTerm = a.Term
	case SetCategory:
		s.Category = a.Category
	case SetPriceRange:
		s.PriceRange = PriceRange{Min: a.Min, Max: a.Max}
	case SetInStock:
		if a.InStock != nil {
			v := *a.InStock
			s.InStock = &v
		} else {
			s.InStock = nil
		}
	case ResetFilters:
		v := s.Version
		s = initialFiltersState()
		s.Version = v
	default:
		return s
	}

	s.Version++
	return s
}
