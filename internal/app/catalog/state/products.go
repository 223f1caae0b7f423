package state

import "github.com/light-bringer/catalog-admin/internal/app/catalog/domain"

// LoadStatus is the tri-state progress of the slice's async operations, plus
// the initial idle state.
type LoadStatus string

const (
	StatusIdle      LoadStatus = "idle"
	StatusPending   LoadStatus = "pending"
	StatusFulfilled LoadStatus = "fulfilled"
	StatusRejected  LoadStatus = "rejected"
)

// ProductsState is the cached product list plus its load status. Items keeps
// insertion order. Version increments on every transition of this slice and
// keys the derived view's memoization.
type ProductsState struct {
	Items    []domain.Product
	Loading  LoadStatus
	Error    string
	Selected *domain.Product
	Version  uint64
}

func initialProductsState() ProductsState {
	return ProductsState{
		Items:   nil,
		Loading: StatusIdle,
	}
}

// reduceProducts applies a products-slice action. Actions belonging to other
// slices pass through unchanged.
func reduceProducts(s ProductsState, a Action) ProductsState {
	switch a := a.(type) {
	case FetchPending:
		s.Loading = StatusPending
		s.Error = ""
	case FetchFulfilled:
		s.Loading = StatusFulfilled
		s.Items = append([]domain.Product(nil), a.Items...)
	case FetchRejected:
		s.Loading = StatusRejected
		s.Error = a.Err
	case CreatePending:
		s.Loading = StatusPending
	case CreateFulfilled:
		s.Loading = StatusFulfilled
		items := make([]domain.Product, 0, len(s.Items)+1)
		items = append(items, s.Items...)
		s.Items = append(items, a.Product)
	case CreateRejected:
		s.Loading = StatusRejected
		s.Error = a.Err
	case UpdatePending:
		s.Loading = StatusPending
	case UpdateFulfilled:
		s.Loading = StatusFulfilled
		items := append([]domain.Product(nil), s.Items...)
		for i := range items {
			if items[i].ID == a.Product.ID {
				items[i] = a.Product
				break
			}
		}
		s.Items = items
	case UpdateRejected:
		s.Loading = StatusRejected
		s.Error = a.Err
	case DeletePending:
		s.Loading = StatusPending
	case DeleteFulfilled:
		s.Loading = StatusFulfilled
		items := make([]domain.Product, 0, len(s.Items))
		for _, p := range s.Items {
			if p.ID != a.ID {
				items = append(items, p)
			}
		}
		s.Items = items
	case DeleteRejected:
		s.Loading = StatusRejected
		s.Error = a.Err
	case SetSelected:
		if a.Product != nil {
			p := *a.Product
			s.Selected = &p
		} else {
			s.Selected = nil
		}
	case ClearError:
		s.Error = ""
	case ResetProducts:
		v := s.Version
		s = initialProductsState()
		s.Version = v
	default:
		return s
	}

	s.Version++
	return s
}
