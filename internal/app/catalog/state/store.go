package state

import (
	"context"
	"sync"

	"github.com/light-bringer/catalog-admin/internal/app/catalog/domain"
)

// Repository is the product CRUD facade the store's async operations call.
// *repo.Repository satisfies it.
type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, input domain.ProductInput) (domain.Product, error)
	Update(ctx context.Context, id string, input domain.ProductInput) (domain.Product, error)
	Delete(ctx context.Context, id string) error
}

// RootState combines the three independent slices.
type RootState struct {
	Products ProductsState
	Filters  FiltersState
	UI       UIState
}

// Store is the single writable copy of application state. All mutation goes
// through Dispatch; reducer transitions are applied atomically in dispatch
// order, so no reader ever observes a partially applied transition.
//
// Stores are constructed per owner and injected, never process-wide, so
// multiple instances can coexist in tests.
type Store struct {
	repo Repository

	mu    sync.Mutex
	state RootState

	subMu       sync.Mutex
	subscribers map[int]func(RootState)
	nextSubID   int
}

// NewStore creates a store with initial slice states.
func NewStore(repo Repository) *Store {
	return &Store{
		repo: repo,
		state: RootState{
			Products: initialProductsState(),
			Filters:  initialFiltersState(),
			UI:       initialUIState(),
		},
		subscribers: make(map[int]func(RootState)),
	}
}

// Dispatch runs the action through every slice reducer and notifies
// subscribers with the resulting snapshot.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	s.state.Products = reduceProducts(s.state.Products, a)
	s.state.Filters = reduceFilters(s.state.Filters, a)
	s.state.UI = reduceUI(s.state.UI, a)
	snapshot := cloneState(s.state)
	s.mu.Unlock()

	s.notify(snapshot)
}

// State returns a snapshot of the current state. The snapshot is detached
// from the store; mutating it does not affect the store.
func (s *Store) State() RootState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneState(s.state)
}

// Subscribe registers fn to be called after every dispatch. The returned
// function unsubscribes.
func (s *Store) Subscribe(fn func(RootState)) func() {
	s.subMu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subscribers, id)
		s.subMu.Unlock()
	}
}

func (s *Store) notify(snapshot RootState) {
	s.subMu.Lock()
	fns := make([]func(RootState), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(snapshot)
	}
}

// FetchProducts loads the product list. Rejections are recorded in the
// products slice and also returned so the caller can present them; a stale
// fetch that resolves after a newer one still applies its transition
// (last-resolved-wins).
func (s *Store) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	s.Dispatch(FetchPending{})

	items, err := s.repo.List(ctx)
	if err != nil {
		s.Dispatch(FetchRejected{Err: err.Error()})
		return nil, err
	}

	s.Dispatch(FetchFulfilled{Items: items})
	return items, nil
}

// CreateProduct creates a product and appends it to the cached list.
func (s *Store) CreateProduct(ctx context.Context, input domain.ProductInput) (domain.Product, error) {
	s.Dispatch(CreatePending{})

	product, err := s.repo.Create(ctx, input)
	if err != nil {
		s.Dispatch(CreateRejected{Err: err.Error()})
		return domain.Product{}, err
	}

	s.Dispatch(CreateFulfilled{Product: product})
	return product, nil
}

// UpdateProduct updates a product and replaces it in the cached list.
func (s *Store) UpdateProduct(ctx context.Context, id string, input domain.ProductInput) (domain.Product, error) {
	s.Dispatch(UpdatePending{})

	product, err := s.repo.Update(ctx, id, input)
	if err != nil {
		s.Dispatch(UpdateRejected{Err: err.Error()})
		return domain.Product{}, err
	}

	s.Dispatch(UpdateFulfilled{Product: product})
	return product, nil
}

// DeleteProduct deletes a product and drops it from the cached list.
func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	s.Dispatch(DeletePending{})

	if err := s.repo.Delete(ctx, id); err != nil {
		s.Dispatch(DeleteRejected{Err: err.Error()})
		return err
	}

	s.Dispatch(DeleteFulfilled{ID: id})
	return nil
}

// cloneState copies the parts of the state that alias mutable memory.
func cloneState(s RootState) RootState {
	s.Products.Items = append([]domain.Product(nil), s.Products.Items...)
	if s.Products.Selected != nil {
		p := *s.Products.Selected
		s.Products.Selected = &p
	}
	if s.Filters.InStock != nil {
		v := *s.Filters.InStock
		s.Filters.InStock = &v
	}
	return s
}
