package state

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/catalog-admin/internal/app/catalog/domain"
)

// fakeRepo scripts repository outcomes for the async operation tests.
type fakeRepo struct {
	items []domain.Product
	err   error
}

func (f *fakeRepo) List(context.Context) ([]domain.Product, error) {
	return f.items, f.err
}

func (f *fakeRepo) Create(_ context.Context, input domain.ProductInput) (domain.Product, error) {
	if f.err != nil {
		return domain.Product{}, f.err
	}
	return input.Apply(domain.Product{ID: "created-1"}), nil
}

func (f *fakeRepo) Update(_ context.Context, id string, input domain.ProductInput) (domain.Product, error) {
	if f.err != nil {
		return domain.Product{}, f.err
	}
	return input.Apply(domain.Product{ID: id}), nil
}

func (f *fakeRepo) Delete(context.Context, string) error {
	return f.err
}

func product(id, name string, price float64, stock int) domain.Product {
	return domain.Product{ID: id, Name: name, Price: price, Stock: stock, Category: "Otros"}
}

func TestStore_InitialState(t *testing.T) {
	s := NewStore(&fakeRepo{})
	st := s.State()

	assert.Equal(t, StatusIdle, st.Products.Loading)
	assert.Empty(t, st.Products.Items)
	assert.Equal(t, PriceRange{Min: 0, Max: 10000}, st.Filters.PriceRange)
	assert.Nil(t, st.Filters.InStock)
	assert.False(t, st.UI.ModalOpen)
}

func TestReduceProducts(t *testing.T) {
	t.Run("fetch pending clears error", func(t *testing.T) {
		s := ProductsState{Loading: StatusRejected, Error: "boom"}
		s = reduceProducts(s, FetchPending{})
		assert.Equal(t, StatusPending, s.Loading)
		assert.Empty(t, s.Error)
	})

	t.Run("fetch fulfilled replaces items", func(t *testing.T) {
		s := ProductsState{Items: []domain.Product{product("old", "Old", 1, 1)}}
		s = reduceProducts(s, FetchFulfilled{Items: []domain.Product{product("a", "A", 1, 1), product("b", "B", 2, 0)}})
		assert.Equal(t, StatusFulfilled, s.Loading)
		require.Len(t, s.Items, 2)
		assert.Equal(t, "a", s.Items[0].ID)
	})

	t.Run("create fulfilled appends in insertion order", func(t *testing.T) {
		s := ProductsState{Items: []domain.Product{product("a", "A", 1, 1)}}
		s = reduceProducts(s, CreateFulfilled{Product: product("b", "B", 2, 0)})
		require.Len(t, s.Items, 2)
		assert.Equal(t, "b", s.Items[1].ID)
	})

	t.Run("update fulfilled replaces by id in place", func(t *testing.T) {
		s := ProductsState{Items: []domain.Product{product("a", "A", 1, 1), product("b", "B", 2, 0)}}
		s = reduceProducts(s, UpdateFulfilled{Product: product("a", "A2", 3, 5)})
		require.Len(t, s.Items, 2)
		assert.Equal(t, "A2", s.Items[0].Name)
		assert.Equal(t, "b", s.Items[1].ID)
	})

	t.Run("delete fulfilled filters out by id", func(t *testing.T) {
		s := ProductsState{Items: []domain.Product{product("a", "A", 1, 1), product("b", "B", 2, 0)}}
		s = reduceProducts(s, DeleteFulfilled{ID: "a"})
		require.Len(t, s.Items, 1)
		assert.Equal(t, "b", s.Items[0].ID)
	})

	t.Run("rejections record the message", func(t *testing.T) {
		s := ProductsState{}
		s = reduceProducts(s, CreateRejected{Err: "no se pudo crear"})
		assert.Equal(t, StatusRejected, s.Loading)
		assert.Equal(t, "no se pudo crear", s.Error)
	})

	t.Run("reset restores initial state but keeps the version moving", func(t *testing.T) {
		s := ProductsState{Items: []domain.Product{product("a", "A", 1, 1)}, Version: 7}
		s = reduceProducts(s, ResetProducts{})
		assert.Empty(t, s.Items)
		assert.Equal(t, StatusIdle, s.Loading)
		assert.Equal(t, uint64(8), s.Version)
	})

	t.Run("foreign actions pass through without a version bump", func(t *testing.T) {
		s := ProductsState{Version: 3}
		s2 := reduceProducts(s, SetSearchTerm{Term: "x"})
		assert.Equal(t, s, s2)
	})
}

func TestReduceFilters(t *testing.T) {
	t.Run("fields are independently settable", func(t *testing.T) {
		s := initialFiltersState()
		s = reduceFilters(s, SetSearchTerm{Term: "phone"})
		s = reduceFilters(s, SetCategory{Category: "Libros"})
		inStock := true
		s = reduceFilters(s, SetInStock{InStock: &inStock})

		assert.Equal(t, "phone", s.SearchTerm)
		assert.Equal(t, "Libros", s.Category)
		require.NotNil(t, s.InStock)
		assert.True(t, *s.InStock)
	})

	t.Run("inverted price range is stored as given", func(t *testing.T) {
		s := reduceFilters(initialFiltersState(), SetPriceRange{Min: 100, Max: 50})
		assert.Equal(t, PriceRange{Min: 100, Max: 50}, s.PriceRange)
	})

	t.Run("reset restores defaults", func(t *testing.T) {
		s := reduceFilters(initialFiltersState(), SetCategory{Category: "Ropa"})
		s = reduceFilters(s, ResetFilters{})
		assert.Equal(t, initialFiltersState().PriceRange, s.PriceRange)
		assert.Empty(t, s.Category)
		assert.Nil(t, s.InStock)
	})
}

func TestReduceUI(t *testing.T) {
	s := initialUIState()

	s = reduceUI(s, OpenModal{Type: ModalEdit})
	assert.True(t, s.ModalOpen)
	assert.Equal(t, ModalEdit, s.ModalType)

	s = reduceUI(s, CloseModal{})
	assert.False(t, s.ModalOpen)
	assert.Equal(t, ModalNone, s.ModalType)

	s = reduceUI(s, ShowNotification{Message: "guardado", Severity: SeveritySuccess})
	assert.True(t, s.Notification.Visible)
	assert.Equal(t, SeveritySuccess, s.Notification.Severity)

	s = reduceUI(s, HideNotification{})
	assert.False(t, s.Notification.Visible)
	assert.Equal(t, "guardado", s.Notification.Message)
}

func TestStore_AsyncOperations(t *testing.T) {
	ctx := context.Background()

	t.Run("fetch success replaces items", func(t *testing.T) {
		s := NewStore(&fakeRepo{items: []domain.Product{product("a", "A", 1, 1)}})

		items, err := s.FetchProducts(ctx)
		require.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, StatusFulfilled, s.State().Products.Loading)
	})

	t.Run("rejections are recorded in state and returned", func(t *testing.T) {
		s := NewStore(&fakeRepo{err: errors.New("storage down")})

		_, err := s.FetchProducts(ctx)
		require.Error(t, err)

		st := s.State()
		assert.Equal(t, StatusRejected, st.Products.Loading)
		assert.Equal(t, "storage down", st.Products.Error)
	})

	t.Run("failed mutation leaves items unchanged", func(t *testing.T) {
		repo := &fakeRepo{items: []domain.Product{product("a", "A", 1, 1)}}
		s := NewStore(repo)
		_, err := s.FetchProducts(ctx)
		require.NoError(t, err)

		repo.err = errors.New("quota exceeded")
		_, err = s.CreateProduct(ctx, domain.ProductInput{Name: "X"})
		require.Error(t, err)

		st := s.State()
		assert.Len(t, st.Products.Items, 1)
		assert.Equal(t, "quota exceeded", st.Products.Error)
	})

	t.Run("create appends, update replaces, delete removes", func(t *testing.T) {
		s := NewStore(&fakeRepo{})

		created, err := s.CreateProduct(ctx, domain.ProductInput{Name: "Nuevo", Price: 5, Stock: 1})
		require.NoError(t, err)
		assert.Len(t, s.State().Products.Items, 1)

		_, err = s.UpdateProduct(ctx, created.ID, domain.ProductInput{Name: "Editado", Price: 6, Stock: 2})
		require.NoError(t, err)
		assert.Equal(t, "Editado", s.State().Products.Items[0].Name)

		require.NoError(t, s.DeleteProduct(ctx, created.ID))
		assert.Empty(t, s.State().Products.Items)
	})
}

func TestStore_Subscribe(t *testing.T) {
	s := NewStore(&fakeRepo{})

	var seen []LoadStatus
	unsubscribe := s.Subscribe(func(st RootState) {
		seen = append(seen, st.Products.Loading)
	})

	s.Dispatch(FetchPending{})
	s.Dispatch(FetchFulfilled{Items: nil})

	unsubscribe()
	s.Dispatch(FetchPending{})

	require.Len(t, seen, 2)
	assert.Equal(t, []LoadStatus{StatusPending, StatusFulfilled}, seen)
}

func TestStore_SnapshotIsolation(t *testing.T) {
	s := NewStore(&fakeRepo{})
	s.Dispatch(FetchFulfilled{Items: []domain.Product{product("a", "A", 1, 1)}})

	snapshot := s.State()
	snapshot.Products.Items[0].Name = "mutated"

	assert.Equal(t, "A", s.State().Products.Items[0].Name)
}
