package state

import "github.com/light-bringer/catalog-admin/internal/app/catalog/domain"

// Action is the closed set of state transitions. Each variant is a struct and
// reducers match on the concrete type, so adding a variant means touching the
// reducer rather than a string table.
type Action interface {
	isAction()
}

// Products slice actions.

// FetchPending marks a product fetch as in flight and clears any prior error.
type FetchPending struct{}

// FetchFulfilled replaces the cached product list.
type FetchFulfilled struct {
	Items []domain.Product
}

// FetchRejected records a failed fetch.
type FetchRejected struct {
	Err string
}

// CreatePending marks a create as in flight.
type CreatePending struct{}

// CreateFulfilled appends the newly created product.
type CreateFulfilled struct {
	Product domain.Product
}

// CreateRejected records a failed create.
type CreateRejected struct {
	Err string
}

// UpdatePending marks an update as in flight.
type UpdatePending struct{}

// UpdateFulfilled replaces the matching product in place.
type UpdateFulfilled struct {
	Product domain.Product
}

// UpdateRejected records a failed update.
type UpdateRejected struct {
	Err string
}

// DeletePending marks a delete as in flight.
type DeletePending struct{}

// DeleteFulfilled removes the product with the given id.
type DeleteFulfilled struct {
	ID string
}

// DeleteRejected records a failed delete.
type DeleteRejected struct {
	Err string
}

// SetSelected sets or clears the selected product.
type SetSelected struct {
	Product *domain.Product
}

// ClearError clears the products slice error.
type ClearError struct{}

// ResetProducts restores the products slice to its initial state.
type ResetProducts struct{}

// Filters slice actions.

// SetSearchTerm sets the free-text search term.
type SetSearchTerm struct {
	Term string
}

// SetCategory sets the category filter; empty means no category filter.
type SetCategory struct {
	Category string
}

// SetPriceRange sets the inclusive price range. Min > Max is accepted and
// simply yields an empty filtered set.
type SetPriceRange struct {
	Min float64
	Max float64
}

// SetInStock sets the stock-presence filter; nil means no filter.
type SetInStock struct {
	InStock *bool
}

// ResetFilters restores all filter defaults.
type ResetFilters struct{}

// UI slice actions.

// OpenModal opens the modal of the given type.
type OpenModal struct {
	Type ModalType
}

// CloseModal closes the modal.
type CloseModal struct{}

// ShowNotification makes a notification visible.
type ShowNotification struct {
	Message  string
	Severity Severity
}

// HideNotification hides the current notification, keeping its content.
type HideNotification struct{}

// SetLoading toggles the global presentational loading flag.
type SetLoading struct {
	Loading bool
}

func (FetchPending) isAction()     {}
func (FetchFulfilled) isAction()   {}
func (FetchRejected) isAction()    {}
func (CreatePending) isAction()    {}
func (CreateFulfilled) isAction()  {}
func (CreateRejected) isAction()   {}
func (UpdatePending) isAction()    {}
func (UpdateFulfilled) isAction()  {}
func (UpdateRejected) isAction()   {}
func (DeletePending) isAction()    {}
func (DeleteFulfilled) isAction()  {}
func (DeleteRejected) isAction()   {}
func (SetSelected) isAction()      {}
func (ClearError) isAction()       {}
func (ResetProducts) isAction()    {}
func (SetSearchTerm) isAction()    {}
func (SetCategory) isAction()      {}
func (SetPriceRange) isAction()    {}
func (SetInStock) isAction()       {}
func (ResetFilters) isAction()     {}
func (OpenModal) isAction()        {}
func (CloseModal) isAction()       {}
func (ShowNotification) isAction() {}
func (HideNotification) isAction() {}
func (SetLoading) isAction()       {}
