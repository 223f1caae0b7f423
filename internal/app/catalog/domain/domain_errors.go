package domain

import "errors"

// Domain errors as sentinel values
var (
	// ErrProductNotFound is returned by update/delete when the id is absent.
	ErrProductNotFound = errors.New("product not found")

	// ErrStorageFailure wraps serialization or write failures of the
	// persistence store. Never recovered locally, the caller must surface it.
	ErrStorageFailure = errors.New("could not save products")
)
