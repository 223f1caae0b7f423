package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/light-bringer/catalog-admin/internal/app/catalog/domain"
)

// statusForError converts domain errors to HTTP status codes.
func statusForError(err error) int {
	switch {
	case err == nil:
		return http.StatusOK

	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrStorageFailure):
		return http.StatusInternalServerError

	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusRequestTimeout

	default:
		return http.StatusInternalServerError
	}
}

func errInvalidParam(name, value string) error {
	return fmt.Errorf("invalid %s value %q", name, value)
}
