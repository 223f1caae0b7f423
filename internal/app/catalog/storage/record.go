package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/light-bringer/catalog-admin/internal/app/catalog/domain"
)

// record mirrors the persisted product layout. Timestamps stay raw so that
// legacy values written as epoch numbers can be detected and normalized to
// RFC 3339 strings on load.
type record struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Category    string          `json:"category"`
	Stock       int             `json:"stock"`
	ImageURL    string          `json:"imageUrl,omitempty"`
	CreatedAt   json.RawMessage `json:"createdAt"`
	UpdatedAt   json.RawMessage `json:"updatedAt"`
}

// toDomain converts the record to a domain product. The returned bool reports
// whether a timestamp needed normalization.
func (r record) toDomain() (domain.Product, bool, error) {
	createdAt, createdNorm, err := parseTimestamp(r.CreatedAt)
	if err != nil {
		return domain.Product{}, false, fmt.Errorf("product %s createdAt: %w", r.ID, err)
	}
	updatedAt, updatedNorm, err := parseTimestamp(r.UpdatedAt)
	if err != nil {
		return domain.Product{}, false, fmt.Errorf("product %s updatedAt: %w", r.ID, err)
	}

	return domain.Product{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
		Stock:       r.Stock,
		ImageURL:    r.ImageURL,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, createdNorm || updatedNorm, nil
}

// parseTimestamp accepts an RFC 3339 string or a Unix-milliseconds number.
// The bool reports whether the raw value was not already a string.
func parseTimestamp(raw json.RawMessage) (time.Time, bool, error) {
	if len(raw) == 0 {
		return time.Time{}, false, fmt.Errorf("missing timestamp")
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, false, fmt.Errorf("invalid timestamp %q: %w", s, err)
		}
		return t, false, nil
	}

	var millis int64
	if err := json.Unmarshal(raw, &millis); err == nil {
		return time.UnixMilli(millis).UTC(), true, nil
	}

	return time.Time{}, false, fmt.Errorf("unsupported timestamp value %s", string(raw))
}
