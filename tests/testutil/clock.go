package testutil

import (
	"time"

	"github.com/light-bringer/catalog-admin/internal/pkg/clock"
)

// SeedTime matches the timestamp of the canonical seed products.
var SeedTime = time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)

// NewFixedClock creates a mock clock fixed at the given time.
func NewFixedClock(t time.Time) clock.Clock {
	return clock.NewMockClock(t)
}

// NewMockClock creates a mock clock starting just after the seed timestamps,
// so freshly created products always sort after the seeds.
func NewMockClock() *clock.MockClock {
	return clock.NewMockClock(SeedTime.Add(time.Hour))
}
