package reservation

import (
	"time"

	"cinema-checkout/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock clock.Clock
	TTL   time.Duration
}

func NewFactory(clock clock.Clock, ttl time.Duration) *Factory {
	return &Factory{
		Clock: clock,
		TTL:   ttl,
	}
}

// CreateReservation opens an empty reservation. A zero projection day means
// today.
func (f *Factory) CreateReservation(projectionDay time.Time) *Reservation {
	now := f.Clock.Now()
	if projectionDay.IsZero() {
		projectionDay = now
	}
	day := clock.StartOfDay(projectionDay)

	var expiresAt time.Time
	if f.TTL > 0 {
		expiresAt = now.Add(f.TTL)
	}
	return NewReservation(uuid.New(), day, now, expiresAt)
}
