package usecase

import (
	"context"
	"sync"

	"cinema-checkout/internal/pkg/errs"
)

// sequencer tags requests per key so that only the response to the most
// recently issued request of a key is applied. Requests of one key reach
// the authority one at a time and in tag order; a request superseded while
// waiting for its turn is never sent.
type sequencer struct {
	mu     sync.Mutex
	latest map[string]uint64
	slots  map[string]chan struct{}
}

func newSequencer() *sequencer {
	return &sequencer{
		latest: make(map[string]uint64),
		slots:  make(map[string]chan struct{}),
	}
}

func (s *sequencer) next(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest[key]++
	return s.latest[key]
}

func (s *sequencer) isLatest(key string, tag uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest[key] == tag
}

// acquire waits until no other request of key is in flight. It returns
// errs.ErrStaleResponse when tag was superseded in the meantime. The caller
// must call release once the response has been handled.
func (s *sequencer) acquire(ctx context.Context, key string, tag uint64) (release func(), err error) {
	slot := s.slot(key)
	select {
	case slot <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if !s.isLatest(key, tag) {
		<-slot
		return nil, errs.ErrStaleResponse
	}
	return func() { <-slot }, nil
}

func (s *sequencer) slot(key string) chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	slot, ok := s.slots[key]
	if !ok {
		slot = make(chan struct{}, 1)
		s.slots[key] = slot
	}
	return slot
}

const (
	keyAgeDiscount = "age-discount"
	keyCart        = "cart"
	keyCoupon      = "coupon"
	keyPurchase    = "purchase"
)

func seatKey(id string) string {
	return "seat:" + id
}
