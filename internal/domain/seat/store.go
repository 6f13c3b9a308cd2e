package seat

import (
	"errors"
	"sync"
)

var (
	ErrUnknownSeat   = errors.New("unknown seat")
	ErrInvalidStatus = errors.New("invalid seat status")
)

// Store tracks the local selection status of every seat on the map.
// It never talks to the authority; syncing is the controller's job.
type Store struct {
	mu     sync.RWMutex
	order  []ID
	status map[ID]Status
}

func NewStore(ids ...ID) *Store {
	s := &Store{status: make(map[ID]Status, len(ids))}
	s.Register(ids...)
	return s
}

// Register starts tracking the given seats as available. Seats already
// tracked keep their status.
func (s *Store) Register(ids ...ID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		if _, ok := s.status[id]; ok {
			continue
		}
		s.status[id] = StatusAvailable
		s.order = append(s.order, id)
	}
}

// Toggle flips the target seat and returns its new status.
func (s *Store) Toggle(id ID) (Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.status[id]
	if !ok {
		return "", ErrUnknownSeat
	}
	next := cur.Toggled()
	s.status[id] = next
	return next, nil
}

func (s *Store) Set(id ID, status Status) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.status[id]; !ok {
		return ErrUnknownSeat
	}
	s.status[id] = status
	return nil
}

func (s *Store) Status(id ID) (Status, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.status[id]
	return st, ok
}

// SelectedCount scans every tracked seat.
func (s *Store) SelectedCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, st := range s.status {
		if st == StatusSelected {
			n++
		}
	}
	return n
}

// Selected returns the selected seats in map order.
func (s *Store) Selected() []ID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ID, 0, len(s.order))
	for _, id := range s.order {
		if s.status[id] == StatusSelected {
			out = append(out, id)
		}
	}
	return out
}

func (s *Store) Seats() []ID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ID, len(s.order))
	copy(out, s.order)
	return out
}
