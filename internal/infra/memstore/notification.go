package memstore

import (
	"context"
	"slices"
	"time"

	"cinema-checkout/internal/infra"
	"cinema-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

type notificationRepository struct {
	tx *tx
}

func (r *notificationRepository) CreateJob(_ context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	r.tx.jobs = append(r.tx.jobs, &shared.NotificationJob{
		ID:        uuid.New(),
		Kind:      kind,
		Topic:     topic,
		Payload:   slices.Clone(payload),
		RunAt:     runAt,
		Status:    shared.JobQueued,
		CreatedAt: r.tx.store.clock.Now(),
	})
	return nil
}

// PendingJobs returns copies of queued jobs that are due, oldest first.
func (s *Store) PendingJobs(_ context.Context, limit int) ([]shared.NotificationJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	out := make([]shared.NotificationJob, 0, limit)
	for _, j := range s.jobs {
		if len(out) == limit {
			break
		}
		if j.Status == shared.JobQueued && !j.RunAt.After(now) {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (s *Store) UpdateJob(_ context.Context, job shared.NotificationJob) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, j := range s.jobs {
		if j.ID == job.ID {
			updated := job
			s.jobs[i] = &updated
			return nil
		}
	}
	return infra.NewError(infra.KindNotFound, "notification job "+job.ID.String())
}
