package shared

import (
	"time"

	"github.com/google/uuid"
)

type JobStatus string

const (
	JobQueued JobStatus = "queued"
	JobSent   JobStatus = "sent"
	JobFailed JobStatus = "failed"
)

// NotificationJob is an outbox entry written in the same unit of work as
// the change it announces.
type NotificationJob struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	RunAt     time.Time
	Attempts  int
	Status    JobStatus
	LastError string
	CreatedAt time.Time
}
