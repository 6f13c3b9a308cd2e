package request

import (
	"strings"
	"time"
)

type OpenReservationRequest struct {
	// ProjectionDay defaults to today when empty.
	ProjectionDay string `json:"projection_day,omitempty" example:"2026-10-21"`
}

func (r OpenReservationRequest) Day(layout string) (time.Time, error) {
	day := strings.TrimSpace(r.ProjectionDay)
	if day == "" {
		return time.Time{}, nil
	}
	return time.Parse(layout, day)
}
