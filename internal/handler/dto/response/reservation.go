package response

import (
	"time"

	"cinema-checkout/internal/usecase/commands"
)

type OpenReservationResponse struct {
	ReservationID string    `json:"reservation_id"`
	ProjectionDay string    `json:"projection_day"`
	ExpiresAt     time.Time `json:"expires_at"`
	Seats         []string  `json:"seats"`
}

func FromOpenResult(res *commands.OpenResult, token string) *OpenReservationResponse {
	seats := make([]string, 0, len(res.Seats))
	for _, id := range res.Seats {
		seats = append(seats, id.String())
	}
	return &OpenReservationResponse{
		ReservationID: token,
		ProjectionDay: res.ProjectionDay.Format(time.DateOnly),
		ExpiresAt:     res.ExpiresAt,
		Seats:         seats,
	}
}
