package authority

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"cinema-checkout/internal/domain/seat"
	"cinema-checkout/internal/infra"
	"cinema-checkout/internal/usecase"

	"github.com/google/uuid"
)

// Opened is a reservation handed out by the authority together with the
// seat map of its projection.
type Opened struct {
	ReservationID usecase.ReservationID
	ProjectionDay string
	Seats         []seat.ID
}

type openRequest struct {
	ProjectionDay string `json:"projection_day,omitempty"`
}

type openResponse struct {
	ReservationID string   `json:"reservation_id"`
	ProjectionDay string   `json:"projection_day"`
	Seats         []string `json:"seats"`
}

// OpenReservation asks the authority for a new reservation. An empty
// projection day lets the authority pick today.
func (c *Client) OpenReservation(ctx context.Context, projectionDay string) (*Opened, error) {
	path := c.cfg.OpenPath
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + path

	payload, err := json.Marshal(openRequest{ProjectionDay: projectionDay})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, infra.WrapErr(c.logger, infra.KindUnreachable, "build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderRequestID, uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, infra.WrapErr(c.logger, infra.KindUnreachable, "POST "+path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxReplyBytes))
	if err != nil {
		return nil, infra.WrapErr(c.logger, infra.KindBadBody, "read reply of "+path, err)
	}
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, infra.WrapErr(c.logger, infra.KindBadStatus, "POST "+path, fmt.Errorf("status %d: %s", resp.StatusCode, body))
	}

	var out openResponse
	if err := json.Unmarshal(body, &out); err != nil || out.ReservationID == "" {
		if err == nil {
			err = fmt.Errorf("missing reservation_id")
		}
		return nil, infra.WrapErr(c.logger, infra.KindBadBody, "decode reply of "+path, err)
	}

	seats := make([]seat.ID, 0, len(out.Seats))
	for _, s := range out.Seats {
		seats = append(seats, seat.ID(s))
	}
	c.logger.Info("reservation opened", slog.String("projection_day", out.ProjectionDay), slog.Int("seats", len(seats)))

	return &Opened{
		ReservationID: usecase.ReservationID(out.ReservationID),
		ProjectionDay: out.ProjectionDay,
		Seats:         seats,
	}, nil
}
