package authority

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"cinema-checkout/internal/domain/discount"
	"cinema-checkout/internal/domain/seat"
	"cinema-checkout/internal/infra"
	"cinema-checkout/internal/pkg/config"
	"cinema-checkout/internal/usecase"

	"github.com/google/uuid"
)

const (
	maxReplyBytes = 64 << 10

	fieldReservationID = "reservation-id"
	fieldSeatID        = "seat-id"
	fieldSeatStatus    = "seat-status"
	fieldUnderAge      = "under-age"
	fieldOverAge       = "over-age"
	fieldCouponCode    = "coupon-code"
	fieldEmail         = "email"
	fieldCardOwner     = "card-owner"
	fieldCardNumber    = "card-number"
	fieldCardCVV       = "card-cvv"
	fieldCardExpiry    = "card-expiration"

	HeaderRequestID = "X-Request-ID"
)

// Client talks to the reservation authority with form encoded POSTs.
type Client struct {
	cfg    config.AuthorityConfig
	http   *http.Client
	logger *slog.Logger
}

var _ usecase.Authority = (*Client)(nil)

func NewClient(cfg config.AuthorityConfig, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{cfg: cfg, http: httpClient, logger: logger}
}

func (c *Client) UpdateSeatStatus(ctx context.Context, id usecase.ReservationID, seatID seat.ID, status seat.Status) (usecase.Reply, error) {
	form := reservationForm(id)
	form.Set(fieldSeatID, seatID.String())
	form.Set(fieldSeatStatus, status.WireValue())
	return c.post(ctx, c.cfg.SeatStatusPath, form)
}

func (c *Client) UpdateAgeDiscount(ctx context.Context, id usecase.ReservationID, in discount.Input) (usecase.Reply, error) {
	form := reservationForm(id)
	form.Set(fieldUnderAge, strconv.Itoa(in.UnderAge))
	form.Set(fieldOverAge, strconv.Itoa(in.OverAge))
	return c.post(ctx, c.cfg.AgeDiscountPath, form)
}

func (c *Client) ApplyCoupon(ctx context.Context, id usecase.ReservationID, f usecase.CouponForm) (usecase.Reply, error) {
	form := reservationForm(id)
	form.Set(fieldCouponCode, f.Code)
	return c.post(ctx, c.cfg.CouponPath, form)
}

func (c *Client) Purchase(ctx context.Context, id usecase.ReservationID, f usecase.PaymentForm) (usecase.Reply, error) {
	form := reservationForm(id)
	form.Set(fieldEmail, f.Email)
	form.Set(fieldCardOwner, f.Owner)
	form.Set(fieldCardNumber, f.CardNumber)
	form.Set(fieldCardCVV, f.CVV)
	form.Set(fieldCardExpiry, f.Expiration)
	return c.post(ctx, c.cfg.PurchasePath, form)
}

func (c *Client) CheckoutInfo(ctx context.Context, id usecase.ReservationID) (usecase.Reply, error) {
	return c.post(ctx, c.cfg.CheckoutPath, reservationForm(id))
}

func reservationForm(id usecase.ReservationID) url.Values {
	form := url.Values{}
	form.Set(fieldReservationID, id.String())
	return form
}

// post returns the body verbatim; interpreting it is up to the caller. Any
// failure to obtain a 2xx body is a transport error.
func (c *Client) post(ctx context.Context, path string, form url.Values) (usecase.Reply, error) {
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + path
	requestID := uuid.NewString()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", infra.WrapErr(c.logger, infra.KindUnreachable, "build request", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "text/plain")
	req.Header.Set(HeaderRequestID, requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return "", infra.WrapErr(c.logger, infra.KindUnreachable, "POST "+path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxReplyBytes))
	if err != nil {
		return "", infra.WrapErr(c.logger, infra.KindBadBody, "read reply of "+path, err)
	}

	c.logger.Debug("authority request",
		slog.String("path", path),
		slog.String("request_id", requestID),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", infra.WrapErr(c.logger, infra.KindBadStatus, "POST "+path, fmt.Errorf("status %d", resp.StatusCode))
	}
	return usecase.Reply(body), nil
}
