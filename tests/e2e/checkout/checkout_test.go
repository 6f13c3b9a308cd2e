//go:build e2e

package checkout_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"cinema-checkout/internal/domain/alert"
	"cinema-checkout/internal/domain/cart"
	"cinema-checkout/internal/domain/discount"
	"cinema-checkout/internal/domain/seat"
	"cinema-checkout/internal/infra/authority"
	"cinema-checkout/internal/pkg/errs"
	"cinema-checkout/internal/ui/terminal"
	"cinema-checkout/internal/usecase"
	"cinema-checkout/tests/e2e"

	"github.com/stretchr/testify/suite"
)

type CheckoutSuite struct {
	e2e.SharedSuite
	ctx    context.Context
	client *authority.Client
}

func TestCheckoutSuite(t *testing.T) {
	suite.Run(t, new(CheckoutSuite))
}

func (s *CheckoutSuite) SetupTest() {
	s.ctx = context.Background()
	s.client = authority.NewClient(s.Config.Authority, s.Server.Client(), discardLogger())
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (s *CheckoutSuite) openSession() *usecase.SyncController {
	opened, err := s.client.OpenReservation(s.ctx, "")
	s.Require().NoError(err)
	s.Require().NotEmpty(opened.ReservationID)
	s.Require().Len(opened.Seats, len(s.Config.Sandbox.Seats))

	r := terminal.NewRenderer(io.Discard)
	return usecase.NewSyncController(
		usecase.ControllerConfig{ReservationID: opened.ReservationID, AgeDiscountEnabled: true},
		s.client,
		r,
		alert.NewPresenter(r),
		seat.NewStore(opened.Seats...),
		usecase.NewFormValidator(),
		discardLogger(),
	)
}

func (s *CheckoutSuite) TestFullCheckout() {
	ctrl := s.openSession()

	s.Require().NoError(ctrl.RefreshCart(s.ctx))
	s.Equal(0, ctrl.State().Cart.Summary.Seats)

	s.Require().NoError(ctrl.ToggleSeat(s.ctx, "A1"))
	s.Require().NoError(ctrl.ToggleSeat(s.ctx, "A2"))

	summary := ctrl.State().Cart.Summary
	s.Equal(2, summary.Seats)
	s.Equal(cart.MustAmount("20.00"), summary.FullPrice)
	s.Equal(cart.MustAmount("20.00"), summary.Total)

	s.Require().NoError(ctrl.ToggleSeat(s.ctx, "A2"))
	s.Equal(1, ctrl.State().Cart.Summary.Seats)
	s.Require().NoError(ctrl.ToggleSeat(s.ctx, "A2"))

	s.Require().NoError(ctrl.ChangeAgeDiscount(s.ctx, discount.Input{UnderAge: 1, OverAge: 0}))
	s.Equal(cart.DiscountAge, ctrl.State().Cart.Summary.Discount)
	s.Equal(cart.MustAmount("1.50"), ctrl.State().Cart.Summary.DiscountAmount)
	s.Require().NoError(ctrl.ChangeAgeDiscount(s.ctx, discount.Input{UnderAge: 0, OverAge: 0}))

	s.Require().NoError(ctrl.GoToCheckout())
	s.Require().NoError(ctrl.SubmitCoupon(s.ctx, usecase.CouponForm{Code: "WELCOME2026"}))

	state := ctrl.State()
	s.True(state.CouponForm.Locked)
	s.True(state.Cart.CouponRowVisible)
	s.Equal("WELCOME2026", state.Cart.Summary.Coupon)
	s.Equal(cart.MustAmount("5.00"), state.Cart.Summary.CouponDiscount)
	s.Equal(cart.MustAmount("15.00"), state.Cart.Summary.Total)

	s.Require().NoError(ctrl.SubmitPayment(s.ctx, usecase.PaymentForm{
		Email:      "mario.rossi@example.com",
		Owner:      "Mario Rossi",
		CardNumber: "4242 4242 4242 4242",
		CVV:        "123",
		Expiration: "12/30",
	}))

	req, open := ctrl.Alert()
	s.True(open)
	s.Equal(alert.PurchaseCompleted(), req)
	s.True(ctrl.State().Purchased)

	s.Eventually(func() bool {
		jobs, err := s.Store.PendingJobs(s.ctx, 10)
		return err == nil && len(jobs) == 0
	}, 2*time.Second, 20*time.Millisecond)
}

func (s *CheckoutSuite) TestSeatHeldByAnotherReservation() {
	first := s.openSession()
	second := s.openSession()

	s.Require().NoError(first.ToggleSeat(s.ctx, "B1"))

	err := second.ToggleSeat(s.ctx, "B1")

	s.True(errs.Is(err, errs.ErrDomainFailure))
	req, open := second.Alert()
	s.True(open)
	s.Equal(alert.SeatSyncError(), req)
	s.Equal(0, second.State().Selection.SelectedCount)
	second.CloseAlert()
}

func (s *CheckoutSuite) TestCouponIsSingleUse() {
	first := s.openSession()
	second := s.openSession()

	s.Require().NoError(first.ToggleSeat(s.ctx, "B2"))
	s.Require().NoError(first.GoToCheckout())
	s.Require().NoError(first.SubmitCoupon(s.ctx, usecase.CouponForm{Code: "CINEFORUM10"}))

	s.Require().NoError(second.ToggleSeat(s.ctx, "B3"))
	s.Require().NoError(second.GoToCheckout())
	err := second.SubmitCoupon(s.ctx, usecase.CouponForm{Code: "CINEFORUM10"})

	s.True(errs.Is(err, errs.ErrDomainFailure))
	s.False(second.State().CouponForm.Locked)
	second.CloseAlert()
}

func (s *CheckoutSuite) TestRejectsUnknownReservation() {
	form := url.Values{"reservation-id": {"not-a-token"}}
	resp, err := s.Server.Client().Post(s.Server.URL+s.Config.Authority.CheckoutPath,
		"application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	s.Require().NoError(err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	s.Equal("invalid reservation id", strings.TrimSpace(string(body)))
}
