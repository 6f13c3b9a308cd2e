//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"cinema-checkout/internal/domain/alert"
	"cinema-checkout/internal/domain/cart"
	"cinema-checkout/internal/domain/checkout"
	"cinema-checkout/internal/domain/discount"
	"cinema-checkout/internal/domain/seat"
	"cinema-checkout/internal/pkg/errs"
	"cinema-checkout/internal/usecase"
	usecasemock "cinema-checkout/tests/mock/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	testReservation = usecase.ReservationID("res-1")
	oneSeatSummary  = "ok\n1\n10.00\nNONE\n0.00\nno coupon\n0.00\n10.00"
	couponSummary   = "ok\n1\n10.00\nNONE\n0.00\nWELCOME2026\n5.00\n5.00"
)

type recordingDisplay struct {
	mu    sync.Mutex
	shown []alert.Request
}

func (d *recordingDisplay) Present(req alert.Request) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.shown = append(d.shown, req)
}

func (d *recordingDisplay) Shown() []alert.Request {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]alert.Request(nil), d.shown...)
}

type SyncControllerTestSuite struct {
	suite.Suite
	ctx       context.Context
	mockCtrl  *gomock.Controller
	authority *usecasemock.MockAuthority
	view      *usecasemock.MockView
	display   *recordingDisplay
	seats     *seat.Store
	ctrl      *usecase.SyncController
}

func (s *SyncControllerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.authority = usecasemock.NewMockAuthority(s.mockCtrl)
	s.view = usecasemock.NewMockView(s.mockCtrl)
	s.view.EXPECT().RenderSelection(gomock.Any()).AnyTimes()
	s.view.EXPECT().RenderForms(gomock.Any(), gomock.Any()).AnyTimes()
	s.display = &recordingDisplay{}
	s.seats = seat.NewStore("A1", "A2", "A3")
	s.ctrl = s.newController(true)
}

func (s *SyncControllerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSyncControllerSuite(t *testing.T) {
	suite.Run(t, new(SyncControllerTestSuite))
}

func (s *SyncControllerTestSuite) newController(ageEnabled bool) *usecase.SyncController {
	return usecase.NewSyncController(
		usecase.ControllerConfig{ReservationID: testReservation, AgeDiscountEnabled: ageEnabled},
		s.authority,
		s.view,
		alert.NewPresenter(s.display),
		s.seats,
		usecase.NewFormValidator(),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func (s *SyncControllerTestSuite) selectSeat(id seat.ID, summary string) {
	s.authority.EXPECT().UpdateSeatStatus(gomock.Any(), testReservation, id, seat.StatusSelected).
		Return(usecase.Reply("ok"), nil).Times(1)
	s.authority.EXPECT().CheckoutInfo(gomock.Any(), testReservation).
		Return(usecase.Reply(summary), nil).Times(1)
	s.view.EXPECT().RenderCart(gomock.Any()).Times(1)
	s.Require().NoError(s.ctrl.ToggleSeat(s.ctx, id))
}

func validPayment() usecase.PaymentForm {
	return usecase.PaymentForm{
		Email:      "mario.rossi@example.com",
		Owner:      "Mario Rossi",
		CardNumber: "4242 4242 4242 4242",
		CVV:        "123",
		Expiration: "12/30",
	}
}

func (s *SyncControllerTestSuite) TestToggleSeat() {
	s.Run("success: syncs the new status and refreshes the cart", func() {
		s.selectSeat("A1", oneSeatSummary)

		state := s.ctrl.State()
		s.Equal(1, state.Selection.SelectedCount)
		s.Equal(checkout.Revealable, state.Selection.Visibility)
		s.True(state.Cart.Loaded)
		s.Equal(1, state.Cart.Summary.Seats)
		s.Equal("10.00", state.Cart.Summary.Total.String())
		s.False(state.Cart.CouponRowVisible)
		s.Empty(s.display.Shown())
	})
}

func (s *SyncControllerTestSuite) TestToggleSeat_TransportFailure() {
	s.authority.EXPECT().UpdateSeatStatus(gomock.Any(), testReservation, seat.ID("A1"), seat.StatusSelected).
		Return(usecase.Reply(""), errors.New("connection refused")).Times(1)
	s.authority.EXPECT().CheckoutInfo(gomock.Any(), gomock.Any()).Times(0)

	err := s.ctrl.ToggleSeat(s.ctx, "A1")

	s.True(errs.Is(err, errs.ErrTransport))
	s.Equal([]alert.Request{alert.NetworkError()}, s.display.Shown())
	st, _ := s.seats.Status("A1")
	s.Equal(seat.StatusAvailable, st)
	s.Equal(checkout.Hidden, s.ctrl.State().Selection.Visibility)
}

func (s *SyncControllerTestSuite) TestToggleSeat_Rejected() {
	s.authority.EXPECT().UpdateSeatStatus(gomock.Any(), testReservation, seat.ID("A2"), seat.StatusSelected).
		Return(usecase.Reply("seat taken"), nil).Times(1)

	err := s.ctrl.ToggleSeat(s.ctx, "A2")

	s.True(errs.Is(err, errs.ErrDomainFailure))
	s.Equal([]alert.Request{alert.SeatSyncError()}, s.display.Shown())
	s.Equal(0, s.seats.SelectedCount())
}

func (s *SyncControllerTestSuite) TestToggleSeat_UnknownSeat() {
	err := s.ctrl.ToggleSeat(s.ctx, "Z9")

	s.ErrorIs(err, seat.ErrUnknownSeat)
	s.Empty(s.display.Shown())
}

func (s *SyncControllerTestSuite) TestToggleSeat_AlertsDoNotStack() {
	s.authority.EXPECT().UpdateSeatStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(usecase.Reply(""), errors.New("timeout")).Times(2)

	s.Error(s.ctrl.ToggleSeat(s.ctx, "A1"))
	s.Error(s.ctrl.ToggleSeat(s.ctx, "A2"))

	s.Len(s.display.Shown(), 1)

	s.ctrl.CloseAlert()
	_, open := s.ctrl.Alert()
	s.False(open)
}

func (s *SyncControllerTestSuite) TestToggleSeat_LastSeatResetsAgeInputs() {
	s.selectSeat("A1", oneSeatSummary)

	s.authority.EXPECT().UpdateAgeDiscount(gomock.Any(), testReservation, discount.Input{UnderAge: 1}).
		Return(usecase.Reply("ok"), nil).Times(1)
	s.authority.EXPECT().CheckoutInfo(gomock.Any(), testReservation).
		Return(usecase.Reply(oneSeatSummary), nil).Times(1)
	s.view.EXPECT().RenderCart(gomock.Any()).Times(1)
	s.Require().NoError(s.ctrl.ChangeAgeDiscount(s.ctx, discount.Input{UnderAge: 1}))
	s.Require().NoError(s.ctrl.GoToCheckout())

	gomock.InOrder(
		s.authority.EXPECT().UpdateSeatStatus(gomock.Any(), testReservation, seat.ID("A1"), seat.StatusAvailable).
			Return(usecase.Reply("ok"), nil),
		s.authority.EXPECT().UpdateAgeDiscount(gomock.Any(), testReservation, discount.Input{}).
			Return(usecase.Reply("ok"), nil),
		s.authority.EXPECT().CheckoutInfo(gomock.Any(), testReservation).
			Return(usecase.Reply("ok\n0\n0.00\nNONE\n0.00\nno coupon\n0.00\n0.00"), nil),
	)
	s.view.EXPECT().RenderCart(gomock.Any()).Times(1)

	s.Require().NoError(s.ctrl.ToggleSeat(s.ctx, "A1"))

	sel := s.ctrl.State().Selection
	s.Equal(0, sel.SelectedCount)
	s.Equal(checkout.Hidden, sel.Visibility)
	s.Equal(discount.Input{}, sel.AgeInput)
	s.Equal(discount.Valid, sel.AgeValidity)
}

func (s *SyncControllerTestSuite) TestToggleSeat_DropsSupersededResponse() {
	started := make(chan struct{})
	release := make(chan struct{})

	s.authority.EXPECT().UpdateSeatStatus(gomock.Any(), testReservation, seat.ID("A1"), seat.StatusSelected).
		DoAndReturn(func(context.Context, usecase.ReservationID, seat.ID, seat.Status) (usecase.Reply, error) {
			close(started)
			<-release
			return usecase.Reply("ok"), nil
		}).Times(1)
	s.authority.EXPECT().UpdateSeatStatus(gomock.Any(), testReservation, seat.ID("A1"), seat.StatusAvailable).
		Return(usecase.Reply("ok"), nil).Times(1)
	s.authority.EXPECT().CheckoutInfo(gomock.Any(), testReservation).
		Return(usecase.Reply("ok\n0\n0.00\nNONE\n0.00\nno coupon\n0.00\n0.00"), nil).Times(1)
	s.view.EXPECT().RenderCart(gomock.Any()).Times(1)

	firstErr := make(chan error, 1)
	go func() {
		firstErr <- s.ctrl.ToggleSeat(s.ctx, "A1")
	}()
	<-started

	secondErr := make(chan error, 1)
	go func() {
		secondErr <- s.ctrl.ToggleSeat(s.ctx, "A1")
	}()
	s.Eventually(func() bool {
		st, _ := s.seats.Status("A1")
		return st == seat.StatusAvailable
	}, time.Second, time.Millisecond)
	close(release)

	s.ErrorIs(<-firstErr, errs.ErrStaleResponse)
	s.Require().NoError(<-secondErr)
	st, _ := s.seats.Status("A1")
	s.Equal(seat.StatusAvailable, st)
	s.Equal(0, s.ctrl.State().Cart.Summary.Seats)
}

// seatLedger answers every request with "ok" and keeps the last status it
// accepted for each seat.
type seatLedger struct {
	mu       sync.Mutex
	accepted map[seat.ID]seat.Status
}

func (l *seatLedger) UpdateSeatStatus(_ context.Context, _ usecase.ReservationID, id seat.ID, st seat.Status) (usecase.Reply, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.accepted[id] = st
	return usecase.Reply("ok"), nil
}

func (l *seatLedger) UpdateAgeDiscount(context.Context, usecase.ReservationID, discount.Input) (usecase.Reply, error) {
	return usecase.Reply("ok"), nil
}

func (l *seatLedger) ApplyCoupon(context.Context, usecase.ReservationID, usecase.CouponForm) (usecase.Reply, error) {
	return usecase.Reply("ok"), nil
}

func (l *seatLedger) Purchase(context.Context, usecase.ReservationID, usecase.PaymentForm) (usecase.Reply, error) {
	return usecase.Reply("ok"), nil
}

func (l *seatLedger) CheckoutInfo(context.Context, usecase.ReservationID) (usecase.Reply, error) {
	return usecase.Reply("ok\n0\n0.00\nNONE\n0.00\nno coupon\n0.00\n0.00"), nil
}

func (l *seatLedger) Accepted(id seat.ID) (seat.Status, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	st, ok := l.accepted[id]
	return st, ok
}

// gatedView holds the first RenderSelection call until open is closed.
type gatedView struct {
	entered chan struct{}
	open    chan struct{}
	once    sync.Once
}

func (v *gatedView) RenderSelection(usecase.SelectionState) {
	first := false
	v.once.Do(func() { first = true })
	if first {
		close(v.entered)
		<-v.open
	}
}

func (v *gatedView) RenderCart(usecase.CartState)                     {}
func (v *gatedView) RenderForms(usecase.FormState, usecase.FormState) {}

func (s *SyncControllerTestSuite) TestToggleSeat_OutOfOrderTogglesStayInSync() {
	ledger := &seatLedger{accepted: make(map[seat.ID]seat.Status)}
	view := &gatedView{entered: make(chan struct{}), open: make(chan struct{})}
	ctrl := usecase.NewSyncController(
		usecase.ControllerConfig{ReservationID: testReservation, AgeDiscountEnabled: true},
		ledger,
		view,
		alert.NewPresenter(s.display),
		s.seats,
		usecase.NewFormValidator(),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	firstErr := make(chan error, 1)
	go func() {
		firstErr <- ctrl.ToggleSeat(s.ctx, "A1")
	}()
	<-view.entered

	s.Require().NoError(ctrl.ToggleSeat(s.ctx, "A1"))
	close(view.open)

	s.ErrorIs(<-firstErr, errs.ErrStaleResponse)
	local, _ := s.seats.Status("A1")
	accepted, ok := ledger.Accepted("A1")
	s.Require().True(ok)
	s.Equal(seat.StatusAvailable, local)
	s.Equal(local, accepted)
	s.Empty(s.display.Shown())
}

func (s *SyncControllerTestSuite) TestChangeAgeDiscount() {
	s.selectSeat("A1", oneSeatSummary)

	s.Run("over-claimed pair is submitted as zero", func() {
		s.authority.EXPECT().UpdateAgeDiscount(gomock.Any(), testReservation, discount.Input{}).
			Return(usecase.Reply("ok"), nil).Times(1)
		s.authority.EXPECT().CheckoutInfo(gomock.Any(), testReservation).
			Return(usecase.Reply(oneSeatSummary), nil).Times(1)
		s.view.EXPECT().RenderCart(gomock.Any()).Times(1)

		s.Require().NoError(s.ctrl.ChangeAgeDiscount(s.ctx, discount.Input{UnderAge: 1, OverAge: 1}))

		sel := s.ctrl.State().Selection
		s.Equal(discount.Invalid, sel.AgeValidity)
		s.Equal(discount.Input{UnderAge: 1, OverAge: 1}, sel.AgeInput)
	})

	s.Run("rejection shows the cart update error", func() {
		s.authority.EXPECT().UpdateAgeDiscount(gomock.Any(), testReservation, discount.Input{OverAge: 1}).
			Return(usecase.Reply("error"), nil).Times(1)

		err := s.ctrl.ChangeAgeDiscount(s.ctx, discount.Input{OverAge: 1})

		s.True(errs.Is(err, errs.ErrDomainFailure))
		s.Equal([]alert.Request{alert.CartUpdateError()}, s.display.Shown())
	})

	s.Run("negative counts never reach the authority", func() {
		err := s.ctrl.ChangeAgeDiscount(s.ctx, discount.Input{UnderAge: -1})
		s.True(errs.Is(err, errs.ErrFormInvalid))
	})
}

func (s *SyncControllerTestSuite) TestChangeAgeDiscount_Disabled() {
	ctrl := s.newController(false)

	err := ctrl.ChangeAgeDiscount(s.ctx, discount.Input{UnderAge: 1})

	s.ErrorIs(err, usecase.ErrAgeDiscountDisabled)
}

func (s *SyncControllerTestSuite) TestGoToCheckout() {
	s.ErrorIs(s.ctrl.GoToCheckout(), errs.ErrCheckoutUnavailable)

	s.selectSeat("A1", oneSeatSummary)
	s.NoError(s.ctrl.GoToCheckout())
	s.Equal(checkout.Expanded, s.ctrl.State().Selection.Visibility)
}

func (s *SyncControllerTestSuite) TestSubmitCoupon() {
	s.Run("error: forms are hidden before checkout", func() {
		err := s.ctrl.SubmitCoupon(s.ctx, usecase.CouponForm{Code: "WELCOME2026"})
		s.ErrorIs(err, errs.ErrCheckoutUnavailable)
	})

	s.selectSeat("A1", oneSeatSummary)
	s.Require().NoError(s.ctrl.GoToCheckout())

	s.Run("error: invalid form is never sent", func() {
		err := s.ctrl.SubmitCoupon(s.ctx, usecase.CouponForm{Code: "  "})

		s.True(errs.Is(err, errs.ErrFormInvalid))
		var fe *usecase.FormError
		s.Require().True(errors.As(err, &fe))
		s.Equal("coupon-code", fe.Fields[0].Field)
		s.True(s.ctrl.State().CouponForm.Validated)
		s.False(s.ctrl.State().CouponForm.Locked)
	})

	s.Run("error: rejected coupon keeps the form open", func() {
		s.authority.EXPECT().ApplyCoupon(gomock.Any(), testReservation, usecase.CouponForm{Code: "EXPIRED01"}).
			Return(usecase.Reply("invalid coupon"), nil).Times(1)

		err := s.ctrl.SubmitCoupon(s.ctx, usecase.CouponForm{Code: "EXPIRED01"})

		s.True(errs.Is(err, errs.ErrDomainFailure))
		s.Equal([]alert.Request{alert.CouponRejected()}, s.display.Shown())
		s.False(s.ctrl.State().CouponForm.Locked)
		s.ctrl.CloseAlert()
	})

	s.Run("success: locks the form and refreshes the cart once", func() {
		s.authority.EXPECT().ApplyCoupon(gomock.Any(), testReservation, usecase.CouponForm{Code: "WELCOME2026"}).
			Return(usecase.Reply("ok"), nil).Times(1)
		s.authority.EXPECT().CheckoutInfo(gomock.Any(), testReservation).
			Return(usecase.Reply(couponSummary), nil).Times(1)
		s.view.EXPECT().RenderCart(gomock.Any()).Times(1)

		s.Require().NoError(s.ctrl.SubmitCoupon(s.ctx, usecase.CouponForm{Code: " WELCOME2026 "}))

		state := s.ctrl.State()
		s.True(state.CouponForm.Locked)
		s.True(state.Cart.CouponRowVisible)
		s.Equal(cart.MustAmount("5.00"), state.Cart.Summary.CouponDiscount)
	})

	s.Run("error: locked form rejects further submits", func() {
		err := s.ctrl.SubmitCoupon(s.ctx, usecase.CouponForm{Code: "CINEFORUM10"})
		s.ErrorIs(err, errs.ErrCouponLocked)
	})

	s.Run("coupon row stays visible after a summary without coupon", func() {
		s.authority.EXPECT().CheckoutInfo(gomock.Any(), testReservation).
			Return(usecase.Reply(oneSeatSummary), nil).Times(1)
		s.view.EXPECT().RenderCart(gomock.Any()).Times(1)

		s.Require().NoError(s.ctrl.RefreshCart(s.ctx))
		s.True(s.ctrl.State().Cart.CouponRowVisible)
	})
}

func (s *SyncControllerTestSuite) TestSubmitPayment() {
	s.selectSeat("A1", oneSeatSummary)
	s.Require().NoError(s.ctrl.GoToCheckout())

	s.Run("error: invalid card number is never sent", func() {
		form := validPayment()
		form.CardNumber = "4242424242424241"

		err := s.ctrl.SubmitPayment(s.ctx, form)

		s.True(errs.Is(err, errs.ErrFormInvalid))
		s.True(s.ctrl.State().PaymentForm.Validated)
	})

	s.Run("error: rejected purchase", func() {
		s.authority.EXPECT().Purchase(gomock.Any(), testReservation, validPayment().Normalized()).
			Return(usecase.Reply("payment declined"), nil).Times(1)

		err := s.ctrl.SubmitPayment(s.ctx, validPayment())

		s.True(errs.Is(err, errs.ErrDomainFailure))
		s.Equal([]alert.Request{alert.PurchaseFailed()}, s.display.Shown())
		s.ctrl.CloseAlert()
	})

	s.Run("success: shows the completion dialog", func() {
		s.authority.EXPECT().Purchase(gomock.Any(), testReservation, validPayment().Normalized()).
			Return(usecase.Reply("ok"), nil).Times(1)

		s.Require().NoError(s.ctrl.SubmitPayment(s.ctx, validPayment()))

		req, open := s.ctrl.Alert()
		s.True(open)
		s.Equal(alert.PurchaseCompleted(), req)
		s.Equal(alert.ForcedNavigation, req.Dismissal)
		s.True(s.ctrl.State().Purchased)
	})

	s.Run("error: no seat changes after purchase", func() {
		s.ErrorIs(s.ctrl.ToggleSeat(s.ctx, "A2"), usecase.ErrAlreadyPurchased)
	})
}

func (s *SyncControllerTestSuite) TestRefreshCart() {
	s.Run("error: failure body shows the cart update error", func() {
		s.authority.EXPECT().CheckoutInfo(gomock.Any(), testReservation).
			Return(usecase.Reply("error"), nil).Times(1)

		err := s.ctrl.RefreshCart(s.ctx)

		s.True(errs.Is(err, errs.ErrDomainFailure))
		s.Equal([]alert.Request{alert.CartUpdateError()}, s.display.Shown())
		s.False(s.ctrl.State().Cart.Loaded)
		s.ctrl.CloseAlert()
	})

	s.Run("error: malformed ok body is a failure", func() {
		s.authority.EXPECT().CheckoutInfo(gomock.Any(), testReservation).
			Return(usecase.Reply("ok\n1\n10.00"), nil).Times(1)

		err := s.ctrl.RefreshCart(s.ctx)

		s.True(errs.Is(err, errs.ErrDomainFailure))
		s.ErrorIs(err, cart.ErrMalformedSummary)
		s.ctrl.CloseAlert()
	})

	s.Run("error: transport failure shows the network error", func() {
		s.authority.EXPECT().CheckoutInfo(gomock.Any(), testReservation).
			Return(usecase.Reply(""), errors.New("dial tcp: refused")).Times(1)

		err := s.ctrl.RefreshCart(s.ctx)

		s.True(errs.Is(err, errs.ErrTransport))
		req, open := s.ctrl.Alert()
		s.True(open)
		s.Equal(alert.NetworkError(), req)
	})
}
