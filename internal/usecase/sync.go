package usecase

import (
	"context"
	"log/slog"
	"sync"

	"cinema-checkout/internal/domain/alert"
	"cinema-checkout/internal/domain/cart"
	"cinema-checkout/internal/domain/checkout"
	"cinema-checkout/internal/domain/discount"
	"cinema-checkout/internal/domain/seat"
	"cinema-checkout/internal/pkg/errs"
)

var (
	ErrAgeDiscountDisabled = errs.New("age discount is not offered for this reservation")
	ErrAlreadyPurchased    = errs.New("reservation already purchased")
)

type ControllerConfig struct {
	ReservationID      ReservationID
	AgeDiscountEnabled bool
}

// SyncController keeps the local seat selection, the age discount inputs
// and the cart in step with the reservation held by the authority.
//
// Local state changes happen under mu, and the sequence tag of the request
// that carries a change is taken in the same critical section. Requests are
// issued outside the lock, so different request kinds may be in flight at
// the same time; responses superseded by a newer request of the same key are
// dropped.
type SyncController struct {
	cfg       ControllerConfig
	authority Authority
	view      View
	alerts    *alert.Presenter
	seats     *seat.Store
	forms     *FormValidator
	logger    *slog.Logger
	seq       *sequencer

	mu          sync.Mutex
	visibility  checkout.Visibility
	ageInput    discount.Input
	age         discount.Result
	ackedAge    discount.Input
	cart        CartState
	couponForm  FormState
	paymentForm FormState
	purchased   bool
}

func NewSyncController(
	cfg ControllerConfig,
	authority Authority,
	view View,
	alerts *alert.Presenter,
	seats *seat.Store,
	forms *FormValidator,
	logger *slog.Logger,
) *SyncController {
	if logger == nil {
		logger = slog.Default()
	}
	c := &SyncController{
		cfg:       cfg,
		authority: authority,
		view:      view,
		alerts:    alerts,
		seats:     seats,
		forms:     forms,
		logger:    logger.With(slog.String("reservation_id", cfg.ReservationID.String())),
		seq:       newSequencer(),
	}
	c.visibility = checkout.Hidden
	c.applySelectedCountLocked()
	return c
}

// ToggleSeat flips the seat locally, then syncs it. The local status is
// rolled back when the authority rejects it or cannot be reached.
func (c *SyncController) ToggleSeat(ctx context.Context, id seat.ID) error {
	c.mu.Lock()
	if c.purchased {
		c.mu.Unlock()
		return ErrAlreadyPurchased
	}
	prev, ok := c.seats.Status(id)
	if !ok {
		c.mu.Unlock()
		return seat.ErrUnknownSeat
	}
	next, err := c.seats.Toggle(id)
	if err != nil {
		c.mu.Unlock()
		return err
	}
	c.applySelectedCountLocked()
	key := seatKey(id.String())
	tag := c.seq.next(key)
	sel := c.selectionLocked()
	c.mu.Unlock()
	c.view.RenderSelection(sel)

	if err := c.syncSeat(ctx, id, prev, next, tag); err != nil {
		return err
	}

	if in, ageTag, push := c.pendingAgePush(); push {
		if err := c.syncAgeDiscount(ctx, in, ageTag, false); err != nil {
			return err
		}
	}
	return c.refreshCart(ctx)
}

func (c *SyncController) syncSeat(ctx context.Context, id seat.ID, prev, next seat.Status, tag uint64) error {
	key := seatKey(id.String())
	release, err := c.seq.acquire(ctx, key, tag)
	if errs.Is(err, errs.ErrStaleResponse) {
		c.logger.Debug("skipping superseded seat sync", "seat_id", id.String())
		return err
	}
	if err != nil {
		c.rollbackSeat(id, prev, key, tag)
		return errs.Wrap(err, "update seat status")
	}
	defer release()

	reply, err := c.authority.UpdateSeatStatus(ctx, c.cfg.ReservationID, id, next)
	if !c.seq.isLatest(key, tag) {
		c.logger.Debug("dropping superseded seat sync", "seat_id", id.String())
		return errs.ErrStaleResponse
	}
	if err != nil {
		if !c.rollbackSeat(id, prev, key, tag) {
			return errs.ErrStaleResponse
		}
		c.logger.Warn("seat sync failed", "seat_id", id.String(), "error", err)
		c.alerts.Show(alert.NetworkError())
		return errs.Mark(errs.Wrap(err, "update seat status"), errs.ErrTransport)
	}
	if !reply.OK() {
		if !c.rollbackSeat(id, prev, key, tag) {
			return errs.ErrStaleResponse
		}
		c.logger.Info("seat sync rejected", "seat_id", id.String(), "status", next.String())
		c.alerts.Show(alert.SeatSyncError())
		return errs.Mark(errs.Newf("seat %s rejected", id), errs.ErrDomainFailure)
	}
	return nil
}

// ChangeAgeDiscount revalidates the pair and submits the derived values.
func (c *SyncController) ChangeAgeDiscount(ctx context.Context, in discount.Input) error {
	if !c.cfg.AgeDiscountEnabled {
		return ErrAgeDiscountDisabled
	}
	if _, err := discount.NewInput(in.UnderAge, in.OverAge); err != nil {
		return errs.Mark(err, errs.ErrFormInvalid)
	}

	c.mu.Lock()
	if c.purchased {
		c.mu.Unlock()
		return ErrAlreadyPurchased
	}
	c.ageInput = in
	c.age = discount.Validate(in, c.seats.SelectedCount())
	submit := c.age.Submit
	tag := c.seq.next(keyAgeDiscount)
	sel := c.selectionLocked()
	c.mu.Unlock()
	c.view.RenderSelection(sel)

	return c.syncAgeDiscount(ctx, submit, tag, true)
}

// GoToCheckout expands the checkout section.
func (c *SyncController) GoToCheckout() error {
	c.mu.Lock()
	tr, ok := checkout.Next(c.visibility, checkout.EvGoToCheckout)
	if !ok {
		c.mu.Unlock()
		return errs.ErrCheckoutUnavailable
	}
	c.visibility = tr.To
	sel := c.selectionLocked()
	c.mu.Unlock()
	c.view.RenderSelection(sel)
	return nil
}

// SubmitCoupon sends the coupon once the form passes field validation.
// A successful coupon locks the coupon form for the rest of the session.
func (c *SyncController) SubmitCoupon(ctx context.Context, form CouponForm) error {
	form = form.Normalized()

	c.mu.Lock()
	if !c.visibility.FormsVisible() {
		c.mu.Unlock()
		return errs.ErrCheckoutUnavailable
	}
	if c.couponForm.Locked {
		c.mu.Unlock()
		return errs.ErrCouponLocked
	}
	verr := c.forms.Validate(form)
	c.couponForm.Validated = true
	var tag uint64
	if verr == nil {
		tag = c.seq.next(keyCoupon)
	}
	coupon, payment := c.couponForm, c.paymentForm
	c.mu.Unlock()
	c.view.RenderForms(coupon, payment)
	if verr != nil {
		return verr
	}

	release, err := c.seq.acquire(ctx, keyCoupon, tag)
	if err != nil {
		return errs.Wrap(err, "apply coupon")
	}
	defer release()

	reply, err := c.authority.ApplyCoupon(ctx, c.cfg.ReservationID, form)
	if !c.seq.isLatest(keyCoupon, tag) {
		return errs.ErrStaleResponse
	}
	if err != nil {
		c.logger.Warn("coupon request failed", "error", err)
		c.alerts.Show(alert.NetworkError())
		return errs.Mark(errs.Wrap(err, "apply coupon"), errs.ErrTransport)
	}
	if !reply.OK() {
		c.logger.Info("coupon rejected")
		c.alerts.Show(alert.CouponRejected())
		return errs.Mark(errs.New("coupon rejected"), errs.ErrDomainFailure)
	}

	c.mu.Lock()
	c.couponForm.Locked = true
	coupon, payment = c.couponForm, c.paymentForm
	c.mu.Unlock()
	c.view.RenderForms(coupon, payment)

	return c.refreshCart(ctx)
}

// SubmitPayment finalizes the reservation once the form passes field
// validation. Every outcome ends in a forced-navigation dialog.
func (c *SyncController) SubmitPayment(ctx context.Context, form PaymentForm) error {
	form = form.Normalized()

	c.mu.Lock()
	if !c.visibility.FormsVisible() {
		c.mu.Unlock()
		return errs.ErrCheckoutUnavailable
	}
	if c.purchased {
		c.mu.Unlock()
		return ErrAlreadyPurchased
	}
	verr := c.forms.Validate(form)
	c.paymentForm.Validated = true
	var tag uint64
	if verr == nil {
		tag = c.seq.next(keyPurchase)
	}
	coupon, payment := c.couponForm, c.paymentForm
	c.mu.Unlock()
	c.view.RenderForms(coupon, payment)
	if verr != nil {
		return verr
	}

	release, err := c.seq.acquire(ctx, keyPurchase, tag)
	if err != nil {
		return errs.Wrap(err, "purchase")
	}
	defer release()

	reply, err := c.authority.Purchase(ctx, c.cfg.ReservationID, form)
	if !c.seq.isLatest(keyPurchase, tag) {
		return errs.ErrStaleResponse
	}
	if err != nil {
		c.logger.Warn("purchase request failed", "error", err)
		c.alerts.Show(alert.NetworkError())
		return errs.Mark(errs.Wrap(err, "purchase"), errs.ErrTransport)
	}
	if !reply.OK() {
		c.logger.Info("purchase rejected")
		c.alerts.Show(alert.PurchaseFailed())
		return errs.Mark(errs.New("purchase rejected"), errs.ErrDomainFailure)
	}

	c.mu.Lock()
	c.purchased = true
	c.mu.Unlock()
	c.logger.Info("purchase completed")
	c.alerts.Show(alert.PurchaseCompleted())
	return nil
}

// RefreshCart reloads the cart summary from the authority.
func (c *SyncController) RefreshCart(ctx context.Context) error {
	return c.refreshCart(ctx)
}

// CloseAlert reports that the open dialog was closed, by any affordance.
func (c *SyncController) CloseAlert() {
	c.alerts.OnClosed()
}

func (c *SyncController) Alert() (alert.Request, bool) {
	return c.alerts.Current()
}

func (c *SyncController) State() ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return ViewState{
		Selection:   c.selectionLocked(),
		Cart:        c.cart,
		CouponForm:  c.couponForm,
		PaymentForm: c.paymentForm,
		Purchased:   c.purchased,
	}
}

func (c *SyncController) refreshCart(ctx context.Context) error {
	tag := c.seq.next(keyCart)
	reply, err := c.authority.CheckoutInfo(ctx, c.cfg.ReservationID)
	if !c.seq.isLatest(keyCart, tag) {
		c.logger.Debug("dropping superseded cart summary")
		return errs.ErrStaleResponse
	}
	if err != nil {
		c.logger.Warn("cart refresh failed", "error", err)
		c.alerts.Show(alert.NetworkError())
		return errs.Mark(errs.Wrap(err, "get checkout info"), errs.ErrTransport)
	}

	summary, perr := cart.Parse(string(reply))
	if perr != nil {
		c.logger.Warn("malformed cart summary", "error", perr)
	}
	if !summary.OK() {
		c.alerts.Show(alert.CartUpdateError())
		if perr != nil {
			return errs.Mark(perr, errs.ErrDomainFailure)
		}
		return errs.Mark(errs.New("cart summary rejected"), errs.ErrDomainFailure)
	}

	c.mu.Lock()
	c.cart.Summary = summary
	c.cart.Loaded = true
	if summary.HasCoupon() {
		c.cart.CouponRowVisible = true
	}
	state := c.cart
	c.mu.Unlock()
	c.view.RenderCart(state)
	return nil
}

func (c *SyncController) syncAgeDiscount(ctx context.Context, submit discount.Input, tag uint64, refresh bool) error {
	release, err := c.seq.acquire(ctx, keyAgeDiscount, tag)
	if err != nil {
		return errs.Wrap(err, "update age discount")
	}
	defer release()

	reply, err := c.authority.UpdateAgeDiscount(ctx, c.cfg.ReservationID, submit)
	if !c.seq.isLatest(keyAgeDiscount, tag) {
		c.logger.Debug("dropping superseded age discount sync")
		return errs.ErrStaleResponse
	}
	if err != nil {
		c.logger.Warn("age discount sync failed", "error", err)
		c.alerts.Show(alert.NetworkError())
		return errs.Mark(errs.Wrap(err, "update age discount"), errs.ErrTransport)
	}
	if !reply.OK() {
		c.logger.Info("age discount rejected", "under_age", submit.UnderAge, "over_age", submit.OverAge)
		c.alerts.Show(alert.CartUpdateError())
		return errs.Mark(errs.New("age discount rejected"), errs.ErrDomainFailure)
	}

	c.mu.Lock()
	c.ackedAge = submit
	c.mu.Unlock()

	if refresh {
		return c.refreshCart(ctx)
	}
	return nil
}

// pendingAgePush reports whether the submitted age pair changed since the
// authority last acknowledged one, e.g. because a toggle invalidated it, and
// tags the push when it does.
func (c *SyncController) pendingAgePush() (discount.Input, uint64, bool) {
	if !c.cfg.AgeDiscountEnabled {
		return discount.Input{}, 0, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.age.Submit == c.ackedAge {
		return c.age.Submit, 0, false
	}
	return c.age.Submit, c.seq.next(keyAgeDiscount), true
}

// rollbackSeat restores prev unless a newer toggle of the seat was made
// after the failed one. It reports whether the rollback happened.
func (c *SyncController) rollbackSeat(id seat.ID, prev seat.Status, key string, tag uint64) bool {
	c.mu.Lock()
	if !c.seq.isLatest(key, tag) {
		c.mu.Unlock()
		return false
	}
	if err := c.seats.Set(id, prev); err != nil {
		c.logger.Error("seat rollback failed", "seat_id", id.String(), "error", err)
	}
	c.applySelectedCountLocked()
	sel := c.selectionLocked()
	c.mu.Unlock()
	c.view.RenderSelection(sel)
	return true
}

// applySelectedCountLocked re-derives checkout visibility and the age
// discount validity from the current selected-seat count.
func (c *SyncController) applySelectedCountLocked() {
	n := c.seats.SelectedCount()
	tr, _ := checkout.Next(c.visibility, checkout.ForSelectedCount(n))
	c.visibility = tr.To
	if tr.ResetAgeInputs {
		c.ageInput = discount.Input{}
		c.age = discount.Reset()
		return
	}
	c.age = discount.Validate(c.ageInput, n)
}

func (c *SyncController) selectionLocked() SelectionState {
	ids := c.seats.Seats()
	seats := make([]SeatView, 0, len(ids))
	n := 0
	for _, id := range ids {
		st, _ := c.seats.Status(id)
		if st == seat.StatusSelected {
			n++
		}
		seats = append(seats, SeatView{ID: id, Status: st})
	}
	return SelectionState{
		Seats:         seats,
		SelectedCount: n,
		Visibility:    c.visibility,
		AgeInput:      c.ageInput,
		AgeValidity:   c.age.State(),
	}
}
