package errs

import "errors"

// Sentinel errors shared by the checkout client and the sandbox authority.
// Callers classify with errors.Is after errs.Mark.
var (
	// Round-trip outcomes
	ErrDomainFailure = errors.New("authority rejected the request")
	ErrTransport     = errors.New("authority unreachable")
	ErrStaleResponse = errors.New("response superseded by a newer request")

	// Local validation
	ErrFormInvalid = errors.New("form validation failed")

	// Checkout flow
	ErrCouponLocked         = errors.New("coupon already applied")
	ErrCheckoutUnavailable  = errors.New("checkout not available")
	ErrReservationNotFound  = errors.New("reservation not found")
	ErrInvalidReservationID = errors.New("invalid reservation id")
)
