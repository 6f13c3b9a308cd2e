package cart

import (
	"errors"
	"strconv"
	"strings"

	"cinema-checkout/internal/pkg/errs"
)

const (
	successSentinel = "ok"
	NoCoupon        = "no coupon"
	tokenCount      = 8
)

var ErrMalformedSummary = errors.New("malformed cart summary")

// Summary is one full snapshot of the cart as computed by the authority.
// When Outcome is OutcomeFailure no other field is meaningful.
type Summary struct {
	Outcome        Outcome
	Seats          int
	FullPrice      Amount
	Discount       DiscountKind
	DiscountAmount Amount
	Coupon         string
	CouponDiscount Amount
	Total          Amount
}

func Failure() Summary {
	return Summary{Outcome: OutcomeFailure}
}

func (s Summary) OK() bool {
	return s.Outcome == OutcomeOK
}

// HasCoupon gates the coupon row on the "no coupon" sentinel only.
func (s Summary) HasCoupon() bool {
	return s.OK() && s.Coupon != NoCoupon
}

// Parse decodes the newline separated summary. A body that does not start
// with the success sentinel is a failure and nothing else is read. A
// success body that cannot be decoded is a failure as well, reported with
// ErrMalformedSummary so callers can log the cause.
func Parse(raw string) (Summary, error) {
	tokens := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	if tokens[0] != successSentinel {
		return Failure(), nil
	}
	if len(tokens) < tokenCount {
		return Failure(), errs.Wrapf(ErrMalformedSummary, "expected %d tokens, got %d", tokenCount, len(tokens))
	}

	seats, err := strconv.Atoi(strings.TrimSpace(tokens[1]))
	if err != nil || seats < 0 {
		return Failure(), errs.Wrapf(ErrMalformedSummary, "seat count %q", tokens[1])
	}

	amounts := make([]Amount, 0, 4)
	for _, idx := range []int{2, 4, 6, 7} {
		a, err := ParseAmount(tokens[idx])
		if err != nil {
			return Failure(), errs.Wrapf(ErrMalformedSummary, "token %d: %q", idx, tokens[idx])
		}
		amounts = append(amounts, a)
	}

	return Summary{
		Outcome:        OutcomeOK,
		Seats:          seats,
		FullPrice:      amounts[0],
		Discount:       ParseDiscountKind(strings.TrimSpace(tokens[3])),
		DiscountAmount: amounts[1],
		Coupon:         strings.TrimSpace(tokens[5]),
		CouponDiscount: amounts[2],
		Total:          amounts[3],
	}, nil
}

// Format is the inverse of Parse.
func Format(s Summary) string {
	if !s.OK() {
		return "error"
	}
	coupon := s.Coupon
	if coupon == "" {
		coupon = NoCoupon
	}
	discount := s.Discount
	if discount == "" {
		discount = DiscountNone
	}
	return strings.Join([]string{
		successSentinel,
		strconv.Itoa(s.Seats),
		s.FullPrice.String(),
		discount.String(),
		s.DiscountAmount.String(),
		coupon,
		s.CouponDiscount.String(),
		s.Total.String(),
	}, "\n")
}
