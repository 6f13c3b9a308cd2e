package coupon

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidCouponCode      = errors.New("invalid coupon code format")
	ErrInvalidDiscountAmount  = errors.New("discount amount cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
)

const MinCodeLength = 8

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9]{8,32}$`)

type Code string

func NewCouponCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type Discount struct {
	amountOffCents *int64
	percentOff     *float64
}

func NewFixedDiscount(amountOffCents int64) (Discount, error) {
	if amountOffCents < 0 {
		return Discount{}, ErrInvalidDiscountAmount
	}
	return Discount{amountOffCents: &amountOffCents}, nil
}

func NewPercentageDiscount(percentOff float64) (Discount, error) {
	if percentOff < 0 || percentOff > 100 {
		return Discount{}, ErrInvalidDiscountPercent
	}
	return Discount{percentOff: &percentOff}, nil
}

func (d Discount) IsPercentage() bool {
	return d.percentOff != nil
}

func (d Discount) IsFixed() bool {
	return d.amountOffCents != nil
}

func (d Discount) AmountOffCents() int64 {
	if d.amountOffCents != nil {
		return *d.amountOffCents
	}
	return 0
}

func (d Discount) PercentOff() float64 {
	if d.percentOff != nil {
		return *d.percentOff
	}
	return 0
}

func (d Discount) Apply(basePriceCents int64) int64 {
	return basePriceCents - d.CalculateDiscountAmount(basePriceCents)
}

// CalculateDiscountAmount never exceeds the price it is applied to.
func (d Discount) CalculateDiscountAmount(priceCents int64) int64 {
	if priceCents <= 0 {
		return 0
	}
	if d.IsPercentage() {
		return int64(float64(priceCents) * (d.PercentOff() / 100.0))
	}
	if d.AmountOffCents() > priceCents {
		return priceCents
	}
	return d.AmountOffCents()
}
