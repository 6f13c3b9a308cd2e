package coupon

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrCouponAlreadyUsed  = errors.New("coupon already used")
	ErrInvalidCatalogItem = errors.New("invalid coupon catalog entry")
)

// Coupon is single use: once redeemed it cannot be applied again.
type Coupon struct {
	code     Code
	discount Discount
	used     bool
}

func NewCoupon(code string, discount Discount) (*Coupon, error) {
	couponCode, err := NewCouponCode(code)
	if err != nil {
		return nil, err
	}
	return &Coupon{code: couponCode, discount: discount}, nil
}

func (c *Coupon) Redeem() error {
	if c.used {
		return ErrCouponAlreadyUsed
	}
	c.used = true
	return nil
}

// Release makes a redeemed coupon available again.
func (c *Coupon) Release() {
	c.used = false
}

func (c *Coupon) Clone() *Coupon {
	cp := *c
	return &cp
}

func (c *Coupon) ApplyDiscount(basePriceCents int64) int64 {
	return c.discount.Apply(basePriceCents)
}

func (c *Coupon) Code() Code         { return c.code }
func (c *Coupon) Discount() Discount { return c.discount }
func (c *Coupon) IsUsed() bool       { return c.used }

// ParseCatalog reads "CODE:cents" or "CODE:percent%" entries.
func ParseCatalog(entries []string) ([]*Coupon, error) {
	coupons := make([]*Coupon, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		code, value, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, errors.Join(ErrInvalidCatalogItem, errors.New(entry))
		}
		discount, err := parseDiscount(strings.TrimSpace(value))
		if err != nil {
			return nil, errors.Join(ErrInvalidCatalogItem, err)
		}
		c, err := NewCoupon(code, discount)
		if err != nil {
			return nil, errors.Join(ErrInvalidCatalogItem, err)
		}
		coupons = append(coupons, c)
	}
	return coupons, nil
}

func parseDiscount(v string) (Discount, error) {
	if pct, ok := strings.CutSuffix(v, "%"); ok {
		f, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return Discount{}, err
		}
		return NewPercentageDiscount(f)
	}
	cents, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return Discount{}, err
	}
	return NewFixedDiscount(cents)
}
