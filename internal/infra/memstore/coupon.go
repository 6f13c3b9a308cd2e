package memstore

import (
	"context"

	"cinema-checkout/internal/domain/coupon"
	"cinema-checkout/internal/infra"
)

type couponRepository struct {
	tx *tx
}

// FindByCode returns a copy reflecting redemptions staged in this tx.
func (r *couponRepository) FindByCode(_ context.Context, code coupon.Code) (*coupon.Coupon, error) {
	c, ok := r.tx.store.coupons[code]
	if !ok {
		return nil, infra.NewError(infra.KindNotFound, "coupon "+code.String())
	}
	cp := c.Clone()
	if _, staged := r.tx.redeemed[code]; staged {
		_ = cp.Redeem()
	}
	return cp, nil
}

func (r *couponRepository) MarkRedeemed(ctx context.Context, code coupon.Code) error {
	c, err := r.FindByCode(ctx, code)
	if err != nil {
		return err
	}
	if c.IsUsed() {
		return coupon.ErrCouponAlreadyUsed
	}
	r.tx.redeemed[code] = struct{}{}
	return nil
}
