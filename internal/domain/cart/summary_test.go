//go:build unit

package cart_test

import (
	"testing"

	"cinema-checkout/internal/domain/cart"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(cart.Amount{}),
}

func TestParse(t *testing.T) {
	t.Run("success summary without coupon", func(t *testing.T) {
		actual, err := cart.Parse("ok\n2\n20.00\nAGE\n4.00\nno coupon\n0.00\n16.00")
		require.NoError(t, err)

		expected := cart.Summary{
			Outcome:        cart.OutcomeOK,
			Seats:          2,
			FullPrice:      cart.MustAmount("20.00"),
			Discount:       cart.DiscountAge,
			DiscountAmount: cart.MustAmount("4.00"),
			Coupon:         cart.NoCoupon,
			CouponDiscount: cart.MustAmount("0.00"),
			Total:          cart.MustAmount("16.00"),
		}
		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("Summary mismatch (-want +got):\n%s", diff)
		}
		assert.False(t, actual.HasCoupon())
		assert.Equal(t, "20.00", actual.FullPrice.String())
	})

	t.Run("success summary with coupon", func(t *testing.T) {
		actual, err := cart.Parse("ok\n3\n30.00\nNUMBER\n0.00\nWELCOME2026\n5.00\n25.00\n")
		require.NoError(t, err)

		assert.True(t, actual.OK())
		assert.True(t, actual.HasCoupon())
		assert.Equal(t, "WELCOME2026", actual.Coupon)
		assert.Equal(t, cart.DiscountNumber, actual.Discount)
	})

	t.Run("failure sentinel reads nothing else", func(t *testing.T) {
		for _, raw := range []string{
			"error",
			"",
			"ko\n2\n20.00",
			"OK\n1\n10.00\nAGE\n0.00\nno coupon\n0.00\n10.00",
			" ok\n1\n10.00\nAGE\n0.00\nno coupon\n0.00\n10.00",
			"ok \n1\n10.00\nAGE\n0.00\nno coupon\n0.00\n10.00",
		} {
			actual, err := cart.Parse(raw)
			require.NoError(t, err)
			assert.Equal(t, cart.Failure(), actual)
			assert.False(t, actual.HasCoupon())
		}
	})

	t.Run("only the no coupon sentinel hides the coupon row", func(t *testing.T) {
		actual, err := cart.Parse("ok\n1\n10.00\nNONE\n0.00\n\n0.00\n10.00")
		require.NoError(t, err)

		assert.Empty(t, actual.Coupon)
		assert.True(t, actual.HasCoupon())
	})

	t.Run("unknown discount kind degrades to none", func(t *testing.T) {
		actual, err := cart.Parse("ok\n1\n10.00\nLOYALTY\n1.00\nno coupon\n0.00\n9.00")
		require.NoError(t, err)

		assert.Equal(t, cart.DiscountNone, actual.Discount)
		assert.Empty(t, actual.Discount.Label())
	})

	t.Run("malformed success bodies are failures", func(t *testing.T) {
		for _, raw := range []string{
			"ok\n2\n20.00",
			"ok\ntwo\n20.00\nAGE\n4.00\nno coupon\n0.00\n16.00",
			"ok\n2\n20,00\nAGE\n4.00\nno coupon\n0.00\n16.00",
			"ok\n2\n20.00\nAGE\n4.00\nno coupon\n0.00\nNaN",
		} {
			actual, err := cart.Parse(raw)
			require.ErrorIs(t, err, cart.ErrMalformedSummary, raw)
			assert.False(t, actual.OK())
		}
	})

	t.Run("format round trips", func(t *testing.T) {
		raw := "ok\n2\n20.00\nDAY\n2.00\nCINEFORUM10\n10.00\n8.00"
		parsed, err := cart.Parse(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, cart.Format(parsed))
		assert.Equal(t, "error", cart.Format(cart.Failure()))
	})
}

func TestAmount(t *testing.T) {
	assert.Equal(t, "16,00", cart.MustAmount("16.00").Display())
	assert.Equal(t, "12.05", cart.AmountFromCents(1205).String())
	assert.Equal(t, "-0.50", cart.AmountFromCents(-50).String())
	assert.Equal(t, "0.00", cart.Amount{}.String())

	for _, bad := range []string{"", "1.2.3", "1e3", "abc", "-", "."} {
		_, err := cart.ParseAmount(bad)
		assert.ErrorIs(t, err, cart.ErrInvalidAmount, bad)
	}
}

func TestDiscountKindLabel(t *testing.T) {
	assert.Equal(t, "Age discount", cart.DiscountAge.Label())
	assert.Equal(t, "Group discount", cart.DiscountNumber.Label())
	assert.Equal(t, "Projection-day discount", cart.DiscountDay.Label())
	assert.Equal(t, cart.DiscountNone, cart.ParseDiscountKind("whatever"))
}
