//go:build unit || e2e

package builder

import (
	"net/url"

	"cinema-checkout/internal/usecase/commands"
)

type PaymentBuilder struct {
	Email      string
	Owner      string
	CardNumber string
	CVV        string
	Expiration string
}

func NewPaymentBuilder() *PaymentBuilder {
	return &PaymentBuilder{
		Email:      "mario.rossi@example.com",
		Owner:      "Mario Rossi",
		CardNumber: "4242 4242 4242 4242",
		CVV:        "123",
		Expiration: "12/30",
	}
}

func (p *PaymentBuilder) With(mutate func(*PaymentBuilder)) *PaymentBuilder {
	mutate(p)
	return p
}

func (p *PaymentBuilder) BuildDetails() commands.PaymentDetails {
	return commands.PaymentDetails{
		Email:      p.Email,
		Owner:      p.Owner,
		CardNumber: p.CardNumber,
		CVV:        p.CVV,
		Expiration: p.Expiration,
	}
}

func (p *PaymentBuilder) BuildForm(reservationID string) url.Values {
	return url.Values{
		"reservation-id":  {reservationID},
		"email":           {p.Email},
		"card-owner":      {p.Owner},
		"card-number":     {p.CardNumber},
		"card-cvv":        {p.CVV},
		"card-expiration": {p.Expiration},
	}
}
