package commands

import (
	"errors"
	"strings"
	"time"

	"cinema-checkout/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

var (
	ErrInvalidEmail      = errs.New("invalid email")
	ErrInvalidCardNumber = errs.New("invalid card number")
	ErrInvalidCVV        = errs.New("invalid card security code")
	ErrCardExpired       = errs.New("card expired")
	ErrInvalidExpiration = errs.New("invalid card expiration")
	ErrMissingCardOwner  = errs.New("card owner required")
)

const expirationLayout = "01/06"

var paymentValidate = validator.New(validator.WithRequiredStructEnabled())

type paymentInput struct {
	Email      string `validate:"required,email"`
	Owner      string `validate:"required,max=100"`
	CardNumber string `validate:"required,number,min=13,max=19,credit_card"`
	CVV        string `validate:"required,number,min=3,max=4"`
	Expiration string `validate:"required,datetime=01/06"`
}

var paymentFieldErrors = map[string]error{
	"Email":      ErrInvalidEmail,
	"Owner":      ErrMissingCardOwner,
	"CardNumber": ErrInvalidCardNumber,
	"CVV":        ErrInvalidCVV,
	"Expiration": ErrInvalidExpiration,
}

// Validate checks the payment the way a card processor would before
// charging it. Expiration is MM/YY and a card is good through the end of
// that month.
func (p PaymentDetails) Validate(now time.Time) error {
	in := paymentInput{
		Email:      strings.TrimSpace(p.Email),
		Owner:      strings.TrimSpace(p.Owner),
		CardNumber: strings.ReplaceAll(strings.TrimSpace(p.CardNumber), " ", ""),
		CVV:        strings.TrimSpace(p.CVV),
		Expiration: strings.TrimSpace(p.Expiration),
	}
	if err := paymentValidate.Struct(in); err != nil {
		return mapPaymentErr(err)
	}

	exp, err := time.Parse(expirationLayout, in.Expiration)
	if err != nil {
		return errs.Wrap(ErrInvalidExpiration, err.Error())
	}
	if !now.Before(exp.AddDate(0, 1, 0)) {
		return ErrCardExpired
	}
	return nil
}

// mapPaymentErr reports the first failing field in declaration order.
func mapPaymentErr(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return errs.Wrap(err, "validate payment")
	}
	first := verrs[0]
	target, ok := paymentFieldErrors[first.StructField()]
	if !ok {
		return errs.Wrap(err, "validate payment")
	}
	return errs.Wrapf(target, "%s failed on %s", first.StructField(), first.Tag())
}
