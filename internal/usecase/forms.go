package usecase

import (
	"errors"
	"reflect"
	"strings"

	"cinema-checkout/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

type CouponForm struct {
	Code string `form:"coupon-code" validate:"required,alphanum,max=32"`
}

type PaymentForm struct {
	Email      string `form:"email" validate:"required,email"`
	Owner      string `form:"card-owner" validate:"required,max=100"`
	CardNumber string `form:"card-number" validate:"required,credit_card"`
	CVV        string `form:"card-cvv" validate:"required,numeric,min=3,max=4"`
	Expiration string `form:"card-expiration" validate:"required,datetime=01/06"`
}

// Normalized trims what a user typically pastes around a code.
func (f CouponForm) Normalized() CouponForm {
	f.Code = strings.TrimSpace(f.Code)
	return f
}

func (f PaymentForm) Normalized() PaymentForm {
	f.Email = strings.TrimSpace(f.Email)
	f.Owner = strings.TrimSpace(f.Owner)
	f.CardNumber = strings.ReplaceAll(strings.TrimSpace(f.CardNumber), " ", "")
	f.CVV = strings.TrimSpace(f.CVV)
	f.Expiration = strings.TrimSpace(f.Expiration)
	return f
}

// FieldError names a form field that failed validation.
type FieldError struct {
	Field string
	Rule  string
}

// FormError carries the per-field feedback of a rejected form.
type FormError struct {
	Fields []FieldError
}

func (e *FormError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return "invalid fields: " + strings.Join(names, ", ")
}

// FormValidator stands in for native browser field validation.
type FormValidator struct {
	validate *validator.Validate
}

func NewFormValidator() *FormValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return formName(f.Tag.Get("form"), f.Name)
	})
	return &FormValidator{validate: v}
}

// Validate returns nil or an error marked with errs.ErrFormInvalid whose
// chain holds a *FormError.
func (v *FormValidator) Validate(form any) error {
	err := v.validate.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errs.Mark(err, errs.ErrFormInvalid)
	}
	fe := &FormError{Fields: make([]FieldError, 0, len(verrs))}
	for _, ve := range verrs {
		fe.Fields = append(fe.Fields, FieldError{Field: ve.Field(), Rule: ve.Tag()})
	}
	return errs.Mark(fe, errs.ErrFormInvalid)
}

func formName(tag, fallback string) string {
	name := strings.SplitN(tag, ",", 2)[0]
	if name == "" || name == "-" {
		return fallback
	}
	return name
}
