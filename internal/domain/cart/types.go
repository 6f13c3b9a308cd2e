package cart

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidAmount = errors.New("invalid decimal amount")

type Outcome string

const (
	OutcomeOK      Outcome = "ok"
	OutcomeFailure Outcome = "failure"
)

type DiscountKind string

const (
	DiscountAge    DiscountKind = "AGE"
	DiscountNumber DiscountKind = "NUMBER"
	DiscountDay    DiscountKind = "DAY"
	DiscountNone   DiscountKind = "NONE"
)

// ParseDiscountKind never fails: kinds this client does not know about
// degrade to DiscountNone.
func ParseDiscountKind(v string) DiscountKind {
	switch DiscountKind(v) {
	case DiscountAge, DiscountNumber, DiscountDay:
		return DiscountKind(v)
	default:
		return DiscountNone
	}
}

func (k DiscountKind) String() string {
	return string(k)
}

func (k DiscountKind) Label() string {
	switch k {
	case DiscountAge:
		return "Age discount"
	case DiscountNumber:
		return "Group discount"
	case DiscountDay:
		return "Projection-day discount"
	default:
		return ""
	}
}

// Amount is a decimal monetary value kept in its wire form ('.' separator).
type Amount struct {
	text string
}

func ParseAmount(v string) (Amount, error) {
	v = strings.TrimSpace(v)
	digits, dots := 0, 0
	for i, r := range v {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			dots++
		case r == '-' && i == 0:
		default:
			return Amount{}, ErrInvalidAmount
		}
	}
	if digits == 0 || dots > 1 {
		return Amount{}, ErrInvalidAmount
	}
	return Amount{text: v}, nil
}

func MustAmount(v string) Amount {
	a, err := ParseAmount(v)
	if err != nil {
		panic(fmt.Sprintf("cart: %q is not a decimal amount", v))
	}
	return a
}

// AmountFromCents formats cents with two decimals.
func AmountFromCents(cents int64) Amount {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return Amount{text: fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)}
}

func (a Amount) String() string {
	if a.text == "" {
		return "0.00"
	}
	return a.text
}

// Display renders the amount with the locale decimal separator.
func (a Amount) Display() string {
	return strings.Replace(a.String(), ".", ",", 1)
}
