package discount

import "errors"

var ErrNegativeCount = errors.New("age bracket count cannot be negative")

// Input holds the number of spectators in the two discounted age brackets.
type Input struct {
	UnderAge int
	OverAge  int
}

func NewInput(underAge, overAge int) (Input, error) {
	if underAge < 0 || overAge < 0 {
		return Input{}, ErrNegativeCount
	}
	return Input{UnderAge: underAge, OverAge: overAge}, nil
}

func (in Input) Total() int {
	return in.UnderAge + in.OverAge
}

func (in Input) IsZero() bool {
	return in.UnderAge == 0 && in.OverAge == 0
}

type Validity string

const (
	Valid   Validity = "valid"
	Invalid Validity = "invalid"
)

func (v Validity) String() string {
	return string(v)
}

// Result is the outcome of one validation pass. Submit is what the
// authority receives; it is never the raw input when Valid is false.
type Result struct {
	Valid  bool
	Submit Input
	Extra  int
}

// State derives the presentation state from the same flag as Submit.
func (r Result) State() Validity {
	if r.Valid {
		return Valid
	}
	return Invalid
}

// Validate enforces UnderAge+OverAge <= selected. An over-claimed pair is
// submitted as 0/0 until it is back in range.
func Validate(in Input, selected int) Result {
	extra := in.Total() - selected
	if extra <= 0 {
		return Result{Valid: true, Submit: in, Extra: extra}
	}
	return Result{Valid: false, Submit: Input{}, Extra: extra}
}

// Reset is the state the inputs fall back to when no seat is selected.
func Reset() Result {
	return Validate(Input{}, 0)
}
