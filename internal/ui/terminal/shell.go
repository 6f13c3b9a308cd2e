package terminal

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"cinema-checkout/internal/domain/alert"
	"cinema-checkout/internal/domain/discount"
	"cinema-checkout/internal/domain/seat"
	"cinema-checkout/internal/pkg/errs"
	"cinema-checkout/internal/usecase"
)

//go:generate mockgen -source=shell.go -destination=../../../tests/mock/terminal/shell.go -package=terminalmock

// Controller is the part of the sync controller the shell drives.
type Controller interface {
	ToggleSeat(ctx context.Context, id seat.ID) error
	ChangeAgeDiscount(ctx context.Context, in discount.Input) error
	GoToCheckout() error
	SubmitCoupon(ctx context.Context, form usecase.CouponForm) error
	SubmitPayment(ctx context.Context, form usecase.PaymentForm) error
	RefreshCart(ctx context.Context) error
	CloseAlert()
	Alert() (alert.Request, bool)
	State() usecase.ViewState
}

const helpText = `Commands:
  seats                                        show the seating map
  toggle <seat> [seat...]                      select or release seats
  age <under> <over>                           spectators entitled to the age discount
  checkout                                     open the checkout forms
  coupon <code>                                apply a coupon
  pay <email> <card-number> <cvv> <MM/YY> <owner>
  cart                                         show the cart
  close                                        close the open dialog
  back                                         leave the checkout
  help                                         show this help
  quit                                         exit`

// Shell is the single dispatch layer between typed commands and the
// controller.
type Shell struct {
	ctrl   Controller
	r      *Renderer
	logger *slog.Logger
}

func NewShell(ctrl Controller, r *Renderer, logger *slog.Logger) *Shell {
	if logger == nil {
		logger = slog.Default()
	}
	return &Shell{ctrl: ctrl, r: r, logger: logger}
}

// Run reads commands until quit, back, EOF or ctx is done.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.r.RenderSelection(s.ctrl.State().Selection)
	s.r.Notice("Type 'help' for the list of commands.")

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- sc.Err()
	}()

	for {
		s.r.Prompt()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			if done := s.Execute(ctx, line); done {
				return nil
			}
		}
	}
}

// Execute runs one command line and reports whether the session is over.
func (s *Shell) Execute(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "quit", "exit":
		return true
	case "help":
		s.r.Notice(helpText)
		return false
	}

	if req, open := s.ctrl.Alert(); open {
		return s.answerDialog(req, cmd)
	}

	switch cmd {
	case "seats":
		s.r.RenderSelection(s.ctrl.State().Selection)
	case "toggle":
		if len(args) == 0 {
			s.r.Notice("usage: toggle <seat> [seat...]")
			return false
		}
		for _, id := range args {
			if err := s.ctrl.ToggleSeat(ctx, seat.ID(strings.ToUpper(id))); err != nil {
				s.report(err)
				break
			}
		}
	case "age":
		in, err := parseAge(args)
		if err != nil {
			s.r.Notice("usage: age <under> <over> (non-negative numbers)")
			return false
		}
		s.report(s.ctrl.ChangeAgeDiscount(ctx, in))
	case "checkout":
		s.report(s.ctrl.GoToCheckout())
	case "coupon":
		s.report(s.ctrl.SubmitCoupon(ctx, usecase.CouponForm{Code: strings.Join(args, "")}))
	case "pay":
		if len(args) < 5 {
			s.r.Notice("usage: pay <email> <card-number> <cvv> <MM/YY> <owner>")
			return false
		}
		s.report(s.ctrl.SubmitPayment(ctx, usecase.PaymentForm{
			Email:      args[0],
			CardNumber: args[1],
			CVV:        args[2],
			Expiration: args[3],
			Owner:      strings.Join(args[4:], " "),
		}))
	case "cart":
		state := s.ctrl.State().Cart
		if !state.Loaded {
			s.r.Notice("The cart is empty.")
			return false
		}
		s.r.RenderCart(state)
	case "back":
		s.r.Notice("Leaving the checkout.")
		return true
	case "close":
		s.r.Notice("There is no dialog to close.")
	default:
		s.r.Notice("Unknown command %q, type 'help'.", cmd)
	}
	return false
}

// answerDialog only accepts the affordances of the open dialog.
func (s *Shell) answerDialog(req alert.Request, cmd string) bool {
	a := alert.Affordance(cmd)
	if !req.Allows(a) {
		s.r.Notice("Answer the dialog first (%s).", affordanceList(req))
		return false
	}
	s.ctrl.CloseAlert()
	if a == alert.AffordanceBack {
		s.r.Notice("Returning to the previous page.")
		return true
	}
	return false
}

func affordanceList(req alert.Request) string {
	names := make([]string, 0, 1)
	for _, a := range req.Affordances() {
		names = append(names, "'"+string(a)+"'")
	}
	return strings.Join(names, " or ")
}

func parseAge(args []string) (discount.Input, error) {
	if len(args) != 2 {
		return discount.Input{}, errors.New("two counts expected")
	}
	under, err := strconv.Atoi(args[0])
	if err != nil {
		return discount.Input{}, err
	}
	over, err := strconv.Atoi(args[1])
	if err != nil {
		return discount.Input{}, err
	}
	return discount.NewInput(under, over)
}

// report turns local errors into inline notices. Round-trip failures have
// already been shown as a dialog.
func (s *Shell) report(err error) {
	if err == nil {
		return
	}
	var fe *usecase.FormError
	switch {
	case errs.Is(err, errs.ErrDomainFailure), errs.Is(err, errs.ErrTransport):
	case errs.Is(err, errs.ErrStaleResponse):
		s.logger.Debug("stale response ignored", "error", err)
	case errors.As(err, &fe):
		names := make([]string, 0, len(fe.Fields))
		for _, f := range fe.Fields {
			names = append(names, f.Field)
		}
		s.r.Notice("Please check: %s", strings.Join(names, ", "))
	case errs.Is(err, errs.ErrFormInvalid):
		s.r.Notice("Invalid input: %v", err)
	case errs.Is(err, errs.ErrCouponLocked):
		s.r.Notice("A coupon has already been applied.")
	case errs.Is(err, errs.ErrCheckoutUnavailable):
		s.r.Notice("Select at least one seat, then type 'checkout'.")
	case errs.Is(err, seat.ErrUnknownSeat):
		s.r.Notice("No such seat on this map.")
	case errs.Is(err, usecase.ErrAgeDiscountDisabled):
		s.r.Notice("The age discount is not available for this projection.")
	case errs.Is(err, usecase.ErrAlreadyPurchased):
		s.r.Notice("This reservation has already been paid.")
	default:
		s.logger.Error("unexpected controller error", "error", err)
		s.r.Notice("Something went wrong: %v", err)
	}
}
