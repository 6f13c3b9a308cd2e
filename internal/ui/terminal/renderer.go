package terminal

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"cinema-checkout/internal/domain/alert"
	"cinema-checkout/internal/domain/seat"
	"cinema-checkout/internal/usecase"
)

const currency = "€"

// Renderer prints controller snapshots and dialogs. Writes are serialized
// since completions may arrive from several goroutines.
type Renderer struct {
	mu  sync.Mutex
	out io.Writer
}

var (
	_ usecase.View  = (*Renderer)(nil)
	_ alert.Display = (*Renderer)(nil)
)

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

func (r *Renderer) RenderSelection(state usecase.SelectionState) {
	var b strings.Builder
	b.WriteString("Seats:")
	for _, s := range state.Seats {
		if s.Status == seat.StatusSelected {
			fmt.Fprintf(&b, " [%s]", s.ID)
		} else {
			fmt.Fprintf(&b, " %s", s.ID)
		}
	}
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Selected: %d | Checkout: %s\n", state.SelectedCount, checkoutLabel(state))
	if state.SelectedCount > 0 {
		fmt.Fprintf(&b, "Age discount: under %d, over %d (%s)\n",
			state.AgeInput.UnderAge, state.AgeInput.OverAge, state.AgeValidity)
	}
	r.write(b.String())
}

func checkoutLabel(state usecase.SelectionState) string {
	switch {
	case state.Visibility.FormsVisible():
		return "open"
	case state.Visibility.CanGoToCheckout():
		return "available (type 'checkout')"
	default:
		return "select a seat first"
	}
}

func (r *Renderer) RenderCart(state usecase.CartState) {
	if !state.Loaded {
		return
	}
	s := state.Summary
	var b strings.Builder
	b.WriteString("Cart\n")
	fmt.Fprintf(&b, "  %-26s %d\n", "Tickets", s.Seats)
	fmt.Fprintf(&b, "  %-26s %s %s\n", "Full price", s.FullPrice.Display(), currency)
	if label := s.Discount.Label(); label != "" {
		fmt.Fprintf(&b, "  %-26s -%s %s\n", label, s.DiscountAmount.Display(), currency)
	}
	if state.CouponRowVisible {
		fmt.Fprintf(&b, "  %-26s -%s %s\n", "Coupon "+s.Coupon, s.CouponDiscount.Display(), currency)
	}
	fmt.Fprintf(&b, "  %-26s %s %s\n", "Total", s.Total.Display(), currency)
	r.write(b.String())
}

func (r *Renderer) RenderForms(coupon, payment usecase.FormState) {
	var b strings.Builder
	if coupon.Locked {
		b.WriteString("Coupon: applied\n")
	}
	if payment.Validated {
		b.WriteString("Payment: check the highlighted fields\n")
	}
	r.write(b.String())
}

// Present draws the dialog with the affordances it allows.
func (r *Renderer) Present(req alert.Request) {
	var b strings.Builder
	rule := strings.Repeat("-", 48)
	mark := "!"
	if req.Severity == alert.SeveritySuccess {
		mark = "*"
	}
	fmt.Fprintf(&b, "+%s\n| %s %s\n+%s\n| %s\n", rule, mark, req.Title, rule, req.Body)
	actions := make([]string, 0, 1)
	for _, a := range req.Affordances() {
		actions = append(actions, "'"+string(a)+"'")
	}
	fmt.Fprintf(&b, "| type %s to continue\n+%s\n", strings.Join(actions, " or "), rule)
	r.write(b.String())
}

// Notice prints a one-line message outside any dialog.
func (r *Renderer) Notice(format string, args ...any) {
	r.write(fmt.Sprintf(format, args...) + "\n")
}

func (r *Renderer) Prompt() {
	r.write("> ")
}

func (r *Renderer) write(s string) {
	if s == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = io.WriteString(r.out, s)
}
