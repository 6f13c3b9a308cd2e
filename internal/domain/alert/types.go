package alert

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityFailure Severity = "failure"
)

func (s Severity) String() string {
	return string(s)
}

type Dismissal string

const (
	// Dismissible dialogs close in place and allow backdrop/keyboard dismissal.
	Dismissible Dismissal = "dismissible"
	// ForcedNavigation dialogs only offer going back to the previous page.
	ForcedNavigation Dismissal = "forced-navigation"
)

func (d Dismissal) String() string {
	return string(d)
}

type Affordance string

const (
	AffordanceClose Affordance = "close"
	AffordanceBack  Affordance = "back"
)

// Request is the content of one dialog. Title and Body always travel
// together.
type Request struct {
	Severity  Severity
	Dismissal Dismissal
	Title     string
	Body      string
}

func (r Request) Affordances() []Affordance {
	if r.Dismissal == ForcedNavigation {
		return []Affordance{AffordanceBack}
	}
	return []Affordance{AffordanceClose}
}

func (r Request) AllowsBackdropDismiss() bool {
	return r.Dismissal != ForcedNavigation
}

func (r Request) Allows(a Affordance) bool {
	for _, allowed := range r.Affordances() {
		if allowed == a {
			return true
		}
	}
	return false
}

// NetworkError is shared by every transport failure so they all look the same.
func NetworkError() Request {
	return Request{
		Severity:  SeverityFailure,
		Dismissal: ForcedNavigation,
		Title:     "Network error",
		Body:      "A network error occurred: the server could not be reached. Please try again later.",
	}
}

func SeatSyncError() Request {
	return Request{
		Severity:  SeverityFailure,
		Dismissal: Dismissible,
		Title:     "Synchronization error",
		Body:      "The status of the selected seat could not be updated. Please try again later.",
	}
}

func CartUpdateError() Request {
	return Request{
		Severity:  SeverityFailure,
		Dismissal: ForcedNavigation,
		Title:     "Cart update error",
		Body:      "An error occurred while updating the shopping cart.",
	}
}

func CouponRejected() Request {
	return Request{
		Severity:  SeverityFailure,
		Dismissal: Dismissible,
		Title:     "Coupon not applied",
		Body:      "The coupon could not be applied. Check that the code is correct and try again.",
	}
}

func PurchaseFailed() Request {
	return Request{
		Severity:  SeverityFailure,
		Dismissal: ForcedNavigation,
		Title:     "Purchase failed",
		Body:      "An error occurred while completing the purchase.",
	}
}

func PurchaseCompleted() Request {
	return Request{
		Severity:  SeveritySuccess,
		Dismissal: ForcedNavigation,
		Title:     "Purchase completed. Thank you!",
		Body:      "Your purchase was successful. You will shortly receive an e-mail with the reservation receipt to show at the entrance.",
	}
}
