package checkout

// Visibility is the state of the checkout section.
type Visibility string

const (
	// Hidden: no seat selected, the "go to checkout" control is disabled.
	Hidden Visibility = "hidden"
	// Revealable: at least one seat selected, the control is enabled.
	Revealable Visibility = "revealable"
	// Expanded: the checkout forms are shown.
	Expanded Visibility = "expanded"
)

func (v Visibility) String() string {
	return string(v)
}

func (v Visibility) CanGoToCheckout() bool {
	return v == Revealable
}

func (v Visibility) FormsVisible() bool {
	return v == Expanded
}

type Event string

const (
	EvSeatsSelected Event = "seats_selected"
	EvSeatsCleared  Event = "seats_cleared"
	EvGoToCheckout  Event = "go_to_checkout"
)

// Transition is a single allowed edge of the visibility state machine.
type Transition struct {
	From  Visibility
	To    Visibility
	Event Event
	// ResetAgeInputs is set on edges that must zero the age discount inputs.
	ResetAgeInputs bool
}

var transitionsTable = []Transition{
	{From: Hidden, To: Revealable, Event: EvSeatsSelected},
	{From: Revealable, To: Revealable, Event: EvSeatsSelected},
	{From: Expanded, To: Expanded, Event: EvSeatsSelected},

	{From: Revealable, To: Expanded, Event: EvGoToCheckout},

	{From: Hidden, To: Hidden, Event: EvSeatsCleared, ResetAgeInputs: true},
	{From: Revealable, To: Hidden, Event: EvSeatsCleared, ResetAgeInputs: true},
	{From: Expanded, To: Hidden, Event: EvSeatsCleared, ResetAgeInputs: true},
}

// TransitionFor returns the allowed transition for a given state+event.
func TransitionFor(from Visibility, ev Event) (Transition, bool) {
	for _, tr := range transitionsTable {
		if tr.From == from && tr.Event == ev {
			return tr, true
		}
	}
	return Transition{}, false
}

// ForSelectedCount maps a post-toggle selected-seat count to its event.
func ForSelectedCount(n int) Event {
	if n > 0 {
		return EvSeatsSelected
	}
	return EvSeatsCleared
}

// Next applies ev and keeps the current state when the edge is not allowed.
func Next(from Visibility, ev Event) (Transition, bool) {
	tr, ok := TransitionFor(from, ev)
	if !ok {
		return Transition{From: from, To: from, Event: ev}, false
	}
	return tr, true
}
