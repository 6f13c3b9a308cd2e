package alert

import "sync"

// Display draws a dialog. Present receives the whole request in one call.
type Display interface {
	Present(req Request)
}

// Presenter admits at most one open dialog. Requests arriving while a
// dialog is open are dropped, not queued.
type Presenter struct {
	mu      sync.Mutex
	open    bool
	current Request
	display Display
}

func NewPresenter(display Display) *Presenter {
	return &Presenter{display: display}
}

// Show opens req unless another dialog is open, and reports whether it did.
func (p *Presenter) Show(req Request) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.open {
		return false
	}
	p.open = true
	p.current = req
	if p.display != nil {
		p.display.Present(req)
	}
	return true
}

// OnClosed must be called whichever affordance closed the dialog.
func (p *Presenter) OnClosed() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.open = false
	p.current = Request{}
}

func (p *Presenter) Current() (Request, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current, p.open
}
