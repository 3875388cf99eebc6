// Package focus decides which real UI element holds input focus during
// listbox transitions. Real focus stays on the button or the options
// container as a whole; the per-option "active" indicator is logical and
// never moves real focus.
package focus

// Target identifies a focusable part of the listbox.
type Target int

const (
	TargetNone Target = iota
	TargetButton
	TargetOptions
)

// String returns the target name for trace payloads.
func (t Target) String() string {
	switch t {
	case TargetButton:
		return "button"
	case TargetOptions:
		return "options"
	default:
		return "none"
	}
}

// Coordinator places real input focus. Implementations must apply focus
// synchronously so the element receiving subsequent key events is settled
// before the transition that requested the move returns.
type Coordinator interface {
	FocusButton()
	FocusOptions()
	IsFocusWithin(t Target) bool
}

// Tracker is the default Coordinator. It records the current target and is
// sufficient for hosts that derive real focus from the engine's state, as
// well as for tests.
type Tracker struct {
	current Target
}

// NewTracker returns a tracker with no focused target.
func NewTracker() *Tracker {
	return &Tracker{}
}

func (t *Tracker) FocusButton()  { t.current = TargetButton }
func (t *Tracker) FocusOptions() { t.current = TargetOptions }

// IsFocusWithin reports whether real focus currently sits inside the target.
func (t *Tracker) IsFocusWithin(target Target) bool {
	return t.current == target
}

// Current returns the tracked focus target.
func (t *Tracker) Current() Target { return t.current }

// Blur clears the tracked target, mirroring focus leaving the widget
// entirely (e.g. the user tabbing away).
func (t *Tracker) Blur() { t.current = TargetNone }
