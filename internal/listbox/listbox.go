// Package listbox implements the interaction engine behind a single-select
// dropdown: open/closed status, the logical active option, the bound
// selection, and the keyboard, pointer, and typeahead input that drives
// them. Rendering is the host's concern; the engine exposes immutable
// snapshots and semantic projections for it to consume.
package listbox

import (
	"time"

	"github.com/atomicstack/listbox/internal/focus"
	"github.com/atomicstack/listbox/internal/keymap"
	"github.com/atomicstack/listbox/internal/logging"
	"github.com/atomicstack/listbox/internal/logging/events"
	"github.com/atomicstack/listbox/internal/registry"
	"github.com/atomicstack/listbox/internal/typeahead"
)

// Status is the open/closed state of the option panel.
type Status int

const (
	StatusClosed Status = iota
	StatusOpen
)

// Direction steers MoveActive.
type Direction int

const (
	Next Direction = iota
	Previous
	First
	Last
)

const (
	reasonEscape  = "escape"
	reasonSelect  = "select"
	reasonOutside = "outside-pointer"
	reasonTabAway = "tab-away"
	reasonBlur    = "focus-lost"
	reasonDisable = "disable"
	reasonAPI     = "api"
)

// Listbox is the top-level state machine. All methods must be called from a
// single goroutine; every transition runs synchronously to completion.
type Listbox struct {
	id      string
	reg     *registry.Registry
	matcher *typeahead.Matcher
	coord   focus.Coordinator
	now     func() time.Time
	hitTest func(target any) bool

	status        Status
	activeID      string
	selectedID    string
	selectedValue any
	hasSelection  bool
	disabled      bool
	static        bool
	hasLabel      bool

	initialValue    any
	hasInitialValue bool

	elements map[Part]Element
	subs     []subscriber
	nextSub  int
}

// Option configures a Listbox at construction.
type Option func(*Listbox)

// WithInitialValue supplies the externally bound initial value. The first
// registered option whose value equals it becomes the selection.
func WithInitialValue(v any) Option {
	return func(l *Listbox) {
		l.initialValue = v
		l.hasInitialValue = true
	}
}

// WithDisabled constructs the listbox in its disabled state.
func WithDisabled() Option {
	return func(l *Listbox) { l.disabled = true }
}

// WithStatic defers panel visibility entirely to the host: status is still
// computed and exposed but is advisory rather than gating.
func WithStatic() Option {
	return func(l *Listbox) { l.static = true }
}

// WithLabel declares that the host renders a label element, enabling the
// labelled-by relations in the semantic projection.
func WithLabel() Option {
	return func(l *Listbox) { l.hasLabel = true }
}

// WithFocusCoordinator installs a host-provided focus coordinator.
func WithFocusCoordinator(c focus.Coordinator) Option {
	return func(l *Listbox) {
		if c != nil {
			l.coord = c
		}
	}
}

// WithTypeahead replaces the typeahead configuration, e.g. to shorten the
// idle window in tests or switch to the fuzzy strategy.
func WithTypeahead(cfg typeahead.Config) Option {
	return func(l *Listbox) { l.matcher = typeahead.New(cfg) }
}

// WithClock injects the time source used for typeahead pacing.
func WithClock(now func() time.Time) Option {
	return func(l *Listbox) {
		if now != nil {
			l.now = now
		}
	}
}

// WithHitTest installs the containment check used by the document-level
// pointer dispatcher: it must report whether the pressed target lies inside
// this listbox's button or options container.
func WithHitTest(contains func(target any) bool) Option {
	return func(l *Listbox) { l.hitTest = contains }
}

// WithElement overrides the render descriptor for one part.
func WithElement(part Part, el Element) Option {
	return func(l *Listbox) { l.elements[part] = el }
}

// New constructs a closed, empty listbox.
func New(id string, opts ...Option) *Listbox {
	l := &Listbox{
		id:       id,
		reg:      registry.New(),
		matcher:  typeahead.New(typeahead.Config{}),
		coord:    focus.NewTracker(),
		now:      time.Now,
		elements: make(map[Part]Element),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// ID returns the listbox identity.
func (l *Listbox) ID() string { return l.id }

// Status returns the current open/closed status.
func (l *Listbox) Status() Status { return l.status }

// IsOpen reports whether the option panel is open.
func (l *Listbox) IsOpen() bool { return l.status == StatusOpen }

// Disabled reports whether the whole listbox is inert.
func (l *Listbox) Disabled() bool { return l.disabled }

// Static reports whether panel visibility is host-controlled.
func (l *Listbox) Static() bool { return l.static }

// ActiveID returns the logical active option id, empty while closed.
func (l *Listbox) ActiveID() string { return l.activeID }

// Selection returns the bound value and whether one is set.
func (l *Listbox) Selection() (any, bool) { return l.selectedValue, l.hasSelection }

// SelectedID returns the id of the selected option, if the selection was
// made through the engine and the option still identifies it.
func (l *Listbox) SelectedID() string { return l.selectedID }

// AddOption registers an option. Duplicate ids are programming errors: the
// attempt is logged and rejected, never merged.
func (l *Listbox) AddOption(opt registry.Option) error {
	if err := l.reg.Register(opt); err != nil {
		events.Registry.Duplicate(l.id, opt.ID)
		logging.Error(err)
		return err
	}
	events.Registry.Register(l.id, opt.ID, opt.Disabled)
	if !l.hasSelection && l.hasInitialValue && opt.Value == l.initialValue {
		l.selectedID = opt.ID
		l.selectedValue = opt.Value
		l.hasSelection = true
	}
	if l.status == StatusOpen && l.activeID == "" && !opt.Disabled {
		l.activeID = opt.ID
		events.Registry.Revalidate(l.id, "", opt.ID)
	}
	l.notify()
	return nil
}

// RemoveOption unregisters an option. When the active option disappears the
// engine silently re-homes to the nearest enabled neighbour.
func (l *Listbox) RemoveOption(id string) {
	opt, ok := l.reg.Find(id)
	if !ok {
		return
	}
	l.reg.Unregister(id)
	events.Registry.Unregister(l.id, id)
	l.revalidateActive(id, opt.Order())
	l.notify()
}

// SetOptionDisabled toggles one option's disabled flag, re-homing the
// active option when it just became disabled.
func (l *Listbox) SetOptionDisabled(id string, disabled bool) {
	if !l.reg.SetDisabled(id, disabled) {
		return
	}
	if disabled {
		opt, _ := l.reg.Find(id)
		l.revalidateActive(id, opt.Order())
	} else if l.status == StatusOpen && l.activeID == "" {
		if first, ok := l.reg.FirstEnabled(); ok {
			l.activeID = first.ID
			events.Registry.Revalidate(l.id, "", first.ID)
		}
	}
	l.notify()
}

// Options returns the registered options in order.
func (l *Listbox) Options() []registry.Option { return l.reg.Options() }

func (l *Listbox) revalidateActive(id string, order int) {
	if l.status != StatusOpen || l.activeID != id {
		return
	}
	if nearest, ok := l.reg.NearestEnabled(order); ok {
		l.activeID = nearest.ID
	} else {
		l.activeID = ""
	}
	events.Registry.Revalidate(l.id, id, l.activeID)
}

// Open opens the panel, activating the current selection when it is still
// enabled and the first enabled option otherwise. A no-op while open or
// disabled.
func (l *Listbox) Open() {
	l.openActivate(l.entryActive(false))
}

func (l *Listbox) entryActive(preferLast bool) string {
	if l.selectedID != "" {
		if opt, ok := l.reg.Find(l.selectedID); ok && !opt.Disabled {
			return opt.ID
		}
	}
	if preferLast {
		if last, ok := l.reg.LastEnabled(); ok {
			return last.ID
		}
		return ""
	}
	if first, ok := l.reg.FirstEnabled(); ok {
		return first.ID
	}
	return ""
}

func (l *Listbox) openActivate(activeID string) {
	if l.disabled {
		events.Listbox.Ignored(l.id, "open")
		return
	}
	if l.status == StatusOpen {
		return
	}
	l.status = StatusOpen
	l.activeID = activeID
	l.matcher.Reset()
	document.acquire(l)
	l.coord.FocusOptions()
	events.Focus.Move(l.id, focus.TargetOptions.String())
	events.Listbox.Open(l.id, l.activeID)
	l.notify()
}

// Close closes the panel and returns real focus to the button. A no-op
// while closed.
func (l *Listbox) Close() {
	l.closeWith(reasonAPI, true)
}

// CloseTabAway closes without touching real focus, used when the close was
// caused by the user tabbing out of the widget.
func (l *Listbox) CloseTabAway() {
	l.closeWith(reasonTabAway, false)
}

func (l *Listbox) closeWith(reason string, restoreFocus bool) {
	if l.status != StatusOpen {
		return
	}
	l.status = StatusClosed
	l.activeID = ""
	l.matcher.Reset()
	document.release(l)
	if restoreFocus {
		l.coord.FocusButton()
		events.Focus.Move(l.id, focus.TargetButton.String())
	}
	events.Listbox.Close(l.id, reason)
	l.notify()
}

// FocusLost reports that real focus left both the button and the options
// container; an open panel closes without forcing focus back.
func (l *Listbox) FocusLost() {
	l.closeWith(reasonBlur, false)
}

// SetDisabled toggles the whole listbox. Disabling an open listbox forces
// an immediate close.
func (l *Listbox) SetDisabled(disabled bool) {
	if l.disabled == disabled {
		return
	}
	l.disabled = disabled
	events.Listbox.Disabled(l.id, disabled)
	if disabled && l.status == StatusOpen {
		l.closeWith(reasonDisable, true)
		return
	}
	l.notify()
}

// SelectActive binds the active option's value and closes the panel. A
// no-op unless open with an enabled active option.
func (l *Listbox) SelectActive() {
	if l.status != StatusOpen || l.activeID == "" {
		return
	}
	opt, ok := l.reg.Find(l.activeID)
	if !ok || opt.Disabled {
		return
	}
	l.selectedID = opt.ID
	l.selectedValue = opt.Value
	l.hasSelection = true
	events.Listbox.Select(l.id, opt.ID)
	l.closeWith(reasonSelect, true)
}

// SetActive moves the logical active indicator directly, as pointer hover
// does. Real focus stays put. A no-op while closed or when the id does not
// resolve to an enabled option.
func (l *Listbox) SetActive(id string) {
	if l.status != StatusOpen {
		return
	}
	opt, ok := l.reg.Find(id)
	if !ok || opt.Disabled {
		return
	}
	if l.activeID == opt.ID {
		return
	}
	l.activeID = opt.ID
	events.Listbox.Active(l.id, opt.ID, "pointer")
	events.Pointer.Hover(l.id, opt.ID)
	l.notify()
}

// MoveActive steps the active option through the enabled set, wrapping at
// either end. A no-op while closed or when no enabled option exists.
func (l *Listbox) MoveActive(dir Direction) {
	if l.status != StatusOpen {
		return
	}
	var opt registry.Option
	var ok bool
	switch dir {
	case Next:
		opt, ok = l.reg.NextEnabled(l.activeID, true)
	case Previous:
		opt, ok = l.reg.PreviousEnabled(l.activeID, true)
	case First:
		opt, ok = l.reg.FirstEnabled()
	case Last:
		opt, ok = l.reg.LastEnabled()
	}
	if !ok || opt.ID == l.activeID {
		return
	}
	l.activeID = opt.ID
	events.Listbox.Active(l.id, opt.ID, "keyboard")
	l.notify()
}

// HandleKey runs one keyboard input through the controller and applies the
// resolved transition. The returned binding tells the host whether to
// suppress the key's native behaviour. All input is inert while disabled.
func (l *Listbox) HandleKey(key keymap.Key) keymap.Binding {
	if l.disabled {
		events.Listbox.Ignored(l.id, "key")
		return keymap.Binding{}
	}
	binding := keymap.Resolve(key, l.status == StatusOpen)
	switch binding.Action {
	case keymap.ActionNone:
	case keymap.ActionOpen:
		l.openActivate(l.entryActive(false))
	case keymap.ActionOpenSelectionLast:
		l.openActivate(l.entryActive(true))
	case keymap.ActionOpenFirst:
		if first, ok := l.reg.FirstEnabled(); ok {
			l.openActivate(first.ID)
		} else {
			l.openActivate("")
		}
	case keymap.ActionOpenLast:
		if last, ok := l.reg.LastEnabled(); ok {
			l.openActivate(last.ID)
		} else {
			l.openActivate("")
		}
	case keymap.ActionClose:
		l.matcher.Reset()
		l.closeWith(reasonEscape, true)
	case keymap.ActionCloseTabAway:
		l.matcher.Reset()
		l.closeWith(reasonTabAway, false)
	case keymap.ActionMoveNext:
		l.matcher.Reset()
		l.MoveActive(Next)
	case keymap.ActionMovePrevious:
		l.matcher.Reset()
		l.MoveActive(Previous)
	case keymap.ActionMoveFirst:
		l.matcher.Reset()
		l.MoveActive(First)
	case keymap.ActionMoveLast:
		l.matcher.Reset()
		l.MoveActive(Last)
	case keymap.ActionSelect:
		l.matcher.Reset()
		l.SelectActive()
	case keymap.ActionSearch:
		l.Type(binding.Rune)
	}
	return binding
}

// Type feeds one printable character to the typeahead buffer, opening the
// panel first when closed. A matching option becomes active without
// selecting or closing; a miss leaves the buffer to lapse on its own.
func (l *Listbox) Type(r rune) {
	if l.disabled {
		events.Listbox.Ignored(l.id, "type")
		return
	}
	if l.status != StatusOpen {
		l.openActivate(l.entryActive(false))
		if l.status != StatusOpen {
			return
		}
	}
	query := l.matcher.Type(r, l.now())
	events.Typeahead.Append(l.id, query)
	match, ok := l.reg.Match(l.activeID, l.matcher.Matches)
	if !ok {
		events.Typeahead.Miss(l.id, query)
		return
	}
	if match.ID == l.activeID {
		return
	}
	l.activeID = match.ID
	events.Typeahead.Match(l.id, query, match.ID)
	events.Listbox.Active(l.id, match.ID, "typeahead")
	l.notify()
}

// ExpireTypeahead drops a lapsed search buffer. Hosts call it from their
// idle timer; firing is serialized with ordinary input.
func (l *Listbox) ExpireTypeahead() {
	if l.matcher.Expire(l.now()) {
		events.Typeahead.Expire(l.id)
		l.notify()
	}
}

// TypeaheadQuery exposes the pending search buffer for display.
func (l *Listbox) TypeaheadQuery() string { return l.matcher.Query() }

// TypeaheadIdle returns the configured idle window so hosts can pace their
// expiry timer.
func (l *Listbox) TypeaheadIdle() time.Duration { return l.matcher.Idle() }
