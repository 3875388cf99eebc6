package listbox

// OptionView is the per-option projection the rendering layer consumes.
type OptionView struct {
	ID       string
	Label    string
	Value    any
	Active   bool
	Selected bool
	Disabled bool
}

// Snapshot is an immutable view of the whole listbox taken after a
// transition. Consumers read the latest snapshot instead of reaching into
// live state.
type Snapshot struct {
	ID            string
	Open          bool
	Disabled      bool
	Static        bool
	ActiveID      string
	SelectedID    string
	SelectedValue any
	HasSelection  bool
	Query         string
	Options       []OptionView
}

type subscriber struct {
	id int
	fn func(Snapshot)
}

// Snapshot builds the current projection.
func (l *Listbox) Snapshot() Snapshot {
	opts := l.reg.Options()
	views := make([]OptionView, len(opts))
	for i, opt := range opts {
		views[i] = OptionView{
			ID:       opt.ID,
			Label:    opt.Label,
			Value:    opt.Value,
			Active:   opt.ID == l.activeID,
			Selected: opt.ID == l.selectedID && l.hasSelection,
			Disabled: opt.Disabled,
		}
	}
	return Snapshot{
		ID:            l.id,
		Open:          l.status == StatusOpen,
		Disabled:      l.disabled,
		Static:        l.static,
		ActiveID:      l.activeID,
		SelectedID:    l.selectedID,
		SelectedValue: l.selectedValue,
		HasSelection:  l.hasSelection,
		Query:         l.matcher.Query(),
		Options:       views,
	}
}

// OptionState projects one option's flags.
func (l *Listbox) OptionState(id string) (OptionView, bool) {
	opt, ok := l.reg.Find(id)
	if !ok {
		return OptionView{}, false
	}
	return OptionView{
		ID:       opt.ID,
		Label:    opt.Label,
		Value:    opt.Value,
		Active:   opt.ID == l.activeID,
		Selected: opt.ID == l.selectedID && l.hasSelection,
		Disabled: opt.Disabled,
	}, true
}

// Subscribe registers a callback invoked with a fresh snapshot after every
// state change. The returned function removes the subscription.
func (l *Listbox) Subscribe(fn func(Snapshot)) func() {
	if fn == nil {
		return func() {}
	}
	id := l.nextSub
	l.nextSub++
	l.subs = append(l.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, sub := range l.subs {
			if sub.id == id {
				l.subs = append(l.subs[:i], l.subs[i+1:]...)
				return
			}
		}
	}
}

func (l *Listbox) notify() {
	if len(l.subs) == 0 {
		return
	}
	snap := l.Snapshot()
	for _, sub := range l.subs {
		sub.fn(snap)
	}
}

// ButtonSemantics carries the semantic attributes the host surfaces on the
// trigger button, as data rather than serialized strings.
type ButtonSemantics struct {
	Controls   string
	Expanded   bool
	Disabled   bool
	LabelledBy string
}

// ContainerSemantics covers the options container.
type ContainerSemantics struct {
	Role             string
	ID               string
	ActiveDescendant string
	LabelledBy       string
}

// OptionSemantics covers one option element.
type OptionSemantics struct {
	Role     string
	ID       string
	Selected bool
	Disabled bool
}

// Semantics is the full accessibility projection.
type Semantics struct {
	Button    ButtonSemantics
	Container ContainerSemantics
	Options   []OptionSemantics
	LabelID   string
}

// ButtonID returns the derived element id for the trigger button.
func (l *Listbox) ButtonID() string { return l.id + "-button" }

// ContainerID returns the derived element id for the options container.
func (l *Listbox) ContainerID() string { return l.id + "-options" }

// LabelID returns the derived element id for the optional label, empty when
// no label was declared.
func (l *Listbox) LabelID() string {
	if !l.hasLabel {
		return ""
	}
	return l.id + "-label"
}

// Semantics projects the attribute values the rendering layer must surface.
func (l *Listbox) Semantics() Semantics {
	labelID := l.LabelID()
	opts := l.reg.Options()
	sems := make([]OptionSemantics, len(opts))
	for i, opt := range opts {
		sems[i] = OptionSemantics{
			Role:     "option",
			ID:       opt.ID,
			Selected: opt.ID == l.selectedID && l.hasSelection,
			Disabled: opt.Disabled,
		}
	}
	return Semantics{
		Button: ButtonSemantics{
			Controls:   l.ContainerID(),
			Expanded:   l.status == StatusOpen,
			Disabled:   l.disabled,
			LabelledBy: labelID,
		},
		Container: ContainerSemantics{
			Role:             "listbox",
			ID:               l.ContainerID(),
			ActiveDescendant: l.activeID,
			LabelledBy:       labelID,
		},
		Options: sems,
		LabelID: labelID,
	}
}
