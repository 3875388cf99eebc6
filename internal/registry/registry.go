package registry

import (
	"fmt"
	"strings"
)

// Option is a single selectable entry.
type Option struct {
	ID       string
	Label    string
	Value    any
	Disabled bool

	order int
}

// Order reports the registration position assigned to the option.
func (o Option) Order() int { return o.order }

// DuplicateIDError reports an attempt to register an id twice.
type DuplicateIDError struct {
	ID string
}

func (e DuplicateIDError) Error() string {
	return fmt.Sprintf("registry: duplicate option id %q", e.ID)
}

// Registry keeps an ordered collection of options. Registration order is
// authoritative; it is tracked with a monotonic counter so interleaved
// add/remove cycles never reuse a position.
type Registry struct {
	options   []Option
	index     map[string]int
	nextOrder int
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Len reports the number of registered options, disabled ones included.
func (r *Registry) Len() int { return len(r.options) }

// Options returns the registered options in order.
func (r *Registry) Options() []Option {
	out := make([]Option, len(r.options))
	copy(out, r.options)
	return out
}

// Register appends an option with the next order index.
func (r *Registry) Register(opt Option) error {
	if opt.ID == "" {
		return fmt.Errorf("registry: empty option id")
	}
	if _, ok := r.index[opt.ID]; ok {
		return DuplicateIDError{ID: opt.ID}
	}
	opt.order = r.nextOrder
	r.nextOrder++
	r.index[opt.ID] = len(r.options)
	r.options = append(r.options, opt)
	return nil
}

// Unregister removes an option and reports whether it was present.
func (r *Registry) Unregister(id string) bool {
	pos, ok := r.index[id]
	if !ok {
		return false
	}
	r.options = append(r.options[:pos], r.options[pos+1:]...)
	delete(r.index, id)
	for i := pos; i < len(r.options); i++ {
		r.index[r.options[i].ID] = i
	}
	return true
}

// Find returns the option for the given id.
func (r *Registry) Find(id string) (Option, bool) {
	pos, ok := r.index[id]
	if !ok {
		return Option{}, false
	}
	return r.options[pos], true
}

// SetDisabled toggles the disabled flag on an option. It reports whether the
// option exists and the flag actually changed.
func (r *Registry) SetDisabled(id string, disabled bool) bool {
	pos, ok := r.index[id]
	if !ok {
		return false
	}
	if r.options[pos].Disabled == disabled {
		return false
	}
	r.options[pos].Disabled = disabled
	return true
}

// FirstEnabled returns the first non-disabled option in order.
func (r *Registry) FirstEnabled() (Option, bool) {
	for _, opt := range r.options {
		if !opt.Disabled {
			return opt, true
		}
	}
	return Option{}, false
}

// LastEnabled returns the last non-disabled option in order.
func (r *Registry) LastEnabled() (Option, bool) {
	for i := len(r.options) - 1; i >= 0; i-- {
		if !r.options[i].Disabled {
			return r.options[i], true
		}
	}
	return Option{}, false
}

// NextEnabled scans forward from just past fromID, skipping disabled entries.
// With wrap it continues from the start once the end is reached. An empty
// fromID behaves like FirstEnabled.
func (r *Registry) NextEnabled(fromID string, wrap bool) (Option, bool) {
	if fromID == "" {
		return r.FirstEnabled()
	}
	start, ok := r.index[fromID]
	if !ok {
		return r.FirstEnabled()
	}
	n := len(r.options)
	for i := start + 1; i < n; i++ {
		if !r.options[i].Disabled {
			return r.options[i], true
		}
	}
	if !wrap {
		return Option{}, false
	}
	for i := 0; i <= start; i++ {
		if !r.options[i].Disabled {
			return r.options[i], true
		}
	}
	return Option{}, false
}

// PreviousEnabled scans backward from just before fromID, skipping disabled
// entries. With wrap it continues from the end once the start is reached. An
// empty fromID behaves like LastEnabled.
func (r *Registry) PreviousEnabled(fromID string, wrap bool) (Option, bool) {
	if fromID == "" {
		return r.LastEnabled()
	}
	start, ok := r.index[fromID]
	if !ok {
		return r.LastEnabled()
	}
	for i := start - 1; i >= 0; i-- {
		if !r.options[i].Disabled {
			return r.options[i], true
		}
	}
	if !wrap {
		return Option{}, false
	}
	for i := len(r.options) - 1; i >= start; i-- {
		if !r.options[i].Disabled {
			return r.options[i], true
		}
	}
	return Option{}, false
}

// NearestEnabled resolves the closest enabled option to the given order
// position, preferring the following option over the preceding one. Used to
// re-home the active option after its entry is removed or disabled.
func (r *Registry) NearestEnabled(order int) (Option, bool) {
	var before, after *Option
	for i := range r.options {
		opt := &r.options[i]
		if opt.Disabled {
			continue
		}
		if opt.order >= order {
			if after == nil {
				after = opt
			}
		} else {
			before = opt
		}
	}
	if after != nil {
		return *after, true
	}
	if before != nil {
		return *before, true
	}
	return Option{}, false
}

// MatchPrefix returns the first enabled option whose label starts with text,
// case-insensitive, scanning forward in order from just past afterID and
// wrapping once. An empty afterID starts the scan at the beginning.
func (r *Registry) MatchPrefix(text, afterID string) (Option, bool) {
	if text == "" || len(r.options) == 0 {
		return Option{}, false
	}
	return r.Match(afterID, func(label string) bool {
		return hasPrefixFold(label, text)
	})
}

// Match scans enabled options in order, wrapping forward from just past
// afterID, and returns the first whose label satisfies the predicate.
func (r *Registry) Match(afterID string, pred func(label string) bool) (Option, bool) {
	n := len(r.options)
	if n == 0 || pred == nil {
		return Option{}, false
	}
	start := 0
	if pos, ok := r.index[afterID]; ok {
		start = pos + 1
	}
	for i := 0; i < n; i++ {
		opt := r.options[(start+i)%n]
		if opt.Disabled {
			continue
		}
		if pred(opt.Label) {
			return opt, true
		}
	}
	return Option{}, false
}

func hasPrefixFold(s, prefix string) bool {
	return strings.HasPrefix(strings.ToLower(s), strings.ToLower(prefix))
}
