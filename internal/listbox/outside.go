package listbox

import (
	"sync"

	"github.com/atomicstack/listbox/internal/logging/events"
)

// dispatcher is the process-wide outside-pointer listener. It tracks which
// instances are currently open so a single document-level press can be
// routed to each of them by container identity. Instances are added when
// they enter the open state and removed unconditionally on any path back to
// closed, so repeated open/close cycles never leak registrations.
type dispatcher struct {
	mu   sync.Mutex
	open map[*Listbox]struct{}
}

var document = &dispatcher{open: make(map[*Listbox]struct{})}

func (d *dispatcher) acquire(l *Listbox) {
	d.mu.Lock()
	d.open[l] = struct{}{}
	d.mu.Unlock()
}

func (d *dispatcher) release(l *Listbox) {
	d.mu.Lock()
	delete(d.open, l)
	d.mu.Unlock()
}

func (d *dispatcher) snapshot() []*Listbox {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]*Listbox, 0, len(d.open))
	for l := range d.open {
		out = append(out, l)
	}
	return out
}

// openCount reports the number of registered open instances, for tests.
func (d *dispatcher) openCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.open)
}

// PointerDown dispatches a document-level pointer press. Every open
// instance whose hit test places the target outside both its button and its
// options container closes, restoring focus to its button. Instances
// without a hit test treat every document press as outside.
func PointerDown(target any) {
	for _, l := range document.snapshot() {
		if l.hitTest != nil && l.hitTest(target) {
			continue
		}
		events.Pointer.OutsideClose(l.id)
		l.closeWith(reasonOutside, true)
	}
}
