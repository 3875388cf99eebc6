package events

import "github.com/atomicstack/listbox/internal/logging"

type ListboxTracer struct{}

type FocusTracer struct{}

type PointerTracer struct{}

var (
	Listbox = ListboxTracer{}
	Focus   = FocusTracer{}
	Pointer = PointerTracer{}
)

func (ListboxTracer) Open(id, activeID string) {
	logging.Trace("listbox.open", map[string]interface{}{"listbox": id, "active": activeID})
}

func (ListboxTracer) Close(id, reason string) {
	logging.Trace("listbox.close", map[string]interface{}{"listbox": id, "reason": reason})
}

func (ListboxTracer) Active(id, optionID, source string) {
	logging.Trace("listbox.active", map[string]interface{}{"listbox": id, "option": optionID, "source": source})
}

func (ListboxTracer) Select(id, optionID string) {
	logging.Trace("listbox.select", map[string]interface{}{"listbox": id, "option": optionID})
}

func (ListboxTracer) Disabled(id string, disabled bool) {
	logging.Trace("listbox.disabled", map[string]interface{}{"listbox": id, "disabled": disabled})
}

func (ListboxTracer) Ignored(id, input string) {
	logging.Trace("listbox.ignored", map[string]interface{}{"listbox": id, "input": input})
}

func (FocusTracer) Move(id, target string) {
	logging.Trace("focus.move", map[string]interface{}{"listbox": id, "target": target})
}

func (PointerTracer) OutsideClose(id string) {
	logging.Trace("pointer.outside-close", map[string]interface{}{"listbox": id})
}

func (PointerTracer) Hover(id, optionID string) {
	logging.Trace("pointer.hover", map[string]interface{}{"listbox": id, "option": optionID})
}
