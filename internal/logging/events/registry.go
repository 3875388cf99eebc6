package events

import "github.com/atomicstack/listbox/internal/logging"

type RegistryTracer struct{}

type TypeaheadTracer struct{}

var (
	Registry  = RegistryTracer{}
	Typeahead = TypeaheadTracer{}
)

func (RegistryTracer) Register(listboxID, optionID string, disabled bool) {
	logging.Trace("registry.register", map[string]interface{}{"listbox": listboxID, "option": optionID, "disabled": disabled})
}

func (RegistryTracer) Unregister(listboxID, optionID string) {
	logging.Trace("registry.unregister", map[string]interface{}{"listbox": listboxID, "option": optionID})
}

func (RegistryTracer) Duplicate(listboxID, optionID string) {
	logging.Trace("registry.duplicate", map[string]interface{}{"listbox": listboxID, "option": optionID})
}

func (RegistryTracer) Revalidate(listboxID, fromID, toID string) {
	logging.Trace("registry.revalidate", map[string]interface{}{"listbox": listboxID, "from": fromID, "to": toID})
}

func (TypeaheadTracer) Append(listboxID, query string) {
	logging.Trace("typeahead.append", map[string]interface{}{"listbox": listboxID, "query": query})
}

func (TypeaheadTracer) Match(listboxID, query, optionID string) {
	logging.Trace("typeahead.match", map[string]interface{}{"listbox": listboxID, "query": query, "option": optionID})
}

func (TypeaheadTracer) Miss(listboxID, query string) {
	logging.Trace("typeahead.miss", map[string]interface{}{"listbox": listboxID, "query": query})
}

func (TypeaheadTracer) Expire(listboxID string) {
	logging.Trace("typeahead.expire", map[string]interface{}{"listbox": listboxID})
}
