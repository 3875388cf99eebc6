// Package keymap maps discrete key inputs to listbox actions. The mapping is
// a pure function of the key and the current open/closed status; it never
// inspects or mutates listbox state itself.
package keymap

import "unicode"

// Kind identifies a discrete key.
type Kind int

const (
	KindNone Kind = iota
	KindArrowDown
	KindArrowUp
	KindHome
	KindEnd
	KindPageUp
	KindPageDown
	KindEnter
	KindSpace
	KindEscape
	KindTab
	KindRune
)

// Key is a single keyboard input. Rune is only meaningful for KindRune.
type Key struct {
	Kind Kind
	Rune rune
}

// Char builds a printable-rune key. Control and space runes fall through to
// KindNone / KindSpace so hosts can feed raw runes without pre-filtering.
func Char(r rune) Key {
	switch {
	case r == ' ':
		return Key{Kind: KindSpace}
	case unicode.IsControl(r) || !unicode.IsPrint(r):
		return Key{Kind: KindNone}
	default:
		return Key{Kind: KindRune, Rune: r}
	}
}

// Action is the transition a key resolves to.
type Action int

const (
	ActionNone Action = iota
	ActionOpen              // open, activate selection if enabled, else first
	ActionOpenSelectionLast // open, activate selection if enabled, else last
	ActionOpenFirst         // open, activate first enabled
	ActionOpenLast          // open, activate last enabled
	ActionClose             // close, return focus to the button
	ActionCloseTabAway      // close, leave focus to the natural tab order
	ActionMoveNext
	ActionMovePrevious
	ActionMoveFirst
	ActionMoveLast
	ActionSelect
	ActionSearch // feed Key.Rune to the typeahead buffer
)

// Binding is the resolved outcome for one key press.
type Binding struct {
	Action Action
	Rune   rune
	// ConsumeDefault marks keys whose native behaviour the host must
	// suppress, e.g. printable characters reaching a non-text element.
	ConsumeDefault bool
}

// Resolve maps a key against the current open status. Unknown keys resolve
// to ActionNone and produce no transition.
func Resolve(key Key, open bool) Binding {
	if open {
		return resolveOpen(key)
	}
	return resolveClosed(key)
}

func resolveClosed(key Key) Binding {
	switch key.Kind {
	case KindArrowDown:
		return Binding{Action: ActionOpen, ConsumeDefault: true}
	case KindArrowUp:
		return Binding{Action: ActionOpenSelectionLast, ConsumeDefault: true}
	case KindHome:
		return Binding{Action: ActionOpenFirst, ConsumeDefault: true}
	case KindEnd:
		return Binding{Action: ActionOpenLast, ConsumeDefault: true}
	case KindEnter, KindSpace:
		return Binding{Action: ActionOpen, ConsumeDefault: true}
	case KindRune:
		return Binding{Action: ActionSearch, Rune: key.Rune, ConsumeDefault: true}
	default:
		return Binding{}
	}
}

func resolveOpen(key Key) Binding {
	switch key.Kind {
	case KindArrowDown:
		return Binding{Action: ActionMoveNext, ConsumeDefault: true}
	case KindArrowUp:
		return Binding{Action: ActionMovePrevious, ConsumeDefault: true}
	case KindHome, KindPageUp:
		return Binding{Action: ActionMoveFirst, ConsumeDefault: true}
	case KindEnd, KindPageDown:
		return Binding{Action: ActionMoveLast, ConsumeDefault: true}
	case KindEnter, KindSpace:
		return Binding{Action: ActionSelect, ConsumeDefault: true}
	case KindEscape:
		return Binding{Action: ActionClose, ConsumeDefault: true}
	case KindTab:
		return Binding{Action: ActionCloseTabAway}
	case KindRune:
		return Binding{Action: ActionSearch, Rune: key.Rune, ConsumeDefault: true}
	default:
		return Binding{}
	}
}
