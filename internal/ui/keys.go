package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/listbox/internal/keymap"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+c":
		return tea.Quit
	case "ctrl+d":
		m.engine.SetDisabled(!m.engine.Disabled())
		if m.engine.Disabled() {
			m.infoMsg = "listbox disabled"
		} else {
			m.infoMsg = "listbox enabled"
		}
		return nil
	case "ctrl+x":
		if id := m.engine.ActiveID(); id != "" {
			m.engine.RemoveOption(id)
			m.infoMsg = "removed " + id
		}
		return nil
	case "ctrl+t":
		if id := m.engine.ActiveID(); id != "" {
			m.engine.SetOptionDisabled(id, true)
			m.infoMsg = "disabled " + id
		}
		return nil
	}

	key := translateKey(keyMsg)
	if key.Kind == keymap.KindNone {
		return nil
	}
	m.infoMsg = ""
	binding := m.engine.HandleKey(key)
	if key.Kind == keymap.KindTab {
		// The demo's tab order has a single stop, so focus lands back on
		// the button after the panel closes.
		m.tracker.FocusButton()
	}
	if binding.Action == keymap.ActionSearch {
		return m.scheduleTypeaheadTick()
	}
	return nil
}

// translateKey maps a Bubble Tea key message onto the engine's key set.
// Keys outside that set resolve to KindNone and never reach the engine.
func translateKey(msg tea.KeyMsg) keymap.Key {
	switch msg.Type {
	case tea.KeyDown:
		return keymap.Key{Kind: keymap.KindArrowDown}
	case tea.KeyUp:
		return keymap.Key{Kind: keymap.KindArrowUp}
	case tea.KeyHome:
		return keymap.Key{Kind: keymap.KindHome}
	case tea.KeyEnd:
		return keymap.Key{Kind: keymap.KindEnd}
	case tea.KeyPgUp:
		return keymap.Key{Kind: keymap.KindPageUp}
	case tea.KeyPgDown:
		return keymap.Key{Kind: keymap.KindPageDown}
	case tea.KeyEnter:
		return keymap.Key{Kind: keymap.KindEnter}
	case tea.KeySpace:
		return keymap.Key{Kind: keymap.KindSpace}
	case tea.KeyEscape:
		return keymap.Key{Kind: keymap.KindEscape}
	case tea.KeyTab:
		return keymap.Key{Kind: keymap.KindTab}
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) != 1 {
			return keymap.Key{}
		}
		return keymap.Char(msg.Runes[0])
	default:
		return keymap.Key{}
	}
}
