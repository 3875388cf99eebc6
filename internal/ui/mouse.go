package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/listbox/internal/listbox"
)

const (
	regionButton  = "button"
	regionOptions = "options"
	regionOutside = "outside"
)

// hitTest backs the engine's document-level pointer dispatcher: a press
// inside the button or the options container is not an outside click.
func (m *Model) hitTest(target any) bool {
	s, ok := target.(string)
	return ok && (s == regionButton || s == regionOptions)
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	region, optionID := m.regionAt(mouse.X, mouse.Y)
	switch {
	case mouse.Action == tea.MouseActionMotion:
		// Hover only moves the logical active indicator.
		if optionID != "" {
			m.engine.SetActive(optionID)
		}
		return nil
	case mouse.Action == tea.MouseActionPress && mouse.Button == tea.MouseButtonLeft:
		listbox.PointerDown(region)
		switch region {
		case regionButton:
			if m.engine.IsOpen() {
				m.engine.Close()
			} else {
				m.engine.Open()
			}
		case regionOptions:
			if optionID != "" {
				m.engine.SetActive(optionID)
				m.engine.SelectActive()
			}
		}
	}
	return nil
}

// regionAt resolves terminal coordinates to a listbox region and, within
// the panel, the option row under the pointer.
func (m *Model) regionAt(x, y int) (string, string) {
	if x < 0 || x >= m.widgetWidth() {
		return regionOutside, ""
	}
	if y >= buttonTop && y < buttonTop+buttonRows {
		return regionButton, ""
	}
	if !m.engine.IsOpen() {
		return regionOutside, ""
	}
	snap := m.engine.Snapshot()
	first := panelTop + 1 // inside the panel border
	if y < first || y >= first+len(snap.Options) {
		return regionOutside, ""
	}
	opt := snap.Options[y-first]
	if opt.Disabled {
		return regionOptions, ""
	}
	return regionOptions, opt.ID
}
