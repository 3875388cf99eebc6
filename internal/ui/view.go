package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/listbox/internal/focus"
)

// Fixed vertical layout: label, button, then the panel when open. The mouse
// handler shares these offsets to resolve pointer coordinates.
const (
	labelRows  = 1
	buttonTop  = labelRows
	buttonRows = 3 // border, content, border
	panelTop   = buttonTop + buttonRows
)

const defaultWidgetWidth = 32

func (m *Model) widgetWidth() int {
	w := defaultWidgetWidth
	if m.width > 0 && m.width < w {
		w = m.width
	}
	return w
}

// View renders the demo from the engine snapshot.
func (m *Model) View() string {
	snap := m.engine.Snapshot()
	width := m.widgetWidth()

	var b strings.Builder
	b.WriteString(styles.Label.Render("Favourite fruit"))
	b.WriteString("\n")
	b.WriteString(m.renderButton(snap, width))
	if snap.Open {
		b.WriteString("\n")
		b.WriteString(m.renderPanel(snap, width))
	}
	if m.showFooter {
		b.WriteString("\n")
		b.WriteString(m.renderFooter(snap))
	}
	return b.String()
}

func (m *Model) renderButton(snap snapshot, width int) string {
	label := "Select…"
	if snap.HasSelection {
		if v, ok := snap.SelectedValue.(string); ok {
			label = v
		}
	}
	marker := "▾"
	if snap.Open {
		marker = "▴"
	}
	inner := width - 4 // border and padding
	label = truncate.String(label, uint(inner-2))
	pad := inner - ansi.StringWidth(label) - ansi.StringWidth(marker)
	if pad < 1 {
		pad = 1
	}
	content := label + strings.Repeat(" ", pad) + marker

	style := styles.Button
	switch {
	case snap.Disabled:
		style = styles.ButtonDisabled
	case m.tracker.IsFocusWithin(focus.TargetButton):
		style = styles.ButtonFocused
	}
	return style.Render(content)
}

func (m *Model) renderPanel(snap snapshot, width int) string {
	inner := width - 4
	rows := make([]string, 0, len(snap.Options))
	for _, opt := range snap.Options {
		mark := " "
		if opt.Selected {
			mark = styles.SelectedMark.Render("✓")
		}
		label := truncate.String(opt.Label, uint(inner-4))
		var line string
		switch {
		case opt.Disabled:
			line = "  " + mark + " " + styles.DisabledItem.Render(label)
		case opt.Active:
			line = styles.ActiveIndicator.Render("» ") + mark + " " + styles.ActiveItem.Render(label)
		default:
			line = styles.ItemIndicator.Render("  ") + mark + " " + styles.Item.Render(label)
		}
		rows = append(rows, line)
	}
	if len(rows) == 0 {
		rows = append(rows, styles.Info.Render("(no options)"))
	}
	return styles.Panel.Width(width - 2).Render(strings.Join(rows, "\n"))
}

func (m *Model) renderFooter(snap snapshot) string {
	if m.errMsg != "" {
		return styles.Error.Render(m.errMsg)
	}
	if snap.Query != "" {
		return styles.TypeaheadPrompt.Render("/ ") + styles.Typeahead.Render(snap.Query) + m.searchCursor.View()
	}
	if m.infoMsg != "" {
		return styles.Info.Render(m.infoMsg)
	}
	hint := "enter open · type to search · ctrl+d disable · ctrl+c quit"
	return styles.Footer.Render(truncate.String(hint, uint(m.widgetWidth())))
}
