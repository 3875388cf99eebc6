// Package ui contains the Bubble Tea program demonstrating the listbox
// engine. The Model owns one engine instance and translates terminal input
// into engine calls; everything the view draws comes from engine snapshots,
// never from state tracked on the side.
package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/listbox/internal/focus"
	"github.com/atomicstack/listbox/internal/listbox"
	"github.com/atomicstack/listbox/internal/registry"
	"github.com/atomicstack/listbox/internal/theme"
	"github.com/atomicstack/listbox/internal/typeahead"
)

var styles = theme.Default()

type snapshot = listbox.Snapshot

type msgHandler func(tea.Msg) tea.Cmd

// Entry seeds one option in the demo listbox.
type Entry struct {
	ID       string
	Label    string
	Disabled bool
}

// Config captures the demo options the Model honours.
type Config struct {
	Width        int
	Height       int
	InitialValue string
	Fuzzy        bool
	Static       bool
	Disabled     bool
	ShowFooter   bool
	Entries      []Entry
}

// Model implements the Bubble Tea model for the listbox demo.
type Model struct {
	engine  *listbox.Listbox
	tracker *focus.Tracker

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	infoMsg     string
	errMsg      string

	// ticking tracks whether a typeahead expiry tick is in flight so
	// keystrokes never pile up duplicate timers.
	ticking bool

	searchCursor cursor.Model

	handlers map[reflect.Type]msgHandler
}

type typeaheadTickMsg struct{}

// NewModel initialises the demo with one listbox engine instance.
func NewModel(cfg Config) *Model {
	m := &Model{
		tracker:    focus.NewTracker(),
		showFooter: cfg.ShowFooter,
	}
	opts := []listbox.Option{
		listbox.WithFocusCoordinator(m.tracker),
		listbox.WithLabel(),
		listbox.WithHitTest(m.hitTest),
	}
	if cfg.InitialValue != "" {
		opts = append(opts, listbox.WithInitialValue(cfg.InitialValue))
	}
	if cfg.Fuzzy {
		opts = append(opts, listbox.WithTypeahead(typeahead.Config{Match: typeahead.FuzzyMatch}))
	}
	if cfg.Static {
		opts = append(opts, listbox.WithStatic())
	}
	if cfg.Disabled {
		opts = append(opts, listbox.WithDisabled())
	}
	m.engine = listbox.New("demo", opts...)
	m.tracker.FocusButton()
	for _, entry := range cfg.Entries {
		opt := registry.Option{ID: entry.ID, Label: entry.Label, Value: entry.Label, Disabled: entry.Disabled}
		if err := m.engine.AddOption(opt); err != nil {
			m.errMsg = err.Error()
		}
	}
	if cfg.Width > 0 {
		m.width = cfg.Width
		m.fixedWidth = true
	}
	if cfg.Height > 0 {
		m.height = cfg.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Typeahead != nil {
		c.Style = styles.Typeahead.Copy()
	}
	c.SetChar(" ")
	m.searchCursor = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.searchCursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	var cursorCmd tea.Cmd
	m.searchCursor, cursorCmd = m.searchCursor.Update(msg)
	if cursorCmd != nil {
		cmds = append(cmds, cursorCmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(typeaheadTickMsg{}):  m.handleTypeaheadTick,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	return nil
}

func (m *Model) handleTypeaheadTick(tea.Msg) tea.Cmd {
	m.ticking = false
	m.engine.ExpireTypeahead()
	if m.engine.TypeaheadQuery() != "" {
		return m.scheduleTypeaheadTick()
	}
	return nil
}

// scheduleTypeaheadTick arms the idle-window timer that clears a stale
// search buffer. The tick is delivered through the ordinary message loop so
// it is serialized with every other input event.
func (m *Model) scheduleTypeaheadTick() tea.Cmd {
	if m.ticking || m.engine.TypeaheadQuery() == "" {
		return nil
	}
	m.ticking = true
	return tea.Tick(m.engine.TypeaheadIdle()+10*time.Millisecond, func(time.Time) tea.Msg {
		return typeaheadTickMsg{}
	})
}
