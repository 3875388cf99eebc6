package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/listbox/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Width        int
	Height       int
	InitialValue string
	Fuzzy        bool
	Static       bool
	Disabled     bool
	ShowFooter   bool
}

// DefaultEntries is the option set the demo listbox presents.
func DefaultEntries() []ui.Entry {
	return []ui.Entry{
		{ID: "apple", Label: "Apple"},
		{ID: "apricot", Label: "Apricot"},
		{ID: "banana", Label: "Banana"},
		{ID: "cherry", Label: "Cherry", Disabled: true},
		{ID: "fig", Label: "Fig"},
		{ID: "grape", Label: "Grape"},
		{ID: "mango", Label: "Mango", Disabled: true},
		{ID: "pear", Label: "Pear"},
	}
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	model := ui.NewModel(ui.Config{
		Width:        cfg.Width,
		Height:       cfg.Height,
		InitialValue: cfg.InitialValue,
		Fuzzy:        cfg.Fuzzy,
		Static:       cfg.Static,
		Disabled:     cfg.Disabled,
		ShowFooter:   cfg.ShowFooter,
		Entries:      DefaultEntries(),
	})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
