package config

import "testing"

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 || cfg.App.Height != 0 {
		t.Fatalf("expected zero dimensions, got %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if cfg.App.Fuzzy || cfg.App.Static || cfg.App.Disabled {
		t.Fatalf("expected feature flags off by default")
	}
	if !cfg.App.ShowFooter {
		t.Fatalf("expected footer on by default")
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	env := []string{"LISTBOX_WIDTH=50", "LISTBOX_INITIAL=Grape", "LISTBOX_TRACE=true"}
	cfg, err := LoadArgs([]string{"-width", "70", "-fuzzy"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 70 {
		t.Fatalf("flag must override env, got width %d", cfg.App.Width)
	}
	if cfg.App.InitialValue != "Grape" {
		t.Fatalf("env fallback must apply, got %q", cfg.App.InitialValue)
	}
	if !cfg.App.Fuzzy {
		t.Fatalf("expected fuzzy enabled")
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected trace enabled from env")
	}
	if cfg.Flags["width"] != "70" {
		t.Fatalf("expected recorded flag width 70, got %q", cfg.Flags["width"])
	}
}

func TestLoadArgsRejectsNegativeDimensions(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"-height", "-2"}, nil); err == nil {
		t.Fatalf("expected error for negative height")
	}
}

func TestLoadArgsMalformedEnvFallsBack(t *testing.T) {
	env := []string{"LISTBOX_WIDTH=wide", "LISTBOX_FUZZY=sure"}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 {
		t.Fatalf("malformed int env must fall back, got %d", cfg.App.Width)
	}
	if cfg.App.Fuzzy {
		t.Fatalf("malformed bool env must fall back")
	}
}
