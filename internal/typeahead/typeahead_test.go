package typeahead

import (
	"testing"
	"time"
)

var epoch = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestTypeAccumulatesWithinIdleWindow(t *testing.T) {
	m := New(Config{})
	if got := m.Type('a', epoch); got != "a" {
		t.Fatalf("expected query a, got %q", got)
	}
	if got := m.Type('m', epoch.Add(100*time.Millisecond)); got != "am" {
		t.Fatalf("expected query am, got %q", got)
	}
}

func TestTypeResetsAfterIdleWindow(t *testing.T) {
	m := New(Config{})
	m.Type('a', epoch)
	if got := m.Type('b', epoch.Add(400*time.Millisecond)); got != "b" {
		t.Fatalf("expected fresh query b, got %q", got)
	}
}

func TestTypePreservesCaseButMatchesFolded(t *testing.T) {
	m := New(Config{})
	m.Type('A', epoch)
	if m.Query() != "A" {
		t.Fatalf("buffer should preserve case, got %q", m.Query())
	}
	if !m.Matches("alice") {
		t.Fatalf("expected case-insensitive match")
	}
}

func TestRepeatedSingleCharacterStaysLengthOne(t *testing.T) {
	m := New(Config{})
	m.Type('a', epoch)
	if got := m.Type('a', epoch.Add(50*time.Millisecond)); got != "a" {
		t.Fatalf("expected buffer to stay a, got %q", got)
	}
	if got := m.Type('a', epoch.Add(100*time.Millisecond)); got != "a" {
		t.Fatalf("expected buffer to stay a, got %q", got)
	}
	// A different character after repeats extends the buffer normally.
	if got := m.Type('b', epoch.Add(150*time.Millisecond)); got != "ab" {
		t.Fatalf("expected ab, got %q", got)
	}
}

func TestUnmatchedBufferIsRetained(t *testing.T) {
	m := New(Config{})
	m.Type('z', epoch)
	m.Type('q', epoch.Add(50*time.Millisecond))
	if m.Query() != "zq" {
		t.Fatalf("unmatched buffer should persist within the window, got %q", m.Query())
	}
}

func TestMaxLenRestartsBuffer(t *testing.T) {
	m := New(Config{MaxLen: 3})
	ts := epoch
	for _, r := range "abc" {
		m.Type(r, ts)
		ts = ts.Add(10 * time.Millisecond)
	}
	if got := m.Type('d', ts); got != "d" {
		t.Fatalf("expected overflow to restart with d, got %q", got)
	}
}

func TestExpireClearsOnlyAfterIdle(t *testing.T) {
	m := New(Config{})
	m.Type('a', epoch)
	if m.Expire(epoch.Add(200 * time.Millisecond)) {
		t.Fatalf("expire should not fire inside the idle window")
	}
	if !m.Expire(epoch.Add(400 * time.Millisecond)) {
		t.Fatalf("expire should clear a lapsed buffer")
	}
	if m.Query() != "" {
		t.Fatalf("expected empty buffer, got %q", m.Query())
	}
	if m.Expire(epoch.Add(500 * time.Millisecond)) {
		t.Fatalf("expire on empty buffer reports nothing dropped")
	}
}

func TestResetDropsBuffer(t *testing.T) {
	m := New(Config{})
	m.Type('a', epoch)
	m.Reset()
	if m.Query() != "" {
		t.Fatalf("expected empty buffer after reset, got %q", m.Query())
	}
	// After a reset the next keystroke starts a fresh query even if it
	// arrives long after the original ones.
	if got := m.Type('x', epoch.Add(time.Hour)); got != "x" {
		t.Fatalf("expected x, got %q", got)
	}
}

func TestFuzzyMatchStrategy(t *testing.T) {
	m := New(Config{Match: FuzzyMatch})
	m.Type('a', epoch)
	m.Type('y', epoch.Add(20*time.Millisecond))
	if !m.Matches("Amy") {
		t.Fatalf("fuzzy strategy should match Amy for query ay")
	}
	if PrefixMatch("Amy", "ay") {
		t.Fatalf("prefix strategy must not match Amy for query ay")
	}
}
