// Package typeahead accumulates printable keystrokes into a time-bounded
// search buffer. The buffer clears after an idle window, after a navigation
// key, or when it grows past a configured length without matching anything.
package typeahead

import (
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// DefaultIdle is the keystroke idle window after which the buffer resets.
const DefaultIdle = 350 * time.Millisecond

// DefaultMaxLen bounds the buffer so an unmatched sequence cannot grow
// without limit.
const DefaultMaxLen = 32

// MatchFunc reports whether an option label satisfies the accumulated query.
type MatchFunc func(label, query string) bool

// PrefixMatch is the standard strategy: case-insensitive prefix comparison.
func PrefixMatch(label, query string) bool {
	return strings.HasPrefix(strings.ToLower(label), strings.ToLower(query))
}

// FuzzyMatch tolerates gaps between query characters, useful for hosts that
// prefer filter-style matching over strict prefixes.
func FuzzyMatch(label, query string) bool {
	return fuzzy.MatchNormalizedFold(query, label)
}

// Matcher holds the transient typeahead buffer. Case is preserved in the
// buffer; comparison strategies fold case themselves.
type Matcher struct {
	buffer []rune
	last   time.Time
	idle   time.Duration
	maxLen int
	match  MatchFunc
}

// Config adjusts matcher behaviour. Zero values fall back to defaults.
type Config struct {
	Idle   time.Duration
	MaxLen int
	Match  MatchFunc
}

// New returns a matcher with the supplied configuration.
func New(cfg Config) *Matcher {
	m := &Matcher{idle: cfg.Idle, maxLen: cfg.MaxLen, match: cfg.Match}
	if m.idle <= 0 {
		m.idle = DefaultIdle
	}
	if m.maxLen <= 0 {
		m.maxLen = DefaultMaxLen
	}
	if m.match == nil {
		m.match = PrefixMatch
	}
	return m
}

// Query returns the accumulated buffer.
func (m *Matcher) Query() string { return string(m.buffer) }

// Idle returns the configured idle window.
func (m *Matcher) Idle() time.Duration { return m.idle }

// Matches applies the configured strategy to a label.
func (m *Matcher) Matches(label string) bool {
	if len(m.buffer) == 0 {
		return false
	}
	return m.match(label, string(m.buffer))
}

// Type appends a printable keystroke and returns the query to match against.
// The buffer clears first when the idle window has lapsed. An immediate
// repeat of a lone character keeps the buffer at length one so repeated
// presses cycle through options sharing that initial, instead of degrading
// into a never-matching multi-character string.
func (m *Matcher) Type(r rune, now time.Time) string {
	if !m.last.IsZero() && now.Sub(m.last) > m.idle {
		m.buffer = m.buffer[:0]
	}
	m.last = now
	if len(m.buffer) == 1 && m.buffer[0] == r {
		return string(m.buffer)
	}
	m.buffer = append(m.buffer, r)
	if len(m.buffer) > m.maxLen {
		m.buffer = append(m.buffer[:0], r)
	}
	return string(m.buffer)
}

// Expire clears the buffer once the idle window has lapsed and reports
// whether anything was dropped. Hosts call this from their timer tick.
func (m *Matcher) Expire(now time.Time) bool {
	if len(m.buffer) == 0 {
		return false
	}
	if now.Sub(m.last) <= m.idle {
		return false
	}
	m.buffer = m.buffer[:0]
	return true
}

// Reset drops the buffer unconditionally. Navigation keys call this so a
// stale query never attaches to a fresh search.
func (m *Matcher) Reset() {
	m.buffer = m.buffer[:0]
	m.last = time.Time{}
}
