// Package search holds the picker's search debouncing rules.
package search

import (
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/agentdesk/internal/catalog"
)

// Defaults for remote search.
const (
	DebounceDelay  = 500 * time.Millisecond
	MinQueryLength = 2
)

// DebouncedMsg is delivered when a debounce window elapses.
type DebouncedMsg struct {
	Seq      uint64
	Value    string
	Category catalog.Category
}

// Debouncer coalesces search keystrokes for one picker session. Each Trigger
// supersedes the previous one; only the message of the latest Trigger is
// accepted when its window elapses.
type Debouncer struct {
	delay   time.Duration
	seq     uint64
	stopped bool
}

// NewDebouncer creates a debouncer. A non-positive delay uses DebounceDelay.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DebounceDelay
	}
	return &Debouncer{delay: delay}
}

// Delay returns the debounce window.
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

// Trigger schedules value for category and supersedes any pending trigger.
func (d *Debouncer) Trigger(value string, category catalog.Category) tea.Cmd {
	if d.stopped {
		return nil
	}
	d.seq++
	seq := d.seq
	return tea.Tick(d.delay, func(time.Time) tea.Msg {
		return DebouncedMsg{Seq: seq, Value: value, Category: category}
	})
}

// Accept reports whether msg is from the latest Trigger and the session is live.
func (d *Debouncer) Accept(msg DebouncedMsg) bool {
	return !d.stopped && msg.Seq == d.seq
}

// Cancel invalidates the pending trigger without stopping the debouncer.
func (d *Debouncer) Cancel() {
	d.seq++
}

// Stop tears the debouncer down; pending and future triggers are ignored.
func (d *Debouncer) Stop() {
	d.stopped = true
	d.seq++
}

// ShouldQuery reports whether a debounced value should hit the backend:
// an empty value reloads the unfiltered list, otherwise at least
// MinQueryLength characters are required.
func ShouldQuery(value string) bool {
	return value == "" || utf8.RuneCountInString(value) >= MinQueryLength
}
