// Package teatest drives bubbletea models synchronously in tests: Update
// is called directly and returned Cmds are drained inline, so model
// behavior is observable without a running tea.Program or goroutines.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxDrainDepth bounds recursive Cmd draining.
const maxDrainDepth = 100

// cmdTimeout separates ordinary Cmds (microseconds) from cursor blink
// Cmds, which block on a ~530ms timer and are skipped.
const cmdTimeout = 10 * time.Millisecond

// Driver executes a tea.Model step by step.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set when tea.QuitMsg is observed. The bubbletea
	// runtime normally swallows it, so the driver detects it itself.
	Quitting bool
}

// New wraps model in a driver and drains its Init command.
func New(t *testing.T, model tea.Model) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	return d
}

// DrainInit executes the model's Init() command chain.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drain(d.Model.Init(), 0)
}

// Send dispatches a message through Update and drains resulting Cmds.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.drain(cmd, 0)
}

// Press sends a special key (enter, esc, tab, arrows, ...).
func (d *Driver) Press(k tea.KeyType) {
	d.T.Helper()
	msg := tea.KeyMsg{Type: k}
	if k == tea.KeySpace {
		msg.Runes = []rune{' '}
	}
	d.Send(msg)
}

// PressKey sends a single character key.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// Type sends a string one key event at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

// View returns the model's current rendered output.
func (d *Driver) View() string {
	return d.Model.View()
}

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= maxDrainDepth {
		d.T.Logf("teatest: drain depth limit (%d) reached", maxDrainDepth)
		return
	}

	msg := runWithTimeout(cmd)
	if msg == nil || isCursorBlink(msg) {
		return
	}

	switch m := msg.(type) {
	case tea.BatchMsg:
		for _, sub := range m {
			if sub != nil {
				d.drain(sub, depth+1)
			}
		}
	case tea.QuitMsg:
		d.Quitting = true
		d.Model, _ = d.Model.Update(m)
	default:
		updated, next := d.Model.Update(msg)
		d.Model = updated
		d.drain(next, depth+1)
	}
}

// runWithTimeout executes a Cmd, giving up after cmdTimeout so blocking
// timer Cmds cannot hang the test.
func runWithTimeout(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() {
		ch <- cmd()
	}()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

// isCursorBlink matches the unexported blink message types from
// bubbles/cursor, which chain into blocking timer Cmds if processed.
func isCursorBlink(msg tea.Msg) bool {
	name := fmt.Sprintf("%T", msg)
	return strings.Contains(name, "Blink") || strings.Contains(name, "blink")
}
