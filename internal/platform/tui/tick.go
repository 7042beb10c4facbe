// Package tui runs blockpilot games in a terminal through Bubble Tea,
// locally or over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg advances the running game by one step.
type TickMsg time.Time

// tickCmd schedules the next TickMsg, rate times per second.
// A non-positive rate means 60.
func tickCmd(rate int) tea.Cmd {
	if rate <= 0 {
		rate = 60
	}
	return tea.Tick(time.Second/time.Duration(rate), func(t time.Time) tea.Msg { return TickMsg(t) })
}
