// Package tui provides the Bubble Tea front end for watching a solve
// interactively, locally or over SSH. It replays the same move sequence as
// the classic ANSI animation at an adjustable pace.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger the next animation step.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// given number of steps per second.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
