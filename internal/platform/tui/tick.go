// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, and the two game timers.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// LogicTickMsg is sent to trigger a game simulation tick.
type LogicTickMsg time.Time

// FrameMsg is sent to trigger a redraw.
type FrameMsg time.Time

// interval converts a per-second rate to a period, treating zero as 1Hz.
func interval(rate int) time.Duration {
	return time.Second / time.Duration(max(1, rate))
}

// tickCmd returns a command that sends a logic tick after one period.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(interval(tickRate), func(t time.Time) tea.Msg {
		return LogicTickMsg(t)
	})
}

// frameCmd returns a command that sends a frame message after one period.
func frameCmd(frameRate int) tea.Cmd {
	return tea.Tick(interval(frameRate), func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
