// Package tui provides the Bubble Tea host for Rocks & Diamonds.
// It handles the terminal UI loop, key bindings, the frame and gravity
// schedulers, the score table and SSH hosting.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per frame to run a controller cycle.
type TickMsg time.Time

// GravityMsg is sent once per gravity interval to run a rock pass.
type GravityMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// gravityCmd schedules the next gravity pass. It runs independently of
// the frame rate and is re-armed after every GravityMsg.
func gravityCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return GravityMsg(t)
	})
}
