// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, and rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per rendered frame. The carried time is used to
// measure the elapsed wall time fed to the simulation's tick accumulator.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends frame messages at the
// given rate. The simulation cadence does not depend on this rate: the game
// advances on its own fixed interval out of the measured elapsed time.
func frameCmd(rate int) tea.Cmd {
	if rate <= 0 {
		rate = 60
	}
	interval := time.Second / time.Duration(rate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
