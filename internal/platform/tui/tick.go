// Package tui drives the dodge game in a terminal with Bubble Tea.
// It owns the frame loop, input mapping, asynchronous commentary and the
// SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg requests one simulation step. Frames from an older generation
// are dropped, which cancels a pending frame when the game leaves PLAYING.
type FrameMsg struct {
	Gen  int
	Time time.Time
}

// frameCmd returns a command that sends the next frame at the given rate.
func frameCmd(gen, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{Gen: gen, Time: t}
	})
}
