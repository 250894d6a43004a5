package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const scrollFrameInterval = 16 * time.Millisecond

type scrollStepMsg struct{}

func scrollStepCmd() tea.Cmd {
	return tea.Tick(scrollFrameInterval, func(time.Time) tea.Msg {
		return scrollStepMsg{}
	})
}

// easeTowardTop returns the next offset on the way to the top of the page.
// Larger distances move in bigger steps so the glide decelerates near zero.
func easeTowardTop(offset int) int {
	if offset <= 0 {
		return 0
	}
	step := offset / 4
	if step < 3 {
		step = 3
	}
	next := offset - step
	if next < 0 {
		next = 0
	}
	return next
}
