package tui

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// submitDelay is the simulated delivery latency. There is no cancellation and
// no retry: every send completes after exactly this interval.
const submitDelay = 1500 * time.Millisecond

type sendRecord struct {
	ID          string
	Idea        string
	StartedAt   time.Time
	CompletedAt time.Time
	Duration    time.Duration
}

type sendStartedMsg struct {
	Record sendRecord
}

type sendFinishedMsg struct {
	Record sendRecord
}

// sendDesk hands out one-shot simulated deliveries for suggestion ideas.
// Nothing leaves the process; the desk exists so the UI has an honest
// in-flight phase and the log records every attempt.
type sendDesk struct {
	counter int64
}

func newSendDesk() *sendDesk {
	return &sendDesk{}
}

func (d *sendDesk) Deliver(idea string, delay time.Duration) tea.Cmd {
	id := fmt.Sprintf("suggest-%d", atomic.AddInt64(&d.counter, 1))
	record := sendRecord{ID: id, Idea: idea, StartedAt: time.Now()}

	startCmd := func() tea.Msg {
		return sendStartedMsg{Record: record}
	}
	runCmd := func() tea.Msg {
		<-time.After(delay)
		record.CompletedAt = time.Now()
		record.Duration = record.CompletedAt.Sub(record.StartedAt)
		log.Printf("[send] %s delivered after %s (simulated)", id, record.Duration)
		return sendFinishedMsg{Record: record}
	}
	return tea.Sequence(startCmd, runCmd)
}
