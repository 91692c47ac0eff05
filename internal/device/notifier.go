// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package device

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-device-sync/models"
	"github.com/charmbracelet/lipgloss"
)

const notifierBuffer = 16

var (
	stageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3B82F6"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true)
)

// ConsoleNotifier renders progress lines to a writer. Messages are queued
// and written by a single goroutine; when the queue is full the message is
// dropped so the sync worker never waits on the display.
type ConsoleNotifier struct {
	out     io.Writer
	queue   chan string
	done    chan struct{}
	dropped atomic.Int64

	mu     sync.RWMutex
	closed bool
}

// NewConsoleNotifier starts the writer goroutine. Close stops it.
func NewConsoleNotifier(out io.Writer) *ConsoleNotifier {
	n := &ConsoleNotifier{
		out:   out,
		queue: make(chan string, notifierBuffer),
		done:  make(chan struct{}),
	}
	go n.run()
	return n
}

func (n *ConsoleNotifier) SetProgressStage(stage models.Stage) {
	n.push(stageStyle.Render(fmt.Sprintf("[%d/%d] %s", int(stage)+1, int(models.StageCleanup)+1, stage)))
}

func (n *ConsoleNotifier) SetCompletionScreen(outcome models.Outcome) {
	var style lipgloss.Style
	switch outcome {
	case models.OutcomeSuccess:
		style = successStyle
	case models.OutcomeFirmwarePending, models.OutcomeCancelled:
		style = warningStyle
	default:
		style = errorStyle
	}
	n.push(style.Render("sync finished: " + outcome.String()))
}

// Dropped returns the number of messages discarded on a full queue.
func (n *ConsoleNotifier) Dropped() int64 {
	return n.dropped.Load()
}

// Close flushes queued messages and stops the writer.
func (n *ConsoleNotifier) Close() {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.closed = true
	close(n.queue)
	n.mu.Unlock()

	<-n.done
}

func (n *ConsoleNotifier) push(msg string) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if n.closed {
		return
	}

	select {
	case n.queue <- msg:
	default:
		n.dropped.Add(1)
	}
}

func (n *ConsoleNotifier) run() {
	defer close(n.done)
	for msg := range n.queue {
		_, _ = fmt.Fprintln(n.out, msg)
	}
}
