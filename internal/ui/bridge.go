package ui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// bridge is the one-directional channel between worker goroutines and the
// update loop. The queue is unbounded so a send never blocks the worker,
// which is the same goroutine draining the child process's stderr pipe.
// Order is preserved and nothing is coalesced.
type bridge struct {
	mu    sync.Mutex
	queue []tea.Msg
	wake  chan struct{}
}

func newBridge() *bridge {
	return &bridge{wake: make(chan struct{}, 1)}
}

// send enqueues a message and nudges the consumer.
func (b *bridge) send(m tea.Msg) {
	b.mu.Lock()
	b.queue = append(b.queue, m)
	b.mu.Unlock()
	select {
	case b.wake <- struct{}{}:
	default:
	}
}

// drain returns all currently queued messages without waiting.
func (b *bridge) drain() []tea.Msg {
	b.mu.Lock()
	defer b.mu.Unlock()
	q := b.queue
	b.queue = nil
	return q
}

// awaitCmd blocks until at least one message is queued, then asks the
// update loop to drain.
func (b *bridge) awaitCmd() tea.Cmd {
	return func() tea.Msg {
		<-b.wake
		return flushMsg{}
	}
}
