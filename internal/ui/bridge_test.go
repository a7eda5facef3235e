package ui

import (
	"testing"

	"clipkit/internal/progress"
)

func TestBridgePreservesSendOrder(t *testing.T) {
	b := newBridge()
	b.send(workerEventMsg{E: progress.LogLine{Text: "one"}})
	b.send(workerEventMsg{E: progress.Percentage{Fraction: 0.5}})
	b.send(workerDoneMsg{})

	got := b.drain()
	if len(got) != 3 {
		t.Fatalf("drain() returned %d messages, want 3", len(got))
	}
	if l, ok := got[0].(workerEventMsg); !ok || l.E != (progress.LogLine{Text: "one"}) {
		t.Errorf("msg[0] = %#v, want LogLine", got[0])
	}
	if p, ok := got[1].(workerEventMsg); !ok || p.E != (progress.Percentage{Fraction: 0.5}) {
		t.Errorf("msg[1] = %#v, want Percentage", got[1])
	}
	if _, ok := got[2].(workerDoneMsg); !ok {
		t.Errorf("msg[2] = %#v, want workerDoneMsg", got[2])
	}
}

func TestBridgeDrainIsNonBlocking(t *testing.T) {
	b := newBridge()
	if got := b.drain(); got != nil {
		t.Errorf("drain() on empty bridge = %#v, want nil", got)
	}
}

func TestBridgeSendNeverBlocks(t *testing.T) {
	b := newBridge()
	// Nobody is draining; a burst of sends must still return.
	for i := 0; i < 10000; i++ {
		b.send(workerEventMsg{E: progress.Percentage{Fraction: float64(i) / 10000}})
	}
	if got := len(b.drain()); got != 10000 {
		t.Errorf("drain() returned %d messages, want 10000", got)
	}
}

func TestBridgeWakeSignal(t *testing.T) {
	b := newBridge()
	b.send(workerDoneMsg{})
	select {
	case <-b.wake:
	default:
		t.Error("send did not signal wake")
	}
}
