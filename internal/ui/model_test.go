package ui

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"clipkit/internal/pipeline"
	"clipkit/internal/progress"
	"clipkit/internal/util"
)

type fakeProbeRunner struct {
	stdout string
}

func (f fakeProbeRunner) Run(_ context.Context, _ util.CmdSpec) (util.CmdResult, error) {
	return util.CmdResult{Stdout: []byte(f.stdout)}, nil
}

func testModel(t *testing.T) Model {
	t.Helper()
	tools := pipeline.Tools{
		FFmpegPath:  "/usr/bin/ffmpeg",
		FFprobePath: "/usr/bin/ffprobe",
		Runner:      fakeProbeRunner{},
	}
	return NewModel(context.Background(), tools, log.New(io.Discard))
}

func TestApplyWorkerMessages(t *testing.T) {
	m := testModel(t)
	m.busy = true

	m.apply(workerEventMsg{E: progress.LogLine{Text: "Duration: 00:00:10.00"}})
	m.apply(workerEventMsg{E: progress.Percentage{Fraction: 0.5}})
	if len(m.logs) != 1 || m.logs[0] != "Duration: 00:00:10.00" {
		t.Errorf("logs = %q", m.logs)
	}
	if m.fraction != 0.5 {
		t.Errorf("fraction = %v, want 0.5", m.fraction)
	}

	m.apply(workerDoneMsg{})
	if !m.complete || m.fraction != 1.0 {
		t.Errorf("after done: complete = %v, fraction = %v", m.complete, m.fraction)
	}
}

func TestApplyErrorMessage(t *testing.T) {
	m := testModel(t)
	m.busy = true

	m.apply(workerErrMsg{Message: "ffmpeg exited with status 1"})
	if m.busy {
		t.Error("busy still set after error")
	}
	if m.status != "Error: ffmpeg exited with status 1" {
		t.Errorf("status = %q", m.status)
	}
	if len(m.logs) != 1 || m.logs[0] != "Error: ffmpeg exited with status 1" {
		t.Errorf("logs = %q, want error appended", m.logs)
	}
}

func TestTriggerRunRejectsWhileBusy(t *testing.T) {
	m := testModel(t)
	m.busy = true
	m.triggerRun()
	if m.status != "Already processing..." {
		t.Errorf("status = %q, want busy rejection", m.status)
	}
}

func TestTriggerRunReportsValidationThroughBridge(t *testing.T) {
	m := testModel(t)
	// Combine tab with empty fields: the worker must fail via the bridge,
	// never via a panic or a synchronous error.
	m.triggerRun()
	if !m.busy {
		t.Fatal("triggerRun did not mark the model busy")
	}

	select {
	case <-m.bridge.wake:
	case <-time.After(2 * time.Second):
		t.Fatal("no bridge message after trigger")
	}
	msgs := m.bridge.drain()
	if len(msgs) != 1 {
		t.Fatalf("bridge messages = %#v, want one error", msgs)
	}
	if _, ok := msgs[0].(workerErrMsg); !ok {
		t.Errorf("bridge message = %#v, want workerErrMsg", msgs[0])
	}
}

func TestBuildInvocationDefaults(t *testing.T) {
	tools := pipeline.Tools{FFmpegPath: "ffmpeg", FFprobePath: "ffprobe", Runner: fakeProbeRunner{}}

	inv, err := buildInvocation(context.Background(), tabCompress, []string{"in.mp4", "out.mp4", "not-a-number"}, tools)
	if err != nil {
		t.Fatalf("compress build error = %v", err)
	}
	if !hasArgPair(inv.Args, "-crf", "23") {
		t.Errorf("Args = %q, want default crf 23", inv.Args)
	}

	inv, err = buildInvocation(context.Background(), tabTimelapse, []string{"in.mp4", "out.mp4", "fast"}, tools)
	if err != nil {
		t.Fatalf("timelapse build error = %v", err)
	}
	if !hasArgPair(inv.Args, "-filter:v", "setpts=PTS/10") {
		t.Errorf("Args = %q, want default speed filter", inv.Args)
	}
}

func hasArgPair(args []string, flag, value string) bool {
	for i := 0; i+1 < len(args); i++ {
		if args[i] == flag && args[i+1] == value {
			return true
		}
	}
	return false
}
