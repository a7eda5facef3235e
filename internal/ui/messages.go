package ui

import "clipkit/internal/progress"

// flushMsg tells the update loop the bridge has queued messages.
type flushMsg struct{}

// workerEventMsg carries one progress event from an in-flight invocation.
type workerEventMsg struct {
	E progress.Event
}

// workerDoneMsg is the terminal success message, sent exactly once.
type workerDoneMsg struct{}

// workerErrMsg is the terminal failure message, sent exactly once.
type workerErrMsg struct {
	Message string
}
