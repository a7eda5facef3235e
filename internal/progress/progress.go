// Package progress defines the event types emitted while an external
// process runs, and the Reporter interface consumed by UIs.
package progress

// Event is one observation from a running invocation. Exactly two
// variants exist: LogLine and Percentage.
type Event interface {
	isEvent()
}

// LogLine is one fully-formed line of diagnostic output.
type LogLine struct {
	Text string
}

// Percentage is the current completion estimate, always in [0, 1].
type Percentage struct {
	Fraction float64
}

func (LogLine) isEvent()    {}
func (Percentage) isEvent() {}

// Reporter receives events synchronously from the emitting call stack.
// Implementations must not block indefinitely: the same goroutine that
// calls Event is draining the child process's output pipe.
type Reporter interface {
	Event(e Event)
}

// Func adapts a closure to the Reporter interface.
type Func func(e Event)

// Event implements Reporter.
func (f Func) Event(e Event) { f(e) }

// Discard is a Reporter that drops every event.
var Discard Reporter = Func(func(Event) {})
