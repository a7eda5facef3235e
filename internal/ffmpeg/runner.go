// Package ffmpeg builds and runs ffmpeg/ffprobe invocations and decodes
// their stderr into progress events.
package ffmpeg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/charmbracelet/log"

	"clipkit/internal/progress"
)

// Runner executes invocations and streams their diagnostic output.
type Runner struct {
	Logger *log.Logger // optional; used for debug tracing
}

// Run spawns the invocation, decodes its stderr through the line reader
// and progress extractor, and forwards events to rep synchronously. It
// blocks until the process exits, so it must be called off any goroutine
// that needs to stay responsive.
//
// On success the final event is always Percentage(1.0), even when the
// stream's own time markers never reached the full duration. On non-zero
// exit no completion event is forced; the exit status is returned in the
// error. Read errors on the pipe stop draining but do not decide the
// outcome — the exit status does.
func (r Runner) Run(ctx context.Context, inv Invocation, rep progress.Reporter) error {
	if rep == nil {
		rep = progress.Discard
	}

	cmd := exec.CommandContext(ctx, inv.Path, inv.Args...)
	cmd.Stdout = io.Discard
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}

	if r.Logger != nil {
		r.Logger.Debug("spawning", "cmd", inv.String())
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("spawn %s: %w", inv.Path, err)
	}

	x := &extractor{}
	scanLines(stderr, func(line string) {
		x.feed(line, rep)
	})

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if r.Logger != nil {
				r.Logger.Debug("process failed", "code", exitErr.ExitCode())
			}
			return fmt.Errorf("%s exited with status %d", inv.Path, exitErr.ExitCode())
		}
		return fmt.Errorf("wait %s: %w", inv.Path, err)
	}

	rep.Event(progress.Percentage{Fraction: 1.0})
	return nil
}
