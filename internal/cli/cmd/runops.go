package cmd

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"clipkit/internal/ffmpeg"
	"clipkit/internal/logging"
	"clipkit/internal/progress"
	"clipkit/internal/util"
)

// runInvocation executes one ffmpeg invocation in plain (non-TUI) mode,
// rendering Percentage events on a progress bar. Log lines go to stderr
// only with --verbose; ffmpeg's stderr is noisy and the bar is the point.
// An incomplete output file is deleted on failure.
func runInvocation(cmd *cobra.Command, inv ffmpeg.Invocation, output, description string) error {
	verbose := getBool(cmd, "verbose")
	logger := logging.New(getBool(cmd, "debug"))
	runner := ffmpeg.Runner{Logger: logger}

	if err := util.EnsureParentDir(output); err != nil {
		return &ExitError{Code: ExitCLIError, Err: fmt.Errorf("ensure output dir: %w", err)}
	}

	bar := progressbar.NewOptions(100,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetRenderBlankState(true),
	)

	rep := progress.Func(func(e progress.Event) {
		switch e := e.(type) {
		case progress.Percentage:
			_ = bar.Set(int(e.Fraction * 100))
		case progress.LogLine:
			if verbose {
				fmt.Fprintln(os.Stderr, e.Text)
			}
		}
	})

	if err := runner.Run(cmd.Context(), inv, rep); err != nil {
		fmt.Fprintln(os.Stderr)
		_ = util.RemoveIfExists(output)
		return &ExitError{Code: ExitFFmpegError, Err: err}
	}
	_ = bar.Finish()
	fmt.Fprintln(os.Stderr)
	return nil
}

// runInspection executes an ffprobe inspection, forwarding its report
// lines to stdout. No progress bar: the log text is the output.
func runInspection(cmd *cobra.Command, inv ffmpeg.Invocation) error {
	logger := logging.New(getBool(cmd, "debug"))
	runner := ffmpeg.Runner{Logger: logger}

	rep := progress.Func(func(e progress.Event) {
		if l, ok := e.(progress.LogLine); ok {
			fmt.Fprintln(cmd.OutOrStdout(), l.Text)
		}
	})

	if err := runner.Run(cmd.Context(), inv, rep); err != nil {
		return &ExitError{Code: ExitFFmpegError, Err: err}
	}
	return nil
}
