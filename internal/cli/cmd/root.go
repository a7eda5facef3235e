// Package cmd wires the clipkit command-line interface.
package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"clipkit/internal/config"
	"clipkit/internal/logging"
	"clipkit/internal/pipeline"
	"clipkit/internal/ui"
	"clipkit/internal/util/deps"
)

const (
	ExitOK          = 0
	ExitCLIError    = 1
	ExitMissingDep  = 2
	ExitFFmpegError = 3
)

// ExitError wraps an error with a process exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "clipkit",
		Short:         "Terminal front-end for everyday ffmpeg jobs",
		Long:          "clipkit drives ffmpeg and ffprobe for the usual clip chores: combining takes, compressing, laying music under a video, timelapses, and inspecting files. Run it bare in a terminal for the interactive UI, or use the subcommands directly.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return cmd.Help()
			}
			return runTUI(cmd)
		},
	}

	bindGlobalFlags(root.PersistentFlags())

	_ = config.Init(root)

	root.AddCommand(newCombineCmd())
	root.AddCommand(newCompressCmd())
	root.AddCommand(newMusicCmd())
	root.AddCommand(newTimelapseCmd())
	root.AddCommand(newInfoCmd())
	root.AddCommand(newTuiCmd())
	root.AddCommand(newDoctorCmd())
	root.AddCommand(newCompletionCmd())

	return root
}

func bindGlobalFlags(fs *pflag.FlagSet) {
	fs.String("ffmpeg-binary", "", "Path to ffmpeg")
	fs.String("ffprobe-binary", "", "Path to ffprobe")
	fs.BoolP("verbose", "v", false, "Stream ffmpeg log lines to stderr")
	fs.Bool("debug", false, "Append debug traces to the state-dir log file")
}

// Execute runs the CLI with the provided context.
func Execute(ctx context.Context) error {
	root := newRootCmd()
	return root.ExecuteContext(ctx)
}

// resolveTools locates the external binaries with flag > env/config > PATH
// precedence.
func resolveTools(cmd *cobra.Command) (pipeline.Tools, error) {
	ffmpegBin := flagOrConfig(cmd, "ffmpeg-binary", "ffmpeg_binary")
	ffprobeBin := flagOrConfig(cmd, "ffprobe-binary", "ffprobe_binary")

	ffmpegPath, err := deps.FindFFmpeg(ffmpegBin)
	if err != nil {
		return pipeline.Tools{}, &ExitError{Code: ExitMissingDep, Err: err}
	}
	ffprobePath, err := deps.FindFFprobe(ffprobeBin)
	if err != nil {
		return pipeline.Tools{}, &ExitError{Code: ExitMissingDep, Err: err}
	}
	return pipeline.NewTools(ffmpegPath, ffprobePath), nil
}

func flagOrConfig(cmd *cobra.Command, flagName, viperKey string) string {
	if v, err := cmd.InheritedFlags().GetString(flagName); err == nil && v != "" {
		return v
	}
	if v, err := cmd.Flags().GetString(flagName); err == nil && v != "" {
		return v
	}
	return viper.GetString(viperKey)
}

func getBool(cmd *cobra.Command, name string) bool {
	if v, err := cmd.Flags().GetBool(name); err == nil && v {
		return true
	}
	if v, err := cmd.InheritedFlags().GetBool(name); err == nil && v {
		return true
	}
	return viper.GetBool(name)
}

func runTUI(cmd *cobra.Command) error {
	tools, err := resolveTools(cmd)
	if err != nil {
		return err
	}
	logger := logging.New(getBool(cmd, "debug"))
	if err := ui.Run(cmd.Context(), tools, logger); err != nil {
		return &ExitError{Code: ExitCLIError, Err: err}
	}
	return nil
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
