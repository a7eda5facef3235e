package cmd

import (
	"github.com/spf13/cobra"

	"clipkit/internal/model"
	"clipkit/internal/pipeline"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "info <input>",
		Short:         "Inspect a media file with ffprobe",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tools, err := resolveTools(cmd)
			if err != nil {
				return err
			}
			inv, err := pipeline.BuildInfo(model.InfoRequest{Input: args[0]}, tools)
			if err != nil {
				return &ExitError{Code: ExitCLIError, Err: err}
			}
			return runInspection(cmd, inv)
		},
	}
}
