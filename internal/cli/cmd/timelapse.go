package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"clipkit/internal/model"
	"clipkit/internal/pipeline"
)

func newTimelapseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "timelapse <input>",
		Short:         "Speed a clip up and drop its audio",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			speed, _ := cmd.Flags().GetFloat64("speed")
			tools, err := resolveTools(cmd)
			if err != nil {
				return err
			}
			inv, err := pipeline.BuildTimelapse(model.TimelapseRequest{
				Input:  args[0],
				Output: output,
				Speed:  speed,
			}, tools)
			if err != nil {
				return &ExitError{Code: ExitCLIError, Err: err}
			}
			if err := runInvocation(cmd, inv, output, "Creating timelapse"); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved: %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "", "Output path")
	cmd.Flags().Float64P("speed", "s", model.DefaultTimelapseSpeed, "Speed factor (e.g. 10 for 10x)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
