package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"clipkit/internal/model"
	"clipkit/internal/pipeline"
)

func newCombineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "combine <input>...",
		Short:         "Concatenate two or more clips into one file",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			tools, err := resolveTools(cmd)
			if err != nil {
				return err
			}
			inv, err := pipeline.BuildCombine(model.CombineRequest{
				Inputs: args,
				Output: output,
			}, tools)
			if err != nil {
				return &ExitError{Code: ExitCLIError, Err: err}
			}
			if err := runInvocation(cmd, inv, output, "Combining"); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved: %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "", "Output path")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
