package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"clipkit/internal/model"
	"clipkit/internal/pipeline"
)

func newCompressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "compress <input>",
		Short:         "Re-encode a clip with x264 at a chosen CRF",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			crf, _ := cmd.Flags().GetInt("crf")
			tools, err := resolveTools(cmd)
			if err != nil {
				return err
			}
			inv, err := pipeline.BuildCompress(model.CompressRequest{
				Input:  args[0],
				Output: output,
				CRF:    crf,
			}, tools)
			if err != nil {
				return &ExitError{Code: ExitCLIError, Err: err}
			}
			if err := runInvocation(cmd, inv, output, "Compressing"); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved: %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "", "Output path")
	cmd.Flags().Int("crf", model.DefaultCRF, "Constant Rate Factor (0-51, lower is better quality)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
