package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"clipkit/internal/model"
	"clipkit/internal/pipeline"
)

func newMusicCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "add-music <video>",
		Short:         "Lay an audio track under a video",
		Long:          "Adds an audio file to a video. When the video already has audio, the two tracks are mixed and --original-volume scales the video's own track; a silent video just gets the new track.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			audio, _ := cmd.Flags().GetString("audio")
			output, _ := cmd.Flags().GetString("output")
			volume, _ := cmd.Flags().GetString("original-volume")
			tools, err := resolveTools(cmd)
			if err != nil {
				return err
			}
			inv, err := pipeline.BuildMusic(cmd.Context(), model.MusicRequest{
				Video:          args[0],
				Audio:          audio,
				Output:         output,
				OriginalVolume: volume,
			}, tools)
			if err != nil {
				return &ExitError{Code: ExitFFmpegError, Err: err}
			}
			if err := runInvocation(cmd, inv, output, "Adding music"); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved: %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringP("audio", "a", "", "Audio file to add")
	cmd.Flags().StringP("output", "o", "", "Output path")
	cmd.Flags().String("original-volume", model.DefaultOriginalVolume, "Volume of the video's own audio when mixing (e.g. 0.3)")
	_ = cmd.MarkFlagRequired("audio")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
