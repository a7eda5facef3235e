package ffmpeg

import (
	"context"
	"fmt"
	"strings"

	"clipkit/internal/util"
)

// HasAudioStream reports whether the media file at path contains at least
// one audio stream. It asks ffprobe to list audio-stream codec types; any
// non-empty stdout means an audio stream exists.
func HasAudioStream(ctx context.Context, runner util.CmdRunner, ffprobePath, path string) (bool, error) {
	res, err := runner.Run(ctx, util.CmdSpec{
		Path: ffprobePath,
		Args: []string{
			"-v", "error",
			"-select_streams", "a",
			"-show_entries", "stream=codec_type",
			"-of", "csv=p=0",
			path,
		},
	})
	if err != nil {
		return false, fmt.Errorf("ffprobe failed: %w", err)
	}
	return strings.TrimSpace(string(res.Stdout)) != "", nil
}
