package ffmpeg

import (
	"fmt"
	"strconv"
	"strings"

	"clipkit/internal/model"
	"clipkit/internal/util"
)

// Invocation is a fully-constructed external command, ready for Run.
type Invocation struct {
	Path string   // binary path (ffmpeg or ffprobe)
	Args []string // argument vector, binary name excluded
}

// String renders the invocation as a shell-quoted command line for
// logging. Paths with spaces stay copy-pasteable.
func (inv Invocation) String() string {
	return util.ShellQuote(inv.Path, inv.Args)
}

// BuildCombineArgs constructs the concat filter invocation for N inputs.
func BuildCombineArgs(ffmpegPath string, req model.CombineRequest) Invocation {
	args := make([]string, 0, 2*len(req.Inputs)+8)
	for _, in := range req.Inputs {
		args = append(args, "-i", in)
	}

	var filter strings.Builder
	for i := range req.Inputs {
		fmt.Fprintf(&filter, "[%d:v][%d:a]", i, i)
	}
	fmt.Fprintf(&filter, "concat=n=%d:v=1:a=1[outv][outa]", len(req.Inputs))

	args = append(args,
		"-filter_complex", filter.String(),
		"-map", "[outv]",
		"-map", "[outa]",
		"-y", req.Output,
	)
	return Invocation{Path: ffmpegPath, Args: args}
}

// BuildCompressArgs constructs the x264 CRF re-encode invocation.
func BuildCompressArgs(ffmpegPath string, req model.CompressRequest) Invocation {
	crf := req.CRF
	if crf <= 0 {
		crf = model.DefaultCRF
	}
	return Invocation{Path: ffmpegPath, Args: []string{
		"-i", req.Input,
		"-vcodec", "libx264",
		"-crf", strconv.Itoa(crf),
		"-y", req.Output,
	}}
}

// BuildMusicArgs constructs the add-music invocation. hasAudio selects the
// shape: mix the video's own track with the new one, or map the new track
// directly with -shortest when the video is silent.
func BuildMusicArgs(ffmpegPath string, req model.MusicRequest, hasAudio bool) Invocation {
	vol := req.OriginalVolume
	if vol == "" {
		vol = model.DefaultOriginalVolume
	}
	if hasAudio {
		filter := fmt.Sprintf(
			"[0:a]volume=%s[a0];[1:a]volume=1.0[a1];[a0][a1]amix=inputs=2:duration=first[out]",
			vol,
		)
		return Invocation{Path: ffmpegPath, Args: []string{
			"-i", req.Video,
			"-i", req.Audio,
			"-filter_complex", filter,
			"-map", "0:v",
			"-map", "[out]",
			"-y", req.Output,
		}}
	}
	return Invocation{Path: ffmpegPath, Args: []string{
		"-i", req.Video,
		"-i", req.Audio,
		"-map", "0:v",
		"-map", "1:a",
		"-shortest",
		"-y", req.Output,
	}}
}

// BuildTimelapseArgs constructs the setpts speed-up invocation. Audio is
// dropped; resampling it to match the new rate is out of scope.
func BuildTimelapseArgs(ffmpegPath string, req model.TimelapseRequest) Invocation {
	speed := req.Speed
	if speed <= 0 {
		speed = model.DefaultTimelapseSpeed
	}
	return Invocation{Path: ffmpegPath, Args: []string{
		"-i", req.Input,
		"-filter:v", fmt.Sprintf("setpts=PTS/%g", speed),
		"-an",
		"-y", req.Output,
	}}
}

// BuildInfoArgs constructs the ffprobe inspection invocation. ffprobe
// writes its report to stderr, so the runner's log events carry it.
func BuildInfoArgs(ffprobePath string, req model.InfoRequest) Invocation {
	return Invocation{Path: ffprobePath, Args: []string{
		"-hide_banner",
		"-i", req.Input,
	}}
}
