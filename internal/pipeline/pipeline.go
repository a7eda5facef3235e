// Package pipeline validates operation requests and resolves them into
// runnable invocations.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"clipkit/internal/ffmpeg"
	"clipkit/internal/model"
	"clipkit/internal/util"
)

// Tools holds the resolved external binaries and the runner used for
// query-style commands (probes).
type Tools struct {
	FFmpegPath  string
	FFprobePath string
	Runner      util.CmdRunner
}

// NewTools constructs Tools with the default runner.
func NewTools(ffmpegPath, ffprobePath string) Tools {
	return Tools{
		FFmpegPath:  ffmpegPath,
		FFprobePath: ffprobePath,
		Runner:      util.NewDefaultRunner(),
	}
}

// BuildCombine validates and resolves a combine request.
func BuildCombine(req model.CombineRequest, tools Tools) (ffmpeg.Invocation, error) {
	if len(req.Inputs) < 2 {
		return ffmpeg.Invocation{}, errors.New("combine needs at least two inputs")
	}
	if req.Output == "" {
		return ffmpeg.Invocation{}, errors.New("output path is required")
	}
	return ffmpeg.BuildCombineArgs(tools.FFmpegPath, req), nil
}

// BuildCompress validates and resolves a compress request.
func BuildCompress(req model.CompressRequest, tools Tools) (ffmpeg.Invocation, error) {
	if req.Input == "" || req.Output == "" {
		return ffmpeg.Invocation{}, errors.New("input and output paths are required")
	}
	if req.CRF < 0 || req.CRF > 51 {
		return ffmpeg.Invocation{}, fmt.Errorf("crf %d out of range (0-51)", req.CRF)
	}
	return ffmpeg.BuildCompressArgs(tools.FFmpegPath, req), nil
}

// BuildMusic validates and resolves an add-music request. It probes the
// video for an audio stream first; the probe decides whether the new
// track is mixed with the original audio or mapped directly.
func BuildMusic(ctx context.Context, req model.MusicRequest, tools Tools) (ffmpeg.Invocation, error) {
	if req.Video == "" || req.Audio == "" || req.Output == "" {
		return ffmpeg.Invocation{}, errors.New("video, audio and output paths are required")
	}
	hasAudio, err := ffmpeg.HasAudioStream(ctx, tools.Runner, tools.FFprobePath, req.Video)
	if err != nil {
		return ffmpeg.Invocation{}, fmt.Errorf("probe audio streams: %w", err)
	}
	return ffmpeg.BuildMusicArgs(tools.FFmpegPath, req, hasAudio), nil
}

// BuildTimelapse validates and resolves a timelapse request.
func BuildTimelapse(req model.TimelapseRequest, tools Tools) (ffmpeg.Invocation, error) {
	if req.Input == "" || req.Output == "" {
		return ffmpeg.Invocation{}, errors.New("input and output paths are required")
	}
	if req.Speed < 0 {
		return ffmpeg.Invocation{}, fmt.Errorf("speed must be positive, got %g", req.Speed)
	}
	return ffmpeg.BuildTimelapseArgs(tools.FFmpegPath, req), nil
}

// BuildInfo validates and resolves an info request.
func BuildInfo(req model.InfoRequest, tools Tools) (ffmpeg.Invocation, error) {
	if req.Input == "" {
		return ffmpeg.Invocation{}, errors.New("input path is required")
	}
	return ffmpeg.BuildInfoArgs(tools.FFprobePath, req), nil
}
