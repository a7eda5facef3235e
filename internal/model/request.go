// Package model holds the typed requests for each clipkit operation.
package model

// CombineRequest concatenates two or more clips into one output.
type CombineRequest struct {
	Inputs []string
	Output string
}

// CompressRequest re-encodes a clip with x264 at the given CRF.
type CompressRequest struct {
	Input  string
	Output string
	CRF    int // 0-51, lower is better quality; 0 means "use default"
}

// MusicRequest lays an audio track under a video. OriginalVolume scales
// the video's own audio before mixing; it is ignored when the video has
// no audio stream (the new track is mapped directly instead).
type MusicRequest struct {
	Video          string
	Audio          string
	Output         string
	OriginalVolume string // ffmpeg volume expression, e.g. "0.3"
}

// TimelapseRequest speeds a clip up by Speed and drops its audio.
type TimelapseRequest struct {
	Input  string
	Output string
	Speed  float64
}

// InfoRequest inspects a media file with ffprobe.
type InfoRequest struct {
	Input string
}

// DefaultCRF is used when CompressRequest.CRF is unset.
const DefaultCRF = 23

// DefaultTimelapseSpeed is used when TimelapseRequest.Speed is unset.
const DefaultTimelapseSpeed = 10.0

// DefaultOriginalVolume keeps the video's own audio at full level.
const DefaultOriginalVolume = "1.0"
