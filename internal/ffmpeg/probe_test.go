package ffmpeg

import (
	"context"
	"errors"
	"testing"

	"clipkit/internal/util"
)

type fakeRunner struct {
	stdout string
	err    error
	spec   util.CmdSpec
}

func (f *fakeRunner) Run(_ context.Context, spec util.CmdSpec) (util.CmdResult, error) {
	f.spec = spec
	return util.CmdResult{Stdout: []byte(f.stdout)}, f.err
}

func TestHasAudioStream(t *testing.T) {
	tests := []struct {
		name    string
		stdout  string
		err     error
		want    bool
		wantErr bool
	}{
		{"audio stream present", "audio\n", nil, true, false},
		{"two audio streams", "audio\naudio\n", nil, true, false},
		{"no audio stream", "", nil, false, false},
		{"whitespace only", "  \n", nil, false, false},
		{"ffprobe failure", "", errors.New("exit status 1"), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fr := &fakeRunner{stdout: tt.stdout, err: tt.err}
			got, err := HasAudioStream(context.Background(), fr, "ffprobe", "v.mp4")
			if (err != nil) != tt.wantErr {
				t.Fatalf("HasAudioStream() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("HasAudioStream() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasAudioStreamProbeArgs(t *testing.T) {
	fr := &fakeRunner{}
	_, _ = HasAudioStream(context.Background(), fr, "/opt/ffprobe", "v.mp4")
	if fr.spec.Path != "/opt/ffprobe" {
		t.Errorf("probe path = %q, want /opt/ffprobe", fr.spec.Path)
	}
	want := []string{"-v", "error", "-select_streams", "a", "-show_entries", "stream=codec_type", "-of", "csv=p=0", "v.mp4"}
	if len(fr.spec.Args) != len(want) {
		t.Fatalf("probe args = %q, want %q", fr.spec.Args, want)
	}
	for i := range want {
		if fr.spec.Args[i] != want[i] {
			t.Errorf("probe arg[%d] = %q, want %q", i, fr.spec.Args[i], want[i])
		}
	}
}
