package ffmpeg

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestScanLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "newline terminated lines in order",
			input: "one\ntwo\nthree\n",
			want:  []string{"one", "two", "three"},
		},
		{
			name:  "carriage return terminates a line",
			input: "frame=1 time=00:00:01.00\rframe=2 time=00:00:02.00\r",
			want:  []string{"frame=1 time=00:00:01.00", "frame=2 time=00:00:02.00"},
		},
		{
			name:  "crlf does not produce an empty line",
			input: "alpha\r\nbeta\r\n",
			want:  []string{"alpha", "beta"},
		},
		{
			name:  "mixed terminators at unpredictable boundaries",
			input: "log line\nstatus\rmore\n",
			want:  []string{"log line", "status", "more"},
		},
		{
			name:  "trailing partial line is discarded",
			input: "complete\npartial without terminator",
			want:  []string{"complete"},
		},
		{
			name:  "empty stream",
			input: "",
			want:  nil,
		},
		{
			name:  "only terminators",
			input: "\r\n\r\n\n",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			scanLines(strings.NewReader(tt.input), func(line string) {
				got = append(got, line)
			})
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("scanLines() = %q, want %q", got, tt.want)
			}
		})
	}
}

// failingReader yields some bytes and then a read error.
type failingReader struct {
	data []byte
	pos  int
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, errors.New("pipe broke")
	}
	p[0] = r.data[r.pos]
	r.pos++
	return 1, nil
}

func TestScanLinesStopsSilentlyOnReadError(t *testing.T) {
	var got []string
	scanLines(&failingReader{data: []byte("ok\nlost")}, func(line string) {
		got = append(got, line)
	})
	want := []string{"ok"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("scanLines() = %q, want %q", got, want)
	}
}
