package ffmpeg

import (
	"math"
	"testing"

	"clipkit/internal/progress"
)

type recorder struct {
	events []progress.Event
}

func (r *recorder) Event(e progress.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) percentages() []float64 {
	var out []float64
	for _, e := range r.events {
		if p, ok := e.(progress.Percentage); ok {
			out = append(out, p.Fraction)
		}
	}
	return out
}

func (r *recorder) logs() []string {
	var out []string
	for _, e := range r.events {
		if l, ok := e.(progress.LogLine); ok {
			out = append(out, l.Text)
		}
	}
	return out
}

func TestExtractorFeed(t *testing.T) {
	tests := []struct {
		name      string
		lines     []string
		wantPcts  []float64
		wantTotal float64
	}{
		{
			name: "half way through",
			lines: []string{
				"Duration: 00:01:30.00, start: 0.000000, bitrate: 1000 kb/s",
				"frame=100 fps=30 time=00:00:45.00 speed=1.0x",
			},
			wantPcts:  []float64{0.5},
			wantTotal: 90,
		},
		{
			name: "time before duration yields nothing",
			lines: []string{
				"frame=1 time=00:00:05.00",
				"Duration: 00:00:10.00",
			},
			wantPcts:  nil,
			wantTotal: 10,
		},
		{
			name: "second duration line is ignored",
			lines: []string{
				"Duration: 00:00:10.00",
				"Duration: 00:01:00.00",
				"frame=1 time=00:00:05.00",
			},
			wantPcts:  []float64{0.5},
			wantTotal: 10,
		},
		{
			name: "fraction clamped to 1",
			lines: []string{
				"Duration: 00:00:10.00",
				"frame=1 time=00:00:15.00",
			},
			wantPcts:  []float64{1.0},
			wantTotal: 10,
		},
		{
			name: "hours count",
			lines: []string{
				"Duration: 2:00:00.00",
				"frame=1 time=1:00:00.00",
			},
			wantPcts:  []float64{0.5},
			wantTotal: 7200,
		},
		{
			name: "no fractional seconds",
			lines: []string{
				"Duration: 0:00:20",
				"frame=1 time=0:00:05",
			},
			wantPcts:  []float64{0.25},
			wantTotal: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := &extractor{}
			rec := &recorder{}
			for _, line := range tt.lines {
				x.feed(line, rec)
			}
			if x.totalSec != tt.wantTotal {
				t.Errorf("totalSec = %v, want %v", x.totalSec, tt.wantTotal)
			}
			got := rec.percentages()
			if len(got) != len(tt.wantPcts) {
				t.Fatalf("percentages = %v, want %v", got, tt.wantPcts)
			}
			for i := range got {
				if math.Abs(got[i]-tt.wantPcts[i]) > 1e-9 {
					t.Errorf("percentage[%d] = %v, want %v", i, got[i], tt.wantPcts[i])
				}
			}
		})
	}
}

func TestExtractorSuppressesFrameLines(t *testing.T) {
	x := &extractor{}
	rec := &recorder{}
	x.feed("Duration: 00:00:10.00", rec)
	x.feed("frame=12 fps=30 time=00:00:05.00", rec)
	x.feed("Output #0, mp4", rec)

	wantLogs := []string{"Duration: 00:00:10.00", "Output #0, mp4"}
	got := rec.logs()
	if len(got) != len(wantLogs) {
		t.Fatalf("logs = %q, want %q", got, wantLogs)
	}
	for i := range got {
		if got[i] != wantLogs[i] {
			t.Errorf("log[%d] = %q, want %q", i, got[i], wantLogs[i])
		}
	}

	// The suppressed frame= line still drives percentage extraction.
	pcts := rec.percentages()
	if len(pcts) != 1 || pcts[0] != 0.5 {
		t.Errorf("percentages = %v, want [0.5]", pcts)
	}
}

func TestTimecodeSeconds(t *testing.T) {
	tests := []struct {
		h, m, s string
		want    float64
	}{
		{"0", "01", "30", 90},
		{"1", "00", "00", 3600},
		{"0", "00", "45.50", 45.5},
		{"bogus", "xx", "yy", 0}, // malformed captures default to zero
	}
	for _, tt := range tests {
		if got := timecodeSeconds(tt.h, tt.m, tt.s); got != tt.want {
			t.Errorf("timecodeSeconds(%q, %q, %q) = %v, want %v", tt.h, tt.m, tt.s, got, tt.want)
		}
	}
}
