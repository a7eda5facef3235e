package ffmpeg

import (
	"regexp"
	"strconv"
	"strings"

	"clipkit/internal/progress"
)

var (
	// ffmpeg prints "Duration: 00:01:30.00, start: ..." once near stream start.
	durationRe = regexp.MustCompile(`Duration: (\d+):(\d{2}):(\d{2}(?:\.\d+)?)`)
	// Status lines repeat "time=00:00:45.00" while encoding.
	timeRe = regexp.MustCompile(`time=(\d+):(\d{2}):(\d{2}(?:\.\d+)?)`)
)

// extractor turns ffmpeg stderr lines into progress events. It holds the
// per-invocation stream state: the total duration, captured once from the
// first matching line and never overwritten. A fresh extractor is required
// for every invocation.
type extractor struct {
	totalSec float64
}

// feed processes one completed line and forwards resulting events to rep.
// Every line becomes a LogLine except the high-frequency "frame=" status
// lines, which would flood a log view. Percentage extraction runs on all
// lines, suppressed or not.
func (x *extractor) feed(line string, rep progress.Reporter) {
	if m := durationRe.FindStringSubmatch(line); m != nil && x.totalSec == 0 {
		x.totalSec = timecodeSeconds(m[1], m[2], m[3])
	}

	if !strings.HasPrefix(line, "frame=") {
		rep.Event(progress.LogLine{Text: line})
	}

	if m := timeRe.FindStringSubmatch(line); m != nil && x.totalSec > 0 {
		frac := timecodeSeconds(m[1], m[2], m[3]) / x.totalSec
		if frac > 1 {
			frac = 1
		}
		rep.Event(progress.Percentage{Fraction: frac})
	}
}

// timecodeSeconds converts H:MM:SS[.frac] captures to seconds. Captures
// that fail to parse default to zero; a malformed timestamp must not abort
// progress tracking.
func timecodeSeconds(h, m, s string) float64 {
	hours, _ := strconv.ParseFloat(h, 64)
	mins, _ := strconv.ParseFloat(m, 64)
	secs, _ := strconv.ParseFloat(s, 64)
	return hours*3600 + mins*60 + secs
}
