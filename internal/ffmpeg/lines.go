package ffmpeg

import "io"

// scanLines reads r one byte at a time and calls emit for every completed
// line, terminator stripped. Both '\r' and '\n' terminate a line: ffmpeg
// interleaves carriage-return-rewritten status lines with newline-terminated
// log lines at unpredictable boundaries, so a block-buffered splitter would
// hold progress updates back. Empty accumulations (e.g. the '\n' half of
// "\r\n") are skipped. Bytes left unterminated at EOF are discarded, and a
// read error simply ends the scan; the run outcome is decided by the child's
// exit status, not by pipe errors.
func scanLines(r io.Reader, emit func(line string)) {
	var buf []byte
	b := make([]byte, 1)
	for {
		n, err := r.Read(b)
		if n > 0 {
			switch b[0] {
			case '\n', '\r':
				if len(buf) > 0 {
					emit(string(buf))
					buf = buf[:0]
				}
			default:
				buf = append(buf, b[0])
			}
		}
		if err != nil {
			return
		}
	}
}
