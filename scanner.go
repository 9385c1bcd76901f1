package mmapcsv

import "bytes"

// rowScanner locates newline-delimited row spans. It is purely offset based;
// line numbers are tracked by the iterators.
type rowScanner struct {
	buf []byte
}

// nextRow returns the end of the row starting at start: the offset of the next
// '\n', or len(buf) for a final row without a terminator.
func (s rowScanner) nextRow(start int) int {
	if start >= len(s.buf) {
		return len(s.buf)
	}
	if i := bytes.IndexByte(s.buf[start:], '\n'); i >= 0 {
		return start + i
	}
	return len(s.buf)
}

// prevRow returns the start of the row ending at end: one past the nearest
// '\n' strictly before end, or 0 when end lies in the first row.
func (s rowScanner) prevRow(end int) int {
	if end > len(s.buf) {
		end = len(s.buf)
	}
	if end <= 0 {
		return 0
	}
	return bytes.LastIndexByte(s.buf[:end], '\n') + 1
}

// lastRowEnd is the end of the final row. A single trailing terminator closes
// the final row instead of opening an empty one.
func (s rowScanner) lastRowEnd() int {
	n := len(s.buf)
	if n > 0 && s.buf[n-1] == '\n' {
		return n - 1
	}
	return n
}

// countRows counts row spans: one per terminator, plus one for trailing
// content after the last terminator.
func (s rowScanner) countRows() int {
	n := bytes.Count(s.buf, []byte{'\n'})
	if len(s.buf) > 0 && s.buf[len(s.buf)-1] != '\n' {
		n++
	}
	return n
}
