package mmapcsv

import "bytes"

// Cell is a view of one field within a Row. Start and End delimit the raw span,
// quotes and escapes included.
type Cell struct {
	r       *Reader
	start   int
	end     int
	no      int
	escaped bool
}

// Start returns the offset of the first byte of the cell.
func (c Cell) Start() int { return c.start }

// End returns the exclusive end offset of the cell.
func (c Cell) End() int { return c.end }

// Index returns the 0-based position of the cell within its row.
func (c Cell) Index() int { return c.no }

// Escaped reports whether the raw span contains a doubled quote that Value
// collapses. A cell that is exactly "" is an empty quoted field, not escaped.
func (c Cell) Escaped() bool { return c.escaped }

// Bytes returns the raw span without copying. The slice aliases the Reader's
// buffer and must not be modified or used after the Reader is closed.
func (c Cell) Bytes() []byte {
	if c.r == nil {
		return nil
	}
	return c.r.span(c.start, c.end)
}

// String returns a copy of the raw span.
func (c Cell) String() string {
	return string(c.Bytes())
}

// AppendRaw appends the raw span to dst.
func (c Cell) AppendRaw(dst []byte) []byte {
	return append(dst, c.Bytes()...)
}

// Value returns the cell content with the dialect's trim policy applied,
// enclosing quotes removed and doubled quotes collapsed.
func (c Cell) Value() string {
	if c.r == nil || c.start >= c.end {
		return ""
	}
	return string(c.AppendValue(make([]byte, 0, c.end-c.start)))
}

// AppendValue appends the unescaped cell content to dst.
func (c Cell) AppendValue(dst []byte) []byte {
	if c.r == nil {
		return dst
	}
	b := c.r.dialect.Trim.Trim(c.Bytes())
	q := c.r.dialect.Quote
	if bytes.IndexByte(b, q) < 0 {
		return append(dst, b...)
	}
	if len(b) >= 2 && b[0] == q && b[len(b)-1] == q {
		b = b[1 : len(b)-1]
	}
	for i := 0; i < len(b); i++ {
		dst = append(dst, b[i])
		if b[i] == q && i+1 < len(b) && b[i+1] == q {
			i++
		}
	}
	return dst
}

// Prefix returns the raw bytes before the first sep in the cell. ok is false
// when the cell contains no sep.
func (c Cell) Prefix(sep byte) (prefix []byte, ok bool) {
	b := c.Bytes()
	i := bytes.IndexByte(b, sep)
	if i < 0 {
		return nil, false
	}
	return b[:i], true
}
