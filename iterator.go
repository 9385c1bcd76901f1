package mmapcsv

// RowIterator is a bidirectional cursor over the rows of a Reader. It holds
// only the current row span and line number, so a copy is an independent
// cursor.
//
// The End sentinel sits one past the buffer length; stepping back from Begin
// reaches a sentinel before the first data row (the last header row when a
// header block exists, otherwise offset -1).
type RowIterator struct {
	r     *Reader
	start int
	end   int
	line  int
}

func (r *Reader) rowAt(start, line int) RowIterator {
	if start >= len(r.buf) {
		return r.End()
	}
	return RowIterator{r: r, start: start, end: rowScanner{buf: r.buf}.nextRow(start), line: line}
}

// Next steps forward one row. Stepping past the last row yields End; Next at
// End is a no-op.
func (it *RowIterator) Next() {
	n := len(it.r.buf)
	if it.start > n {
		return
	}
	before := it.start < 0
	start := it.end + 1
	if start >= n {
		it.start, it.end = n+1, n+1
	} else {
		it.start, it.end = start, rowScanner{buf: it.r.buf}.nextRow(start)
	}
	if !before {
		it.line++
	}
}

// Prev steps back one row. From End it yields the last row; from the first
// row it yields the before-first sentinel. The line number is floored at 0.
func (it *RowIterator) Prev() {
	if it.start <= 0 {
		it.start, it.end = -1, -1
		it.line = max(it.line-1, 0)
		return
	}
	sc := rowScanner{buf: it.r.buf}
	end := it.start - 1
	if it.start > len(it.r.buf) {
		end = sc.lastRowEnd()
	}
	it.start, it.end = sc.prevRow(end), end
	it.line = max(it.line-1, 0)
}

// Row returns the current row. The result is undefined at a sentinel.
func (it RowIterator) Row() Row {
	return Row{r: it.r, start: it.start, end: it.end, line: it.line}
}

// Line returns the 0-based line number of the current row.
func (it RowIterator) Line() int { return it.line }

// Offset returns the start offset of the current row.
func (it RowIterator) Offset() int { return it.start }

// Equal reports whether both iterators point at the same row start.
func (it RowIterator) Equal(o RowIterator) bool { return it.start == o.start }

// Done reports whether the iterator is at either sentinel.
func (it RowIterator) Done() bool {
	return it.r == nil || it.start < 0 || it.start > len(it.r.buf)
}

// ReverseIterator walks rows from the end towards the beginning: Next steps
// back and Prev steps forward.
type ReverseIterator struct {
	RowIterator
}

// Next steps towards the first row.
func (it *ReverseIterator) Next() { it.RowIterator.Prev() }

// Prev steps towards the last row.
func (it *ReverseIterator) Prev() { it.RowIterator.Next() }

// Equal reports whether both iterators point at the same row start.
func (it ReverseIterator) Equal(o ReverseIterator) bool {
	return it.RowIterator.Equal(o.RowIterator)
}

// Base returns the underlying forward iterator.
func (it ReverseIterator) Base() RowIterator { return it.RowIterator }
