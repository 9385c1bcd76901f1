package mmapcsv

import (
	"errors"
	"iter"
)

// Reader tokenizes one immutable byte source. Header block, row count and
// column count are computed once by NewReader and never re-derived; changing
// the underlying bytes afterwards is undefined behaviour.
type Reader struct {
	src     Source
	buf     []byte
	dialect Dialect
	headers []Row
	rows    int
	cols    int
}

// NewReader binds src with dialect d. On failure src is left open and no
// Reader is returned.
func NewReader(src Source, d Dialect) (*Reader, error) {
	if src == nil {
		return nil, &BindError{Err: ErrEmptySource}
	}
	d, err := d.normalize()
	if err != nil {
		return nil, err
	}
	buf := src.Bytes()
	if len(buf) == 0 {
		return nil, &BindError{Err: ErrEmptySource}
	}

	r := &Reader{src: src, buf: buf, dialect: d}
	if d.Header {
		if r.headers, err = r.detectHeader(); err != nil {
			return nil, err
		}
		r.cols = headerCols(r.headers)
	}
	if len(r.headers) == 0 {
		r.cols = Row{r: r, start: 0, end: rowScanner{buf: buf}.nextRow(0)}.Len()
	}
	r.rows = rowScanner{buf: buf}.countRows()
	return r, nil
}

// Open maps the named file and binds it with dialect d. The mapping is
// released by Close.
func Open(name string, d Dialect) (*Reader, error) {
	src, err := MapFile(name)
	if err != nil {
		return nil, err
	}
	r, err := NewReader(src, d)
	if err != nil {
		return nil, errors.Join(err, src.Close())
	}
	return r, nil
}

// Parse binds caller-owned bytes with dialect d. data must not be modified
// while the Reader is in use.
func Parse(data []byte, d Dialect) (*Reader, error) {
	return NewReader(Memory(data), d)
}

// Close releases the byte source. Rows and cells obtained from r read as empty
// afterwards; slices returned before Close must not be used.
func (r *Reader) Close() error {
	if r == nil || r.src == nil {
		return ErrClosed
	}
	err := r.src.Close()
	r.src, r.buf, r.headers = nil, nil, nil
	return err
}

// span returns buf[start:end], or nil when the span is empty or no longer
// backed by the buffer.
func (r *Reader) span(start, end int) []byte {
	if start >= end || end > len(r.buf) {
		return nil
	}
	return r.buf[start:end:end]
}

// Dialect returns the normalised dialect of r.
func (r *Reader) Dialect() Dialect { return r.dialect }

// Header returns the header block in order. It is empty when the dialect has
// no header.
func (r *Reader) Header() []Row {
	out := make([]Row, len(r.headers))
	copy(out, r.headers)
	return out
}

// Rows returns the number of rows, header rows included.
func (r *Reader) Rows() int { return r.rows }

// Cols returns the column count: the widest header row, or the first row's
// cell count without a header.
func (r *Reader) Cols() int { return r.cols }

// Size returns the number of data rows.
func (r *Reader) Size() int { return r.rows - len(r.headers) }

// Len returns the length of the underlying buffer in bytes.
func (r *Reader) Len() int { return len(r.buf) }

// Begin returns an iterator at the first data row, or End if there is none.
func (r *Reader) Begin() RowIterator {
	if len(r.headers) == 0 {
		return r.rowAt(0, 0)
	}
	last := r.headers[len(r.headers)-1]
	return r.rowAt(last.end+1, len(r.headers))
}

// End returns the past-the-end sentinel. It must not be dereferenced.
func (r *Reader) End() RowIterator {
	n := len(r.buf)
	return RowIterator{r: r, start: n + 1, end: n + 1, line: r.rows}
}

// RBegin returns a reverse iterator at the last data row.
func (r *Reader) RBegin() ReverseIterator {
	it := r.End()
	if r.Size() > 0 {
		it.Prev()
	}
	return ReverseIterator{it}
}

// REnd returns the reverse sentinel, one step before Begin.
func (r *Reader) REnd() ReverseIterator {
	it := r.Begin()
	if r.Size() == 0 {
		return ReverseIterator{r.End()}
	}
	it.Prev()
	return ReverseIterator{it}
}

// Seek returns an iterator at data row i, stepping from whichever of Begin
// and End is nearer. i is clamped to [0, Size()-1]; with no data rows Seek
// returns End.
func (r *Reader) Seek(i int) RowIterator {
	it, _ := r.seek(i)
	return it
}

// seek implements Seek and also returns the number of iterator steps taken.
func (r *Reader) seek(i int) (RowIterator, int) {
	size := r.Size()
	if size <= 0 {
		return r.End(), 0
	}
	i = min(max(i, 0), size-1)
	if i < size/2 {
		it := r.Begin()
		for range i {
			it.Next()
		}
		return it, i
	}
	it := r.End()
	for range size - i {
		it.Prev()
	}
	return it, size - i
}

// At returns data row i. See Seek for the index policy.
func (r *Reader) At(i int) Row {
	return r.Seek(i).Row()
}

// All yields the data rows in order with their 0-based data index.
func (r *Reader) All() iter.Seq2[int, Row] {
	return func(yield func(int, Row) bool) {
		end := r.End()
		i := 0
		for it := r.Begin(); !it.Equal(end); it.Next() {
			if !yield(i, it.Row()) {
				return
			}
			i++
		}
	}
}

// Backward yields the data rows from last to first with their 0-based data
// index.
func (r *Reader) Backward() iter.Seq2[int, Row] {
	return func(yield func(int, Row) bool) {
		rend := r.REnd()
		i := r.Size() - 1
		for it := r.RBegin(); !it.Equal(rend); it.Next() {
			if !yield(i, it.Row()) {
				return
			}
			i--
		}
	}
}
