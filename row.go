package mmapcsv

import "iter"

// Row is a view of one newline-delimited record. The span excludes the
// terminator.
type Row struct {
	r     *Reader
	start int
	end   int
	line  int
}

// Start returns the offset of the first byte of the row.
func (r Row) Start() int { return r.start }

// End returns the offset of the row terminator, or the buffer length for a
// final row without one.
func (r Row) End() int { return r.end }

// Line returns the 0-based ordinal of the row among all rows, header rows
// included.
func (r Row) Line() int { return r.line }

// Cols returns the header-derived column count of the Reader. The row itself
// may hold more or fewer cells; see Len.
func (r Row) Cols() int {
	if r.r == nil {
		return 0
	}
	return r.r.cols
}

// Bytes returns the raw row without copying.
func (r Row) Bytes() []byte {
	if r.r == nil {
		return nil
	}
	return r.r.span(r.start, r.end)
}

// String returns a copy of the raw row.
func (r Row) String() string {
	return string(r.Bytes())
}

// Cells returns an iterator over the cells of the row.
func (r Row) Cells() *CellIterator {
	if r.r == nil {
		return &CellIterator{done: true}
	}
	return newCellIterator(r.r, r.start, r.end)
}

// All yields the cells of the row in order.
func (r Row) All() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		it := r.Cells()
		for it.Next() {
			if !yield(it.Cell()) {
				return
			}
		}
	}
}

// Len counts the cells of the row.
func (r Row) Len() int {
	n := 0
	for it := r.Cells(); it.Next(); {
		n++
	}
	return n
}

// Values materialises every cell through Cell.Value.
func (r Row) Values() []string {
	out := make([]string, 0, r.Cols())
	for it := r.Cells(); it.Next(); {
		out = append(out, it.Cell().Value())
	}
	return out
}

// Prefix returns the first cell's bytes before sep. See Cell.Prefix.
func (r Row) Prefix(sep byte) ([]byte, bool) {
	it := r.Cells()
	if !it.Next() {
		return nil, false
	}
	return it.Cell().Prefix(sep)
}
