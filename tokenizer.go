package mmapcsv

// cellTokenizer splits one row span into cell spans.
type cellTokenizer struct {
	buf   []byte
	end   int
	comma byte
	quote byte
}

// next scans the cell starting at start and returns its exclusive end and
// whether a doubled quote was recognised inside it. The returned end is either
// the offset of an unquoted delimiter or the row end.
//
// Quoting is lenient and never fails. A quote opens a quoted region, a quote
// directly after a non-opening quote is an escaped literal, and any other quote
// closes the region only when the next byte is the delimiter. An unclosed region
// runs to the row end.
func (t *cellTokenizer) next(start int) (end int, escaped bool) {
	quoteOpened := false
	openQuote, lastQuote := -1, -1

	for i := start; i < t.end; i++ {
		c := t.buf[i]
		if c == t.comma && !quoteOpened {
			return i, escaped
		}
		if c != t.quote {
			continue
		}
		switch {
		case !quoteOpened:
			quoteOpened = true
			openQuote, lastQuote = i, i
		case i == lastQuote+1 && lastQuote != openQuote:
			// Doubled quote. lastQuote stays on the first of the pair so a
			// third quote is not paired again.
			escaped = true
		default:
			closes := i+1 >= t.end || t.buf[i+1] == t.comma
			if i == openQuote+1 && (openQuote != start || !closes) {
				// A pair right after the opening quote is doubled unless it
				// is the whole cell.
				escaped = true
			}
			lastQuote = i
			quoteOpened = !closes
		}
	}
	return t.end, escaped
}

// CellIterator walks the cells of one Row from left to right.
//
//	it := row.Cells()
//	for it.Next() {
//		cell := it.Cell()
//	}
type CellIterator struct {
	r    *Reader
	tok  cellTokenizer
	pos  int
	no   int
	done bool
	cur  Cell
}

func newCellIterator(r *Reader, start, end int) *CellIterator {
	return &CellIterator{
		r: r,
		tok: cellTokenizer{
			buf:   r.buf,
			end:   end,
			comma: r.dialect.Comma,
			quote: r.dialect.Quote,
		},
		pos:  start,
		no:   -1,
		done: start >= end || end > len(r.buf),
	}
}

// Next advances to the next cell and reports whether one exists. An empty row
// has no cells; a trailing delimiter yields a final empty cell.
func (it *CellIterator) Next() bool {
	if it.done {
		return false
	}
	end, escaped := it.tok.next(it.pos)
	it.no++
	it.cur = Cell{r: it.r, start: it.pos, end: end, no: it.no, escaped: escaped}
	if end >= it.tok.end {
		it.done = true
	} else {
		it.pos = end + 1
	}
	return true
}

// Cell returns the current cell. It is only valid after Next returned true.
func (it *CellIterator) Cell() Cell {
	return it.cur
}
