package mmapcsv

// sectionSep separates a header section name from the column name in the
// first cell of a sectioned header row, as in "group1:colA".
const sectionSep = ':'

// detectHeader consumes the leading header block.
//
// A first row whose first cell has no section prefix is a plain single-row
// header. Otherwise rows are accepted while their prefixes are new; the first
// repeated prefix ends the block and is not part of it. An unprefixed row after
// accepted sectioned rows is rejected with ErrMixedHeader. A final row with no
// terminator is never a header row; detection stops before it.
func (r *Reader) detectHeader() ([]Row, error) {
	var (
		headers []Row
		seen    = make(map[string]struct{})
		sc      = rowScanner{buf: r.buf}
	)
	for start := 0; start < len(r.buf); {
		end := sc.nextRow(start)
		if end == len(r.buf) {
			break
		}
		row := Row{r: r, start: start, end: end, line: len(headers)}
		prefix, ok := row.Prefix(sectionSep)
		if !ok || len(prefix) == 0 {
			if len(headers) > 0 {
				return nil, &HeaderError{Line: row.line, Err: ErrMixedHeader}
			}
			return append(headers, row), nil
		}
		if _, dup := seen[string(prefix)]; dup {
			break
		}
		seen[string(prefix)] = struct{}{}
		headers = append(headers, row)
		start = row.end + 1
	}
	return headers, nil
}

// headerCols returns the widest header row's cell count.
func headerCols(headers []Row) int {
	cols := 0
	for _, h := range headers {
		cols = max(cols, h.Len())
	}
	return cols
}
