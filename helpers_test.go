package mmapcsv

import "testing"

func mustParse(t testing.TB, input string, d Dialect) *Reader {
	t.Helper()
	r, err := Parse([]byte(input), d)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", input, err)
	}
	return r
}

func rawCells(row Row) []string {
	out := []string{}
	for c := range row.All() {
		out = append(out, c.String())
	}
	return out
}

func escapedFlags(row Row) []bool {
	out := []bool{}
	for c := range row.All() {
		out = append(out, c.Escaped())
	}
	return out
}

func dataValues(r *Reader) [][]string {
	out := [][]string{}
	for _, row := range r.All() {
		out = append(out, row.Values())
	}
	return out
}

func dataStrings(r *Reader) []string {
	out := []string{}
	for _, row := range r.All() {
		out = append(out, row.String())
	}
	return out
}

// checkRowInvariants verifies span containment, contiguity and raw round trip.
func checkRowInvariants(t testing.TB, r *Reader, row Row) {
	t.Helper()
	comma := r.Dialect().Comma

	var joined []byte
	prevEnd := -1
	last := -1
	for c := range row.All() {
		if c.Start() < row.Start() || c.End() > row.End() || c.Start() > c.End() {
			t.Fatalf("line %d: cell %d span [%d,%d) outside row [%d,%d)", row.Line(), c.Index(), c.Start(), c.End(), row.Start(), row.End())
		}
		if prevEnd >= 0 && prevEnd+1 != c.Start() {
			t.Fatalf("line %d: cell %d starts at %d, previous ended at %d", row.Line(), c.Index(), c.Start(), prevEnd)
		}
		if c.Index() != last+1 {
			t.Fatalf("line %d: cell index %d after %d", row.Line(), c.Index(), last)
		}
		if prevEnd >= 0 {
			joined = append(joined, comma)
		}
		joined = c.AppendRaw(joined)
		prevEnd = c.End()
		last = c.Index()
	}
	if prevEnd >= 0 && prevEnd != row.End() {
		t.Fatalf("line %d: final cell ends at %d, row ends at %d", row.Line(), prevEnd, row.End())
	}
	if string(joined) != row.String() {
		t.Fatalf("line %d: joined cells %q, row %q", row.Line(), joined, row.String())
	}
}
