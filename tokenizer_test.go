package mmapcsv

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCellTokenizer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		comma   byte
		quote   byte
		want    []string
		escaped []bool
	}{
		{
			name:    "plainCells",
			input:   "a,b,c",
			want:    []string{"a", "b", "c"},
			escaped: []bool{false, false, false},
		},
		{
			name:    "emptyMiddleCell",
			input:   "a,,c",
			want:    []string{"a", "", "c"},
			escaped: []bool{false, false, false},
		},
		{
			name:    "trailingDelimiter",
			input:   "a,",
			want:    []string{"a", ""},
			escaped: []bool{false, false},
		},
		{
			name:    "leadingDelimiter",
			input:   ",a",
			want:    []string{"", "a"},
			escaped: []bool{false, false},
		},
		{
			name:    "quotedDelimiter",
			input:   "a,\"b,b\",c",
			want:    []string{"a", "\"b,b\"", "c"},
			escaped: []bool{false, false, false},
		},
		{
			name:    "tripleQuoted",
			input:   "a,\"\"\"quoted\"\"\",c",
			want:    []string{"a", "\"\"\"quoted\"\"\"", "c"},
			escaped: []bool{false, true, false},
		},
		{
			name:    "emptyQuoted",
			input:   "\"\",x",
			want:    []string{"\"\"", "x"},
			escaped: []bool{false, false},
		},
		{
			name:    "unenclosedDoubledQuote",
			input:   "x\"\"y,z",
			want:    []string{"x\"\"y,z"},
			escaped: []bool{true},
		},
		{
			name:    "doubledQuoteEndsCell",
			input:   "x\"\",z",
			want:    []string{"x\"\"", "z"},
			escaped: []bool{true, false},
		},
		{
			name:    "doubledQuoteAtCellStart",
			input:   "\"\"x,z",
			want:    []string{"\"\"x,z"},
			escaped: []bool{true},
		},
		{
			name:    "doubledQuote",
			input:   "\"a\"\"b\",c",
			want:    []string{"\"a\"\"b\"", "c"},
			escaped: []bool{true, false},
		},
		{
			name:    "bareQuoteSwallowsDelimiter",
			input:   "ab\"c,d",
			want:    []string{"ab\"c,d"},
			escaped: []bool{false},
		},
		{
			name:    "unterminatedQuote",
			input:   "\"unterminated,x",
			want:    []string{"\"unterminated,x"},
			escaped: []bool{false},
		},
		{
			name:    "closingQuoteNotBeforeDelimiter",
			input:   "\"a,b\"x,c",
			want:    []string{"\"a,b\"x,c"},
			escaped: []bool{false},
		},
		{
			name:    "customQuote",
			input:   "a,'b''c',d",
			quote:   '\'',
			want:    []string{"a", "'b''c'", "d"},
			escaped: []bool{false, true, false},
		},
		{
			name:    "customComma",
			input:   "a;b,c",
			comma:   ';',
			want:    []string{"a", "b,c"},
			escaped: []bool{false, false},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r := mustParse(t, tc.input+"\n", Dialect{Comma: tc.comma, Quote: tc.quote})
			row := r.At(0)
			if diff := cmp.Diff(tc.want, rawCells(row)); diff != "" {
				t.Fatalf("cells mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.escaped, escapedFlags(row)); diff != "" {
				t.Fatalf("escaped mismatch (-want +got):\n%s", diff)
			}
			if got := row.Len(); got != len(tc.want) {
				t.Fatalf("Len() = %d, want %d", got, len(tc.want))
			}
			checkRowInvariants(t, r, row)
		})
	}
}

func TestCellValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		raw   string
		trim  TrimPolicy
		want  string
		bytes string
	}{
		{name: "plain", raw: "abc", trim: TrimWhitespace, want: "abc"},
		{name: "trimmed", raw: " \tabc  ", trim: TrimWhitespace, want: "abc"},
		{name: "noTrimming", raw: "  abc ", trim: NoTrimming, want: "  abc "},
		{name: "doubledQuote", raw: "\"a\"\"b\"", trim: TrimWhitespace, want: "a\"b"},
		{name: "tripleQuoted", raw: "\"\"\"quoted\"\"\"", trim: TrimWhitespace, want: "\"quoted\""},
		{name: "emptyQuoted", raw: "\"\"", trim: TrimWhitespace, want: ""},
		{name: "trimThenUnquote", raw: "  \"x\" ", trim: TrimWhitespace, want: "x"},
		{name: "unenclosedDoubledQuote", raw: "a\"\"b", trim: TrimWhitespace, want: "a\"b"},
		{name: "customTrim", raw: "--x--", trim: TrimChars("-"), want: "x"},
		{name: "allTrimmed", raw: "   ", trim: TrimWhitespace, want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r := mustParse(t, tc.raw+"\n", Dialect{Trim: tc.trim})
			it := r.At(0).Cells()
			if !it.Next() {
				t.Fatalf("row %q has no cells", tc.raw)
			}
			cell := it.Cell()
			if got := cell.Value(); got != tc.want {
				t.Fatalf("Value() = %q, want %q", got, tc.want)
			}
			if got := cell.String(); got != tc.raw {
				t.Fatalf("String() = %q, want raw %q", got, tc.raw)
			}
			if got := string(cell.AppendValue([]byte("pre:"))); got != "pre:"+tc.want {
				t.Fatalf("AppendValue() = %q, want %q", got, "pre:"+tc.want)
			}
		})
	}
}

func TestCellEscapedMatchesValue(t *testing.T) {
	t.Parallel()

	rows := []string{
		"x\"\"y,z",
		"x\"\",\"\",z",
		"\"\"\"quoted\"\"\",\"a\"\"\"\"b\"",
		"\"a,b\"x,c",
		"'q',\"\"",
	}
	r := mustParse(t, strings.Join(rows, "\n")+"\n", Dialect{})
	for _, row := range r.All() {
		for c := range row.All() {
			raw := c.String()
			inner := raw
			if len(inner) >= 2 && inner[0] == '"' && inner[len(inner)-1] == '"' {
				inner = inner[1 : len(inner)-1]
			}
			want := strings.Contains(inner, "\"\"")
			if got := c.Escaped(); got != want {
				t.Fatalf("cell %q Escaped() = %v, want %v (Value %q)", raw, got, want, c.Value())
			}
		}
	}
}

func TestCellValueWithoutQuotesMatchesTrimmedRaw(t *testing.T) {
	t.Parallel()

	r := mustParse(t, " a , b\t,c c ,,\n", Dialect{Trim: TrimWhitespace})
	for c := range r.At(0).All() {
		want := string(TrimWhitespace.Trim(c.Bytes()))
		if got := c.Value(); got != want {
			t.Fatalf("cell %d Value() = %q, want %q", c.Index(), got, want)
		}
	}
}

func TestCellPrefix(t *testing.T) {
	t.Parallel()

	r := mustParse(t, "group1:colA,group1:colB\nplain,x\n:lead\n", Dialect{})

	tests := []struct {
		row    int
		want   string
		wantOK bool
	}{
		{row: 0, want: "group1", wantOK: true},
		{row: 1, want: "", wantOK: false},
		{row: 2, want: "", wantOK: true},
	}
	for _, tc := range tests {
		got, ok := r.At(tc.row).Prefix(':')
		if string(got) != tc.want || ok != tc.wantOK {
			t.Fatalf("row %d Prefix() = (%q, %v), want (%q, %v)", tc.row, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestEmptyRowHasNoCells(t *testing.T) {
	t.Parallel()

	r := mustParse(t, "a\n\nb\n", Dialect{})
	row := r.At(1)
	if row.Start() != row.End() {
		t.Fatalf("row 1 span = [%d,%d), want empty", row.Start(), row.End())
	}
	if n := row.Len(); n != 0 {
		t.Fatalf("Len() = %d, want 0", n)
	}
	if it := row.Cells(); it.Next() {
		t.Fatalf("Next() = true on empty row")
	}
}
