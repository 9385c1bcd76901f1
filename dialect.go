package mmapcsv

import "fmt"

// TrimPolicy narrows a cell span before its value is materialised.
type TrimPolicy interface {
	Trim(b []byte) []byte
}

type noTrimming struct{}

func (noTrimming) Trim(b []byte) []byte { return b }

// NoTrimming leaves cell content untouched.
var NoTrimming TrimPolicy = noTrimming{}

// TrimChars strips every byte in set from both ends of a cell.
type TrimChars string

// Trim returns the sub-slice of b without leading and trailing bytes from the set.
func (t TrimChars) Trim(b []byte) []byte {
	start, end := 0, len(b)
	for start < end && t.has(b[start]) {
		start++
	}
	for start < end && t.has(b[end-1]) {
		end--
	}
	return b[start:end]
}

func (t TrimChars) has(c byte) bool {
	for i := 0; i < len(t); i++ {
		if t[i] == c {
			return true
		}
	}
	return false
}

// TrimWhitespace strips spaces and tabs.
const TrimWhitespace = TrimChars(" \t")

// Dialect is the fixed tokenizing configuration of one Reader.
type Dialect struct {
	// Comma is the field delimiter. Default is ','.
	Comma byte
	// Quote is the quote character. Default is '"'.
	Quote byte
	// Header consumes the leading row(s) as the header block.
	Header bool
	// Trim is applied by Cell.Value. Nil means no trimming.
	Trim TrimPolicy
}

// DefaultDialect returns a comma-separated, double-quoted dialect with a header row
// and whitespace trimming.
func DefaultDialect() Dialect {
	return Dialect{Comma: ',', Quote: '"', Header: true, Trim: TrimWhitespace}
}

var (
	// CommaHeader is DefaultDialect.
	CommaHeader = DefaultDialect()
	// CommaNoHeader is DefaultDialect without header detection.
	CommaNoHeader = Dialect{Comma: ',', Quote: '"', Trim: TrimWhitespace}
	// TabHeader is a tab-separated dialect with header detection.
	TabHeader = Dialect{Comma: '\t', Quote: '"', Header: true, Trim: TrimChars(" ")}
	// TabNoHeader is a tab-separated dialect without header detection.
	TabNoHeader = Dialect{Comma: '\t', Quote: '"', Trim: TrimChars(" ")}
)

// normalize fills defaults and validates d.
func (d Dialect) normalize() (Dialect, error) {
	if d.Comma == 0 {
		d.Comma = ','
	}
	if d.Quote == 0 {
		d.Quote = '"'
	}
	if d.Trim == nil {
		d.Trim = NoTrimming
	}
	switch {
	case d.Comma == d.Quote:
		return d, fmt.Errorf("%w: delimiter and quote are both %q", ErrInvalidDialect, d.Comma)
	case d.Comma == '\n' || d.Quote == '\n':
		return d, fmt.Errorf("%w: newline cannot be a delimiter or quote", ErrInvalidDialect)
	}
	return d, nil
}
