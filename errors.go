package mmapcsv

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySource is returned when the bound byte source has no content.
	ErrEmptySource = errors.New("mmapcsv: empty source")
	// ErrInvalidDialect is returned when the delimiter and quote cannot tokenize newline-delimited rows.
	ErrInvalidDialect = errors.New("mmapcsv: invalid dialect")
	// ErrMixedHeader is returned when an unsectioned header row follows sectioned header rows.
	ErrMixedHeader = errors.New("mmapcsv: unsectioned row after sectioned header rows")
	// ErrClosed is returned when a closed Source or Reader is used.
	ErrClosed = errors.New("mmapcsv: source closed")
)

// BindError reports a byte source that could not be acquired.
type BindError struct {
	Path string
	Err  error
}

// Error formats the bind failure with the stored Path and Err values.
func (e *BindError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path == "" {
		return fmt.Sprintf("mmapcsv: bind failed: %v", e.Err)
	}
	return fmt.Sprintf("mmapcsv: bind %s failed: %v", e.Path, e.Err)
}

// Unwrap returns the underlying Err so BindError participates in errors.Unwrap.
func (e *BindError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// HeaderError reports a header block that violates the sectioning rule.
// Line is the 0-based row that triggered the violation.
type HeaderError struct {
	Line int
	Err  error
}

// Error formats the header error with the stored Line and Err values.
func (e *HeaderError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("mmapcsv: header error on line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying Err so HeaderError participates in errors.Unwrap.
func (e *HeaderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
