package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/oleg578/mmapcsv"
)

const (
	formatTable = "table"
	formatPlain = "plain"
)

type options struct {
	path      string
	dialect   mmapcsv.Dialect
	from      int
	to        int
	reverse   bool
	raw       bool
	stats     bool
	format    string
	encoding  string
	logLevel  string
	logFormat string
}

func parseOptions(args []string, stderr io.Writer) (options, error) {
	var (
		opts      options
		delimiter string
		quote     string
		trim      string
		noHeader  bool
	)

	fs := pflag.NewFlagSet("csvview", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: csvview [flags] FILE\n\nFlags:\n%s", fs.FlagUsages())
	}

	fs.StringVarP(&delimiter, "delimiter", "d", ",", "field delimiter; \"tab\" or \"\\t\" for tabs")
	fs.StringVarP(&quote, "quote", "q", `"`, "quote character")
	fs.BoolVar(&noHeader, "no-header", false, "do not treat leading rows as a header block")
	fs.StringVar(&trim, "trim", " \t", "characters stripped from both ends of cell values")
	fs.IntVar(&opts.from, "from", 0, "first data row to print; negative counts from the end")
	fs.IntVar(&opts.to, "to", -1, "data row to stop before; -1 prints to the end")
	fs.BoolVarP(&opts.reverse, "reverse", "r", false, "print rows last to first")
	fs.BoolVar(&opts.raw, "raw", false, "print raw cell spans instead of unescaped values")
	fs.BoolVar(&opts.stats, "stats", false, "print row and column counts only")
	fs.StringVarP(&opts.format, "format", "f", formatTable, "output format: table or plain")
	fs.StringVar(&opts.encoding, "encoding", "", "decode cells from this encoding, e.g. windows-1252")
	fs.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	fs.StringVar(&opts.logFormat, "log-fmt", "text", "log format: text or json")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return opts, fmt.Errorf("expected exactly one FILE argument, got %d", fs.NArg())
	}
	opts.path = fs.Arg(0)

	comma, err := singleByte("delimiter", delimiter)
	if err != nil {
		return opts, err
	}
	q, err := singleByte("quote", quote)
	if err != nil {
		return opts, err
	}
	switch opts.format {
	case formatTable, formatPlain:
	default:
		return opts, fmt.Errorf("invalid --format %q: expected table or plain", opts.format)
	}

	opts.dialect = mmapcsv.Dialect{
		Comma:  comma,
		Quote:  q,
		Header: !noHeader,
		Trim:   mmapcsv.TrimChars(trim),
	}
	return opts, nil
}

func singleByte(name, v string) (byte, error) {
	switch strings.ToLower(v) {
	case "tab", `\t`:
		return '\t', nil
	}
	if len(v) != 1 {
		return 0, fmt.Errorf("invalid --%s %q: expected a single byte", name, v)
	}
	return v[0], nil
}
