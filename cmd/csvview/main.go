// Command csvview prints the header block and a range of rows of a CSV file
// read through a memory mapping.
//
//	csvview [flags] FILE
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"github.com/oleg578/mmapcsv"
	"github.com/oleg578/mmapcsv/seekcache"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseOptions(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "csvview: %v\n", err)
		return exitUsage
	}

	logger, err := newLogger(stderr, opts.logFormat, opts.logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "csvview: %v\n", err)
		return exitUsage
	}

	dec, err := newDecoder(opts.encoding)
	if err != nil {
		logger.Error("unsupported encoding", "encoding", opts.encoding, "err", err)
		return exitUsage
	}

	r, err := mmapcsv.Open(opts.path, opts.dialect)
	if err != nil {
		logger.Error("cannot open csv", "path", opts.path, "err", err)
		return exitError
	}
	defer func() {
		if err := r.Close(); err != nil {
			logger.Warn("close failed", "path", opts.path, "err", err)
		}
	}()

	logger.Info("opened csv",
		"path", opts.path,
		"bytes", humanize.Bytes(uint64(r.Len())),
		"rows", r.Rows(),
		"cols", r.Cols(),
		"header_rows", len(r.Header()),
	)

	if opts.stats {
		fmt.Fprintf(stdout, "rows: %s\ndata rows: %s\ncols: %d\nheader rows: %d\nsize: %s\n",
			humanize.Comma(int64(r.Rows())),
			humanize.Comma(int64(r.Size())),
			r.Cols(),
			len(r.Header()),
			humanize.Bytes(uint64(r.Len())),
		)
		return exitOK
	}

	from, to := resolveRange(opts.from, opts.to, r.Size())
	cache := seekcache.New(r)
	var rows []mmapcsv.Row
	if opts.reverse {
		for i := to - 1; i >= from; i-- {
			if row, ok := cache.Row(i); ok {
				rows = append(rows, row)
			}
		}
	} else {
		for i := from; i < to; i++ {
			if row, ok := cache.Row(i); ok {
				rows = append(rows, row)
			}
		}
	}

	p := printer{w: stdout, raw: opts.raw, dec: dec}
	switch opts.format {
	case formatPlain:
		err = p.plain(r.Header(), rows)
	default:
		err = p.table(r.Header(), rows)
	}
	if err != nil {
		logger.Error("cannot render rows", "err", err)
		return exitError
	}

	st := cache.Stats()
	logger.Debug("rendered rows",
		"from", from,
		"to", to,
		"printed", len(rows),
		"cache_hits", st.Hits,
		"cache_seeks", st.Seeks,
		"cache_steps", st.Steps,
	)
	return exitOK
}

// resolveRange turns possibly negative from/to bounds into [from, to) within
// [0, size]. A negative bound counts from the end; to < 0 with the default
// of -1 means size.
func resolveRange(from, to, size int) (int, int) {
	if from < 0 {
		from += size
	}
	if to < 0 {
		to += size + 1
	}
	from = min(max(from, 0), size)
	to = min(max(to, from), size)
	return from, to
}
