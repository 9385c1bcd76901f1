package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bndr/gotabulate"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/oleg578/mmapcsv"
)

// newDecoder resolves a WHATWG encoding label. An empty label or UTF-8 means
// cells are printed as they are.
func newDecoder(label string) (*encoding.Decoder, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "", "utf-8", "utf8":
		return nil, nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, err
	}
	return enc.NewDecoder(), nil
}

type printer struct {
	w   io.Writer
	raw bool
	dec *encoding.Decoder
}

func (p printer) cells(row mmapcsv.Row) ([]string, error) {
	var out []string
	for it := row.Cells(); it.Next(); {
		c := it.Cell()
		s := c.Value()
		if p.raw {
			s = c.String()
		}
		if p.dec != nil {
			var err error
			if s, err = p.dec.String(s); err != nil {
				return nil, fmt.Errorf("line %d cell %d: %w", row.Line(), c.Index(), err)
			}
		}
		out = append(out, s)
	}
	return out, nil
}

// plain prints header rows prefixed with "#" and data rows prefixed with their
// 0-based line number, cells separated by " | ".
func (p printer) plain(header, rows []mmapcsv.Row) error {
	for _, h := range header {
		cells, err := p.cells(h)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(p.w, "#\t%s\n", strings.Join(cells, " | ")); err != nil {
			return err
		}
	}
	for _, row := range rows {
		cells, err := p.cells(row)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(p.w, "%d\t%s\n", row.Line(), strings.Join(cells, " | ")); err != nil {
			return err
		}
	}
	return nil
}

// table renders a grid. Multi-row header blocks are merged column-wise with
// " / ".
func (p printer) table(header, rows []mmapcsv.Row) error {
	width := 0
	titles := make([][]string, 0, len(header))
	for _, h := range header {
		cells, err := p.cells(h)
		if err != nil {
			return err
		}
		titles = append(titles, cells)
		width = max(width, len(cells))
	}
	data := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells, err := p.cells(row)
		if err != nil {
			return err
		}
		data = append(data, append([]string{strconv.Itoa(row.Line())}, cells...))
		width = max(width, len(cells))
	}
	if len(data) == 0 {
		_, err := fmt.Fprintln(p.w, "(no rows)")
		return err
	}

	headers := make([]string, width+1)
	headers[0] = "line"
	for col := range width {
		var parts []string
		for _, t := range titles {
			if col < len(t) && t[col] != "" {
				parts = append(parts, t[col])
			}
		}
		if len(parts) == 0 {
			parts = append(parts, "col"+strconv.Itoa(col))
		}
		headers[col+1] = strings.Join(parts, " / ")
	}
	for i := range data {
		for len(data[i]) < width+1 {
			data[i] = append(data[i], "")
		}
	}

	t := gotabulate.Create(data)
	t.SetHeaders(headers)
	t.SetAlign("left")
	_, err := io.WriteString(p.w, t.Render("grid"))
	return err
}
