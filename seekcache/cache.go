// Package seekcache amortizes indexed row access for callers that read a
// Reader mostly sequentially, such as scripting bindings and viewers.
//
// The core Reader always seeks from the nearer of Begin and End. A Cache keeps
// the last iterator it produced and steps from there when that is closer.
// Indexes wrap around modulo the data-row count instead of being clamped.
package seekcache

import "github.com/oleg578/mmapcsv"

// Stats counts how Cache.At resolved lookups.
type Stats struct {
	// Hits is the number of lookups answered from the cached position.
	Hits int
	// Seeks is the number of lookups delegated to Reader.Seek.
	Seeks int
	// Steps is the number of single-row steps taken from the cached position.
	Steps int
}

// Cache remembers the last accessed row of one Reader. It is not safe for
// concurrent use.
type Cache struct {
	r     *mmapcsv.Reader
	it    mmapcsv.RowIterator
	idx   int
	valid bool
	stats Stats
}

// New returns an empty cache over r.
func New(r *mmapcsv.Reader) *Cache {
	return &Cache{r: r}
}

// Wrap maps any index into [0, size) the way negative and oversized sequence
// indexes behave in scripting hosts. It returns 0 when size is 0.
func Wrap(i, size int) int {
	if size <= 0 {
		return 0
	}
	i %= size
	if i < 0 {
		i += size
	}
	return i
}

// At returns the iterator for data row i after wraparound. ok is false when
// the Reader has no data rows.
func (c *Cache) At(i int) (it mmapcsv.RowIterator, ok bool) {
	size := c.r.Size()
	if size == 0 {
		return c.r.End(), false
	}
	i = Wrap(i, size)

	if c.valid {
		dist := i - c.idx
		if dist < 0 {
			dist = -dist
		}
		if dist <= min(i, size-i) {
			c.stats.Hits++
			for c.idx < i {
				c.it.Next()
				c.idx++
				c.stats.Steps++
			}
			for c.idx > i {
				c.it.Prev()
				c.idx--
				c.stats.Steps++
			}
			return c.it, true
		}
	}

	c.stats.Seeks++
	c.it, c.idx, c.valid = c.r.Seek(i), i, true
	return c.it, true
}

// Row returns data row i after wraparound. ok is false when the Reader has no
// data rows.
func (c *Cache) Row(i int) (mmapcsv.Row, bool) {
	it, ok := c.At(i)
	if !ok {
		return mmapcsv.Row{}, false
	}
	return it.Row(), true
}

// Reset drops the cached position.
func (c *Cache) Reset() {
	c.valid = false
}

// Stats returns the lookup counters accumulated so far.
func (c *Cache) Stats() Stats { return c.stats }
