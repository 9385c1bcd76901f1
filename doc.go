// # MmapCSV: Zero-Copy, Random-Access CSV Reading for Go
//
// MmapCSV tokenizes CSV held in one contiguous, immutable byte region: a memory-mapped file or a
// caller-owned slice. Rows and cells are views (offset pairs plus a back-reference to the Reader)
// rather than copied strings, and rows can be visited forward, backward or by index.
//
// # Features
//
// - Read-only mmap of files via `MapFile` / `Open`, or in-memory buffers via `Parse`.
// - Fixed per-Reader `Dialect`: delimiter, quote, header detection and trim policy.
// - Lenient quote-aware cell tokenizer that never fails; escaped cells are flagged.
// - Multi-row "sectioned" header blocks keyed by a `prefix:` in the first cell.
// - Bidirectional `RowIterator`, `ReverseIterator` and nearest-endpoint `Seek`.
//
// # Lifetime
//
// Every Row and Cell borrows from the Reader's buffer. They must not be used after `Reader.Close`,
// and the bytes behind a Reader must not change while it is open. `Cell.String`, `Cell.Value` and
// `Row.Values` return copies that are safe to keep.
//
// # Concurrency
//
// A Reader is immutable after construction and may be shared by goroutines for read-only
// traversal. Iterators carry their own position and must not be shared without synchronisation.
package mmapcsv
