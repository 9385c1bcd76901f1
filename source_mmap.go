//go:build unix

package mmapcsv

import (
	"os"

	"golang.org/x/sys/unix"
)

// mappedSource is not safe for concurrent use with Close.
type mappedSource struct {
	data []byte
}

// MapFile maps the named file read-only into memory. Zero-length files are
// rejected with ErrEmptySource since they cannot be mapped.
func MapFile(name string) (Source, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, &BindError{Path: name, Err: err}
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, &BindError{Path: name, Err: err}
	}
	size := fi.Size()
	if size == 0 {
		return nil, &BindError{Path: name, Err: ErrEmptySource}
	}
	if int64(int(size)) != size {
		return nil, &BindError{Path: name, Err: unix.EFBIG}
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, &BindError{Path: name, Err: os.NewSyscallError("mmap", err)}
	}
	return &mappedSource{data: data}, nil
}

func (m *mappedSource) Bytes() []byte {
	return m.data
}

// Close unmaps the file. Calling Close twice returns ErrClosed.
func (m *mappedSource) Close() error {
	if m.data == nil {
		return ErrClosed
	}
	err := unix.Munmap(m.data)
	m.data = nil
	if err != nil {
		return os.NewSyscallError("munmap", err)
	}
	return nil
}
