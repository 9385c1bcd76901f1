//go:build !unix

package mmapcsv

import "os"

// MapFile reads the named file into memory on platforms without mmap support.
func MapFile(name string) (Source, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, &BindError{Path: name, Err: err}
	}
	if len(data) == 0 {
		return nil, &BindError{Path: name, Err: ErrEmptySource}
	}
	return &memorySource{data: data}, nil
}
