package mmapcsv

// Source is a contiguous, immutable byte region. The slice returned by Bytes
// must not change until Close, and must not be used afterwards.
type Source interface {
	Bytes() []byte
	Close() error
}

type memorySource struct {
	data []byte
}

// Memory wraps caller-owned bytes as a Source. The caller must not modify data
// while any Reader bound to it is in use. Close is a no-op.
func Memory(data []byte) Source {
	return &memorySource{data: data}
}

func (m *memorySource) Bytes() []byte { return m.data }

func (m *memorySource) Close() error { return nil }
