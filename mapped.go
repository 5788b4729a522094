package tailvec

import "fmt"

// MappedBuffer is a fixed-capacity byte buffer whose storage lives outside
// the Go heap, in an anonymous memory mapping on Linux. It satisfies
// Buffer[byte], so it can be split like a Vec.
//
// Call Release to unmap the storage. Slices obtained from the buffer, or from
// a TailVec split from it, must not be used afterwards.
//
// Platform Support:
//   - Linux: mmap(2) with MAP_ANONYMOUS|MAP_PRIVATE
//   - Others: heap storage with the same API
type MappedBuffer struct {
	data     []byte // whole mapping; len(data) is the capacity
	n        int
	released bool
}

// NewMappedBuffer maps storage for at least capacity bytes. The capacity is
// rounded up to a whole number of pages; a capacity of zero maps one page.
func NewMappedBuffer(capacity int) (*MappedBuffer, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("tailvec: negative mapped buffer capacity %d", capacity)
	}
	page := pageSize()
	size := max(page, (capacity+page-1)/page*page)

	data, err := platformMap(size)
	if err != nil {
		return nil, fmt.Errorf("tailvec: map %d bytes: %w", size, err)
	}
	return &MappedBuffer{data: data}, nil
}

// Len returns the number of bytes written.
func (m *MappedBuffer) Len() int {
	return m.n
}

// Cap returns the size of the mapping.
func (m *MappedBuffer) Cap() int {
	return len(m.data)
}

// SpareCapacity returns the unwritten part of the mapping.
func (m *MappedBuffer) SpareCapacity() []byte {
	m.checkReleased()
	return m.data[m.n:]
}

// SetLen sets the number of visible bytes. See Buffer.SetLen.
func (m *MappedBuffer) SetLen(n int) {
	m.checkReleased()
	if n < 0 || n > len(m.data) {
		panic(fmt.Sprintf("tailvec: length (is %d) out of range for capacity (is %d)", n, len(m.data)))
	}
	m.n = n
}

// Bytes returns the written bytes. The slice aliases the mapping.
func (m *MappedBuffer) Bytes() []byte {
	m.checkReleased()
	return m.data[:m.n:m.n]
}

// Write appends p. The mapping never grows: if p does not fit, nothing is
// written and a *CapacityError holding p is returned.
func (m *MappedBuffer) Write(p []byte) (int, error) {
	m.checkReleased()
	if len(p) > len(m.data)-m.n {
		return 0, &CapacityError[[]byte]{Value: p, Len: m.n, Cap: len(m.data), Want: m.n + len(p)}
	}
	n := copy(m.data[m.n:], p)
	m.n += n
	return n, nil
}

// SplitTail is shorthand for SplitTail(m, mid).
func (m *MappedBuffer) SplitTail(mid int) ([]byte, *TailVec[byte]) {
	return SplitTail[byte](m, mid)
}

// Release unmaps the storage. Calling Release more than once is a no-op.
func (m *MappedBuffer) Release() error {
	if m == nil || m.released {
		return nil
	}
	m.released = true
	data := m.data
	m.data = nil
	m.n = 0
	if err := platformUnmap(data); err != nil {
		return fmt.Errorf("tailvec: unmap %d bytes: %w", len(data), err)
	}
	return nil
}

func (m *MappedBuffer) checkReleased() {
	if m.released {
		panic("tailvec: use of released mapped buffer")
	}
}
