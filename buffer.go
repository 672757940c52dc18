package scalgoproto

// initialBufferSize reserves room for the 10-byte root header before
// any object is written.
const initialBufferSize = headerSize

// Buffer is the growable byte arena a Writer allocates objects from.
// It owns a Backing (heap by default, optionally file-backed) and
// tracks the logical size in use; the Backing's returned slice may be
// larger than size at any point, mirroring the teacher Allocator's
// end-of-file bump strategy adapted to an in-memory or mmap-backed
// region instead of an on-disk HDF5 address space.
type Buffer struct {
	backing Backing
	data    []byte
	size    int
}

// newBuffer allocates a fresh Buffer with the root header already
// reserved (but not yet written).
func newBuffer(backing Backing) (*Buffer, error) {
	data, err := backing.SetCapacity(initialBufferSize)
	if err != nil {
		return nil, err
	}
	return &Buffer{backing: backing, data: data, size: initialBufferSize}, nil
}

// expand grows the buffer by n bytes, zero-filling the new region,
// and returns the start offset of the newly allocated region.
func (b *Buffer) expand(n int) (int, error) {
	start := b.size
	needed := b.size + n
	if needed > maxSize48 {
		return 0, &OutOfBoundsError{Offset: start, Needed: n, Available: maxSize48 - start}
	}
	if needed > len(b.data) {
		newCap := len(b.data) * 2
		if newCap < needed {
			newCap = needed
		}
		data, err := b.backing.SetCapacity(newCap)
		if err != nil {
			return 0, err
		}
		b.data = data
	}
	for i := start; i < needed; i++ {
		b.data[i] = 0
	}
	b.size = needed
	return start, nil
}

// writeAt overwrites the region [offset, offset+len(bytes)) with
// bytes. Callers must have already allocated that region via expand.
func (b *Buffer) writeAt(offset int, bytes []byte) {
	copy(b.data[offset:], bytes)
}

// bytesAt returns a mutable view into the region starting at offset,
// for in-place field writes (pod values, tags, offsets).
func (b *Buffer) bytesAt(offset int) []byte {
	return b.data[offset:b.size]
}

// clear rewinds the buffer back to just the reserved root header,
// discarding every object written so far. Used when a Writer is
// reset for reuse.
func (b *Buffer) clear() {
	for i := range b.data {
		b.data[i] = 0
	}
	b.size = initialBufferSize
}

// finalize writes the root header (magic + 48-bit offset of the root
// table's header) and hands the buffer off to the Backing for flushing,
// returning the final message bytes.
func (b *Buffer) finalize(rootTableOffset uint64) ([]byte, error) {
	putMagic(b.data[0:4], rootMagic)
	putUint48(b.data[4:10], rootTableOffset)
	// Snapshot before handing off to the backing: a file backing's
	// Finalize unmaps the region, so b.data would dangle if read
	// afterward.
	result := make([]byte, b.size)
	copy(result, b.data[:b.size])
	if err := b.backing.Finalize(b.size); err != nil {
		return nil, err
	}
	return result, nil
}
