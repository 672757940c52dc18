package scalgoproto

// BytesHandle is the Writer-side handle to a just-written opaque byte
// object.
type BytesHandle struct {
	offset int // header start
}

func (h BytesHandle) RefOffset() int { return h.offset }

// ConstructBytes writes a BYTES object: magic, 48-bit length, the raw
// bytes.
func (w *Writer) ConstructBytes(data []byte) (BytesHandle, error) {
	n := len(data)
	headerStart, err := w.buf.expand(headerSize + n)
	if err != nil {
		return BytesHandle{}, err
	}
	putMagic(w.buf.data[headerStart:headerStart+4], bytesMagic)
	putUint48(w.buf.data[headerStart+4:headerStart+headerSize], uint64(n))
	bodyStart := headerStart + headerSize
	copy(w.buf.data[bodyStart:bodyStart+n], data)
	return BytesHandle{offset: headerStart}, nil
}

// ReserveBytes writes a BYTES object's header and zero-fills n bytes
// of payload, returning a handle plus a writable slice into the
// buffer so the caller can fill it in place without a separate copy
// (spec §4.3's reserving variant, e.g. for a caller decoding directly
// into the message rather than building a temporary []byte first).
func (w *Writer) ReserveBytes(n int) (BytesHandle, []byte, error) {
	headerStart, err := w.buf.expand(headerSize + n)
	if err != nil {
		return BytesHandle{}, nil, err
	}
	putMagic(w.buf.data[headerStart:headerStart+4], bytesMagic)
	putUint48(w.buf.data[headerStart+4:headerStart+headerSize], uint64(n))
	bodyStart := headerStart + headerSize
	return BytesHandle{offset: headerStart}, w.buf.data[bodyStart : bodyStart+n], nil
}

// BytesView is the Reader-side view of a bytes object.
type BytesView struct {
	r   Reader
	ptr Ptr
}

// GetBytes reads a 48-bit offset field as a reference to a bytes
// object.
func GetBytes(t TableView, byteOffset int) (BytesView, error) {
	p, err := getOffsetField(t, byteOffset, bytesMagic, 1, 0)
	if err != nil {
		return BytesView{}, err
	}
	return BytesView{r: t.r, ptr: p}, nil
}

// SetBytes writes a 48-bit reference to child into the field at
// byteOffset.
func SetBytes(h TableHandle, byteOffset int, child BytesHandle) {
	setOffsetField(h, byteOffset, child.RefOffset())
}

// IsPresent reports whether this view refers to an actual object.
func (b BytesView) IsPresent() bool { return !b.ptr.IsAbsent() }

// Bytes returns the raw payload; nil for an absent view.
func (b BytesView) Bytes() []byte {
	if b.ptr.IsAbsent() {
		return nil
	}
	return b.r.data[b.ptr.Start : b.ptr.Start+b.ptr.Size]
}

// Len returns the payload length in bytes.
func (b BytesView) Len() int { return b.ptr.Size }
