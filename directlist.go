package scalgoproto

// DirectListHandle is the Writer-side handle to a direct list: a
// sequence of fixed-width element bodies laid out back-to-back with
// no per-element header, avoiding the 48-bit offset indirection a
// regular TableList pays per element (spec §3, §4.3).
type DirectListHandle struct {
	w        *Writer
	offset   int // header start
	start    int // element 0 start
	n        int
	elemSize int
}

func (h DirectListHandle) RefOffset() int { return h.offset }
func (h DirectListHandle) Len() int       { return h.n }

// ConstructDirectList allocates a DIRECTLIST of n elements of
// elemSize bytes each, defaulted via defaultBytes (replicated per
// element; nil means zero-fill). elemMagic identifies the element
// kind for reader validation; it is not the per-object TABLE magic —
// direct list elements carry no header of their own.
func (w *Writer) ConstructDirectList(n, elemSize int, elemMagic uint32, defaultBytes []byte) (DirectListHandle, error) {
	if elemSize > maxDirectListItemSize {
		return DirectListHandle{}, &TooLargeItemSizeError{Size: elemSize}
	}
	headerStart, err := w.buf.expand(headerSize + directListSubHeaderSize + n*elemSize)
	if err != nil {
		return DirectListHandle{}, err
	}
	putMagic(w.buf.data[headerStart:headerStart+4], directListMagic)
	putUint48(w.buf.data[headerStart+4:headerStart+headerSize], uint64(n))
	subHeader := headerStart + headerSize
	putMagic(w.buf.data[subHeader:subHeader+4], elemMagic)
	writeUint32(w.buf.data[subHeader+4:subHeader+8], uint32(elemSize))
	start := subHeader + directListSubHeaderSize
	if defaultBytes != nil {
		for i := 0; i < n; i++ {
			copy(w.buf.data[start+i*elemSize:start+(i+1)*elemSize], defaultBytes)
		}
	}
	return DirectListHandle{w: w, offset: headerStart, start: start, n: n, elemSize: elemSize}, nil
}

// Element returns a TableHandle over element i's inline body, for use
// with the generic field accessors (GetPod, SetTable, and so on).
func (h DirectListHandle) Element(i int) TableHandle {
	return TableHandle{w: h.w, offset: h.start + i*h.elemSize, size: h.elemSize}
}

// DirectListView is the Reader-side view of a direct list.
type DirectListView struct {
	r        Reader
	ptr      Ptr // Start = element 0 start, Size = element count
	elemSize int
}

// GetDirectList reads a 48-bit offset field as a reference to a
// direct list, validating the sub-header and the element magic.
func GetDirectList(t TableView, byteOffset int, elemMagic uint32) (DirectListView, error) {
	if byteOffset+strideTable > t.ptr.Size {
		return DirectListView{}, nil
	}
	off := readUint48(t.r.data[t.ptr.Start+byteOffset : t.ptr.Start+byteOffset+strideTable])
	return t.r.getDirectListPtr(int(off), elemMagic)
}

func (r Reader) getDirectListPtr(offset int, elemMagic uint32) (DirectListView, error) {
	if offset == 0 {
		return DirectListView{}, nil
	}
	if offset < 0 || offset+headerSize+directListSubHeaderSize > len(r.data) {
		return DirectListView{}, &OutOfBoundsError{Offset: offset, Needed: headerSize + directListSubHeaderSize, Available: len(r.data) - offset}
	}
	if got := readMagic(r.data[offset : offset+4]); got != directListMagic {
		return DirectListView{}, &MagicError{Got: got, Expected: directListMagic}
	}
	count := readUint48(r.data[offset+4 : offset+headerSize])
	subHeader := offset + headerSize
	if got := readMagic(r.data[subHeader : subHeader+4]); got != elemMagic {
		return DirectListView{}, &MagicError{Got: got, Expected: elemMagic}
	}
	elemSize := int(readUint32(r.data[subHeader+4 : subHeader+8]))
	if elemSize > maxDirectListItemSize {
		return DirectListView{}, &TooLargeItemSizeError{Size: elemSize}
	}
	start := subHeader + directListSubHeaderSize
	_, ok := endOffset(start, int(count), elemSize, 0, len(r.data))
	if !ok {
		return DirectListView{}, &OutOfBoundsError{Offset: start, Needed: int(count) * elemSize, Available: len(r.data) - start}
	}
	return DirectListView{r: r, ptr: Ptr{Start: start, Size: int(count)}, elemSize: elemSize}, nil
}

// SetDirectList writes a 48-bit reference to child into the field at
// byteOffset.
func SetDirectList(h TableHandle, byteOffset int, child DirectListHandle) {
	setOffsetField(h, byteOffset, child.RefOffset())
}

func (l DirectListView) IsPresent() bool { return l.ptr.Size != 0 || l.ptr.Start != 0 }
func (l DirectListView) Len() int        { return l.ptr.Size }

// Element returns a TableView over element i's inline body.
func (l DirectListView) Element(i int) TableView {
	return TableView{r: l.r, ptr: Ptr{Start: l.ptr.Start + i*l.elemSize, Size: l.elemSize}}
}
