package scalgoproto

// Table is the generic, schema-agnostic record kind (spec §4.4):
// a fixed-size body of POD fields and 48-bit offset fields, addressed
// by byte offset within the body. There is no code generator in this
// core (spec §1's explicit non-goal); generated accessor types are a
// thin skin over the primitives below.

// TableHandle is the Writer-side handle to a just-allocated table
// body. Its stored offset is the body start, per spec §4.3; to embed
// a reference to it in another field, use RefOffset.
type TableHandle struct {
	w      *Writer
	offset int
	size   int
}

// RefOffset is the value written into a referencing field: the
// table's header start, i.e. body offset minus the 10-byte header.
func (h TableHandle) RefOffset() int {
	return h.offset - headerSize
}

// TableView is the Reader-side view of a table body.
type TableView struct {
	r   Reader
	ptr Ptr
}

// Size reports the table body's declared byte length.
func (t TableView) Size() int { return t.ptr.Size }

// IsPresent reports whether this view resolved to an actual table
// (vs. an absent offset field).
func (t TableView) IsPresent() bool { return !t.ptr.IsAbsent() }

// NewTableView wraps a Ptr produced by Reader.Root (or another
// offset-field accessor) into a TableView, for callers assembling
// generated-style accessors on top of the core primitives.
func NewTableView(r Reader, p Ptr) TableView {
	return TableView{r: r, ptr: p}
}

// Construct allocates a new table body of bodySize bytes, initialized
// to defaults, and returns a handle to it.
func (w *Writer) Construct(bodySize int, defaultBytes []byte) (TableHandle, error) {
	headerStart, err := w.buf.expand(headerSize + bodySize)
	if err != nil {
		return TableHandle{}, err
	}
	putMagic(w.buf.data[headerStart:headerStart+4], tableMagic)
	putUint48(w.buf.data[headerStart+4:headerStart+headerSize], uint64(bodySize))
	bodyStart := headerStart + headerSize
	if defaultBytes != nil {
		copy(w.buf.data[bodyStart:bodyStart+bodySize], defaultBytes)
	}
	return TableHandle{w: w, offset: bodyStart, size: bodySize}, nil
}

// GetTable reads a 48-bit offset field as a reference to a nested
// table, honoring the "trailing fields default to absent" rule.
func GetTable(t TableView, byteOffset int) (TableView, error) {
	p, err := getOffsetField(t, byteOffset, tableMagic, 1, 0)
	if err != nil {
		return TableView{}, err
	}
	return TableView{r: t.r, ptr: p}, nil
}

// SetTable writes a 48-bit reference to child into the field at
// byteOffset.
func SetTable(h TableHandle, byteOffset int, child TableHandle) {
	setOffsetField(h, byteOffset, child.RefOffset())
}

// getOffsetField is the shared implementation behind GetTable,
// GetText, GetBytes and list accessors: a short table body yields the
// kind's default (absent), per the dispatch table's forward
// compatibility rule.
func getOffsetField(t TableView, byteOffset int, magic uint32, stride, extra int) (Ptr, error) {
	if byteOffset+strideTable > t.ptr.Size {
		return Ptr{}, nil
	}
	off := readUint48(t.r.data[t.ptr.Start+byteOffset : t.ptr.Start+byteOffset+strideTable])
	return t.r.getPtr(int(off), magic, stride, extra)
}

func setOffsetField(h TableHandle, byteOffset, refOffset int) {
	putUint48(h.w.buf.data[h.offset+byteOffset:h.offset+byteOffset+strideTable], uint64(refOffset))
}

// GetPod reads a fixed-width numeric/bool-as-byte field, yielding the
// zero value when the table body is too short to contain it.
func GetPod[T Numeric](t TableView, byteOffset int) T {
	var width = sizeOfNumeric[T]()
	if byteOffset+width > t.ptr.Size {
		var zero T
		return zero
	}
	return getNumeric[T](t.r.data[t.ptr.Start+byteOffset : t.ptr.Start+byteOffset+width])
}

// SetPod writes a fixed-width numeric field in place.
func SetPod[T Numeric](h TableHandle, byteOffset int, v T) {
	width := sizeOfNumeric[T]()
	setNumeric(h.w.buf.data[h.offset+byteOffset:h.offset+byteOffset+width], v)
}

// GetBool reads a single packed bit field.
func GetBool(t TableView, bitOffset int) bool {
	byteOff := bitOffset / 8
	if byteOff >= t.ptr.Size {
		return false
	}
	b := t.r.data[t.ptr.Start+byteOff]
	return (b>>(uint(bitOffset)%8))&1 != 0
}

// SetBool writes a single packed bit field.
func SetBool(h TableHandle, bitOffset int, v bool) {
	byteOff := bitOffset / 8
	mask := byte(1) << (uint(bitOffset) % 8)
	cur := h.w.buf.data[h.offset+byteOff]
	if v {
		h.w.buf.data[h.offset+byteOff] = cur | mask
	} else {
		h.w.buf.data[h.offset+byteOff] = cur &^ mask
	}
}

// GetEnum reads an enum byte field, applying the Open Question
// decision (§9): a stored byte at or beyond cardinality means unset.
func GetEnum(t TableView, byteOffset int, cardinality int) (value byte, ok bool) {
	if byteOffset >= t.ptr.Size {
		return enumUnsetByte, false
	}
	b := t.r.data[t.ptr.Start+byteOffset]
	return b, int(b) < cardinality
}

// SetEnum writes an enum byte field.
func SetEnum(h TableHandle, byteOffset int, v byte) {
	h.w.buf.data[h.offset+byteOffset] = v
}

// GetUnionTag reads a pointer-union slot's 16-bit tag; 0 means unset.
func GetUnionTag(t TableView, byteOffset int) uint16 {
	if byteOffset+strideUnion > t.ptr.Size {
		return 0
	}
	return uint16(t.r.data[t.ptr.Start+byteOffset]) | uint16(t.r.data[t.ptr.Start+byteOffset+1])<<8
}

// GetUnionPtr resolves a pointer-union slot's payload, given the
// expected magic/stride/extra for the arm selected by its tag.
func GetUnionPtr(t TableView, byteOffset int, magic uint32, stride, extra int) (Ptr, error) {
	if byteOffset+strideUnion > t.ptr.Size {
		return Ptr{}, nil
	}
	off := readUint48(t.r.data[t.ptr.Start+byteOffset+2 : t.ptr.Start+byteOffset+strideUnion])
	return t.r.getPtr(int(off), magic, stride, extra)
}

// SetUnion writes a pointer-union slot's tag and payload reference.
func SetUnion(h TableHandle, byteOffset int, tag uint16, refOffset int) {
	h.w.buf.data[h.offset+byteOffset] = byte(tag)
	h.w.buf.data[h.offset+byteOffset+1] = byte(tag >> 8)
	putUint48(h.w.buf.data[h.offset+byteOffset+2:h.offset+byteOffset+strideUnion], uint64(refOffset))
}

// GetInplaceUnion reads an inplace union's tag and 48-bit length from
// the enclosing table body, and resolves the payload Ptr immediately
// following the table's own body (spec §3's inplace union rule).
func GetInplaceUnion(t TableView, byteOffset int, stride, extra int) (tag uint16, p Ptr, err error) {
	if byteOffset+strideUnion > t.ptr.Size {
		return 0, Ptr{}, nil
	}
	tag = uint16(t.r.data[t.ptr.Start+byteOffset]) | uint16(t.r.data[t.ptr.Start+byteOffset+1])<<8
	if tag == 0 {
		return 0, Ptr{}, nil
	}
	length := readUint48(t.r.data[t.ptr.Start+byteOffset+2 : t.ptr.Start+byteOffset+strideUnion])
	p, err = t.r.getPtrInplace(t.ptr.Start+t.ptr.Size, int(length), stride, extra)
	return tag, p, err
}

// SetInplaceUnionHeader writes an inplace union's tag and length
// fields into the enclosing table's body. The caller is responsible
// for having just emitted the payload bytes immediately after the
// table (see Writer.VerifyTail).
func SetInplaceUnionHeader(h TableHandle, byteOffset int, tag uint16, length int) {
	h.w.buf.data[h.offset+byteOffset] = byte(tag)
	h.w.buf.data[h.offset+byteOffset+1] = byte(tag >> 8)
	putUint48(h.w.buf.data[h.offset+byteOffset+2:h.offset+byteOffset+strideUnion], uint64(length))
}
