package scalgoproto

// TextHandle is the Writer-side handle to a just-written UTF-8 text
// object.
type TextHandle struct {
	offset int // header start
}

func (h TextHandle) RefOffset() int { return h.offset }

// ConstructText writes a TEXT object: magic, 48-bit length, the UTF-8
// bytes, and one trailing NUL not counted in the length.
func (w *Writer) ConstructText(s string) (TextHandle, error) {
	n := len(s)
	headerStart, err := w.buf.expand(headerSize + n + 1)
	if err != nil {
		return TextHandle{}, err
	}
	putMagic(w.buf.data[headerStart:headerStart+4], textMagic)
	putUint48(w.buf.data[headerStart+4:headerStart+headerSize], uint64(n))
	bodyStart := headerStart + headerSize
	copy(w.buf.data[bodyStart:bodyStart+n], s)
	w.buf.data[bodyStart+n] = 0
	return TextHandle{offset: headerStart}, nil
}

// TextView is the Reader-side view of a text object.
type TextView struct {
	r   Reader
	ptr Ptr
}

// GetText reads a 48-bit offset field as a reference to a text
// object, validating its trailing NUL.
func GetText(t TableView, byteOffset int) (TextView, error) {
	p, err := getOffsetField(t, byteOffset, textMagic, 1, 1)
	if err != nil {
		return TextView{}, err
	}
	if err := t.r.validateText(p); err != nil {
		return TextView{}, err
	}
	return TextView{r: t.r, ptr: p}, nil
}

// SetText writes a 48-bit reference to child into the field at
// byteOffset.
func SetText(h TableHandle, byteOffset int, child TextHandle) {
	setOffsetField(h, byteOffset, child.RefOffset())
}

// IsPresent reports whether this view refers to an actual object
// (false for the absent zero view read from an unset field).
func (t TextView) IsPresent() bool { return !t.ptr.IsAbsent() }

// String returns the text's UTF-8 content; "" for an absent view.
func (t TextView) String() string {
	if t.ptr.IsAbsent() {
		return ""
	}
	return string(t.r.data[t.ptr.Start : t.ptr.Start+t.ptr.Size])
}

// Len returns the number of UTF-8 code units.
func (t TextView) Len() int { return t.ptr.Size }
