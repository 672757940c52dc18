package scalgoproto

// Union slots have two wire forms (spec §3, §4.4): a pointer union
// (an 8-byte tag+offset slot addressed like any other table field,
// handled by GetUnionTag/GetUnionPtr/SetUnion in table.go) and an inplace union, whose payload is not addressed by
// offset at all but instead is whatever immediately follows its
// enclosing table's body in the buffer. This file holds the
// Writer-side machinery that enforces the inplace placement
// constraint (spec §4.6's "table-body-written / inplace-started /
// inplace-closed" state machine).

// VerifyTail asserts that table is the current tail of the Writer's
// buffer, i.e. no allocation has happened since table's body was
// written. An inplace union's payload is only well-formed when this
// holds at the moment the payload is emitted (spec §9's "Inplace
// object constraints").
func (w *Writer) VerifyTail(table TableHandle) error {
	if table.offset+table.size != w.buf.size {
		return &OutOfBoundsError{
			Offset:    table.offset + table.size,
			Needed:    0,
			Available: w.buf.size - (table.offset + table.size),
		}
	}
	return nil
}

// ConstructInplaceText emits a text payload immediately after table
// (which must be the buffer's current tail; see VerifyTail) and
// writes the union's tag and length into the table body at
// byteOffset. It does not write a TEXT header: an inplace payload is
// addressed purely by its enclosing table's recorded length.
func (w *Writer) ConstructInplaceText(table TableHandle, byteOffset int, tag uint16, s string) error {
	if err := w.VerifyTail(table); err != nil {
		return err
	}
	n := len(s) + 1 // + NUL, so readers can still validateText-style check it
	start, err := w.buf.expand(n)
	if err != nil {
		return err
	}
	copy(w.buf.data[start:start+len(s)], s)
	w.buf.data[start+len(s)] = 0
	SetInplaceUnionHeader(table, byteOffset, tag, len(s))
	return nil
}

// ConstructInplaceBytes emits a bytes payload immediately after table
// and writes the union's tag and length.
func (w *Writer) ConstructInplaceBytes(table TableHandle, byteOffset int, tag uint16, data []byte) error {
	if err := w.VerifyTail(table); err != nil {
		return err
	}
	start, err := w.buf.expand(len(data))
	if err != nil {
		return err
	}
	copy(w.buf.data[start:start+len(data)], data)
	SetInplaceUnionHeader(table, byteOffset, tag, len(data))
	return nil
}

// UnionView bundles a pointer union's tag with its table context, for
// callers that want to branch on the tag before resolving the
// payload.
type UnionView struct {
	Table TableView
	Tag   uint16
}

// GetUnion reads a pointer union's tag at byteOffset.
func GetUnion(t TableView, byteOffset int) UnionView {
	return UnionView{Table: t, Tag: GetUnionTag(t, byteOffset)}
}

// ResolveUnionText resolves a pointer union slot whose selected arm is
// a text object.
func ResolveUnionText(t TableView, byteOffset int) (TextView, error) {
	p, err := GetUnionPtr(t, byteOffset, textMagic, 1, 1)
	if err != nil {
		return TextView{}, err
	}
	if err := t.r.validateText(p); err != nil {
		return TextView{}, err
	}
	return TextView{r: t.r, ptr: p}, nil
}

// ResolveUnionTable resolves a pointer union slot whose selected arm
// is a table object.
func ResolveUnionTable(t TableView, byteOffset int) (TableView, error) {
	p, err := GetUnionPtr(t, byteOffset, tableMagic, 1, 0)
	if err != nil {
		return TableView{}, err
	}
	return TableView{r: t.r, ptr: p}, nil
}

// ResolveInplaceUnionText resolves an inplace union slot whose
// selected arm is text, validating the trailing NUL the same way
// ResolveUnionText does for the pointer-union case (spec invariant 3:
// "Text payload is followed by a NUL byte; readers must verify").
func ResolveInplaceUnionText(t TableView, byteOffset int) (tag uint16, text TextView, err error) {
	tag, p, err := GetInplaceUnion(t, byteOffset, 1, 1)
	if err != nil || tag == 0 {
		return tag, TextView{}, err
	}
	if err := t.r.validateText(p); err != nil {
		return tag, TextView{}, err
	}
	return tag, TextView{r: t.r, ptr: p}, nil
}
