package scalgoproto

// copy_from (spec §4.5) reproduces a source subtree, read through any
// Reader, into this Writer's buffer. Copying is value-level: text and
// bytes duplicate payload, lists iterate element-wise, and table/union
// copies recurse. Because no schema compiler exists in this core
// (spec §1's non-goal), the functions here are the dispatch primitives
// a generated accessor layer composes into a full per-schema
// copy_from; they do not know a table's field layout themselves.

// CopyText duplicates a text object's payload into w.
func CopyText(w *Writer, src TextView) (TextHandle, error) {
	if !src.IsPresent() {
		return TextHandle{}, nil
	}
	return w.ConstructText(src.String())
}

// CopyBytes duplicates a bytes object's payload into w.
func CopyBytes(w *Writer, src BytesView) (BytesHandle, error) {
	if !src.IsPresent() {
		return BytesHandle{}, nil
	}
	return w.ConstructBytes(src.Bytes())
}

// CopyPodList duplicates a pod list element-wise into w.
func CopyPodList[T Numeric](w *Writer, src PodListView[T]) (ListHandle[T], error) {
	if !src.IsPresent() {
		return ListHandle[T]{}, nil
	}
	dst, err := ConstructPodList[T](w, src.Len())
	if err != nil {
		return ListHandle[T]{}, err
	}
	for i := 0; i < src.Len(); i++ {
		dst.Set(i, src.At(i))
	}
	return dst, nil
}

// CopyBoolList duplicates a bool list bit-by-bit into w.
func CopyBoolList(w *Writer, src BoolListView) (BoolListHandle, error) {
	if !src.IsPresent() {
		return BoolListHandle{}, nil
	}
	dst, err := w.ConstructBoolList(src.Len())
	if err != nil {
		return BoolListHandle{}, err
	}
	for i := 0; i < src.Len(); i++ {
		dst.Set(i, src.At(i))
	}
	return dst, nil
}

// CopyEnumList duplicates an enum list byte-for-byte into w.
func CopyEnumList(w *Writer, src EnumListView) (EnumListHandle, error) {
	if !src.IsPresent() {
		return EnumListHandle{}, nil
	}
	dst, err := w.ConstructEnumList(src.Len())
	if err != nil {
		return EnumListHandle{}, err
	}
	for i := 0; i < src.Len(); i++ {
		dst.Set(i, src.At(i))
	}
	return dst, nil
}

// CopyTextList duplicates a list of text references, copying each
// referenced text object too.
func CopyTextList(w *Writer, src TextListView) (TextListHandle, error) {
	if !src.IsPresent() {
		return TextListHandle{}, nil
	}
	dst, err := w.ConstructTextList(src.Len())
	if err != nil {
		return TextListHandle{}, err
	}
	for i := 0; i < src.Len(); i++ {
		elem, err := src.At(i)
		if err != nil {
			return TextListHandle{}, err
		}
		if !elem.IsPresent() {
			continue
		}
		h, err := CopyText(w, elem)
		if err != nil {
			return TextListHandle{}, err
		}
		dst.Set(i, h)
	}
	return dst, nil
}

// CopyBytesList duplicates a list of bytes references, copying each
// referenced bytes object too.
func CopyBytesList(w *Writer, src BytesListView) (BytesListHandle, error) {
	if !src.IsPresent() {
		return BytesListHandle{}, nil
	}
	dst, err := w.ConstructBytesList(src.Len())
	if err != nil {
		return BytesListHandle{}, err
	}
	for i := 0; i < src.Len(); i++ {
		elem, err := src.At(i)
		if err != nil {
			return BytesListHandle{}, err
		}
		if !elem.IsPresent() {
			continue
		}
		h, err := CopyBytes(w, elem)
		if err != nil {
			return BytesListHandle{}, err
		}
		dst.Set(i, h)
	}
	return dst, nil
}

// CopyTableBody duplicates only a table's raw body bytes: valid when
// the table's schema carries no offset or union fields (generated
// code must instead copy such tables field-by-field, re-pointing each
// offset/union through the Copy* primitive for its kind).
func CopyTableBody(w *Writer, src TableView) (TableHandle, error) {
	raw := src.r.data[src.ptr.Start : src.ptr.Start+src.ptr.Size]
	return w.Construct(src.Size(), raw)
}

// CopyTableList duplicates a list of table references, recursing into
// each referenced table via CopyTableBody (same offset/union-field
// caveat as CopyTableBody itself).
func CopyTableList(w *Writer, src TableListView) (TableListHandle, error) {
	if !src.IsPresent() {
		return TableListHandle{}, nil
	}
	dst, err := w.ConstructTableList(src.Len())
	if err != nil {
		return TableListHandle{}, err
	}
	for i := 0; i < src.Len(); i++ {
		elem, err := src.Get(i)
		if err != nil {
			return TableListHandle{}, err
		}
		if !elem.IsPresent() {
			continue
		}
		h, err := CopyTableBody(w, elem)
		if err != nil {
			return TableListHandle{}, err
		}
		dst.Set(i, h)
	}
	return dst, nil
}

// CopyUnionList duplicates a list of pointer-union slots element-wise.
// Because this core carries no per-tag schema (spec §1's non-goal),
// the caller supplies copyArm, which dispatches on tag to resolve and
// copy the selected arm's payload through the matching Copy* primitive
// for its kind, returning the RefOffset to install in the new slot.
// This mirrors how a generated copy_from would switch on a union's
// tag, just with the switch left to the caller instead of generated
// code.
func CopyUnionList(w *Writer, src UnionListView, copyArm func(i int, tag uint16) (refOffset int, err error)) (UnionListHandle, error) {
	if !src.IsPresent() {
		return UnionListHandle{}, nil
	}
	dst, err := w.ConstructUnionList(src.Len())
	if err != nil {
		return UnionListHandle{}, err
	}
	for i := 0; i < src.Len(); i++ {
		tag, err := src.Get(i)
		if err != nil {
			return UnionListHandle{}, err
		}
		if tag == 0 {
			continue
		}
		refOffset, err := copyArm(i, tag)
		if err != nil {
			return UnionListHandle{}, err
		}
		dst.Set(i, tag, refOffset)
	}
	return dst, nil
}
