package scalgoproto

// Writer is a mutator that owns a Buffer and serves allocation
// primitives (spec §4.3). Not safe for concurrent use; callers that
// want parallelism must serialize access externally (spec §5).
type Writer struct {
	buf *Buffer
}

// NewWriter creates a Writer backed by a default heap-growing Buffer.
func NewWriter() (*Writer, error) {
	return NewWriterWithBacking(NewHeapBacking(initialBufferSize))
}

// NewWriterWithBacking creates a Writer over a caller-supplied
// Backing, e.g. a FileBacking for memory-mapped growth.
func NewWriterWithBacking(backing Backing) (*Writer, error) {
	buf, err := newBuffer(backing)
	if err != nil {
		return nil, err
	}
	return &Writer{buf: buf}, nil
}

// Clear rewinds the Writer back to an empty message, reusing its
// Buffer's capacity (spec §4.1's clear/reuse contract).
func (w *Writer) Clear() {
	w.buf.clear()
}

// Finalize writes the root header referencing root and hands the
// final bytes back, flushing to the backing if file-backed.
func (w *Writer) Finalize(root TableHandle) ([]byte, error) {
	return w.buf.finalize(uint64(root.RefOffset()))
}

// Numeric is the set of wire-representable fixed-width scalar types:
// every pod kind in the dispatch table except bool, which is packed
// at sub-byte granularity and handled by GetBool/SetBool instead.
type Numeric interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

func sizeOfNumeric[T Numeric]() int {
	var v T
	switch any(v).(type) {
	case int8, uint8:
		return 1
	case int16, uint16:
		return 2
	case int32, uint32, float32:
		return 4
	case int64, uint64, float64:
		return 8
	default:
		return 8
	}
}

func getNumeric[T Numeric](b []byte) T {
	var v T
	switch any(v).(type) {
	case int8:
		return any(int8(b[0])).(T)
	case uint8:
		return any(b[0]).(T)
	case int16:
		return any(int16(readUint16(b))).(T)
	case uint16:
		return any(readUint16(b)).(T)
	case int32:
		return any(int32(readUint32(b))).(T)
	case uint32:
		return any(readUint32(b)).(T)
	case float32:
		return any(readFloat32(b)).(T)
	case int64:
		return any(int64(readUint64(b))).(T)
	case uint64:
		return any(readUint64(b)).(T)
	case float64:
		return any(readFloat64(b)).(T)
	default:
		var zero T
		return zero
	}
}

func setNumeric[T Numeric](b []byte, v T) {
	switch x := any(v).(type) {
	case int8:
		b[0] = byte(x)
	case uint8:
		b[0] = x
	case int16:
		writeUint16(b, uint16(x))
	case uint16:
		writeUint16(b, x)
	case int32:
		writeUint32(b, uint32(x))
	case uint32:
		writeUint32(b, x)
	case float32:
		writeFloat32(b, x)
	case int64:
		writeUint64(b, uint64(x))
	case uint64:
		writeUint64(b, x)
	case float64:
		writeFloat64(b, x)
	}
}
