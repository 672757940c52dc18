package scalgoproto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fieldUnion = 0

// S6 from the spec: a pointer union slot, tag=1, payload at offset
// 0x123456.
func TestScenarioS6PointerUnionWireLayout(t *testing.T) {
	h := TableHandle{offset: 10, size: strideUnion}
	buf := make([]byte, 20)
	h.w = &Writer{buf: &Buffer{data: buf, size: 20}}

	SetUnion(h, fieldUnion, 1, 0x123456)

	got := buf[10:18]
	want := []byte{0x01, 0x00, 0x56, 0x34, 0x12, 0x00, 0x00, 0x00}
	assert.Equal(t, want, got)
}

func TestPointerUnionRoundTrip(t *testing.T) {
	w, err := NewWriter()
	require.NoError(t, err)
	text, err := w.ConstructText("union payload")
	require.NoError(t, err)

	root, err := w.Construct(strideUnion, nil)
	require.NoError(t, err)
	SetUnion(root, fieldUnion, 1, text.RefOffset())
	data, err := w.Finalize(root)
	require.NoError(t, err)

	r := NewReader(data)
	rootPtr, err := r.Root()
	require.NoError(t, err)
	view := NewTableView(r, rootPtr)

	assert.Equal(t, uint16(1), GetUnionTag(view, fieldUnion))
	resolved, err := ResolveUnionText(view, fieldUnion)
	require.NoError(t, err)
	assert.Equal(t, "union payload", resolved.String())
}

func TestPointerUnionUnsetTagIsZero(t *testing.T) {
	w, err := NewWriter()
	require.NoError(t, err)
	root, err := w.Construct(strideUnion, nil)
	require.NoError(t, err)
	data, err := w.Finalize(root)
	require.NoError(t, err)

	r := NewReader(data)
	rootPtr, err := r.Root()
	require.NoError(t, err)
	view := NewTableView(r, rootPtr)
	assert.Equal(t, uint16(0), GetUnionTag(view, fieldUnion))
}

func TestInplaceTextUnionRoundTrip(t *testing.T) {
	w, err := NewWriter()
	require.NoError(t, err)
	root, err := w.Construct(strideUnion, nil)
	require.NoError(t, err)

	require.NoError(t, w.ConstructInplaceText(root, fieldUnion, 1, "inline payload"))

	data, err := w.Finalize(root)
	require.NoError(t, err)

	r := NewReader(data)
	rootPtr, err := r.Root()
	require.NoError(t, err)
	view := NewTableView(r, rootPtr)

	tag, text, err := ResolveInplaceUnionText(view, fieldUnion)
	require.NoError(t, err)
	assert.Equal(t, uint16(1), tag)
	assert.Equal(t, "inline payload", text.String())
}

func TestResolveInplaceUnionTextRejectsMissingNul(t *testing.T) {
	w, err := NewWriter()
	require.NoError(t, err)
	root, err := w.Construct(strideUnion, nil)
	require.NoError(t, err)

	require.NoError(t, w.VerifyTail(root))
	// Write "abcde" followed by a non-NUL byte, but record the union's
	// length as 5: validateText reads the byte just past the declared
	// length and must reject it for not being NUL.
	start, err := w.buf.expand(6)
	require.NoError(t, err)
	copy(w.buf.data[start:start+6], "abcdeX")
	SetInplaceUnionHeader(root, fieldUnion, 1, 5)

	data, err := w.Finalize(root)
	require.NoError(t, err)

	r := NewReader(data)
	rootPtr, err := r.Root()
	require.NoError(t, err)
	view := NewTableView(r, rootPtr)

	_, _, err = ResolveInplaceUnionText(view, fieldUnion)
	require.Error(t, err)
	var invalidText *InvalidTextError
	assert.ErrorAs(t, err, &invalidText)
}

func TestVerifyTailRejectsNonTailTable(t *testing.T) {
	w, err := NewWriter()
	require.NoError(t, err)
	root, err := w.Construct(strideUnion, nil)
	require.NoError(t, err)

	// Allocating something else moves the buffer's tail past root's
	// body, so an inplace payload on root is no longer legal.
	_, err = w.ConstructText("pushes the tail forward")
	require.NoError(t, err)

	err = w.VerifyTail(root)
	require.Error(t, err)
}
