package scalgoproto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fieldText = 0

// S2 from the spec: a standalone "hi" text object.
func TestScenarioS2Text(t *testing.T) {
	w, err := NewWriter()
	require.NoError(t, err)
	h, err := w.ConstructText("hi")
	require.NoError(t, err)

	root, err := w.Construct(strideText, nil)
	require.NoError(t, err)
	SetText(root, fieldText, h)
	data, err := w.Finalize(root)
	require.NoError(t, err)

	textStart := h.RefOffset()
	got := data[textStart : textStart+13]
	want := []byte{
		0xF5, 0xC8, 0x12, 0xD8, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00,
		'h', 'i', 0x00,
	}
	assert.Equal(t, want, got)
}

func TestTextRoundTrip(t *testing.T) {
	w, err := NewWriter()
	require.NoError(t, err)
	h, err := w.ConstructText("hello, world")
	require.NoError(t, err)
	root, err := w.Construct(strideText, nil)
	require.NoError(t, err)
	SetText(root, fieldText, h)
	data, err := w.Finalize(root)
	require.NoError(t, err)

	r := NewReader(data)
	rootPtr, err := r.Root()
	require.NoError(t, err)
	view := NewTableView(r, rootPtr)
	text, err := GetText(view, fieldText)
	require.NoError(t, err)
	assert.True(t, text.IsPresent())
	assert.Equal(t, "hello, world", text.String())
	assert.Equal(t, 12, text.Len())
}

func TestTextAbsentWhenUnset(t *testing.T) {
	w, err := NewWriter()
	require.NoError(t, err)
	root, err := w.Construct(strideText, nil)
	require.NoError(t, err)
	data, err := w.Finalize(root)
	require.NoError(t, err)

	r := NewReader(data)
	rootPtr, err := r.Root()
	require.NoError(t, err)
	view := NewTableView(r, rootPtr)
	text, err := GetText(view, fieldText)
	require.NoError(t, err)
	assert.False(t, text.IsPresent())
	assert.Equal(t, "", text.String())
}

func TestTextMissingNulIsRejected(t *testing.T) {
	w, err := NewWriter()
	require.NoError(t, err)
	h, err := w.ConstructText("hi")
	require.NoError(t, err)
	root, err := w.Construct(strideText, nil)
	require.NoError(t, err)
	SetText(root, fieldText, h)
	data, err := w.Finalize(root)
	require.NoError(t, err)

	// Corrupt the trailing NUL.
	data[h.RefOffset()+headerSize+2] = 'X'

	r := NewReader(data)
	rootPtr, err := r.Root()
	require.NoError(t, err)
	view := NewTableView(r, rootPtr)
	_, err = GetText(view, fieldText)
	require.Error(t, err)
	var invalidText *InvalidTextError
	assert.ErrorAs(t, err, &invalidText)
}

func TestEmptyText(t *testing.T) {
	w, err := NewWriter()
	require.NoError(t, err)
	h, err := w.ConstructText("")
	require.NoError(t, err)
	root, err := w.Construct(strideText, nil)
	require.NoError(t, err)
	SetText(root, fieldText, h)
	data, err := w.Finalize(root)
	require.NoError(t, err)

	r := NewReader(data)
	rootPtr, err := r.Root()
	require.NoError(t, err)
	view := NewTableView(r, rootPtr)
	text, err := GetText(view, fieldText)
	require.NoError(t, err)
	assert.Equal(t, 0, text.Len())
	assert.Equal(t, "", text.String())
}
