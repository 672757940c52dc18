package scalgoproto

import "fmt"

// MagicError reports that a header's 4-byte magic did not match the
// value expected for the kind being read.
type MagicError struct {
	Got, Expected uint32
}

func (e *MagicError) Error() string {
	return fmt.Sprintf("scalgoproto: bad magic: got %#08x, expected %#08x", e.Got, e.Expected)
}

// OutOfBoundsError reports that an offset, or an offset plus a
// computed size, would read past the end of the buffer.
type OutOfBoundsError struct {
	Offset, Needed, Available int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("scalgoproto: out of bounds at offset %d: needs %d bytes, %d available",
		e.Offset, e.Needed, e.Available)
}

// InvalidTextError reports that a text object's trailing NUL byte was
// missing or corrupted.
type InvalidTextError struct {
	Offset int
}

func (e *InvalidTextError) Error() string {
	return fmt.Sprintf("scalgoproto: text at offset %d is missing its trailing NUL", e.Offset)
}

// TooLargeItemSizeError reports that a direct list's declared
// per-element byte width exceeds the wire format's limit.
type TooLargeItemSizeError struct {
	Size int
}

func (e *TooLargeItemSizeError) Error() string {
	return fmt.Sprintf("scalgoproto: direct list item size %d exceeds maximum of %d",
		e.Size, maxDirectListItemSize)
}

// OutOfRangeError reports a checked list access with an index at or
// beyond the list's size.
type OutOfRangeError struct {
	Index, Size int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("scalgoproto: index %d out of range for list of size %d", e.Index, e.Size)
}
