//go:build !unix

package scalgoproto

import (
	"os"

	"github.com/scalgo/scalgoproto/internal/utils"
)

// FileBacking is the non-unix fallback: it grows a plain heap slice
// and flushes to disk only on Finalize, since mmap is unavailable.
type FileBacking struct {
	file *os.File
	data []byte
}

// NewFileBacking creates (truncating if needed) the file at path.
func NewFileBacking(path string) (*FileBacking, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, utils.WrapError(utils.OpOpen, err)
	}
	return &FileBacking{file: f}, nil
}

// SetCapacity implements Backing.
func (f *FileBacking) SetCapacity(newCap int) ([]byte, error) {
	if newCap == 0 {
		f.data = nil
		return nil, nil
	}
	if newCap <= len(f.data) {
		return f.data, nil
	}
	grown := make([]byte, newCap)
	copy(grown, f.data)
	f.data = grown
	return f.data, nil
}

// Finalize implements Backing: write the final bytes and close the file.
func (f *FileBacking) Finalize(size int) error {
	if _, err := f.file.WriteAt(f.data[:size], 0); err != nil {
		return utils.WrapError(utils.OpWrite, err)
	}
	if err := f.file.Truncate(int64(size)); err != nil {
		return utils.WrapError(utils.OpTruncate, err)
	}
	if err := f.file.Close(); err != nil {
		return utils.WrapError(utils.OpClose, err)
	}
	return nil
}
