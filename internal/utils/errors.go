package utils

import (
	"errors"
	"fmt"
)

// Op identifies which FileBacking operation failed, so a caller can
// branch on the failure point (e.g. retry an Open but not a Truncate)
// without string-matching Error().
type Op string

const (
	OpOpen     Op = "open"
	OpMmap     Op = "mmap"
	OpMunmap   Op = "munmap"
	OpTruncate Op = "truncate"
	OpWrite    Op = "write"
	OpClose    Op = "close"
)

// ContextError reports a failed Backing operation (spec §6), naming
// the Op that failed and wrapping the underlying OS/syscall error.
type ContextError struct {
	Op    Op
	Cause error
}

// Error implements the error interface.
func (e *ContextError) Error() string {
	return fmt.Sprintf("backing %s: %v", e.Op, e.Cause)
}

// Unwrap provides compatibility with errors.Unwrap().
func (e *ContextError) Unwrap() error {
	return e.Cause
}

// WrapError tags cause with the Backing operation that produced it.
// Returns nil when cause is nil, so call sites can do
// `return utils.WrapError(utils.OpMmap, err)` unconditionally.
func WrapError(op Op, cause error) error {
	if cause == nil {
		return nil
	}
	return &ContextError{Op: op, Cause: cause}
}

// IsOp reports whether err is (or wraps) a ContextError tagged with
// op, letting a FileBacking caller distinguish e.g. "the file could
// not be opened" from "the file could not be mmap'd" after the fact.
func IsOp(err error, op Op) bool {
	var ce *ContextError
	if !errors.As(err, &ce) {
		return false
	}
	return ce.Op == op
}
