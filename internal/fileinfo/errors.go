package fileinfo

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrIsDirectory is the cause of an IoError when a file operation is given a directory.
var ErrIsDirectory = errors.New("is a directory")

// IoError is a failed file operation on Path.
type IoError struct {
	Op   string // ex: "hash", "read", "stat"
	Path string
	Err  error // OS-level cause; never a *fs.PathError (its path would duplicate Path).
}

func (e *IoError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IoError) Unwrap() error { return e.Err }

// NewIoError returns an *IoError for op on path. If err is a *fs.PathError, its inner error is used as the cause.
func NewIoError(op, path string, err error) *IoError {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	return &IoError{Op: op, Path: path, Err: err}
}
