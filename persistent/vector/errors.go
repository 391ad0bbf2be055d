package vector

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is matched by every *IndexError (use errors.Is).
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrEmpty is matched by every *EmptyError (use errors.Is).
var ErrEmpty = errors.New("empty vector")

// IndexError is raised by operations requiring a valid index.
type IndexError struct {
	Index int // offending index, as given by the client
	Size  int // size of the vector
}

func newIndexError(i, size int) *IndexError {
	return &IndexError{Index: i, Size: size}
}

func (e *IndexError) Error() string {
	if e.Size == 0 {
		return fmt.Sprintf("out of bound index: %d (empty vector)", e.Index)
	}
	return fmt.Sprintf("out of bound index: %d not in %d..%d", e.Index, -e.Size, e.Size-1)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// EmptyError is raised by operations requiring at least one element.
type EmptyError struct {
	Op string
}

func (e *EmptyError) Error() string {
	return fmt.Sprintf("empty vector error: %s requires at least one element", e.Op)
}

func (e *EmptyError) Unwrap() error {
	return ErrEmpty
}

// MalformedUpdateError is raised by GetAndUpdate if the continuation returns
// neither a Replace nor a Remove.
type MalformedUpdateError struct {
	Index int
}

func (e *MalformedUpdateError) Error() string {
	return fmt.Sprintf("get-and-update at index %d: function must return Replace(…) or Remove(…), got zero Update", e.Index)
}
