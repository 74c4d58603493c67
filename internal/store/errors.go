package store

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyTitle     = errors.New("task title is empty")
	ErrInvalidTitle   = errors.New("task title cannot contain '|' or line breaks")
	ErrNoTasks        = errors.New("no tasks found")
	ErrOutOfRange     = errors.New("position out of range")
	ErrNotImplemented = errors.New("not implemented")
)

// OutOfRangeError reports a position outside the current list
type OutOfRangeError struct {
	Position int
	Len      int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("position %d out of range [1, %d]", e.Position, e.Len)
}

// Is lets errors.Is match ErrOutOfRange
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
