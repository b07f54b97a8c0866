package segtree

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned for positions, query bounds or version numbers outside
// the valid ranges of a tree. Calls failing with ErrOutOfRange leave the tree unchanged.
var ErrOutOfRange = errors.New("index out of range")

// ErrEmptyInput is returned when constructing a tree from zero elements.
var ErrEmptyInput = errors.New("segment tree needs at least one element")

// ErrInvalidConfig is returned when a tree is constructed without a merge operation.
var ErrInvalidConfig = errors.New("invalid segment tree configuration")

// errorf wraps one of the error kinds above with details and traces the result.
func errorf(kind error, format string, args ...interface{}) error {
	err := fmt.Errorf("%w: "+format, append([]interface{}{kind}, args...)...)
	tracer().Errorf("%v", err)
	return err
}
