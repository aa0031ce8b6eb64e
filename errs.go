package rpgmap

import (
	"errors"
	"fmt"
)

var (
	ErrMissingInput      = errors.New("missing input")
	ErrMalformedJSON     = errors.New("malformed json")
	ErrMalformedDocument = errors.New("malformed document")
	ErrInternal          = errors.New("internal error")
)

// InternalError is a recovered panic. It matches ErrInternal and keeps
// the stack of the panicking goroutine.
type InternalError struct {
	Value any
	Stack []byte
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("%v: %v", ErrInternal, e.Value)
}

func (e *InternalError) Unwrap() error { return ErrInternal }
