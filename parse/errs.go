package parse

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml/ast"
)

var ErrParse = errors.New("parse error")

// PosError is a parse error at a position of the input. Line and
// Column start at 1; zero means unknown.
type PosError struct {
	Pos
	Msg string
}

func (e *PosError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %s", ErrParse, e.Msg)
	}
	return fmt.Sprintf("%s: %d:%d: %s", ErrParse, e.Line, e.Column, e.Msg)
}

func (e *PosError) Unwrap() error {
	return ErrParse
}

func posError(n ast.Node, format string, args ...any) *PosError {
	return &PosError{Pos: nodePos(n), Msg: fmt.Sprintf(format, args...)}
}
