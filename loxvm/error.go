package loxvm

import (
	"errors"
	"fmt"
)

var (
	ErrUndefinedVariable = errors.New("undefined variable")
	ErrTypeMismatch      = errors.New("type mismatch")
	ErrNotCallable       = errors.New("not callable")
	ErrArity             = errors.New("wrong number of arguments")
)

type RuntimeError struct {
	Kind    error
	Line    int
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] %s", e.Line, e.Message)
}

func (e *RuntimeError) Unwrap() error {
	return e.Kind
}

func newError(kind error, line int, format string, args ...any) *RuntimeError {
	return &RuntimeError{
		Kind:    kind,
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	}
}
