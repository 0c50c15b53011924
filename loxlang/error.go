package loxlang

import "fmt"

// Error is a lexical or syntax error.
type Error struct {
	Line    int
	Where   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.Line, e.Where, e.Message)
}

type ErrorHandler func(err *Error)

func errorAt(tok Token, message string) *Error {
	if tok.Kind == TokenEOF {
		return &Error{
			Line:    tok.Line,
			Where:   " at end",
			Message: message,
		}
	}
	return &Error{
		Line:    tok.Line,
		Where:   " at '" + tok.Lexeme + "'",
		Message: message,
	}
}
