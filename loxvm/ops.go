package loxvm

import "github.com/reusee/lox/loxlang"

func unary(op loxlang.Token, operand Value) (Value, error) {
	switch op.Kind {
	case loxlang.TokenBang:
		return Bool(!IsTruthy(operand)), nil
	case loxlang.TokenMinus:
		n, ok := operand.(Number)
		if !ok {
			return nil, newError(ErrTypeMismatch, op.Line,
				"operand of '%s' must be a number, got %s", op.Lexeme, describe(operand))
		}
		return -n, nil
	}
	return nil, newError(ErrTypeMismatch, op.Line, "unknown unary operator '%s'", op.Lexeme)
}

func binary(op loxlang.Token, left, right Value) (Value, error) {
	switch op.Kind {
	case loxlang.TokenEqualEqual:
		return Bool(IsEqual(left, right)), nil
	case loxlang.TokenBangEqual:
		return Bool(!IsEqual(left, right)), nil
	}

	switch l := left.(type) {

	case Number:
		r, ok := right.(Number)
		if !ok {
			break
		}
		switch op.Kind {
		case loxlang.TokenMinus:
			return l - r, nil
		case loxlang.TokenPlus:
			return l + r, nil
		case loxlang.TokenSlash:
			return l / r, nil
		case loxlang.TokenStar:
			return l * r, nil
		case loxlang.TokenGreater:
			return Bool(l > r), nil
		case loxlang.TokenGreaterEqual:
			return Bool(l >= r), nil
		case loxlang.TokenLess:
			return Bool(l < r), nil
		case loxlang.TokenLessEqual:
			return Bool(l <= r), nil
		}

	case String:
		r, ok := right.(String)
		if !ok {
			break
		}
		if op.Kind == loxlang.TokenPlus {
			return l + r, nil
		}

	}

	return nil, newError(ErrTypeMismatch, op.Line,
		"operator '%s' cannot be applied to %s and %s", op.Lexeme, describe(left), describe(right))
}
