package loxvm

import (
	"fmt"
	"io"
	"os"

	"github.com/reusee/lox/loxlang"
)

type Interpreter struct {
	env    *Env
	stdout io.Writer
}

func New(stdout io.Writer) *Interpreter {
	if stdout == nil {
		stdout = os.Stdout
	}
	env := NewEnv()
	defineNatives(env)
	return &Interpreter{
		env:    env,
		stdout: stdout,
	}
}

func (i *Interpreter) Env() *Env {
	return i.env
}

// Run executes stmts in order and stops at the first runtime error
func (i *Interpreter) Run(stmts []loxlang.Stmt) error {
	for _, stmt := range stmts {
		if err := i.Execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) Execute(stmt loxlang.Stmt) error {
	switch stmt := stmt.(type) {

	case *loxlang.ExprStmt:
		_, err := i.Evaluate(stmt.Expr)
		return err

	case *loxlang.PrintStmt:
		val, err := i.Evaluate(stmt.Expr)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(i.stdout, Stringify(val)); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil

	case *loxlang.VarStmt:
		var val Value = Nil{}
		if stmt.Init != nil {
			var err error
			val, err = i.Evaluate(stmt.Init)
			if err != nil {
				return err
			}
		}
		i.env.Define(stmt.Name.Lexeme, val)
		return nil

	case *loxlang.BlockStmt:
		return i.executeBlock(stmt.Stmts)

	case *loxlang.IfStmt:
		cond, err := i.Evaluate(stmt.Cond)
		if err != nil {
			return err
		}
		if IsTruthy(cond) {
			return i.Execute(stmt.Then)
		} else if stmt.Else != nil {
			return i.Execute(stmt.Else)
		}
		return nil

	case *loxlang.WhileStmt:
		for {
			cond, err := i.Evaluate(stmt.Cond)
			if err != nil {
				return err
			}
			if !IsTruthy(cond) {
				return nil
			}
			if err := i.Execute(stmt.Body); err != nil {
				return err
			}
		}

	}
	return fmt.Errorf("unknown statement: %T", stmt)
}

func (i *Interpreter) executeBlock(stmts []loxlang.Stmt) error {
	i.env.EnterScope()
	defer i.env.ExitScope()
	for _, stmt := range stmts {
		if err := i.Execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) Evaluate(expr loxlang.Expr) (Value, error) {
	switch expr := expr.(type) {

	case *loxlang.Literal:
		return literalValue(expr.Token)

	case *loxlang.Grouping:
		return i.Evaluate(expr.Inner)

	case *loxlang.Unary:
		operand, err := i.Evaluate(expr.Operand)
		if err != nil {
			return nil, err
		}
		return unary(expr.Op, operand)

	case *loxlang.Binary:
		left, err := i.Evaluate(expr.Left)
		if err != nil {
			return nil, err
		}
		right, err := i.Evaluate(expr.Right)
		if err != nil {
			return nil, err
		}
		return binary(expr.Op, left, right)

	case *loxlang.Logical:
		left, err := i.Evaluate(expr.Left)
		if err != nil {
			return nil, err
		}
		if expr.Op.Kind == loxlang.TokenOr {
			if IsTruthy(left) {
				return left, nil
			}
		} else if !IsTruthy(left) {
			return left, nil
		}
		return i.Evaluate(expr.Right)

	case *loxlang.Variable:
		return i.env.Get(expr.Name.Lexeme, expr.Name.Line)

	case *loxlang.Assign:
		val, err := i.Evaluate(expr.Value)
		if err != nil {
			return nil, err
		}
		if err := i.env.Assign(expr.Name.Lexeme, val, expr.Name.Line); err != nil {
			return nil, err
		}
		return val, nil

	case *loxlang.Call:
		return i.call(expr)

	}
	return nil, fmt.Errorf("unknown expression: %T", expr)
}

func (i *Interpreter) call(expr *loxlang.Call) (Value, error) {
	callee, err := i.Evaluate(expr.Callee)
	if err != nil {
		return nil, err
	}
	args := make([]Value, 0, len(expr.Args))
	for _, arg := range expr.Args {
		val, err := i.Evaluate(arg)
		if err != nil {
			return nil, err
		}
		args = append(args, val)
	}
	fn, ok := callee.(Callable)
	if !ok {
		return nil, newError(ErrNotCallable, expr.Paren.Line,
			"can only call functions, got %s", describe(callee))
	}
	if len(args) != fn.Arity() {
		return nil, newError(ErrArity, expr.Paren.Line,
			"expected %d arguments but got %d", fn.Arity(), len(args))
	}
	return fn.Call(i, args)
}

func literalValue(tok loxlang.Token) (Value, error) {
	switch tok.Kind {
	case loxlang.TokenNumber:
		n, ok := tok.Value.(float64)
		if !ok {
			return nil, newError(ErrTypeMismatch, tok.Line, "bad number literal %s", tok.Lexeme)
		}
		return Number(n), nil
	case loxlang.TokenString:
		s, ok := tok.Value.(string)
		if !ok {
			return nil, newError(ErrTypeMismatch, tok.Line, "bad string literal %s", tok.Lexeme)
		}
		return String(s), nil
	case loxlang.TokenTrue:
		return Bool(true), nil
	case loxlang.TokenFalse:
		return Bool(false), nil
	case loxlang.TokenNil:
		return Nil{}, nil
	}
	return nil, fmt.Errorf("unhandled literal %s", tok.Lexeme)
}
