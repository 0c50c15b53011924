package loxlang

const maxArgs = 255

type Parser struct {
	tokens  []Token
	current int
	onError ErrorHandler
}

func NewParser(tokens []Token, onError ErrorHandler) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != TokenEOF {
		line := 1
		if len(tokens) > 0 {
			line = tokens[len(tokens)-1].Line
		}
		tokens = append(tokens[:len(tokens):len(tokens)], Token{
			Kind: TokenEOF,
			Line: line,
		})
	}
	return &Parser{
		tokens:  tokens,
		onError: onError,
	}
}

// Parse builds the statement list of a program.
// Parsing stops at the first declaration that fails; the error is reported to onError and returned.
func Parse(tokens []Token, onError ErrorHandler) ([]Stmt, error) {
	return NewParser(tokens, onError).Parse()
}

func (p *Parser) Parse() ([]Stmt, error) {
	var stmts []Stmt
	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			if p.onError != nil {
				p.onError(err)
			}
			p.synchronize()
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func (p *Parser) declaration() (Stmt, *Error) {
	if p.match(TokenVar) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *Parser) varDeclaration() (Stmt, *Error) {
	name, err := p.consume(TokenIdentifier, "expect variable name")
	if err != nil {
		return nil, err
	}
	var init Expr
	if p.match(TokenEqual) {
		init, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(TokenSemicolon, "expect ';' after variable declaration"); err != nil {
		return nil, err
	}
	return &VarStmt{
		Name: name,
		Init: init,
	}, nil
}

func (p *Parser) statement() (Stmt, *Error) {
	switch {
	case p.match(TokenFor):
		return p.forStatement()
	case p.match(TokenIf):
		return p.ifStatement()
	case p.match(TokenPrint):
		return p.printStatement()
	case p.match(TokenWhile):
		return p.whileStatement()
	case p.match(TokenLeftBrace):
		stmts, err := p.block()
		if err != nil {
			return nil, err
		}
		return &BlockStmt{
			Stmts: stmts,
		}, nil
	}
	return p.expressionStatement()
}

// forStatement desugars into { init; while (cond) { body; incr; } }
func (p *Parser) forStatement() (Stmt, *Error) {
	if _, err := p.consume(TokenLeftParen, "expect '(' after 'for'"); err != nil {
		return nil, err
	}

	var init Stmt
	var err *Error
	switch {
	case p.match(TokenSemicolon):
	case p.match(TokenVar):
		init, err = p.varDeclaration()
	default:
		init, err = p.expressionStatement()
	}
	if err != nil {
		return nil, err
	}

	var cond Expr
	if !p.check(TokenSemicolon) {
		cond, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(TokenSemicolon, "expect ';' after loop condition"); err != nil {
		return nil, err
	}

	var incr Expr
	if !p.check(TokenRightParen) {
		incr, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	rightParen, err := p.consume(TokenRightParen, "expect ')' after for clauses")
	if err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	if incr != nil {
		body = &BlockStmt{
			Stmts: []Stmt{
				body,
				&ExprStmt{Expr: incr},
			},
		}
	}
	if cond == nil {
		cond = &Literal{
			Token: Token{
				Kind:   TokenTrue,
				Lexeme: "true",
				Line:   rightParen.Line,
			},
		}
	}
	body = &WhileStmt{
		Cond: cond,
		Body: body,
	}
	if init != nil {
		body = &BlockStmt{
			Stmts: []Stmt{init, body},
		}
	}
	return body, nil
}

func (p *Parser) ifStatement() (Stmt, *Error) {
	if _, err := p.consume(TokenLeftParen, "expect '(' after 'if'"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TokenRightParen, "expect ')' after if condition"); err != nil {
		return nil, err
	}
	then, err := p.statement()
	if err != nil {
		return nil, err
	}
	var els Stmt
	if p.match(TokenElse) {
		els, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return &IfStmt{
		Cond: cond,
		Then: then,
		Else: els,
	}, nil
}

func (p *Parser) printStatement() (Stmt, *Error) {
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TokenSemicolon, "expect ';' after value"); err != nil {
		return nil, err
	}
	return &PrintStmt{
		Expr: value,
	}, nil
}

func (p *Parser) whileStatement() (Stmt, *Error) {
	if _, err := p.consume(TokenLeftParen, "expect '(' after 'while'"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TokenRightParen, "expect ')' after condition"); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &WhileStmt{
		Cond: cond,
		Body: body,
	}, nil
}

func (p *Parser) block() ([]Stmt, *Error) {
	var stmts []Stmt
	for !p.check(TokenRightBrace) && !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.consume(TokenRightBrace, "expect '}' after block"); err != nil {
		return nil, err
	}
	return stmts, nil
}

func (p *Parser) expressionStatement() (Stmt, *Error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(TokenSemicolon, "expect ';' after expression"); err != nil {
		return nil, err
	}
	return &ExprStmt{
		Expr: expr,
	}, nil
}

func (p *Parser) expression() (Expr, *Error) {
	return p.assignment()
}

func (p *Parser) assignment() (Expr, *Error) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}
	if !p.match(TokenEqual) {
		return expr, nil
	}
	equals := p.previous()
	value, err := p.assignment()
	if err != nil {
		return nil, err
	}
	variable, ok := expr.(*Variable)
	if !ok {
		return nil, errorAt(equals, "invalid assignment target")
	}
	return &Assign{
		Name:  variable.Name,
		Value: value,
	}, nil
}

func (p *Parser) or() (Expr, *Error) {
	return p.logical(p.and, TokenOr)
}

func (p *Parser) and() (Expr, *Error) {
	return p.logical(p.equality, TokenAnd)
}

func (p *Parser) logical(operand func() (Expr, *Error), kind TokenKind) (Expr, *Error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for p.match(kind) {
		op := p.previous()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = &Logical{
			Left:  expr,
			Op:    op,
			Right: right,
		}
	}
	return expr, nil
}

func (p *Parser) equality() (Expr, *Error) {
	return p.binary(p.comparison, TokenBangEqual, TokenEqualEqual)
}

func (p *Parser) comparison() (Expr, *Error) {
	return p.binary(p.term, TokenGreater, TokenGreaterEqual, TokenLess, TokenLessEqual)
}

func (p *Parser) term() (Expr, *Error) {
	return p.binary(p.factor, TokenMinus, TokenPlus)
}

func (p *Parser) factor() (Expr, *Error) {
	return p.binary(p.unary, TokenSlash, TokenStar)
}

// binary parses a left-associative level
func (p *Parser) binary(operand func() (Expr, *Error), kinds ...TokenKind) (Expr, *Error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for p.match(kinds...) {
		op := p.previous()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = &Binary{
			Left:  expr,
			Op:    op,
			Right: right,
		}
	}
	return expr, nil
}

func (p *Parser) unary() (Expr, *Error) {
	if p.match(TokenBang, TokenMinus) {
		op := p.previous()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &Unary{
			Op:      op,
			Operand: operand,
		}, nil
	}
	return p.call()
}

func (p *Parser) call() (Expr, *Error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.match(TokenLeftParen) {
		expr, err = p.finishCall(expr)
		if err != nil {
			return nil, err
		}
	}
	return expr, nil
}

func (p *Parser) finishCall(callee Expr) (Expr, *Error) {
	var args []Expr
	if !p.check(TokenRightParen) {
		for {
			if len(args) >= maxArgs {
				return nil, errorAt(p.peek(), "can't have more than 255 arguments")
			}
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(TokenComma) {
				break
			}
		}
	}
	paren, err := p.consume(TokenRightParen, "expect ')' after arguments")
	if err != nil {
		return nil, err
	}
	return &Call{
		Callee: callee,
		Paren:  paren,
		Args:   args,
	}, nil
}

func (p *Parser) primary() (Expr, *Error) {
	switch {
	case p.match(TokenFalse, TokenTrue, TokenNil, TokenNumber, TokenString):
		return &Literal{
			Token: p.previous(),
		}, nil

	case p.match(TokenIdentifier):
		return &Variable{
			Name: p.previous(),
		}, nil

	case p.match(TokenLeftParen):
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(TokenRightParen, "expect ')' after expression"); err != nil {
			return nil, err
		}
		return &Grouping{
			Inner: inner,
		}, nil
	}
	return nil, errorAt(p.peek(), "expect expression")
}

// synchronize discards tokens until a likely statement boundary
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == TokenSemicolon {
			return
		}
		switch p.peek().Kind {
		case TokenClass, TokenFun, TokenVar, TokenFor,
			TokenIf, TokenWhile, TokenPrint, TokenReturn:
			return
		}
		p.advance()
	}
}

func (p *Parser) match(kinds ...TokenKind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(kind TokenKind, message string) (Token, *Error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return Token{}, errorAt(p.peek(), message)
}

func (p *Parser) check(kind TokenKind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == TokenEOF
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() Token {
	if p.current == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.current-1]
}
