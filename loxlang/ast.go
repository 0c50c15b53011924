package loxlang

type Node interface {
	node()
}

type Expr interface {
	Node
	expr()
}

type Stmt interface {
	Node
	stmt()
}

type (
	Literal struct {
		Token Token
	}

	Grouping struct {
		Inner Expr
	}

	Unary struct {
		Op      Token
		Operand Expr
	}

	Binary struct {
		Left  Expr
		Op    Token
		Right Expr
	}

	// Logical is a short-circuiting and / or
	Logical struct {
		Left  Expr
		Op    Token
		Right Expr
	}

	Variable struct {
		Name Token
	}

	Assign struct {
		Name  Token
		Value Expr
	}

	Call struct {
		Callee Expr
		Paren  Token
		Args   []Expr
	}
)

type (
	ExprStmt struct {
		Expr Expr
	}

	PrintStmt struct {
		Expr Expr
	}

	VarStmt struct {
		Name Token
		Init Expr // may be nil
	}

	BlockStmt struct {
		Stmts []Stmt
	}

	IfStmt struct {
		Cond Expr
		Then Stmt
		Else Stmt // may be nil
	}

	WhileStmt struct {
		Cond Expr
		Body Stmt
	}
)

func (*Literal) node()  {}
func (*Grouping) node() {}
func (*Unary) node()    {}
func (*Binary) node()   {}
func (*Logical) node()  {}
func (*Variable) node() {}
func (*Assign) node()   {}
func (*Call) node()     {}

func (*Literal) expr()  {}
func (*Grouping) expr() {}
func (*Unary) expr()    {}
func (*Binary) expr()   {}
func (*Logical) expr()  {}
func (*Variable) expr() {}
func (*Assign) expr()   {}
func (*Call) expr()     {}

func (*ExprStmt) node()  {}
func (*PrintStmt) node() {}
func (*VarStmt) node()   {}
func (*BlockStmt) node() {}
func (*IfStmt) node()    {}
func (*WhileStmt) node() {}

func (*ExprStmt) stmt()  {}
func (*PrintStmt) stmt() {}
func (*VarStmt) stmt()   {}
func (*BlockStmt) stmt() {}
func (*IfStmt) stmt()    {}
func (*WhileStmt) stmt() {}
