package loxlang

import (
	"fmt"
	"strings"
)

// Format renders a node as a parenthesized prefix expression, e.g. (+ 1 (* 2 3))
func Format(node Node) string {
	var sb strings.Builder
	format(&sb, node)
	return sb.String()
}

// FormatProgram renders statements one per line
func FormatProgram(stmts []Stmt) string {
	var sb strings.Builder
	for _, stmt := range stmts {
		format(&sb, stmt)
		sb.WriteString("\n")
	}
	return sb.String()
}

func format(sb *strings.Builder, node Node) {
	switch node := node.(type) {

	case *Literal:
		if node.Token.Kind == TokenString {
			fmt.Fprintf(sb, "%q", node.Token.Value)
		} else {
			sb.WriteString(node.Token.Lexeme)
		}

	case *Grouping:
		parenthesize(sb, "group", node.Inner)

	case *Unary:
		parenthesize(sb, node.Op.Lexeme, node.Operand)

	case *Binary:
		parenthesize(sb, node.Op.Lexeme, node.Left, node.Right)

	case *Logical:
		parenthesize(sb, node.Op.Lexeme, node.Left, node.Right)

	case *Variable:
		sb.WriteString(node.Name.Lexeme)

	case *Assign:
		sb.WriteString("(= ")
		sb.WriteString(node.Name.Lexeme)
		sb.WriteString(" ")
		format(sb, node.Value)
		sb.WriteString(")")

	case *Call:
		nodes := append([]Node{node.Callee}, exprNodes(node.Args)...)
		parenthesize(sb, "call", nodes...)

	case *ExprStmt:
		parenthesize(sb, ";", node.Expr)

	case *PrintStmt:
		parenthesize(sb, "print", node.Expr)

	case *VarStmt:
		sb.WriteString("(var ")
		sb.WriteString(node.Name.Lexeme)
		if node.Init != nil {
			sb.WriteString(" ")
			format(sb, node.Init)
		}
		sb.WriteString(")")

	case *BlockStmt:
		nodes := make([]Node, 0, len(node.Stmts))
		for _, stmt := range node.Stmts {
			nodes = append(nodes, stmt)
		}
		parenthesize(sb, "block", nodes...)

	case *IfStmt:
		if node.Else != nil {
			parenthesize(sb, "if", node.Cond, node.Then, node.Else)
		} else {
			parenthesize(sb, "if", node.Cond, node.Then)
		}

	case *WhileStmt:
		parenthesize(sb, "while", node.Cond, node.Body)

	default:
		fmt.Fprintf(sb, "<%T>", node)
	}
}

func parenthesize(sb *strings.Builder, name string, nodes ...Node) {
	sb.WriteString("(")
	sb.WriteString(name)
	for _, node := range nodes {
		sb.WriteString(" ")
		format(sb, node)
	}
	sb.WriteString(")")
}

func exprNodes(exprs []Expr) []Node {
	ret := make([]Node, 0, len(exprs))
	for _, expr := range exprs {
		ret = append(ret, expr)
	}
	return ret
}
