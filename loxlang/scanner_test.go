package loxlang

import (
	"strings"
	"testing"
)

func TestScanner(t *testing.T) {
	type TokenInfo struct {
		Kind   TokenKind
		Lexeme string
	}

	tests := []struct {
		input  string
		tokens []TokenInfo
	}{
		{
			input:  "",
			tokens: nil,
		},
		{
			input: "(){},.-+;/*",
			tokens: []TokenInfo{
				{TokenLeftParen, "("},
				{TokenRightParen, ")"},
				{TokenLeftBrace, "{"},
				{TokenRightBrace, "}"},
				{TokenComma, ","},
				{TokenDot, "."},
				{TokenMinus, "-"},
				{TokenPlus, "+"},
				{TokenSemicolon, ";"},
				{TokenSlash, "/"},
				{TokenStar, "*"},
			},
		},
		{
			input: "! != = == > >= < <=",
			tokens: []TokenInfo{
				{TokenBang, "!"},
				{TokenBangEqual, "!="},
				{TokenEqual, "="},
				{TokenEqualEqual, "=="},
				{TokenGreater, ">"},
				{TokenGreaterEqual, ">="},
				{TokenLess, "<"},
				{TokenLessEqual, "<="},
			},
		},
		{
			input: "a / b // comment until end of line\nc",
			tokens: []TokenInfo{
				{TokenIdentifier, "a"},
				{TokenSlash, "/"},
				{TokenIdentifier, "b"},
				{TokenIdentifier, "c"},
			},
		},
		{
			input: "123 45.67 8. .5",
			tokens: []TokenInfo{
				{TokenNumber, "123"},
				{TokenNumber, "45.67"},
				{TokenNumber, "8"},
				{TokenDot, "."},
				{TokenDot, "."},
				{TokenNumber, "5"},
			},
		},
		{
			input: `"hello" "multi
line"`,
			tokens: []TokenInfo{
				{TokenString, `"hello"`},
				{TokenString, "\"multi\nline\""},
			},
		},
		{
			input: "and class else false for fun if nil or print return super this true var while",
			tokens: []TokenInfo{
				{TokenAnd, "and"},
				{TokenClass, "class"},
				{TokenElse, "else"},
				{TokenFalse, "false"},
				{TokenFor, "for"},
				{TokenFun, "fun"},
				{TokenIf, "if"},
				{TokenNil, "nil"},
				{TokenOr, "or"},
				{TokenPrint, "print"},
				{TokenReturn, "return"},
				{TokenSuper, "super"},
				{TokenThis, "this"},
				{TokenTrue, "true"},
				{TokenVar, "var"},
				{TokenWhile, "while"},
			},
		},
		{
			input: "_foo bar_1 orchid variable",
			tokens: []TokenInfo{
				{TokenIdentifier, "_foo"},
				{TokenIdentifier, "bar_1"},
				{TokenIdentifier, "orchid"},
				{TokenIdentifier, "variable"},
			},
		},
	}

	for _, test := range tests {
		tokens := Scan(test.input, func(err *Error) {
			t.Fatalf("input: %q, unexpected error: %v", test.input, err)
		})
		if len(tokens) != len(test.tokens)+1 {
			t.Fatalf("input: %q, got %v", test.input, tokens)
		}
		for i, expected := range test.tokens {
			tok := tokens[i]
			if tok.Kind != expected.Kind || tok.Lexeme != expected.Lexeme {
				t.Fatalf("input: %q, token %d: expected %v %q, got %v %q",
					test.input, i, expected.Kind, expected.Lexeme, tok.Kind, tok.Lexeme)
			}
		}
		if last := tokens[len(tokens)-1]; last.Kind != TokenEOF {
			t.Fatalf("input: %q, last token %v", test.input, last)
		}
	}
}

func TestScannerLiteralValues(t *testing.T) {
	tokens := Scan(`12.5 "str" name`, nil)
	if v, ok := tokens[0].Value.(float64); !ok || v != 12.5 {
		t.Fatalf("got %#v", tokens[0].Value)
	}
	if v, ok := tokens[1].Value.(string); !ok || v != "str" {
		t.Fatalf("got %#v", tokens[1].Value)
	}
	if tokens[2].Value != nil {
		t.Fatalf("got %#v", tokens[2].Value)
	}
}

func TestScannerLines(t *testing.T) {
	tokens := Scan("a\nb\n\"x\ny\"\nc", nil)
	lines := []int{1, 2, 4, 5, 5}
	for i, line := range lines {
		if tokens[i].Line != line {
			t.Fatalf("token %v: expected line %d, got %d", tokens[i], line, tokens[i].Line)
		}
	}
}

func TestScannerErrors(t *testing.T) {
	var errs []*Error
	scanner := NewScanner("var a = 1 @ 2;\n\"open", func(err *Error) {
		errs = append(errs, err)
	})
	tokens := scanner.ScanTokens()
	if !scanner.HadError() {
		t.Fatal("should have error")
	}
	if len(errs) != 2 {
		t.Fatalf("got %v", errs)
	}
	if errs[0].Line != 1 || !strings.Contains(errs[0].Message, "unexpected character '@'") {
		t.Fatalf("got %v", errs[0])
	}
	if errs[1].Line != 2 || errs[1].Message != "unterminated string" {
		t.Fatalf("got %v", errs[1])
	}
	if errs[1].Error() != "[line 2] Error: unterminated string" {
		t.Fatalf("got %v", errs[1].Error())
	}

	// scanning continued past the bad character
	var kinds []TokenKind
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	expected := []TokenKind{
		TokenVar, TokenIdentifier, TokenEqual, TokenNumber, TokenNumber, TokenSemicolon, TokenEOF,
	}
	if len(kinds) != len(expected) {
		t.Fatalf("got %v", kinds)
	}
	for i := range expected {
		if kinds[i] != expected[i] {
			t.Fatalf("got %v", kinds)
		}
	}
}

func TestScannerMultibyteCharacter(t *testing.T) {
	var errs []*Error
	tokens := Scan("a é b", func(err *Error) {
		errs = append(errs, err)
	})
	if len(errs) != 1 {
		t.Fatalf("got %v", errs)
	}
	if len(tokens) != 3 {
		t.Fatalf("got %v", tokens)
	}
}
