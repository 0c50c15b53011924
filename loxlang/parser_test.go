package loxlang

import (
	"strings"
	"testing"
)

func parseString(t *testing.T, src string) []Stmt {
	t.Helper()
	onError := func(err *Error) {
		t.Fatalf("src: %s, err: %v", src, err)
	}
	stmts, err := Parse(Scan(src, onError), onError)
	if err != nil {
		t.Fatalf("src: %s, err: %v", src, err)
	}
	return stmts
}

func TestParseExpressions(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{"1 + 2 * 3;", "(; (+ 1 (* 2 3)))"},
		{"(1 + 2) * 3;", "(; (* (group (+ 1 2)) 3))"},
		{"10 - 3 - 2;", "(; (- (- 10 3) 2))"},
		{"8 / 4 / 2;", "(; (/ (/ 8 4) 2))"},
		{"1 < 2 == 3 >= 4;", "(; (== (< 1 2) (>= 3 4)))"},
		{"a != b != c;", "(; (!= (!= a b) c))"},
		{"-!x;", "(; (- (! x)))"},
		{"!!true;", "(; (! (! true)))"},
		{"a = b = 1;", "(; (= a (= b 1)))"},
		{"a or b and c;", "(; (or a (and b c)))"},
		{"a and b or c and d;", "(; (or (and a b) (and c d)))"},
		{"a or b or c;", "(; (or (or a b) c))"},
		{`"str" + nil;`, `(; (+ "str" nil))`},
		{"clock();", "(; (call clock))"},
		{"f(1, 2)(3);", "(; (call (call f 1 2) 3))"},
		{"-f(1);", "(; (- (call f 1)))"},
	}
	for _, test := range tests {
		stmts := parseString(t, test.src)
		if len(stmts) != 1 {
			t.Fatalf("src: %s, got %d statements", test.src, len(stmts))
		}
		if got := Format(stmts[0]); got != test.expected {
			t.Fatalf("src: %s, expected %s, got %s", test.src, test.expected, got)
		}
	}
}

func TestParseStatements(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{"print 1;", "(print 1)"},
		{"var a;", "(var a)"},
		{"var a = 1 + 2;", "(var a (+ 1 2))"},
		{"{ var a = 1; print a; }", "(block (var a 1) (print a))"},
		{"{}", "(block)"},
		{"if (a) print 1;", "(if a (print 1))"},
		{"if (a) print 1; else print 2;", "(if a (print 1) (print 2))"},
		{"if (a) if (b) print 1; else print 2;", "(if a (if b (print 1) (print 2)))"},
		{"while (a < 3) a = a + 1;", "(while (< a 3) (; (= a (+ a 1))))"},
		{
			"for (var i = 0; i < 3; i = i + 1) print i;",
			"(block (var i 0) (while (< i 3) (block (print i) (; (= i (+ i 1))))))",
		},
		{"for (;;) print 1;", "(while true (print 1))"},
		{"for (i = 0; i < 1;) print i;", "(block (; (= i 0)) (while (< i 1) (print i)))"},
	}
	for _, test := range tests {
		stmts := parseString(t, test.src)
		if len(stmts) != 1 {
			t.Fatalf("src: %s, got %d statements", test.src, len(stmts))
		}
		if got := Format(stmts[0]); got != test.expected {
			t.Fatalf("src: %s, expected %s, got %s", test.src, test.expected, got)
		}
	}
}

func TestParseProgram(t *testing.T) {
	stmts := parseString(t, `
		var a = "global";
		{
			var a = "inner";
			print a;
		}
		print a;
	`)
	expected := `(var a "global")
(block (var a "inner") (print a))
(print a)
`
	if got := FormatProgram(stmts); got != expected {
		t.Fatalf("got %s", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{"1 + ;", "[line 1] Error at ';': expect expression"},
		{"print 1", "[line 1] Error at end: expect ';' after value"},
		{"var 1 = 2;", "[line 1] Error at '1': expect variable name"},
		{"1 = 2;", "[line 1] Error at '=': invalid assignment target"},
		{"(a) = 2;", "[line 1] Error at '=': invalid assignment target"},
		{"a + b = c;", "[line 1] Error at '=': invalid assignment target"},
		{"(1 + 2;", "[line 1] Error at ';': expect ')' after expression"},
		{"if 1) print 1;", "[line 1] Error at '1': expect '(' after 'if'"},
		{"while (true print 1;", "[line 1] Error at 'print': expect ')' after condition"},
		{"{ print 1;", "[line 1] Error at end: expect '}' after block"},
		{"print 1;\n\nprint ;", "[line 3] Error at ';': expect expression"},
		{"fun f() {}", "[line 1] Error at 'fun': expect expression"},
		{"f(1, 2;", "[line 1] Error at ';': expect ')' after arguments"},
	}
	for _, test := range tests {
		var reported []*Error
		stmts, err := Parse(Scan(test.src, nil), func(err *Error) {
			reported = append(reported, err)
		})
		if err == nil {
			t.Fatalf("src: %s, should error", test.src)
		}
		if stmts != nil {
			t.Fatalf("src: %s, got %v", test.src, stmts)
		}
		if err.Error() != test.expected {
			t.Fatalf("src: %s, expected %s, got %s", test.src, test.expected, err.Error())
		}
		if len(reported) != 1 || reported[0] != err {
			t.Fatalf("src: %s, reported %v", test.src, reported)
		}
	}
}

func TestParseStopsAtFirstError(t *testing.T) {
	var reported []*Error
	_, err := Parse(Scan("print ; print ; print 1;", nil), func(err *Error) {
		reported = append(reported, err)
	})
	if err == nil {
		t.Fatal("should error")
	}
	if len(reported) != 1 {
		t.Fatalf("got %v", reported)
	}
}

func TestSynchronize(t *testing.T) {
	p := NewParser(Scan("1 + + 2; print 3; var x = 1;", nil), nil)
	if _, err := p.declaration(); err == nil {
		t.Fatal("should error")
	}
	p.synchronize()
	// recovered at the statement after ';'
	stmt, err := p.declaration()
	if err != nil {
		t.Fatal(err)
	}
	if got := Format(stmt); got != "(print 3)" {
		t.Fatalf("got %s", got)
	}

	p = NewParser(Scan("1 + + 2 var x = 1;", nil), nil)
	if _, err := p.declaration(); err == nil {
		t.Fatal("should error")
	}
	p.synchronize()
	// recovered at 'var' keyword
	stmt, err = p.declaration()
	if err != nil {
		t.Fatal(err)
	}
	if got := Format(stmt); got != "(var x 1)" {
		t.Fatalf("got %s", got)
	}
}

func TestSynchronizeOnceInBlock(t *testing.T) {
	p := NewParser(Scan("{ { print 1 + ; } } print 2;", nil), nil)
	stmts, err := p.Parse()
	if err == nil {
		t.Fatal("should error")
	}
	if stmts != nil {
		t.Fatalf("got %v", stmts)
	}
	// one skip past the failing ';', nested blocks do not skip again
	if got := p.peek().Kind; got != TokenRightBrace {
		t.Fatalf("got %v", got)
	}
	if p.current != 6 {
		t.Fatalf("got %d", p.current)
	}
}

func TestParseWithoutEOF(t *testing.T) {
	tokens := []Token{
		{Kind: TokenPrint, Lexeme: "print", Line: 1},
		{Kind: TokenNumber, Lexeme: "1", Line: 1, Value: 1.0},
		{Kind: TokenSemicolon, Lexeme: ";", Line: 1},
	}
	stmts, err := Parse(tokens, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(stmts) != 1 {
		t.Fatalf("got %v", stmts)
	}
	if len(tokens) != 3 {
		t.Fatal("input tokens modified")
	}
}

func TestFormatDeepNesting(t *testing.T) {
	src := strings.Repeat("(", 100) + "1" + strings.Repeat(")", 100) + ";"
	stmts := parseString(t, src)
	got := Format(stmts[0])
	if strings.Count(got, "group") != 100 {
		t.Fatalf("got %s", got)
	}
}
