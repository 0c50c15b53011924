package loxlang

import (
	"strconv"
	"unicode/utf8"
)

type Scanner struct {
	source  string
	tokens  []Token
	start   int
	current int
	line    int

	onError  ErrorHandler
	hadError bool
}

func NewScanner(source string, onError ErrorHandler) *Scanner {
	return &Scanner{
		source:  source,
		line:    1,
		onError: onError,
	}
}

// Scan tokenizes source. Lexical errors go to onError and scanning goes on.
func Scan(source string, onError ErrorHandler) []Token {
	return NewScanner(source, onError).ScanTokens()
}

func (s *Scanner) HadError() bool {
	return s.hadError
}

func (s *Scanner) ScanTokens() []Token {
	for !s.isAtEnd() {
		s.start = s.current
		s.scanToken()
	}
	s.tokens = append(s.tokens, Token{
		Kind: TokenEOF,
		Line: s.line,
	})
	return s.tokens
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	case '(':
		s.addToken(TokenLeftParen)
	case ')':
		s.addToken(TokenRightParen)
	case '{':
		s.addToken(TokenLeftBrace)
	case '}':
		s.addToken(TokenRightBrace)
	case ',':
		s.addToken(TokenComma)
	case '.':
		s.addToken(TokenDot)
	case '-':
		s.addToken(TokenMinus)
	case '+':
		s.addToken(TokenPlus)
	case ';':
		s.addToken(TokenSemicolon)
	case '*':
		s.addToken(TokenStar)

	case '!':
		s.addToken(s.pick('=', TokenBangEqual, TokenBang))
	case '=':
		s.addToken(s.pick('=', TokenEqualEqual, TokenEqual))
	case '<':
		s.addToken(s.pick('=', TokenLessEqual, TokenLess))
	case '>':
		s.addToken(s.pick('=', TokenGreaterEqual, TokenGreater))

	case '/':
		if s.match('/') {
			for s.peek() != '\n' && !s.isAtEnd() {
				s.advance()
			}
		} else {
			s.addToken(TokenSlash)
		}

	case ' ', '\r', '\t':
	case '\n':
		s.line++

	case '"':
		s.scanString()

	default:
		switch {
		case isDigit(c):
			s.scanNumber()
		case isAlpha(c):
			s.scanIdentifier()
		default:
			// report the whole rune, not one byte of it
			r, size := utf8.DecodeRuneInString(s.source[s.start:])
			s.current = s.start + size
			s.error("unexpected character " + strconv.QuoteRune(r))
		}
	}
}

func (s *Scanner) scanString() {
	for s.peek() != '"' && !s.isAtEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}
	if s.isAtEnd() {
		s.error("unterminated string")
		return
	}
	// closing quote
	s.advance()
	s.addTokenValue(TokenString, s.source[s.start+1:s.current-1])
}

func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	n, err := strconv.ParseFloat(s.source[s.start:s.current], 64)
	if err != nil {
		s.error("invalid number: " + err.Error())
		return
	}
	s.addTokenValue(TokenNumber, n)
}

func (s *Scanner) scanIdentifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	text := s.source[s.start:s.current]
	if kind, ok := keywords[text]; ok {
		s.addToken(kind)
		return
	}
	s.addToken(TokenIdentifier)
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	return c
}

func (s *Scanner) match(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) pick(expected byte, matched, otherwise TokenKind) TokenKind {
	if s.match(expected) {
		return matched
	}
	return otherwise
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) addToken(kind TokenKind) {
	s.addTokenValue(kind, nil)
}

func (s *Scanner) addTokenValue(kind TokenKind, value any) {
	s.tokens = append(s.tokens, Token{
		Kind:   kind,
		Lexeme: s.source[s.start:s.current],
		Line:   s.line,
		Value:  value,
	})
}

func (s *Scanner) error(message string) {
	s.hadError = true
	if s.onError != nil {
		s.onError(&Error{
			Line:    s.line,
			Message: message,
		})
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c == '_'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
