package matcalc

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"
)

// Lexer splits an expression into tokens on demand. A Lexer reads its input
// once; use a new Lexer for every expression.
type Lexer struct {
	buf  *bufio.Reader
	pos  int
	last int
}

func NewLexer(r io.Reader) *Lexer {
	return &Lexer{
		buf: bufio.NewReader(r),
	}
}

func (l *Lexer) Pos() int {
	return l.pos
}

func (l *Lexer) readRune() (rune, error) {
	r, n, err := l.buf.ReadRune()
	l.pos += n
	l.last = n
	return r, err
}

func (l *Lexer) unreadRune() error {
	err := l.buf.UnreadRune()
	if err == nil {
		l.pos -= l.last
		l.last = 0
	}
	return err
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func (l *Lexer) skipWhite() error {
	for {
		r, err := l.readRune()
		if err != nil {
			return err
		}
		if r != ' ' && r != '\t' && r != '\n' {
			return l.unreadRune()
		}
	}
}

// Next returns the next token. Once the input is exhausted it returns an EOF
// token on every call.
func (l *Lexer) Next() (Token, error) {
	if err := l.skipWhite(); err != nil {
		if err == io.EOF {
			return Token{Kind: EOF, Pos: l.pos}, nil
		}
		return Token{}, err
	}

	start := l.pos
	r, err := l.readRune()
	if err != nil {
		return Token{}, err
	}

	var kind Kind
	switch {
	case r == '+':
		kind = Plus
	case r == '-':
		n, err := l.readRune()
		if err == nil && isDigit(n) {
			return l.scanNumber(start, []byte{'-', byte(n)})
		}
		if err == nil {
			l.unreadRune()
		} else if err != io.EOF {
			return Token{}, err
		}
		kind = Minus
	case r == '*':
		kind = Times
	case r == ',':
		kind = Comma
	case r == ';':
		kind = Semicolon
	case r == '[':
		kind = LBracket
	case r == ']':
		kind = RBracket
	case r == '(':
		kind = LParen
	case r == ')':
		kind = RParen
	case r == 't':
		kind = Transpose
	case isDigit(r):
		return l.scanNumber(start, []byte{byte(r)})
	default:
		return Token{}, &LexError{Pos: start, Char: r}
	}
	return Token{Kind: kind, Pos: start}, nil
}

func (l *Lexer) scanNumber(start int, prefix []byte) (Token, error) {
	buf := bytes.NewBuffer(prefix)
	for {
		r, err := l.readRune()
		if err != nil {
			if err == io.EOF {
				break
			}
			return Token{}, err
		}
		if !isDigit(r) {
			l.unreadRune()
			break
		}
		buf.WriteRune(r)
	}

	s := buf.String()
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) {
			err = ne.Err
		}
		return Token{}, &LexError{Pos: start, Text: s, Err: err}
	}
	return Token{Kind: Number, Value: v, Pos: start}, nil
}

// Tokenize returns every token of s, ending with the EOF token.
func Tokenize(s string) ([]Token, error) {
	l := NewLexer(strings.NewReader(s))
	var toks []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks, nil
		}
	}
}
