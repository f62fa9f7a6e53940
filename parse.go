package matcalc

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

type NodeType int

const (
	NodeLiteral NodeType = iota
	NodeAdd
	NodeSub
	NodeMul
	NodeTranspose
	NodeGroup
)

func (t NodeType) String() string {
	switch t {
	case NodeLiteral:
		return "literal"
	case NodeAdd:
		return "add"
	case NodeSub:
		return "sub"
	case NodeMul:
		return "mul"
	case NodeTranspose:
		return "transpose"
	case NodeGroup:
		return "group"
	}
	return fmt.Sprintf("NodeType(%d)", int(t))
}

// Node is an expression tree node. Literals carry their matrix in m; unary
// nodes (transpose, group) keep their operand in lhs.
type Node struct {
	t   NodeType
	pos int
	m   Matrix
	lhs *Node
	rhs *Node
}

func (n *Node) Type() NodeType {
	return n.t
}

// Pos returns the byte offset of the token that introduced the node: the
// operator for operations, the opening bracket for literals and groups.
func (n *Node) Pos() int {
	return n.pos
}

func (n *Node) String() string {
	if n == nil {
		return ""
	}
	var buf bytes.Buffer
	switch n.t {
	case NodeLiteral:
		fmt.Fprint(&buf, n.m)
	case NodeAdd:
		fmt.Fprintf(&buf, "%v + %v", n.lhs, n.rhs)
	case NodeSub:
		fmt.Fprintf(&buf, "%v - %v", n.lhs, n.rhs)
	case NodeMul:
		fmt.Fprintf(&buf, "%v * %v", n.lhs, n.rhs)
	case NodeTranspose:
		fmt.Fprintf(&buf, "t%v", n.lhs)
	case NodeGroup:
		fmt.Fprintf(&buf, "(%v)", n.lhs)
	}
	return buf.String()
}

// Parse parses the expression s.
func Parse(s string) (*Node, error) {
	return NewParser(strings.NewReader(s)).Parse()
}

func NewParser(r io.Reader) *Parser {
	return &Parser{
		lex: NewLexer(r),
	}
}

// Parser reads a single expression:
//
//	Sum     := Product (('+' | '-') Product)*
//	Product := Unary ('*' Unary)*
//	Unary   := 't' Unary | '(' Sum ')' | '[' Row ';' Row ';' Row ']'
//	Row     := Number ',' Number ',' Number
type Parser struct {
	lex    *Lexer
	tok    Token
	peeked bool
}

func (p *Parser) peek() (Token, error) {
	if !p.peeked {
		tok, err := p.lex.Next()
		if err != nil {
			return Token{}, err
		}
		p.tok = tok
		p.peeked = true
	}
	return p.tok, nil
}

func (p *Parser) next() (Token, error) {
	tok, err := p.peek()
	if err != nil {
		return Token{}, err
	}
	p.peeked = false
	return tok, nil
}

func (p *Parser) expect(k Kind) (Token, error) {
	tok, err := p.next()
	if err != nil {
		return Token{}, err
	}
	if tok.Kind != k {
		return Token{}, &SyntaxError{Got: tok, Want: []Kind{k}}
	}
	return tok, nil
}

// Parse reads a complete expression. Anything left after it is an error.
func (p *Parser) Parse() (*Node, error) {
	node, err := p.ParseSum()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(EOF); err != nil {
		return nil, err
	}
	return node, nil
}

func (p *Parser) ParseSum() (*Node, error) {
	lhs, err := p.ParseProduct()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		var t NodeType
		switch tok.Kind {
		case Plus:
			t = NodeAdd
		case Minus:
			t = NodeSub
		default:
			return lhs, nil
		}
		p.next()
		rhs, err := p.ParseProduct()
		if err != nil {
			return nil, err
		}
		lhs = &Node{t: t, pos: tok.Pos, lhs: lhs, rhs: rhs}
	}
}

func (p *Parser) ParseProduct() (*Node, error) {
	lhs, err := p.ParseUnary()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind != Times {
			return lhs, nil
		}
		p.next()
		rhs, err := p.ParseUnary()
		if err != nil {
			return nil, err
		}
		lhs = &Node{t: NodeMul, pos: tok.Pos, lhs: lhs, rhs: rhs}
	}
}

func (p *Parser) ParseUnary() (*Node, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case Transpose:
		x, err := p.ParseUnary()
		if err != nil {
			return nil, err
		}
		return &Node{t: NodeTranspose, pos: tok.Pos, lhs: x}, nil
	case LParen:
		x, err := p.ParseSum()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RParen); err != nil {
			return nil, err
		}
		return &Node{t: NodeGroup, pos: tok.Pos, lhs: x}, nil
	case LBracket:
		return p.parseLiteral(tok.Pos)
	}
	return nil, &SyntaxError{Got: tok, Want: []Kind{Transpose, LParen, LBracket}}
}

func (p *Parser) parseLiteral(pos int) (*Node, error) {
	var rows [3][3]int64
	for i := range rows {
		if i > 0 {
			if _, err := p.expect(Semicolon); err != nil {
				return nil, err
			}
		}
		row, err := p.parseRow()
		if err != nil {
			return nil, err
		}
		rows[i] = row
	}
	if _, err := p.expect(RBracket); err != nil {
		return nil, err
	}
	return &Node{t: NodeLiteral, pos: pos, m: FromRows(rows)}, nil
}

func (p *Parser) parseRow() ([3]int64, error) {
	var row [3]int64
	for i := range row {
		if i > 0 {
			if _, err := p.expect(Comma); err != nil {
				return row, err
			}
		}
		tok, err := p.expect(Number)
		if err != nil {
			return row, err
		}
		row[i] = tok.Value
	}
	return row, nil
}
