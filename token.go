package matcalc

import (
	"fmt"
)

type Kind int

const (
	EOF Kind = iota
	Number
	Plus
	Minus
	Times
	Comma
	Semicolon
	LBracket
	RBracket
	LParen
	RParen
	Transpose
)

var kindNames = [...]string{
	EOF:       "end of input",
	Number:    "number",
	Plus:      "'+'",
	Minus:     "'-'",
	Times:     "'*'",
	Comma:     "','",
	Semicolon: "';'",
	LBracket:  "'['",
	RBracket:  "']'",
	LParen:    "'('",
	RParen:    "')'",
	Transpose: "'t'",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Token is a lexical unit. Value is set only for Number tokens; Pos is the
// byte offset of the token in the input.
type Token struct {
	Kind  Kind
	Value int64
	Pos   int
}

func (t Token) String() string {
	if t.Kind == Number {
		return fmt.Sprintf("number %d", t.Value)
	}
	return t.Kind.String()
}
