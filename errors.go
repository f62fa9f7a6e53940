package matcalc

import (
	"fmt"
	"strings"
)

// LexError reports input the lexer could not turn into a token: either a
// character that starts no token, or a number outside the int64 range.
type LexError struct {
	Pos  int
	Char rune
	Text string
	Err  error
}

func (e *LexError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid number: %s (%d): %v", e.Text, e.Pos, e.Err)
	}
	return fmt.Sprintf("invalid token: '%c' (%d)", e.Char, e.Pos)
}

func (e *LexError) Unwrap() error {
	return e.Err
}

// SyntaxError reports a token that does not fit the grammar at its position.
type SyntaxError struct {
	Got  Token
	Want []Kind
}

func (e *SyntaxError) Error() string {
	msg := fmt.Sprintf("unexpected %v (%d)", e.Got, e.Got.Pos)
	if len(e.Want) == 0 {
		return msg
	}
	want := make([]string, len(e.Want))
	for i, k := range e.Want {
		want[i] = k.String()
	}
	return msg + ", want " + strings.Join(want, " or ")
}
