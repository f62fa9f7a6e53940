package matcalc

import (
	"fmt"
	"io"
	"strings"
)

// Eval computes the matrix an expression tree stands for.
func Eval(node *Node) (Matrix, error) {
	switch node.t {
	case NodeLiteral:
		return node.m, nil
	case NodeAdd, NodeSub, NodeMul:
		lhs, err := Eval(node.lhs)
		if err != nil {
			return Matrix{}, err
		}
		rhs, err := Eval(node.rhs)
		if err != nil {
			return Matrix{}, err
		}
		switch node.t {
		case NodeAdd:
			return lhs.Add(rhs), nil
		case NodeSub:
			return lhs.Sub(rhs), nil
		}
		return lhs.Mul(rhs), nil
	case NodeTranspose:
		x, err := Eval(node.lhs)
		if err != nil {
			return Matrix{}, err
		}
		return x.Transpose(), nil
	case NodeGroup:
		return Eval(node.lhs)
	}
	return Matrix{}, fmt.Errorf("invalid node: %v", node.t)
}

// EvaluateReader parses one expression from r and evaluates it.
func EvaluateReader(r io.Reader) (Matrix, error) {
	node, err := NewParser(r).Parse()
	if err != nil {
		return Matrix{}, err
	}
	return Eval(node)
}

// Evaluate parses and evaluates the expression s. It returns a *LexError or
// a *SyntaxError describing the first problem found in s.
func Evaluate(s string) (Matrix, error) {
	return EvaluateReader(strings.NewReader(s))
}
