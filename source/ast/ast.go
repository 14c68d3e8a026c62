package ast

import (
	"math"
	"strconv"
	"strings"
)

// The AST of the little language. The nodes are produced for us by the
// parser (or arrive ready-made over the JSON exchange format, see the
// 'initializer' package) and are never mutated after that: the evaluator
// treats the whole tree as read-only.

type Node interface {
	String() string
}

// A number literal. All numbers are float64, there being no numeric tower.
type Number struct {
	Value float64
}

func (n *Number) String() string {
	if n.Value == math.Trunc(n.Value) && !math.IsInf(n.Value, 0) {
		return strconv.FormatFloat(n.Value, 'f', 0, 64)
	}
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}

// A symbol: an identifier, an operator, or one of the special form names.
// Which of these it is can only be known at evaluation time.
type Symbol struct {
	Value string
}

func (s *Symbol) String() string {
	return s.Value
}

// A parenthesized list of further nodes. May be empty as parsed, though
// evaluating an empty list is an error.
type List struct {
	Elements []Node
}

func (l *List) String() string {
	elements := []string{}
	for _, e := range l.Elements {
		elements = append(elements, e.String())
	}
	return "(" + strings.Join(elements, " ") + ")"
}
