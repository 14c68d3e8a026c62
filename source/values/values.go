package values

import (
	"src.elv.sh/pkg/persistent/vector"

	"github.com/pepaslabs/zero-to-fib/source/ast"
)

type ValueType uint32

const ( // Cross-reference with typeNames below.
	UNDEFINED_VALUE ValueType = iota // For debugging purposes, it is useful to have the zero value something it should never actually be.
	BOOL
	FLOAT
	SYMBOL
	LIST
	BUILTIN
	FUNC
	SUCCESSFUL_VALUE
	ERROR
)

var typeNames = []string{"undefined value", "bool", "float", "symbol", "list",
	"builtin", "lambda", "successful value", "error"}

func (t ValueType) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "undefined value"
}

type Value struct {
	T ValueType
	V any
}

var (
	TRUE    = Value{T: BOOL, V: true}
	FALSE   = Value{T: BOOL, V: false}
	SUCCESS = Value{T: SUCCESSFUL_VALUE}
)

func MakeBool(b bool) Value {
	if b {
		return TRUE
	}
	return FALSE
}

// A user-defined function: the declared parameter names, the unevaluated
// body statements, and a shared reference (never a copy) to the environment
// in force at the point of definition. Sharing rather than snapshotting is
// what lets a lambda bound to a name see itself through that name, and see
// later mutations of any binding visible from its defining scope.
type Lambda struct {
	Params []string
	Body   vector.Vector // of ast.Node, non-empty
	Env    *Environment
}

// MakeBody freezes a run of body statements into the persistent vector
// carried by a Lambda.
func MakeBody(statements []ast.Node) vector.Vector {
	body := vector.Empty
	for _, statement := range statements {
		body = body.Conj(statement)
	}
	return body
}

// A builtin function, i.e. one written in Go. These live in the global
// environment for the lifetime of the process and their identity is
// irrelevant for equality.
type Builtin struct {
	Name string
	Fn   func(args []Value) Value
}

// The payload of a LIST value: list structure inherited wholesale from the
// AST without evaluation.
func MakeList(elements []ast.Node) Value {
	list := vector.Empty
	for _, element := range elements {
		list = list.Conj(element)
	}
	return Value{T: LIST, V: list}
}
