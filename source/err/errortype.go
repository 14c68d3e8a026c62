package err

import (
	"github.com/pepaslabs/zero-to-fib/source/ast"
	"github.com/pepaslabs/zero-to-fib/source/values"
)

// The 'error' type. An error aborts the evaluation of the current top-level
// form: there is no recovery inside the evaluator, no partial result, and no
// retry. It is surfaced whole to whoever asked for the evaluation.
type Error struct {
	ErrorId string
	Message string
	Args    []any
	Values  []values.Value
	Node    ast.Node
	Trace   []ast.Node
}

func (e *Error) AddToTrace(node ast.Node) {
	e.Trace = append(e.Trace, node)
}

// So that an Error can cross the boundary to callers expecting a Go error.
func (e *Error) Error() string {
	return "[" + e.ErrorId + "] " + e.Message
}

// CreateErr looks the identifier up in the ErrorCreatorMap and returns the
// resulting Error wrapped up as an ERROR value.
func CreateErr(ident string, node ast.Node, args ...any) values.Value {
	return values.Value{T: values.ERROR, V: Create(ident, node, args...)}
}

// CreateErrWithVals is CreateErr for conditions where the diagnostic should
// carry the offending runtime values as well.
func CreateErrWithVals(ident string, node ast.Node, vals []values.Value, args ...any) values.Value {
	e := Create(ident, node, args...)
	e.Values = vals
	return values.Value{T: values.ERROR, V: e}
}

// Create is CreateErr without the wrapping, for the places that traffic in
// bare Errors rather than ERROR values.
func Create(ident string, node ast.Node, args ...any) *Error {
	e := &Error{ErrorId: ident, Node: node, Args: args}
	creator, ok := ErrorCreatorMap[ident]
	if !ok {
		e.Message = "oopsie, can't find errorId " + ident
		return e
	}
	e.Message = creator.Message(node, args...)
	return e
}

// Explain returns the long-form explanation of an error, for when the user
// asks the REPL 'why'.
func Explain(e *Error) string {
	creator, ok := ErrorCreatorMap[e.ErrorId]
	if !ok {
		return "There is no explanation on record for errorId " + e.ErrorId + "."
	}
	return creator.Explanation(e.Node, e.Args...)
}
