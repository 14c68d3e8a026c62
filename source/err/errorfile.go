package err

import (
	"fmt"

	"github.com/pepaslabs/zero-to-fib/source/ast"
)

// A map from error identifiers to functions that supply the corresponding
// error messages and explanations.
//
// Errors in the map are in alphabetical order of their identifiers.
//
// Major categories are apply, built, eval, and init.
//
// Two otherwise identical errors thrown in different places in the Go code
// must be assigned different identifiers, if only by suffixing /a, /b, etc
// to the identifier.

type ErrorCreator struct {
	Message     func(node ast.Node, args ...any) string
	Explanation func(node ast.Node, args ...any) string
}

var ErrorCreatorMap = map[string]ErrorCreator{

	"apply/arity": {
		Message: func(node ast.Node, args ...any) string {
			return "lambda taking " + fmt.Sprint(args[0]) + " parameter(s) was given only " + fmt.Sprint(args[1]) + " argument(s)"
		},
		Explanation: func(node ast.Node, args ...any) string {
			return "Every parameter of a lambda must be supplied with an argument when it is " +
				"called. (Arguments beyond the declared parameters, on the other hand, are " +
				"silently ignored: this asymmetry is inherited behavior and is preserved.)"
		},
	},

	"apply/callable": {
		Message: func(node ast.Node, args ...any) string {
			return "trying to apply a value of type " + emph(args[0]) + " which isn't a function"
		},
		Explanation: func(node ast.Node, args ...any) string {
			return "The operator position of a list under evaluation must evaluate to either " +
				"a builtin function or a lambda. Anything else, however true or numerous, " +
				"cannot be called."
		},
	},

	"built/add/type": {
		Message: func(node ast.Node, args ...any) string {
			return emph("+") + " takes numbers, not " + emph(args[0])
		},
		Explanation: func(node ast.Node, args ...any) string {
			return "The " + emph("+") + " builtin sums its arguments, all of which must " +
				"therefore be numbers."
		},
	},

	"built/less/type": {
		Message: func(node ast.Node, args ...any) string {
			return emph("<") + " takes numbers, not " + emph(args[0])
		},
		Explanation: func(node ast.Node, args ...any) string {
			return "The " + emph("<") + " builtin tests whether its arguments form a strictly " +
				"increasing chain, so all of them must be numbers."
		},
	},

	"built/sub/type": {
		Message: func(node ast.Node, args ...any) string {
			return emph("-") + " takes numbers, not " + emph(args[0])
		},
		Explanation: func(node ast.Node, args ...any) string {
			return "The " + emph("-") + " builtin subtracts the rest of its arguments from " +
				"the first, all of which must therefore be numbers."
		},
	},

	"eval/def/a": {
		Message: func(node ast.Node, args ...any) string {
			return "missing name for " + emph("define") + " statement"
		},
		Explanation: func(node ast.Node, args ...any) string {
			return "A definition takes the form " + emph("(define <name> <expression>)") + ", " +
				"and so needs a name directly after the " + emph("define") + "."
		},
	},

	"eval/def/b": {
		Message: func(node ast.Node, args ...any) string {
			return emph("define") + " requires a symbol to bind, not " + emph(args[0])
		},
		Explanation: func(node ast.Node, args ...any) string {
			return "Only a symbol can be given a value by " + emph("define") + ": it is the " +
				"name under which the value will be looked up later."
		},
	},

	"eval/def/c": {
		Message: func(node ast.Node, args ...any) string {
			return "missing value for " + emph("define") + " statement"
		},
		Explanation: func(node ast.Node, args ...any) string {
			return "A definition takes the form " + emph("(define <name> <expression>)") + ", " +
				"and so needs an expression after the name to supply the value to bind."
		},
	},

	"eval/if/alternative": {
		Message: func(node ast.Node, args ...any) string {
			return "missing alternative for " + emph("if") + " statement"
		},
		Explanation: func(node ast.Node, args ...any) string {
			return "The predicate of this " + emph("if") + " was falsy, so its value should " +
				"have been the value of the alternative branch, which is absent."
		},
	},

	"eval/if/consequent": {
		Message: func(node ast.Node, args ...any) string {
			return "missing consequent for " + emph("if") + " statement"
		},
		Explanation: func(node ast.Node, args ...any) string {
			return "The predicate of this " + emph("if") + " was truthy, so its value should " +
				"have been the value of the consequent branch, which is absent."
		},
	},

	"eval/if/predicate": {
		Message: func(node ast.Node, args ...any) string {
			return "missing predicate for " + emph("if") + " statement"
		},
		Explanation: func(node ast.Node, args ...any) string {
			return "An " + emph("if") + " statement needs at least a predicate to decide " +
				"which of its branches to evaluate."
		},
	},

	"eval/lambda/body": {
		Message: func(node ast.Node, args ...any) string {
			return emph("lambda") + " body contains no statements"
		},
		Explanation: func(node ast.Node, args ...any) string {
			return "The body of a lambda is everything after its parameter list, and must " +
				"contain at least one statement to supply the value of a call."
		},
	},

	"eval/lambda/params/a": {
		Message: func(node ast.Node, args ...any) string {
			return "missing parameter list for " + emph("lambda") + " statement"
		},
		Explanation: func(node ast.Node, args ...any) string {
			return "A lambda takes the form " + emph("(lambda (<params>) <body>)") + ", and " +
				"so needs a parameter list directly after the " + emph("lambda") + ", even " +
				"if the list is empty."
		},
	},

	"eval/lambda/params/b": {
		Message: func(node ast.Node, args ...any) string {
			return emph("lambda") + " parameters must be a list"
		},
		Explanation: func(node ast.Node, args ...any) string {
			return "The thing directly after the " + emph("lambda") + " must be a " +
				"parenthesized list of the parameter names."
		},
	},

	"eval/lambda/params/c": {
		Message: func(node ast.Node, args ...any) string {
			return emph("lambda") + " parameter list contains " + emph(args[0]) + ", which is not a symbol"
		},
		Explanation: func(node ast.Node, args ...any) string {
			return "Each element of a lambda's parameter list is the name of a parameter, " +
				"and so must be a symbol."
		},
	},

	"eval/list/empty": {
		Message: func(node ast.Node, args ...any) string {
			return "can't evaluate a zero-length list"
		},
		Explanation: func(node ast.Node, args ...any) string {
			return "A non-empty list is evaluated by treating its head as a function or " +
				"special form. An empty list has no head, and so no evaluation rule applies " +
				"to it."
		},
	},

	"eval/node/unknown": {
		Message: func(node ast.Node, args ...any) string {
			return "don't know how to evaluate " + emph(args[0])
		},
		Explanation: func(node ast.Node, args ...any) string {
			return "The evaluator was given a node which is none of a number, a symbol, or " +
				"a list. This should not be possible for trees built by the parser, and " +
				"suggests a defect in whatever constructed the tree."
		},
	},

	"eval/symbol/unbound": {
		Message: func(node ast.Node, args ...any) string {
			return "symbol " + emph(args[0]) + " not found"
		},
		Explanation: func(node ast.Node, args ...any) string {
			return "The symbol was looked up in the current scope and then outwards through " +
				"every enclosing scope up to the global environment, and no binding for it " +
				"was found anywhere along the way."
		},
	},

	"eval/value/absent/a": {
		Message: func(node ast.Node, args ...any) string {
			return "operator of " + emph(args[0]) + " produces no value"
		},
		Explanation: func(node ast.Node, args ...any) string {
			return "The head of a function application must evaluate to a value, but this " +
				"one is a statement, such as a definition, which is evaluated only for its " +
				"side effect."
		},
	},

	"eval/value/absent/b": {
		Message: func(node ast.Node, args ...any) string {
			return "operand " + emph(args[0]) + " produces no value"
		},
		Explanation: func(node ast.Node, args ...any) string {
			return "Every argument of a function application must evaluate to a value, but " +
				"this one is a statement, such as a definition, which is evaluated only for " +
				"its side effect."
		},
	},

	"eval/value/absent/c": {
		Message: func(node ast.Node, args ...any) string {
			return "predicate of " + emph("if") + " statement produces no value"
		},
		Explanation: func(node ast.Node, args ...any) string {
			return "The predicate of an " + emph("if") + " must evaluate to a value for its " +
				"truthiness to be judged, but this one is a statement, such as a definition, " +
				"which is evaluated only for its side effect."
		},
	},

	"eval/value/absent/d": {
		Message: func(node ast.Node, args ...any) string {
			return "right-hand side of " + emph("define") + " statement produces no value"
		},
		Explanation: func(node ast.Node, args ...any) string {
			return "A definition binds a name to a value, so the expression after the name " +
				"must produce one, which a nested definition does not."
		},
	},

	"init/file/read": {
		Message: func(node ast.Node, args ...any) string {
			return "can't read file " + emph(args[0])
		},
		Explanation: func(node ast.Node, args ...any) string {
			return "The operating system reported the problem as: " + fmt.Sprint(args[1]) + "."
		},
	},

	"init/json/unmarshal": {
		Message: func(node ast.Node, args ...any) string {
			return "malformed JSON in AST document"
		},
		Explanation: func(node ast.Node, args ...any) string {
			return "The input could not be decoded as JSON at all. The underlying decoder " +
				"reported the problem as: " + fmt.Sprint(args[0]) + "."
		},
	},

	"init/node/list": {
		Message: func(node ast.Node, args ...any) string {
			return "value of a " + emph("list") + " node must be an array"
		},
		Explanation: func(node ast.Node, args ...any) string {
			return "In the exchange format a list node is " +
				emph(`{"type": "list", "value": [...]}`) + " where the array holds the " +
				"elements of the list, themselves nodes."
		},
	},

	"init/node/number": {
		Message: func(node ast.Node, args ...any) string {
			return "value of a " + emph("number") + " node must be a number"
		},
		Explanation: func(node ast.Node, args ...any) string {
			return "In the exchange format a number node is " +
				emph(`{"type": "number", "value": 42}`) + " and nothing but a JSON number " +
				"will do as the value."
		},
	},

	"init/node/symbol": {
		Message: func(node ast.Node, args ...any) string {
			return "value of a " + emph("symbol") + " node must be a string"
		},
		Explanation: func(node ast.Node, args ...any) string {
			return "In the exchange format a symbol node is " +
				emph(`{"type": "symbol", "value": "foo"}`) + " and nothing but a JSON " +
				"string will do as the value."
		},
	},

	"init/node/type": {
		Message: func(node ast.Node, args ...any) string {
			return "unknown node type " + emph(args[0]) + " in AST document"
		},
		Explanation: func(node ast.Node, args ...any) string {
			return "The nodes of the exchange format are tagged with a " + emph("type") +
				" field which must be one of " + emph("number") + ", " + emph("symbol") +
				", or " + emph("list") + "."
		},
	},
}

func emph(s any) string {
	return "'" + fmt.Sprint(s) + "'"
}

func DescribeParams(params []string) string {
	s := ""
	for i, p := range params {
		if i > 0 {
			s = s + " "
		}
		s = s + p
	}
	return "(" + s + ")"
}
