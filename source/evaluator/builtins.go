package evaluator

// The built-in functions and constants of the language. They are registered
// in the root environment once, at process start, and live there for the
// lifetime of the process.

import (
	"github.com/pepaslabs/zero-to-fib/source/err"
	"github.com/pepaslabs/zero-to-fib/source/values"
)

func NewGlobalEnvironment() *values.Environment {
	env := values.NewEnvironment()
	env.Set("#t", values.TRUE)
	env.Set("#f", values.FALSE)
	// This exact literal rather than math.Pi: output compatibility depends on it.
	env.Set("pi", values.Value{T: values.FLOAT, V: 3.14159})
	for _, builtin := range Builtins {
		env.Set(builtin.Name, values.Value{T: values.BUILTIN, V: builtin})
	}
	return env
}

var Builtins = []*values.Builtin{
	{Name: "+", Fn: addition},
	{Name: "-", Fn: subtraction},
	{Name: "<", Fn: lessThan},
}

func addition(args []values.Value) values.Value {
	accum := 0.0
	for _, arg := range args {
		if arg.T != values.FLOAT {
			return err.CreateErrWithVals("built/add/type", nil, []values.Value{arg}, arg.T.String())
		}
		accum += arg.V.(float64)
	}
	return values.Value{T: values.FLOAT, V: accum}
}

func subtraction(args []values.Value) values.Value {
	for _, arg := range args {
		if arg.T != values.FLOAT {
			return err.CreateErrWithVals("built/sub/type", nil, []values.Value{arg}, arg.T.String())
		}
	}
	if len(args) == 0 {
		return values.Value{T: values.FLOAT, V: 0.0}
	}
	// A single argument comes back unchanged, not negated: inherited behavior.
	accum := args[0].V.(float64)
	for _, arg := range args[1:] {
		accum -= arg.V.(float64)
	}
	return values.Value{T: values.FLOAT, V: accum}
}

func lessThan(args []values.Value) values.Value {
	for _, arg := range args {
		if arg.T != values.FLOAT {
			return err.CreateErrWithVals("built/less/type", nil, []values.Value{arg}, arg.T.String())
		}
	}
	ascending := true
	for i := 1; i < len(args); i++ {
		if args[i].V.(float64) <= args[i-1].V.(float64) {
			ascending = false
			break
		}
	}
	return values.MakeBool(ascending)
}
