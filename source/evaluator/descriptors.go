package evaluator

// Rendering of values in their canonical textual forms, for the REPL and the
// file runner. The rendering of a builtin is implementation-defined and not
// to be relied on.

import (
	"math"
	"strconv"

	"src.elv.sh/pkg/persistent/vector"

	"github.com/pepaslabs/zero-to-fib/source/ast"
	"github.com/pepaslabs/zero-to-fib/source/err"
	"github.com/pepaslabs/zero-to-fib/source/text"
	"github.com/pepaslabs/zero-to-fib/source/values"
)

func Describe(v values.Value) string {
	switch v.T {
	case values.BOOL:
		if v.V.(bool) {
			return "#t"
		}
		return "#f"
	case values.FLOAT:
		return describeFloat(v.V.(float64))
	case values.SYMBOL:
		return v.V.(string)
	case values.LIST:
		vec := v.V.(vector.Vector)
		s := "("
		for i := 0; i < vec.Len(); i++ {
			element, _ := vec.Index(i)
			if i > 0 {
				s = s + " "
			}
			s = s + element.(ast.Node).String()
		}
		return s + ")"
	case values.FUNC:
		return "#<lambda " + err.DescribeParams(v.V.(*values.Lambda).Params) + ">"
	case values.BUILTIN:
		return "#<builtin " + v.V.(*values.Builtin).Name + ">"
	case values.SUCCESSFUL_VALUE:
		return text.OK
	case values.ERROR:
		return text.ERROR + v.V.(*err.Error).Message + "."
	}
	return "undefined value"
}

// Numbers print without a fractional part when exactly integral.
func describeFloat(f float64) string {
	if f == math.Trunc(f) && !math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'f', 0, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
