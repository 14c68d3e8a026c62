// All this does is contain in one place the constants controlling the inner workings of the
// evaluator, together with the flags controlling which of those workings are displayed for
// debugging purposes. In a release the flags must all be set to false.

package settings

import "github.com/pepaslabs/zero-to-fib/source/dtypes"

// The names which, found at the head of a list, make it a special form
// rather than a function application.
var SpecialForms = dtypes.MakeFromSlice([]string{"if", "lambda", "define"})

const (
	SHOW_EVALUATOR = false // Traces the dispatch of each node through Eval.

	SHOW_TESTS = false // Says whether the tests should say what is being tested, useful if one of them crashes and we don't know which.
)
