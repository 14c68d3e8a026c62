package evaluator

import (
	"testing"

	"github.com/pepaslabs/zero-to-fib/source/ast"
	"github.com/pepaslabs/zero-to-fib/source/err"
	"github.com/pepaslabs/zero-to-fib/source/values"
)

// Shorthands for building test trees.

func num(f float64) ast.Node {
	return &ast.Number{Value: f}
}

func sym(s string) ast.Node {
	return &ast.Symbol{Value: s}
}

func list(elements ...ast.Node) ast.Node {
	return &ast.List{Elements: elements}
}

func wantFloat(t *testing.T, v values.Value, f float64) {
	t.Helper()
	if v.T != values.FLOAT {
		t.Fatalf(`Wanted a float, got %s.`, Describe(v))
	}
	if v.V.(float64) != f {
		t.Fatalf(`Wanted %v, got %v.`, f, v.V.(float64))
	}
}

func wantError(t *testing.T, v values.Value, errorId string) {
	t.Helper()
	if v.T != values.ERROR {
		t.Fatalf(`Wanted error %s, got %s.`, errorId, Describe(v))
	}
	if got := v.V.(*err.Error).ErrorId; got != errorId {
		t.Fatalf(`Wanted error %s, got %s.`, errorId, got)
	}
}

func TestNumberLiteral(t *testing.T) {
	env := NewGlobalEnvironment()
	for _, f := range []float64{0, 1, -1, 3.5, 42, 1e9} {
		wantFloat(t, Eval(num(f), env), f)
	}
}

func TestSymbolLookup(t *testing.T) {
	env := NewGlobalEnvironment()
	wantFloat(t, Eval(sym("pi"), env), 3.14159)
	if v := Eval(sym("#t"), env); v != values.TRUE {
		t.Fatalf(`Wanted #t, got %s.`, Describe(v))
	}
	wantError(t, Eval(sym("foo"), env), "eval/symbol/unbound")
}

func TestEmptyList(t *testing.T) {
	env := NewGlobalEnvironment()
	wantError(t, Eval(list(), env), "eval/list/empty")
}

func TestIfShortCircuit(t *testing.T) {
	env := NewGlobalEnvironment()
	// The unselected branch is an empty list, which errors if evaluated; the
	// whole form must nevertheless come off without a hitch.
	wantFloat(t, Eval(list(sym("if"), sym("#f"), list(), num(5)), env), 5)
	wantFloat(t, Eval(list(sym("if"), sym("#t"), num(5), list()), env), 5)
}

func TestTruthiness(t *testing.T) {
	env := NewGlobalEnvironment()
	// Everything but the false literal is truthy, zero and lambdas included.
	wantFloat(t, Eval(list(sym("if"), num(0), num(1), num(2)), env), 1)
	wantFloat(t, Eval(list(sym("if"), list(sym("lambda"), list(), num(3)), num(1), num(2)), env), 1)
	wantFloat(t, Eval(list(sym("if"), sym("#f"), num(1), num(2)), env), 2)
}

func TestLambdaApplication(t *testing.T) {
	env := NewGlobalEnvironment()
	identity := list(sym("lambda"), list(sym("x")), sym("x"))
	wantFloat(t, Eval(list(identity, num(7)), env), 7)
	// Extra operands beyond the parameter count are silently ignored ...
	wantFloat(t, Eval(list(identity, num(7), num(8)), env), 7)
	// ... but too few is an error.
	twoParams := list(sym("lambda"), list(sym("x"), sym("y")), sym("x"))
	wantError(t, Eval(list(twoParams, num(7)), env), "apply/arity")
}

func TestMultiStatementBody(t *testing.T) {
	env := NewGlobalEnvironment()
	// The value of a call is the value of the last body statement; a
	// definition in the body binds in the call frame, not the global one.
	f := list(sym("lambda"), list(sym("x")),
		list(sym("define"), sym("y"), num(2)),
		list(sym("+"), sym("x"), sym("y")))
	wantFloat(t, Eval(list(f, num(1)), env), 3)
	wantError(t, Eval(sym("y"), env), "eval/symbol/unbound")
}

func TestClosureCapture(t *testing.T) {
	env := NewGlobalEnvironment()
	// The closure is made in a frame where y is 10; by the time we call it,
	// that frame is reachable only through the closure's captured reference.
	inner := values.NewChildEnvironment(env)
	inner.Set("y", values.Value{T: values.FLOAT, V: 10.0})
	closure := Eval(list(sym("lambda"), list(sym("x")), list(sym("+"), sym("x"), sym("y"))), inner)
	if closure.T != values.FUNC {
		t.Fatalf(`Wanted a lambda, got %s.`, Describe(closure))
	}
	result := Apply(closure, []values.Value{{T: values.FLOAT, V: 7.0}}, nil)
	wantFloat(t, result, 17)
	// The capture is by reference, not a snapshot: a later mutation of the
	// defining frame is visible from inside the closure.
	inner.Set("y", values.Value{T: values.FLOAT, V: 20.0})
	wantFloat(t, Apply(closure, []values.Value{{T: values.FLOAT, V: 7.0}}, nil), 27)
}

func TestRecursionViaSelfBinding(t *testing.T) {
	env := NewGlobalEnvironment()
	// (define fib (lambda (n) (if (< n 2) n (+ (fib (- n 1)) (fib (- n 2))))))
	fib := list(sym("define"), sym("fib"),
		list(sym("lambda"), list(sym("n")),
			list(sym("if"),
				list(sym("<"), sym("n"), num(2)),
				sym("n"),
				list(sym("+"),
					list(sym("fib"), list(sym("-"), sym("n"), num(1))),
					list(sym("fib"), list(sym("-"), sym("n"), num(2)))))))
	if v := Eval(fib, env); v.T != values.SUCCESSFUL_VALUE {
		t.Fatalf(`Wanted ok, got %s.`, Describe(v))
	}
	wantFloat(t, Eval(list(sym("fib"), num(10)), env), 55)
}

func TestDefine(t *testing.T) {
	env := NewGlobalEnvironment()
	if v := Eval(list(sym("define"), sym("x"), num(5)), env); v.T != values.SUCCESSFUL_VALUE {
		t.Fatalf(`Wanted ok, got %s.`, Describe(v))
	}
	wantFloat(t, Eval(sym("x"), env), 5)
	// A definition produces no value and so can't stand where one is needed.
	def := list(sym("define"), sym("z"), num(1))
	wantError(t, Eval(list(sym("+"), def), env), "eval/value/absent/b")
	wantError(t, Eval(list(def, num(1)), env), "eval/value/absent/a")
	wantError(t, Eval(list(sym("if"), def, num(1), num(2)), env), "eval/value/absent/c")
	wantError(t, Eval(list(sym("define"), sym("w"), def), env), "eval/value/absent/d")
}

func TestMalformedSpecialForms(t *testing.T) {
	env := NewGlobalEnvironment()
	wantError(t, Eval(list(sym("if")), env), "eval/if/predicate")
	wantError(t, Eval(list(sym("if"), sym("#t")), env), "eval/if/consequent")
	wantError(t, Eval(list(sym("if"), sym("#f"), num(1)), env), "eval/if/alternative")
	wantError(t, Eval(list(sym("lambda")), env), "eval/lambda/params/a")
	wantError(t, Eval(list(sym("lambda"), sym("x"), sym("x")), env), "eval/lambda/params/b")
	wantError(t, Eval(list(sym("lambda"), list(num(1)), num(1)), env), "eval/lambda/params/c")
	wantError(t, Eval(list(sym("lambda"), list(sym("x"))), env), "eval/lambda/body")
	wantError(t, Eval(list(sym("define")), env), "eval/def/a")
	wantError(t, Eval(list(sym("define"), num(1), num(2)), env), "eval/def/b")
	wantError(t, Eval(list(sym("define"), sym("x")), env), "eval/def/c")
}

func TestApplicationErrors(t *testing.T) {
	env := NewGlobalEnvironment()
	wantError(t, Eval(list(num(5), num(1)), env), "apply/callable")
	wantError(t, Eval(list(sym("+"), num(1), sym("#t")), env), "built/add/type")
	wantError(t, Eval(list(sym("-"), sym("#t")), env), "built/sub/type")
	wantError(t, Eval(list(sym("<"), num(1), sym("#t")), env), "built/less/type")
	// A failure inside an operand aborts the whole application.
	wantError(t, Eval(list(sym("+"), num(1), sym("foo")), env), "eval/symbol/unbound")
}

func TestBuiltinIdentities(t *testing.T) {
	env := NewGlobalEnvironment()
	wantFloat(t, Eval(list(sym("+")), env), 0)
	wantFloat(t, Eval(list(sym("+"), num(1), num(2), num(3)), env), 6)
	wantFloat(t, Eval(list(sym("-")), env), 0)
	wantFloat(t, Eval(list(sym("-"), num(5)), env), 5)
	wantFloat(t, Eval(list(sym("-"), num(5), num(2), num(1)), env), 2)
	lessTests := []struct {
		args []ast.Node
		want values.Value
	}{
		{[]ast.Node{}, values.TRUE},
		{[]ast.Node{num(1)}, values.TRUE},
		{[]ast.Node{num(1), num(2), num(3)}, values.TRUE},
		{[]ast.Node{num(1), num(3), num(2)}, values.FALSE},
		{[]ast.Node{num(2), num(2)}, values.FALSE},
	}
	for _, test := range lessTests {
		form := list(append([]ast.Node{sym("<")}, test.args...)...)
		if got := Eval(form, env); got != test.want {
			t.Fatalf(`Test failed with input %s | Wanted : %s | Got : %s.`, form.String(), Describe(test.want), Describe(got))
		}
	}
}

func TestDescribe(t *testing.T) {
	env := NewGlobalEnvironment()
	tests := []struct {
		node ast.Node
		want string
	}{
		{num(3), "3"},
		{num(3.5), "3.5"},
		{sym("#t"), "#t"},
		{sym("#f"), "#f"},
		{sym("pi"), "3.14159"},
		{list(sym("lambda"), list(sym("x"), sym("y")), sym("x")), "#<lambda (x y)>"},
		{list(sym("lambda"), list(), num(1)), "#<lambda ()>"},
	}
	for _, test := range tests {
		if got := Describe(Eval(test.node, env)); got != test.want {
			t.Fatalf(`Test failed with input %s | Wanted : %s | Got : %s.`, test.node.String(), test.want, got)
		}
	}
}

// Symbol and list values can't be produced by evaluation, only constructed
// directly, but they still have canonical renderings.
func TestDescribeQuotedForms(t *testing.T) {
	if got := Describe(values.Value{T: values.SYMBOL, V: "foo"}); got != "foo" {
		t.Fatalf(`Test failed with input symbol foo | Wanted : foo | Got : %s.`, got)
	}
	v := values.MakeList([]ast.Node{sym("a"), num(1), list(sym("b"), num(2))})
	if got := Describe(v); got != "(a 1 (b 2))" {
		t.Fatalf(`Test failed with input list | Wanted : (a 1 (b 2)) | Got : %s.`, got)
	}
}
