package evaluator

// This is basically your standard tree-walking evaluator. Evaluation is
// single-threaded and strictly recursive: the Go call stack depth tracks the
// nesting depth of the AST plus the depth of active lambda calls, so a
// non-terminating recursive lambda will exhaust the stack. That is a fatal
// condition, not an error value; we document the boundary rather than try to
// catch it.

import (
	"github.com/pepaslabs/zero-to-fib/source/ast"
	"github.com/pepaslabs/zero-to-fib/source/err"
	"github.com/pepaslabs/zero-to-fib/source/settings"
	"github.com/pepaslabs/zero-to-fib/source/values"
)

func Eval(node ast.Node, env *values.Environment) values.Value {
	if settings.SHOW_EVALUATOR && node != nil {
		println("Evaluating " + node.String())
	}
	switch node := node.(type) {
	case *ast.Number:
		return values.Value{T: values.FLOAT, V: node.Value}
	case *ast.Symbol:
		v, ok := env.Get(node.Value)
		if !ok {
			return err.CreateErr("eval/symbol/unbound", node, node.Value)
		}
		return v
	case *ast.List:
		return evalList(node, env)
	}
	description := "<nil>"
	if node != nil {
		description = node.String()
	}
	return err.CreateErr("eval/node/unknown", node, description)
}

func evalList(node *ast.List, env *values.Environment) values.Value {
	if len(node.Elements) == 0 {
		return err.CreateErr("eval/list/empty", node)
	}
	// The special form check precedes evaluation of the head, so the special
	// form names can't be shadowed by bindings.
	if head, ok := node.Elements[0].(*ast.Symbol); ok && settings.SpecialForms.Contains(head.Value) {
		switch head.Value {
		case "if":
			return evalIf(node, env)
		case "lambda":
			return evalLambda(node, env)
		case "define":
			return evalDefine(node, env)
		}
	}
	return evalApplication(node, env)
}

// Only the selected branch of an 'if' is evaluated: short-circuit, not
// both-then-select.
func evalIf(node *ast.List, env *values.Environment) values.Value {
	items := node.Elements
	if len(items) < 2 {
		return err.CreateErr("eval/if/predicate", node)
	}
	predicate := Eval(items[1], env)
	if predicate.T == values.ERROR {
		return bubble(predicate, node)
	}
	if predicate.T == values.SUCCESSFUL_VALUE {
		return err.CreateErr("eval/value/absent/c", items[1])
	}
	if isTruthy(predicate) {
		if len(items) < 3 {
			return err.CreateErr("eval/if/consequent", node)
		}
		return bubble(Eval(items[2], env), node)
	}
	if len(items) < 4 {
		return err.CreateErr("eval/if/alternative", node)
	}
	return bubble(Eval(items[3], env), node)
}

// No evaluation happens at definition time beyond checking that the
// parameter list is well-formed: the body is carried unevaluated and the
// current environment is captured by reference, not copied.
func evalLambda(node *ast.List, env *values.Environment) values.Value {
	items := node.Elements
	if len(items) < 2 {
		return err.CreateErr("eval/lambda/params/a", node)
	}
	paramList, ok := items[1].(*ast.List)
	if !ok {
		return err.CreateErr("eval/lambda/params/b", node)
	}
	params := []string{}
	for _, p := range paramList.Elements {
		symbol, ok := p.(*ast.Symbol)
		if !ok {
			return err.CreateErr("eval/lambda/params/c", node, p.String())
		}
		params = append(params, symbol.Value)
	}
	if len(items) < 3 {
		return err.CreateErr("eval/lambda/body", node)
	}
	return values.Value{T: values.FUNC,
		V: &values.Lambda{Params: params, Body: values.MakeBody(items[2:]), Env: env}}
}

// The global definition form binds in the current frame and yields no value,
// only SUCCESS. Binding a lambda to a name in an environment the lambda
// itself captures needs no further machinery: by the time anything calls the
// lambda and looks the name up, the binding is there.
func evalDefine(node *ast.List, env *values.Environment) values.Value {
	items := node.Elements
	if len(items) < 2 {
		return err.CreateErr("eval/def/a", node)
	}
	name, ok := items[1].(*ast.Symbol)
	if !ok {
		return err.CreateErr("eval/def/b", node, items[1].String())
	}
	if len(items) < 3 {
		return err.CreateErr("eval/def/c", node)
	}
	right := Eval(items[2], env)
	if right.T == values.ERROR {
		return bubble(right, node)
	}
	if right.T == values.SUCCESSFUL_VALUE {
		return err.CreateErr("eval/value/absent/d", items[2])
	}
	env.Set(name.Value, right)
	return values.SUCCESS
}

func evalApplication(node *ast.List, env *values.Environment) values.Value {
	operator := Eval(node.Elements[0], env)
	if operator.T == values.ERROR {
		return bubble(operator, node)
	}
	if operator.T == values.SUCCESSFUL_VALUE {
		return err.CreateErr("eval/value/absent/a", node.Elements[0], node.Elements[0].String())
	}
	operands := make([]values.Value, 0, len(node.Elements)-1)
	for _, operandNode := range node.Elements[1:] {
		operand := Eval(operandNode, env)
		if operand.T == values.ERROR {
			return bubble(operand, node)
		}
		if operand.T == values.SUCCESSFUL_VALUE {
			return err.CreateErr("eval/value/absent/b", operandNode, operandNode.String())
		}
		operands = append(operands, operand)
	}
	return Apply(operator, operands, node)
}

// Apply dispatches on the operator: builtins are called directly; lambdas
// get a fresh frame whose Ext is the lambda's captured environment, with the
// declared parameters bound positionally. Too few arguments is an error;
// arguments beyond the declared parameters are silently ignored.
func Apply(operator values.Value, operands []values.Value, node ast.Node) values.Value {
	switch operator.T {
	case values.BUILTIN:
		result := operator.V.(*values.Builtin).Fn(operands)
		if result.T == values.ERROR {
			e := result.V.(*err.Error)
			if e.Node == nil {
				e.Node = node
			}
			e.AddToTrace(node)
		}
		return result
	case values.FUNC:
		lambda := operator.V.(*values.Lambda)
		env := values.NewChildEnvironment(lambda.Env)
		for i, param := range lambda.Params {
			if i >= len(operands) {
				return err.CreateErr("apply/arity", node, len(lambda.Params), len(operands))
			}
			env.Set(param, operands[i])
		}
		// The body is non-empty, which evalLambda checked at definition time;
		// the value of the call is the value of its last statement.
		var result values.Value
		for i := 0; i < lambda.Body.Len(); i++ {
			statement, _ := lambda.Body.Index(i)
			result = Eval(statement.(ast.Node), env)
			if result.T == values.ERROR {
				return bubble(result, node)
			}
		}
		return result
	}
	return err.CreateErrWithVals("apply/callable", node, []values.Value{operator}, operator.T.String())
}

// Everything is truthy except the boolean false literal: numbers (zero
// included), symbols, lists, and functions all count as true.
func isTruthy(v values.Value) bool {
	return !(v.T == values.BOOL && !v.V.(bool))
}

func bubble(v values.Value, node ast.Node) values.Value {
	if v.T == values.ERROR {
		v.V.(*err.Error).AddToTrace(node)
	}
	return v
}
