package service

// The embeddable face of the interpreter: a Service is one instance of the
// language, i.e. a global environment together with the means to feed it
// programs and render the results.

import (
	"fmt"
	"io"
	"os"

	"github.com/pepaslabs/zero-to-fib/source/err"
	"github.com/pepaslabs/zero-to-fib/source/evaluator"
	"github.com/pepaslabs/zero-to-fib/source/initializer"
	"github.com/pepaslabs/zero-to-fib/source/values"
)

type Service struct {
	env *values.Environment
	out io.Writer
}

// Returns a new service with a fresh global environment.
func NewService() *Service {
	return &Service{env: evaluator.NewGlobalEnvironment(), out: os.Stdout}
}

func (sv *Service) SetOutput(out io.Writer) {
	sv.out = out
}

func (sv *Service) GlobalEnvironment() *values.Environment {
	return sv.env
}

// Do evaluates the form or forms in one line of JSON against the service's
// global environment and returns the value of the last of them, or the first
// error. Definitions made by the line persist in the service.
func (sv *Service) Do(line string) values.Value {
	program, parseErr := initializer.ParseLine(line)
	if parseErr != nil {
		return values.Value{T: values.ERROR, V: parseErr}
	}
	var result values.Value
	for _, node := range program {
		result = evaluator.Eval(node, sv.env)
		if result.T == values.ERROR {
			return result
		}
	}
	return result
}

func (sv *Service) Describe(v values.Value) string {
	return evaluator.Describe(v)
}

// InitializeFromFilepath runs the AST document in the given file against the
// service's global environment without printing anything, stopping at the
// first failure. It exists so that a service can be preloaded with
// definitions.
func (sv *Service) InitializeFromFilepath(filepath string) *err.Error {
	src, readErr := initializer.GetSourceCode(filepath)
	if readErr != nil {
		return readErr
	}
	program, parseErr := initializer.ParseJSON(src)
	if parseErr != nil {
		return parseErr
	}
	for _, node := range program {
		result := evaluator.Eval(node, sv.env)
		if result.T == values.ERROR {
			return result.V.(*err.Error)
		}
	}
	return nil
}

// RunFile evaluates the AST document in the given file and prints the value
// of each top-level form on its own line, in the canonical rendering.
// Definitions print nothing. The first failure is printed and aborts the
// rest of the document: there is no partial result and no retry.
func (sv *Service) RunFile(filepath string) error {
	src, readErr := initializer.GetSourceCode(filepath)
	if readErr != nil {
		fmt.Fprintln(sv.out, readErr.Error())
		return readErr
	}
	program, parseErr := initializer.ParseJSON(src)
	if parseErr != nil {
		fmt.Fprintln(sv.out, parseErr.Error())
		return parseErr
	}
	for _, node := range program {
		result := evaluator.Eval(node, sv.env)
		if result.T == values.ERROR {
			fmt.Fprintln(sv.out, evaluator.Describe(result))
			return result.V.(*err.Error)
		}
		if result.T == values.SUCCESSFUL_VALUE {
			continue
		}
		fmt.Fprintln(sv.out, evaluator.Describe(result))
	}
	return nil
}
