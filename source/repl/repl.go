package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/lmorg/readline"

	"github.com/pepaslabs/zero-to-fib/source/err"
	"github.com/pepaslabs/zero-to-fib/source/service"
	"github.com/pepaslabs/zero-to-fib/source/text"
	"github.com/pepaslabs/zero-to-fib/source/values"
)

// The REPL reads one JSON AST document (or a single bare node) per line,
// evaluates it against the service's global environment, and prints the
// canonical rendering of each result. 'why' explains the last error at
// greater length; 'quit' or end of input exits.
func Start(sv *service.Service, out io.Writer) {
	rline := readline.NewInstance()
	var lastError *err.Error
	for {
		rline.SetPrompt(text.PROMPT)
		line, e := rline.Readline()
		if e != nil {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "quit" {
			break
		}
		if line == "why" {
			if lastError == nil {
				fmt.Fprintln(out, "There is no error to explain.")
			} else {
				fmt.Fprintln(out, err.Explain(lastError))
			}
			continue
		}
		result := sv.Do(line)
		if result.T == values.ERROR {
			lastError = result.V.(*err.Error)
		}
		if result.T == values.UNDEFINED_VALUE { // An empty document evaluates to nothing at all.
			continue
		}
		fmt.Fprintln(out, sv.Describe(result))
	}
}
