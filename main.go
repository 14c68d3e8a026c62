//
// zero-to-fib: the evaluator core of a minimal Lisp, reimplemented in Go.
//
// Acknowledgments
//
// The shape of the evaluator owes a debt to Thorsten Ball's Writing An
// Interpreter In Go (https://interpreterbook.com/), as does nearly every
// tree-walking interpreter written in this language.
//

package main

import (
	"fmt"
	"os"

	"github.com/pepaslabs/zero-to-fib/source/repl"
	"github.com/pepaslabs/zero-to-fib/source/service"
	"github.com/pepaslabs/zero-to-fib/source/text"
)

func main() {
	args := os.Args[1:]
	if len(args) > 0 {
		switch args[0] {
		case "-v", "--version":
			fmt.Println("zero-to-fib version " + text.VERSION)
			return
		case "-h", "--help":
			fmt.Print(text.HELP)
			return
		}
		sv := service.NewService()
		if e := sv.RunFile(args[len(args)-1]); e != nil {
			os.Exit(1)
		}
		return
	}
	fmt.Print(text.Logo())
	repl.Start(service.NewService(), os.Stdout)
}
