package initializer

// The boundary with the excluded parser: programs reach the evaluator as
// JSON AST documents, an array of nodes of the form
//
//     [{"type": "number", "value": 42},
//      {"type": "symbol", "value": "foo"},
//      {"type": "list", "value": [...]}]
//
// This package decodes such a document into ast nodes. It does no textual
// Lisp parsing: whatever produced the JSON has already done that.

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/pepaslabs/zero-to-fib/source/ast"
	"github.com/pepaslabs/zero-to-fib/source/err"
)

type jsonNode struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

// ParseJSON decodes a whole AST document into the sequence of top-level
// nodes it contains.
func ParseJSON(src []byte) ([]ast.Node, *err.Error) {
	raw := []jsonNode{}
	if e := json.Unmarshal(src, &raw); e != nil {
		return nil, err.Create("init/json/unmarshal", nil, e)
	}
	program := []ast.Node{}
	for _, r := range raw {
		node, parseErr := parseNode(r)
		if parseErr != nil {
			return nil, parseErr
		}
		program = append(program, node)
	}
	return program, nil
}

// ParseLine is ParseJSON for the REPL, which accepts either a document or a
// single bare node on a line.
func ParseLine(line string) ([]ast.Node, *err.Error) {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, "[") {
		return ParseJSON([]byte(line))
	}
	r := jsonNode{}
	if e := json.Unmarshal([]byte(line), &r); e != nil {
		return nil, err.Create("init/json/unmarshal", nil, e)
	}
	node, parseErr := parseNode(r)
	if parseErr != nil {
		return nil, parseErr
	}
	return []ast.Node{node}, nil
}

// GetSourceCode slurps the file holding an AST document.
func GetSourceCode(filepath string) ([]byte, *err.Error) {
	src, e := os.ReadFile(filepath)
	if e != nil {
		return nil, err.Create("init/file/read", nil, filepath, e)
	}
	return src, nil
}

func parseNode(r jsonNode) (ast.Node, *err.Error) {
	switch r.Type {
	case "number":
		var f float64
		if e := json.Unmarshal(r.Value, &f); e != nil {
			return nil, err.Create("init/node/number", nil)
		}
		return &ast.Number{Value: f}, nil
	case "symbol":
		var s string
		if e := json.Unmarshal(r.Value, &s); e != nil {
			return nil, err.Create("init/node/symbol", nil)
		}
		return &ast.Symbol{Value: s}, nil
	case "list":
		raw := []jsonNode{}
		if e := json.Unmarshal(r.Value, &raw); e != nil {
			return nil, err.Create("init/node/list", nil)
		}
		elements := []ast.Node{}
		for _, element := range raw {
			node, parseErr := parseNode(element)
			if parseErr != nil {
				return nil, parseErr
			}
			elements = append(elements, node)
		}
		return &ast.List{Elements: elements}, nil
	}
	return nil, err.Create("init/node/type", nil, r.Type)
}
