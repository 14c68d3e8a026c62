package service

import (
	"os"
	"testing"

	"github.com/pepaslabs/zero-to-fib/source/err"
	"github.com/pepaslabs/zero-to-fib/source/settings"
	"github.com/pepaslabs/zero-to-fib/source/text"
	"github.com/pepaslabs/zero-to-fib/source/values"
)

type testItem struct {
	input string
	want  string
}

func testValues(sv *Service, s string) string {
	return sv.Describe(sv.Do(s))
}

func testErrors(sv *Service, s string) string {
	v := sv.Do(s)
	if v.T != values.ERROR {
		return "unexpected successful evaluation returned " + text.Emph(sv.Describe(v))
	}
	return v.V.(*err.Error).ErrorId
}

func runTest(t *testing.T, filename string, tests []testItem, F func(sv *Service, s string) string) {
	wd, _ := os.Getwd() // The working directory is the directory containing the package being tested.
	for _, test := range tests {
		if settings.SHOW_TESTS {
			println(text.BULLET + "Running test " + text.Emph(test.input))
		}
		sv := NewService()
		if filename != "" {
			if e := sv.InitializeFromFilepath(wd + "/test-files/" + filename); e != nil {
				t.Fatalf(`There were errors initializing the service : %s.`, e.Error())
			}
		}
		got := F(sv, test.input)
		if test.want != got {
			t.Fatalf(`Test failed with input %s | Wanted : %s | Got : %s.`, test.input, test.want, got)
		}
	}
}
