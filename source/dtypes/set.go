package dtypes

import (
	"fmt"
)

// A generic set, used where we want membership tests over small fixed
// collections of names.

type Set[E comparable] map[E]struct{}

func MakeFromSlice[E comparable](slice []E) Set[E] {
	S := Set[E]{}
	for _, v := range slice {
		S.Add(v)
	}
	return S
}

func (S Set[E]) Add(e E) {
	S[e] = struct{}{}
}

func (S Set[E]) Contains(e E) bool {
	_, found := S[e]
	return found
}

func (S Set[E]) IsEmpty() bool {
	return len(S) == 0
}

func (S Set[E]) ToSlice() []E {
	result := []E{}
	for e := range S {
		result = append(result, e)
	}
	return result
}

func (S Set[E]) String() string {
	result := "{"
	sep := ""
	for e := range S {
		result += sep + fmt.Sprintf("%v", e)
		sep = ", "
	}
	return result + "}"
}
