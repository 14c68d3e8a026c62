package values

import (
	"testing"
)

func TestLookupThroughChain(t *testing.T) {
	parent := NewEnvironment()
	child := NewChildEnvironment(parent)
	parent.Set("x", Value{T: FLOAT, V: 1.0})
	v, ok := child.Get("x")
	if !ok || v.V.(float64) != 1.0 {
		t.Fatalf(`Binding in the parent frame should be visible from the child.`)
	}
	if _, ok := child.Get("y"); ok {
		t.Fatalf(`Lookup of an unbound name should fail.`)
	}
}

func TestShadowing(t *testing.T) {
	parent := NewEnvironment()
	child := NewChildEnvironment(parent)
	parent.Set("x", Value{T: FLOAT, V: 1.0})
	child.Set("x", Value{T: FLOAT, V: 2.0})
	if v, _ := child.Get("x"); v.V.(float64) != 2.0 {
		t.Fatalf(`Inner binding should shadow the outer one.`)
	}
	if v, _ := parent.Get("x"); v.V.(float64) != 1.0 {
		t.Fatalf(`Shadowing should not destroy the outer binding.`)
	}
}

func TestSetWritesInnermostFrameOnly(t *testing.T) {
	parent := NewEnvironment()
	child := NewChildEnvironment(parent)
	child.Set("x", Value{T: FLOAT, V: 1.0})
	if _, ok := parent.Get("x"); ok {
		t.Fatalf(`Set on a child frame should not write to its parent.`)
	}
	if !child.Exists("x") {
		t.Fatalf(`Set on a child frame should write to that frame.`)
	}
}

func TestSharedFrames(t *testing.T) {
	// Two children of the same parent see the same parent bindings, last
	// write winning, since frames are shared by reference.
	parent := NewEnvironment()
	a := NewChildEnvironment(parent)
	b := NewChildEnvironment(parent)
	parent.Set("x", Value{T: FLOAT, V: 1.0})
	parent.Set("x", Value{T: FLOAT, V: 2.0})
	va, _ := a.Get("x")
	vb, _ := b.Get("x")
	if va.V.(float64) != 2.0 || vb.V.(float64) != 2.0 {
		t.Fatalf(`Both children should see the parent's latest binding.`)
	}
}
