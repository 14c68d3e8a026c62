package values

// A chain of lexical frames. Each frame maps names to values and points
// outwards to the frame enclosing it; the root frame, made once at startup
// and populated with the builtins and constants, has Ext == nil. Frames are
// shared by reference: the same frame can be the Ext of many call frames
// and the captured environment of many lambdas at once, and we lean on Go's
// garbage collector to keep a frame alive for as long as the longest-lived
// holder of a reference to it.
type Environment struct {
	Store map[string]Value
	Ext   *Environment
}

func NewEnvironment() *Environment {
	return &Environment{Store: make(map[string]Value)}
}

func NewChildEnvironment(ext *Environment) *Environment {
	env := NewEnvironment()
	env.Ext = ext
	return env
}

// Get walks the chain outwards. An inner binding shadows an outer one of
// the same name without destroying it.
func (e *Environment) Get(name string) (Value, bool) {
	v, ok := e.Store[name]
	if ok || e.Ext == nil {
		return v, ok
	}
	return e.Ext.Get(name)
}

func (e *Environment) Exists(name string) bool {
	_, ok := e.Get(name)
	return ok
}

// Set writes to the innermost frame only, never to an ancestor. This is
// what gives parameter binding and the global definition form their
// block-local semantics.
func (e *Environment) Set(name string, v Value) Value {
	e.Store[name] = v
	return v
}
