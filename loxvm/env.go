package loxvm

import "maps"

// Env is a stack of scope frames addressed by index; frames[0] holds globals.
// Leaving a scope only moves the cursor, frames above it are kept for reuse.
type Env struct {
	frames []map[string]Value
	depth  int
}

func NewEnv() *Env {
	return &Env{
		frames: []map[string]Value{
			make(map[string]Value),
		},
	}
}

func (e *Env) Define(name string, val Value) {
	e.frames[e.depth][name] = val
}

func (e *Env) Assign(name string, val Value, line int) error {
	for i := e.depth; i >= 0; i-- {
		if _, ok := e.frames[i][name]; ok {
			e.frames[i][name] = val
			return nil
		}
	}
	return newError(ErrUndefinedVariable, line, "undefined variable '%s'", name)
}

func (e *Env) Get(name string, line int) (Value, error) {
	for i := e.depth; i >= 0; i-- {
		if val, ok := e.frames[i][name]; ok {
			return val, nil
		}
	}
	return nil, newError(ErrUndefinedVariable, line, "undefined variable '%s'", name)
}

func (e *Env) EnterScope() {
	e.depth++
	if e.depth == len(e.frames) {
		e.frames = append(e.frames, make(map[string]Value))
		return
	}
	// stale bindings of a previous sibling block
	clear(e.frames[e.depth])
}

func (e *Env) ExitScope() {
	if e.depth > 0 {
		e.depth--
	}
}

// Visible returns the bindings reachable from the current scope, inner ones shadowing outer ones
func (e *Env) Visible() map[string]Value {
	ret := make(map[string]Value)
	for i := 0; i <= e.depth; i++ {
		maps.Copy(ret, e.frames[i])
	}
	return ret
}
