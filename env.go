package mal

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Env is one frame in the lexical environment chain: a mapping from names to
// values plus a reference to the enclosing frame. Frames are shared by
// pointer because closures and atoms may outlive the call that created them.
type Env struct {
	bindings map[string]*Value
	outer    *Env
}

// NewEnv creates an empty frame chained to outer. A nil outer makes a root.
func NewEnv(outer *Env) *Env {
	return &Env{
		bindings: make(map[string]*Value),
		outer:    outer,
	}
}

// NewEnvBinding creates a call frame chained to outer, binding parameter
// symbols to the given arguments. A '&' in the parameter list binds the
// following name to a list of the remaining arguments, possibly empty.
func NewEnvBinding(outer *Env, params, args []*Value) (*Env, error) {
	env := NewEnv(outer)

	for i, param := range params {
		if param.Type() != SymbolType {
			return nil, errBadArguments(NewList(params...))
		}
		if param.Str() == "&" {
			if i+1 >= len(params) {
				return nil, errBadArguments(NewList(params...))
			}
			rest := params[i+1]
			if rest.Type() != SymbolType {
				return nil, errBadArguments(NewList(params...))
			}
			env.Set(rest.Str(), NewList(args[i:]...))
			return env, nil
		}
		if i >= len(args) {
			return nil, errWrongArity(NewList(args...))
		}
		env.Set(param.Str(), args[i])
	}

	if len(args) > len(params) {
		return nil, errWrongArity(NewList(args...))
	}
	return env, nil
}

// Set inserts or overwrites a binding in this frame.
func (e *Env) Set(name string, v *Value) {
	e.bindings[name] = v
}

// Get looks the name up in this frame, then recursively in the outer chain.
func (e *Env) Get(name string) (*Value, error) {
	for env := e; env != nil; env = env.outer {
		if v, ok := env.bindings[name]; ok {
			return v, nil
		}
	}
	return nil, errMissingSymbol(name)
}

// Root walks to the outermost frame of the chain this frame belongs to. The
// eval special form uses it so host-level eval always runs at top level.
func (e *Env) Root() *Env {
	env := e
	for env.outer != nil {
		env = env.outer
	}
	return env
}

// Inspect writes the frame chain, innermost first, for the env debug form.
func (e *Env) Inspect(w io.Writer) {
	depth := 0
	for env := e; env != nil; env = env.outer {
		names := make([]string, 0, len(env.bindings))
		for name := range env.bindings {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Fprintf(w, "frame %d (%d bindings): %s\n", depth, len(names), strings.Join(names, " "))
		depth++
	}
}
