package mal

import "fmt"

// coreBuiltins is the registry the core_*.go files populate during package
// initialization. CoreEnv snapshots it into a root environment.
var coreBuiltins = make(map[string]HostFn)

// registerCoreBuiltin adds a builtin to the registry. Registering the same
// name twice is a programming error, caught at startup.
func registerCoreBuiltin(name string, fn HostFn) {
	if _, existing := coreBuiltins[name]; existing {
		panic(fmt.Sprintf("builtin with name '%s' is already registered", name))
	}
	coreBuiltins[name] = fn
}

// CoreBuiltinExists reports whether the given name is a registered builtin.
func CoreBuiltinExists(name string) bool {
	_, existing := coreBuiltins[name]
	return existing
}

// CoreEnv returns a fresh root environment populated with every builtin.
func CoreEnv() *Env {
	env := NewEnv(nil)
	for name, fn := range coreBuiltins {
		env.Set(name, NewHostFn(name, fn))
	}
	return env
}

// callForm reconstructs a call form for error reporting.
func callForm(name string, args []*Value) *Value {
	form := make([]*Value, 0, len(args)+1)
	form = append(form, NewSymbol(name))
	form = append(form, args...)
	return NewList(form...)
}

// exactArgs enforces an exact argument count.
func exactArgs(name string, args []*Value, n int) error {
	if len(args) != n {
		return errWrongArity(callForm(name, args))
	}
	return nil
}
