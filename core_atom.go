package mal

func init() {
	registerCoreBuiltin("atom", coreAtom)
	registerCoreBuiltin("deref", coreDeref)
	registerCoreBuiltin("reset!", coreReset)
	registerCoreBuiltin("swap!", coreSwap)
}

func coreAtom(args []*Value) (*Value, error) {
	if err := exactArgs("atom", args, 1); err != nil {
		return nil, err
	}
	return NewAtom(args[0]), nil
}

func coreDeref(args []*Value) (*Value, error) {
	if err := exactArgs("deref", args, 1); err != nil {
		return nil, err
	}
	if args[0].Type() != AtomType {
		return nil, errBadArguments(callForm("deref", args))
	}
	return args[0].Deref(), nil
}

func coreReset(args []*Value) (*Value, error) {
	if err := exactArgs("reset!", args, 2); err != nil {
		return nil, err
	}
	if args[0].Type() != AtomType {
		return nil, errBadArguments(callForm("reset!", args))
	}
	return args[0].Reset(args[1]), nil
}

// swap! applies a function to the atom's current value plus any extra
// arguments. The replacement is computed strictly before the store, so a
// failing function leaves the atom untouched.
func coreSwap(args []*Value) (*Value, error) {
	if len(args) < 2 {
		return nil, errWrongArity(callForm("swap!", args))
	}
	atom := args[0]
	if atom.Type() != AtomType {
		return nil, errBadArguments(callForm("swap!", args))
	}
	callArgs := make([]*Value, 0, len(args)-1)
	callArgs = append(callArgs, atom.Deref())
	callArgs = append(callArgs, args[2:]...)
	next, err := Apply(args[1], callArgs)
	if err != nil {
		return nil, err
	}
	return atom.Reset(next), nil
}
