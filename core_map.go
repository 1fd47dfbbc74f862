package mal

func init() {
	registerCoreBuiltin("hash-map", coreHashMap)
	registerCoreBuiltin("map?", typePredicate(MapType))
	registerCoreBuiltin("assoc", coreAssoc)
	registerCoreBuiltin("dissoc", coreDissoc)
	registerCoreBuiltin("get", coreGet)
	registerCoreBuiltin("contains?", coreContains)
	registerCoreBuiltin("keys", coreKeys)
	registerCoreBuiltin("vals", coreVals)
}

func coreHashMap(args []*Value) (*Value, error) {
	return NewMapFromSeq(args)
}

// assoc returns a fresh map with the given key/value pairs added; the
// receiver is untouched.
func coreAssoc(args []*Value) (*Value, error) {
	if len(args) < 1 || len(args)%2 != 1 {
		return nil, errWrongArity(callForm("assoc", args))
	}
	if args[0].Type() != MapType {
		return nil, errBadArguments(callForm("assoc", args))
	}
	next := args[0].Map().Clone()
	for i := 1; i < len(args); i += 2 {
		if err := next.Insert(args[i], args[i+1]); err != nil {
			return nil, err
		}
	}
	return NewMap(next), nil
}

// dissoc returns a fresh map with the given keys removed.
func coreDissoc(args []*Value) (*Value, error) {
	if len(args) < 1 {
		return nil, errWrongArity(callForm("dissoc", args))
	}
	if args[0].Type() != MapType {
		return nil, errBadArguments(callForm("dissoc", args))
	}
	next := args[0].Map().Clone()
	for _, key := range args[1:] {
		next.Remove(key)
	}
	return NewMap(next), nil
}

// get returns nil for an absent key and for a nil receiver.
func coreGet(args []*Value) (*Value, error) {
	if err := exactArgs("get", args, 2); err != nil {
		return nil, err
	}
	switch args[0].Type() {
	case NilType:
		return Nil, nil
	case MapType:
		if v, ok := args[0].Map().Get(args[1]); ok {
			return v, nil
		}
		return Nil, nil
	}
	return nil, errBadArguments(callForm("get", args))
}

func coreContains(args []*Value) (*Value, error) {
	if err := exactArgs("contains?", args, 2); err != nil {
		return nil, err
	}
	switch args[0].Type() {
	case NilType:
		return False, nil
	case MapType:
		return NewBoolean(args[0].Map().Contains(args[1])), nil
	}
	return nil, errBadArguments(callForm("contains?", args))
}

func coreKeys(args []*Value) (*Value, error) {
	if err := exactArgs("keys", args, 1); err != nil {
		return nil, err
	}
	if args[0].Type() != MapType {
		return nil, errBadArguments(callForm("keys", args))
	}
	return NewList(args[0].Map().Keys()...), nil
}

func coreVals(args []*Value) (*Value, error) {
	if err := exactArgs("vals", args, 1); err != nil {
		return nil, err
	}
	if args[0].Type() != MapType {
		return nil, errBadArguments(callForm("vals", args))
	}
	return NewList(args[0].Map().Vals()...), nil
}
