package mal

func init() {
	registerCoreBuiltin("nil?", typePredicate(NilType))
	registerCoreBuiltin("true?", coreIsTrue)
	registerCoreBuiltin("false?", coreIsFalse)
	registerCoreBuiltin("symbol?", typePredicate(SymbolType))
	registerCoreBuiltin("keyword?", typePredicate(KeywordType))
	registerCoreBuiltin("string?", typePredicate(StringType))
	registerCoreBuiltin("number?", typePredicate(NumberType))
	registerCoreBuiltin("atom?", typePredicate(AtomType))
	registerCoreBuiltin("fn?", coreIsFn)
	registerCoreBuiltin("macro?", coreIsMacro)

	registerCoreBuiltin("symbol", coreSymbol)
	registerCoreBuiltin("keyword", coreKeyword)
}

// typePredicate builds a single-argument predicate over the value tag.
func typePredicate(typ ValueType) HostFn {
	return func(args []*Value) (*Value, error) {
		if len(args) != 1 {
			return nil, errWrongArity(NewList(args...))
		}
		return NewBoolean(args[0].Type() == typ), nil
	}
}

func coreIsTrue(args []*Value) (*Value, error) {
	if err := exactArgs("true?", args, 1); err != nil {
		return nil, err
	}
	return NewBoolean(args[0].Type() == BooleanType && args[0].Truth()), nil
}

func coreIsFalse(args []*Value) (*Value, error) {
	if err := exactArgs("false?", args, 1); err != nil {
		return nil, err
	}
	return NewBoolean(args[0].Type() == BooleanType && !args[0].Truth()), nil
}

// fn? recognizes anything callable as a function: host functions and
// non-macro lambdas.
func coreIsFn(args []*Value) (*Value, error) {
	if err := exactArgs("fn?", args, 1); err != nil {
		return nil, err
	}
	arg := args[0]
	callable := arg.Type() == HostFnType ||
		(arg.Type() == LambdaType && !arg.Fn().IsMacro)
	return NewBoolean(callable), nil
}

func coreIsMacro(args []*Value) (*Value, error) {
	if err := exactArgs("macro?", args, 1); err != nil {
		return nil, err
	}
	arg := args[0]
	return NewBoolean(arg.Type() == LambdaType && arg.Fn().IsMacro), nil
}

func coreSymbol(args []*Value) (*Value, error) {
	if err := exactArgs("symbol", args, 1); err != nil {
		return nil, err
	}
	switch args[0].Type() {
	case SymbolType:
		return args[0], nil
	case StringType:
		return NewSymbol(args[0].Str()), nil
	}
	return nil, errBadArguments(callForm("symbol", args))
}

// keyword is idempotent on keywords.
func coreKeyword(args []*Value) (*Value, error) {
	if err := exactArgs("keyword", args, 1); err != nil {
		return nil, err
	}
	switch args[0].Type() {
	case KeywordType:
		return args[0], nil
	case StringType:
		return NewKeyword(args[0].Str()), nil
	}
	return nil, errBadArguments(callForm("keyword", args))
}
