package mal

func init() {
	registerCoreBuiltin("list", coreList)
	registerCoreBuiltin("list?", typePredicate(ListType))
	registerCoreBuiltin("vector", coreVector)
	registerCoreBuiltin("vector?", typePredicate(VectorType))
	registerCoreBuiltin("sequential?", coreIsSequential)
	registerCoreBuiltin("empty?", coreIsEmpty)
	registerCoreBuiltin("count", coreCount)
	registerCoreBuiltin("cons", coreCons)
	registerCoreBuiltin("concat", coreConcat)
	registerCoreBuiltin("nth", coreNth)
	registerCoreBuiltin("first", coreFirst)
	registerCoreBuiltin("rest", coreRest)
	registerCoreBuiltin("conj", coreConj)
	registerCoreBuiltin("seq", coreSeq)
	registerCoreBuiltin("map", coreMap)
	registerCoreBuiltin("apply", coreApply)
}

func coreList(args []*Value) (*Value, error) {
	return NewList(args...), nil
}

func coreVector(args []*Value) (*Value, error) {
	return NewVector(args...), nil
}

func coreIsSequential(args []*Value) (*Value, error) {
	if err := exactArgs("sequential?", args, 1); err != nil {
		return nil, err
	}
	return NewBoolean(args[0].IsSequential()), nil
}

func coreIsEmpty(args []*Value) (*Value, error) {
	if err := exactArgs("empty?", args, 1); err != nil {
		return nil, err
	}
	switch {
	case args[0].Type() == NilType:
		return True, nil
	case args[0].IsSequential():
		return NewBoolean(len(args[0].Seq()) == 0), nil
	}
	return nil, errBadArguments(callForm("empty?", args))
}

func coreCount(args []*Value) (*Value, error) {
	if err := exactArgs("count", args, 1); err != nil {
		return nil, err
	}
	switch {
	case args[0].Type() == NilType:
		return NewNumber(0), nil
	case args[0].IsSequential():
		return NewNumber(int64(len(args[0].Seq()))), nil
	}
	return nil, errBadArguments(callForm("count", args))
}

// cons prepends an element, always producing a list.
func coreCons(args []*Value) (*Value, error) {
	if err := exactArgs("cons", args, 2); err != nil {
		return nil, err
	}
	tail, err := sequenceElems("cons", args, args[1])
	if err != nil {
		return nil, err
	}
	seq := make([]*Value, 0, len(tail)+1)
	seq = append(seq, args[0])
	seq = append(seq, tail...)
	return NewList(seq...), nil
}

// concat joins any number of sequences into one list.
func coreConcat(args []*Value) (*Value, error) {
	var seq []*Value
	for _, arg := range args {
		elems, err := sequenceElems("concat", args, arg)
		if err != nil {
			return nil, err
		}
		seq = append(seq, elems...)
	}
	return NewList(seq...), nil
}

func coreNth(args []*Value) (*Value, error) {
	if err := exactArgs("nth", args, 2); err != nil {
		return nil, err
	}
	if !args[0].IsSequential() || args[1].Type() != NumberType {
		return nil, errBadArguments(callForm("nth", args))
	}
	seq := args[0].Seq()
	idx := args[1].Num()
	if idx < 0 || idx >= int64(len(seq)) {
		return nil, errMessage("nth: index %d out of range", idx)
	}
	return seq[idx], nil
}

func coreFirst(args []*Value) (*Value, error) {
	if err := exactArgs("first", args, 1); err != nil {
		return nil, err
	}
	elems, err := sequenceElems("first", args, args[0])
	if err != nil {
		return nil, err
	}
	if len(elems) == 0 {
		return Nil, nil
	}
	return elems[0], nil
}

func coreRest(args []*Value) (*Value, error) {
	if err := exactArgs("rest", args, 1); err != nil {
		return nil, err
	}
	elems, err := sequenceElems("rest", args, args[0])
	if err != nil {
		return nil, err
	}
	if len(elems) == 0 {
		return NewList(), nil
	}
	return NewList(elems[1:]...), nil
}

// conj prepends for lists and appends for vectors, preserving the
// receiver's container kind.
func coreConj(args []*Value) (*Value, error) {
	if len(args) < 1 {
		return nil, errWrongArity(callForm("conj", args))
	}
	receiver := args[0]
	extra := args[1:]
	switch receiver.Type() {
	case ListType:
		seq := receiver.Seq()
		next := make([]*Value, 0, len(seq)+len(extra))
		for i := len(extra) - 1; i >= 0; i-- {
			next = append(next, extra[i])
		}
		next = append(next, seq...)
		return NewList(next...), nil
	case VectorType:
		seq := receiver.Seq()
		next := make([]*Value, 0, len(seq)+len(extra))
		next = append(next, seq...)
		next = append(next, extra...)
		return NewVector(next...), nil
	}
	return nil, errBadArguments(callForm("conj", args))
}

// seq normalizes its argument to a list, or nil when there is nothing to
// iterate: lists and vectors become lists, a string becomes a list of
// one-character strings, nil and empty collections become nil.
func coreSeq(args []*Value) (*Value, error) {
	if err := exactArgs("seq", args, 1); err != nil {
		return nil, err
	}
	arg := args[0]
	switch arg.Type() {
	case NilType:
		return Nil, nil
	case ListType, VectorType:
		if len(arg.Seq()) == 0 {
			return Nil, nil
		}
		return NewList(arg.Seq()...), nil
	case StringType:
		if arg.Str() == "" {
			return Nil, nil
		}
		var chars []*Value
		for _, c := range arg.Str() {
			chars = append(chars, NewString(string(c)))
		}
		return NewList(chars...), nil
	}
	return nil, errBadArguments(callForm("seq", args))
}

func coreMap(args []*Value) (*Value, error) {
	if err := exactArgs("map", args, 2); err != nil {
		return nil, err
	}
	elems, err := sequenceElems("map", args, args[1])
	if err != nil {
		return nil, err
	}
	result := make([]*Value, 0, len(elems))
	for _, elem := range elems {
		v, err := Apply(args[0], []*Value{elem})
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return NewList(result...), nil
}

// apply calls a function with the given arguments, flattening the final one.
func coreApply(args []*Value) (*Value, error) {
	if len(args) < 2 {
		return nil, errWrongArity(callForm("apply", args))
	}
	last, err := sequenceElems("apply", args, args[len(args)-1])
	if err != nil {
		return nil, err
	}
	callArgs := make([]*Value, 0, len(args)-2+len(last))
	callArgs = append(callArgs, args[1:len(args)-1]...)
	callArgs = append(callArgs, last...)
	return Apply(args[0], callArgs)
}

// sequenceElems unwraps a list/vector argument (nil counts as empty).
func sequenceElems(name string, args []*Value, arg *Value) ([]*Value, error) {
	switch {
	case arg.Type() == NilType:
		return nil, nil
	case arg.IsSequential():
		return arg.Seq(), nil
	}
	return nil, errBadArguments(callForm(name, args))
}
