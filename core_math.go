package mal

func init() {
	registerCoreBuiltin("+", foldNumbers("+", func(a, b int64) (int64, error) {
		return a + b, nil
	}))
	registerCoreBuiltin("-", foldNumbers("-", func(a, b int64) (int64, error) {
		return a - b, nil
	}))
	registerCoreBuiltin("*", foldNumbers("*", func(a, b int64) (int64, error) {
		return a * b, nil
	}))
	registerCoreBuiltin("/", foldNumbers("/", func(a, b int64) (int64, error) {
		if b == 0 {
			return 0, errMessage("division by zero")
		}
		return a / b, nil
	}))

	registerCoreBuiltin("<", compareNumbers("<", func(a, b int64) bool { return a < b }))
	registerCoreBuiltin("<=", compareNumbers("<=", func(a, b int64) bool { return a <= b }))
	registerCoreBuiltin(">", compareNumbers(">", func(a, b int64) bool { return a > b }))
	registerCoreBuiltin(">=", compareNumbers(">=", func(a, b int64) bool { return a >= b }))

	registerCoreBuiltin("=", coreEqual)
}

// numberArgs unwraps every argument as an integer. A non-number operand is a
// BadArguments error, never a silent zero.
func numberArgs(name string, args []*Value) ([]int64, error) {
	nums := make([]int64, len(args))
	for i, arg := range args {
		if arg.Type() != NumberType {
			return nil, errBadArguments(callForm(name, args))
		}
		nums[i] = arg.Num()
	}
	return nums, nil
}

// foldNumbers builds a variadic left-fold over integers with the first
// argument as the seed.
func foldNumbers(name string, f func(a, b int64) (int64, error)) HostFn {
	return func(args []*Value) (*Value, error) {
		nums, err := numberArgs(name, args)
		if err != nil {
			return nil, err
		}
		if len(nums) == 0 {
			return nil, errWrongArity(callForm(name, args))
		}
		acc := nums[0]
		for _, n := range nums[1:] {
			acc, err = f(acc, n)
			if err != nil {
				return nil, err
			}
		}
		return NewNumber(acc), nil
	}
}

// compareNumbers builds an ordered comparison over exactly two integers.
func compareNumbers(name string, f func(a, b int64) bool) HostFn {
	return func(args []*Value) (*Value, error) {
		if err := exactArgs(name, args, 2); err != nil {
			return nil, err
		}
		nums, err := numberArgs(name, args)
		if err != nil {
			return nil, err
		}
		return NewBoolean(f(nums[0], nums[1])), nil
	}
}

// coreEqual is structural equality across the value tree; lists and vectors
// are interchangeable.
func coreEqual(args []*Value) (*Value, error) {
	if err := exactArgs("=", args, 2); err != nil {
		return nil, err
	}
	return NewBoolean(Equal(args[0], args[1])), nil
}
