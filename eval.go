package mal

import "os"

// Special form names. A list whose head is one of these symbols receives
// non-standard evaluation instead of function application.
const (
	defineForm      = "def!"
	letForm         = "let*"
	sequenceForm    = "do"
	ifForm          = "if"
	lambdaForm      = "fn*"
	quoteForm       = "quote"
	quasiquoteForm  = "quasiquote"
	unquoteForm     = "unquote"
	spliceForm      = "splice-unquote"
	defmacroForm    = "defmacro!"
	macroexpandForm = "macroexpand"
	tryForm         = "try*"
	catchForm       = "catch*"
	evalForm        = "eval"
	envForm         = "env"
)

// Eval evaluates a form under the given environment. The loop re-enters
// itself for forms in tail position (if branches, do/let* bodies, lambda
// application, eval) so deep self-recursion does not grow the Go stack.
func Eval(val *Value, env *Env) (*Value, error) {
	for {
		if val.Type() == ListType {
			expanded, err := macroexpand(val, env)
			if err != nil {
				return nil, err
			}
			val = expanded
		}

		switch val.Type() {
		case SymbolType:
			return env.Get(val.Str())
		case VectorType:
			seq, err := evalSeq(val.Seq(), env)
			if err != nil {
				return nil, err
			}
			return NewVector(seq...), nil
		case MapType:
			return evalMap(val.Map(), env)
		case ListType:
			// handled below
		default:
			return val, nil
		}

		seq := val.Seq()
		if len(seq) == 0 {
			return val, nil
		}

		if head := seq[0]; head.Type() == SymbolType {
			switch head.Str() {
			case defineForm:
				return evalDefine(val, seq[1:], env)

			case defmacroForm:
				return evalDefmacro(val, seq[1:], env)

			case letForm:
				child, body, err := evalLetBindings(val, seq[1:], env)
				if err != nil {
					return nil, err
				}
				for _, form := range body[:len(body)-1] {
					if _, err := Eval(form, child); err != nil {
						return nil, err
					}
				}
				val, env = body[len(body)-1], child
				continue

			case sequenceForm:
				if len(seq) < 2 {
					return nil, errWrongArity(val)
				}
				for _, form := range seq[1 : len(seq)-1] {
					if _, err := Eval(form, env); err != nil {
						return nil, err
					}
				}
				val = seq[len(seq)-1]
				continue

			case ifForm:
				branch, err := evalIfBranch(val, seq[1:], env)
				if err != nil {
					return nil, err
				}
				if branch == nil {
					return Nil, nil
				}
				val = branch
				continue

			case lambdaForm:
				return evalLambda(val, seq[1:], env)

			case quoteForm:
				if len(seq) != 2 {
					return nil, errWrongArity(val)
				}
				return seq[1], nil

			case quasiquoteForm:
				if len(seq) != 2 {
					return nil, errWrongArity(val)
				}
				expansion, err := quasiquote(seq[1])
				if err != nil {
					return nil, err
				}
				val = expansion
				continue

			case macroexpandForm:
				if len(seq) != 2 {
					return nil, errWrongArity(val)
				}
				return macroexpand(seq[1], env)

			case tryForm:
				return evalTry(val, seq[1:], env)

			case evalForm:
				// Host-level eval: evaluate the argument, then
				// re-evaluate its result in the root environment.
				if len(seq) != 2 {
					return nil, errWrongArity(val)
				}
				arg, err := Eval(seq[1], env)
				if err != nil {
					return nil, err
				}
				val, env = arg, env.Root()
				continue

			case envForm:
				env.Inspect(os.Stdout)
				return Nil, nil
			}
		}

		// Function application: evaluate the head and every element of
		// the tail in order, then apply.
		fn, err := Eval(seq[0], env)
		if err != nil {
			return nil, err
		}
		args, err := evalSeq(seq[1:], env)
		if err != nil {
			return nil, err
		}

		switch fn.Type() {
		case HostFnType:
			return fn.Host()(args)
		case LambdaType:
			lambda := fn.Fn()
			child, err := NewEnvBinding(lambda.Env, lambda.Params, args)
			if err != nil {
				return nil, err
			}
			body := lambda.Body
			for _, form := range body[:len(body)-1] {
				if _, err := Eval(form, child); err != nil {
					return nil, err
				}
			}
			val, env = body[len(body)-1], child
			continue
		default:
			return nil, errBadArguments(val)
		}
	}
}

// Apply applies an already-evaluated callable to already-evaluated
// arguments. Shared by the evaluator's macro expansion and by the builtins
// that re-enter the interpreter (swap!, map, apply).
func Apply(fn *Value, args []*Value) (*Value, error) {
	switch fn.Type() {
	case HostFnType:
		return fn.Host()(args)
	case LambdaType:
		lambda := fn.Fn()
		child, err := NewEnvBinding(lambda.Env, lambda.Params, args)
		if err != nil {
			return nil, err
		}
		return evalSequence(lambda.Body, child)
	default:
		return nil, errBadArguments(fn)
	}
}

// evalSeq evaluates forms strictly, left to right.
func evalSeq(seq []*Value, env *Env) ([]*Value, error) {
	result := make([]*Value, 0, len(seq))
	for _, form := range seq {
		v, err := Eval(form, env)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}

// evalSequence evaluates forms in order and returns the last result. An
// empty sequence is an error, consistent with arity checks elsewhere.
func evalSequence(seq []*Value, env *Env) (*Value, error) {
	if len(seq) == 0 {
		return nil, errMessage("empty sequence in body position")
	}
	var result *Value
	for _, form := range seq {
		v, err := Eval(form, env)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

// evalMap evaluates each value of a map literal; keys remain literal.
func evalMap(assoc *Assoc, env *Env) (*Value, error) {
	next := NewAssoc()
	keys := assoc.Keys()
	vals := assoc.Vals()
	for i := range keys {
		v, err := Eval(vals[i], env)
		if err != nil {
			return nil, err
		}
		if err := next.Insert(keys[i], v); err != nil {
			return nil, err
		}
	}
	return NewMap(next), nil
}

func evalDefine(form *Value, operands []*Value, env *Env) (*Value, error) {
	if len(operands) != 2 {
		return nil, errWrongArity(form)
	}
	name := operands[0]
	if name.Type() != SymbolType {
		return nil, errBadArguments(form)
	}
	v, err := Eval(operands[1], env)
	if err != nil {
		return nil, err
	}
	env.Set(name.Str(), v)
	return v, nil
}

func evalDefmacro(form *Value, operands []*Value, env *Env) (*Value, error) {
	if len(operands) != 2 {
		return nil, errWrongArity(form)
	}
	name := operands[0]
	if name.Type() != SymbolType {
		return nil, errBadArguments(form)
	}
	v, err := Eval(operands[1], env)
	if err != nil {
		return nil, err
	}
	if v.Type() != LambdaType {
		return nil, errBadArguments(form)
	}
	macro := NewMacro(v)
	env.Set(name.Str(), macro)
	return macro, nil
}

// evalLetBindings builds the child frame for let*, evaluating each binding
// expression in the growing frame so later pairs see earlier ones. It
// returns the frame and the body forms.
func evalLetBindings(form *Value, operands []*Value, env *Env) (*Env, []*Value, error) {
	if len(operands) < 2 {
		return nil, nil, errWrongArity(form)
	}
	bindings := operands[0]
	if !bindings.IsSequential() || len(bindings.Seq())%2 != 0 {
		return nil, nil, errBadArguments(form)
	}

	child := NewEnv(env)
	pairs := bindings.Seq()
	for i := 0; i < len(pairs); i += 2 {
		name := pairs[i]
		if name.Type() != SymbolType {
			return nil, nil, errBadArguments(form)
		}
		v, err := Eval(pairs[i+1], child)
		if err != nil {
			return nil, nil, err
		}
		child.Set(name.Str(), v)
	}
	return child, operands[1:], nil
}

// evalIfBranch evaluates the predicate and selects the branch to evaluate
// next, or nil when the alternative is omitted and the predicate is false.
func evalIfBranch(form *Value, operands []*Value, env *Env) (*Value, error) {
	if len(operands) < 2 || len(operands) > 3 {
		return nil, errWrongArity(form)
	}
	predicate, err := Eval(operands[0], env)
	if err != nil {
		return nil, err
	}
	if predicate.IsTruthy() {
		return operands[1], nil
	}
	if len(operands) == 3 {
		return operands[2], nil
	}
	return nil, nil
}

func evalLambda(form *Value, operands []*Value, env *Env) (*Value, error) {
	if len(operands) < 2 {
		return nil, errWrongArity(form)
	}
	params := operands[0]
	if !params.IsSequential() {
		return nil, errBadArguments(form)
	}
	for _, param := range params.Seq() {
		if param.Type() != SymbolType {
			return nil, errBadArguments(form)
		}
	}
	return NewLambda(params.Seq(), operands[1:], env), nil
}

// evalTry evaluates the body; on an evaluation error the catch* clause binds
// the thrown value (or a stringified message) in a child frame and runs its
// handler body there.
func evalTry(form *Value, operands []*Value, env *Env) (*Value, error) {
	if len(operands) < 1 || len(operands) > 2 {
		return nil, errWrongArity(form)
	}

	result, err := Eval(operands[0], env)
	if err == nil {
		return result, nil
	}
	if len(operands) == 1 {
		return nil, err
	}

	evalErr, ok := err.(*EvalError)
	if !ok {
		return nil, err
	}

	clause := operands[1]
	if clause.Type() != ListType || len(clause.Seq()) != 3 ||
		!clause.Seq()[0].isSymbolNamed(catchForm) {
		return nil, errBadArguments(form)
	}
	param := clause.Seq()[1]
	if param.Type() != SymbolType {
		return nil, errBadArguments(form)
	}

	child := NewEnv(env)
	child.Set(param.Str(), evalErr.BindingValue())
	return Eval(clause.Seq()[2], child)
}

// quasiquote is a syntactic transformation producing code that, when
// evaluated, yields the intended sequence. unquote substitutes a form's
// value; splice-unquote splices a sequence's elements in place.
func quasiquote(arg *Value) (*Value, error) {
	if !arg.IsSequential() || len(arg.Seq()) == 0 {
		return NewList(NewSymbol(quoteForm), arg), nil
	}
	elems := arg.Seq()

	if elems[0].isSymbolNamed(unquoteForm) {
		if len(elems) < 2 {
			return nil, errWrongArity(arg)
		}
		return elems[1], nil
	}

	if first := elems[0]; first.IsSequential() && len(first.Seq()) > 0 &&
		first.Seq()[0].isSymbolNamed(spliceForm) {
		if len(first.Seq()) < 2 {
			return nil, errWrongArity(first)
		}
		rest, err := quasiquote(NewList(elems[1:]...))
		if err != nil {
			return nil, err
		}
		return NewList(NewSymbol("concat"), first.Seq()[1], rest), nil
	}

	head, err := quasiquote(elems[0])
	if err != nil {
		return nil, err
	}
	tail, err := quasiquote(NewList(elems[1:]...))
	if err != nil {
		return nil, err
	}
	return NewList(NewSymbol("cons"), head, tail), nil
}

// isMacroCall reports whether the form is a list whose head resolves in the
// environment to a macro.
func isMacroCall(val *Value, env *Env) (*Value, bool) {
	if val.Type() != ListType || len(val.Seq()) == 0 {
		return nil, false
	}
	head := val.Seq()[0]
	if head.Type() != SymbolType {
		return nil, false
	}
	resolved, err := env.Get(head.Str())
	if err != nil {
		return nil, false
	}
	if resolved.Type() != LambdaType || !resolved.Fn().IsMacro {
		return nil, false
	}
	return resolved, true
}

// macroexpand repeatedly applies the resolved macro to the unevaluated tail
// until the head is no longer a macro call.
func macroexpand(val *Value, env *Env) (*Value, error) {
	for {
		macro, ok := isMacroCall(val, env)
		if !ok {
			return val, nil
		}
		expansion, err := Apply(macro, val.Seq()[1:])
		if err != nil {
			return nil, err
		}
		val = expansion
	}
}
