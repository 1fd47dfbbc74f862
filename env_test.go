package mal

import "testing"

func TestEnvLookup(t *testing.T) {
	outer := NewEnv(nil)
	outer.Set("a", NewNumber(1))
	inner := NewEnv(outer)

	v, err := inner.Get("a")
	if err != nil {
		t.Fatalf("Get through chain: %v", err)
	}
	if !Equal(v, NewNumber(1)) {
		t.Errorf("got %s", Print(v))
	}

	_, err = inner.Get("missing")
	evalErr, ok := err.(*EvalError)
	if !ok || evalErr.Kind != EvalMissingSymbol {
		t.Fatalf("missing lookup error = %v", err)
	}
	if evalErr.Error() != "'missing' not found" {
		t.Errorf("message = %q", evalErr.Error())
	}
}

// TestEnvShadowing pins the shadowing property: a child binding hides the
// outer one without touching it.
func TestEnvShadowing(t *testing.T) {
	outer := NewEnv(nil)
	outer.Set("n", NewString("a"))
	child := NewEnv(outer)
	child.Set("n", NewString("b"))

	if v, _ := child.Get("n"); !Equal(v, NewString("b")) {
		t.Errorf("child sees %s", Print(v))
	}
	if v, _ := outer.Get("n"); !Equal(v, NewString("a")) {
		t.Errorf("outer sees %s", Print(v))
	}
}

func TestEnvRoot(t *testing.T) {
	root := NewEnv(nil)
	mid := NewEnv(root)
	leaf := NewEnv(mid)

	if leaf.Root() != root {
		t.Error("Root did not reach the outermost frame")
	}
	if root.Root() != root {
		t.Error("Root of a root must be itself")
	}
}

func TestNewEnvBinding(t *testing.T) {
	params := func(names ...string) []*Value {
		seq := make([]*Value, len(names))
		for i, n := range names {
			seq[i] = NewSymbol(n)
		}
		return seq
	}
	nums := func(ns ...int64) []*Value {
		seq := make([]*Value, len(ns))
		for i, n := range ns {
			seq[i] = NewNumber(n)
		}
		return seq
	}

	t.Run("positional", func(t *testing.T) {
		env, err := NewEnvBinding(nil, params("a", "b"), nums(1, 2))
		if err != nil {
			t.Fatal(err)
		}
		if v, _ := env.Get("b"); !Equal(v, NewNumber(2)) {
			t.Errorf("b = %s", Print(v))
		}
	})

	t.Run("rest collects extras", func(t *testing.T) {
		env, err := NewEnvBinding(nil, params("a", "b", "&", "c"), nums(1, 2, 3, 4))
		if err != nil {
			t.Fatal(err)
		}
		v, _ := env.Get("c")
		if !Equal(v, NewList(NewNumber(3), NewNumber(4))) {
			t.Errorf("c = %s", Print(v))
		}
	})

	t.Run("rest defaults to empty list", func(t *testing.T) {
		env, err := NewEnvBinding(nil, params("a", "&", "rest"), nums(1))
		if err != nil {
			t.Fatal(err)
		}
		v, _ := env.Get("rest")
		if v.Type() != ListType || len(v.Seq()) != 0 {
			t.Errorf("rest = %s", Print(v))
		}
	})

	t.Run("too few arguments", func(t *testing.T) {
		_, err := NewEnvBinding(nil, params("a", "b"), nums(1))
		evalErr, ok := err.(*EvalError)
		if !ok || evalErr.Kind != EvalWrongArity {
			t.Errorf("error = %v", err)
		}
	})

	t.Run("too many arguments", func(t *testing.T) {
		_, err := NewEnvBinding(nil, params("a"), nums(1, 2))
		evalErr, ok := err.(*EvalError)
		if !ok || evalErr.Kind != EvalWrongArity {
			t.Errorf("error = %v", err)
		}
	})

	t.Run("dangling rest marker", func(t *testing.T) {
		_, err := NewEnvBinding(nil, params("a", "&"), nums(1))
		evalErr, ok := err.(*EvalError)
		if !ok || evalErr.Kind != EvalBadArguments {
			t.Errorf("error = %v", err)
		}
	})
}
