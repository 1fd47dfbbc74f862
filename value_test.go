package mal

import "testing"

func TestEqualAcrossContainers(t *testing.T) {
	list := NewList(NewNumber(1), NewNumber(2))
	vector := NewVector(NewNumber(1), NewNumber(2))

	if !Equal(list, vector) {
		t.Error("list and vector with equal elements must compare equal")
	}
	if !Equal(vector, list) {
		t.Error("equality must be symmetric across containers")
	}
	if Equal(list, NewList(NewNumber(1))) {
		t.Error("lists of different lengths compared equal")
	}
	if Equal(list, NewList(NewNumber(1), NewNumber(3))) {
		t.Error("lists with different elements compared equal")
	}
}

func TestEqualScalars(t *testing.T) {
	tests := []struct {
		name string
		a, b *Value
		want bool
	}{
		{"nil", Nil, Nil, true},
		{"booleans", True, True, true},
		{"boolean mismatch", True, False, false},
		{"numbers", NewNumber(3), NewNumber(3), true},
		{"strings", NewString("a"), NewString("a"), true},
		{"keywords", NewKeyword("a"), NewKeyword("a"), true},
		{"keyword is not string", NewKeyword("a"), NewString("a"), false},
		{"symbols", NewSymbol("x"), NewSymbol("x"), true},
		{"nil is not false", Nil, False, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%s, %s) = %t, want %t", Print(tt.a), Print(tt.b), got, tt.want)
			}
		})
	}
}

func TestEqualCallables(t *testing.T) {
	identity := func(args []*Value) (*Value, error) { return args[0], nil }

	lambda := NewLambda([]*Value{NewSymbol("x")}, []*Value{NewSymbol("x")}, NewEnv(nil))
	if Equal(lambda, lambda) {
		t.Error("lambdas never compare equal, even to themselves")
	}

	f := NewHostFn("identity", identity)
	g := NewHostFn("identity", identity)
	other := NewHostFn("other", identity)
	if !Equal(f, g) {
		t.Error("host functions with the same name must compare equal")
	}
	if Equal(f, other) {
		t.Error("host functions with different names compared equal")
	}
}

func TestMetadataEquality(t *testing.T) {
	meta, err := NewMapFromSeq([]*Value{NewString("doc"), NewString("x")})
	if err != nil {
		t.Fatal(err)
	}

	plain := NewVector(NewNumber(1))
	tagged := plain.WithMeta(meta)

	if Equal(plain, tagged) {
		t.Error("metadata must participate in equality")
	}
	if !Equal(tagged, plain.WithMeta(meta)) {
		t.Error("values with equal metadata must compare equal")
	}

	sym := NewSymbol("s")
	if Equal(sym, sym.WithMeta(meta)) {
		t.Error("symbol metadata must participate in equality")
	}
}

func TestWithMetaIsFresh(t *testing.T) {
	original := NewList(NewNumber(1))
	tagged := original.WithMeta(NewString("m"))

	if tagged == original {
		t.Error("WithMeta must return a fresh value")
	}
	if !Equal(original.Meta(), Nil) {
		t.Errorf("original metadata changed to %s", Print(original.Meta()))
	}
	if !Equal(tagged.Meta(), NewString("m")) {
		t.Errorf("tagged metadata = %s", Print(tagged.Meta()))
	}
}

func TestAtomIdentity(t *testing.T) {
	a := NewAtom(NewNumber(1))
	b := NewAtom(NewNumber(1))
	if Equal(a, b) {
		t.Error("distinct atoms compared equal")
	}
	if !Equal(a, a) {
		t.Error("an atom must equal itself")
	}

	a.Reset(NewNumber(2))
	if !Equal(a.Deref(), NewNumber(2)) {
		t.Errorf("deref after reset = %s", Print(a.Deref()))
	}
}

func TestIsTruthy(t *testing.T) {
	for _, falsy := range []*Value{Nil, False} {
		if falsy.IsTruthy() {
			t.Errorf("%s is truthy", Print(falsy))
		}
	}
	for _, truthy := range []*Value{True, NewNumber(0), NewString(""), NewList()} {
		if !truthy.IsTruthy() {
			t.Errorf("%s is falsy", Print(truthy))
		}
	}
}

func TestAssocOperations(t *testing.T) {
	assoc := NewAssoc()
	if err := assoc.Insert(NewKeyword("a"), NewNumber(1)); err != nil {
		t.Fatal(err)
	}
	if err := assoc.Insert(NewString("b"), NewNumber(2)); err != nil {
		t.Fatal(err)
	}

	t.Run("key types are preserved", func(t *testing.T) {
		keys := assoc.Keys()
		if len(keys) != 2 {
			t.Fatalf("got %d keys", len(keys))
		}
		if keys[0].Type() != KeywordType || keys[1].Type() != StringType {
			t.Errorf("key types = %d, %d", keys[0].Type(), keys[1].Type())
		}
	})

	t.Run("keyword and string keys are distinct", func(t *testing.T) {
		if _, ok := assoc.Get(NewString("a")); ok {
			t.Error("string key \"a\" matched keyword key :a")
		}
	})

	t.Run("bad key type", func(t *testing.T) {
		if err := assoc.Insert(NewNumber(1), Nil); err == nil {
			t.Error("number key accepted")
		}
	})

	t.Run("remove", func(t *testing.T) {
		clone := assoc.Clone()
		clone.Remove(NewKeyword("a"))
		if clone.Contains(NewKeyword("a")) {
			t.Error("key still present after Remove")
		}
		if !assoc.Contains(NewKeyword("a")) {
			t.Error("Remove on a clone mutated the original")
		}
	})

	t.Run("equality ignores insertion order", func(t *testing.T) {
		other := NewAssoc()
		if err := other.Insert(NewString("b"), NewNumber(2)); err != nil {
			t.Fatal(err)
		}
		if err := other.Insert(NewKeyword("a"), NewNumber(1)); err != nil {
			t.Fatal(err)
		}
		if !assoc.Equal(other) {
			t.Error("insertion order leaked into equality")
		}
	})
}
