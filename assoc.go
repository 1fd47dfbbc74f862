package mal

// mapKey identifies a map entry. Only String and Keyword values are legal
// keys; the kind is kept so keys read back out with their original type.
type mapKey struct {
	kind ValueType
	name string
}

// Assoc is the payload of a Map value: an insertion-ordered association from
// String/Keyword keys to values. Insertion order is kept so printing and
// keys/vals are deterministic.
type Assoc struct {
	order    []mapKey
	bindings map[mapKey]*Value
}

func NewAssoc() *Assoc {
	return &Assoc{bindings: make(map[mapKey]*Value)}
}

// NewAssocFromSeq builds an association from alternating key/value forms.
// Odd arity is a Message error; a non-String/Keyword key is a BadArguments
// error.
func NewAssocFromSeq(seq []*Value) (*Assoc, error) {
	if len(seq)%2 != 0 {
		return nil, errMessage("need an even number of elements to make a map")
	}
	assoc := NewAssoc()
	for i := 0; i < len(seq); i += 2 {
		if err := assoc.Insert(seq[i], seq[i+1]); err != nil {
			return nil, err
		}
	}
	return assoc, nil
}

func keyFor(key *Value) (mapKey, error) {
	switch key.Type() {
	case StringType, KeywordType:
		return mapKey{kind: key.Type(), name: key.Str()}, nil
	default:
		return mapKey{}, errBadArguments(key)
	}
}

func (k mapKey) value() *Value {
	if k.kind == KeywordType {
		return NewKeyword(k.name)
	}
	return NewString(k.name)
}

// Insert adds or overwrites an entry. Overwriting keeps the key's original
// position in the insertion order.
func (a *Assoc) Insert(key, val *Value) error {
	k, err := keyFor(key)
	if err != nil {
		return err
	}
	if _, exists := a.bindings[k]; !exists {
		a.order = append(a.order, k)
	}
	a.bindings[k] = val
	return nil
}

// Get looks up a key. A missing entry is (nil-value, false), not an error;
// the caller decides what absence means.
func (a *Assoc) Get(key *Value) (*Value, bool) {
	k, err := keyFor(key)
	if err != nil {
		return nil, false
	}
	v, ok := a.bindings[k]
	return v, ok
}

// Contains reports whether the key is present.
func (a *Assoc) Contains(key *Value) bool {
	_, ok := a.Get(key)
	return ok
}

// Remove drops an entry if present.
func (a *Assoc) Remove(key *Value) {
	k, err := keyFor(key)
	if err != nil {
		return
	}
	if _, ok := a.bindings[k]; !ok {
		return
	}
	delete(a.bindings, k)
	for i, existing := range a.order {
		if existing == k {
			a.order = append(a.order[:i:i], a.order[i+1:]...)
			break
		}
	}
}

// Len reports the number of entries.
func (a *Assoc) Len() int { return len(a.bindings) }

// Keys returns the keys in insertion order, with their original types.
func (a *Assoc) Keys() []*Value {
	keys := make([]*Value, 0, len(a.order))
	for _, k := range a.order {
		keys = append(keys, k.value())
	}
	return keys
}

// Vals returns the values in insertion order.
func (a *Assoc) Vals() []*Value {
	vals := make([]*Value, 0, len(a.order))
	for _, k := range a.order {
		vals = append(vals, a.bindings[k])
	}
	return vals
}

// Clone returns an independent copy sharing the stored values.
func (a *Assoc) Clone() *Assoc {
	next := &Assoc{
		order:    append([]mapKey(nil), a.order...),
		bindings: make(map[mapKey]*Value, len(a.bindings)),
	}
	for k, v := range a.bindings {
		next.bindings[k] = v
	}
	return next
}

// Equal compares two associations entry-wise. Insertion order does not
// participate in equality.
func (a *Assoc) Equal(b *Assoc) bool {
	if len(a.bindings) != len(b.bindings) {
		return false
	}
	for k, v := range a.bindings {
		other, ok := b.bindings[k]
		if !ok || !Equal(v, other) {
			return false
		}
	}
	return true
}
