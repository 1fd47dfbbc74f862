package mal

// ValueType classifies a runtime value. Every value produced by the reader,
// the evaluator or a builtin carries exactly one of these tags; dispatch
// throughout the interpreter is a switch on the tag.
type ValueType int

const (
	// NilType is the nil singleton.
	NilType ValueType = iota

	// BooleanType is true or false.
	BooleanType

	// NumberType is a 64-bit signed integer.
	NumberType

	// StringType is an immutable character sequence. Printed with
	// surrounding quotes and escapes in readable mode, bare otherwise.
	StringType

	// KeywordType is an identifier introduced with a leading ':'. The
	// payload stores the bare name; the printer re-prepends the colon.
	KeywordType

	// SymbolType is an identifier resolved against the environment chain.
	SymbolType

	// ListType is an ordered sequence printed as ( ... ).
	ListType

	// VectorType is an ordered sequence printed as [ ... ]. A vector
	// compares equal to a list of equal elements.
	VectorType

	// MapType associates String/Keyword keys with values.
	MapType

	// LambdaType is a user-defined function (or macro) closing over the
	// environment in effect at its fn* form.
	LambdaType

	// HostFnType is a function implemented by the host.
	HostFnType

	// AtomType is a mutable cell holding one value. The only mutable
	// primitive in the value model.
	AtomType
)

// HostFn is the protocol every host-implemented builtin fulfils: a vector of
// already-evaluated arguments in, an evaluation result out. Host functions
// must not close over interpreter state; state travels as an Atom argument.
type HostFn func(args []*Value) (*Value, error)

// Lambda is the payload of a user-defined function. Params may end in '&'
// followed by a rest-parameter name. Env is the defining environment; it is
// shared, not copied, so the closure sees later definitions in its scope.
type Lambda struct {
	Params  []*Value
	Body    []*Value
	Env     *Env
	IsMacro bool
}

// Value is the universal sum type. The typ tag selects which payload fields
// are meaningful. Values are immutable after construction; the single
// exception is the cell field of an Atom.
type Value struct {
	typ ValueType

	truth    bool     // BooleanType
	num      int64    // NumberType
	str      string   // StringType, KeywordType, SymbolType
	seq      []*Value // ListType, VectorType
	assoc    *Assoc   // MapType
	fn       *Lambda  // LambdaType
	host     HostFn   // HostFnType
	hostName string   // HostFnType; identity for equality and debugging
	cell     *Value   // AtomType; mutated by reset!/swap!

	meta *Value // Symbol, List, Vector, Map, Lambda, HostFn; nil if absent
}

// Shared immutable singletons. Safe to share because with-meta never touches
// these types.
var (
	Nil   = &Value{typ: NilType}
	True  = &Value{typ: BooleanType, truth: true}
	False = &Value{typ: BooleanType}
)

// Type returns the value's tag.
func (v *Value) Type() ValueType { return v.typ }

func NewBoolean(b bool) *Value {
	if b {
		return True
	}
	return False
}

func NewNumber(n int64) *Value {
	return &Value{typ: NumberType, num: n}
}

func NewString(s string) *Value {
	return &Value{typ: StringType, str: s}
}

func NewKeyword(name string) *Value {
	return &Value{typ: KeywordType, str: name}
}

func NewSymbol(name string) *Value {
	return &Value{typ: SymbolType, str: name}
}

func NewList(seq ...*Value) *Value {
	return &Value{typ: ListType, seq: seq}
}

func NewVector(seq ...*Value) *Value {
	return &Value{typ: VectorType, seq: seq}
}

func NewMap(assoc *Assoc) *Value {
	return &Value{typ: MapType, assoc: assoc}
}

// NewMapFromSeq builds a map from alternating key/value forms, validating
// even arity and key types.
func NewMapFromSeq(seq []*Value) (*Value, error) {
	assoc, err := NewAssocFromSeq(seq)
	if err != nil {
		return nil, err
	}
	return NewMap(assoc), nil
}

func NewLambda(params, body []*Value, env *Env) *Value {
	return &Value{typ: LambdaType, fn: &Lambda{Params: params, Body: body, Env: env}}
}

// NewMacro returns a copy of the given lambda value with the macro flag set.
// The caller guarantees fn is a LambdaType.
func NewMacro(fn *Value) *Value {
	lambda := *fn.fn
	lambda.IsMacro = true
	return &Value{typ: LambdaType, fn: &lambda, meta: fn.meta}
}

func NewHostFn(name string, fn HostFn) *Value {
	return &Value{typ: HostFnType, host: fn, hostName: name}
}

func NewAtom(v *Value) *Value {
	return &Value{typ: AtomType, cell: v}
}

// Truth reports the boolean payload.
func (v *Value) Truth() bool { return v.truth }

// Num reports the number payload.
func (v *Value) Num() int64 { return v.num }

// Str reports the string payload of a String, Keyword or Symbol.
func (v *Value) Str() string { return v.str }

// Seq reports the elements of a List or Vector.
func (v *Value) Seq() []*Value { return v.seq }

// Map reports the association payload.
func (v *Value) Map() *Assoc { return v.assoc }

// Fn reports the lambda payload.
func (v *Value) Fn() *Lambda { return v.fn }

// Host reports the host-function payload.
func (v *Value) Host() HostFn { return v.host }

// HostName reports the name a host function was registered under.
func (v *Value) HostName() string { return v.hostName }

// Deref reads an atom's cell.
func (v *Value) Deref() *Value { return v.cell }

// Reset stores a new value into an atom's cell and returns it.
func (v *Value) Reset(next *Value) *Value {
	v.cell = next
	return next
}

// IsSequential reports whether the value is a List or a Vector.
func (v *Value) IsSequential() bool {
	return v.typ == ListType || v.typ == VectorType
}

// IsTruthy implements the conditional rule: everything but nil and false.
func (v *Value) IsTruthy() bool {
	switch v.typ {
	case NilType:
		return false
	case BooleanType:
		return v.truth
	default:
		return true
	}
}

// isSymbolNamed reports whether v is the symbol with the given name.
func (v *Value) isSymbolNamed(name string) bool {
	return v.typ == SymbolType && v.str == name
}

// Meta returns the value's metadata, or Nil when it carries none.
func (v *Value) Meta() *Value {
	if v.meta == nil {
		return Nil
	}
	return v.meta
}

// hasMetaSlot reports whether this type participates in metadata.
func (v *Value) hasMetaSlot() bool {
	switch v.typ {
	case SymbolType, ListType, VectorType, MapType, LambdaType, HostFnType:
		return true
	}
	return false
}

// WithMeta returns a fresh value identical to v except for the metadata
// pointer. The payload is shared, not copied.
func (v *Value) WithMeta(meta *Value) *Value {
	next := *v
	next.meta = meta
	return &next
}

// Equal implements structural equality. Lists and vectors compare equal
// element-wise regardless of container kind. Lambdas never compare equal;
// host functions compare by registered name. Metadata participates for the
// types that carry it.
func Equal(a, b *Value) bool {
	if a.IsSequential() && b.IsSequential() {
		if len(a.seq) != len(b.seq) {
			return false
		}
		for i := range a.seq {
			if !Equal(a.seq[i], b.seq[i]) {
				return false
			}
		}
		return metaEqual(a, b)
	}

	if a.typ != b.typ {
		return false
	}

	switch a.typ {
	case NilType:
		return true
	case BooleanType:
		return a.truth == b.truth
	case NumberType:
		return a.num == b.num
	case StringType, KeywordType:
		return a.str == b.str
	case SymbolType:
		return a.str == b.str && metaEqual(a, b)
	case MapType:
		return a.assoc.Equal(b.assoc) && metaEqual(a, b)
	case LambdaType:
		return false
	case HostFnType:
		return a.hostName == b.hostName && metaEqual(a, b)
	case AtomType:
		return a == b
	}
	return false
}

func metaEqual(a, b *Value) bool {
	return Equal(a.Meta(), b.Meta())
}

// String renders the value readably; convenient for debugging and %v.
func (v *Value) String() string {
	return PrStr(v, true)
}
