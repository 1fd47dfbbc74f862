package mal

import (
	"strconv"
	"strings"
)

// Print renders a value readably: the inverse of the reader up to
// reader-macro sugar.
func Print(v *Value) string {
	return PrStr(v, true)
}

// PrStr renders a value. When readably is set, strings are re-escaped and
// quoted so the reader can parse the output back into an equal value.
func PrStr(v *Value, readably bool) string {
	switch v.Type() {
	case NilType:
		return "nil"
	case BooleanType:
		return strconv.FormatBool(v.Truth())
	case NumberType:
		return strconv.FormatInt(v.Num(), 10)
	case StringType:
		if readably {
			return escapeString(v.Str())
		}
		return v.Str()
	case KeywordType:
		return ":" + v.Str()
	case SymbolType:
		return v.Str()
	case ListType:
		return "(" + prSeq(v.Seq(), readably, " ") + ")"
	case VectorType:
		return "[" + prSeq(v.Seq(), readably, " ") + "]"
	case MapType:
		return "{" + prMap(v.Map(), readably) + "}"
	case LambdaType:
		if v.Fn().IsMacro {
			return "#<macro>"
		}
		return "#<fn>"
	case HostFnType:
		return "#<host-fn>"
	case AtomType:
		return "(atom " + PrStr(v.Deref(), readably) + ")"
	}
	return "#<unknown>"
}

func prSeq(seq []*Value, readably bool, sep string) string {
	parts := make([]string, len(seq))
	for i, v := range seq {
		parts[i] = PrStr(v, readably)
	}
	return strings.Join(parts, sep)
}

func prMap(assoc *Assoc, readably bool) string {
	keys := assoc.Keys()
	vals := assoc.Vals()
	parts := make([]string, 0, len(keys)*2)
	for i := range keys {
		parts = append(parts, PrStr(keys[i], readably), PrStr(vals[i], readably))
	}
	return strings.Join(parts, " ")
}

// escapeString performs the opposite of the reader's unescaping: newlines,
// backslashes and doublequotes become their printed representations and the
// result is wrapped in quotes.
func escapeString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, c := range s {
		switch c {
		case '\n':
			b.WriteString(`\n`)
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
