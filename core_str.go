package mal

import (
	"fmt"
	"strings"
)

func init() {
	registerCoreBuiltin("pr-str", corePrStr)
	registerCoreBuiltin("str", coreStr)
	registerCoreBuiltin("prn", corePrn)
	registerCoreBuiltin("println", corePrintln)
}

// joinArgs renders every argument and joins the results.
func joinArgs(args []*Value, readably bool, sep string) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = PrStr(arg, readably)
	}
	return strings.Join(parts, sep)
}

// pr-str renders readably, space-joined.
func corePrStr(args []*Value) (*Value, error) {
	return NewString(joinArgs(args, true, " ")), nil
}

// str renders unreadably, concatenated.
func coreStr(args []*Value) (*Value, error) {
	return NewString(joinArgs(args, false, "")), nil
}

// prn prints readably, space-joined, with a newline; returns nil.
func corePrn(args []*Value) (*Value, error) {
	fmt.Println(joinArgs(args, true, " "))
	return Nil, nil
}

// println prints unreadably, space-joined, with a newline; returns nil.
func corePrintln(args []*Value) (*Value, error) {
	fmt.Println(joinArgs(args, false, " "))
	return Nil, nil
}
