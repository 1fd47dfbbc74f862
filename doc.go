// A Lisp interpreter with a Clojure-flavored surface syntax.
//
// The pipeline is the classic one: a tokenizer splits source text into
// tokens, the reader turns the token stream into a value tree (applying the
// quote/quasiquote/deref/with-meta reader macros), and the evaluator walks
// the tree under a chain of lexically scoped environment frames. A small
// host-implemented core namespace plus a bootstrap prelude written in the
// language itself make the interpreter self-hosting for the rest of its
// library.
//
// A tiny example:
//
//	env := mal.NewRootEnv()
//	out, err := mal.Rep("(+ 1 2 (* 3 4))", env)
//	if err != nil {
//	    panic(err)
//	}
//	fmt.Println(out) // Output: 15
//
// The cmd/mal binary wraps this into a REPL (prompt "user> ") and a script
// runner; see RunFile and Repl.
package mal
