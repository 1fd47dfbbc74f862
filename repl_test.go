package mal

import (
	"os"
	"path/filepath"
	"testing"

	. "gopkg.in/check.v1"
)

// Hook up gocheck into the "go test" runner.

func TestRepl(t *testing.T) { TestingT(t) }

type ReplSuite struct {
	env *Env
}

var _ = Suite(&ReplSuite{})

func (s *ReplSuite) SetUpTest(c *C) {
	s.env = CoreEnv()
	c.Assert(LoadPrelude(s.env), IsNil)
}

func (s *ReplSuite) rep(c *C, input string) string {
	out, err := Rep(input, s.env)
	c.Assert(err, IsNil, Commentf("input: %s", input))
	return out
}

func (s *ReplSuite) TestEndToEnd(c *C) {
	tests := []struct {
		input string
		want  string
	}{
		{"(+ 1 2 (* 3 4))", "15"},
		{"(let* (a 1 b (+ a 1)) (+ a b))", "3"},
		{"((fn* (& xs) (count xs)) 1 2 3)", "3"},
		{"(if (> 2 1) :yes :no)", ":yes"},
		{`(str "a" "b" 1)`, `"ab1"`},
		{"'(1 2)", "(1 2)"},
		{"`(1 ~(+ 1 1) ~@(list 3 4))", "(1 2 3 4)"},
		{"[(+ 1 1) 3]", "[2 3]"},
		{`{:k (+ 2 2)}`, "{:k 4}"},
	}
	for _, tt := range tests {
		c.Check(s.rep(c, tt.input), Equals, tt.want, Commentf("input: %s", tt.input))
	}
}

func (s *ReplSuite) TestDefinitionsPersistAcrossForms(c *C) {
	s.rep(c, "(def! fact (fn* (n) (if (<= n 1) 1 (* n (fact (- n 1))))))")
	c.Check(s.rep(c, "(fact 6)"), Equals, "720")
}

func (s *ReplSuite) TestGreetingForm(c *C) {
	// The greeting evaluates like any other form and yields nil.
	c.Check(s.rep(c, greetingForm), Equals, "nil")
}

func (s *ReplSuite) TestEmptyInputIsSilent(c *C) {
	_, err := Rep("   ; nothing here", s.env)
	c.Assert(err, NotNil)
	readerErr, ok := err.(*ReaderError)
	c.Assert(ok, Equals, true)
	c.Check(readerErr.Kind, Equals, ReaderEmptyInput)
}

func (s *ReplSuite) TestExtraInputIsReported(c *C) {
	_, err := Rep("(+ 1 2) 3", s.env)
	c.Assert(err, NotNil)
	readerErr, ok := err.(*ReaderError)
	c.Assert(ok, Equals, true)
	c.Check(readerErr.Kind, Equals, ReaderExtraInput)
}

func (s *ReplSuite) TestSlurpAndLoadFile(c *C) {
	dir := c.MkDir()
	path := filepath.Join(dir, "defs.mal")
	source := "(def! from-file 41)\n(def! plus-one (fn* (n) (+ n 1)))\n"
	c.Assert(os.WriteFile(path, []byte(source), 0o644), IsNil)

	c.Check(s.rep(c, "(slurp "+PrStr(NewString(path), true)+")"), Equals, PrStr(NewString(source), true))

	// load-file wraps the contents in (do ...), so both forms take effect.
	s.rep(c, "(load-file "+PrStr(NewString(path), true)+")")
	c.Check(s.rep(c, "(plus-one from-file)"), Equals, "42")
}

func (s *ReplSuite) TestSlurpMissingFile(c *C) {
	_, err := Rep(`(slurp "/definitely/not/here.mal")`, s.env)
	c.Assert(err, NotNil)
	evalErr, ok := err.(*EvalError)
	c.Assert(ok, Equals, true)
	c.Check(evalErr.Kind, Equals, EvalMessage)
}

func (s *ReplSuite) TestRunFileBindsArgv(c *C) {
	dir := c.MkDir()
	path := filepath.Join(dir, "script.mal")
	source := "(def! result (count *ARGV*))\n"
	c.Assert(os.WriteFile(path, []byte(source), 0o644), IsNil)

	c.Assert(RunFile(path, []string{"a", "b"}, s.env), IsNil)
	c.Check(s.rep(c, "result"), Equals, "2")
	c.Check(s.rep(c, "*ARGV*"), Equals, `("a" "b")`)
}

func (s *ReplSuite) TestRunFilePropagatesErrors(c *C) {
	dir := c.MkDir()
	path := filepath.Join(dir, "broken.mal")
	c.Assert(os.WriteFile(path, []byte("(no-such-fn 1)\n"), 0o644), IsNil)

	err := RunFile(path, nil, s.env)
	c.Assert(err, NotNil)
}

func (s *ReplSuite) TestErrorsAreOneLine(c *C) {
	_, err := Rep("(undefined-symbol)", s.env)
	c.Assert(err, NotNil)
	c.Check(err.Error(), Equals, "'undefined-symbol' not found")
}
