package mal

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/juju/errors"
)

const (
	// Prompt is the exact interactive prompt, trailing space included.
	Prompt = "user> "

	// HistoryFile is the line-editor history file, relative to the user's
	// home directory.
	HistoryFile = ".mal-history.txt"

	hostLanguage = "go"
	argvSymbol   = "*ARGV*"
	greetingForm = `(println (str "Mal [" *host-language* "]"))`
)

// Rep runs one read-eval-print cycle against the given environment and
// returns the printed result.
func Rep(input string, env *Env) (string, error) {
	form, err := ReadStr(input)
	if err != nil {
		return "", err
	}
	result, err := Eval(form, env)
	if err != nil {
		return "", err
	}
	return Print(result), nil
}

// NewRootEnv returns a root environment with the core namespace installed
// and the prelude loaded. A prelude failure is reported on stderr but does
// not prevent startup.
func NewRootEnv() *Env {
	env := CoreEnv()
	if err := LoadPrelude(env); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	return env
}

// RunFile evaluates a source file: *ARGV* is bound to the remaining
// arguments and the file is loaded through load-file, so files holding
// multiple top-level forms work.
func RunFile(file string, args []string, env *Env) error {
	argv := make([]*Value, len(args))
	for i, arg := range args {
		argv[i] = NewString(arg)
	}
	env.Root().Set(argvSymbol, NewList(argv...))

	_, err := Rep(fmt.Sprintf("(load-file %s)", PrStr(NewString(file), true)), env)
	return err
}

// Repl drives the interactive loop: read one form, evaluate, print, repeat.
type Repl struct {
	env *Env
	out io.Writer
	err io.Writer
}

func NewRepl(env *Env) *Repl {
	return &Repl{env: env, out: os.Stdout, err: os.Stderr}
}

// Run reads until EOF. The greeting is printed through the interpreter
// itself, like any other form.
func (r *Repl) Run() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      Prompt,
		HistoryFile: historyPath(),
	})
	if err != nil {
		return errors.Annotate(err, "could not initialize line editor")
	}
	defer rl.Close()

	// The greeting prints itself; its nil result is not echoed.
	if _, err := Rep(greetingForm, r.env); err != nil {
		fmt.Fprintln(r.err, err)
	}

	for {
		line, err := rl.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return nil
		default:
			return errors.Annotate(err, "could not read input")
		}
		r.evalAndPrint(line)
	}
}

// evalAndPrint reports one line per error and suppresses the empty-input
// signal so a blank line simply re-prompts.
func (r *Repl) evalAndPrint(line string) {
	out, err := Rep(line, r.env)
	if err != nil {
		if readerErr, ok := err.(*ReaderError); ok && readerErr.Kind == ReaderEmptyInput {
			return
		}
		fmt.Fprintln(r.err, err)
		return
	}
	fmt.Fprintln(r.out, out)
}

// historyPath locates the history file, or disables history when the home
// directory cannot be determined.
func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, HistoryFile)
}
