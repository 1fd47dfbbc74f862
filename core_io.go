package mal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/juju/errors"
)

func init() {
	registerCoreBuiltin("read-string", coreReadString)
	registerCoreBuiltin("slurp", coreSlurp)
	registerCoreBuiltin("readline", coreReadline)
	registerCoreBuiltin("throw", coreThrow)
	registerCoreBuiltin("time-ms", coreTimeMs)
}

// stdin is shared by every readline call so buffered input is not lost
// between calls.
var stdin = bufio.NewReader(os.Stdin)

// read-string parses a string through the reader. Empty input yields nil;
// other reader failures surface as evaluation errors so try* can catch them.
func coreReadString(args []*Value) (*Value, error) {
	if err := exactArgs("read-string", args, 1); err != nil {
		return nil, err
	}
	if args[0].Type() != StringType {
		return nil, errBadArguments(callForm("read-string", args))
	}
	form, err := ReadStr(args[0].Str())
	if err != nil {
		if readerErr, ok := err.(*ReaderError); ok && readerErr.Kind == ReaderEmptyInput {
			return Nil, nil
		}
		return nil, errMessage("read-string: %v", err)
	}
	return form, nil
}

func coreSlurp(args []*Value) (*Value, error) {
	if err := exactArgs("slurp", args, 1); err != nil {
		return nil, err
	}
	if args[0].Type() != StringType {
		return nil, errBadArguments(callForm("slurp", args))
	}
	name := args[0].Str()
	contents, err := os.ReadFile(name)
	if err != nil {
		return nil, errMessage("%v", errors.Annotatef(err, "could not slurp %q", name))
	}
	return NewString(string(contents)), nil
}

// readline prints a prompt and returns one line of input, or nil on EOF.
func coreReadline(args []*Value) (*Value, error) {
	if err := exactArgs("readline", args, 1); err != nil {
		return nil, err
	}
	if args[0].Type() != StringType {
		return nil, errBadArguments(callForm("readline", args))
	}
	fmt.Print(args[0].Str())
	line, err := stdin.ReadString('\n')
	if err != nil && line == "" {
		if err == io.EOF {
			return Nil, nil
		}
		return nil, errMessage("%v", errors.Annotate(err, "could not read line"))
	}
	return NewString(strings.TrimRight(line, "\n")), nil
}

// throw wraps its argument in an exception for try*/catch*.
func coreThrow(args []*Value) (*Value, error) {
	if err := exactArgs("throw", args, 1); err != nil {
		return nil, err
	}
	return nil, Throw(args[0])
}

func coreTimeMs(args []*Value) (*Value, error) {
	if err := exactArgs("time-ms", args, 0); err != nil {
		return nil, err
	}
	return NewNumber(time.Now().UnixMilli()), nil
}
