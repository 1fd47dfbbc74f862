package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mal "github.com/ralexstokes/mal"
)

func main() {
	root := &cobra.Command{
		Use:   "mal [file [args...]]",
		Short: "A Lisp interpreter",
		Long: `mal is a Lisp interpreter. Run it without arguments for an
interactive session, or pass a source file to evaluate it; any further
arguments are bound to *ARGV* inside the script.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			env := mal.NewRootEnv()
			if len(args) > 0 {
				return mal.RunFile(args[0], args[1:], env)
			}
			return mal.NewRepl(env).Run()
		},
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
