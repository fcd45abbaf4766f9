package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// Options are the process surroundings for Run. Nil streams default to the os ones.
type Options struct {
	Args []string // Without the program name, ex: os.Args[1:].

	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Run parses opts.Args against the tree rooted at root, runs the selected handler, and returns the process exit code. It panics if root is nil or unnamed.
func Run(ctx context.Context, root *Command, opts Options) int {
	if root == nil || root.Name == "" {
		panic("cli: Run needs a named root command")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	in, out, errOut := opts.In, opts.Out, opts.Err
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}

	selected, args, err := parseArgv(root, opts.Args, out)
	if errors.Is(err, errHelpPrinted) {
		return 0
	}
	if err == nil && selected.Run == nil {
		if len(args) == 0 {
			err = usageErrorf("missing required subcommand")
		} else {
			err = usageErrorf("unknown subcommand: %s", args[0])
		}
	}
	if err == nil && selected.Args != nil {
		err = selected.Args(args)
	}
	if err == nil {
		err = selected.Run(&Context{Context: ctx, Command: selected, Args: args, In: in, Out: out, Err: errOut})
	}
	return exitCode(root, selected, err, errOut)
}

// exitCode reports err on w and maps it to a code. Code-2 errors are treated as usage mistakes and followed by help.
func exitCode(root, cmd *Command, err error, w io.Writer) int {
	if err == nil {
		return 0
	}
	code := 1
	var coder ExitCoder
	if errors.As(err, &coder) {
		code = coder.ExitCode()
	}

	var exitErr ExitError
	silent := errors.As(err, &exitErr) && exitErr.Err == nil
	if !silent {
		fmt.Fprintf(w, "%s: %v\n", root.Name, err)
	}
	if code == 2 {
		fmt.Fprintln(w)
		writeHelp(w, cmd)
	}
	return code
}
