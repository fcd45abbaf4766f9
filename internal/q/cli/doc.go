// Package cli runs a tree of commands as a command-line program.
//
// A program builds a tree of *Command values, binds typed flags with Flags (local to a command) or PersistentFlags (inherited by descendants), and calls Run
// with os.Args[1:]. Run selects the deepest command named by the leading non-flag tokens, parses flags anywhere on the line (until "--"), validates positional
// args, and calls the handler. It returns a process exit code:
//   - 0: success, or help was requested with -h/--help.
//   - 1: the handler returned an error (printed to Err without usage).
//   - 2: a usage mistake, e.g. an unknown flag or wrong number of args (message and help printed to Err).
//
// Handlers can pick any other code by returning an ExitError.
package cli
