package cli

import "fmt"

// The validators below return a UsageError, so a wrong arg count exits 2 and Run prints the command's help after the message (ex: "expected 2 args, got 1" for
// "nutekcode diff a.txt").

// NoArgs rejects any positional arg. Used by commands like "config" and "version".
func NoArgs(args []string) error {
	if len(args) == 0 {
		return nil
	}
	return usageErrorf("expected no args, got %d", len(args))
}

// ExactArgs accepts exactly n positional args.
func ExactArgs(n int) ArgsFunc {
	return RangeArgs(n, n)
}

// MinimumArgs accepts n or more positional args, as needed by commands that take a list of paths.
func MinimumArgs(n int) ArgsFunc {
	return func(args []string) error {
		if len(args) >= n {
			return nil
		}
		return usageErrorf("expected at least %s, got %d", pluralArgs(n), len(args))
	}
}

// RangeArgs accepts between min and max positional args, inclusive. RangeArgs(0, 1) fits an optional path.
func RangeArgs(min, max int) ArgsFunc {
	return func(args []string) error {
		switch {
		case len(args) >= min && len(args) <= max:
			return nil
		case min == max:
			return usageErrorf("expected %s, got %d", pluralArgs(min), len(args))
		default:
			return usageErrorf("expected %d to %s, got %d", min, pluralArgs(max), len(args))
		}
	}
}

// pluralArgs renders n with the right noun: "1 arg", "2 args".
func pluralArgs(n int) string {
	noun := "args"
	if n == 1 {
		noun = "arg"
	}
	return fmt.Sprintf("%d %s", n, noun)
}
