package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func runCLI(t *testing.T, root *Command, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := Run(context.Background(), root, Options{Args: args, Out: &out, Err: &errOut})
	return code, out.String(), errOut.String()
}

// newTree builds "prog [--verbose] {show [--mode m] [--count n] [--force] ARG, group {leaf}}".
func newTree() (root *Command, verbose *bool, mode *string, count *int, force *bool, got *[]string) {
	root = &Command{Name: "prog", Short: "Test program"}
	verbose = root.PersistentFlags().Bool("verbose", 'v', false, "Log more")

	var gotArgs []string
	show := &Command{
		Name:    "show",
		Short:   "Show a thing",
		Example: "prog show x\nprog show --mode=long x",
		Args:    ExactArgs(1),
		Run: func(c *Context) error {
			gotArgs = append([]string(nil), c.Args...)
			return nil
		},
	}
	mode = show.Flags().String("mode", 'm', "short", "Output mode")
	count = show.Flags().Int("count", 'n', 1, "Repeat count")
	force = show.Flags().Bool("force", 0, false, "Skip checks")

	group := &Command{Name: "group", Short: "Grouped commands"}
	group.AddCommand(&Command{Name: "leaf", Run: func(c *Context) error { return nil }})

	root.AddCommand(show, group)
	return root, verbose, mode, count, force, &gotArgs
}

func TestRun_SelectsCommandAndParsesInterspersedFlags(t *testing.T) {
	root, verbose, mode, count, force, got := newTree()

	code, stdout, stderr := runCLI(t, root, "--verbose", "show", "-n", "3", "thing", "--mode=long", "--force")
	if code != 0 {
		t.Fatalf("code=%d stdout=%q stderr=%q", code, stdout, stderr)
	}
	if stdout != "" || stderr != "" {
		t.Fatalf("expected no output; stdout=%q stderr=%q", stdout, stderr)
	}
	if !*verbose || *mode != "long" || *count != 3 || !*force {
		t.Fatalf("flags not applied: verbose=%v mode=%q count=%d force=%v", *verbose, *mode, *count, *force)
	}
	if len(*got) != 1 || (*got)[0] != "thing" {
		t.Fatalf("expected args=[thing], got %v", *got)
	}
}

func TestRun_BoolFlagForms(t *testing.T) {
	root, _, _, _, force, got := newTree()

	code, _, stderr := runCLI(t, root, "show", "--force", "false", "x")
	if code != 0 || *force {
		t.Fatalf("code=%d force=%v stderr=%q", code, *force, stderr)
	}

	// Only "true"/"false" are consumed; "1" stays positional.
	code, _, stderr = runCLI(t, root, "show", "--force", "1")
	if code != 0 || !*force {
		t.Fatalf("code=%d force=%v stderr=%q", code, *force, stderr)
	}
	if len(*got) != 1 || (*got)[0] != "1" {
		t.Fatalf("expected args=[1], got %v", *got)
	}
}

func TestFlagSet_Changed(t *testing.T) {
	root, verbose, _, count, force, _ := newTree()
	show := root.Commands()[0]

	code, _, stderr := runCLI(t, root, "show", "--force=false", "-n", "1", "x")
	if code != 0 {
		t.Fatalf("code=%d stderr=%q", code, stderr)
	}
	if *force || *count != 1 {
		t.Fatalf("force=%v count=%d", *force, *count)
	}
	if !show.Flags().Changed("force") || !show.Flags().Changed("count") {
		t.Fatalf("expected explicit default-valued flags to be Changed")
	}
	if show.Flags().Changed("mode") || root.PersistentFlags().Changed("verbose") || *verbose {
		t.Fatalf("flags not on the command line must not be Changed")
	}
	if show.Flags().Changed("nope") {
		t.Fatalf("unknown flag reported as Changed")
	}

	// A later Run starts fresh.
	code, _, stderr = runCLI(t, root, "show", "x")
	if code != 0 {
		t.Fatalf("code=%d stderr=%q", code, stderr)
	}
	if show.Flags().Changed("force") || show.Flags().Changed("count") {
		t.Fatalf("Changed must reset between runs")
	}
}

func TestRun_DoubleDashEndsFlags(t *testing.T) {
	root, _, mode, _, _, got := newTree()

	code, _, stderr := runCLI(t, root, "show", "--", "--mode=x")
	if code != 0 {
		t.Fatalf("code=%d stderr=%q", code, stderr)
	}
	if *mode != "short" {
		t.Fatalf("expected default mode, got %q", *mode)
	}
	if len(*got) != 1 || (*got)[0] != "--mode=x" {
		t.Fatalf("expected args=[--mode=x], got %v", *got)
	}
}

func TestRun_Help(t *testing.T) {
	root, _, _, _, _, _ := newTree()

	code, stdout, stderr := runCLI(t, root, "show", "--help")
	if code != 0 || stderr != "" {
		t.Fatalf("code=%d stderr=%q", code, stderr)
	}
	for _, want := range []string{
		"prog show - Show a thing\n",
		"Usage:\n  prog show [flags] [args]\n",
		"--mode <string>",
		"-n, --count <int>",
		"    --force",
		"-v, --verbose",
		"Example:\n  prog show x\n  prog show --mode=long x\n",
	} {
		if !strings.Contains(stdout, want) {
			t.Fatalf("help missing %q:\n%s", want, stdout)
		}
	}

	code, stdout, _ = runCLI(t, root, "-h")
	if code != 0 {
		t.Fatalf("code=%d", code)
	}
	if !strings.Contains(stdout, "Usage:\n  prog [flags] <command>\n") || !strings.Contains(stdout, "Commands:\n  group") {
		t.Fatalf("unexpected root help:\n%s", stdout)
	}
	if strings.Index(stdout, "group") > strings.Index(stdout, "show") {
		t.Fatalf("commands not sorted:\n%s", stdout)
	}
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown flag", []string{"show", "--nope", "x"}, "prog: unknown flag: --nope\n"},
		{"local flag before its command", []string{"--mode=x", "show", "x"}, "prog: unknown flag: --mode=x\n"},
		{"missing value", []string{"show", "x", "--mode"}, "prog: flag needs a value: --mode\n"},
		{"bad int", []string{"show", "x", "--count=many"}, "prog: invalid value \"many\" for -n/--count\n"},
		{"missing subcommand", nil, "prog: missing required subcommand\n"},
		{"unknown subcommand", []string{"group", "nope"}, "prog: unknown subcommand: nope\n"},
		{"wrong arg count", []string{"show"}, "prog: expected 1 arg, got 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, _, _, _, _, _ := newTree()
			code, stdout, stderr := runCLI(t, root, tt.args...)
			if code != 2 {
				t.Fatalf("expected code 2, got %d (stderr=%q)", code, stderr)
			}
			if stdout != "" {
				t.Fatalf("expected no stdout, got %q", stdout)
			}
			if !strings.HasPrefix(stderr, tt.want) {
				t.Fatalf("expected stderr to start with %q, got %q", tt.want, stderr)
			}
			if !strings.Contains(stderr, "Usage:") {
				t.Fatalf("expected usage after a usage error, got %q", stderr)
			}
		})
	}
}

func TestRun_HandlerErrors(t *testing.T) {
	root := &Command{Name: "prog"}
	var result error
	root.AddCommand(&Command{Name: "do", Run: func(c *Context) error { return result }})

	result = errors.New("boom")
	code, _, stderr := runCLI(t, root, "do")
	if code != 1 || stderr != "prog: boom\n" {
		t.Fatalf("code=%d stderr=%q", code, stderr)
	}

	result = ExitError{Code: 3}
	code, _, stderr = runCLI(t, root, "do")
	if code != 3 || stderr != "" {
		t.Fatalf("code=%d stderr=%q", code, stderr)
	}

	result = ExitError{Code: 4, Err: errors.New("partial")}
	code, _, stderr = runCLI(t, root, "do")
	if code != 4 || stderr != "prog: partial\n" {
		t.Fatalf("code=%d stderr=%q", code, stderr)
	}

	result = UsageError{Message: "bad input"}
	code, _, stderr = runCLI(t, root, "do")
	if code != 2 || !strings.HasPrefix(stderr, "prog: bad input\n\nprog do") {
		t.Fatalf("code=%d stderr=%q", code, stderr)
	}
}

func TestRun_HandlerStreams(t *testing.T) {
	root := &Command{Name: "prog", Run: func(c *Context) error {
		buf := new(bytes.Buffer)
		if _, err := buf.ReadFrom(c.In); err != nil {
			return err
		}
		_, err := c.Out.Write(bytes.ToUpper(buf.Bytes()))
		return err
	}}

	var out bytes.Buffer
	code := Run(context.Background(), root, Options{In: strings.NewReader("abc"), Out: &out, Err: new(bytes.Buffer)})
	if code != 0 || out.String() != "ABC" {
		t.Fatalf("code=%d out=%q", code, out.String())
	}
}

func TestArgsValidators(t *testing.T) {
	if err := NoArgs(nil); err != nil {
		t.Fatalf("NoArgs(nil) = %v", err)
	}
	if err := NoArgs([]string{"a"}); err == nil {
		t.Fatalf("NoArgs accepted an arg")
	}
	if err := MinimumArgs(1)([]string{"a", "b"}); err != nil {
		t.Fatalf("MinimumArgs(1) = %v", err)
	}
	if err := MinimumArgs(2)([]string{"a"}); err == nil || err.Error() != "expected at least 2 args, got 1" {
		t.Fatalf("MinimumArgs(2) = %v", err)
	}
	if err := RangeArgs(0, 1)([]string{"a", "b"}); err == nil || err.Error() != "expected 0 to 1 arg, got 2" {
		t.Fatalf("RangeArgs(0, 1) = %v", err)
	}
	var ue UsageError
	if !errors.As(ExactArgs(2)(nil), &ue) {
		t.Fatalf("expected a UsageError")
	}
}

func TestFlagSet_DuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	fs := (&Command{Name: "x"}).Flags()
	fs.Bool("a", 'a', false, "")
	fs.String("b", 'a', "", "")
}

func TestAddCommand_Panics(t *testing.T) {
	child := &Command{Name: "c"}
	(&Command{Name: "p1"}).AddCommand(child)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	(&Command{Name: "p2"}).AddCommand(child)
}
