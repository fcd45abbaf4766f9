package cli

import "fmt"

// ExitCoder is an error that chooses the process exit code. Run checks for it with errors.As, so wrapped ExitCoders keep their code.
type ExitCoder interface {
	error
	ExitCode() int
}

// UsageError reports that the command line itself is wrong: an unknown flag, a bad flag value, a wrong arg count, or a handler-level check such as a negative
// width. Run prints "<prog>: <Message>", then the selected command's help, and exits 2.
type UsageError struct {
	Message string
}

func (e UsageError) Error() string { return e.Message }
func (e UsageError) ExitCode() int { return 2 }

func usageErrorf(format string, args ...any) UsageError {
	return UsageError{Message: fmt.Sprintf(format, args...)}
}

// ExitError makes a handler exit with Code. With a non-nil Err, Run prints "<prog>: <Err>" first. With a nil Err nothing is printed, which suits commands that
// already reported each failing path on their own and only need a non-zero exit.
type ExitError struct {
	Code int
	Err  error
}

func (e ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

func (e ExitError) Unwrap() error { return e.Err }
func (e ExitError) ExitCode() int { return e.Code }
