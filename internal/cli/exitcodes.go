package cli

import "errors"

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	// Use for: Normal, successful command execution.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Tracker file write failures, export failures, unexpected
	// errors, or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Habit or task not found, or any case where an item
	// reference doesn't match anything in the tracker.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: A corrupt tracker file or data that cannot be processed.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty or overlong names, duplicate names, unknown kinds or
	// weekdays, or any case where input fails validation rules.
	ExitValidation = 5
)

// CodedError pairs an error with the exit code a command chose for it.
// Commands return it instead of calling os.Exit so failure paths stay
// testable; the process exit happens once, in main.
type CodedError struct {
	Code int
	Err  error
}

func (e *CodedError) Error() string {
	return e.Err.Error()
}

func (e *CodedError) Unwrap() error {
	return e.Err
}

// Exit wraps err with an exit code for main to report
func Exit(code int, err error) error {
	return &CodedError{Code: code, Err: err}
}

// ExitCode extracts the exit code from an error chain, defaulting to ExitError
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.Code
	}
	return ExitError
}

