// Package exitcode defines exit codes for the CLI.
package exitcode

// Process exit codes.
const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown task, blank title).
	UserError = 1

	// ConfigError indicates an unreadable config file, bad environment value or unwritable log file.
	ConfigError = 2

	// BackendError indicates a task service or network error.
	BackendError = 3

	// TerminalError indicates the interactive UI could not run (no terminal, unreadable input).
	TerminalError = 4
)
