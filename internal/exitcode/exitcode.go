// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown command, unknown task).
	UserError = 1

	// EditError indicates a commit with no active edit or for the wrong task.
	EditError = 2

	// InternalError indicates a config, logging or I/O failure.
	InternalError = 3
)
