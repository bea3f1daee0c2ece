package commands

import (
	"errors"
	"fmt"
	"io"

	"tasklist/internal/exitcode"
	"tasklist/internal/store"
)

// reportError prints err as an "error: ..." line and returns the matching exit code.
// Edit identity violations get their own code; everything else is a user error.
func reportError(errOut io.Writer, err error) int {
	fmt.Fprintf(errOut, "error: %v\n", err)
	if errors.Is(err, store.ErrIDMismatch) {
		return exitcode.EditError
	}
	return exitcode.UserError
}
