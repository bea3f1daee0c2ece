package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tasklist/internal/config"
	"tasklist/internal/exitcode"
	"tasklist/internal/output"
	"tasklist/internal/session"
)

func init() {
	Register(&CurrentCmd{})
}

// CurrentCmd implements the current command.
type CurrentCmd struct{}

func (c *CurrentCmd) Name() string      { return "current" }
func (c *CurrentCmd) Aliases() []string { return nil }
func (c *CurrentCmd) Synopsis() string  { return "Show the task being edited" }
func (c *CurrentCmd) Usage() string     { return "current" }

func (c *CurrentCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *CurrentCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	st := sess.Store()
	task, ok := st.CurrentEdit()
	if !ok {
		fmt.Fprintln(out, "no task is being edited")
		return exitcode.Success
	}

	output.FormatTaskWithID(out, displayNumber(st, task.ID), task, true)
	return exitcode.Success
}
