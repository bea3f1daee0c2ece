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
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// The edited task, if any, is marked with an asterisk.
type ListCmd struct {
	withIDs bool
}

// SetWithIDs sets whether task IDs are printed (for testing).
func (c *ListCmd) SetWithIDs(withIDs bool) {
	c.withIDs = withIDs
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "list [--ids]" }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.withIDs, "ids", false, "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	printed := output.FormatList(out, sess.Store().Snapshot(), c.withIDs)
	if !printed && !cfg.Quiet {
		fmt.Fprintln(out, "no tasks")
	}
	return exitcode.Success
}
