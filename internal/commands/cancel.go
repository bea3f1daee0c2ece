package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tasklist/internal/config"
	"tasklist/internal/exitcode"
	"tasklist/internal/session"
)

func init() {
	Register(&CancelCmd{})
}

// CancelCmd implements the cancel command.
type CancelCmd struct{}

func (c *CancelCmd) Name() string      { return "cancel" }
func (c *CancelCmd) Aliases() []string { return nil }
func (c *CancelCmd) Synopsis() string  { return "Stop editing" }
func (c *CancelCmd) Usage() string     { return "cancel" }

func (c *CancelCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *CancelCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	sess.Store().CancelEdit()

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
