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
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
// Removing an unknown raw ID succeeds without changing anything.
type RmCmd struct{}

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return []string{"remove"} }
func (c *RmCmd) Synopsis() string  { return "Remove a task" }
func (c *RmCmd) Usage() string     { return "rm <ref>" }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	ref, err := ParseTaskRef(args)
	if err != nil {
		return reportError(errOut, err)
	}

	id, err := resolveTaskRef(sess.Store(), ref)
	if err != nil {
		return reportError(errOut, err)
	}

	sess.Store().Remove(id)

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
