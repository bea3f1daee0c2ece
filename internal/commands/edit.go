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
	Register(&EditCmd{})
}

// EditCmd implements the edit command, which selects a task for editing.
type EditCmd struct{}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return []string{"select"} }
func (c *EditCmd) Synopsis() string  { return "Select a task for editing" }
func (c *EditCmd) Usage() string     { return "edit <ref>" }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	ref, err := ParseTaskRef(args)
	if err != nil {
		return reportError(errOut, err)
	}

	id, err := resolveTaskRef(sess.Store(), ref)
	if err != nil {
		return reportError(errOut, err)
	}

	if err := sess.Store().SelectForEdit(id); err != nil {
		return reportError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
