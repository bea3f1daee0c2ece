package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"tasklist/internal/config"
	"tasklist/internal/exitcode"
	"tasklist/internal/session"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	icon string
}

// SetIcon sets the icon name (for testing).
func (c *AddCmd) SetIcon(icon string) {
	c.icon = icon
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Add a task" }
func (c *AddCmd) Usage() string     { return "add [--icon <kind>] <label...>" }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.icon, "icon", "", "")
	fs.StringVar(&c.icon, "i", "", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	// The store accepts blank labels; the front end does not submit them.
	label := strings.Join(args, " ")
	if strings.TrimSpace(label) == "" {
		fmt.Fprintln(errOut, "error: label required")
		return exitcode.UserError
	}

	icon, err := parseIconFlag(c.icon, cfg.Icon())
	if err != nil {
		return reportError(errOut, err)
	}

	sess.Store().Add(label, icon)

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
