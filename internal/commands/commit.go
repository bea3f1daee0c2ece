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
	Register(&CommitCmd{})
}

// CommitCmd implements the commit command.
// It builds a full replacement of the edited task from the given label
// and icon, then hands it to the store.
type CommitCmd struct {
	icon      string
	closeEdit bool
}

// SetIcon sets the icon name (for testing).
func (c *CommitCmd) SetIcon(icon string) {
	c.icon = icon
}

// SetClose sets whether the edit ends after committing (for testing).
func (c *CommitCmd) SetClose(closeEdit bool) {
	c.closeEdit = closeEdit
}

func (c *CommitCmd) Name() string      { return "commit" }
func (c *CommitCmd) Aliases() []string { return []string{"save"} }
func (c *CommitCmd) Synopsis() string  { return "Apply changes to the task being edited" }
func (c *CommitCmd) Usage() string     { return "commit [--icon <kind>] [--close] [<label...>]" }

func (c *CommitCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.icon, "icon", "", "")
	fs.StringVar(&c.icon, "i", "", "")
	fs.BoolVar(&c.closeEdit, "close", false, "")
}

func (c *CommitCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	st := sess.Store()

	current, ok := st.CurrentEdit()
	if !ok {
		fmt.Fprintln(errOut, "error: no task is being edited")
		return exitcode.EditError
	}

	updated := current
	if len(args) > 0 {
		label := strings.Join(args, " ")
		if strings.TrimSpace(label) == "" {
			fmt.Fprintln(errOut, "error: label required")
			return exitcode.UserError
		}
		updated = updated.WithLabel(label)
	}

	icon, err := parseIconFlag(c.icon, current.Icon)
	if err != nil {
		return reportError(errOut, err)
	}
	updated = updated.WithIcon(icon)

	if err := st.CommitEdit(updated); err != nil {
		return reportError(errOut, err)
	}
	if c.closeEdit {
		st.CancelEdit()
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
