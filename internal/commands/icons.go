package commands

import (
	"context"
	"flag"
	"io"

	"tasklist/internal/config"
	"tasklist/internal/exitcode"
	"tasklist/internal/output"
	"tasklist/internal/session"
	"tasklist/internal/store"
)

func init() {
	Register(&IconsCmd{})
}

// IconsCmd implements the icons command.
type IconsCmd struct{}

func (c *IconsCmd) Name() string      { return "icons" }
func (c *IconsCmd) Aliases() []string { return nil }
func (c *IconsCmd) Synopsis() string  { return "Print icon kinds" }
func (c *IconsCmd) Usage() string     { return "icons" }

func (c *IconsCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *IconsCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	for _, icon := range store.IconKinds() {
		output.FormatIcon(out, icon)
	}
	return exitcode.Success
}

// parseIconFlag parses the --icon value, falling back to def when empty.
func parseIconFlag(value string, def store.IconKind) (store.IconKind, error) {
	if value == "" {
		return def, nil
	}
	return store.ParseIconKind(value)
}
