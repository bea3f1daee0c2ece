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
	Register(&SampleCmd{})
}

// SampleCmd implements the sample command, which adds random demo tasks.
type SampleCmd struct {
	count int
}

// SetCount sets the number of tasks to add (for testing).
func (c *SampleCmd) SetCount(count int) {
	c.count = count
}

func (c *SampleCmd) Name() string      { return "sample" }
func (c *SampleCmd) Aliases() []string { return nil }
func (c *SampleCmd) Synopsis() string  { return "Add random sample tasks" }
func (c *SampleCmd) Usage() string     { return "sample [--count <n>]" }

func (c *SampleCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.count, "count", 1, "")
	fs.IntVar(&c.count, "n", 1, "")
}

func (c *SampleCmd) Run(ctx context.Context, cfg *config.Config, sess *session.Session, args []string, out, errOut io.Writer) int {
	if c.count < 1 {
		fmt.Fprintf(errOut, "error: invalid count: %d\n", c.count)
		return exitcode.UserError
	}

	sess.AddSample(c.count)

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
