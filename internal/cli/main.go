// Package cli wires configuration, logging and the command registry into a runnable program.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"tasklist/internal/commands"
	"tasklist/internal/config"
	"tasklist/internal/exitcode"
	"tasklist/internal/logging"
	"tasklist/internal/session"
)

// Options are the global flags given before the command.
type Options struct {
	ConfigDir string
	Quiet     bool
	Debug     bool
}

// ParseGlobalFlags parses the flags that precede the command name.
// It returns the options and the remaining arguments.
func ParseGlobalFlags(args []string) (Options, []string, error) {
	var opts Options

	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&opts.ConfigDir, "config", "", "")
	fs.BoolVar(&opts.Quiet, "quiet", false, "")
	fs.BoolVar(&opts.Debug, "debug", false, "")

	if err := fs.Parse(args); err != nil {
		errStr := err.Error()
		if flagName, ok := strings.CutPrefix(errStr, "flag provided but not defined: "); ok {
			return opts, nil, fmt.Errorf("unknown flag: %s", flagName)
		}
		return opts, nil, err
	}
	return opts, fs.Args(), nil
}

// Main runs the program with the given arguments (without the program name)
// and returns the exit code. interactive reports whether in is a terminal;
// the prompt is only shown then.
func Main(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer, interactive bool) int {
	opts, rest, err := ParseGlobalFlags(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	cfg, err := config.Load(opts.ConfigDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.InternalError
	}
	if opts.Quiet {
		cfg.Quiet = true
	}
	if opts.Debug {
		cfg.Debug = true
	}

	logger := logging.New(cfg.Debug, errOut)
	defer func() { _ = logger.Sync() }()

	sess := session.New(cfg, logger)
	defer sess.Close()

	dispatcher := NewDispatcher(commands.DefaultRegistry, sess)
	if interactive && !cfg.Quiet {
		dispatcher.SetPrompt(cfg.Prompt)
	}

	return dispatcher.Run(ctx, rest, in, out, errOut)
}
