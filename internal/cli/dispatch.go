package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"tasklist/internal/commands"
	"tasklist/internal/exitcode"
	"tasklist/internal/output"
	"tasklist/internal/session"
	"tasklist/internal/store"
)

// Dispatcher handles command-line parsing and dispatch against one session.
type Dispatcher struct {
	registry *commands.Registry
	sess     *session.Session
	prompt   string
}

// NewDispatcher creates a new dispatcher with the given registry and session.
func NewDispatcher(registry *commands.Registry, sess *session.Session) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		sess:     sess,
	}
}

// SetPrompt sets the prompt written before each interactive line.
// An empty prompt disables it.
func (d *Dispatcher) SetPrompt(prompt string) {
	d.prompt = prompt
}

// Run dispatches args as a single command, or serves lines from in when
// args is empty. Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) == 0 {
		return d.Serve(ctx, in, out, errOut)
	}
	return d.Dispatch(ctx, args, out, errOut)
}

// Serve reads commands line by line until EOF, "quit" or "exit".
// A failing line is reported and the loop continues.
func (d *Dispatcher) Serve(ctx context.Context, in io.Reader, out, errOut io.Writer) int {
	logger := d.sess.Logger()

	if d.sess.Config().AutoList {
		unsubscribe := d.sess.Observe(func(snap store.Snapshot) {
			output.FormatList(out, snap, false)
		})
		defer unsubscribe()
	}

	scanner := bufio.NewScanner(in)
	for {
		if ctx.Err() != nil {
			return exitcode.Success
		}
		if d.prompt != "" {
			fmt.Fprint(out, d.prompt)
		}
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		args := strings.Fields(line)
		if args[0] == "quit" || args[0] == "exit" {
			return exitcode.Success
		}

		code := d.Dispatch(ctx, args, out, errOut)
		logger.Debug("command finished", zap.String("command", args[0]), zap.Int("code", code))
	}

	// Input closed on interrupt.
	if ctx.Err() != nil {
		return exitcode.Success
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(errOut, "error: failed to read input: %v\n", err)
		return exitcode.InternalError
	}
	if d.prompt != "" {
		fmt.Fprintln(out)
	}
	return exitcode.Success
}

// Dispatch runs one command line (command name followed by its arguments).
func (d *Dispatcher) Dispatch(ctx context.Context, args []string, out, errOut io.Writer) int {
	cmdName := args[0]

	// Flags require a command
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatchCommand(ctx, cmd, args[1:], out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	// Fresh flag set per dispatch; RegisterFlags resets the command's flag fields.
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	cfg := *d.sess.Config()

	// Common flags
	fs.BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "")

	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		return reportFlagError(cmd, err, out, errOut)
	}

	// Check if first positional arg starts with - (should have been parsed as flag)
	positionalArgs := fs.Args()
	if len(positionalArgs) > 0 && strings.HasPrefix(positionalArgs[0], "-") && positionalArgs[0] != "-" {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positionalArgs[0])
		return exitcode.UserError
	}

	return cmd.Run(ctx, &cfg, d.sess, positionalArgs, out, errOut)
}

// reportFlagError translates a flag package error into an "error: ..." line.
func reportFlagError(cmd commands.Command, err error, out, errOut io.Writer) int {
	if errors.Is(err, flag.ErrHelp) {
		fmt.Fprintf(out, "usage: %s\n", cmd.Usage())
		return exitcode.Success
	}

	errStr := err.Error()

	if flagName, ok := strings.CutPrefix(errStr, "flag needs an argument: "); ok {
		fmt.Fprintf(errOut, "error: flag needs an argument: %s\n", flagName)
		return exitcode.UserError
	}

	if flagName, ok := strings.CutPrefix(errStr, "flag provided but not defined: "); ok {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", flagName)
		return exitcode.UserError
	}

	fmt.Fprintf(errOut, "error: %s\n", errStr)
	return exitcode.UserError
}
