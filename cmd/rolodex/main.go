package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/smileynet/rolodex/internal/book"
	"github.com/smileynet/rolodex/internal/command"
	"github.com/smileynet/rolodex/internal/config"
	"github.com/smileynet/rolodex/internal/shell"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for rolodex.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Shell   ShellCmd         `cmd:"" default:"1" help:"Start an interactive contact manager session."`
	Eval    EvalCmd          `cmd:"" help:"Evaluate one command line against an empty book and exit."`
}

// ShellCmd starts the interactive session.
type ShellCmd struct {
	Plain    bool   `help:"Force plain line mode even if stdout is a TTY." default:"false"`
	Prompt   string `help:"Override the input prompt."`
	PageSize int    `help:"Override the page size for contact listings." default:"0"`
}

// loadConfig loads layered config from user and project paths with env overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/rolodex/config.yaml"),
		".rolodex.yaml",
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Run executes the shell command.
func (s *ShellCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("shell: %w", err)
	}

	// Apply CLI flag overrides.
	if s.Prompt != "" {
		cfg.Shell.Prompt = s.Prompt
	}
	if s.PageSize > 0 {
		cfg.Display.PageSize = s.PageSize
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("shell: %w", err)
	}

	sess := shell.New(book.New(), shell.Options{
		ForcePlain: s.Plain,
		Prompt:     cfg.Shell.Prompt,
		PageSize:   cfg.Display.PageSize,
		Color:      cfg.Display.Color,
	})
	return sess.Run()
}

// EvalCmd dispatches a single command line, prints the result, and
// exits. The book starts empty, so this is mainly a scripting and
// smoke-test aid.
type EvalCmd struct {
	Line []string `arg:"" help:"Command line to evaluate."`
}

// Run executes the eval command.
func (e *EvalCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("eval: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("eval: %w", err)
	}

	d := command.NewDispatcher(book.New(), command.WithPageSize(cfg.Display.PageSize))
	return e.run(os.Stdout, d)
}

// run dispatches the line with the given dispatcher, enabling testable wiring.
func (e *EvalCmd) run(w io.Writer, d *command.Dispatcher) error {
	res, err := d.Dispatch(strings.Join(e.Line, " "))
	_, _ = fmt.Fprintln(w, res.Output)
	if err != nil {
		return &commandError{err: err}
	}
	return nil
}

// commandError marks a dispatch failure so exitCode can distinguish it
// from setup errors.
type commandError struct {
	err error
}

func (e *commandError) Error() string { return e.err.Error() }
func (e *commandError) Unwrap() error { return e.err }

// Exit codes.
const (
	exitSuccess = 0
	exitCommand = 1
	exitSetup   = 2
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ce *commandError
	if errors.As(err, &ce) {
		return exitCommand
	}
	return exitSetup
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, kong.Vars{"version": version + " " + commit + " " + date})
	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
