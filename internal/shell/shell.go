// Package shell implements the interactive read-eval-print loop that
// drives the contact book: a Bubble Tea prompt when attached to a
// terminal, a plain line loop otherwise.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/smileynet/rolodex/internal/book"
	"github.com/smileynet/rolodex/internal/command"
)

// Session runs an interactive contact-manager session to completion.
type Session interface {
	Run() error
}

// Options configures session creation.
type Options struct {
	Input      io.Reader // Command source (default: os.Stdin).
	Output     io.Writer // Output destination (default: os.Stdout).
	ForcePlain bool      // Force the plain line loop even on a TTY.
	Prompt     string    // Input prompt text.
	PageSize   int       // Records per page in listings.
	Color      bool      // Style prompt and errors.
}

// New returns a TUI session when output is a TTY, or a plain line-loop
// session otherwise. ForcePlain overrides TTY detection.
func New(b *book.Book, opts Options) Session {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	d := command.NewDispatcher(b, command.WithPageSize(opts.PageSize))

	if opts.ForcePlain || !isTTY(opts.Output) {
		return &PlainSession{
			in:         opts.Input,
			out:        opts.Output,
			prompt:     opts.Prompt,
			dispatcher: d,
		}
	}

	return &TUISession{
		in:  opts.Input,
		out: opts.Output,
		model: NewModel(b, d, ModelOptions{
			Prompt: opts.Prompt,
			Color:  opts.Color,
		}),
	}
}

// isTTY reports whether w is connected to a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// PlainSession is a line-oriented REPL for pipes and scripts.
type PlainSession struct {
	in         io.Reader
	out        io.Writer
	prompt     string
	dispatcher *command.Dispatcher
}

// Run reads lines until a goodbye command or EOF, dispatching each one.
func (s *PlainSession) Run() error {
	scanner := bufio.NewScanner(s.in)
	for {
		_, _ = fmt.Fprint(s.out, s.prompt)
		if !scanner.Scan() {
			_, _ = fmt.Fprintln(s.out)
			return scanner.Err()
		}

		res, _ := s.dispatcher.Dispatch(scanner.Text())
		_, _ = fmt.Fprintln(s.out, res.Output)
		if res.Quit {
			return nil
		}
	}
}

// TUISession drives the Bubble Tea prompt model.
type TUISession struct {
	in    io.Reader
	out   io.Writer
	model Model
}

// Run executes the shell program until the user ends the session.
func (s *TUISession) Run() error {
	prog := tea.NewProgram(s.model, tea.WithInput(s.in), tea.WithOutput(s.out))
	_, err := prog.Run()
	return err
}
