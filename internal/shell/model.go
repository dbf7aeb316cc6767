package shell

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/rolodex/internal/book"
	"github.com/smileynet/rolodex/internal/browse"
	"github.com/smileynet/rolodex/internal/command"
)

// mode selects what the shell model is currently showing.
type mode int

const (
	modePrompt mode = iota // command prompt with scrollback
	modeBrowse             // full listing pager
)

var (
	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"})
)

// ModelOptions configures the shell model.
type ModelOptions struct {
	Prompt string
	Color  bool
}

// Model is the Bubble Tea model for the interactive shell. It routes
// between the command prompt and the contact pager, mirroring a
// mode-switching dashboard.
type Model struct {
	book       *book.Book
	dispatcher *command.Dispatcher
	input      textinput.Model
	pager      browse.Model
	mode       mode
	lines      []string
	prompt     string
	color      bool
	width      int
	height     int
	quitting   bool
}

// NewModel creates a shell Model in prompt mode with a focused input.
func NewModel(b *book.Book, d *command.Dispatcher, opts ModelOptions) Model {
	ti := textinput.New()
	ti.Prompt = opts.Prompt
	if opts.Color {
		ti.PromptStyle = promptStyle
	}
	ti.Focus()

	return Model{
		book:       b,
		dispatcher: d,
		input:      ti,
		prompt:     opts.Prompt,
		color:      opts.Color,
	}
}

// Init starts the input cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages with mode-based routing.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if w := msg.Width - len(m.prompt) - 1; w > 0 {
			m.input.Width = w
		}
		var cmd tea.Cmd
		m.pager, cmd = m.pager.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.mode == modeBrowse {
			return m.updateBrowse(msg)
		}
		return m.updatePrompt(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// updateBrowse forwards keys to the pager and returns to prompt mode
// when it is dismissed.
func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.pager, cmd = m.pager.Update(msg)
	if m.pager.Done() {
		m.mode = modePrompt
		return m, textinput.Blink
	}
	return m, cmd
}

// updatePrompt handles keys in prompt mode.
func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyEnter:
		line := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		if line == "" {
			return m, nil
		}
		return m.execute(line)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// execute dispatches one command line and records its output in the
// scrollback.
func (m Model) execute(line string) (tea.Model, tea.Cmd) {
	m.lines = append(m.lines, m.prompt+line)

	res, err := m.dispatcher.Dispatch(line)

	switch {
	case err != nil && m.color:
		m.lines = append(m.lines, errorStyle.Render(res.Output))
	case res.Browse:
		m.pager = browse.NewModel(m.book, res.PageSize)
		m.mode = modeBrowse
		return m, nil
	default:
		m.lines = append(m.lines, strings.Split(res.Output, "\n")...)
	}

	if res.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the scrollback and prompt, or the pager in browse mode.
func (m Model) View() string {
	if m.mode == modeBrowse {
		return m.pager.View()
	}

	var b strings.Builder
	for _, line := range m.visibleLines() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if m.quitting {
		return b.String()
	}
	b.WriteString(m.input.View())
	b.WriteByte('\n')
	return b.String()
}

// visibleLines trims the scrollback to what fits above the prompt.
func (m Model) visibleLines() []string {
	if m.height <= 0 {
		return m.lines
	}
	avail := m.height - 2
	if avail < 1 || len(m.lines) <= avail {
		return m.lines
	}
	return m.lines[len(m.lines)-avail:]
}
