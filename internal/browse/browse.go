// Package browse renders the contents of a book as pages: a full-screen
// Bubble Tea pager for interactive sessions and a plain table for
// everything else.
package browse

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/rolodex/internal/book"
	"github.com/smileynet/rolodex/internal/contact"
)

// Model is the Bubble Tea model for the paginated contact browser.
// It can run standalone or embedded as a sub-mode of the shell model.
type Model struct {
	pages     [][]*contact.Record
	paginator paginator.Model
	keys      browseKeys
	help      help.Model
	done      bool
	width     int
}

// NewModel creates a browser over a snapshot of b, chunked into pages
// of up to pageSize records.
func NewModel(b *book.Book, pageSize int) Model {
	var pages [][]*contact.Record
	cur := b.Iterate(pageSize)
	for {
		page, ok := cur.Next()
		if !ok {
			break
		}
		pages = append(pages, page)
	}

	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = 1
	p.SetTotalPages(max(len(pages), 1))

	return Model{
		pages:     pages,
		paginator: p,
		keys:      browseKeyMap(),
		help:      help.New(),
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Done reports whether the browser was dismissed. Checked by the shell
// model to return to prompt mode.
func (m Model) Done() bool { return m.done }

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.done = true
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		var cmd tea.Cmd
		m.paginator, cmd = m.paginator.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the current page with a title, pagination dots, and help bar.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Contacts"))
	b.WriteString("\n\n")

	if len(m.pages) == 0 {
		b.WriteString(mutedText.Render("No contacts yet — add one from the shell"))
		b.WriteString("\n")
	} else {
		page := m.pages[m.paginator.Page]
		offset := m.paginator.Page * len(m.pages[0])
		for i, rec := range page {
			b.WriteString(renderRow(offset+i+1, rec))
			b.WriteByte('\n')
		}
		b.WriteString("\n")
		b.WriteString(m.paginator.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
