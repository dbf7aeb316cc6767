package browse

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/rolodex/internal/book"
	"github.com/smileynet/rolodex/internal/contact"
)

func testBook(t *testing.T, names ...string) *book.Book {
	t.Helper()
	b := book.New()
	for i, name := range names {
		rec, err := contact.New(name, "")
		if err != nil {
			t.Fatal(err)
		}
		num := strings.Repeat(string(rune('0'+i%10)), 10)
		if _, err := rec.AddPhone(num); err != nil {
			t.Fatal(err)
		}
		if err := b.Add(rec); err != nil {
			t.Fatal(err)
		}
	}
	return b
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModel_Pages(t *testing.T) {
	b := testBook(t, "A", "B", "C", "D", "E")

	m := NewModel(b, 2)

	if len(m.pages) != 3 {
		t.Fatalf("pages = %d, want 3", len(m.pages))
	}
	if m.paginator.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", m.paginator.TotalPages)
	}
	if len(m.pages[2]) != 1 {
		t.Errorf("last page len = %d, want 1", len(m.pages[2]))
	}
}

func TestModel_PageNavigation(t *testing.T) {
	m := NewModel(testBook(t, "A", "B", "C"), 1)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.paginator.Page != 1 {
		t.Errorf("Page = %d after right, want 1", m.paginator.Page)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.paginator.Page != 0 {
		t.Errorf("Page = %d after left, want 0", m.paginator.Page)
	}
}

func TestModel_QuitDismisses(t *testing.T) {
	m := NewModel(testBook(t, "A"), 1)

	m, _ = m.Update(keyRunes("q"))
	if !m.Done() {
		t.Error("Done() = false after q, want true")
	}
}

func TestModel_View(t *testing.T) {
	m := NewModel(testBook(t, "Ann", "Bob"), 1)

	view := m.View()
	if !strings.Contains(view, "Contacts") {
		t.Error("view missing title")
	}
	if !strings.Contains(view, "Ann") {
		t.Error("view missing first page contact")
	}
	if strings.Contains(view, "Bob") {
		t.Error("view shows a contact from another page")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if !strings.Contains(m.View(), "Bob") {
		t.Error("view missing second page contact after paging")
	}
}

func TestModel_ViewEmptyBook(t *testing.T) {
	m := NewModel(book.New(), 3)

	if !strings.Contains(m.View(), "No contacts yet") {
		t.Error("empty view should say the book is empty")
	}
}

func TestTable(t *testing.T) {
	b := testBook(t, "Ann", "Bob", "Cat")
	rec, _ := b.Find("Ann")
	if _, err := rec.SetBirthday("15-03-1990"); err != nil {
		t.Fatal(err)
	}

	out := Table(b, 2)
	for _, want := range []string{"Ann", "Bob", "Cat", "Name", "15-03-1990"} {
		if !strings.Contains(out, want) {
			t.Errorf("Table() missing %q", want)
		}
	}
}

func TestTable_EmptyBook(t *testing.T) {
	if got := Table(book.New(), 2); got != "The book is empty" {
		t.Errorf("Table(empty) = %q", got)
	}
}
