package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/smileynet/rolodex/internal/book"
)

// Table renders every contact in b as bordered tables, one per page of
// pageSize records, for non-interactive output. Row numbering continues
// across pages.
func Table(b *book.Book, pageSize int) string {
	if b.Len() == 0 {
		return "The book is empty"
	}

	var pages []string
	n := 0
	cur := b.Iterate(pageSize)
	for {
		page, ok := cur.Next()
		if !ok {
			break
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("#", "Name", "Phones", "Birthday")
		for _, rec := range page {
			n++
			nums := make([]string, 0, len(rec.Phones()))
			for _, p := range rec.Phones() {
				nums = append(nums, p.String())
			}
			t.Row(fmt.Sprintf("%d", n), rec.Name(), strings.Join(nums, ", "), rec.Birthday().String())
		}
		pages = append(pages, t.Render())
	}

	return strings.Join(pages, "\n")
}
