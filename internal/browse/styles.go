package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/rolodex/internal/contact"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})

	nameStyle = lipgloss.NewStyle().Bold(true)

	mutedText = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})

	birthdayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "5", Dark: "13"})
)

// renderRow renders one numbered contact line for the pager.
func renderRow(n int, rec *contact.Record) string {
	line := fmt.Sprintf("%s %s  %s",
		mutedText.Render(fmt.Sprintf("%3d.", n)),
		nameStyle.Render(rec.Name()),
		joinPhones(rec))
	if bd := rec.Birthday(); !bd.IsZero() {
		line += "  " + birthdayStyle.Render("🎂 "+bd.String())
	}
	return line
}

// joinPhones returns the record's phone numbers comma-joined, or a muted
// placeholder when there are none.
func joinPhones(rec *contact.Record) string {
	phones := rec.Phones()
	if len(phones) == 0 {
		return mutedText.Render("(no phones)")
	}
	nums := make([]string, len(phones))
	for i, p := range phones {
		nums[i] = p.String()
	}
	return strings.Join(nums, ", ")
}
