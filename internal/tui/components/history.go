package components

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/tessro/spin/internal/tui/styles"
)

// HistoryEntry represents a song the cursor landed on
type HistoryEntry struct {
	Title    string
	PlayedAt time.Time
	Skipped  bool
}

// History displays recently played songs, newest first
type History struct{}

// NewHistory creates a new History component
func NewHistory() *History {
	return &History{}
}

// Render renders the history panel
func (h *History) Render(entries []HistoryEntry, width, height int, focused bool) string {
	title := styles.PanelTitle("History", focused)

	var content string
	if len(entries) == 0 {
		content = styles.Muted.Render("No history yet")
	} else {
		content = h.renderHistory(entries, width-4, height-4)
	}

	panel := styles.Panel(focused).
		Width(width).
		Height(height)

	return panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		content,
	))
}

func (h *History) renderHistory(entries []HistoryEntry, width, maxLines int) string {
	lines := make([]string, 0, maxLines)

	for i, entry := range entries {
		if i >= maxLines {
			break
		}

		icon := "✓"
		if entry.Skipped {
			icon = "⏭"
		}

		ago := humanize.Time(entry.PlayedAt)
		available := width - 3 - len(ago) // icon, space, gap
		title := truncate(entry.Title, available)

		padding := width - 2 - lipgloss.Width(title) - len(ago)
		if padding < 1 {
			padding = 1
		}

		line := styles.Dim.Render(icon) + " " + title +
			lipgloss.NewStyle().Width(padding).Render("") +
			styles.Dim.Render(ago)

		lines = append(lines, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
