package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/tessro/spin/internal/tui/styles"
)

// NowPlaying displays the song under the cursor
type NowPlaying struct{}

// NewNowPlaying creates a new NowPlaying component
func NewNowPlaying() *NowPlaying {
	return &NowPlaying{}
}

// Render renders the now playing panel. position is 1-based; zero total
// means the playlist is empty.
func (n *NowPlaying) Render(title string, position, total, width, height int, focused bool) string {
	heading := styles.PanelTitle("Now Playing", focused)

	var content string
	if total == 0 {
		content = styles.Muted.Render("No songs to play!")
	} else {
		content = n.renderSong(title, position, total, width-4)
	}

	panel := styles.Panel(focused).
		Width(width).
		Height(height)

	return panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		heading,
		"",
		content,
	))
}

func (n *NowPlaying) renderSong(title string, position, total, width int) string {
	icon := styles.StatusIcon(true)
	name := styles.Title.Width(width - 4).Render(truncate(title, width-4))

	barWidth := width - 12
	if barWidth < 10 {
		barWidth = 10
	}
	percent := float64(position) / float64(total) * 100
	bar := fmt.Sprintf("%s %s", styles.ProgressBar(percent, barWidth), styles.Dim.Render(fmt.Sprintf("%d/%d", position, total)))

	controls := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Render(styles.Dim.Render("⏮ p") + "   " + styles.Playing.Render("▶") + "   " + styles.Dim.Render("n ⏭"))

	return lipgloss.JoinVertical(lipgloss.Left,
		icon+" "+name,
		"",
		bar,
		"",
		controls,
	)
}
