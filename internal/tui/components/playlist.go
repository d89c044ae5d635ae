package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/tessro/spin/internal/playlist"
	"github.com/tessro/spin/internal/tui/styles"
)

// Playlist displays every song with the current one highlighted
type Playlist struct {
	offset int
	// cursor is the current song's index at the last render; the view only
	// follows the current song when it moves.
	cursor int
}

// NewPlaylist creates a new Playlist component
func NewPlaylist() *Playlist {
	return &Playlist{cursor: -1}
}

// ScrollDown scrolls the list down
func (p *Playlist) ScrollDown() {
	p.offset++
}

// ScrollUp scrolls the list up
func (p *Playlist) ScrollUp() {
	if p.offset > 0 {
		p.offset--
	}
}

// Render renders the playlist panel
func (p *Playlist) Render(songs []playlist.Entry, width, height int, focused bool) string {
	title := styles.PanelTitle("Playlist", focused)

	var content string
	if len(songs) == 0 {
		content = styles.Muted.Render("Playlist is empty. Press a to add a song.")
	} else {
		content = p.renderSongs(songs, width-4, height-4)
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

func (p *Playlist) renderSongs(songs []playlist.Entry, width, maxLines int) string {
	visibleCount := maxLines - 1 // Leave room for "more" indicator
	if visibleCount < 1 {
		visibleCount = 1
	}

	if idx := currentIndex(songs); idx != p.cursor {
		p.offset = keepVisible(p.offset, idx, visibleCount, len(songs))
		p.cursor = idx
	} else {
		p.offset = clampOffset(p.offset, visibleCount, len(songs))
	}

	start := p.offset
	end := start + visibleCount
	if end > len(songs) {
		end = len(songs)
	}

	lines := make([]string, 0, end-start+1)

	// "XX. " (4) + "▶ " (2)
	const overhead = 6

	for i := start; i < end; i++ {
		song := songs[i]
		num := fmt.Sprintf("%2d.", i+1)
		title := truncate(song.Title, width-overhead)

		var line string
		if song.Current {
			line = styles.Playing.Render(fmt.Sprintf("%s ▶ %s", num, title))
		} else {
			line = fmt.Sprintf("%s   %s", styles.Dim.Render(num), title)
		}
		lines = append(lines, line)
	}

	if end < len(songs) {
		more := styles.Dim.Render(fmt.Sprintf("    ... and %d more", len(songs)-end))
		lines = append(lines, more)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func currentIndex(songs []playlist.Entry) int {
	for i, s := range songs {
		if s.Current {
			return i
		}
	}
	return 0
}

// keepVisible clamps offset to the list and scrolls so that index is shown.
func keepVisible(offset, index, visible, total int) int {
	if index < offset {
		offset = index
	}
	if index >= offset+visible {
		offset = index - visible + 1
	}
	return clampOffset(offset, visible, total)
}

// clampOffset keeps offset within [0, total-visible].
func clampOffset(offset, visible, total int) int {
	if maxOffset := total - visible; offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
