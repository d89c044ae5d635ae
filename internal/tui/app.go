package tui

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize/english"
	"github.com/rs/zerolog"
	"github.com/tessro/spin/internal/command"
	"github.com/tessro/spin/internal/playlist"
	"github.com/tessro/spin/internal/tui/components"
	"github.com/tessro/spin/internal/tui/styles"
)

// Panel represents which panel is focused
type Panel int

const (
	PanelNowPlaying Panel = iota
	PanelPlaylist
	PanelHistory
)

const panelCount = 3

const maxHistory = 50

// Model is the main TUI model. All playlist mutations happen in Update, so
// the playlist is only touched from bubbletea's event loop.
type Model struct {
	playlist     *playlist.Playlist
	log          zerolog.Logger
	width        int
	height       int
	focusedPanel Panel

	// Components
	nowPlaying   *components.NowPlaying
	playlistView *components.Playlist
	historyView  *components.History
	history      []components.HistoryEntry

	// Title prompt for add/remove; zero prompting means closed
	input     textinput.Model
	prompting command.Command

	// Status line
	status    string
	statusErr bool

	showHelp bool
	quitting bool
}

// NewModel creates a new TUI model
func NewModel(p *playlist.Playlist, log zerolog.Logger) Model {
	ti := textinput.New()
	ti.CharLimit = p.MaxTitleLength()
	ti.Width = 50

	return Model{
		playlist:     p,
		log:          log,
		focusedPanel: PanelPlaylist,
		nowPlaying:   components.NewNowPlaying(),
		playlistView: components.NewPlaylist(),
		historyView:  components.NewHistory(),
		history:      make([]components.HistoryEntry, 0),
		input:        ti,
	}
}

type clipboardMsg struct {
	title string
	err   error
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.prompting != 0 {
			return m.handlePromptKey(msg)
		}
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			m.setError(fmt.Errorf("failed to copy to clipboard: %w", msg.err))
		} else {
			m.setStatus(fmt.Sprintf("Copied %q", msg.title))
		}
		return m, nil
	}

	if m.prompting != 0 {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch msg.String() {
		case "ctrl+c":
			return m.quit()
		case "?", "esc", "q":
			m.showHelp = false
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m.quit()
	case "?":
		m.showHelp = true
	case "tab":
		m.focusedPanel = (m.focusedPanel + 1) % panelCount
	case "shift+tab":
		m.focusedPanel = (m.focusedPanel + panelCount - 1) % panelCount
	case "n", "right", "l":
		m.dispatch(command.Request{Command: command.PlayNext})
	case "p", "left", "h":
		m.dispatch(command.Request{Command: command.PlayPrevious})
	case "enter", " ":
		m.dispatch(command.Request{Command: command.PlayCurrent})
	case "a":
		return m.openPrompt(command.Add, "")
	case "d", "x":
		current, _ := m.playlist.Current()
		return m.openPrompt(command.Remove, current)
	case "y":
		return m, m.copyCurrent()
	case "j", "down":
		if m.focusedPanel == PanelPlaylist {
			m.playlistView.ScrollDown()
		}
	case "k", "up":
		if m.focusedPanel == PanelPlaylist {
			m.playlistView.ScrollUp()
		}
	}
	return m, nil
}

func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	case "esc":
		m.closePrompt()
		return m, nil
	case "enter":
		req := command.Request{Command: m.prompting, Title: m.input.Value()}
		m.closePrompt()
		m.dispatch(req)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) openPrompt(c command.Command, value string) (tea.Model, tea.Cmd) {
	m.prompting = c
	m.input.Placeholder = "Song title"
	if c == command.Remove {
		m.input.Placeholder = "Song title to remove"
	}
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m *Model) closePrompt() {
	m.prompting = 0
	m.input.Blur()
	m.input.Reset()
}

// dispatch runs a request and records its outcome in the status line and
// history.
func (m *Model) dispatch(req command.Request) {
	res := command.Dispatch(m.playlist, req)
	m.log.Debug().
		Stringer("command", req.Command).
		Str("kind", string(res.Kind)).
		Msg("tui command dispatched")

	if res.Err != nil {
		m.setError(res.Err)
		return
	}
	m.setStatus(res.Message())

	if res.Kind == command.KindNowPlaying {
		m.addToHistory(res.Title, req.Command != command.PlayCurrent)
	}
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	res := command.Dispatch(m.playlist, command.Request{Command: command.Exit})
	m.log.Debug().Int("count", res.Count).Msg("tui exiting")
	m.quitting = true
	return m, tea.Quit
}

func (m Model) copyCurrent() tea.Cmd {
	title, ok := m.playlist.Current()
	if !ok {
		return func() tea.Msg {
			return clipboardMsg{err: fmt.Errorf("no songs to play")}
		}
	}
	return func() tea.Msg {
		return clipboardMsg{title: title, err: clipboard.WriteAll(title)}
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = "Error: " + err.Error()
	m.statusErr = true
}

func (m *Model) addToHistory(title string, skipped bool) {
	entry := components.HistoryEntry{
		Title:    title,
		PlayedAt: time.Now(),
		Skipped:  skipped,
	}

	// Add to front, keep max entries
	m.history = append([]components.HistoryEntry{entry}, m.history...)
	if len(m.history) > maxHistory {
		m.history = m.history[:maxHistory]
	}
}

// position returns the 1-based cursor position, or zero when empty.
func (m Model) position(songs []playlist.Entry) int {
	for i, s := range songs {
		if s.Current {
			return i + 1
		}
	}
	return 0
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.width == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	// Left: Now Playing (top), Playlist (bottom); Right: History
	leftWidth := m.width * 60 / 100
	rightWidth := m.width - leftWidth - 2
	topHeight := m.height * 40 / 100
	bottomHeight := m.height - topHeight - 4

	songs := slices.Collect(m.playlist.Songs())
	current, _ := m.playlist.Current()

	nowPlaying := m.nowPlaying.Render(current, m.position(songs), len(songs), leftWidth-2, topHeight-2, m.focusedPanel == PanelNowPlaying)
	playlistView := m.playlistView.Render(songs, leftWidth-2, bottomHeight-2, m.focusedPanel == PanelPlaylist)
	historyView := m.historyView.Render(m.history, rightWidth-2, topHeight+bottomHeight-2, m.focusedPanel == PanelHistory)

	leftCol := lipgloss.JoinVertical(lipgloss.Left, nowPlaying, playlistView)
	main := lipgloss.JoinHorizontal(lipgloss.Top, leftCol, historyView)

	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(len(songs)), main, m.renderStatusBar())
}

func (m Model) renderHeader(count int) string {
	return lipgloss.NewStyle().
		Width(m.width).
		Padding(0, 1).
		Render(styles.Highlight.Render("spin") + "  " + styles.Muted.Render(english.Plural(count, "song", "")))
}

func (m Model) renderStatusBar() string {
	var status string
	switch {
	case m.prompting != 0:
		status = styles.Highlight.Render(m.prompting.Label()+": ") + m.input.View()
	case m.statusErr:
		status = styles.Alert.Render(m.status)
	case m.status != "":
		status = styles.Muted.Render(m.status)
	default:
		status = styles.Dim.Render("q:quit  ?:help  a:add  d:remove  n:next  p:prev  enter:play  y:copy  tab:switch panel")
	}

	return lipgloss.NewStyle().
		Width(m.width).
		Padding(0, 1).
		Render(status)
}

func (m Model) renderHelp() string {
	title := "Spin - Keyboard Shortcuts"
	divider := strings.Repeat("═", len(title))

	help := `
  ` + title + `
  ` + divider + `

  Global
  ──────
  q, Ctrl+C    Quit
  ?            Toggle help
  Tab          Next panel
  Shift+Tab    Previous panel

  Playback
  ────────
  Enter/Space  Play current
  n/→          Next song
  p/←          Previous song
  y            Copy current title

  Playlist
  ────────
  a            Add song
  d/x          Remove song by title
  j/↓          Scroll down
  k/↑          Scroll up

  Press ? or Esc to close
`

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(styles.BorderStyle.Render(help))
}

// Run starts the TUI application
func Run(p *playlist.Playlist, theme string, log zerolog.Logger) error {
	styles.SetTheme(theme)

	model := NewModel(p, log)
	prog := tea.NewProgram(model, tea.WithAltScreen())

	_, err := prog.Run()
	return err
}
