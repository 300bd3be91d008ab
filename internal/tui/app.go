// Package tui renders the draft board: an overview grid of team bubbles
// and a per-team detail view, driven by the nav state machine and one
// asynchronous document load.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"draftboard/internal/config"
	"draftboard/internal/draft"
	"draftboard/internal/nav"
	"draftboard/internal/source"
)

// loadErrMessage is the only failure text shown to the user.
const loadErrMessage = "Failed to load draft data. Please try again later."

// Model is the Bubble Tea model for the draft board.
type Model struct {
	cfg   config.Config
	src   source.Source
	keys  keyMap
	state *nav.State
	spin  spinner.Model

	loading   bool
	loadToken string

	searching   bool
	searchQuery string

	gridCursor int // position within the visible (filtered) overview grid
	pickCursor int // position within the active team's picks

	status string
	width  int
	height int
}

// New constructs the model. The source is injected so tests can drive the
// load path without a network.
func New(cfg config.Config, src source.Source) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = statusStyle
	// The initial attempt token is stamped here, not in Init: Init has a
	// value receiver, so state set there would not survive into Update.
	return Model{
		cfg:       cfg,
		src:       src,
		keys:      newKeyMap(),
		state:     nav.New(),
		spin:      sp,
		loading:   true,
		loadToken: uuid.NewString(),
	}
}

// Init kicks off the initial fetch alongside the spinner tick.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, loadCmd(m.src, m.loadToken))
}

// beginLoad stamps a fresh attempt token and marks the model loading.
// Any previously in-flight result becomes stale the moment this runs.
func (m *Model) beginLoad() {
	m.loadToken = uuid.NewString()
	m.loading = true
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadDoneMsg:
		return m.handleLoadDone(msg)
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleLoadDone(msg loadDoneMsg) (tea.Model, tea.Cmd) {
	if m.loadToken == "" || msg.token != m.loadToken {
		// Stale attempt: a newer load superseded it, or the view was
		// torn down. Discard without mutating anything observable.
		return m, nil
	}
	m.loading = false
	if msg.err != nil {
		m.state.ApplyLoad(nil, msg.err)
		m.status = loadErrMessage
		m.gridCursor = 0
		m.pickCursor = 0
		return m, nil
	}
	wasEmpty := len(m.state.Teams) == 0
	teams := draft.Normalize(msg.doc.Teams)
	m.state.ApplyLoad(teams, nil)
	if len(teams) == 0 {
		m.status = "Draft has no teams."
		m.gridCursor = 0
		m.pickCursor = 0
		return m, nil
	}
	if wasEmpty {
		m.gridCursor = 0
	}
	m.clampGridCursor()
	m.status = fmt.Sprintf("Loaded %d teams.", len(teams))
	return m, nil
}

// ---------------------------------------------------------------------------
// Key handling
// ---------------------------------------------------------------------------

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	typing := m.searching && m.state.View() == nav.ViewOverview
	switch msg.String() {
	case "ctrl+c":
		m.loadToken = ""
		return m, tea.Quit
	case "q":
		if typing {
			break
		}
		// Clearing the token tears the consumer down: an in-flight load
		// that resolves later fails the token check and is dropped.
		m.loadToken = ""
		return m, tea.Quit
	case "r":
		if typing {
			break
		}
		m.status = "Loading draft..."
		m.beginLoad()
		return m, loadCmd(m.src, m.loadToken)
	}
	switch m.state.View() {
	case nav.ViewTeamDetail:
		return m.updateDetail(msg)
	default:
		return m.updateOverview(msg)
	}
}

func (m Model) updateOverview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.updateSearch(msg)
	}
	visible := m.visibleTeams()
	switch msg.String() {
	case "/":
		m.searching = true
		return m, nil
	case "esc":
		if m.searchQuery != "" {
			m.searchQuery = ""
			m.gridCursor = 0
		}
		return m, nil
	case "up", "k":
		m.gridCursor = moveGridCursor(m.gridCursor, len(visible), -m.cfg.UI.Columns)
		return m, nil
	case "down", "j":
		m.gridCursor = moveGridCursor(m.gridCursor, len(visible), m.cfg.UI.Columns)
		return m, nil
	case "left", "h":
		m.gridCursor = moveGridCursor(m.gridCursor, len(visible), -1)
		return m, nil
	case "right", "l":
		m.gridCursor = moveGridCursor(m.gridCursor, len(visible), 1)
		return m, nil
	case "enter":
		if m.gridCursor < 0 || m.gridCursor >= len(visible) {
			return m, nil
		}
		m.state.SelectTeam(visible[m.gridCursor])
		m.resetPickCursor()
		return m, nil
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.searchQuery = ""
		m.gridCursor = 0
		return m, nil
	case "enter":
		m.searching = false
		m.gridCursor = 0
		return m, nil
	case "backspace":
		if len(m.searchQuery) > 0 {
			m.searchQuery = m.searchQuery[:len(m.searchQuery)-1]
			m.gridCursor = 0
		}
		return m, nil
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 {
		m.searchQuery += string(msg.Runes)
		m.gridCursor = 0
	}
	return m, nil
}

func (m Model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	team, ok := m.state.ActiveTeam()
	if !ok {
		m.state.Back()
		return m, nil
	}
	switch msg.String() {
	case "esc":
		m.state.Back()
		m.pickCursor = 0
		return m, nil
	case "up", "k":
		if m.pickCursor > 0 {
			m.pickCursor--
		}
		return m, nil
	case "down", "j":
		if m.pickCursor < len(team.Picks)-1 {
			m.pickCursor++
		}
		return m, nil
	case "enter":
		m.state.SelectPick(m.pickCursor)
		return m, nil
	case "left", "h", "[":
		if m.state.CanPrev() {
			m.state.PrevTeam()
			m.resetPickCursor()
		}
		return m, nil
	case "right", "l", "]":
		if m.state.CanNext() {
			m.state.NextTeam()
			m.resetPickCursor()
		}
		return m, nil
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// Cursor helpers
// ---------------------------------------------------------------------------

func (m *Model) resetPickCursor() {
	m.pickCursor = 0
	if idx := m.state.ActivePickIndex(); idx >= 0 {
		m.pickCursor = idx
	}
}

func (m *Model) clampGridCursor() {
	visible := m.visibleTeams()
	if m.gridCursor >= len(visible) {
		m.gridCursor = len(visible) - 1
	}
	if m.gridCursor < 0 {
		m.gridCursor = 0
	}
}

func (m Model) visibleTeams() []int {
	return matchTeams(m.state.Teams, m.searchQuery)
}

func moveGridCursor(cursor, count, delta int) int {
	if count == 0 {
		return 0
	}
	next := cursor + delta
	if next < 0 || next >= count {
		return cursor
	}
	return next
}
