package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"draftboard/internal/config"
	"draftboard/internal/draft"
	"draftboard/internal/nav"
)

// stubSource returns a fixed document or error, swappable mid-test to
// model reloads that change outcome.
type stubSource struct {
	doc draft.Document
	err error
}

func (s *stubSource) Load(context.Context) (draft.Document, error) {
	return s.doc, s.err
}

func testConfig() config.Config {
	return config.Config{
		Source: config.SourceConfig{Path: "draft.json"},
		UI:     config.UIConfig{Title: "Draftboard", Columns: 2},
	}
}

func testDoc() draft.Document {
	return draft.Document{Teams: []draft.RawTeam{
		{Name: "Golden State Warriors", Picks: []draft.RawPick{
			{Pick: 7, Player: "Marcus Hale", Position: "SF", School: "Gonzaga"},
			{Pick: 1, Player: "Devin Ash", Position: "PG", School: "Duke",
				Bio: "Two-time conference MVP.", Stats: map[string]any{"ppg": 24.5, "rpg": 7.0}},
		}},
		{Name: "Atlanta Hawks"},
	}}
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func applyMsg(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	got, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return got, cmd
}

func press(t *testing.T, m Model, key string) Model {
	t.Helper()
	next, _ := applyMsg(t, m, keyMsg(key))
	return next
}

func typeString(t *testing.T, m Model, input string) Model {
	t.Helper()
	for _, r := range input {
		m = press(t, m, string(r))
	}
	return m
}

// newLoadedModel builds a model and resolves its initial load with the
// stub's current document.
func newLoadedModel(t *testing.T, src *stubSource) Model {
	t.Helper()
	m := New(testConfig(), src)
	if !m.loading || m.loadToken == "" {
		t.Fatal("fresh model must be loading with an attempt token")
	}
	doc, err := src.Load(context.Background())
	next, _ := applyMsg(t, m, loadDoneMsg{token: m.loadToken, doc: doc, err: err})
	return next
}

// reload presses r and resolves the resulting command immediately.
func reload(t *testing.T, m Model) Model {
	t.Helper()
	next, cmd := applyMsg(t, m, keyMsg("r"))
	if cmd == nil {
		t.Fatal("expected a load command from retry")
	}
	next, _ = applyMsg(t, next, cmd())
	return next
}

// ---------------------------------------------------------------------------
// Loading and liveness
// ---------------------------------------------------------------------------

func TestInitialLoadSuccess(t *testing.T) {
	m := newLoadedModel(t, &stubSource{doc: testDoc()})

	if m.loading {
		t.Fatal("loading must clear after the result lands")
	}
	if len(m.state.Teams) != 2 {
		t.Fatalf("teams = %d, want 2", len(m.state.Teams))
	}
	if m.state.View() != nav.ViewOverview {
		t.Fatal("load must not change the view")
	}
	// Long names are truncated to fit the bubble, so match the prefix.
	if !strings.Contains(m.View(), "Atlanta Hawks") {
		t.Fatal("overview should render team bubbles")
	}
}

func TestInitialLoadFailure(t *testing.T) {
	m := newLoadedModel(t, &stubSource{err: errors.New("connection refused")})

	if !m.state.LoadFailed() {
		t.Fatal("failure must be recorded")
	}
	view := m.View()
	if !strings.Contains(view, "Failed to load draft data. Please try again later.") {
		t.Fatalf("error view missing message:\n%s", view)
	}
	if !strings.Contains(view, "retry") {
		t.Fatal("error view should offer retry")
	}
}

func TestEmptyDraftShowsEmptyState(t *testing.T) {
	m := newLoadedModel(t, &stubSource{doc: draft.Document{}})

	if m.state.LoadFailed() {
		t.Fatal("an empty draft is not a failure")
	}
	if !strings.Contains(m.View(), "No teams in this draft.") {
		t.Fatal("empty state message missing")
	}
}

func TestStaleLoadResultDiscarded(t *testing.T) {
	m := New(testConfig(), &stubSource{doc: testDoc()})

	before := len(m.state.Teams)
	next, _ := applyMsg(t, m, loadDoneMsg{token: "stale-token", doc: testDoc()})
	if len(next.state.Teams) != before {
		t.Fatal("stale result must not install teams")
	}
	if !next.loading {
		t.Fatal("stale result must not clear the loading state")
	}
}

func TestTeardownDiscardsPendingLoad(t *testing.T) {
	src := &stubSource{doc: testDoc()}
	m := New(testConfig(), src)
	pendingToken := m.loadToken

	m, cmd := applyMsg(t, m, keyMsg("q"))
	if cmd == nil {
		t.Fatal("quit should produce a command")
	}
	if m.loadToken != "" {
		t.Fatal("teardown must clear the attempt token")
	}

	// The in-flight fetch resolves after teardown.
	next, _ := applyMsg(t, m, loadDoneMsg{token: pendingToken, doc: testDoc()})
	if len(next.state.Teams) != 0 {
		t.Fatal("post-teardown result must not mutate state")
	}
}

func TestRetrySupersedesPendingLoad(t *testing.T) {
	src := &stubSource{doc: testDoc()}
	m := New(testConfig(), src)
	firstToken := m.loadToken

	m = press(t, m, "r")
	if m.loadToken == firstToken {
		t.Fatal("retry must stamp a fresh attempt token")
	}

	// First attempt resolves late: discarded.
	m, _ = applyMsg(t, m, loadDoneMsg{token: firstToken, doc: draft.Document{
		Teams: []draft.RawTeam{{Name: "Stale Team"}},
	}})
	if len(m.state.Teams) != 0 {
		t.Fatal("superseded result must be discarded")
	}

	// Second attempt lands: last resolution wins.
	m, _ = applyMsg(t, m, loadDoneMsg{token: m.loadToken, doc: testDoc()})
	if len(m.state.Teams) != 2 {
		t.Fatalf("teams = %d, want 2 from the winning attempt", len(m.state.Teams))
	}
}

func TestFailedReloadAfterSuccess(t *testing.T) {
	src := &stubSource{doc: testDoc()}
	m := newLoadedModel(t, src)
	m = press(t, m, "enter") // enter team detail

	src.err = errors.New("boom")
	m = reload(t, m)

	if m.state.View() != nav.ViewOverview {
		t.Fatal("failed reload must force Overview")
	}
	if len(m.state.Teams) != 0 {
		t.Fatal("failed reload must clear the team list")
	}
	if _, ok := m.state.ActiveTeam(); ok {
		t.Fatal("failed reload must clear the selection")
	}
	if m.status != "Failed to load draft data. Please try again later." {
		t.Fatalf("status = %q", m.status)
	}
}

func TestReloadKeepsViewOnSuccess(t *testing.T) {
	src := &stubSource{doc: testDoc()}
	m := newLoadedModel(t, src)
	m = press(t, m, "enter")

	m = reload(t, m)

	if m.state.View() != nav.ViewTeamDetail {
		t.Fatal("successful reload must keep the current view")
	}
	team, ok := m.state.ActiveTeam()
	if !ok || team.Name != "Golden State Warriors" {
		t.Fatalf("selection lost across reload: %v ok=%v", team.Name, ok)
	}
}

// ---------------------------------------------------------------------------
// Navigation flows
// ---------------------------------------------------------------------------

func TestSelectTeamOpensDetailWithFirstPick(t *testing.T) {
	m := newLoadedModel(t, &stubSource{doc: testDoc()})

	m = press(t, m, "enter")

	if m.state.View() != nav.ViewTeamDetail {
		t.Fatal("enter on a bubble must open team detail")
	}
	pick, ok := m.state.ActivePick()
	if !ok || pick.Player != "Devin Ash" {
		t.Fatalf("active pick = %+v, want first pick by sorted order", pick)
	}
	view := m.View()
	if !strings.Contains(view, "Devin Ash") || !strings.Contains(view, "24.5") {
		t.Fatalf("player panel missing seeded pick:\n%s", view)
	}
}

func TestStatPlaceholdersForMissingStats(t *testing.T) {
	m := newLoadedModel(t, &stubSource{doc: testDoc()})
	m = press(t, m, "enter")
	m = press(t, m, "down")
	m = press(t, m, "enter") // select Marcus Hale, who has no stats

	pick, _ := m.state.ActivePick()
	if pick.Player != "Marcus Hale" {
		t.Fatalf("active pick = %q, want Marcus Hale", pick.Player)
	}
	if !strings.Contains(m.View(), draft.StatPlaceholder) {
		t.Fatal("missing stats must render placeholders")
	}
}

func TestPickSelectionRequiresEnter(t *testing.T) {
	m := newLoadedModel(t, &stubSource{doc: testDoc()})
	m = press(t, m, "enter")
	m = press(t, m, "down")

	pick, _ := m.state.ActivePick()
	if pick.Player != "Devin Ash" {
		t.Fatal("moving the cursor alone must not replace the active pick")
	}
}

func TestPrevNextTeamBounds(t *testing.T) {
	m := newLoadedModel(t, &stubSource{doc: testDoc()})
	m = press(t, m, "enter") // Warriors, position 0

	m = press(t, m, "[")
	team, _ := m.state.ActiveTeam()
	if team.Name != "Golden State Warriors" {
		t.Fatal("prev from the first team must be a no-op")
	}

	m = press(t, m, "]")
	team, _ = m.state.ActiveTeam()
	if team.Name != "Atlanta Hawks" {
		t.Fatalf("next moved to %q, want Atlanta Hawks", team.Name)
	}
	if _, ok := m.state.ActivePick(); ok {
		t.Fatal("Hawks have no picks; no pick should be seeded")
	}

	m = press(t, m, "]")
	team, _ = m.state.ActiveTeam()
	if team.Name != "Atlanta Hawks" {
		t.Fatal("next from the last team must be a no-op")
	}
}

func TestBackReturnsToOverview(t *testing.T) {
	m := newLoadedModel(t, &stubSource{doc: testDoc()})
	m = press(t, m, "enter")
	m = press(t, m, "esc")

	if m.state.View() != nav.ViewOverview {
		t.Fatal("esc must return to the overview")
	}
	if _, ok := m.state.ActiveTeam(); ok {
		t.Fatal("back must clear the selection")
	}
}

func TestGridCursorMovement(t *testing.T) {
	m := newLoadedModel(t, &stubSource{doc: testDoc()})

	m = press(t, m, "right")
	m = press(t, m, "enter")
	team, _ := m.state.ActiveTeam()
	if team.Name != "Atlanta Hawks" {
		t.Fatalf("cursor right selected %q, want Atlanta Hawks", team.Name)
	}
}

func TestSearchNarrowsGrid(t *testing.T) {
	m := newLoadedModel(t, &stubSource{doc: testDoc()})

	m = press(t, m, "/")
	m = typeString(t, m, "hawks")
	m = press(t, m, "enter") // leave search input
	m = press(t, m, "enter") // open top match

	team, ok := m.state.ActiveTeam()
	if !ok || team.Name != "Atlanta Hawks" {
		t.Fatalf("search selected %v, want Atlanta Hawks", team.Name)
	}
}

func TestSearchEscClearsFilter(t *testing.T) {
	m := newLoadedModel(t, &stubSource{doc: testDoc()})

	m = press(t, m, "/")
	m = typeString(t, m, "war")
	m = press(t, m, "esc")

	if m.searchQuery != "" || m.searching {
		t.Fatal("esc must cancel the search")
	}
	if len(m.visibleTeams()) != 2 {
		t.Fatal("clearing the search must restore the full grid")
	}
}

func TestSearchTypingDoesNotTriggerReloadOrQuit(t *testing.T) {
	src := &stubSource{doc: testDoc()}
	m := newLoadedModel(t, src)
	token := m.loadToken

	m = press(t, m, "/")
	m, cmd := applyMsg(t, m, keyMsg("r"))
	if m.loadToken != token || cmd != nil {
		t.Fatal("typing r into the search line must not reload")
	}
	m, cmd = applyMsg(t, m, keyMsg("q"))
	if cmd != nil {
		t.Fatal("typing q into the search line must not quit")
	}
	if m.searchQuery != "rq" {
		t.Fatalf("searchQuery = %q, want rq", m.searchQuery)
	}
}
