package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"draftboard/internal/draft"
	"draftboard/internal/nav"
)

// statLabels is the stat line shown in the player panel, in order.
var statLabels = []string{"PPG", "RPG", "APG"}

func (m Model) View() string {
	header := m.renderHeader()

	var body string
	switch {
	case m.state.LoadFailed():
		body = m.errorView()
	case m.loading && len(m.state.Teams) == 0:
		body = m.loadingView()
	case m.state.View() == nav.ViewTeamDetail:
		body = m.detailView()
	default:
		body = m.overviewView()
	}

	return header + "\n\n" + body + "\n\n" + m.renderStatus() + "\n" + m.renderFooter()
}

// ---------------------------------------------------------------------------
// Chrome
// ---------------------------------------------------------------------------

func (m Model) renderHeader() string {
	title := titleStyle.Render(m.cfg.UI.Title)
	sub := ""
	if n := len(m.state.Teams); n > 0 {
		sub = statusStyle.Render(fmt.Sprintf("  %d teams", n))
	}
	line := title + sub
	if m.width > 0 {
		return headerBarStyle.Width(m.width).Render(line)
	}
	return headerBarStyle.Render(line)
}

func (m Model) renderStatus() string {
	if m.state.LoadFailed() {
		return errorStyle.Render(m.status)
	}
	return statusStyle.Render(m.status)
}

func (m Model) renderFooter() string {
	var bindings []key.Binding
	switch {
	case m.state.LoadFailed():
		bindings = m.keys.errorHelp()
	case m.state.View() == nav.ViewTeamDetail:
		bindings = m.keys.detailHelp()
	default:
		bindings = m.keys.overviewHelp()
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, helpKeyStyle.Render(b.Help().Key)+" "+helpDescStyle.Render(b.Help().Desc))
	}
	line := strings.Join(parts, "  ")
	if m.width > 0 {
		return footerStyle.Width(m.width).Render(line)
	}
	return footerStyle.Render(line)
}

// ---------------------------------------------------------------------------
// Loading / error / empty
// ---------------------------------------------------------------------------

func (m Model) loadingView() string {
	return m.spin.View() + statusStyle.Render(" Loading draft...")
}

func (m Model) errorView() string {
	return errorStyle.Render(loadErrMessage) + "\n\n" +
		statusStyle.Render("Press r to retry.")
}

func (m Model) emptyView() string {
	return statusStyle.Render("No teams in this draft.")
}

// ---------------------------------------------------------------------------
// Overview: bubble grid
// ---------------------------------------------------------------------------

func (m Model) overviewView() string {
	visible := m.visibleTeams()

	var search string
	if m.searching || m.searchQuery != "" {
		prompt := searchStyle.Render("/" + m.searchQuery)
		if m.searching {
			prompt += cursorStyle.Render("▌")
		}
		search = prompt + "\n\n"
	}

	if len(m.state.Teams) == 0 {
		return search + m.emptyView()
	}
	if len(visible) == 0 {
		return search + statusStyle.Render("No teams match.")
	}

	cols := m.cfg.UI.Columns
	rows := make([]string, 0, (len(visible)+cols-1)/cols)
	for start := 0; start < len(visible); start += cols {
		end := start + cols
		if end > len(visible) {
			end = len(visible)
		}
		cells := make([]string, 0, cols)
		for i := start; i < end; i++ {
			cells = append(cells, m.renderBubble(m.state.Teams[visible[i]], i == m.gridCursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return search + strings.Join(rows, "\n")
}

func (m Model) renderBubble(t draft.Team, focused bool) string {
	style := bubbleStyle
	if focused {
		style = bubbleFocusStyle
	}
	logo := bubbleLogoStyle.Render("(" + teamInitials(t.Name) + ")")
	label := t.Name
	if len(label) > 18 {
		label = label[:17] + "…"
	}
	return style.Width(20).Render(logo + "\n" + label)
}

// teamInitials reduces a team name to at most two letters for the bubble.
func teamInitials(name string) string {
	fields := strings.Fields(name)
	var b strings.Builder
	for _, f := range fields {
		r := []rune(f)
		b.WriteRune(r[0])
		if b.Len() >= 2 {
			break
		}
	}
	if b.Len() == 0 {
		return "?"
	}
	return strings.ToUpper(b.String())
}

// ---------------------------------------------------------------------------
// Team detail: picks list + player panel
// ---------------------------------------------------------------------------

func (m Model) detailView() string {
	team, ok := m.state.ActiveTeam()
	if !ok {
		return m.emptyView()
	}

	header := titleStyle.Render(team.Name) + m.renderTeamPosition()
	picks := m.renderPicksPanel(team)
	player := m.renderPlayerPanel()
	return header + "\n\n" + lipgloss.JoinHorizontal(lipgloss.Top, picks, " ", player)
}

// renderTeamPosition shows prev/next affordances, dimmed when disabled.
func (m Model) renderTeamPosition() string {
	prev := disabledStyle.Render("  ← prev")
	if m.state.CanPrev() {
		prev = statusStyle.Render("  ← prev")
	}
	next := disabledStyle.Render("  next →")
	if m.state.CanNext() {
		next = statusStyle.Render("  next →")
	}
	return prev + next
}

func (m Model) renderPicksPanel(team draft.Team) string {
	var b strings.Builder
	b.WriteString(panelTitleStyle.Render("Picks"))
	b.WriteString("\n")
	if len(team.Picks) == 0 {
		b.WriteString(statusStyle.Render("No picks yet."))
	}
	activeIdx := m.state.ActivePickIndex()
	for i, p := range team.Picks {
		prefix := "  "
		if i == m.pickCursor {
			prefix = cursorStyle.Render("> ")
		}
		line := fmt.Sprintf("%s%s %s", prefix, pickNumStyle.Render(fmt.Sprintf("#%d", p.Pick)), p.Player)
		if i == activeIdx {
			line += pickMetaStyle.Render(" •")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return panelStyle.Width(34).Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderPlayerPanel() string {
	pick, ok := m.state.ActivePick()
	if !ok {
		return panelStyle.Width(40).Render(statusStyle.Render("No player selected."))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(pick.Player))
	b.WriteString("\n")
	b.WriteString(pickMetaStyle.Render(fmt.Sprintf("%s · %s", orDash(pick.Position), orDash(pick.School))))
	b.WriteString("\n\n")
	b.WriteString(renderStatLine(pick))
	if strings.TrimSpace(pick.Bio) != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(pick.Bio))
	}
	return panelStyle.Width(40).Render(b.String())
}

func renderStatLine(pick draft.Pick) string {
	parts := make([]string, 0, len(statLabels))
	for _, label := range statLabels {
		parts = append(parts,
			statLabelStyle.Render(label+" ")+statValueStyle.Render(pick.StatValue(label)))
	}
	return strings.Join(parts, "   ")
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return draft.StatPlaceholder
	}
	return s
}
