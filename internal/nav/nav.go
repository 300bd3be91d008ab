// Package nav is the view-state machine behind the draft board: which
// view is showing, which team and pick are active, and the transitions
// between them. It knows nothing about rendering.
package nav

import "draftboard/internal/draft"

// View identifies the current screen.
type View int

const (
	// ViewOverview is the team bubble grid, the initial view.
	ViewOverview View = iota
	// ViewTeamDetail is the per-team picks list plus player panel.
	ViewTeamDetail
)

// State is the single owned state record. All transitions go through its
// methods; the team list is only ever replaced whole via ApplyLoad.
type State struct {
	Teams []draft.Team

	view       View
	activeTeam *draft.Team
	activePick *draft.Pick
	loadFailed bool
}

// New returns the initial state: overview, no teams, no selection.
func New() *State {
	return &State{Teams: []draft.Team{}}
}

// View reports the current view.
func (s *State) View() View { return s.view }

// LoadFailed reports whether the most recent load attempt failed.
func (s *State) LoadFailed() bool { return s.loadFailed }

// ActiveTeam returns the selected team when the view is TeamDetail.
func (s *State) ActiveTeam() (draft.Team, bool) {
	if s.activeTeam == nil {
		return draft.Team{}, false
	}
	return *s.activeTeam, true
}

// ActivePick returns the selected pick, if one is set.
func (s *State) ActivePick() (draft.Pick, bool) {
	if s.activePick == nil {
		return draft.Pick{}, false
	}
	return *s.activePick, true
}

// ActivePickIndex returns the index of the active pick within the active
// team's picks, or -1 when unset.
func (s *State) ActivePickIndex() int {
	if s.activeTeam == nil || s.activePick == nil {
		return -1
	}
	for i := range s.activeTeam.Picks {
		if s.activeTeam.Picks[i].Pick == s.activePick.Pick {
			return i
		}
	}
	return -1
}

// SelectTeam enters TeamDetail for the team at position i in the
// canonical list, seeding the active pick with the team's first pick.
// Out-of-range indices are a no-op.
func (s *State) SelectTeam(i int) {
	if i < 0 || i >= len(s.Teams) {
		return
	}
	team := s.Teams[i]
	s.view = ViewTeamDetail
	s.activeTeam = &team
	s.activePick = nil
	if first, ok := team.FirstPick(); ok {
		s.activePick = &first
	}
}

// SelectPick replaces the active pick with the active team's pick at
// position i. Only valid in TeamDetail; out-of-range indices no-op.
func (s *State) SelectPick(i int) {
	if s.view != ViewTeamDetail || s.activeTeam == nil {
		return
	}
	if i < 0 || i >= len(s.activeTeam.Picks) {
		return
	}
	pick := s.activeTeam.Picks[i]
	s.activePick = &pick
}

// Back returns to the overview and clears the selection.
func (s *State) Back() {
	s.view = ViewOverview
	s.activeTeam = nil
	s.activePick = nil
}

// activeTeamIndex locates the active team in the current canonical list
// by id. Returns -1 when there is no active team or it is no longer in
// the list (possible after a reload, which does not revalidate).
func (s *State) activeTeamIndex() int {
	if s.activeTeam == nil {
		return -1
	}
	for i := range s.Teams {
		if s.Teams[i].ID == s.activeTeam.ID {
			return i
		}
	}
	return -1
}

// CanPrev reports whether a team precedes the active one.
func (s *State) CanPrev() bool {
	idx := s.activeTeamIndex()
	return idx > 0
}

// CanNext reports whether a team follows the active one.
func (s *State) CanNext() bool {
	idx := s.activeTeamIndex()
	return idx >= 0 && idx < len(s.Teams)-1
}

// PrevTeam moves to the team immediately preceding the active one,
// seeding its first pick. No wraparound: a no-op from the first team.
func (s *State) PrevTeam() {
	if idx := s.activeTeamIndex(); idx > 0 {
		s.SelectTeam(idx - 1)
	}
}

// NextTeam moves to the team immediately following the active one,
// seeding its first pick. No wraparound: a no-op from the last team.
func (s *State) NextTeam() {
	idx := s.activeTeamIndex()
	if idx >= 0 && idx < len(s.Teams)-1 {
		s.SelectTeam(idx + 1)
	}
}

// ApplyLoad installs the result of a load attempt, atomically replacing
// the team list.
//
//   - failure: team list cleared, view forced to Overview, selection
//     cleared, failure recorded
//   - success, empty list: as above but no failure recorded
//   - success, non-empty list: view and selection are left untouched;
//     the selection is deliberately not revalidated against the new list
func (s *State) ApplyLoad(teams []draft.Team, err error) {
	if err != nil {
		s.Teams = []draft.Team{}
		s.Back()
		s.loadFailed = true
		return
	}
	s.loadFailed = false
	if len(teams) == 0 {
		s.Teams = []draft.Team{}
		s.Back()
		return
	}
	s.Teams = teams
}
