// Package draft holds the canonical draft data model and the normalizer
// that builds it from the loosely-shaped wire document.
package draft

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// StatPlaceholder is rendered for any stat a player does not carry.
const StatPlaceholder = "--"

// Document is the top-level wire shape of draft.json. Every field is
// optional; a missing teams array is an empty draft.
type Document struct {
	Teams []RawTeam `json:"teams"`
}

// RawTeam is one team record as it appears on the wire.
type RawTeam struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Logo  string    `json:"logo"`
	Picks []RawPick `json:"picks"`
}

// RawPick is one pick record as it appears on the wire. Stats values may
// be numbers or strings, so they decode as any.
type RawPick struct {
	Pick     int            `json:"pick"`
	Player   string         `json:"player"`
	Position string         `json:"position"`
	School   string         `json:"school"`
	Bio      string         `json:"bio"`
	Stats    map[string]any `json:"stats"`
}

// Pick is a canonical draft selection.
type Pick struct {
	Pick     int
	Player   string
	Position string
	School   string
	Bio      string
	Stats    map[string]any
}

// Team is a canonical team: non-empty stable ID, display name, and picks
// sorted ascending by pick number.
type Team struct {
	ID    string
	Name  string
	Logo  string
	Picks []Pick
}

// FirstPick returns the team's first pick by sorted order, or false when
// the team has none.
func (t Team) FirstPick() (Pick, bool) {
	if len(t.Picks) == 0 {
		return Pick{}, false
	}
	return t.Picks[0], true
}

// StatValue looks up a stat by label, case-insensitively: exact match
// first, then lower-case, then upper-case. Absent stats render as the
// placeholder.
func (p Pick) StatValue(label string) string {
	if len(p.Stats) == 0 {
		return StatPlaceholder
	}
	for _, key := range []string{label, strings.ToLower(label), strings.ToUpper(label)} {
		if v, ok := p.Stats[key]; ok {
			return formatStat(v)
		}
	}
	return StatPlaceholder
}

func formatStat(v any) string {
	switch val := v.(type) {
	case nil:
		return StatPlaceholder
	case string:
		if strings.TrimSpace(val) == "" {
			return StatPlaceholder
		}
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Normalize maps raw team records to canonical teams. It is total: absent
// fields are defaulted, input order is preserved, and an empty input
// yields an empty (non-nil) output.
func Normalize(raw []RawTeam) []Team {
	teams := make([]Team, 0, len(raw))
	for i, rt := range raw {
		teams = append(teams, normalizeTeam(rt, i))
	}
	return teams
}

func normalizeTeam(rt RawTeam, index int) Team {
	t := Team{
		ID:   teamID(rt, index),
		Name: strings.TrimSpace(rt.Name),
		Logo: strings.TrimSpace(rt.Logo),
	}
	if t.Name == "" {
		t.Name = fmt.Sprintf("Team %d", index+1)
	}
	t.Picks = make([]Pick, 0, len(rt.Picks))
	for _, rp := range rt.Picks {
		t.Picks = append(t.Picks, Pick{
			Pick:     rp.Pick,
			Player:   rp.Player,
			Position: rp.Position,
			School:   rp.School,
			Bio:      rp.Bio,
			Stats:    rp.Stats,
		})
	}
	sort.SliceStable(t.Picks, func(a, b int) bool {
		return t.Picks[a].Pick < t.Picks[b].Pick
	})
	return t
}

// teamID derives a stable identifier: the provided id when non-blank,
// else slug(name) suffixed with the positional index, else team-<index>.
func teamID(rt RawTeam, index int) string {
	if id := strings.TrimSpace(rt.ID); id != "" {
		return id
	}
	if slug := slugify(rt.Name); slug != "" {
		return fmt.Sprintf("%s-%d", slug, index)
	}
	return fmt.Sprintf("team-%d", index)
}

// slugify lowercases the name, collapses non-alphanumeric runs to a
// single hyphen, and trims leading/trailing hyphens.
func slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
