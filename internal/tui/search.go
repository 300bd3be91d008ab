package tui

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"draftboard/internal/draft"
)

type teamMatch struct {
	index int // position in the canonical list
	score int
}

// matchTeams returns canonical-list indices of teams matching the query,
// best first. An empty query matches every team in canonical order. The
// filter narrows what the overview renders; it never reorders or mutates
// the canonical list itself.
func matchTeams(teams []draft.Team, query string) []int {
	q := strings.TrimSpace(query)
	if q == "" {
		out := make([]int, len(teams))
		for i := range teams {
			out[i] = i
		}
		return out
	}
	matches := make([]teamMatch, 0, len(teams))
	for i := range teams {
		ok, score := teamMatchScore(teams[i].Name, q)
		if !ok {
			continue
		}
		matches = append(matches, teamMatch{index: i, score: score})
	}
	sort.SliceStable(matches, func(a, b int) bool {
		if matches[a].score != matches[b].score {
			return matches[a].score > matches[b].score
		}
		return matches[a].index < matches[b].index
	})
	out := make([]int, len(matches))
	for i, m := range matches {
		out[i] = m.index
	}
	return out
}

// teamMatchScore requires the query to appear as a subsequence of the
// name, then ranks by prefix and adjacency bonuses minus edit distance,
// so near-exact names rise above loose subsequence hits.
func teamMatchScore(name, query string) (bool, int) {
	nameLower := strings.ToLower(name)
	queryLower := strings.ToLower(query)

	matchIdx := make([]int, 0, len(queryLower))
	searchFrom := 0
	for i := 0; i < len(queryLower); i++ {
		ch := queryLower[i]
		found := false
		for j := searchFrom; j < len(nameLower); j++ {
			if nameLower[j] == ch {
				matchIdx = append(matchIdx, j)
				searchFrom = j + 1
				found = true
				break
			}
		}
		if !found {
			return false, 0
		}
	}

	score := len(queryLower) * 4
	if len(matchIdx) > 0 && matchIdx[0] == 0 {
		score += 10
	}
	for i := 1; i < len(matchIdx); i++ {
		if matchIdx[i] == matchIdx[i-1]+1 {
			score += 3
		}
	}
	if strings.EqualFold(strings.TrimSpace(name), queryLower) {
		score += 20
	}
	score -= levenshtein.ComputeDistance(nameLower, queryLower)
	return true, score
}
