package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/omarshaarawi/ffwrapped/internal/models"
)

// similarityThreshold is the minimum normalized Levenshtein similarity for a
// typo match.
const similarityThreshold = 0.6

// TeamLookupError is returned when a team query matches no team or more than
// one.
type TeamLookupError struct {
	Query      string
	Candidates []string
}

func (e *TeamLookupError) Error() string {
	if len(e.Candidates) == 0 {
		return fmt.Sprintf("team not found: %s", e.Query)
	}
	return fmt.Sprintf("team %q is ambiguous: %s", e.Query, strings.Join(e.Candidates, ", "))
}

// ResolveTeam finds the league team for query, which may be a team id, an
// abbreviation or a (partial, misspelled) name.
func (s *LineupService) ResolveTeam(ctx context.Context, query string) (models.FantasyTeam, error) {
	teams, err := s.api.GetTeams(ctx)
	if err != nil {
		return models.FantasyTeam{}, fmt.Errorf("error fetching teams: %w", err)
	}
	return matchTeam(teams, query)
}

func matchTeam(teams []models.FantasyTeam, query string) (models.FantasyTeam, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return models.FantasyTeam{}, &TeamLookupError{Query: query}
	}

	if id, err := strconv.Atoi(query); err == nil {
		for _, t := range teams {
			if t.ID == id {
				return t, nil
			}
		}
	}

	var exact []models.FantasyTeam
	for _, t := range teams {
		if strings.EqualFold(t.Name, query) || strings.EqualFold(t.Abbreviation, query) {
			exact = append(exact, t)
		}
	}
	switch len(exact) {
	case 0:
	case 1:
		return exact[0], nil
	default:
		// Shared names are told apart by id, which the caller can retry with.
		candidates := make([]string, len(exact))
		for i, t := range exact {
			candidates[i] = fmt.Sprintf("%s (%d)", t.Name, t.ID)
		}
		return models.FantasyTeam{}, &TeamLookupError{Query: query, Candidates: candidates}
	}

	names := make([]string, len(teams))
	for i, t := range teams {
		names[i] = t.Name
	}

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	switch len(ranks) {
	case 1:
		return teams[ranks[0].OriginalIndex], nil
	case 0:
	default:
		sort.Sort(ranks)
		candidates := make([]string, len(ranks))
		for i, r := range ranks {
			candidates[i] = r.Target
		}
		return models.FantasyTeam{}, &TeamLookupError{Query: query, Candidates: candidates}
	}

	best, bestScore, tied := -1, 0.0, false
	for i, name := range names {
		score := similarity(query, name)
		if score <= similarityThreshold {
			continue
		}
		switch {
		case best == -1 || score > bestScore:
			best, bestScore, tied = i, score, false
		case score == bestScore:
			tied = true
		}
	}

	if best == -1 {
		return models.FantasyTeam{}, &TeamLookupError{Query: query}
	}
	if tied {
		var candidates []string
		for _, name := range names {
			if similarity(query, name) == bestScore {
				candidates = append(candidates, name)
			}
		}
		return models.FantasyTeam{}, &TeamLookupError{Query: query, Candidates: candidates}
	}
	return teams[best], nil
}

func similarity(a, b string) float64 {
	a, b = strings.ToLower(a), strings.ToLower(b)
	maxLen := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if maxLen == 0 {
		return 0
	}
	distance := fuzzy.LevenshteinDistance(a, b)
	return 1 - float64(distance)/float64(maxLen)
}
