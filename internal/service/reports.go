package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/omarshaarawi/ffwrapped/internal/lineup"
	"github.com/omarshaarawi/ffwrapped/internal/models"
	"github.com/omarshaarawi/ffwrapped/internal/scoring"
)

// LineupReport shows the optimal lineup the named team could have started
// last week.
func (s *LineupService) LineupReport(ctx context.Context, teamQuery string) (string, error) {
	team, err := s.ResolveTeam(ctx, teamQuery)
	if err != nil {
		return "", err
	}

	week, err := s.LastCompletedWeek(ctx)
	if err != nil {
		return "", fmt.Errorf("error fetching current week: %w", err)
	}

	result, err := s.WeeklyLineup(ctx, team.ID, week, lineup.ModeOptimal)
	if err != nil {
		return "", fmt.Errorf("error building lineup: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📋 *%s's Best Week %d Lineup*\n\n", team.Name, week))
	writeGroups(&sb, result.Starters, true)
	sb.WriteString(fmt.Sprintf("\n*Total:* %.2f pts\n", result.Starters.Points()))
	writeWarnings(&sb, result.Warnings)
	return sb.String(), nil
}

// BenchReport shows who the named team benched last week and what it cost.
func (s *LineupService) BenchReport(ctx context.Context, teamQuery string) (string, error) {
	team, err := s.ResolveTeam(ctx, teamQuery)
	if err != nil {
		return "", err
	}

	week, err := s.LastCompletedWeek(ctx)
	if err != nil {
		return "", fmt.Errorf("error fetching current week: %w", err)
	}

	actual, err := s.WeeklyLineup(ctx, team.ID, week, lineup.ModeActual)
	if err != nil {
		return "", fmt.Errorf("error building lineup: %w", err)
	}
	optimal, err := s.WeeklyLineup(ctx, team.ID, week, lineup.ModeOptimal)
	if err != nil {
		return "", fmt.Errorf("error building lineup: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🪑 *%s's Week %d Bench*\n\n", team.Name, week))
	if actual.Bench.Len() == 0 {
		sb.WriteString("Nobody on the bench.\n")
	} else {
		writeGroups(&sb, actual.Bench, false)
	}

	left := scoring.Round(optimal.Starters.Points() - actual.Starters.Points())
	sb.WriteString(fmt.Sprintf("\nStarted: %.2f pts\n", actual.Starters.Points()))
	sb.WriteString(fmt.Sprintf("Best possible: %.2f pts\n", optimal.Starters.Points()))
	if left > 0 {
		sb.WriteString(fmt.Sprintf("Left on bench: *%.2f pts*\n", left))
	} else {
		sb.WriteString("Perfect lineup! 🎯\n")
	}
	return sb.String(), nil
}

// EfficiencyReport ranks every team by points left on the bench last week.
func (s *LineupService) EfficiencyReport(ctx context.Context) (string, error) {
	week, err := s.LastCompletedWeek(ctx)
	if err != nil {
		return "", fmt.Errorf("error fetching current week: %w", err)
	}

	report, err := s.Efficiency(ctx, week)
	if err != nil {
		return "", fmt.Errorf("error building efficiency report: %w", err)
	}
	return formatEfficiencyReport(week, report), nil
}

// SeasonReport sums up the named team's season: what it scored, what its
// best lineups would have scored and what its draft-day roster could have
// done.
func (s *LineupService) SeasonReport(ctx context.Context, teamQuery string) (string, error) {
	team, err := s.ResolveTeam(ctx, teamQuery)
	if err != nil {
		return "", err
	}

	actual, err := s.BestActual(ctx, team.ID, lineup.ModeActual)
	if err != nil {
		return "", fmt.Errorf("error building season: %w", err)
	}
	optimal, err := s.BestActual(ctx, team.ID, lineup.ModeOptimal)
	if err != nil {
		return "", fmt.Errorf("error building season: %w", err)
	}

	drafted, err := s.BestDrafted(ctx, team.ID)
	if err != nil && !errors.Is(err, ErrNoStore) && !errors.Is(err, ErrNoDraft) {
		return "", fmt.Errorf("error building drafted season: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🎁 *%s's Season Wrapped*\n\n", team.Name))
	sb.WriteString(fmt.Sprintf("Scored: %.2f pts\n", actual.Total))
	sb.WriteString(fmt.Sprintf("Best possible: %.2f pts\n", optimal.Total))
	sb.WriteString(fmt.Sprintf("Left on bench: %.2f pts\n", scoring.Round(optimal.Total-actual.Total)))
	if drafted != nil {
		sb.WriteString(fmt.Sprintf("Draft-day roster at its best: %.2f pts\n", drafted.Total))
	}

	worstWeek, worstLeft := 0, 0.0
	for i := range actual.Weeks {
		if i >= len(optimal.Weeks) {
			break
		}
		left := scoring.Round(optimal.Weeks[i].Starters.Points() - actual.Weeks[i].Starters.Points())
		if left > worstLeft {
			worstWeek, worstLeft = actual.Weeks[i].Week, left
		}
	}
	if worstWeek > 0 {
		sb.WriteString(fmt.Sprintf("\n🤦 *Worst week:* Week %d (%.2f pts on the bench)\n", worstWeek, worstLeft))
	}
	return sb.String(), nil
}

func formatEfficiencyReport(week int, report []models.TeamEfficiency) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📉 *Week %d Lineup Efficiency*\n\n", week))

	if len(report) == 0 {
		sb.WriteString("No box scores for this week.")
		return sb.String()
	}

	for i, t := range report {
		pct := 100.0
		if t.Optimal > 0 {
			pct = t.Actual / t.Optimal * 100
		}
		sb.WriteString(fmt.Sprintf("%d. *%s*\n", i+1, t.TeamName))
		sb.WriteString(fmt.Sprintf("   %.2f of %.2f pts (%.1f%%)\n", t.Actual, t.Optimal, pct))
		sb.WriteString(fmt.Sprintf("   Left on bench: %.2f\n\n", t.LeftOnBench))
	}

	worst := report[0]
	if worst.LeftOnBench > 0 {
		sb.WriteString(fmt.Sprintf("🤦 *Bench Warmer of the Week:* %s (%.2f pts)\n", worst.TeamName, worst.LeftOnBench))
	}
	return sb.String()
}

func writeGroups(sb *strings.Builder, groups lineup.Groups, showEmpty bool) {
	for _, grp := range groups {
		if len(grp.Players) == 0 {
			if showEmpty {
				sb.WriteString(fmt.Sprintf("▫️ %s (empty)\n", grp.Label))
			}
			continue
		}
		for _, p := range grp.Players {
			sb.WriteString(fmt.Sprintf("▫️ %s %s - %.2f pts\n", grp.Label, p.Name, p.Points))
		}
	}
}

func writeWarnings(sb *strings.Builder, warnings []lineup.MissingDataWarning) {
	if len(warnings) == 0 {
		return
	}
	sb.WriteString("\n_No stats:_ ")
	names := make([]string, len(warnings))
	for i, w := range warnings {
		names[i] = w.Name
	}
	sb.WriteString(strings.Join(names, ", "))
	sb.WriteString("\n")
}
