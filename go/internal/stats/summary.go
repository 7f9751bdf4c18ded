package stats

import (
	"cmp"
	"slices"

	"github.com/google/uuid"
	"github.com/mcdev12/rosterbook/go/internal/models"
)

// Summarize folds stats rows into a team summary. Matches are counted once no
// matter how many rows reference them, and rows whose match no longer exists
// (zero MatchDate) add to the sums but not to MatchesPlayed. rosterSize is
// passed through untouched.
func Summarize(rows []models.PlayerStats, rosterSize int) models.TeamStatsSummary {
	summary := models.TeamStatsSummary{PlayersCount: rosterSize}
	matches := make(map[uuid.UUID]struct{})
	for _, row := range rows {
		summary.TotalGoals += int64(max(row.Goals, 0))
		summary.TotalAssists += int64(max(row.Assists, 0))
		summary.TotalMinutes += int64(max(row.MinutesPlayed, 0))
		if !row.MatchDate.IsZero() {
			matches[row.MatchID] = struct{}{}
		}
	}
	summary.MatchesPlayed = len(matches)
	return summary
}

// Totals rolls rows up per player. Every roster member gets an entry, including
// those without a row. Only rows with a surviving match count as appearances. Ordered by goals desc, then jersey asc, then roster order.
func Totals(roster []models.Player, rows []models.PlayerStats) []models.PlayerTotals {
	index := make(map[uuid.UUID]int, len(roster))
	out := make([]models.PlayerTotals, len(roster))
	for i, p := range roster {
		index[p.ID] = i
		out[i].Player = p
	}

	for _, row := range rows {
		i, ok := index[row.PlayerID]
		if !ok {
			continue
		}
		out[i].Goals += int64(max(row.Goals, 0))
		out[i].Assists += int64(max(row.Assists, 0))
		out[i].MinutesPlayed += int64(max(row.MinutesPlayed, 0))
		if !row.MatchDate.IsZero() {
			out[i].Appearances++
		}
	}

	slices.SortStableFunc(out, func(a, b models.PlayerTotals) int {
		if c := cmp.Compare(b.Goals, a.Goals); c != 0 {
			return c
		}
		return cmp.Compare(a.Player.JerseyNumber, b.Player.JerseyNumber)
	})
	return out
}

// sortByMatchDate orders rows most recent first; rows without a match date go last
func sortByMatchDate(rows []models.PlayerStats) {
	slices.SortStableFunc(rows, func(a, b models.PlayerStats) int {
		return b.MatchDate.Compare(a.MatchDate)
	})
}
