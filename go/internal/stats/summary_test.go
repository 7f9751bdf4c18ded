package stats

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/rosterbook/go/internal/models"
	"github.com/stretchr/testify/assert"
)

var kickoff = time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC)

func TestSummarize_DistinctMatches(t *testing.T) {
	match := uuid.New()
	rows := make([]models.PlayerStats, 11)
	for i := range rows {
		rows[i] = models.PlayerStats{PlayerID: uuid.New(), MatchID: match, Goals: 1, MinutesPlayed: 90, MatchDate: kickoff}
	}

	got := Summarize(rows, 18)

	assert.Equal(t, models.TeamStatsSummary{
		TotalGoals:    11,
		TotalAssists:  0,
		TotalMinutes:  990,
		MatchesPlayed: 1,
		PlayersCount:  18,
	}, got)
}

func TestSummarize_Assists(t *testing.T) {
	m1, m2 := uuid.New(), uuid.New()
	rows := []models.PlayerStats{
		{PlayerID: uuid.New(), MatchID: m1, Goals: 1, Assists: 2, MatchDate: kickoff},
		{PlayerID: uuid.New(), MatchID: m1, Assists: 1, MatchDate: kickoff},
		{PlayerID: uuid.New(), MatchID: m2, Goals: 2, Assists: 3, MatchDate: kickoff.AddDate(0, 0, 7)},
	}

	got := Summarize(rows, 3)

	assert.Equal(t, int64(3), got.TotalGoals)
	assert.Equal(t, int64(6), got.TotalAssists)
	assert.Equal(t, 2, got.MatchesPlayed)
}

func TestSummarize_DeletedMatchNotPlayed(t *testing.T) {
	player := uuid.New()
	rows := []models.PlayerStats{
		{PlayerID: player, MatchID: uuid.New(), Goals: 1, MatchDate: kickoff},
		{PlayerID: player, MatchID: uuid.New(), Goals: 1},
	}

	got := Summarize(rows, 1)

	assert.Equal(t, models.TeamStatsSummary{TotalGoals: 2, MatchesPlayed: 1, PlayersCount: 1}, got)
}

func TestSummarize_NoRowsKeepsRosterSize(t *testing.T) {
	assert.Equal(t, models.TeamStatsSummary{PlayersCount: 3}, Summarize(nil, 3))
}

func TestSummarize_WideSums(t *testing.T) {
	rows := []models.PlayerStats{
		{MatchID: uuid.New(), MinutesPlayed: 1 << 30, MatchDate: kickoff},
		{MatchID: uuid.New(), MinutesPlayed: 1 << 30, MatchDate: kickoff},
		{MatchID: uuid.New(), MinutesPlayed: 1 << 30, MatchDate: kickoff},
	}
	assert.Equal(t, int64(3)<<30, Summarize(rows, 0).TotalMinutes)
}

func TestTotals(t *testing.T) {
	keeper := models.Player{ID: uuid.New(), Name: "Keeper", JerseyNumber: 1}
	striker := models.Player{ID: uuid.New(), Name: "Striker", JerseyNumber: 9}
	winger := models.Player{ID: uuid.New(), Name: "Winger", JerseyNumber: 7}
	bench := models.Player{ID: uuid.New(), Name: "Bench", JerseyNumber: 12}
	m1, m2, gone := uuid.New(), uuid.New(), uuid.New()

	rows := []models.PlayerStats{
		{PlayerID: striker.ID, MatchID: m1, Goals: 2, MinutesPlayed: 90, MatchDate: kickoff},
		{PlayerID: striker.ID, MatchID: m2, Goals: 1, Assists: 1, MinutesPlayed: 80, MatchDate: kickoff.AddDate(0, 0, 7)},
		{PlayerID: winger.ID, MatchID: m1, Goals: 3, Assists: 2, MinutesPlayed: 90, MatchDate: kickoff},
		{PlayerID: keeper.ID, MatchID: m1, MinutesPlayed: 90, MatchDate: kickoff},
		{PlayerID: keeper.ID, MatchID: gone, Assists: 1, MinutesPlayed: 45},
		{PlayerID: uuid.New(), MatchID: m2, Goals: 5, MatchDate: kickoff.AddDate(0, 0, 7)},
	}

	got := Totals([]models.Player{keeper, striker, winger, bench}, rows)

	assert.Len(t, got, 4)
	// Tied on goals, the lower jersey comes first.
	assert.Equal(t, winger.ID, got[0].Player.ID)
	assert.Equal(t, int64(2), got[0].Assists)
	assert.Equal(t, striker.ID, got[1].Player.ID)
	assert.Equal(t, int64(3), got[1].Goals)
	assert.Equal(t, int64(1), got[1].Assists)
	assert.Equal(t, 2, got[1].Appearances)
	assert.Equal(t, int64(170), got[1].MinutesPlayed)
	assert.Equal(t, keeper.ID, got[2].Player.ID)
	assert.Equal(t, int64(1), got[2].Assists)
	assert.Equal(t, int64(135), got[2].MinutesPlayed)
	assert.Equal(t, 1, got[2].Appearances)
	assert.Equal(t, bench.ID, got[3].Player.ID)
	assert.Equal(t, 0, got[3].Appearances)
}

func TestSortByMatchDate(t *testing.T) {
	older := models.PlayerStats{ID: uuid.New(), MatchDate: kickoff}
	newer := models.PlayerStats{ID: uuid.New(), MatchDate: kickoff.AddDate(0, 0, 3)}
	missing := models.PlayerStats{ID: uuid.New()}

	rows := []models.PlayerStats{missing, older, newer}
	sortByMatchDate(rows)

	assert.Equal(t, []models.PlayerStats{newer, older, missing}, rows)
}
