package matches

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/rosterbook/go/internal/events"
	"github.com/mcdev12/rosterbook/go/internal/testing/fixtures"
	"github.com/mcdev12/rosterbook/go/internal/testing/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchMatches_LatestFirst(t *testing.T) {
	tdb := testdb.New(t)
	f := fixtures.New(tdb.Queries)
	app := NewApp(NewRepository(tdb.Queries, tdb.DB), events.NopPublisher{}, clockwork.NewFakeClock(), 2)

	team := f.CreateTeam(t)
	other := f.CreateTeam(t)
	day := time.Date(2024, 4, 1, 15, 0, 0, 0, time.UTC)
	var latest uuid.UUID
	for _, offset := range []int{3, 0, 4, 1, 2} {
		m := f.CreateMatch(t, team, day.AddDate(0, 0, offset))
		if offset == 4 {
			latest = m.ID
		}
	}
	f.CreateMatch(t, other, day.AddDate(0, 0, 10))

	got, err := app.FetchMatches(tdb.Ctx(), team.ID, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, latest, got[0].ID)

	all, err := app.FetchMatches(tdb.Ctx(), team.ID, 0)
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i := 1; i < len(all); i++ {
		assert.True(t, all[i-1].Date.After(all[i].Date), "matches must be most recent first")
	}
}

func TestRecordMatch_Store(t *testing.T) {
	tdb := testdb.New(t)
	f := fixtures.New(tdb.Queries)
	repo := NewRepository(tdb.Queries, tdb.DB)

	team := f.CreateTeam(t)
	a := f.CreatePlayer(t, team)
	b := f.CreatePlayer(t, team)
	date := time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC)

	match, stats, err := repo.RecordMatch(tdb.Ctx(), RecordMatchRequest{
		TeamID:    team.ID,
		Opponent:  "Harbor United",
		Date:      date,
		CreatedAt: date,
		Stats: []StatLine{
			{PlayerID: a.ID, Goals: 1, MinutesPlayed: 90},
			{PlayerID: b.ID, Assists: 1, MinutesPlayed: 60},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, date, match.Date)
	require.Len(t, stats, 2)
	assert.Equal(t, match.ID, stats[0].MatchID)

	page, err := repo.ListMatchesPage(tdb.Ctx(), team.ID, nil, 10)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "Harbor United", page[0].Opponent)
}

func TestRecordMatch_RollsBack(t *testing.T) {
	tdb := testdb.New(t)
	f := fixtures.New(tdb.Queries)
	repo := NewRepository(tdb.Queries, tdb.DB)

	team := f.CreateTeam(t)
	a := f.CreatePlayer(t, team)

	// The second line references an unknown player and violates the foreign key.
	_, _, err := repo.RecordMatch(tdb.Ctx(), RecordMatchRequest{
		TeamID:    team.ID,
		Date:      time.Now(),
		CreatedAt: time.Now(),
		Stats: []StatLine{
			{PlayerID: a.ID, Goals: 1},
			{PlayerID: uuid.New(), Goals: 1},
		},
	})
	require.Error(t, err)

	page, err := repo.ListMatchesPage(tdb.Ctx(), team.ID, nil, 10)
	require.NoError(t, err)
	assert.Empty(t, page)
}
