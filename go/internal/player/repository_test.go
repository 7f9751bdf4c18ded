package player

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/rosterbook/go/internal/testing/fixtures"
	"github.com/mcdev12/rosterbook/go/internal/testing/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchActivePlayers_Store(t *testing.T) {
	tdb := testdb.New(t)
	f := fixtures.New(tdb.Queries)
	app := NewApp(NewRepository(tdb.Queries), clockwork.NewFakeClock())

	team := f.CreateTeam(t, "Rosie FC")
	other := f.CreateTeam(t)
	nine := f.CreatePlayer(t, team, fixtures.WithJersey(9))
	f.CreatePlayer(t, team, fixtures.WithJersey(3), fixtures.WithInjured(true))
	// Unset injury flag and missing name count as healthy and empty.
	unset := f.CreatePlayer(t, team, fixtures.WithJersey(5), fixtures.WithName(""))
	second9 := f.CreatePlayer(t, team, fixtures.WithJersey(9), fixtures.WithInjured(false))
	f.CreatePlayer(t, other, fixtures.WithJersey(1))

	got, err := app.FetchActivePlayers(tdb.Ctx(), team.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, unset.ID, got[0].ID)
	assert.Equal(t, "", got[0].Name)
	assert.Equal(t, nine.ID, got[1].ID)
	assert.Equal(t, second9.ID, got[2].ID)
}

func TestSearchPlayers_Store(t *testing.T) {
	tdb := testdb.New(t)
	f := fixtures.New(tdb.Queries)
	app := NewApp(NewRepository(tdb.Queries), clockwork.NewFakeClock())

	team := f.CreateTeam(t)
	alex := f.CreatePlayer(t, team, fixtures.WithName("Alex"), fixtures.WithJersey(10))
	f.CreatePlayer(t, team, fixtures.WithName("Björn"), fixtures.WithJersey(4), fixtures.WithPosition("Defender"))

	got, err := app.SearchPlayers(tdb.Ctx(), team.ID, "10")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, alex.ID, got[0].ID)

	got, err = app.SearchPlayers(tdb.Ctx(), team.ID, "bjorn")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Björn", got[0].Name)
}

func TestGetPlayer_NullColumns(t *testing.T) {
	tdb := testdb.New(t)
	f := fixtures.New(tdb.Queries)
	repo := NewRepository(tdb.Queries)

	team := f.CreateTeam(t)
	id := uuid.New()
	tdb.MustExec(`INSERT INTO players (id, team_id, name, jersey_number, position, is_injured, created_at)
		VALUES (?, ?, NULL, NULL, NULL, NULL, ?)`, id.String(), team.ID.String(), int64(1717200000000))

	got, err := repo.GetPlayer(tdb.Ctx(), id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, team.ID, got.TeamID)
	assert.Equal(t, "", got.Name)
	assert.Equal(t, 0, got.JerseyNumber)
	assert.Equal(t, "", got.Position)
	assert.False(t, got.IsInjured)
	assert.Equal(t, int64(1717200000000), got.CreatedAt.UnixMilli())
}
