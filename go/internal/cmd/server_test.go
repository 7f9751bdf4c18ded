package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/rosterbook/go/internal/db"
	"github.com/mcdev12/rosterbook/go/internal/events"
	"github.com/mcdev12/rosterbook/go/internal/rpc"
	rosterv1 "github.com/mcdev12/rosterbook/go/internal/rpc/rosterv1"
	"github.com/mcdev12/rosterbook/go/internal/testing/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func call[Req, Res any](t *testing.T, srv *httptest.Server, procedure string, req *Req) (*Res, error) {
	t.Helper()
	client := connect.NewClient[Req, Res](srv.Client(), srv.URL+procedure, rpc.ClientOptions()...)
	resp, err := client.CallUnary(context.Background(), connect.NewRequest(req))
	if err != nil {
		return nil, err
	}
	return resp.Msg, nil
}

func newTestServer(t *testing.T, now time.Time) *httptest.Server {
	t.Helper()
	tdb := testdb.New(t)
	config := defaultConfig()
	services := setupServices(tdb.DB, db.DialectSQLite, events.NopPublisher{}, clockwork.NewFakeClockAt(now), config)
	srv := httptest.NewServer(newHandler(services, config.Server.AllowedOrigins))
	t.Cleanup(srv.Close)
	return srv
}

func TestServer_Health(t *testing.T) {
	srv := newTestServer(t, time.Now())

	resp, err := srv.Client().Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", string(body))
}

func TestServer_RosterFlow(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	srv := newTestServer(t, now)

	team, err := call[rosterv1.CreateTeamRequest, rosterv1.CreateTeamResponse](t, srv,
		rosterv1.TeamServiceCreateTeamProcedure, &rosterv1.CreateTeamRequest{Name: "Rosie FC"})
	require.NoError(t, err)
	teamID := team.Team.Id

	injured := true
	var playerIDs []string
	for _, p := range []rosterv1.CreatePlayerRequest{
		{TeamId: teamID, Name: "Alex", JerseyNumber: 10, Position: "Forward"},
		{TeamId: teamID, Name: "Bea", JerseyNumber: 1, Position: "Goalkeeper"},
		{TeamId: teamID, Name: "Cruz", JerseyNumber: 5, Position: "Defender", IsInjured: &injured},
	} {
		created, err := call[rosterv1.CreatePlayerRequest, rosterv1.CreatePlayerResponse](t, srv,
			rosterv1.PlayerServiceCreatePlayerProcedure, &p)
		require.NoError(t, err)
		playerIDs = append(playerIDs, created.Player.Id)
	}

	active, err := call[rosterv1.FetchActivePlayersRequest, rosterv1.FetchActivePlayersResponse](t, srv,
		rosterv1.PlayerServiceFetchActivePlayersProcedure, &rosterv1.FetchActivePlayersRequest{TeamId: teamID})
	require.NoError(t, err)
	require.Len(t, active.Players, 2)
	assert.Equal(t, "Bea", active.Players[0].Name)
	assert.Equal(t, "Alex", active.Players[1].Name)

	found, err := call[rosterv1.SearchPlayersRequest, rosterv1.SearchPlayersResponse](t, srv,
		rosterv1.PlayerServiceSearchPlayersProcedure, &rosterv1.SearchPlayersRequest{TeamId: teamID, SearchText: "10"})
	require.NoError(t, err)
	require.Len(t, found.Players, 1)
	assert.Equal(t, "Alex", found.Players[0].Name)

	got, err := call[rosterv1.GetPlayerRequest, rosterv1.GetPlayerResponse](t, srv,
		rosterv1.PlayerServiceGetPlayerProcedure, &rosterv1.GetPlayerRequest{Id: playerIDs[2]})
	require.NoError(t, err)
	assert.True(t, got.Player.IsInjured)

	_, err = call[rosterv1.RecordMatchRequest, rosterv1.RecordMatchResponse](t, srv,
		rosterv1.MatchServiceRecordMatchProcedure, &rosterv1.RecordMatchRequest{
			TeamId:   teamID,
			Opponent: "Harbor United",
			Date:     now.AddDate(0, 0, -2),
			Stats: []*rosterv1.MatchPlayerStats{
				{PlayerId: playerIDs[0], Goals: 2, MinutesPlayed: 90},
				{PlayerId: playerIDs[1], MinutesPlayed: 90},
			},
		})
	require.NoError(t, err)

	matches, err := call[rosterv1.FetchMatchesRequest, rosterv1.FetchMatchesResponse](t, srv,
		rosterv1.MatchServiceFetchMatchesProcedure, &rosterv1.FetchMatchesRequest{TeamId: teamID, Limit: 1})
	require.NoError(t, err)
	require.Len(t, matches.Matches, 1)
	assert.Equal(t, "Harbor United", matches.Matches[0].Opponent)

	summary, err := call[rosterv1.GetTeamStatsSummaryRequest, rosterv1.GetTeamStatsSummaryResponse](t, srv,
		rosterv1.StatsServiceGetTeamStatsSummaryProcedure, &rosterv1.GetTeamStatsSummaryRequest{TeamId: teamID, Timeframe: "LAST_WEEK"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.Summary.TotalGoals)
	assert.Equal(t, int32(1), summary.Summary.MatchesPlayed)
	assert.Equal(t, int32(3), summary.Summary.PlayersCount)

	// Evaluated a month later the match falls outside the week.
	later, err := call[rosterv1.GetTeamStatsSummaryRequest, rosterv1.GetTeamStatsSummaryResponse](t, srv,
		rosterv1.StatsServiceGetTeamStatsSummaryProcedure, &rosterv1.GetTeamStatsSummaryRequest{
			TeamId: teamID, Timeframe: "LAST_WEEK", ReferenceTime: now.AddDate(0, 1, 0),
		})
	require.NoError(t, err)
	assert.Equal(t, int64(0), later.Summary.TotalGoals)
	assert.Equal(t, int32(3), later.Summary.PlayersCount)

	stats, err := call[rosterv1.GetPlayerStatisticsRequest, rosterv1.GetPlayerStatisticsResponse](t, srv,
		rosterv1.StatsServiceGetPlayerStatisticsProcedure, &rosterv1.GetPlayerStatisticsRequest{PlayerId: playerIDs[0]})
	require.NoError(t, err)
	require.Len(t, stats.Stats, 1)
	assert.Equal(t, int32(2), stats.Stats[0].Goals)

	board, err := call[rosterv1.GetLeaderboardRequest, rosterv1.GetLeaderboardResponse](t, srv,
		rosterv1.StatsServiceGetLeaderboardProcedure, &rosterv1.GetLeaderboardRequest{TeamId: teamID, Timeframe: "ALL_TIME"})
	require.NoError(t, err)
	require.Len(t, board.Entries, 3)
	assert.Equal(t, "Alex", board.Entries[0].Player.Name)

	session, err := call[rosterv1.CreateSessionRequest, rosterv1.CreateSessionResponse](t, srv,
		rosterv1.TrainingServiceCreateSessionProcedure, &rosterv1.CreateSessionRequest{
			TeamId:     teamID,
			Location:   "Main pitch",
			Attendance: []*rosterv1.SessionAttendance{{PlayerId: playerIDs[0], Attended: true}},
			Drills:     []*rosterv1.SessionDrill{{Name: "Rondo", Details: []byte(`{"reps":3}`)}},
		})
	require.NoError(t, err)
	assert.Equal(t, int32(1), session.Session.AttendedCount)

	sessions, err := call[rosterv1.ListSessionsRequest, rosterv1.ListSessionsResponse](t, srv,
		rosterv1.TrainingServiceListSessionsProcedure, &rosterv1.ListSessionsRequest{TeamId: teamID})
	require.NoError(t, err)
	require.Len(t, sessions.Sessions, 1)
	assert.Equal(t, "Main pitch", sessions.Sessions[0].Location)
}

func TestServer_ErrorCodes(t *testing.T) {
	srv := newTestServer(t, time.Now())

	_, err := call[rosterv1.FetchMatchesRequest, rosterv1.FetchMatchesResponse](t, srv,
		rosterv1.MatchServiceFetchMatchesProcedure, &rosterv1.FetchMatchesRequest{TeamId: "nope"})
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = call[rosterv1.GetTeamStatsSummaryRequest, rosterv1.GetTeamStatsSummaryResponse](t, srv,
		rosterv1.StatsServiceGetTeamStatsSummaryProcedure, &rosterv1.GetTeamStatsSummaryRequest{
			TeamId: "9b2f1f3c-54a6-4d0e-9a51-2c1b6a7d8e90", Timeframe: "FORTNIGHT",
		})
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = call[rosterv1.GetTeamRequest, rosterv1.GetTeamResponse](t, srv,
		rosterv1.TeamServiceGetTeamProcedure, &rosterv1.GetTeamRequest{Id: "9b2f1f3c-54a6-4d0e-9a51-2c1b6a7d8e90"})
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	_, err = call[rosterv1.CreateTeamRequest, rosterv1.CreateTeamResponse](t, srv,
		rosterv1.TeamServiceCreateTeamProcedure, &rosterv1.CreateTeamRequest{Name: ""})
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}
