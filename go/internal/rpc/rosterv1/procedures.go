// Package rosterv1 defines the roster.v1 connect services: fully-qualified
// service names, procedure paths and the request/response messages. Messages
// are plain structs carried by the JSON codec in package rpc.
package rosterv1

const (
	TeamServiceName     = "roster.v1.TeamService"
	PlayerServiceName   = "roster.v1.PlayerService"
	MatchServiceName    = "roster.v1.MatchService"
	StatsServiceName    = "roster.v1.StatsService"
	TrainingServiceName = "roster.v1.TrainingService"
)

const (
	TeamServiceCreateTeamProcedure = "/roster.v1.TeamService/CreateTeam"
	TeamServiceGetTeamProcedure    = "/roster.v1.TeamService/GetTeam"
	TeamServiceListTeamsProcedure  = "/roster.v1.TeamService/ListTeams"
	TeamServiceDeleteTeamProcedure = "/roster.v1.TeamService/DeleteTeam"

	PlayerServiceCreatePlayerProcedure       = "/roster.v1.PlayerService/CreatePlayer"
	PlayerServiceGetPlayerProcedure          = "/roster.v1.PlayerService/GetPlayer"
	PlayerServiceFetchActivePlayersProcedure = "/roster.v1.PlayerService/FetchActivePlayers"
	PlayerServiceSearchPlayersProcedure      = "/roster.v1.PlayerService/SearchPlayers"

	MatchServiceFetchMatchesProcedure = "/roster.v1.MatchService/FetchMatches"
	MatchServiceRecordMatchProcedure  = "/roster.v1.MatchService/RecordMatch"

	StatsServiceGetPlayerStatisticsProcedure = "/roster.v1.StatsService/GetPlayerStatistics"
	StatsServiceGetTeamStatsSummaryProcedure = "/roster.v1.StatsService/GetTeamStatsSummary"
	StatsServiceGetLeaderboardProcedure      = "/roster.v1.StatsService/GetLeaderboard"

	TrainingServiceCreateSessionProcedure = "/roster.v1.TrainingService/CreateSession"
	TrainingServiceListSessionsProcedure  = "/roster.v1.TrainingService/ListSessions"
)
