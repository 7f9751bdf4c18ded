package rosterv1

import (
	"encoding/json"
	"time"
)

type Team struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Player struct {
	Id           string `json:"id"`
	TeamId       string `json:"team_id"`
	Name         string `json:"name"`
	JerseyNumber int32  `json:"jersey_number"`
	Position     string `json:"position"`
	IsInjured    bool   `json:"is_injured"`
}

type Match struct {
	Id       string    `json:"id"`
	TeamId   string    `json:"team_id"`
	Opponent string    `json:"opponent"`
	Date     time.Time `json:"date"`
}

type PlayerStats struct {
	Id            string    `json:"id"`
	PlayerId      string    `json:"player_id"`
	MatchId       string    `json:"match_id"`
	Goals         int32     `json:"goals"`
	Assists       int32     `json:"assists"`
	MinutesPlayed int32     `json:"minutes_played"`
	MatchDate     time.Time `json:"match_date"`
}

type TeamStatsSummary struct {
	TotalGoals    int64 `json:"total_goals"`
	TotalAssists  int64 `json:"total_assists"`
	TotalMinutes  int64 `json:"total_minutes"`
	MatchesPlayed int32 `json:"matches_played"`
	PlayersCount  int32 `json:"players_count"`
}

type LeaderboardEntry struct {
	Player        *Player `json:"player"`
	Goals         int64   `json:"goals"`
	Assists       int64   `json:"assists"`
	MinutesPlayed int64   `json:"minutes_played"`
	Appearances   int32   `json:"appearances"`
}

type TrainingSession struct {
	Id            string    `json:"id"`
	TeamId        string    `json:"team_id"`
	Date          time.Time `json:"date"`
	Location      string    `json:"location"`
	Notes         string    `json:"notes"`
	AttendedCount int32     `json:"attended_count"`
}

type CreateTeamRequest struct {
	Name string `json:"name"`
}

type CreateTeamResponse struct {
	Team *Team `json:"team"`
}

type GetTeamRequest struct {
	Id string `json:"id"`
}

type GetTeamResponse struct {
	Team *Team `json:"team"`
}

type ListTeamsRequest struct{}

type ListTeamsResponse struct {
	Teams []*Team `json:"teams"`
}

type DeleteTeamRequest struct {
	Id string `json:"id"`
}

type DeleteTeamResponse struct{}

type CreatePlayerRequest struct {
	TeamId       string `json:"team_id"`
	Name         string `json:"name"`
	JerseyNumber int32  `json:"jersey_number"`
	Position     string `json:"position"`
	IsInjured    *bool  `json:"is_injured,omitempty"`
}

type CreatePlayerResponse struct {
	Player *Player `json:"player"`
}

type GetPlayerRequest struct {
	Id string `json:"id"`
}

type GetPlayerResponse struct {
	Player *Player `json:"player"`
}

type FetchActivePlayersRequest struct {
	TeamId string `json:"team_id"`
}

type FetchActivePlayersResponse struct {
	Players []*Player `json:"players"`
}

type SearchPlayersRequest struct {
	TeamId     string `json:"team_id"`
	SearchText string `json:"search_text"`
}

type SearchPlayersResponse struct {
	Players []*Player `json:"players"`
}

type FetchMatchesRequest struct {
	TeamId string `json:"team_id"`
	// Limit of zero returns every match
	Limit int32 `json:"limit"`
}

type FetchMatchesResponse struct {
	Matches []*Match `json:"matches"`
}

type MatchPlayerStats struct {
	PlayerId      string `json:"player_id"`
	Goals         int32  `json:"goals"`
	Assists       int32  `json:"assists"`
	MinutesPlayed int32  `json:"minutes_played"`
}

type RecordMatchRequest struct {
	TeamId   string              `json:"team_id"`
	Opponent string              `json:"opponent"`
	Date     time.Time           `json:"date"`
	Stats    []*MatchPlayerStats `json:"stats"`
}

type RecordMatchResponse struct {
	Match *Match         `json:"match"`
	Stats []*PlayerStats `json:"stats"`
}

type GetPlayerStatisticsRequest struct {
	PlayerId  string `json:"player_id"`
	Timeframe string `json:"timeframe"`
	// ReferenceTime overrides the evaluation instant; zero means now
	ReferenceTime time.Time `json:"reference_time,omitempty"`
}

type GetPlayerStatisticsResponse struct {
	Stats []*PlayerStats `json:"stats"`
}

type GetTeamStatsSummaryRequest struct {
	TeamId        string    `json:"team_id"`
	Timeframe     string    `json:"timeframe"`
	ReferenceTime time.Time `json:"reference_time,omitempty"`
}

type GetTeamStatsSummaryResponse struct {
	Summary *TeamStatsSummary `json:"summary"`
}

type GetLeaderboardRequest struct {
	TeamId        string    `json:"team_id"`
	Timeframe     string    `json:"timeframe"`
	ReferenceTime time.Time `json:"reference_time,omitempty"`
}

type GetLeaderboardResponse struct {
	Entries []*LeaderboardEntry `json:"entries"`
}

type SessionAttendance struct {
	PlayerId string `json:"player_id"`
	Attended bool   `json:"attended"`
}

type SessionDrill struct {
	Name string `json:"name"`
	// Details is free-form JSON
	Details json.RawMessage `json:"details,omitempty"`
}

type SessionPhoto struct {
	Url     string `json:"url"`
	Caption string `json:"caption"`
}

type CreateSessionRequest struct {
	TeamId     string               `json:"team_id"`
	Date       time.Time            `json:"date"`
	Location   string               `json:"location"`
	Notes      string               `json:"notes"`
	Attendance []*SessionAttendance `json:"attendance"`
	Drills     []*SessionDrill      `json:"drills"`
	Photos     []*SessionPhoto      `json:"photos"`
}

type CreateSessionResponse struct {
	Session *TrainingSession `json:"session"`
}

type ListSessionsRequest struct {
	TeamId string `json:"team_id"`
}

type ListSessionsResponse struct {
	Sessions []*TrainingSession `json:"sessions"`
}
