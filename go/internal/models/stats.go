package models

import (
	"time"

	"github.com/google/uuid"
)

// PlayerStats is the per-player per-match fact row.
// MatchDate is denormalized from the referenced match at read time and is the
// zero time when that match no longer exists.
type PlayerStats struct {
	ID            uuid.UUID `json:"id"`
	PlayerID      uuid.UUID `json:"player_id"`
	MatchID       uuid.UUID `json:"match_id"`
	Goals         int       `json:"goals"`
	Assists       int       `json:"assists"`
	MinutesPlayed int       `json:"minutes_played"`
	MatchDate     time.Time `json:"match_date"`
}

// TeamStatsSummary is the roll-up of a team's stats over a timeframe.
// PlayersCount is the current roster size and ignores the timeframe.
type TeamStatsSummary struct {
	TotalGoals    int64 `json:"total_goals"`
	TotalAssists  int64 `json:"total_assists"`
	TotalMinutes  int64 `json:"total_minutes"`
	MatchesPlayed int   `json:"matches_played"`
	PlayersCount  int   `json:"players_count"`
}

// PlayerTotals is a single player's roll-up over a timeframe
type PlayerTotals struct {
	Player        Player `json:"player"`
	Goals         int64  `json:"goals"`
	Assists       int64  `json:"assists"`
	MinutesPlayed int64  `json:"minutes_played"`
	Appearances   int    `json:"appearances"`
}
