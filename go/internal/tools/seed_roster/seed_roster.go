package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mcdev12/rosterbook/go/internal/db"
	"github.com/mcdev12/rosterbook/go/internal/dbconfig"
)

const (
	defaultTeamName = "My Team"
	defaultSquad    = 20
)

var positions = []string{"Goalkeeper", "Defender", "Defender", "Defender", "Defender", "Midfielder", "Midfielder", "Midfielder", "Forward", "Forward"}

func main() {
	ctx := context.Background()

	// 1) Connect using shared dbconfig
	cfg := dbconfig.NewConfigFromEnv()
	if cfg.Driver != db.DialectPostgres {
		fmt.Fprintf(os.Stderr, "seed_roster only supports postgres, got DB_DRIVER=%s\n", cfg.Driver)
		os.Exit(1)
	}
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	// 2) Only seed an empty store
	var teams int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM teams`).Scan(&teams); err != nil {
		fmt.Fprintf(os.Stderr, "count teams: %v\n", err)
		os.Exit(1)
	}
	if teams > 0 {
		fmt.Printf("Roster seed skipped: %d teams already present\n", teams)
		return
	}

	// 3) Insert the default team and its squad in one transaction
	teamID, inserted, err := seed(ctx, pool, time.Now().UTC())
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed roster: %v\n", err)
		os.Exit(1)
	}

	// 4) Print summary
	fmt.Printf("Roster seed complete: team %s with %d players\n", teamID, inserted)
}

func seed(ctx context.Context, pool *pgxpool.Pool, now time.Time) (uuid.UUID, int, error) {
	teamID := uuid.New()
	inserted := 0

	err := pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
            INSERT INTO teams (id, name, created_at)
            VALUES ($1, $2, $3)
        `, teamID.String(), defaultTeamName, now.UnixMilli()); err != nil {
			return fmt.Errorf("insert team: %w", err)
		}

		for i := 0; i < defaultSquad; i++ {
			// Offset created_at so insertion order survives the (created_at, id) ordering.
			createdAt := now.Add(time.Duration(i) * time.Millisecond).UnixMilli()
			if _, err := tx.Exec(ctx, `
                INSERT INTO players (id, team_id, name, jersey_number, position, is_injured, created_at)
                VALUES ($1, $2, $3, $4, $5, FALSE, $6)
            `, uuid.New().String(), teamID.String(), fmt.Sprintf("Player %d", i+1), i+1, positions[i%len(positions)], createdAt); err != nil {
				return fmt.Errorf("insert player %d: %w", i+1, err)
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, 0, err
	}
	return teamID, inserted, nil
}
