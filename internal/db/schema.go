package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS recovery_survey (
		id SERIAL PRIMARY KEY,
		user_id TEXT NOT NULL,
		survey_date DATE NOT NULL,
		sleep_quality INTEGER,
		energy_level INTEGER,
		overall_soreness INTEGER,
		motivation INTEGER,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`,
	// intentionally no unique (user_id, survey_date): same-day duplicates are flagged, not rejected
	`CREATE INDEX IF NOT EXISTS idx_recovery_survey_user_date ON recovery_survey (user_id, survey_date DESC);`,
	`CREATE TABLE IF NOT EXISTS session_exertion (
		id SERIAL PRIMARY KEY,
		user_id TEXT NOT NULL,
		session_rpe INTEGER,
		duration_minutes INTEGER NOT NULL DEFAULT 0,
		total_load DOUBLE PRECISION NOT NULL DEFAULT 0,
		exercise_count INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_session_exertion_user_created ON session_exertion (user_id, created_at DESC);`,
	`CREATE TABLE IF NOT EXISTS gymstats_event (
		id SERIAL PRIMARY KEY,
		type TEXT NOT NULL,
		user_id TEXT NOT NULL,
		data JSONB NOT NULL DEFAULT '{}'::jsonb,
		timestamp TIMESTAMPTZ NOT NULL
	);`,
}

// EnsureSchema creates the gymready tables if they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("exec schema statement: %w", err)
		}
	}
	return nil
}
