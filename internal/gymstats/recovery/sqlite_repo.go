package recovery

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymready/internal/telemetry/tracing"

	_ "github.com/mattn/go-sqlite3"
	"go.opentelemetry.io/otel/attribute"
)

const sqliteSchema = `
	CREATE TABLE IF NOT EXISTS recovery_survey (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id TEXT NOT NULL,
		survey_date TEXT NOT NULL,
		sleep_quality INTEGER,
		energy_level INTEGER,
		overall_soreness INTEGER,
		motivation INTEGER,
		created_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_recovery_survey_user_date ON recovery_survey(user_id, survey_date DESC);

	CREATE TABLE IF NOT EXISTS session_exertion (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id TEXT NOT NULL,
		session_rpe INTEGER,
		duration_minutes INTEGER NOT NULL DEFAULT 0,
		total_load REAL NOT NULL DEFAULT 0,
		exercise_count INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_session_exertion_user_created ON session_exertion(user_id, created_at DESC);
`

// SQLiteRepo is a single-node Store backed by a sqlite database file.
// Survey dates are kept as YYYY-MM-DD text, timestamps in UTC.
type SQLiteRepo struct {
	db *sql.DB
}

func NewSQLiteRepo(ctx context.Context, path string) (*SQLiteRepo, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite db %s: %w", path, err)
	}
	// sqlite allows a single writer
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init sqlite schema: %w", err)
	}

	return &SQLiteRepo{
		db: db,
	}, nil
}

func (r *SQLiteRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *SQLiteRepo) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepo) AddSurvey(ctx context.Context, survey Survey) (_ *Survey, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sqlite.recovery.survey.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", survey.UserID))

	res, err := r.db.ExecContext(
		ctx,
		`INSERT INTO recovery_survey
			(user_id, survey_date, sleep_quality, energy_level, overall_soreness, motivation, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?);`,
		survey.UserID, survey.SurveyDate.Format(time.DateOnly),
		survey.SleepQuality, survey.EnergyLevel, survey.OverallSoreness, survey.Motivation,
		survey.CreatedAt.UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert survey: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	survey.ID = int(id)
	return &survey, nil
}

func (r *SQLiteRepo) LatestSurvey(ctx context.Context, userID string) (_ *Survey, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sqlite.recovery.survey.latest")
	defer func() {
		endLookupSpan(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	row := r.db.QueryRowContext(
		ctx,
		`SELECT id, user_id, survey_date, sleep_quality, energy_level, overall_soreness, motivation, created_at
			FROM recovery_survey
			WHERE user_id = ?
			ORDER BY survey_date DESC, created_at DESC, id DESC
			LIMIT 1;`,
		userID,
	)
	return scanSQLiteSurvey(row)
}

func (r *SQLiteRepo) SurveyForDay(ctx context.Context, userID string, day time.Time) (_ *Survey, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sqlite.recovery.survey.forday")
	defer func() {
		endLookupSpan(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	row := r.db.QueryRowContext(
		ctx,
		`SELECT id, user_id, survey_date, sleep_quality, energy_level, overall_soreness, motivation, created_at
			FROM recovery_survey
			WHERE user_id = ? AND survey_date = ?
			ORDER BY created_at DESC, id DESC
			LIMIT 1;`,
		userID, day.Format(time.DateOnly),
	)
	return scanSQLiteSurvey(row)
}

func scanSQLiteSurvey(row *sql.Row) (*Survey, error) {
	s := &Survey{}
	var surveyDate string
	var sleep, energy, soreness, motivation sql.NullInt64
	err := row.Scan(
		&s.ID, &s.UserID, &surveyDate,
		&sleep, &energy, &soreness, &motivation,
		&s.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSurveyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan survey: %w", err)
	}

	s.SurveyDate, err = time.Parse(time.DateOnly, surveyDate)
	if err != nil {
		return nil, fmt.Errorf("parse survey date %s: %w", surveyDate, err)
	}
	s.SleepQuality = nullIntPtr(sleep)
	s.EnergyLevel = nullIntPtr(energy)
	s.OverallSoreness = nullIntPtr(soreness)
	s.Motivation = nullIntPtr(motivation)
	return s, nil
}

func (r *SQLiteRepo) AddSession(ctx context.Context, session SessionRecord) (_ *SessionRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sqlite.recovery.session.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", session.UserID))

	res, err := r.db.ExecContext(
		ctx,
		`INSERT INTO session_exertion
			(user_id, session_rpe, duration_minutes, total_load, exercise_count, created_at)
			VALUES (?, ?, ?, ?, ?, ?);`,
		session.UserID, session.SessionRPE, session.DurationMinutes,
		session.TotalLoad, session.ExerciseCount, session.CreatedAt.UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	session.ID = int(id)
	return &session, nil
}

func (r *SQLiteRepo) ListSessions(ctx context.Context, userID string, from time.Time) (_ []SessionRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sqlite.recovery.session.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, user_id, session_rpe, duration_minutes, total_load, exercise_count, created_at
			FROM session_exertion
			WHERE user_id = ? AND created_at >= ?
			ORDER BY created_at DESC;`,
		userID, from.UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	sessions := make([]SessionRecord, 0)
	for rows.Next() {
		var s SessionRecord
		var rpe sql.NullInt64
		if err := rows.Scan(
			&s.ID, &s.UserID, &rpe, &s.DurationMinutes,
			&s.TotalLoad, &s.ExerciseCount, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		s.SessionRPE = nullIntPtr(rpe)
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return sessions, nil
}

func nullIntPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}
