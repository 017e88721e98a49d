package recovery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymready/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// Repo is the postgres backed Store.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) AddSurvey(ctx context.Context, survey Survey) (_ *Survey, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.recovery.survey.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", survey.UserID))

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO recovery_survey
				(user_id, survey_date, sleep_quality, energy_level, overall_soreness, motivation, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id;`,
		survey.UserID, survey.SurveyDate,
		survey.SleepQuality, survey.EnergyLevel, survey.OverallSoreness, survey.Motivation,
		survey.CreatedAt,
	).Scan(&survey.ID)
	if err != nil {
		return nil, fmt.Errorf("insert survey: %w", err)
	}

	span.SetAttributes(attribute.Int("survey.id", survey.ID))
	return &survey, nil
}

func (r *Repo) LatestSurvey(ctx context.Context, userID string) (_ *Survey, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.recovery.survey.latest")
	defer func() {
		endLookupSpan(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	row := r.db.QueryRow(
		ctx,
		`
			SELECT id, user_id, survey_date, sleep_quality, energy_level, overall_soreness, motivation, created_at
			FROM recovery_survey
			WHERE user_id = $1
			ORDER BY survey_date DESC, created_at DESC, id DESC
			LIMIT 1;`,
		userID,
	)
	return scanSurvey(row)
}

func (r *Repo) SurveyForDay(ctx context.Context, userID string, day time.Time) (_ *Survey, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.recovery.survey.forday")
	defer func() {
		endLookupSpan(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))
	span.SetAttributes(attribute.String("day", day.Format(time.DateOnly)))

	row := r.db.QueryRow(
		ctx,
		`
			SELECT id, user_id, survey_date, sleep_quality, energy_level, overall_soreness, motivation, created_at
			FROM recovery_survey
			WHERE user_id = $1 AND survey_date = $2
			ORDER BY created_at DESC, id DESC
			LIMIT 1;`,
		userID, day,
	)
	return scanSurvey(row)
}

func scanSurvey(row pgx.Row) (*Survey, error) {
	s := &Survey{}
	err := row.Scan(
		&s.ID, &s.UserID, &s.SurveyDate,
		&s.SleepQuality, &s.EnergyLevel, &s.OverallSoreness, &s.Motivation,
		&s.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSurveyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan survey: %w", err)
	}
	return s, nil
}

func (r *Repo) AddSession(ctx context.Context, session SessionRecord) (_ *SessionRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.recovery.session.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", session.UserID))

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO session_exertion
				(user_id, session_rpe, duration_minutes, total_load, exercise_count, created_at)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		session.UserID, session.SessionRPE, session.DurationMinutes,
		session.TotalLoad, session.ExerciseCount, session.CreatedAt,
	).Scan(&session.ID)
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}

	span.SetAttributes(attribute.Int("session.id", session.ID))
	return &session, nil
}

// ListSessions returns the user's sessions created at or after from, newest first.
func (r *Repo) ListSessions(ctx context.Context, userID string, from time.Time) (_ []SessionRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.recovery.session.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))
	span.SetAttributes(attribute.String("from", from.String()))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, user_id, session_rpe, duration_minutes, total_load, exercise_count, created_at
			FROM session_exertion
			WHERE user_id = $1 AND created_at >= $2
			ORDER BY created_at DESC;`,
		userID, from,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	sessions := make([]SessionRecord, 0)
	for rows.Next() {
		var s SessionRecord
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.SessionRPE, &s.DurationMinutes,
			&s.TotalLoad, &s.ExerciseCount, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	span.SetAttributes(attribute.Int("sessions.count", len(sessions)))
	return sessions, nil
}
