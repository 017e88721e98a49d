package recovery

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/gymready/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/trace"
)

// Store persists recovery surveys and session exertion records.
// Implemented by Repo (postgres) and SQLiteRepo.
type Store interface {
	AddSurvey(ctx context.Context, survey Survey) (*Survey, error)
	LatestSurvey(ctx context.Context, userID string) (*Survey, error)
	SurveyForDay(ctx context.Context, userID string, day time.Time) (*Survey, error)
	AddSession(ctx context.Context, session SessionRecord) (*SessionRecord, error)
	ListSessions(ctx context.Context, userID string, from time.Time) ([]SessionRecord, error)
}

var (
	_ Store = (*Repo)(nil)
	_ Store = (*SQLiteRepo)(nil)
)

// endLookupSpan ends a survey lookup span. A missing survey is an expected
// answer and is not recorded as a span error.
func endLookupSpan(span trace.Span, err error) {
	if errors.Is(err, ErrSurveyNotFound) {
		span.End()
		return
	}
	tracing.EndSpanWithErrCheck(span, err)
}
