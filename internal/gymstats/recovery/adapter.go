package recovery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymready/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

const DefaultSessionsWindow = 7 * 24 * time.Hour

// Snapshot is the latest recovery data available for a user.
// Survey is nil when the user never submitted one.
type Snapshot struct {
	Survey   *Survey
	Sessions []SessionRecord
}

// RecentAvgRPE is the mean RPE of the snapshot sessions, nil if unknown.
func (s *Snapshot) RecentAvgRPE() *float64 {
	return AvgRPE(s.Sessions)
}

type snapshotStore interface {
	LatestSurvey(ctx context.Context, userID string) (*Survey, error)
	ListSessions(ctx context.Context, userID string, from time.Time) ([]SessionRecord, error)
}

// Adapter reads the recovery data the local progression chain needs.
type Adapter struct {
	store  snapshotStore
	window time.Duration
	now    func() time.Time
}

func NewAdapter(store snapshotStore, window time.Duration) *Adapter {
	if window <= 0 {
		window = DefaultSessionsWindow
	}
	return &Adapter{
		store:  store,
		window: window,
		now:    time.Now,
	}
}

func (a *Adapter) Snapshot(ctx context.Context, userID string) (_ *Snapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "adapter.recovery.snapshot")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	snapshot := &Snapshot{}

	survey, err := a.store.LatestSurvey(ctx, userID)
	switch {
	case errors.Is(err, ErrSurveyNotFound):
		span.SetAttributes(attribute.Bool("survey.found", false))
	case err != nil:
		return nil, fmt.Errorf("latest survey: %w", err)
	default:
		span.SetAttributes(attribute.Bool("survey.found", true))
		snapshot.Survey = survey
	}

	from := a.now().Add(-a.window)
	snapshot.Sessions, err = a.store.ListSessions(ctx, userID, from)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	span.SetAttributes(attribute.Int("sessions.count", len(snapshot.Sessions)))

	return snapshot, nil
}
