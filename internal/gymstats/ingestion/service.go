package ingestion

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/2beens/gymready/internal/gymstats/events"
	"github.com/2beens/gymready/internal/gymstats/readiness"
	"github.com/2beens/gymready/internal/gymstats/recovery"
	"github.com/2beens/gymready/internal/gymstats/remote"
	"github.com/2beens/gymready/internal/telemetry/metrics"
	"github.com/2beens/gymready/internal/telemetry/tracing"
	"github.com/2beens/gymready/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=ingestion_test

const (
	MinSessionRPE = 1
	MaxSessionRPE = 10
)

type remoteWriter interface {
	SubmitSurvey(ctx context.Context, req remote.SurveyRequest) (*remote.SurveyResponse, error)
	LogSession(ctx context.Context, req remote.SessionRequest) (*remote.SessionResponse, error)
}

type localStore interface {
	AddSurvey(ctx context.Context, survey recovery.Survey) (*recovery.Survey, error)
	SurveyForDay(ctx context.Context, userID string, day time.Time) (*recovery.Survey, error)
	AddSession(ctx context.Context, session recovery.SessionRecord) (*recovery.SessionRecord, error)
}

type eventEmitter interface {
	Emit(ctx context.Context, event events.Event)
}

type LogSessionParams struct {
	UserID          string
	SessionRPE      int
	Exercises       []recovery.ExerciseEntry
	DurationMinutes int
}

// Service acknowledges survey and session writes: remote service first, local store as fallback.
// A write fails only when both are unavailable.
type Service struct {
	remote         remoteWriter
	store          localStore
	emitter        eventEmitter
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewService(
	remoteClient remoteWriter,
	store localStore,
	emitter eventEmitter,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		remote:         remoteClient,
		store:          store,
		emitter:        emitter,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

func (s *Service) SubmitSurvey(ctx context.Context, userID string, surveyMetrics *recovery.Metrics) (_ *remote.SurveyResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.ingestion.survey")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user_id", userID))

	if strings.TrimSpace(userID) == "" {
		return nil, &ValidationError{Field: "user_id", Reason: "must not be empty"}
	}
	if surveyMetrics == nil {
		return nil, &ValidationError{Field: "metrics", Reason: "must be an object"}
	}

	resp, remoteErr := s.remote.SubmitSurvey(ctx, remote.SurveyRequest{
		UserID:  userID,
		Metrics: surveyMetrics,
	})
	if remoteErr == nil {
		span.SetAttributes(attribute.String("source", sourceRemote))
		s.acknowledged("survey", sourceRemote)
		s.emit(ctx, events.NewSurveySubmittedEvent(*resp.Survey, sourceRemote, resp.AlreadySubmittedToday))
		return resp, nil
	}
	s.remoteFailed("survey", userID, remoteErr)

	now := s.now().UTC()
	today := pkg.Day(now)

	// Read-then-insert is not atomic: two concurrent submissions can both see no survey
	// for today and both get stored. Duplicates are flagged, not prevented.
	alreadySubmittedToday := false
	if _, err := s.store.SurveyForDay(ctx, userID, today); err == nil {
		alreadySubmittedToday = true
	} else if !errors.Is(err, recovery.ErrSurveyNotFound) {
		log.Warnf("submit survey, check today's survey for user [%s]: %s", userID, err)
	}

	survey, localErr := s.store.AddSurvey(ctx, recovery.Survey{
		UserID:     userID,
		SurveyDate: today,
		Metrics:    *surveyMetrics,
		CreatedAt:  now,
	})
	if localErr != nil {
		return nil, &BackendError{
			Op:  "submit survey",
			Err: multierr.Combine(remoteErr, localErr),
		}
	}

	span.SetAttributes(
		attribute.String("source", sourceLocal),
		attribute.Bool("already_submitted_today", alreadySubmittedToday),
	)
	s.acknowledged("survey", sourceLocal)
	s.emit(ctx, events.NewSurveySubmittedEvent(*survey, sourceLocal, alreadySubmittedToday))

	index := readiness.Index(surveyMetrics.Resolved())
	advice := readiness.Advice(index)
	return &remote.SurveyResponse{
		Success:               true,
		Survey:                survey,
		ReadinessScore:        &index,
		Recommendation:        &advice,
		AlreadySubmittedToday: alreadySubmittedToday,
	}, nil
}

func (s *Service) LogSession(ctx context.Context, params LogSessionParams) (_ *remote.SessionResponse, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.ingestion.session")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user_id", params.UserID),
		attribute.Int("session_rpe", params.SessionRPE),
	)

	if strings.TrimSpace(params.UserID) == "" {
		return nil, &ValidationError{Field: "user_id", Reason: "must not be empty"}
	}
	if params.SessionRPE < MinSessionRPE || params.SessionRPE > MaxSessionRPE {
		return nil, &ValidationError{Field: "session_rpe", Reason: "must be between 1 and 10"}
	}

	resp, remoteErr := s.remote.LogSession(ctx, remote.SessionRequest{
		UserID:          params.UserID,
		SessionRPE:      params.SessionRPE,
		Exercises:       params.Exercises,
		DurationMinutes: params.DurationMinutes,
	})
	if remoteErr == nil {
		span.SetAttributes(attribute.String("source", sourceRemote))
		s.acknowledged("session", sourceRemote)
		s.emit(ctx, events.NewSessionLoggedEvent(*resp.Session, sourceRemote))
		return resp, nil
	}
	s.remoteFailed("session", params.UserID, remoteErr)

	rpe := params.SessionRPE
	session, localErr := s.store.AddSession(ctx, recovery.SessionRecord{
		UserID:          params.UserID,
		SessionRPE:      &rpe,
		DurationMinutes: params.DurationMinutes,
		TotalLoad:       recovery.TotalLoad(params.Exercises),
		ExerciseCount:   len(params.Exercises),
		CreatedAt:       s.now().UTC(),
	})
	if localErr != nil {
		return nil, &BackendError{
			Op:  "log session",
			Err: multierr.Combine(remoteErr, localErr),
		}
	}

	span.SetAttributes(attribute.String("source", sourceLocal))
	s.acknowledged("session", sourceLocal)
	s.emit(ctx, events.NewSessionLoggedEvent(*session, sourceLocal))

	return &remote.SessionResponse{
		Success: true,
		Session: session,
	}, nil
}

const (
	sourceRemote = "remote"
	sourceLocal  = "local"
)

func (s *Service) remoteFailed(operation, userID string, err error) {
	if errors.Is(err, remote.ErrRemoteDisabled) {
		return
	}
	log.Warnf("remote %s for user [%s] failed, falling back to local store: %s", operation, userID, err)
	if s.metricsManager != nil {
		s.metricsManager.CounterRemoteFailures.WithLabelValues(operation).Inc()
	}
}

func (s *Service) acknowledged(kind, source string) {
	if s.metricsManager != nil {
		s.metricsManager.CounterIngestedRecords.WithLabelValues(kind, source).Inc()
	}
}

func (s *Service) emit(ctx context.Context, event events.Event) {
	if s.emitter != nil {
		s.emitter.Emit(ctx, event)
	}
}
