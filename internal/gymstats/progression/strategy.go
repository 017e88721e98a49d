package progression

import (
	"context"
	"errors"
	"math"

	"github.com/2beens/gymready/internal/gymstats/readiness"
	"github.com/2beens/gymready/internal/gymstats/recovery"
	"github.com/2beens/gymready/internal/gymstats/remote"
	"github.com/2beens/gymready/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=strategy_mocks_test.go -package=progression_test

const (
	SourceRemote  = "remote"
	SourceLocal   = "local"
	SourceNeutral = "neutral"
)

type SuggestionRequest struct {
	UserID      string
	CurrentLoad float64
	Category    readiness.Category
}

// ScoringStrategy produces a recommendation or reports why it could not.
type ScoringStrategy interface {
	Name() string
	Suggest(ctx context.Context, req SuggestionRequest) (readiness.Recommendation, error)
}

type remoteScorer interface {
	GetSuggestion(ctx context.Context, userID string, currentLoad float64, category string) (*remote.SuggestionResponse, error)
}

type snapshotSource interface {
	Snapshot(ctx context.Context, userID string) (*recovery.Snapshot, error)
}

// RemoteStrategy asks the remote scoring service and reshapes its answer,
// substituting defaults for missing fields.
type RemoteStrategy struct {
	client         remoteScorer
	metricsManager *metrics.Manager
}

func NewRemoteStrategy(client remoteScorer, metricsManager *metrics.Manager) *RemoteStrategy {
	return &RemoteStrategy{
		client:         client,
		metricsManager: metricsManager,
	}
}

func (s *RemoteStrategy) Name() string {
	return SourceRemote
}

func (s *RemoteStrategy) Suggest(ctx context.Context, req SuggestionRequest) (readiness.Recommendation, error) {
	resp, err := s.client.GetSuggestion(ctx, req.UserID, req.CurrentLoad, req.Category.String())
	if err != nil {
		if !errors.Is(err, remote.ErrRemoteDisabled) && s.metricsManager != nil {
			s.metricsManager.CounterRemoteFailures.WithLabelValues("suggestion").Inc()
		}
		return readiness.Recommendation{}, err
	}
	return reshape(resp, req.CurrentLoad), nil
}

func reshape(resp *remote.SuggestionResponse, currentLoad float64) readiness.Recommendation {
	rec := readiness.Recommendation{
		SuggestedLoad:   readiness.RoundLoad(currentLoad),
		ReadinessIndex:  readiness.NeutralIndex,
		Reason:          readiness.ReasonNormalRecovery,
		RecoveryMetrics: recovery.NeutralMetrics(),
	}
	if resp == nil {
		return rec
	}

	if resp.SuggestedLoad != nil && !math.IsNaN(*resp.SuggestedLoad) {
		rec.SuggestedLoad = readiness.RoundLoad(*resp.SuggestedLoad)
	}
	if resp.ReadinessIndex != nil && !math.IsNaN(*resp.ReadinessIndex) {
		rec.ReadinessIndex = math.Min(math.Max(*resp.ReadinessIndex, 0), 1)
	}
	if resp.Reason != nil && *resp.Reason != "" {
		rec.Reason = *resp.Reason
	}
	if m := resp.RecoveryMetrics; m != nil {
		rec.RecoveryMetrics = recovery.Metrics{
			SleepQuality:    m.Sleep,
			EnergyLevel:     m.Energy,
			OverallSoreness: m.Soreness,
			Motivation:      m.Motivation,
		}.Resolved()
	}
	return rec
}

// LocalStrategy computes the recommendation from the locally stored recovery data.
// It never fails: unreadable data is treated as no data.
type LocalStrategy struct {
	adapter snapshotSource
}

func NewLocalStrategy(adapter snapshotSource) *LocalStrategy {
	return &LocalStrategy{
		adapter: adapter,
	}
}

func (s *LocalStrategy) Name() string {
	return SourceLocal
}

func (s *LocalStrategy) Suggest(ctx context.Context, req SuggestionRequest) (readiness.Recommendation, error) {
	snapshot, err := s.adapter.Snapshot(ctx, req.UserID)
	if err != nil {
		log.Warnf("local suggestion for user [%s], recovery data unavailable: %s", req.UserID, err)
		snapshot = &recovery.Snapshot{}
	}

	in := readiness.Input{
		CurrentLoad:  req.CurrentLoad,
		Category:     req.Category,
		RecentAvgRPE: snapshot.RecentAvgRPE(),
	}
	if snapshot.Survey != nil {
		in.Survey = &snapshot.Survey.Metrics
	}

	return readiness.Evaluate(in), nil
}
