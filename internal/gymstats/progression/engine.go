package progression

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/2beens/gymready/internal/gymstats/readiness"
	"github.com/2beens/gymready/internal/gymstats/remote"
	"github.com/2beens/gymready/internal/telemetry/metrics"
	"github.com/2beens/gymready/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// Engine runs the scoring strategies in the given order and returns the first result.
// Strategy errors are never surfaced to the caller.
type Engine struct {
	strategies     []ScoringStrategy
	metricsManager *metrics.Manager
}

func NewEngine(metricsManager *metrics.Manager, strategies ...ScoringStrategy) *Engine {
	return &Engine{
		strategies:     strategies,
		metricsManager: metricsManager,
	}
}

func (e *Engine) GetSuggestion(
	ctx context.Context,
	userID string,
	currentLoad float64,
	category readiness.Category,
) readiness.Recommendation {
	ctx, span := tracing.GlobalTracer.Start(ctx, "engine.progression.suggestion")
	defer span.End()

	load := sanitizeLoad(currentLoad)
	span.SetAttributes(
		attribute.String("user_id", userID),
		attribute.Float64("current_load", load),
		attribute.String("category", category.String()),
	)

	if strings.TrimSpace(userID) == "" {
		span.SetAttributes(attribute.String("source", SourceNeutral))
		rec := readiness.Neutral(load, readiness.ReasonInvalidUser)
		e.observe(rec, SourceNeutral)
		return rec
	}

	req := SuggestionRequest{
		UserID:      userID,
		CurrentLoad: load,
		Category:    category,
	}
	for _, strategy := range e.strategies {
		rec, err := strategy.Suggest(ctx, req)
		if err != nil {
			if errors.Is(err, remote.ErrRemoteDisabled) {
				log.Tracef("suggestion strategy [%s] disabled", strategy.Name())
			} else {
				log.Warnf("suggestion strategy [%s] failed for user [%s]: %s", strategy.Name(), userID, err)
				span.RecordError(err)
			}
			continue
		}

		rec.Source = strategy.Name()
		span.SetAttributes(attribute.String("source", rec.Source))
		e.observe(rec, rec.Source)
		return rec
	}

	log.Errorf("no suggestion strategy succeeded for user [%s], returning neutral", userID)
	span.SetAttributes(attribute.String("source", SourceNeutral))
	rec := readiness.Neutral(load, readiness.ReasonNormalRecovery)
	e.observe(rec, SourceNeutral)
	return rec
}

func (e *Engine) observe(rec readiness.Recommendation, source string) {
	if e.metricsManager == nil {
		return
	}
	e.metricsManager.CounterSuggestions.WithLabelValues(source).Inc()
	e.metricsManager.HistogramReadinessIndex.WithLabelValues(source).Observe(rec.ReadinessIndex)
}

func sanitizeLoad(load float64) float64 {
	if math.IsNaN(load) || math.IsInf(load, 0) || load < 0 {
		return 0
	}
	return load
}
