package readiness

import (
	"math"

	"github.com/2beens/gymready/internal/gymstats/recovery"
)

// Recommendation is the progression suggestion returned to the caller.
// It is computed fresh on every call and never persisted.
type Recommendation struct {
	SuggestedLoad   int                      `json:"suggested_load"`
	ReadinessIndex  float64                  `json:"readiness_index"`
	Reason          string                   `json:"reason"`
	RecoveryMetrics recovery.ResolvedMetrics `json:"recovery_metrics"`
	Source          string                   `json:"source,omitempty"`
}

// Input is the data snapshot a local recommendation is computed from.
// Survey is nil when no survey record exists at all.
type Input struct {
	CurrentLoad  float64
	Category     Category
	Survey       *recovery.Metrics
	RecentAvgRPE *float64
}

// Evaluate computes a recommendation from the fetched recovery data.
// A load history exists iff the current load is positive.
func Evaluate(in Input) Recommendation {
	load := math.Max(in.CurrentLoad, 0)
	hasHistory := load > 0

	metrics := recovery.NeutralMetrics()
	if in.Survey != nil {
		metrics = in.Survey.Resolved()
	}

	rec := Recommendation{
		ReadinessIndex:  Index(metrics),
		RecoveryMetrics: metrics,
	}

	if hasHistory && in.Survey == nil {
		rec.SuggestedLoad = applyPermille(load, permilleGood)
		rec.Reason = ReasonNoRecoveryData
		return rec
	}

	decision := AdjustLoad(PolicyInput{
		CurrentLoad:  load,
		Category:     in.Category,
		Readiness:    Score(metrics),
		Soreness:     metrics.Soreness,
		RecentAvgRPE: in.RecentAvgRPE,
		HasHistory:   hasHistory,
	})
	rec.SuggestedLoad = decision.SuggestedLoad
	rec.Reason = decision.Reason
	return rec
}

// Neutral is returned for requests that cannot be evaluated, e.g. without a user.
func Neutral(currentLoad float64, reason string) Recommendation {
	return Recommendation{
		SuggestedLoad:   RoundLoad(currentLoad),
		ReadinessIndex:  NeutralIndex,
		Reason:          reason,
		RecoveryMetrics: recovery.NeutralMetrics(),
	}
}
