// Package readiness turns DOMS survey answers into a readiness index and
// decides the next session load from it.
package readiness

import "github.com/2beens/gymready/internal/gymstats/recovery"

// NeutralIndex is the readiness index of a user with no recovery data.
const NeutralIndex = 0.5

// Score returns the readiness score R on the 0-10 scale.
// Soreness counts inversely, absent metrics default to 5.
func Score(m recovery.ResolvedMetrics) float64 {
	return float64(m.Sleep+m.Energy+(10-m.Soreness)+m.Motivation) / 4
}

// Index is the readiness score normalized to [0,1].
func Index(m recovery.ResolvedMetrics) float64 {
	return clamp(Score(m)/10, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Advice is the short training hint returned with an ingested survey.
func Advice(index float64) string {
	switch {
	case index >= 0.8:
		return "well recovered, ready for a hard session"
	case index >= 0.6:
		return "recovered, train as planned"
	case index >= 0.4:
		return "partially recovered, keep the session moderate"
	default:
		return "poorly recovered, consider a light session or rest"
	}
}
