package recovery

import (
	"errors"
	"time"
)

// DefaultMetricValue is substituted for every absent recovery metric.
const DefaultMetricValue = 5

var ErrSurveyNotFound = errors.New("recovery survey not found")

// Metrics are the four subjective DOMS survey answers, each intended in 0-10.
// A nil field means the answer was not given.
type Metrics struct {
	SleepQuality    *int `json:"sleep_quality"`
	EnergyLevel     *int `json:"energy_level"`
	OverallSoreness *int `json:"overall_soreness"`
	Motivation      *int `json:"motivation"`
}

// Resolved returns the metrics with defaults substituted for absent values.
func (m Metrics) Resolved() ResolvedMetrics {
	return ResolvedMetrics{
		Sleep:      valueOrDefault(m.SleepQuality),
		Energy:     valueOrDefault(m.EnergyLevel),
		Soreness:   valueOrDefault(m.OverallSoreness),
		Motivation: valueOrDefault(m.Motivation),
	}
}

func valueOrDefault(v *int) int {
	if v == nil {
		return DefaultMetricValue
	}
	return *v
}

// ResolvedMetrics is the recovery metrics snapshot returned with every recommendation.
type ResolvedMetrics struct {
	Sleep      int `json:"sleep"`
	Energy     int `json:"energy"`
	Soreness   int `json:"soreness"`
	Motivation int `json:"motivation"`
}

func NeutralMetrics() ResolvedMetrics {
	return Metrics{}.Resolved()
}

// Survey is a daily recovery survey. Append-only.
type Survey struct {
	ID         int       `json:"id"`
	UserID     string    `json:"user_id"`
	SurveyDate time.Time `json:"survey_date"`
	Metrics
	CreatedAt time.Time `json:"created_at"`
}

// SessionRecord is the perceived exertion log of one completed workout. Immutable.
type SessionRecord struct {
	ID              int       `json:"id"`
	UserID          string    `json:"user_id"`
	SessionRPE      *int      `json:"session_rpe"`
	DurationMinutes int       `json:"duration_minutes"`
	TotalLoad       float64   `json:"total_load"`
	ExerciseCount   int       `json:"exercise_count"`
	CreatedAt       time.Time `json:"created_at"`
}

// ExerciseEntry is one exercise of a logged session; missing fields decode as 0.
type ExerciseEntry struct {
	Sets   int     `json:"sets"`
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

// TotalLoad sums sets*reps*weight over all exercises.
func TotalLoad(exercises []ExerciseEntry) float64 {
	var total float64
	for _, ex := range exercises {
		total += float64(ex.Sets) * float64(ex.Reps) * ex.Weight
	}
	return total
}

// AvgRPE returns the mean of the non-null session RPE values, or nil if there are none.
func AvgRPE(sessions []SessionRecord) *float64 {
	var sum, count int
	for _, s := range sessions {
		if s.SessionRPE == nil {
			continue
		}
		sum += *s.SessionRPE
		count++
	}
	if count == 0 {
		return nil
	}
	avg := float64(sum) / float64(count)
	return &avg
}
