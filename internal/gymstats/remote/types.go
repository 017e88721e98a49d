package remote

import "github.com/2beens/gymready/internal/gymstats/recovery"

// Paths of the three scoring operations, shared by the HTTP handlers and the client.
const (
	PathSuggestion = "/gymstats/progression/suggestion"
	PathSurvey     = "/gymstats/recovery/survey"
	PathSession    = "/gymstats/recovery/session"
)

// SuggestionResponse is the remote recommendation as received on the wire.
// Every field may be missing; the caller substitutes defaults.
type SuggestionResponse struct {
	SuggestedLoad   *float64         `json:"suggested_load"`
	ReadinessIndex  *float64         `json:"readiness_index"`
	Reason          *string          `json:"reason"`
	RecoveryMetrics *RecoveryMetrics `json:"recovery_metrics"`
}

type RecoveryMetrics struct {
	Sleep      *int `json:"sleep"`
	Energy     *int `json:"energy"`
	Soreness   *int `json:"soreness"`
	Motivation *int `json:"motivation"`
}

type SurveyRequest struct {
	UserID  string            `json:"user_id"`
	Metrics *recovery.Metrics `json:"metrics"`
}

type SurveyResponse struct {
	Success               bool             `json:"success"`
	Survey                *recovery.Survey `json:"survey"`
	ReadinessScore        *float64         `json:"readiness_score,omitempty"`
	Recommendation        *string          `json:"recommendation,omitempty"`
	AlreadySubmittedToday bool             `json:"already_submitted_today"`
}

type SessionRequest struct {
	UserID          string                   `json:"user_id"`
	SessionRPE      int                      `json:"session_rpe"`
	Exercises       []recovery.ExerciseEntry `json:"exercises"`
	DurationMinutes int                      `json:"duration_minutes"`
}

type SessionResponse struct {
	Success bool                    `json:"success"`
	Session *recovery.SessionRecord `json:"session"`
}
