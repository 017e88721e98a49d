package events

import (
	"fmt"
	"strconv"
	"time"

	"github.com/2beens/gymready/internal/gymstats/recovery"
)

// Event is emitted after a survey or a session log has been acknowledged.
type Event struct {
	ID        int               `json:"id"`
	Type      EventType         `json:"type"`
	UserID    string            `json:"user_id"`
	Timestamp time.Time         `json:"timestamp"`
	Data      map[string]string `json:"data"`
}

// EventType can be one of:
//   - survey_submitted
//   - session_logged
type EventType string

const (
	EventTypeSurveySubmitted EventType = "survey_submitted"
	EventTypeSessionLogged   EventType = "session_logged"
)

func (et EventType) String() string {
	return string(et)
}

func (et EventType) IsValid() bool {
	switch et {
	case EventTypeSurveySubmitted, EventTypeSessionLogged:
		return true
	default:
		return false
	}
}

// NewSurveySubmittedEvent describes an acknowledged survey; source tells which backend stored it.
func NewSurveySubmittedEvent(survey recovery.Survey, source string, alreadySubmittedToday bool) Event {
	resolved := survey.Resolved()
	return Event{
		Type:      EventTypeSurveySubmitted,
		UserID:    survey.UserID,
		Timestamp: survey.CreatedAt,
		Data: map[string]string{
			"source":                  source,
			"survey_date":             survey.SurveyDate.Format(time.DateOnly),
			"sleep":                   strconv.Itoa(resolved.Sleep),
			"energy":                  strconv.Itoa(resolved.Energy),
			"soreness":                strconv.Itoa(resolved.Soreness),
			"motivation":              strconv.Itoa(resolved.Motivation),
			"already_submitted_today": strconv.FormatBool(alreadySubmittedToday),
		},
	}
}

func NewSessionLoggedEvent(session recovery.SessionRecord, source string) Event {
	data := map[string]string{
		"source":           source,
		"duration_minutes": strconv.Itoa(session.DurationMinutes),
		"total_load":       fmt.Sprintf("%.2f", session.TotalLoad),
		"exercise_count":   strconv.Itoa(session.ExerciseCount),
	}
	if session.SessionRPE != nil {
		data["session_rpe"] = strconv.Itoa(*session.SessionRPE)
	}
	return Event{
		Type:      EventTypeSessionLogged,
		UserID:    session.UserID,
		Timestamp: session.CreatedAt,
		Data:      data,
	}
}
