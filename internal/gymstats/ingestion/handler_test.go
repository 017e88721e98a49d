package ingestion_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/2beens/gymready/internal/gymstats/ingestion"
	"github.com/2beens/gymready/internal/gymstats/recovery"
	"github.com/2beens/gymready/internal/gymstats/remote"
	"github.com/2beens/gymready/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_HandleSubmitSurvey(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := NewMockingester(ctrl)
	h := ingestion.NewHandler(mockService)

	body := `{"user_id": "u1", "metrics": {"sleep_quality": 8, "energy_level": 7, "overall_soreness": 4}}`
	req, err := http.NewRequest("POST", remote.PathSurvey, bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	mockService.EXPECT().
		SubmitSurvey(gomock.Any(), "u1", gomock.Any()).
		DoAndReturn(func(_ any, userID string, m *recovery.Metrics) (*remote.SurveyResponse, error) {
			require.NotNil(t, m)
			assert.Equal(t, 8, *m.SleepQuality)
			assert.Equal(t, 4, *m.OverallSoreness)
			assert.Nil(t, m.Motivation)
			return &remote.SurveyResponse{
				Success:               true,
				Survey:                &recovery.Survey{ID: 5, UserID: userID, Metrics: *m},
				ReadinessScore:        pkg.Float64Ptr(0.65),
				Recommendation:        pkg.StringPtr("recovered, train as planned"),
				AlreadySubmittedToday: true,
			}, nil
		})

	rr := httptest.NewRecorder()
	http.HandlerFunc(h.HandleSubmitSurvey).ServeHTTP(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, 0.65, resp["readiness_score"])
	assert.Equal(t, "recovered, train as planned", resp["recommendation"])
	assert.Equal(t, true, resp["already_submitted_today"])
	survey, ok := resp["survey"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 5.0, survey["id"])
	assert.Equal(t, 8.0, survey["sleep_quality"])
}

func TestHandler_HandleSubmitSurvey_Errors(t *testing.T) {
	testCases := []struct {
		name               string
		contentType        string
		body               string
		serviceErr         error
		expectServiceCall  bool
		expectedStatusCode int
	}{
		{
			name:               "WrongContentType",
			contentType:        "text/plain",
			body:               `{"user_id": "u1", "metrics": {}}`,
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "MalformedJson",
			contentType:        "application/json",
			body:               `{"user_id": `,
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "ValidationError",
			contentType:        "application/json",
			body:               `{"user_id": "u1", "metrics": null}`,
			serviceErr:         &ingestion.ValidationError{Field: "metrics", Reason: "must be an object"},
			expectServiceCall:  true,
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "BackendError",
			contentType:        "application/json; charset=utf-8",
			body:               `{"user_id": "u1", "metrics": {}}`,
			serviceErr:         &ingestion.BackendError{Op: "submit survey", Err: errors.New("all down")},
			expectServiceCall:  true,
			expectedStatusCode: http.StatusServiceUnavailable,
		},
		{
			name:               "UnexpectedError",
			contentType:        "application/json",
			body:               `{"user_id": "u1", "metrics": {}}`,
			serviceErr:         errors.New("unexpected"),
			expectServiceCall:  true,
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := NewMockingester(ctrl)
			h := ingestion.NewHandler(mockService)

			if tc.expectServiceCall {
				mockService.EXPECT().
					SubmitSurvey(gomock.Any(), "u1", gomock.Any()).
					Return(nil, tc.serviceErr)
			}

			req, err := http.NewRequest("POST", remote.PathSurvey, bytes.NewBufferString(tc.body))
			require.NoError(t, err)
			req.Header.Set("Content-Type", tc.contentType)

			rr := httptest.NewRecorder()
			http.HandlerFunc(h.HandleSubmitSurvey).ServeHTTP(rr, req)
			assert.Equal(t, tc.expectedStatusCode, rr.Code)
		})
	}
}

func TestHandler_HandleLogSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := NewMockingester(ctrl)
	h := ingestion.NewHandler(mockService)

	body := `{"user_id": "u1", "session_rpe": 7, "exercises": [{"sets": 3, "reps": 10, "weight": 50}, {"sets": 2}], "duration_minutes": 45}`
	req, err := http.NewRequest("POST", remote.PathSession, bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	mockService.EXPECT().
		LogSession(gomock.Any(), ingestion.LogSessionParams{
			UserID:     "u1",
			SessionRPE: 7,
			Exercises: []recovery.ExerciseEntry{
				{Sets: 3, Reps: 10, Weight: 50},
				{Sets: 2},
			},
			DurationMinutes: 45,
		}).
		Return(&remote.SessionResponse{
			Success: true,
			Session: &recovery.SessionRecord{
				ID:              1,
				UserID:          "u1",
				SessionRPE:      pkg.IntPtr(7),
				DurationMinutes: 45,
				TotalLoad:       1500,
				ExerciseCount:   2,
			},
		}, nil)

	rr := httptest.NewRecorder()
	http.HandlerFunc(h.HandleLogSession).ServeHTTP(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp remote.SessionResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Session)
	assert.Equal(t, 1500.0, resp.Session.TotalLoad)
}

func TestHandler_HandleLogSession_InvalidRPE(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := NewMockingester(ctrl)
	h := ingestion.NewHandler(mockService)

	mockService.EXPECT().
		LogSession(gomock.Any(), gomock.Any()).
		Return(nil, &ingestion.ValidationError{Field: "session_rpe", Reason: "must be between 1 and 10"})

	req, err := http.NewRequest("POST", remote.PathSession, bytes.NewBufferString(`{"user_id": "u1", "session_rpe": 11}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	http.HandlerFunc(h.HandleLogSession).ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid session_rpe")
}
