package ingestion

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/2beens/gymready/internal/gymstats/recovery"
	"github.com/2beens/gymready/internal/gymstats/remote"
	"github.com/2beens/gymready/internal/telemetry/tracing"
	"github.com/2beens/gymready/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=ingestion_test

type ingester interface {
	SubmitSurvey(ctx context.Context, userID string, surveyMetrics *recovery.Metrics) (*remote.SurveyResponse, error)
	LogSession(ctx context.Context, params LogSessionParams) (*remote.SessionResponse, error)
}

type Handler struct {
	service ingester
}

func NewHandler(service ingester) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) HandleSubmitSurvey(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ingestion.survey")
	defer span.End()

	if !isJSON(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req remote.SurveyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("submit survey, unmarshal json params: %s", err)
		http.Error(w, "submit survey failed", http.StatusBadRequest)
		return
	}

	resp, err := h.service.SubmitSurvey(ctx, req.UserID, req.Metrics)
	if err != nil {
		writeError(w, "submit survey", err)
		return
	}

	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal submitted survey: %s", err)
		http.Error(w, "error, failed to submit survey", http.StatusInternalServerError)
		return
	}

	log.Debugf("survey submitted for user [%s], already today: %t", req.UserID, resp.AlreadySubmittedToday)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (h *Handler) HandleLogSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ingestion.session")
	defer span.End()

	if !isJSON(r) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req remote.SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("log session, unmarshal json params: %s", err)
		http.Error(w, "log session failed", http.StatusBadRequest)
		return
	}

	resp, err := h.service.LogSession(ctx, LogSessionParams{
		UserID:          req.UserID,
		SessionRPE:      req.SessionRPE,
		Exercises:       req.Exercises,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		writeError(w, "log session", err)
		return
	}

	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal logged session: %s", err)
		http.Error(w, "error, failed to log session", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func isJSON(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), pkg.ContentType.JSON)
}

func writeError(w http.ResponseWriter, op string, err error) {
	var validationErr *ValidationError
	var backendErr *BackendError
	switch {
	case errors.As(err, &validationErr):
		http.Error(w, validationErr.Error(), http.StatusBadRequest)
	case errors.As(err, &backendErr):
		log.Errorf("%s: %s", op, err)
		http.Error(w, "error, "+op+" failed, try again later", http.StatusServiceUnavailable)
	default:
		log.Errorf("%s: %s", op, err)
		http.Error(w, "error, "+op+" failed", http.StatusInternalServerError)
	}
}
