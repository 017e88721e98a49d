package progression

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/2beens/gymready/internal/gymstats/readiness"
	"github.com/2beens/gymready/internal/telemetry/tracing"
	"github.com/2beens/gymready/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=progression_test

type suggester interface {
	GetSuggestion(ctx context.Context, userID string, currentLoad float64, category readiness.Category) readiness.Recommendation
}

type Handler struct {
	engine suggester
}

func NewHandler(engine suggester) *Handler {
	return &Handler{
		engine: engine,
	}
}

// HandleGetSuggestion serves GET /gymstats/progression/suggestion?user_id=&current_load=&category=
// A missing current_load means there is no load history.
func (h *Handler) HandleGetSuggestion(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progression.suggestion")
	defer span.End()

	query := r.URL.Query()

	category, err := readiness.ParseCategory(query.Get("category"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var currentLoad float64
	if currentLoadParam := query.Get("current_load"); currentLoadParam != "" {
		currentLoad, err = strconv.ParseFloat(currentLoadParam, 64)
		if err != nil {
			log.Tracef("get suggestion, parse current load [%s]: %s", currentLoadParam, err)
			http.Error(w, "invalid current_load", http.StatusBadRequest)
			return
		}
	}

	rec := h.engine.GetSuggestion(ctx, query.Get("user_id"), currentLoad, category)

	recJson, err := json.Marshal(rec)
	if err != nil {
		log.Errorf("failed to marshal suggestion: %s", err)
		http.Error(w, "error, failed to get suggestion", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, recJson)
}
