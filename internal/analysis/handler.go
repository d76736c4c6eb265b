package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/hevystats/internal/cache"
	"github.com/2beens/hevystats/internal/telemetry/tracing"
	"github.com/2beens/hevystats/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=analysis_test

type analysisRepo interface {
	ListWorkoutMuscles(ctx context.Context, from, before time.Time) ([]WorkoutMuscle, error)
}

type Handler struct {
	repo          analysisRepo
	responseCache cache.Cache
	loc           *time.Location
}

func NewHandler(repo analysisRepo, responseCache cache.Cache, loc *time.Location) *Handler {
	if responseCache == nil {
		responseCache = cache.NopCache{}
	}
	return &Handler{
		repo:          repo,
		responseCache: responseCache,
		loc:           loc,
	}
}

type Radar struct {
	Current  map[string]int `json:"current"`
	Previous map[string]int `json:"previous"`
}

type Meta struct {
	WorkoutsCurrent  int `json:"workouts_current"`
	WorkoutsPrevious int `json:"workouts_previous"`
}

type Summary struct {
	From         string         `json:"from"`
	To           string         `json:"to"`
	PreviousFrom string         `json:"previous_from"`
	PreviousTo   string         `json:"previous_to"`
	MuscleCounts map[string]int `json:"muscle_counts"`
	Radar        Radar          `json:"radar"`
	Meta         Meta           `json:"meta"`
}

func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.analysis.summary")
	defer span.End()

	query := r.URL.Query()
	fromStr, toStr := query.Get("from"), query.Get("to")
	if fromStr == "" || toStr == "" {
		http.Error(w, "from and to are required", http.StatusBadRequest)
		return
	}
	from, err := pkg.ParseDate(fromStr, h.loc)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	to, err := pkg.ParseDate(toStr, h.loc)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if to.Before(from) {
		http.Error(w, "to must not be before from", http.StatusBadRequest)
		return
	}

	cacheKey := fmt.Sprintf("analysis::summary::%s::%s", fromStr, toStr)
	cached, gen, ok := h.responseCache.Get(ctx, cacheKey)
	if ok {
		pkg.WriteResponseBytes(w, pkg.ContentType.JSON, cached, http.StatusOK)
		return
	}

	summary, err := h.summary(ctx, from, to)
	if err != nil {
		log.Errorf("analysis summary %s..%s: %s", fromStr, toStr, err)
		http.Error(w, "failed to get analysis summary", http.StatusInternalServerError)
		return
	}

	resBytes, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("marshal analysis summary: %s", err)
		http.Error(w, "marshal error", http.StatusInternalServerError)
		return
	}
	h.responseCache.Set(ctx, cacheKey, gen, resBytes)

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resBytes, http.StatusOK)
}

func (h *Handler) summary(ctx context.Context, from, to time.Time) (Summary, error) {
	prevFrom, prevTo := PreviousRange(from, to)

	currentRows, err := h.repo.ListWorkoutMuscles(ctx, from, pkg.InclusiveEnd(to, true))
	if err != nil {
		return Summary{}, fmt.Errorf("current range: %w", err)
	}
	previousRows, err := h.repo.ListWorkoutMuscles(ctx, prevFrom, pkg.InclusiveEnd(prevTo, true))
	if err != nil {
		return Summary{}, fmt.Errorf("previous range: %w", err)
	}

	current := CountMuscles(currentRows)
	previous := CountMuscles(previousRows)

	return Summary{
		From:         from.Format(pkg.DateLayout),
		To:           to.Format(pkg.DateLayout),
		PreviousFrom: prevFrom.Format(pkg.DateLayout),
		PreviousTo:   prevTo.Format(pkg.DateLayout),
		MuscleCounts: current.MuscleCounts,
		Radar: Radar{
			Current:  current.Radar,
			Previous: previous.Radar,
		},
		Meta: Meta{
			WorkoutsCurrent:  current.WorkoutsCount,
			WorkoutsPrevious: previous.WorkoutsCount,
		},
	}, nil
}
