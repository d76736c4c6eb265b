package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/hevystats/internal/cache"
	"github.com/2beens/hevystats/internal/records"
	"github.com/2beens/hevystats/internal/telemetry/tracing"
	"github.com/2beens/hevystats/internal/workouts"
	"github.com/2beens/hevystats/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=dashboard_test

type workoutsSource interface {
	List(ctx context.Context, params workouts.ListParams) ([]workouts.Workout, error)
}

type setsRepo interface {
	ListSets(ctx context.Context, from, before time.Time) ([]SetRow, error)
}

type recordsSource interface {
	ListWeightedSets(ctx context.Context, from, before *time.Time) ([]records.SetRow, error)
}

type syncer interface {
	EnsureSynced(ctx context.Context) error
}

type Handler struct {
	workouts      workoutsSource
	sets          setsRepo
	records       recordsSource
	syncer        syncer
	responseCache cache.Cache
	loc           *time.Location
}

type HandlerParams struct {
	Workouts      workoutsSource
	Sets          setsRepo
	Records       recordsSource
	Syncer        syncer
	ResponseCache cache.Cache
	Location      *time.Location
}

func NewHandler(params HandlerParams) *Handler {
	responseCache := params.ResponseCache
	if responseCache == nil {
		responseCache = cache.NopCache{}
	}
	loc := params.Location
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		workouts:      params.Workouts,
		sets:          params.Sets,
		records:       params.Records,
		syncer:        params.Syncer,
		responseCache: responseCache,
		loc:           loc,
	}
}

func SummaryCacheKey(year int) string {
	return fmt.Sprintf("dashboard::summary::%d", year)
}

func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.summary")
	defer span.End()

	yearStr := r.URL.Query().Get("year")
	if yearStr == "" {
		http.Error(w, "year is required", http.StatusBadRequest)
		return
	}
	year, err := pkg.ParseYear(yearStr)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("year", year))

	if err := h.syncer.EnsureSynced(ctx); err != nil {
		log.Errorf("dashboard, ensure synced: %s", err)
	}

	cacheKey := SummaryCacheKey(year)
	cached, gen, ok := h.responseCache.Get(ctx, cacheKey)
	if ok {
		pkg.WriteResponseBytes(w, pkg.ContentType.JSON, cached, http.StatusOK)
		return
	}

	summary, err := h.summary(ctx, year)
	if err != nil {
		log.Errorf("dashboard summary %d: %s", year, err)
		http.Error(w, "failed to get dashboard summary", http.StatusInternalServerError)
		return
	}

	resBytes, err := json.Marshal(summary)
	if err != nil {
		log.Errorf("marshal dashboard summary: %s", err)
		http.Error(w, "marshal error", http.StatusInternalServerError)
		return
	}
	h.responseCache.Set(ctx, cacheKey, gen, resBytes)

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resBytes, http.StatusOK)
}

func (h *Handler) summary(ctx context.Context, year int) (Summary, error) {
	from, before := pkg.YearRange(year, h.loc)

	yearWorkouts, err := h.workouts.List(ctx, workouts.ListParams{From: &from, Before: &before})
	if err != nil {
		return Summary{}, fmt.Errorf("list workouts: %w", err)
	}

	sets, err := h.sets.ListSets(ctx, from, before)
	if err != nil {
		return Summary{}, fmt.Errorf("list sets: %w", err)
	}

	// a PR belongs to the year when the all-time best was set in it
	allTime, err := h.records.ListWeightedSets(ctx, nil, nil)
	if err != nil {
		return Summary{}, fmt.Errorf("list weighted sets: %w", err)
	}
	prCount := records.CountSetIn(records.Compute(allTime, records.MetricMaxWeight, nil), from, before)

	return Summarize(year, h.loc, yearWorkouts, sets, prCount), nil
}
