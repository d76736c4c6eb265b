package records

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/hevystats/internal/cache"
	"github.com/2beens/hevystats/internal/telemetry/tracing"
	"github.com/2beens/hevystats/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=records_test

type recordsRepo interface {
	ListWeightedSets(ctx context.Context, from, before *time.Time) ([]SetRow, error)
}

type syncer interface {
	EnsureSynced(ctx context.Context) error
}

type Handler struct {
	repo          recordsRepo
	syncer        syncer
	responseCache cache.Cache
	loc           *time.Location
}

func NewHandler(repo recordsRepo, syncer syncer, responseCache cache.Cache, loc *time.Location) *Handler {
	if responseCache == nil {
		responseCache = cache.NopCache{}
	}
	return &Handler{
		repo:          repo,
		syncer:        syncer,
		responseCache: responseCache,
		loc:           loc,
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.list")
	defer span.End()

	query := r.URL.Query()
	metric, err := ParseMetric(query.Get("metric"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var reps *int
	if repsStr := query.Get("reps"); repsStr != "" {
		n, err := strconv.Atoi(repsStr)
		if err != nil || n <= 0 {
			http.Error(w, fmt.Sprintf("invalid reps: %q", repsStr), http.StatusBadRequest)
			return
		}
		reps = &n
	}

	var from, before *time.Time
	yearStr := query.Get("year")
	if yearStr != "" {
		year, err := pkg.ParseYear(yearStr)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f, b := pkg.YearRange(year, h.loc)
		from, before = &f, &b
	}

	if err := h.syncer.EnsureSynced(ctx); err != nil {
		log.Errorf("records, ensure synced: %s", err)
	}

	repsKey := ""
	if reps != nil {
		repsKey = strconv.Itoa(*reps)
	}
	cacheKey := fmt.Sprintf("records::%s::%s::%s", yearStr, metric, repsKey)
	cached, gen, ok := h.responseCache.Get(ctx, cacheKey)
	if ok {
		pkg.WriteResponseBytes(w, pkg.ContentType.JSON, cached, http.StatusOK)
		return
	}

	rows, err := h.repo.ListWeightedSets(ctx, from, before)
	if err != nil {
		log.Errorf("records, list sets: %s", err)
		http.Error(w, "failed to get records", http.StatusInternalServerError)
		return
	}

	resBytes, err := json.Marshal(Compute(rows, metric, reps))
	if err != nil {
		log.Errorf("marshal records: %s", err)
		http.Error(w, "marshal error", http.StatusInternalServerError)
		return
	}
	h.responseCache.Set(ctx, cacheKey, gen, resBytes)

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resBytes, http.StatusOK)
}
