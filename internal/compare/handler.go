package compare

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/hevystats/internal/telemetry/tracing"
	"github.com/2beens/hevystats/internal/workouts"
	"github.com/2beens/hevystats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=compare_test

type workoutsSource interface {
	List(ctx context.Context, params workouts.ListParams) ([]workouts.Workout, error)
	GetDetail(ctx context.Context, id string) (*workouts.Detail, error)
}

type Handler struct {
	source workoutsSource
}

func NewHandler(source workoutsSource) *Handler {
	return &Handler{
		source: source,
	}
}

type Comparison struct {
	Last         *workouts.Workout `json:"last"`
	Prev         *workouts.Workout `json:"prev"`
	LastVolumeKg float64           `json:"last_volume_kg"`
	PrevVolumeKg float64           `json:"prev_volume_kg"`
	Rows         []Row             `json:"rows"`
}

func NewComparison(last, prev *workouts.Detail) Comparison {
	c := Comparison{
		LastVolumeKg: pkg.RoundTo2(WorkoutVolume(last)),
		PrevVolumeKg: pkg.RoundTo2(WorkoutVolume(prev)),
		Rows:         Compare(last, prev),
	}
	if last != nil {
		c.Last = &last.Workout
	}
	if prev != nil {
		c.Prev = &prev.Workout
	}
	return c
}

// HandleCompare compares workouts last and prev. Without ids the two most
// recent non-ignored workouts (of typeId, when given) are used.
func (h *Handler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.compare.workouts")
	defer span.End()

	query := r.URL.Query()
	lastID, prevID := query.Get("last"), query.Get("prev")
	if (lastID == "") != (prevID == "") {
		http.Error(w, "last and prev must be given together", http.StatusBadRequest)
		return
	}

	if lastID == "" {
		typeID, err := workouts.ParseTypeID(query)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		limit := 2
		recent, err := h.source.List(ctx, workouts.ListParams{TypeID: typeID, Limit: &limit})
		if err != nil {
			log.Errorf("compare, list recent workouts: %s", err)
			http.Error(w, "failed to compare workouts", http.StatusInternalServerError)
			return
		}
		if len(recent) > 0 {
			lastID = recent[0].ID
		}
		if len(recent) > 1 {
			prevID = recent[1].ID
		}
	}

	last, ok := h.detail(ctx, w, lastID)
	if !ok {
		return
	}
	prev, ok := h.detail(ctx, w, prevID)
	if !ok {
		return
	}

	pkg.WriteJSON(w, NewComparison(last, prev), http.StatusOK)
}

// HandleRecentComparison compares the given workout (prev side) with the most
// recent other workout carrying the same title (last side).
func (h *Handler) HandleRecentComparison(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.compare.recent")
	defer span.End()

	id := mux.Vars(r)["id"]
	target, ok := h.detail(ctx, w, id)
	if !ok {
		return
	}

	all, err := h.source.List(ctx, workouts.ListParams{IncludeIgnored: true})
	if err != nil {
		log.Errorf("recent comparison, list workouts: %s", err)
		http.Error(w, "failed to compare workouts", http.StatusInternalServerError)
		return
	}

	targetTitle := NormalizeTitle(target.Title)
	var recentID string
	for _, wo := range all {
		if wo.ID != target.ID && NormalizeTitle(wo.Title) == targetTitle {
			recentID = wo.ID
			break
		}
	}

	recent, ok := h.detail(ctx, w, recentID)
	if !ok {
		return
	}

	comparison := NewComparison(recent, target)
	if recent == nil {
		// nothing to compare against
		comparison.Rows = []Row{}
	}
	pkg.WriteJSON(w, comparison, http.StatusOK)
}

// detail loads a workout detail, empty id yields nil. On failure the error
// response is written and ok is false.
func (h *Handler) detail(ctx context.Context, w http.ResponseWriter, id string) (*workouts.Detail, bool) {
	if id == "" {
		return nil, true
	}
	d, err := h.source.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, workouts.ErrWorkoutNotFound) {
			pkg.WriteMessage(w, "workout not found", http.StatusNotFound)
			return nil, false
		}
		log.Errorf("compare, get workout %s: %s", id, err)
		http.Error(w, "failed to compare workouts", http.StatusInternalServerError)
		return nil, false
	}
	return d, true
}
