package exercises

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/hevystats/internal/cache"
	"github.com/2beens/hevystats/internal/telemetry/tracing"
	"github.com/2beens/hevystats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=exercises_test

const unnamedExercise = "Unnamed"

type exercisesRepo interface {
	List(ctx context.Context) ([]Exercise, error)
	UpdateTags(ctx context.Context, id int, params UpdateParams) (*Exercise, error)
	TitleByTemplate(ctx context.Context, templateID string) (string, error)
	ListProgressSets(ctx context.Context, templateID string, from, before time.Time) ([]ProgressSet, error)
}

type Handler struct {
	repo          exercisesRepo
	responseCache cache.Cache
	loc           *time.Location
}

func NewHandler(repo exercisesRepo, responseCache cache.Cache, loc *time.Location) *Handler {
	if responseCache == nil {
		responseCache = cache.NopCache{}
	}
	return &Handler{
		repo:          repo,
		responseCache: responseCache,
		loc:           loc,
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	list, err := h.repo.List(ctx)
	if err != nil {
		log.Errorf("list exercises: %s", err)
		http.Error(w, "failed to get exercises", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, list, http.StatusOK)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.update")
	defer span.End()

	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "invalid exercise id", http.StatusBadRequest)
		return
	}

	var params UpdateParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := h.repo.UpdateTags(ctx, id, params)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			pkg.WriteMessage(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("update exercise %d: %s", id, err)
		http.Error(w, "failed to update exercise", http.StatusInternalServerError)
		return
	}

	// muscle tags feed the analysis responses
	h.responseCache.Invalidate(ctx)

	pkg.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.progress")
	defer span.End()

	templateID := mux.Vars(r)["template_id"]
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

	sets, err := h.repo.ListProgressSets(ctx, templateID, from, pkg.InclusiveEnd(to, true))
	if err != nil {
		log.Errorf("exercise progress %s: %s", templateID, err)
		http.Error(w, "failed to get exercise progress", http.StatusInternalServerError)
		return
	}

	title, err := h.repo.TitleByTemplate(ctx, templateID)
	if err != nil {
		log.Errorf("exercise progress %s, title: %s", templateID, err)
		http.Error(w, "failed to get exercise progress", http.StatusInternalServerError)
		return
	}
	if title == "" {
		title = firstSetTitle(sets)
	}

	summary, series := BuildProgress(sets)
	pkg.WriteJSON(w, Progress{
		ExerciseTemplateID: templateID,
		ExerciseTitle:      title,
		From:               fromStr,
		To:                 toStr,
		Summary:            summary,
		Series:             series,
	}, http.StatusOK)
}

func firstSetTitle(sets []ProgressSet) string {
	for _, s := range sets {
		if s.ExerciseTitle != "" {
			return s.ExerciseTitle
		}
	}
	return unnamedExercise
}
