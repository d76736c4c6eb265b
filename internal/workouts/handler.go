package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/hevystats/internal/cache"
	"github.com/2beens/hevystats/internal/telemetry/tracing"
	"github.com/2beens/hevystats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=workouts_test

type workoutsRepo interface {
	List(ctx context.Context, params ListParams) ([]Workout, error)
	GetDetail(ctx context.Context, id string) (*Detail, error)
	ToggleIgnored(ctx context.Context, id string) (bool, error)
	ListTypes(ctx context.Context) ([]Type, error)
	CreateType(ctx context.Context, name string) (*Type, error)
	AssignType(ctx context.Context, workoutID string, typeID *int) error
}

type syncer interface {
	EnsureSynced(ctx context.Context) error
}

type Handler struct {
	repo          workoutsRepo
	syncer        syncer
	responseCache cache.Cache
	loc           *time.Location
}

func NewHandler(
	repo workoutsRepo,
	syncer syncer,
	responseCache cache.Cache,
	loc *time.Location,
) *Handler {
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

type toggleIgnoredResponse struct {
	OK        bool   `json:"ok"`
	WorkoutID string `json:"workout_id"`
	Ignored   bool   `json:"ignored"`
}

type assignTypeRequest struct {
	WorkoutID string `json:"workout_id"`
	TypeID    *int   `json:"type_id"`
}

type createTypeRequest struct {
	Name string `json:"name"`
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	params, err := ParseListParams(r.URL.Query(), h.loc)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// local data is served even when the upstream is unreachable
	if err := h.syncer.EnsureSynced(ctx); err != nil {
		log.Errorf("list workouts, ensure synced: %s", err)
	}

	workoutsList, err := h.repo.List(ctx, params)
	if err != nil {
		log.Errorf("list workouts: %s", err)
		http.Error(w, "failed to get workouts", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, workoutsList, http.StatusOK)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	id := mux.Vars(r)["id"]
	detail, err := h.repo.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			pkg.WriteMessage(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("get workout %s: %s", id, err)
		http.Error(w, "failed to get workout", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, detail, http.StatusOK)
}

func (h *Handler) HandleToggleIgnored(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.toggle_ignored")
	defer span.End()

	id := mux.Vars(r)["id"]
	ignored, err := h.repo.ToggleIgnored(ctx, id)
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			pkg.WriteMessage(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("toggle ignored %s: %s", id, err)
		http.Error(w, "failed to toggle ignored", http.StatusInternalServerError)
		return
	}
	h.responseCache.Invalidate(ctx)

	log.Debugf("workout %s ignored: %t", id, ignored)
	pkg.WriteJSON(w, toggleIgnoredResponse{OK: true, WorkoutID: id, Ignored: ignored}, http.StatusOK)
}

func (h *Handler) HandleListTypes(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list_types")
	defer span.End()

	types, err := h.repo.ListTypes(ctx)
	if err != nil {
		log.Errorf("list workout types: %s", err)
		http.Error(w, "failed to get workout types", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, types, http.StatusOK)
}

func (h *Handler) HandleCreateType(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.create_type")
	defer span.End()

	var req createTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("create workout type, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > 64 {
		http.Error(w, "name must be 1-64 characters", http.StatusBadRequest)
		return
	}

	created, err := h.repo.CreateType(ctx, name)
	if err != nil {
		if errors.Is(err, ErrTypeExists) {
			pkg.WriteMessage(w, "workout type already exists", http.StatusConflict)
			return
		}
		log.Errorf("create workout type %s: %s", name, err)
		http.Error(w, "failed to create workout type", http.StatusInternalServerError)
		return
	}
	h.responseCache.Invalidate(ctx)

	pkg.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) HandleAssignType(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.assign_type")
	defer span.End()

	var req assignTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("assign workout type, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.WorkoutID == "" {
		http.Error(w, "workout_id is required", http.StatusBadRequest)
		return
	}

	if err := h.repo.AssignType(ctx, req.WorkoutID, req.TypeID); err != nil {
		switch {
		case errors.Is(err, ErrWorkoutNotFound):
			pkg.WriteMessage(w, "workout not found", http.StatusNotFound)
		case errors.Is(err, ErrTypeNotFound):
			pkg.WriteMessage(w, "workout type not found", http.StatusBadRequest)
		default:
			log.Errorf("assign workout type %s: %s", req.WorkoutID, err)
			http.Error(w, "failed to assign workout type", http.StatusInternalServerError)
		}
		return
	}
	h.responseCache.Invalidate(ctx)

	pkg.WriteJSON(w, pkg.MessageResponse{OK: true}, http.StatusOK)
}
