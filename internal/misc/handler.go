package misc

import (
	"context"
	"net/http"

	"github.com/2beens/hevystats/internal/telemetry/tracing"
	"github.com/2beens/hevystats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=misc_test

type miscRepo interface {
	Ping(ctx context.Context) error
	Smoke(ctx context.Context) (*Smoke, error)
}

// Handler serves the liveness endpoint polled by the desktop launcher, a smoke
// query over the synced data and the build version.
type Handler struct {
	repo        miscRepo
	versionInfo string
}

func NewHandler(repo miscRepo, versionInfo string) *Handler {
	return &Handler{
		repo:        repo,
		versionInfo: versionInfo,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.handleHealth).Methods(http.MethodGet).Name("health")
	r.HandleFunc("/api/smoke", h.handleSmoke).Methods(http.MethodGet).Name("smoke")
	r.HandleFunc("/api/version", h.handleVersion).Methods(http.MethodGet).Name("version")
}

// handleHealth is 200 only while postgres answers.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.misc.health")
	defer span.End()

	if err := h.repo.Ping(ctx); err != nil {
		log.Errorf("health check: %s", err)
		pkg.WriteMessage(w, "database unreachable", http.StatusServiceUnavailable)
		return
	}
	pkg.WriteJSON(w, pkg.MessageResponse{OK: true}, http.StatusOK)
}

func (h *Handler) handleSmoke(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.misc.smoke")
	defer span.End()

	smoke, err := h.repo.Smoke(ctx)
	if err != nil {
		log.Errorf("smoke: %s", err)
		http.Error(w, "smoke query failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, smoke, http.StatusOK)
}

func (h *Handler) handleVersion(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, h.versionInfo)
}
