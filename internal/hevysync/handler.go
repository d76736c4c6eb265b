package hevysync

import (
	"errors"
	"net/http"

	"github.com/2beens/hevystats/internal/hevy"
	"github.com/2beens/hevystats/internal/telemetry/tracing"
	"github.com/2beens/hevystats/pkg"

	log "github.com/sirupsen/logrus"
)

type Handler struct {
	syncer syncer
}

func NewHandler(syncer syncer) *Handler {
	return &Handler{
		syncer: syncer,
	}
}

type syncResponse struct {
	OK bool `json:"ok"`
	*Result
}

// HandleSync triggers a sync. With force=true the cooldown is ignored.
func (h *Handler) HandleSync(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.sync.run")
	defer span.End()

	force := r.URL.Query().Get("force") == "true"
	res, err := h.syncer.Sync(ctx, force)
	if err != nil {
		log.Errorf("sync (force=%t): %s", force, err)

		var apiErr *hevy.APIError
		switch {
		case errors.Is(err, hevy.ErrNoAPIKey):
			pkg.WriteMessage(w, "HEVY_API_KEY not set", http.StatusBadRequest)
		case errors.Is(err, ErrSyncInProgress):
			pkg.WriteMessage(w, "sync already in progress", http.StatusConflict)
		case errors.As(err, &apiErr):
			pkg.WriteMessage(w, "hevy api error", http.StatusBadGateway)
		default:
			pkg.WriteMessage(w, "sync failed", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSON(w, syncResponse{OK: true, Result: res}, http.StatusOK)
}
