package api

import (
	"context"
	"net/http"

	"github.com/okian/vista/internal/domain/model"
)

// ParksDependencies defines the interface for park catalog reads.
type ParksDependencies interface {
	Parks(ctx context.Context) ([]model.Park, error)
	Rankings(ctx context.Context) ([]model.RankedPark, error)
}

// ParksHandler handles park catalog and ranking requests.
type ParksHandler struct {
	deps ParksDependencies
}

// NewParksHandler creates a new parks handler.
func NewParksHandler(deps ParksDependencies) *ParksHandler {
	return &ParksHandler{deps: deps}
}

// HandleListParks handles GET /api/parks requests.
func (h *ParksHandler) HandleListParks(w http.ResponseWriter, r *http.Request) {
	parks, err := h.deps.Parks(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	if parks == nil {
		parks = []model.Park{}
	}
	writeJSON(w, http.StatusOK, parks)
}

// HandleRankings handles GET /api/parks/rankings requests.
func (h *ParksHandler) HandleRankings(w http.ResponseWriter, r *http.Request) {
	ranked, err := h.deps.Rankings(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	if ranked == nil {
		ranked = []model.RankedPark{}
	}
	writeJSON(w, http.StatusOK, ranked)
}
