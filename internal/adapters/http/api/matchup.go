package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/okian/vista/internal/domain/matchup"
	"github.com/okian/vista/internal/domain/model"
)

// MatchupDependencies defines the interface for matchup selection.
type MatchupDependencies interface {
	Matchup(ctx context.Context) (model.Park, model.Park, error)
}

// MatchupHandler handles matchup requests.
type MatchupHandler struct {
	deps MatchupDependencies
}

// NewMatchupHandler creates a new matchup handler.
func NewMatchupHandler(deps MatchupDependencies) *MatchupHandler {
	return &MatchupHandler{deps: deps}
}

// matchupResponse carries the two parks offered for a head-to-head vote.
type matchupResponse struct {
	Park1 model.Park `json:"park1"`
	Park2 model.Park `json:"park2"`
}

// HandleGetMatchup handles GET /api/matchup requests.
func (h *MatchupHandler) HandleGetMatchup(w http.ResponseWriter, r *http.Request) {
	first, second, err := h.deps.Matchup(r.Context())
	if err != nil {
		if errors.Is(err, matchup.ErrInsufficientParks) {
			writeError(w, http.StatusNotFound, "no_matchup", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, matchupResponse{Park1: first, Park2: second})
}
