package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/okian/vista/internal/domain/model"
)

// RecentVotesDependencies defines the interface for vote history reads.
type RecentVotesDependencies interface {
	RecentVotes(ctx context.Context, limit int) ([]model.VoteWithNames, error)
}

// RecentVotesHandler handles recent vote feed requests.
type RecentVotesHandler struct {
	deps     RecentVotesDependencies
	maxLimit int
}

// NewRecentVotesHandler creates a new recent votes handler.
func NewRecentVotesHandler(deps RecentVotesDependencies, maxLimit int) *RecentVotesHandler {
	return &RecentVotesHandler{
		deps:     deps,
		maxLimit: maxLimit,
	}
}

// HandleRecentVotes handles GET /api/votes/recent?limit=N requests.
// The limit parameter is optional; when present it must be a positive
// integer no larger than the configured cap.
func (h *RecentVotesHandler) HandleRecentVotes(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		if n > h.maxLimit {
			writeError(w, http.StatusBadRequest, "limit_exceeded", ErrBadRequest)
			return
		}
		limit = n
	}

	votes, err := h.deps.RecentVotes(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	if votes == nil {
		votes = []model.VoteWithNames{}
	}
	writeJSON(w, http.StatusOK, votes)
}
