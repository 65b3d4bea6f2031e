package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	repository "github.com/okian/vista/internal/adapters/repository"
	service "github.com/okian/vista/internal/app"
)

// VoteDependencies defines the interface for vote submission.
type VoteDependencies interface {
	SubmitVote(ctx context.Context, winnerID, loserID string) (service.VoteOutcome, error)
}

// VoteHandler handles vote submissions.
type VoteHandler struct {
	deps VoteDependencies
}

// NewVoteHandler creates a new vote handler.
func NewVoteHandler(deps VoteDependencies) *VoteHandler {
	return &VoteHandler{deps: deps}
}

// voteRequest mirrors the request body for POST /api/vote.
type voteRequest struct {
	WinnerID string `json:"winnerId"`
	LoserID  string `json:"loserId"`
}

func (v voteRequest) validate() error {
	switch {
	case strings.TrimSpace(v.WinnerID) == "":
		return errors.New("missing winnerId")
	case strings.TrimSpace(v.LoserID) == "":
		return errors.New("missing loserId")
	case v.WinnerID == v.LoserID:
		return errors.New("winnerId and loserId must differ")
	}
	return nil
}

// HandlePostVote handles POST /api/vote requests.
func (h *VoteHandler) HandlePostVote(w http.ResponseWriter, r *http.Request) {
	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_vote", err)
		return
	}

	outcome, err := h.deps.SubmitVote(r.Context(), req.WinnerID, req.LoserID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidVote):
			writeError(w, http.StatusBadRequest, "invalid_vote", err)
		case errors.Is(err, repository.ErrParkNotFound):
			writeError(w, http.StatusNotFound, "not_found", err)
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, outcome)
}
