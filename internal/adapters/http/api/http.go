// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	service "github.com/okian/vista/internal/app"
	"github.com/okian/vista/internal/domain/model"
)

const requestTimeout = 30 * time.Second

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	Parks(ctx context.Context) ([]model.Park, error)
	Rankings(ctx context.Context) ([]model.RankedPark, error)
	Matchup(ctx context.Context) (model.Park, model.Park, error)
	SubmitVote(ctx context.Context, winnerID, loserID string) (service.VoteOutcome, error)
	RecentVotes(ctx context.Context, limit int) ([]model.VoteWithNames, error)
	Stats(ctx context.Context) (model.Stats, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	parksHandler   *ParksHandler
	matchupHandler *MatchupHandler
	voteHandler    *VoteHandler
	votesHandler   *RecentVotesHandler
	statsHandler   *StatsHandler
	healthHandler  *HealthHandler

	maxRecentLimit int
}

// ServerOption applies a configuration option to the Server.
type ServerOption func(*Server)

// WithMaxRecentVotesLimit caps GET /api/votes/recent?limit.
func WithMaxRecentVotesLimit(limit int) ServerOption {
	return func(s *Server) {
		if limit > 0 {
			s.maxRecentLimit = limit
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, opts ...ServerOption) *Server {
	s := &Server{maxRecentLimit: 100}
	for _, opt := range opts {
		opt(s)
	}

	s.parksHandler = NewParksHandler(deps)
	s.matchupHandler = NewMatchupHandler(deps)
	s.voteHandler = NewVoteHandler(deps)
	s.votesHandler = NewRecentVotesHandler(deps, s.maxRecentLimit)
	s.statsHandler = NewStatsHandler(deps)
	s.healthHandler = NewHealthHandler()

	return s
}

// Router builds the chi router with all routes and middleware attached.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Route("/api", func(r chi.Router) {
		r.Get("/parks", MetricsMiddleware(s.parksHandler.HandleListParks, "parks"))
		r.Get("/parks/rankings", MetricsMiddleware(s.parksHandler.HandleRankings, "rankings"))
		r.Get("/matchup", MetricsMiddleware(s.matchupHandler.HandleGetMatchup, "matchup"))
		r.Post("/vote", MetricsMiddleware(s.voteHandler.HandlePostVote, "vote"))
		r.Get("/votes/recent", MetricsMiddleware(s.votesHandler.HandleRecentVotes, "votes_recent"))
		r.Get("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	})

	r.Get("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	r.Get("/metrics", s.healthHandler.HandleMetrics)

	return r
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
