package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	api "github.com/okian/vista/internal/adapters/http/api"
	repository "github.com/okian/vista/internal/adapters/repository"
	service "github.com/okian/vista/internal/app"
	"github.com/okian/vista/internal/domain/matchup"
	"github.com/okian/vista/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

// mockDeps implements api.Dependencies with overridable function fields.
type mockDeps struct {
	parks       func(ctx context.Context) ([]model.Park, error)
	rankings    func(ctx context.Context) ([]model.RankedPark, error)
	matchupFn   func(ctx context.Context) (model.Park, model.Park, error)
	submitVote  func(ctx context.Context, winnerID, loserID string) (service.VoteOutcome, error)
	recentVotes func(ctx context.Context, limit int) ([]model.VoteWithNames, error)
	stats       func(ctx context.Context) (model.Stats, error)
}

func (m *mockDeps) Parks(ctx context.Context) ([]model.Park, error) { return m.parks(ctx) }
func (m *mockDeps) Rankings(ctx context.Context) ([]model.RankedPark, error) {
	return m.rankings(ctx)
}
func (m *mockDeps) Matchup(ctx context.Context) (model.Park, model.Park, error) {
	return m.matchupFn(ctx)
}
func (m *mockDeps) SubmitVote(ctx context.Context, winnerID, loserID string) (service.VoteOutcome, error) {
	return m.submitVote(ctx, winnerID, loserID)
}
func (m *mockDeps) RecentVotes(ctx context.Context, limit int) ([]model.VoteWithNames, error) {
	return m.recentVotes(ctx, limit)
}
func (m *mockDeps) Stats(ctx context.Context) (model.Stats, error) { return m.stats(ctx) }

func defaultMockDeps() *mockDeps {
	parks := []model.Park{
		{ID: "zion", Name: "Zion", Rating: 1516},
		{ID: "yosemite", Name: "Yosemite", Rating: 1484},
	}
	return &mockDeps{
		parks: func(context.Context) ([]model.Park, error) { return parks, nil },
		rankings: func(context.Context) ([]model.RankedPark, error) {
			return []model.RankedPark{
				{Park: parks[0], Rank: 1},
				{Park: parks[1], Rank: 2},
			}, nil
		},
		matchupFn: func(context.Context) (model.Park, model.Park, error) {
			return parks[0], parks[1], nil
		},
		submitVote: func(_ context.Context, winnerID, loserID string) (service.VoteOutcome, error) {
			return service.VoteOutcome{
				Vote:   model.Vote{ID: "v1", WinnerID: winnerID, LoserID: loserID, WinnerRatingChange: 16, LoserRatingChange: -16},
				Winner: parks[0],
				Loser:  parks[1],
			}, nil
		},
		recentVotes: func(_ context.Context, limit int) ([]model.VoteWithNames, error) {
			return []model.VoteWithNames{
				{Vote: model.Vote{ID: "v1"}, WinnerName: "Zion", LoserName: "Yosemite"},
			}, nil
		},
		stats: func(context.Context) (model.Stats, error) {
			return model.Stats{TotalVotes: 1, VotesToday: 1, ActiveParks: 2, TopRating: 1516}, nil
		},
	}
}

func doRequest(deps api.Dependencies, method, target, body string, opts ...api.ServerOption) *httptest.ResponseRecorder {
	server := api.NewServer(deps, opts...)
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)
	return rec
}

func TestParksRoutes(t *testing.T) {
	Convey("Given the API server", t, func() {
		deps := defaultMockDeps()

		Convey("When listing parks", func() {
			rec := doRequest(deps, http.MethodGet, "/api/parks", "")

			Convey("Then all parks are returned", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				var parks []model.Park
				So(json.Unmarshal(rec.Body.Bytes(), &parks), ShouldBeNil)
				So(len(parks), ShouldEqual, 2)
				So(parks[0].ID, ShouldEqual, "zion")
			})
		})

		Convey("When the catalog is empty", func() {
			deps.parks = func(context.Context) ([]model.Park, error) { return nil, nil }
			rec := doRequest(deps, http.MethodGet, "/api/parks", "")

			Convey("Then an empty JSON array is returned", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(strings.TrimSpace(rec.Body.String()), ShouldEqual, "[]")
			})
		})

		Convey("When fetching rankings", func() {
			rec := doRequest(deps, http.MethodGet, "/api/parks/rankings", "")

			Convey("Then parks come back ranked", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				var ranked []model.RankedPark
				So(json.Unmarshal(rec.Body.Bytes(), &ranked), ShouldBeNil)
				So(ranked[0].Rank, ShouldEqual, 1)
				So(ranked[0].ID, ShouldEqual, "zion")
			})
		})

		Convey("When the store fails", func() {
			deps.parks = func(context.Context) ([]model.Park, error) { return nil, errors.New("boom") }
			rec := doRequest(deps, http.MethodGet, "/api/parks", "")

			Convey("Then a 500 with an error body is returned", func() {
				So(rec.Code, ShouldEqual, http.StatusInternalServerError)
				So(rec.Body.String(), ShouldContainSubstring, "internal_error")
			})
		})
	})
}

func TestMatchupRoute(t *testing.T) {
	Convey("Given the API server", t, func() {
		deps := defaultMockDeps()

		Convey("When requesting a matchup", func() {
			rec := doRequest(deps, http.MethodGet, "/api/matchup", "")

			Convey("Then two parks are returned", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				var resp struct {
					Park1 model.Park `json:"park1"`
					Park2 model.Park `json:"park2"`
				}
				So(json.Unmarshal(rec.Body.Bytes(), &resp), ShouldBeNil)
				So(resp.Park1.ID, ShouldEqual, "zion")
				So(resp.Park2.ID, ShouldEqual, "yosemite")
			})
		})

		Convey("When there are not enough parks", func() {
			deps.matchupFn = func(context.Context) (model.Park, model.Park, error) {
				return model.Park{}, model.Park{}, matchup.ErrInsufficientParks
			}
			rec := doRequest(deps, http.MethodGet, "/api/matchup", "")

			Convey("Then a 404 no_matchup is returned", func() {
				So(rec.Code, ShouldEqual, http.StatusNotFound)
				So(rec.Body.String(), ShouldContainSubstring, "no_matchup")
			})
		})
	})
}

func TestVoteRoute(t *testing.T) {
	Convey("Given the API server", t, func() {
		deps := defaultMockDeps()

		Convey("When submitting a valid vote", func() {
			rec := doRequest(deps, http.MethodPost, "/api/vote", `{"winnerId":"zion","loserId":"yosemite"}`)

			Convey("Then the outcome is returned", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				var outcome service.VoteOutcome
				So(json.Unmarshal(rec.Body.Bytes(), &outcome), ShouldBeNil)
				So(outcome.Vote.WinnerID, ShouldEqual, "zion")
				So(outcome.Vote.WinnerRatingChange, ShouldEqual, 16)
			})
		})

		Convey("When the body is not JSON", func() {
			rec := doRequest(deps, http.MethodPost, "/api/vote", `not-json`)
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When a park votes against itself", func() {
			rec := doRequest(deps, http.MethodPost, "/api/vote", `{"winnerId":"zion","loserId":"zion"}`)
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
			So(rec.Body.String(), ShouldContainSubstring, "invalid_vote")
		})

		Convey("When an id is missing", func() {
			rec := doRequest(deps, http.MethodPost, "/api/vote", `{"winnerId":"zion"}`)
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When a park id is unknown", func() {
			deps.submitVote = func(context.Context, string, string) (service.VoteOutcome, error) {
				return service.VoteOutcome{}, repository.ErrParkNotFound
			}
			rec := doRequest(deps, http.MethodPost, "/api/vote", `{"winnerId":"atlantis","loserId":"zion"}`)

			Convey("Then a 404 not_found is returned", func() {
				So(rec.Code, ShouldEqual, http.StatusNotFound)
				So(rec.Body.String(), ShouldContainSubstring, "not_found")
			})
		})

		Convey("When the store fails", func() {
			deps.submitVote = func(context.Context, string, string) (service.VoteOutcome, error) {
				return service.VoteOutcome{}, errors.New("disk full")
			}
			rec := doRequest(deps, http.MethodPost, "/api/vote", `{"winnerId":"zion","loserId":"yosemite"}`)
			So(rec.Code, ShouldEqual, http.StatusInternalServerError)
		})
	})
}

func TestRecentVotesRoute(t *testing.T) {
	Convey("Given the API server", t, func() {
		deps := defaultMockDeps()

		Convey("When fetching without a limit", func() {
			var gotLimit = -1
			deps.recentVotes = func(_ context.Context, limit int) ([]model.VoteWithNames, error) {
				gotLimit = limit
				return nil, nil
			}
			rec := doRequest(deps, http.MethodGet, "/api/votes/recent", "")

			Convey("Then the service default applies and an empty array is returned", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(gotLimit, ShouldEqual, 0)
				So(strings.TrimSpace(rec.Body.String()), ShouldEqual, "[]")
			})
		})

		Convey("When fetching with a valid limit", func() {
			rec := doRequest(deps, http.MethodGet, "/api/votes/recent?limit=5", "")

			Convey("Then the feed is returned", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				var votes []model.VoteWithNames
				So(json.Unmarshal(rec.Body.Bytes(), &votes), ShouldBeNil)
				So(votes[0].WinnerName, ShouldEqual, "Zion")
			})
		})

		Convey("When the limit is not a number", func() {
			rec := doRequest(deps, http.MethodGet, "/api/votes/recent?limit=abc", "")
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the limit is zero", func() {
			rec := doRequest(deps, http.MethodGet, "/api/votes/recent?limit=0", "")
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When the limit exceeds the cap", func() {
			rec := doRequest(deps, http.MethodGet, "/api/votes/recent?limit=11", "", api.WithMaxRecentVotesLimit(10))
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
			So(rec.Body.String(), ShouldContainSubstring, "limit_exceeded")
		})
	})
}

func TestStatsAndHealthRoutes(t *testing.T) {
	Convey("Given the API server", t, func() {
		deps := defaultMockDeps()

		Convey("When fetching stats", func() {
			rec := doRequest(deps, http.MethodGet, "/api/stats", "")

			Convey("Then the aggregate counters are returned", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				var stats model.Stats
				So(json.Unmarshal(rec.Body.Bytes(), &stats), ShouldBeNil)
				So(stats.TotalVotes, ShouldEqual, 1)
				So(stats.ActiveParks, ShouldEqual, 2)
				So(stats.TopRating, ShouldEqual, 1516)
			})
		})

		Convey("When checking health", func() {
			rec := doRequest(deps, http.MethodGet, "/healthz", "")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, "ok")
		})

		Convey("When scraping metrics", func() {
			rec := doRequest(deps, http.MethodGet, "/metrics", "")
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, "vista_voting")
		})
	})
}
