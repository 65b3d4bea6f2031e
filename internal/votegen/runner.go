package votegen

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/vista/pkg/logger"
)

// Run executes the complete vote generation pass: health check, concurrent
// voting, then ranking and stats verification against the service.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{StartTime: time.Now()}

	logger.Get().Info(ctx, "starting vote generator",
		logger.String("baseURL", config.BaseURL),
		logger.Int("votes", config.NumVotes),
		logger.Int("workers", config.Workers),
		logger.Duration("timeout", config.Timeout),
	)

	client := newHTTPClient(config.Timeout)

	if err := checkServiceHealth(ctx, client, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	if err := castVotes(ctx, client, config, stats); err != nil {
		return fmt.Errorf("vote casting failed: %w", err)
	}

	if err := verifyRankings(ctx, client, config); err != nil {
		return fmt.Errorf("ranking verification failed: %w", err)
	}

	if err := verifyStats(ctx, client, config, stats); err != nil {
		return fmt.Errorf("stats verification failed: %w", err)
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(stats)

	logger.Get().Info(ctx, "vote generation completed successfully")
	return nil
}

func checkServiceHealth(ctx context.Context, client *httpClient, config *Config) error {
	status, err := client.get(ctx, config.BaseURL+"/healthz", nil)
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("service health check failed with status: %d", status)
	}
	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// castVotes fetches matchups and submits randomized outcomes with a pool of
// workers. Each worker keeps its own rand source.
func castVotes(ctx context.Context, client *httpClient, config *Config, stats *Stats) error {
	var (
		cast       int64
		successful int64
		rejected   int64
		failed     int64
	)

	jobs := make(chan struct{}, config.Workers*2)
	var wg sync.WaitGroup

	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(time.Now().UnixNano() + int64(workerID)))

			for range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}

				atomic.AddInt64(&cast, 1)
				switch castSingleVote(ctx, client, config, rng) {
				case http.StatusOK:
					atomic.AddInt64(&successful, 1)
				case http.StatusBadRequest, http.StatusNotFound:
					atomic.AddInt64(&rejected, 1)
				default:
					atomic.AddInt64(&failed, 1)
				}
			}
		}(i)
	}

	go func() {
		defer close(jobs)
		for i := 0; i < config.NumVotes; i++ {
			select {
			case <-ctx.Done():
				return
			case jobs <- struct{}{}:
			}
		}
	}()

	wg.Wait()

	stats.VotesCast = int(atomic.LoadInt64(&cast))
	stats.VotesSuccessful = int(atomic.LoadInt64(&successful))
	stats.VotesRejected = int(atomic.LoadInt64(&rejected))
	stats.VotesFailed = int(atomic.LoadInt64(&failed))

	logger.Get().Info(ctx, "vote casting completed",
		logger.Int("successful", stats.VotesSuccessful),
		logger.Int("rejected", stats.VotesRejected),
		logger.Int("failed", stats.VotesFailed),
	)
	return nil
}

// castSingleVote asks for a matchup and votes for a random side. Returns the
// HTTP status of the vote submission, or 0 on transport failure.
func castSingleVote(ctx context.Context, client *httpClient, config *Config, rng *rand.Rand) int {
	var m matchupResponse
	status, err := client.get(ctx, config.BaseURL+"/api/matchup", &m)
	if err != nil || status != http.StatusOK {
		return 0
	}

	winner, loser := m.Park1, m.Park2
	if rng.Intn(2) == 0 {
		winner, loser = loser, winner
	}

	status, err = client.post(ctx, config.BaseURL+"/api/vote", voteRequest{
		WinnerID: winner.ID,
		LoserID:  loser.ID,
	})
	if err != nil {
		return 0
	}
	return status
}

// verifyRankings fetches the rankings and checks they are ordered by
// descending rating with contiguous ranks.
func verifyRankings(ctx context.Context, client *httpClient, config *Config) error {
	var ranked []rankedPark
	status, err := client.get(ctx, config.BaseURL+"/api/parks/rankings", &ranked)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("rankings request failed with status: %d", status)
	}

	for i, entry := range ranked {
		if entry.Rank != i+1 {
			return fmt.Errorf("rank mismatch at position %d: got %d", i, entry.Rank)
		}
		if i > 0 && entry.Rating > ranked[i-1].Rating {
			return fmt.Errorf("rankings not sorted: %s (%d) above %s (%d)",
				ranked[i-1].ID, ranked[i-1].Rating, entry.ID, entry.Rating)
		}
	}

	top := config.TopN
	if top > len(ranked) {
		top = len(ranked)
	}
	for _, entry := range ranked[:top] {
		logger.Get().Info(ctx, "ranking entry",
			logger.Int("rank", entry.Rank),
			logger.String("park", entry.Name),
			logger.Int("rating", entry.Rating),
		)
	}
	return nil
}

// verifyStats checks that the service counted at least as many votes as this
// run successfully submitted.
func verifyStats(ctx context.Context, client *httpClient, config *Config, stats *Stats) error {
	var s statsResponse
	status, err := client.get(ctx, config.BaseURL+"/api/stats", &s)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("stats request failed with status: %d", status)
	}
	if s.TotalVotes < stats.VotesSuccessful {
		return fmt.Errorf("stats report %d votes, expected at least %d", s.TotalVotes, stats.VotesSuccessful)
	}

	logger.Get().Info(ctx, "service stats",
		logger.Int("totalVotes", s.TotalVotes),
		logger.Int("votesToday", s.VotesToday),
		logger.Int("activeParks", s.ActiveParks),
		logger.Int("topRating", s.TopRating),
	)
	return nil
}

func displayFinalStats(stats *Stats) {
	var votesPerSecond float64
	if stats.Duration > 0 {
		votesPerSecond = float64(stats.VotesCast) / stats.Duration.Seconds()
	}

	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("votesCast", stats.VotesCast),
		logger.Int("votesSuccessful", stats.VotesSuccessful),
		logger.Int("votesRejected", stats.VotesRejected),
		logger.Int("votesFailed", stats.VotesFailed),
		logger.Duration("duration", stats.Duration),
		logger.Any("votesPerSecond", votesPerSecond),
	)
}
