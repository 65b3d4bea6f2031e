package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/okian/vista/internal/votegen"
	"github.com/okian/vista/pkg/logger"
)

// Default configuration constants.
const (
	defaultNumVotes   = 1000
	defaultTopN       = 10
	defaultWorkers    = 2 // multiplier for runtime.NumCPU()
	defaultTimeout    = 10 * time.Second
	defaultRunTimeout = 10 * time.Minute
)

func main() {
	var (
		baseURL  = flag.String("url", "http://localhost:8080", "Base URL of the service")
		numVotes = flag.Int("votes", defaultNumVotes, "Number of votes to cast")
		topN     = flag.Int("top", defaultTopN, "Number of top rankings to display")
		workers  = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		timeout  = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		verbose  = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	if *verbose {
		_ = logger.SetLevelString("debug")
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	config := &votegen.Config{
		BaseURL:  *baseURL,
		NumVotes: *numVotes,
		Workers:  *workers,
		TopN:     *topN,
		Timeout:  *timeout,
		Verbose:  *verbose,
	}

	if err := votegen.Run(ctx, config); err != nil {
		os.Stderr.WriteString("vote generation failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
