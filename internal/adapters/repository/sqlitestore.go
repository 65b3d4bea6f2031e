package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // cgo-free sqlite driver

	"github.com/okian/vista/internal/domain/model"
)

// sqliteTimeLayout stores timestamps as UTC RFC3339 with nanoseconds so that
// lexicographic comparison in SQL matches chronological order.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// migrations holds the schema statements, one per string (SQLite executes
// one statement at a time).
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS parks (
		id               TEXT PRIMARY KEY,
		name             TEXT NOT NULL,
		location         TEXT NOT NULL,
		description      TEXT NOT NULL,
		image_url        TEXT NOT NULL,
		emoji            TEXT NOT NULL DEFAULT '🏞️',
		date_established TEXT,
		area             TEXT,
		visitors         TEXT,
		rating           INTEGER NOT NULL DEFAULT 1500,
		total_votes      INTEGER NOT NULL DEFAULT 0,
		wins             INTEGER NOT NULL DEFAULT 0,
		losses           INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS votes (
		id                   TEXT PRIMARY KEY,
		winner_id            TEXT NOT NULL REFERENCES parks(id),
		loser_id             TEXT NOT NULL REFERENCES parks(id),
		winner_rating_change INTEGER NOT NULL,
		loser_rating_change  INTEGER NOT NULL,
		winner_rating_after  INTEGER NOT NULL,
		loser_rating_after   INTEGER NOT NULL,
		created_at           TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_votes_created ON votes(created_at DESC)`,
}

// SQLiteStore is the durable Store implementation backed by a SQLite file.
// A single connection serializes writes; ApplyVoteOutcome runs both park
// updates inside one transaction.
type SQLiteStore struct {
	db    *sql.DB
	now   func() time.Time
	newID func() string
}

// SQLiteOption applies a configuration option to the SQLiteStore.
type SQLiteOption func(*SQLiteStore)

// WithSQLiteClock sets the time source used for vote timestamps.
func WithSQLiteClock(now func() time.Time) SQLiteOption {
	return func(s *SQLiteStore) {
		if now != nil {
			s.now = now
		}
	}
}

// NewSQLiteStore opens (or creates) the database at path and applies the
// schema migrations.
func NewSQLiteStore(ctx context.Context, path string, opts ...SQLiteOption) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	// SQLite allows one writer; a single connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	for _, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate sqlite store: %w", err)
		}
	}

	s := &SQLiteStore{
		db:    db,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close sqlite store: %w", err)
	}
	return nil
}

const parkColumns = `id, name, location, description, image_url, emoji,
	COALESCE(date_established, ''), COALESCE(area, ''), COALESCE(visitors, ''),
	rating, total_votes, wins, losses`

func scanPark(row interface{ Scan(...any) error }) (model.Park, error) {
	var p model.Park
	err := row.Scan(&p.ID, &p.Name, &p.Location, &p.Description, &p.ImageURL, &p.Emoji,
		&p.DateEstablished, &p.Area, &p.Visitors,
		&p.Rating, &p.TotalVotes, &p.Wins, &p.Losses)
	return p, err
}

// ListParks returns all parks in insertion order.
func (s *SQLiteStore) ListParks(ctx context.Context) ([]model.Park, error) {
	// rowid preserves insertion order.
	rows, err := s.db.QueryContext(ctx, `SELECT `+parkColumns+` FROM parks ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("list parks: %w", err)
	}
	defer rows.Close()

	var parks []model.Park
	for rows.Next() {
		p, err := scanPark(rows)
		if err != nil {
			return nil, fmt.Errorf("scan park: %w", err)
		}
		parks = append(parks, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list parks: %w", err)
	}
	return parks, nil
}

// GetPark returns the park with the given id.
func (s *SQLiteStore) GetPark(ctx context.Context, id string) (model.Park, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+parkColumns+` FROM parks WHERE id = ?`, id)
	p, err := scanPark(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Park{}, ErrParkNotFound
	}
	if err != nil {
		return model.Park{}, fmt.Errorf("get park: %w", err)
	}
	return p, nil
}

// CreatePark inserts a new park, rejecting duplicate ids.
func (s *SQLiteStore) CreatePark(ctx context.Context, park model.Park) (model.Park, error) {
	if park.Rating == 0 {
		park.Rating = model.DefaultRating
	}
	if park.Emoji == "" {
		park.Emoji = model.DefaultEmoji
	}
	park.TotalVotes = 0
	park.Wins = 0
	park.Losses = 0

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO parks (id, name, location, description, image_url, emoji,
			date_established, area, visitors, rating, total_votes, wins, losses)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 0, 0, 0)`,
		park.ID, park.Name, park.Location, park.Description, park.ImageURL, park.Emoji,
		park.DateEstablished, park.Area, park.Visitors, park.Rating)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return model.Park{}, ErrDuplicateID
		}
		return model.Park{}, fmt.Errorf("create park: %w", err)
	}
	return park, nil
}

// ApplyVoteOutcome updates both parks inside one transaction.
func (s *SQLiteStore) ApplyVoteOutcome(ctx context.Context, winnerID, loserID string, winnerDelta, loserDelta int) (model.Park, model.Park, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Park{}, model.Park{}, fmt.Errorf("begin vote outcome: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	apply := func(id string, delta int, winCol string) (model.Park, error) {
		res, err := tx.ExecContext(ctx, `
			UPDATE parks SET rating = rating + ?, total_votes = total_votes + 1,
				`+winCol+` = `+winCol+` + 1
			WHERE id = ?`, delta, id)
		if err != nil {
			return model.Park{}, fmt.Errorf("update park: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return model.Park{}, fmt.Errorf("update park: %w", err)
		}
		if affected == 0 {
			return model.Park{}, ErrParkNotFound
		}
		row := tx.QueryRowContext(ctx, `SELECT `+parkColumns+` FROM parks WHERE id = ?`, id)
		return scanPark(row)
	}

	winner, err := apply(winnerID, winnerDelta, "wins")
	if err != nil {
		return model.Park{}, model.Park{}, err
	}
	loser, err := apply(loserID, loserDelta, "losses")
	if err != nil {
		return model.Park{}, model.Park{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.Park{}, model.Park{}, fmt.Errorf("commit vote outcome: %w", err)
	}
	return winner, loser, nil
}

// AppendVote stamps and stores the vote.
func (s *SQLiteStore) AppendVote(ctx context.Context, vote model.Vote) (model.Vote, error) {
	vote.ID = s.newID()
	vote.CreatedAt = s.now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO votes (id, winner_id, loser_id, winner_rating_change,
			loser_rating_change, winner_rating_after, loser_rating_after, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		vote.ID, vote.WinnerID, vote.LoserID, vote.WinnerRatingChange,
		vote.LoserRatingChange, vote.WinnerRatingAfter, vote.LoserRatingAfter,
		vote.CreatedAt.Format(sqliteTimeLayout))
	if err != nil {
		return model.Vote{}, fmt.Errorf("append vote: %w", err)
	}
	return vote, nil
}

// RecentVotes returns the limit most recent votes, newest first.
func (s *SQLiteStore) RecentVotes(ctx context.Context, limit int) ([]model.Vote, error) {
	if limit < 1 {
		return nil, ErrInvalidLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, winner_id, loser_id, winner_rating_change, loser_rating_change,
			winner_rating_after, loser_rating_after, created_at
		FROM votes ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent votes: %w", err)
	}
	defer rows.Close()

	var votes []model.Vote
	for rows.Next() {
		var v model.Vote
		var createdAt string
		if err := rows.Scan(&v.ID, &v.WinnerID, &v.LoserID, &v.WinnerRatingChange,
			&v.LoserRatingChange, &v.WinnerRatingAfter, &v.LoserRatingAfter, &createdAt); err != nil {
			return nil, fmt.Errorf("scan vote: %w", err)
		}
		v.CreatedAt, err = time.Parse(sqliteTimeLayout, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse vote timestamp: %w", err)
		}
		votes = append(votes, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("recent votes: %w", err)
	}
	return votes, nil
}

// CountVotes returns the total number of votes appended.
func (s *SQLiteStore) CountVotes(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM votes`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count votes: %w", err)
	}
	return count, nil
}

// CountVotesSince returns the number of votes created at or after t.
func (s *SQLiteStore) CountVotesSince(ctx context.Context, t time.Time) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM votes WHERE created_at >= ?`,
		t.UTC().Format(sqliteTimeLayout)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count votes since: %w", err)
	}
	return count, nil
}
