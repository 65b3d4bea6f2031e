package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	repository "github.com/okian/vista/internal/adapters/repository"
	"github.com/okian/vista/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMemStore_Parks(t *testing.T) {
	ctx := context.Background()

	Convey("Given an empty store", t, func() {
		store := repository.NewMemStore()

		Convey("When creating a park without rating or emoji", func() {
			created, err := store.CreatePark(ctx, model.Park{ID: "acadia", Name: "Acadia"})

			Convey("Then defaults are applied and counters are zeroed", func() {
				So(err, ShouldBeNil)
				So(created.Rating, ShouldEqual, model.DefaultRating)
				So(created.Emoji, ShouldEqual, model.DefaultEmoji)
				So(created.TotalVotes, ShouldEqual, 0)
				So(created.Wins, ShouldEqual, 0)
				So(created.Losses, ShouldEqual, 0)
			})

			Convey("And creating the same id again is rejected", func() {
				_, err := store.CreatePark(ctx, model.Park{ID: "acadia", Name: "Acadia again"})
				So(err, ShouldEqual, repository.ErrDuplicateID)
			})
		})

		Convey("When looking up an unknown id", func() {
			_, err := store.GetPark(ctx, "nope")

			Convey("Then it reports not found", func() {
				So(err, ShouldEqual, repository.ErrParkNotFound)
			})
		})

		Convey("When creating several parks", func() {
			for _, id := range []string{"zion", "arches", "denali"} {
				_, err := store.CreatePark(ctx, model.Park{ID: id, Name: id})
				So(err, ShouldBeNil)
			}

			Convey("Then ListParks keeps insertion order", func() {
				parks, err := store.ListParks(ctx)
				So(err, ShouldBeNil)
				So(len(parks), ShouldEqual, 3)
				So(parks[0].ID, ShouldEqual, "zion")
				So(parks[1].ID, ShouldEqual, "arches")
				So(parks[2].ID, ShouldEqual, "denali")
			})

			Convey("And repeated reads yield identical results", func() {
				first, err := store.ListParks(ctx)
				So(err, ShouldBeNil)
				second, err := store.ListParks(ctx)
				So(err, ShouldBeNil)
				So(second, ShouldResemble, first)
			})
		})
	})
}

func TestMemStore_ApplyVoteOutcome(t *testing.T) {
	ctx := context.Background()

	Convey("Given a store with two parks", t, func() {
		store := repository.NewMemStore()
		_, err := store.CreatePark(ctx, model.Park{ID: "a"})
		So(err, ShouldBeNil)
		_, err = store.CreatePark(ctx, model.Park{ID: "b"})
		So(err, ShouldBeNil)

		Convey("When applying an outcome", func() {
			winner, loser, err := store.ApplyVoteOutcome(ctx, "a", "b", 16, -16)

			Convey("Then ratings and counters move together", func() {
				So(err, ShouldBeNil)
				So(winner.Rating, ShouldEqual, 1516)
				So(winner.Wins, ShouldEqual, 1)
				So(winner.TotalVotes, ShouldEqual, 1)
				So(loser.Rating, ShouldEqual, 1484)
				So(loser.Losses, ShouldEqual, 1)
				So(loser.TotalVotes, ShouldEqual, 1)
			})
		})

		Convey("When the loser id is unknown", func() {
			_, _, err := store.ApplyVoteOutcome(ctx, "a", "missing", 16, -16)

			Convey("Then nothing is updated", func() {
				So(err, ShouldEqual, repository.ErrParkNotFound)
				park, err := store.GetPark(ctx, "a")
				So(err, ShouldBeNil)
				So(park.Rating, ShouldEqual, model.DefaultRating)
				So(park.TotalVotes, ShouldEqual, 0)
			})
		})

		Convey("When many outcomes race on the same pair", func() {
			var wg sync.WaitGroup
			for i := 0; i < 100; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					_, _, _ = store.ApplyVoteOutcome(ctx, "a", "b", 1, -1)
				}()
			}
			wg.Wait()

			Convey("Then no update is lost", func() {
				winner, err := store.GetPark(ctx, "a")
				So(err, ShouldBeNil)
				loser, err := store.GetPark(ctx, "b")
				So(err, ShouldBeNil)
				So(winner.Rating, ShouldEqual, model.DefaultRating+100)
				So(winner.Wins, ShouldEqual, 100)
				So(winner.TotalVotes, ShouldEqual, winner.Wins+winner.Losses)
				So(loser.Rating, ShouldEqual, model.DefaultRating-100)
				So(loser.Losses, ShouldEqual, 100)
				So(loser.TotalVotes, ShouldEqual, loser.Wins+loser.Losses)
			})
		})
	})
}

func TestMemStore_Votes(t *testing.T) {
	ctx := context.Background()

	Convey("Given a store with a deterministic clock", t, func() {
		base := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
		tick := 0
		store := repository.NewMemStore(repository.WithClock(func() time.Time {
			tick++
			return base.Add(time.Duration(tick) * time.Minute)
		}))

		Convey("When appending votes", func() {
			first, err := store.AppendVote(ctx, model.Vote{WinnerID: "a", LoserID: "b"})
			So(err, ShouldBeNil)
			second, err := store.AppendVote(ctx, model.Vote{WinnerID: "b", LoserID: "a"})
			So(err, ShouldBeNil)

			Convey("Then each vote gets a unique id and a later timestamp", func() {
				So(first.ID, ShouldNotBeEmpty)
				So(second.ID, ShouldNotBeEmpty)
				So(first.ID, ShouldNotEqual, second.ID)
				So(second.CreatedAt.After(first.CreatedAt), ShouldBeTrue)
			})

			Convey("And the count grows by one per append", func() {
				count, err := store.CountVotes(ctx)
				So(err, ShouldBeNil)
				So(count, ShouldEqual, 2)

				_, err = store.AppendVote(ctx, model.Vote{WinnerID: "a", LoserID: "b"})
				So(err, ShouldBeNil)
				count, err = store.CountVotes(ctx)
				So(err, ShouldBeNil)
				So(count, ShouldEqual, 3)
			})

			Convey("And RecentVotes returns newest first", func() {
				recent, err := store.RecentVotes(ctx, 10)
				So(err, ShouldBeNil)
				So(len(recent), ShouldEqual, 2)
				So(recent[0].ID, ShouldEqual, second.ID)
				So(recent[1].ID, ShouldEqual, first.ID)
			})

			Convey("And RecentVotes honors the limit", func() {
				recent, err := store.RecentVotes(ctx, 1)
				So(err, ShouldBeNil)
				So(len(recent), ShouldEqual, 1)
				So(recent[0].ID, ShouldEqual, second.ID)
			})

			Convey("And a non-positive limit is rejected", func() {
				_, err := store.RecentVotes(ctx, 0)
				So(err, ShouldEqual, repository.ErrInvalidLimit)
			})

			Convey("And CountVotesSince windows on the timestamp", func() {
				count, err := store.CountVotesSince(ctx, second.CreatedAt)
				So(err, ShouldBeNil)
				So(count, ShouldEqual, 1)

				count, err = store.CountVotesSince(ctx, base)
				So(err, ShouldBeNil)
				So(count, ShouldEqual, 2)

				count, err = store.CountVotesSince(ctx, base.Add(time.Hour))
				So(err, ShouldBeNil)
				So(count, ShouldEqual, 0)
			})
		})
	})
}
