package service_test

import (
	"context"
	"path/filepath"
	"testing"

	repository "github.com/okian/vista/internal/adapters/repository"
	service "github.com/okian/vista/internal/app"
	"github.com/okian/vista/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestService_SQLiteBackend(t *testing.T) {
	ctx := context.Background()

	Convey("Given a service backed by sqlite", t, func() {
		path := filepath.Join(t.TempDir(), "vista.db")
		store, err := repository.NewSQLiteStore(ctx, path)
		So(err, ShouldBeNil)

		svc := newTestService(t,
			service.WithStore(store),
			service.WithSeedCatalog(testCatalog()),
		)

		Convey("When running the full voting flow", func() {
			outcome, err := svc.SubmitVote(ctx, "zion", "yosemite")
			So(err, ShouldBeNil)
			So(outcome.Winner.Rating, ShouldEqual, 1516)

			ranked, err := svc.Rankings(ctx)
			So(err, ShouldBeNil)
			So(ranked[0].ID, ShouldEqual, "zion")

			votes, err := svc.RecentVotes(ctx, 5)
			So(err, ShouldBeNil)
			So(len(votes), ShouldEqual, 1)
			So(votes[0].WinnerName, ShouldEqual, "Zion")

			stats, err := svc.Stats(ctx)
			So(err, ShouldBeNil)
			So(stats.TotalVotes, ShouldEqual, 1)
			So(stats.ActiveParks, ShouldEqual, 3)
		})

		Convey("When restarting on the same database file", func() {
			_, err := svc.SubmitVote(ctx, "acadia", "zion")
			So(err, ShouldBeNil)
			svc.Stop()

			reopened, err := repository.NewSQLiteStore(ctx, path)
			So(err, ShouldBeNil)

			again := newTestService(t,
				service.WithStore(reopened),
				service.WithSeedCatalog(testCatalog()),
			)

			Convey("Then ratings and history survive and seeding does not reset them", func() {
				park, err := reopened.GetPark(ctx, "acadia")
				So(err, ShouldBeNil)
				So(park.Rating, ShouldEqual, 1516)
				So(park.Wins, ShouldEqual, 1)

				stats, err := again.Stats(ctx)
				So(err, ShouldBeNil)
				So(stats.TotalVotes, ShouldEqual, 1)
				So(stats.TopRating, ShouldEqual, 1516)

				zion, err := reopened.GetPark(ctx, "zion")
				So(err, ShouldBeNil)
				So(zion.Rating, ShouldEqual, 1484)

				yosemite, err := reopened.GetPark(ctx, "yosemite")
				So(err, ShouldBeNil)
				So(yosemite.Rating, ShouldEqual, model.DefaultRating)
			})
		})
	})
}
