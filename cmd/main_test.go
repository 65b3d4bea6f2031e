package main

import (
	"context"
	"os"
	"testing"

	"github.com/okian/vista/internal/adapters/http/api"
	app "github.com/okian/vista/internal/app"
	"github.com/okian/vista/internal/config"
	"github.com/okian/vista/pkg/logger"
	"github.com/okian/vista/pkg/metrics"
	"github.com/smartystreets/goconvey/convey"
)

func TestMainFunction(t *testing.T) {
	_ = logger.Init()

	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("VISTA_ADDR", ":8080")
			_ = os.Setenv("VISTA_STORE_BACKEND", "memory")
			_ = os.Setenv("VISTA_RECENT_VOTES_LIMIT", "25")
			defer func() {
				_ = os.Unsetenv("VISTA_ADDR")
				_ = os.Unsetenv("VISTA_STORE_BACKEND")
				_ = os.Unsetenv("VISTA_RECENT_VOTES_LIMIT")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.StoreBackend, convey.ShouldEqual, config.BackendMemory)
				convey.So(cfg.RecentVotesLimit, convey.ShouldEqual, 25)
			})
		})

		convey.Convey("When testing store selection", func() {
			convey.Convey("Then the memory backend should build a store", func() {
				cfg := config.New()
				cfg.StoreBackend = config.BackendMemory
				store, err := newStore(context.Background(), cfg)
				convey.So(err, convey.ShouldBeNil)
				convey.So(store, convey.ShouldNotBeNil)
			})

			convey.Convey("And an unknown backend should fail", func() {
				cfg := config.New()
				cfg.StoreBackend = "cassandra"
				store, err := newStore(context.Background(), cfg)
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(store, convey.ShouldBeNil)
			})
		})

		convey.Convey("When testing service creation", func() {
			convey.Convey("Then service should be creatable with default options", func() {
				svc := app.New()
				convey.So(svc, convey.ShouldNotBeNil)
			})

			convey.Convey("And service should be creatable with custom options", func() {
				svc := app.New(
					app.WithRecentVotesLimit(5),
					app.WithSeedCatalog(nil),
				)
				convey.So(svc, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing HTTP server creation", func() {
			svc := app.New()
			convey.So(svc, convey.ShouldNotBeNil)

			convey.Convey("Then HTTP server should be creatable", func() {
				server := api.NewServer(svc, api.WithMaxRecentVotesLimit(50))
				convey.So(server, convey.ShouldNotBeNil)
				convey.So(server.Router(), convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing metrics initialization", func() {
			convey.Convey("Then metrics manager should be creatable", func() {
				manager := metrics.NewManager()
				convey.So(manager, convey.ShouldNotBeNil)
			})
		})
	})
}
