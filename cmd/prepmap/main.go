package main

import (
	"context"
	"log/slog"
	"os"

	"prepmap/config"
	"prepmap/internal/delivery"
	"prepmap/internal/delivery/http"
	"prepmap/internal/delivery/http/middleware"
	"prepmap/internal/delivery/http/router/handler"
	"prepmap/internal/domain/service"
	"prepmap/internal/infra/auth"
	"prepmap/internal/infra/cache"
	"prepmap/internal/infra/geometry"
	logs "prepmap/internal/infra/log"
	"prepmap/internal/infra/metrics"
	"prepmap/internal/infra/persistence/postgres"
	"prepmap/internal/infra/qrcode"
	"prepmap/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			preloadGeometry,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.New,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				postgres.NewFacilityRepository,
				fx.ResultTags(`name:"facilityStore"`),
			),
			cache.New,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			qrcode.NewFromConfig,
			geometry.New,
			func(l *geometry.Loader) service.MapSource { return l },
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMapService,
			impl.NewFacilityService,
			impl.NewSeedService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewMapHandler,
			handler.NewFacilityHandler,
			handler.NewSessionHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// preloadGeometry fetches the map in the background so that the first
// request does not pay for it and a broken source shows up in the logs.
func preloadGeometry(lc fx.Lifecycle, loader *geometry.Loader) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				_, _ = loader.Graph(context.Background())
			}()

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
