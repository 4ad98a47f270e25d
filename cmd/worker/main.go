package main

import (
	"context"
	"log/slog"
	"os"

	"rocktea/config"
	"rocktea/internal/delivery"
	"rocktea/internal/delivery/worker"
	"rocktea/internal/delivery/worker/handler"
	"rocktea/internal/domain/service"
	"rocktea/internal/infra/cloudflare"
	logs "rocktea/internal/infra/log"
	"rocktea/internal/infra/mail"
	"rocktea/internal/infra/pubsub"
	"rocktea/internal/infra/qrcode"
	"rocktea/internal/usecase/impl"

	"go.uber.org/fx"
)

// Storefront QR codes ship at this size in the welcome mail.
const qrCodeSize = 256

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			mail.NewSMTPSender,
			cloudflare.NewProvider,
			newQRCodeService,
			pubsub.NewEventPublisher,
			impl.NewTaskService,
		),
	)
}

func newQRCodeService() service.QRCodeService {
	return qrcode.NewQRCodeService(qrCodeSize, "M")
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
