package impl

import (
	"context"
	"log/slog"

	"rocktea/internal/domain/service"
	"rocktea/internal/usecase"

	"go.uber.org/fx"
)

type taskService struct {
	mail   service.MailSender
	dns    service.DNSProvider
	qrcode service.QRCodeService
	events service.EventPublisher
	logger *slog.Logger
}

// TaskServiceParams holds dependencies for TaskService, injected by Fx.
type TaskServiceParams struct {
	fx.In

	Mail   service.MailSender
	DNS    service.DNSProvider
	QRCode service.QRCodeService
	Events service.EventPublisher
	Logger *slog.Logger
}

// NewTaskService creates a new task service instance.
func NewTaskService(params TaskServiceParams) usecase.TaskUsecase {
	return &taskService{
		mail:   params.Mail,
		dns:    params.DNS,
		qrcode: params.QRCode,
		events: params.Events,
		logger: params.Logger,
	}
}

// HandleTask executes one task event. A returned error means the worker
// should answer non-2xx so the queue redelivers.
func (s *taskService) HandleTask(ctx context.Context, event *service.TaskEvent) error {
	switch event.Kind {
	case service.TaskMailStoreWelcome:
		return s.sendWelcome(ctx, event)
	case service.TaskMailDNSFailed:
		return s.mail.SendDNSFailure(ctx, &service.StoreMail{
			To:        event.Email,
			StoreName: event.StoreName,
		})
	case service.TaskMailStoreTeardown:
		return s.mail.SendStoreTeardown(ctx, &service.StoreMail{
			To:        event.Email,
			StoreName: event.StoreName,
		}, event.Success)
	case service.TaskMailOrderConfirmation:
		return s.mail.SendOrderConfirmation(ctx, event.Email, event.OrderSN)
	case service.TaskDNSTeardown:
		return s.teardownDNS(ctx, event)
	default:
		// Unknown kinds are dropped, not retried; redelivery cannot fix them.
		s.logger.WarnContext(ctx, "dropping task event of unknown kind",
			slog.String("kind", event.Kind),
		)

		return nil
	}
}

// sendWelcome generates the storefront QR code and mails it to the owner. A
// QR generation failure downgrades to a mail without attachment.
func (s *taskService) sendWelcome(ctx context.Context, event *service.TaskEvent) error {
	qr, err := s.qrcode.GenerateStorefrontQR("https://" + event.DomainName)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to generate storefront qr, sending without it",
			slog.String("store_id", event.StoreID),
			slog.Any("error", err),
		)
		qr = nil
	}

	return s.mail.SendStoreWelcome(ctx, &service.StoreMail{
		To:         event.Email,
		StoreName:  event.StoreName,
		DomainName: event.DomainName,
		QRCode:     qr,
	})
}

// teardownDNS removes the store's CNAME, then queues the teardown mail with
// the outcome. The CNAME delete never retries through this task; the owner is
// told it failed instead.
func (s *taskService) teardownDNS(ctx context.Context, event *service.TaskEvent) error {
	success := true
	if err := s.dns.DeleteRecord(ctx, event.StoreSlug); err != nil {
		s.logger.ErrorContext(ctx, "dns teardown failed",
			slog.String("store_slug", event.StoreSlug),
			slog.Any("error", err),
		)
		success = false
	}

	return s.events.PublishTaskEvent(ctx, &service.TaskEvent{
		RequestID: event.RequestID,
		Kind:      service.TaskMailStoreTeardown,
		Email:     event.Email,
		StoreName: event.StoreName,
		Success:   success,
	})
}
