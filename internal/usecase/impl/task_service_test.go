package impl

import (
	"context"
	"testing"

	"rocktea/internal/domain/service"
	mockSvc "rocktea/internal/mocks/service"
	"rocktea/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type taskServiceMocks struct {
	mail   *mockSvc.MockMailSender
	dns    *mockSvc.MockDNSProvider
	qrcode *mockSvc.MockQRCodeService
	events *mockSvc.MockEventPublisher
}

func newTaskServiceForTest(t *testing.T) (usecase.TaskUsecase, *taskServiceMocks) {
	m := &taskServiceMocks{
		mail:   mockSvc.NewMockMailSender(t),
		dns:    mockSvc.NewMockDNSProvider(t),
		qrcode: mockSvc.NewMockQRCodeService(t),
		events: mockSvc.NewMockEventPublisher(t),
	}

	svc := NewTaskService(TaskServiceParams{
		Mail:   m.mail,
		DNS:    m.dns,
		QRCode: m.qrcode,
		Events: m.events,
		Logger: newDiscardLogger(),
	})

	return svc, m
}

func TestTaskService_StoreWelcome_AttachesQR(t *testing.T) {
	svc, m := newTaskServiceForTest(t)
	ctx := context.Background()

	png := []byte{0x89, 'P', 'N', 'G'}
	m.qrcode.EXPECT().
		GenerateStorefrontQR("https://corner-shop.rocktea.shop").
		Return(png, nil)

	m.mail.EXPECT().
		SendStoreWelcome(ctx, mock.AnythingOfType("*service.StoreMail")).
		Run(func(_ context.Context, mail *service.StoreMail) {
			assert.Equal(t, "owner@example.com", mail.To)
			assert.Equal(t, "Corner Shop", mail.StoreName)
			assert.Equal(t, png, mail.QRCode)
		}).
		Return(nil)

	err := svc.HandleTask(ctx, &service.TaskEvent{
		Kind:       service.TaskMailStoreWelcome,
		Email:      "owner@example.com",
		StoreName:  "Corner Shop",
		DomainName: "corner-shop.rocktea.shop",
	})
	require.NoError(t, err)
}

func TestTaskService_StoreWelcome_QRFailureSendsWithoutAttachment(t *testing.T) {
	svc, m := newTaskServiceForTest(t)
	ctx := context.Background()

	m.qrcode.EXPECT().
		GenerateStorefrontQR("https://corner-shop.rocktea.shop").
		Return(nil, errors.New("encode failed"))

	m.mail.EXPECT().
		SendStoreWelcome(ctx, mock.AnythingOfType("*service.StoreMail")).
		Run(func(_ context.Context, mail *service.StoreMail) {
			assert.Nil(t, mail.QRCode)
		}).
		Return(nil)

	err := svc.HandleTask(ctx, &service.TaskEvent{
		Kind:       service.TaskMailStoreWelcome,
		Email:      "owner@example.com",
		DomainName: "corner-shop.rocktea.shop",
	})
	require.NoError(t, err)
}

func TestTaskService_OrderConfirmation(t *testing.T) {
	svc, m := newTaskServiceForTest(t)
	ctx := context.Background()

	m.mail.EXPECT().
		SendOrderConfirmation(ctx, "buyer@example.com", "12345").
		Return(nil)

	err := svc.HandleTask(ctx, &service.TaskEvent{
		Kind:    service.TaskMailOrderConfirmation,
		Email:   "buyer@example.com",
		OrderSN: "12345",
	})
	require.NoError(t, err)
}

func TestTaskService_MailFailureIsRetryable(t *testing.T) {
	svc, m := newTaskServiceForTest(t)
	ctx := context.Background()

	m.mail.EXPECT().
		SendOrderConfirmation(ctx, "buyer@example.com", "12345").
		Return(errors.New("smtp timeout"))

	// The error propagates so the worker answers non-2xx and the queue
	// redelivers.
	err := svc.HandleTask(ctx, &service.TaskEvent{
		Kind:    service.TaskMailOrderConfirmation,
		Email:   "buyer@example.com",
		OrderSN: "12345",
	})
	require.Error(t, err)
}

func TestTaskService_StoreTeardownMail(t *testing.T) {
	svc, m := newTaskServiceForTest(t)
	ctx := context.Background()

	m.mail.EXPECT().
		SendStoreTeardown(ctx, mock.AnythingOfType("*service.StoreMail"), true).
		Run(func(_ context.Context, mail *service.StoreMail, _ bool) {
			assert.Equal(t, "owner@example.com", mail.To)
			assert.Equal(t, "Corner Shop", mail.StoreName)
		}).
		Return(nil)

	err := svc.HandleTask(ctx, &service.TaskEvent{
		Kind:      service.TaskMailStoreTeardown,
		Email:     "owner@example.com",
		StoreName: "Corner Shop",
		Success:   true,
	})
	require.NoError(t, err)
}

func TestTaskService_DNSTeardown_QueuesSuccessMail(t *testing.T) {
	svc, m := newTaskServiceForTest(t)
	ctx := context.Background()

	m.dns.EXPECT().DeleteRecord(ctx, "corner-shop").Return(nil)
	m.events.EXPECT().
		PublishTaskEvent(ctx, mock.AnythingOfType("*service.TaskEvent")).
		Run(func(_ context.Context, event *service.TaskEvent) {
			assert.Equal(t, service.TaskMailStoreTeardown, event.Kind)
			assert.Equal(t, "owner@example.com", event.Email)
			assert.True(t, event.Success)
		}).
		Return(nil)

	err := svc.HandleTask(ctx, &service.TaskEvent{
		Kind:      service.TaskDNSTeardown,
		Email:     "owner@example.com",
		StoreSlug: "corner-shop",
	})
	require.NoError(t, err)
}

func TestTaskService_DNSTeardown_DeleteFailureStillQueuesMail(t *testing.T) {
	svc, m := newTaskServiceForTest(t)
	ctx := context.Background()

	m.dns.EXPECT().
		DeleteRecord(ctx, "corner-shop").
		Return(errors.New("zone unavailable"))
	m.events.EXPECT().
		PublishTaskEvent(ctx, mock.AnythingOfType("*service.TaskEvent")).
		Run(func(_ context.Context, event *service.TaskEvent) {
			assert.Equal(t, service.TaskMailStoreTeardown, event.Kind)
			assert.False(t, event.Success)
		}).
		Return(nil)

	err := svc.HandleTask(ctx, &service.TaskEvent{
		Kind:      service.TaskDNSTeardown,
		Email:     "owner@example.com",
		StoreSlug: "corner-shop",
	})
	require.NoError(t, err)
}

func TestTaskService_UnknownKindIsDropped(t *testing.T) {
	svc, _ := newTaskServiceForTest(t)

	// Redelivery cannot fix an unknown kind, so it is acked and dropped.
	err := svc.HandleTask(context.Background(), &service.TaskEvent{Kind: "mail.unknown"})
	require.NoError(t, err)
}
