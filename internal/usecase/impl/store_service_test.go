package impl

import (
	"context"
	"testing"

	"rocktea/config"
	"rocktea/internal/domain/constants"
	"rocktea/internal/domain/entity"
	domainerrors "rocktea/internal/domain/errors"
	mockRepo "rocktea/internal/mocks/repository"
	mockSvc "rocktea/internal/mocks/service"
	"rocktea/internal/domain/service"
	"rocktea/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type storeServiceMocks struct {
	storeRepo *mockRepo.MockStoreRepository
	userRepo  *mockRepo.MockUserRepository
	dns       *mockSvc.MockDNSProvider
	publisher *mockSvc.MockEventPublisher
}

func newStoreServiceForTest(t *testing.T, cfg *config.Config) (usecase.StoreUsecase, *storeServiceMocks) {
	if cfg == nil {
		cfg = &config.Config{
			Cloudflare: &config.CloudflareConfig{TargetDomain: "rocktea.shop"},
		}
		cfg.Env.Env = constants.EnvProduction
	}

	m := &storeServiceMocks{
		storeRepo: mockRepo.NewMockStoreRepository(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		dns:       mockSvc.NewMockDNSProvider(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}

	svc := NewStoreService(StoreServiceParams{
		StoreRepo: m.storeRepo,
		UserRepo:  m.userRepo,
		DNS:       m.dns,
		Publisher: m.publisher,
		Config:    cfg,
		Logger:    newDiscardLogger(),
	})

	return svc, m
}

func TestStoreService_CreateStore(t *testing.T) {
	svc, m := newStoreServiceForTest(t, nil)
	ctx := context.Background()
	ownerID := uuid.New()

	m.storeRepo.EXPECT().
		CreateStore(ctx, mock.AnythingOfType("*entity.Store")).
		Return(nil)

	store, err := svc.CreateStore(ctx, ownerID, "Dee's Gadget Hub!")
	require.NoError(t, err)
	assert.Equal(t, ownerID, store.OwnerID)
	assert.Equal(t, "dee-s-gadget-hub", store.Slug)
	assert.Equal(t, "dee-s-gadget-hub.rocktea.shop", store.DomainName)
	assert.Equal(t, entity.DNSStatePending, store.DNSState)
	assert.False(t, store.HasMadePayment)
}

func TestStoreService_CreateStore_LocalModeDomain(t *testing.T) {
	cfg := &config.Config{
		Cloudflare: &config.CloudflareConfig{TargetDomain: "rocktea.shop", LocalMode: true},
	}
	cfg.Env.Env = constants.EnvDevelop
	cfg.HTTP.Port = 8080

	svc, m := newStoreServiceForTest(t, cfg)
	ctx := context.Background()

	m.storeRepo.EXPECT().
		CreateStore(ctx, mock.AnythingOfType("*entity.Store")).
		Return(nil)

	store, err := svc.CreateStore(ctx, uuid.New(), "Corner Shop")
	require.NoError(t, err)
	assert.Equal(t, "localhost:8080/corner-shop", store.DomainName)
}

func TestStoreService_CreateStore_EmptySlug(t *testing.T) {
	svc, _ := newStoreServiceForTest(t, nil)

	_, err := svc.CreateStore(context.Background(), uuid.New(), "!!!")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestStoreService_ProvisionDomain_Success(t *testing.T) {
	svc, m := newStoreServiceForTest(t, nil)
	ctx := context.Background()

	ownerID := uuid.New()
	store := &entity.Store{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		Name:       "Corner Shop",
		Slug:       "corner-shop",
		DomainName: "corner-shop.rocktea.shop",
		DNSState:   entity.DNSStatePending,
	}

	m.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
	m.userRepo.EXPECT().FindUserByID(ctx, ownerID).Return(&entity.User{ID: ownerID, Email: "owner@example.com"}, nil)
	m.dns.EXPECT().UpsertRecord(ctx, "corner-shop").Return(nil)
	m.storeRepo.EXPECT().UpdateDNSState(ctx, store.ID, entity.DNSStateLive, true).Return(nil)

	m.publisher.EXPECT().
		PublishTaskEvent(ctx, mock.AnythingOfType("*service.TaskEvent")).
		Run(func(_ context.Context, task *service.TaskEvent) {
			assert.Equal(t, service.TaskMailStoreWelcome, task.Kind)
			assert.Equal(t, "owner@example.com", task.Email)
			assert.Equal(t, "corner-shop.rocktea.shop", task.DomainName)
		}).
		Return(nil)

	require.NoError(t, svc.ProvisionDomain(ctx, store.ID))
}

func TestStoreService_ProvisionDomain_ProviderFailure(t *testing.T) {
	svc, m := newStoreServiceForTest(t, nil)
	ctx := context.Background()

	ownerID := uuid.New()
	store := &entity.Store{
		ID:       uuid.New(),
		OwnerID:  ownerID,
		Name:     "Corner Shop",
		Slug:     "corner-shop",
		DNSState: entity.DNSStatePending,
	}

	m.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
	m.userRepo.EXPECT().FindUserByID(ctx, ownerID).Return(&entity.User{ID: ownerID, Email: "owner@example.com"}, nil)
	m.dns.EXPECT().UpsertRecord(ctx, "corner-shop").Return(errors.New("zone unavailable"))
	m.storeRepo.EXPECT().UpdateDNSState(ctx, store.ID, entity.DNSStateFailed, false).Return(nil)

	m.publisher.EXPECT().
		PublishTaskEvent(ctx, mock.AnythingOfType("*service.TaskEvent")).
		Run(func(_ context.Context, task *service.TaskEvent) {
			assert.Equal(t, service.TaskMailDNSFailed, task.Kind)
			assert.Equal(t, "owner@example.com", task.Email)
		}).
		Return(nil)

	err := svc.ProvisionDomain(ctx, store.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dns upsert failed")
}

func TestStoreService_DeleteStore(t *testing.T) {
	svc, m := newStoreServiceForTest(t, nil)
	ctx := context.Background()

	ownerID := uuid.New()
	store := &entity.Store{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Name:    "Corner Shop",
		Slug:    "corner-shop",
	}

	m.storeRepo.EXPECT().FindStoreByOwner(ctx, ownerID).Return(store, nil)
	m.userRepo.EXPECT().FindUserByID(ctx, ownerID).Return(&entity.User{ID: ownerID, Email: "owner@example.com"}, nil)
	m.storeRepo.EXPECT().UpdateDNSState(ctx, store.ID, entity.DNSStateDeleted, false).Return(nil)
	m.storeRepo.EXPECT().DeleteStore(ctx, store.ID).Return(nil)

	m.publisher.EXPECT().
		PublishTaskEvent(ctx, mock.AnythingOfType("*service.TaskEvent")).
		Run(func(_ context.Context, task *service.TaskEvent) {
			assert.Equal(t, service.TaskDNSTeardown, task.Kind)
			assert.Equal(t, "corner-shop", task.StoreSlug)
			assert.Equal(t, "owner@example.com", task.Email)
		}).
		Return(nil)

	require.NoError(t, svc.DeleteStore(ctx, ownerID))
}
